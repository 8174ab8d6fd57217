package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ultrabanca/results-engine/internal/models"
)

var (
	// "9866-17 (Macaco)": milhar, group, animal.
	pbPrizeRe = regexp.MustCompile(`(\d{4})-(\d{2})\s*\(([^)]+)\)`)
	// "1º: 9866", the lean ordinal-labelled layout.
	pbOrdinalRe = regexp.MustCompile(`[1-7][ºª°]\s*[:\-]?\s*(\d{4})`)
)

// ParsePortalBrasil extracts drawings from the backup source's house page.
// Slot headings read like "12h00 – Alvorada MG" with the prize list spread
// over the following siblings.
func ParsePortalBrasil(doc *goquery.Document, date string, house models.House) []models.Drawing {
	var drawings []models.Drawing

	doc.Find("h2, h3, h4").Each(func(_ int, header *goquery.Selection) {
		text := strings.TrimSpace(header.Text())

		slot, ok := extractSlot(text)
		if !ok {
			return
		}
		slot = normalizeSlot(house, slot)
		lottery := IdentifyLottery(text)

		// Collect text from up to 10 following siblings, stopping at the
		// next heading.
		var content strings.Builder
		cur := header.Next()
		for i := 0; i < 10 && cur.Length() > 0; i++ {
			name := goquery.NodeName(cur)
			if name == "h2" || name == "h3" || name == "h4" || name == "hr" {
				break
			}
			content.WriteString(" ")
			content.WriteString(cur.Text())
			cur = cur.Next()
		}

		var prizes []models.Prize
		for _, m := range pbPrizeRe.FindAllStringSubmatch(content.String(), models.MaxPrizes) {
			prizes = append(prizes, models.Prize{Number: m[1], Animal: strings.TrimSpace(m[3])})
		}

		if len(prizes) < models.MinPrizes {
			// Lean layout without animals: ordinal-labelled milhares.
			ms := pbOrdinalRe.FindAllStringSubmatch(content.String(), -1)
			if len(ms) >= models.MinPrizes {
				prizes = prizes[:0]
				for i, m := range ms {
					if i == models.MaxPrizes {
						break
					}
					prizes = append(prizes, models.Prize{Number: m[1]})
				}
			}
		}

		if len(prizes) >= models.MinPrizes {
			drawings = append(drawings, models.Drawing{
				Date:    date,
				Time:    slot,
				House:   house,
				Lottery: lottery,
				Prizes:  prizes,
				Source:  "portalbrasil",
			})
		}
	})

	return Deduplicate(drawings)
}
