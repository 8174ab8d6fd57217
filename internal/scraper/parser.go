package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ultrabanca/results-engine/internal/models"
)

var (
	slotRe   = regexp.MustCompile(`(\d{1,2})[h:H](\d{2})?`)
	milharRe = regexp.MustCompile(`\b(\d{4})\b`)
	digitRe  = regexp.MustCompile(`\d`)
)

// skipRowKeywords marks the soma/multiplicacao helper rows the sites append
// below the real prizes.
var skipRowKeywords = []string{"soma", "mult", "multiplicação", "multiplicacao"}

// extractSlot pulls an HH:MM time out of free text, accepting "14h20",
// "14:20" and "21h" (minutes default to 00).
func extractSlot(text string) (string, bool) {
	m := slotRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	hour := m[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	minute := m[2]
	if minute == "" {
		minute = "00"
	}
	return hour + ":" + minute, true
}

// normalizeSlot fixes slots the sources publish differently from the slots
// bets map to. LOTECE's morning draw appears as 10:00 or 12:00 depending on
// the page but settles as 11:00.
func normalizeSlot(house models.House, slot string) string {
	if house == models.HouseLotece && (slot == "10:00" || slot == "12:00") {
		return "11:00"
	}
	return slot
}

func isSkipRow(rowText string) bool {
	lower := strings.ToLower(rowText)
	for _, kw := range skipRowKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// tablePrizes extracts up to 7 prizes from a result table. Each prize row
// carries a 4-digit milhar somewhere in its cells, with the animal label
// usually in the last cell.
func tablePrizes(table *goquery.Selection) []models.Prize {
	var prizes []models.Prize

	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return true
		}
		if isSkipRow(row.Text()) {
			return true
		}

		cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			m := milharRe.FindStringSubmatch(strings.TrimSpace(cell.Text()))
			if m == nil {
				return true
			}
			animal := ""
			if cells.Length() > 2 {
				last := strings.TrimSpace(cells.Last().Text())
				if !milharRe.MatchString(last) && len(last) < 20 {
					animal = last
				}
			}
			prizes = append(prizes, models.Prize{Number: m[1], Animal: animal})
			return false
		})
		return len(prizes) < models.MaxPrizes
	})

	if len(prizes) > models.MaxPrizes {
		prizes = prizes[:models.MaxPrizes]
	}
	return prizes
}

// headerDrawing builds a drawing from a slot heading and the table that
// follows it.
func headerDrawing(header *goquery.Selection, date string, house models.House) (models.Drawing, bool) {
	text := strings.TrimSpace(header.Text())

	slot, ok := extractSlot(text)
	if !ok {
		return models.Drawing{}, false
	}
	slot = normalizeSlot(house, slot)

	table := header.NextAllFiltered("table").First()
	if table.Length() == 0 {
		// The table may live in a following sibling's subtree.
		table = nextTable(header)
	}
	if table.Length() == 0 {
		return models.Drawing{}, false
	}

	prizes := tablePrizes(table)
	if len(prizes) < models.MinPrizes {
		return models.Drawing{}, false
	}

	return models.Drawing{
		Date:    date,
		Time:    slot,
		House:   house,
		Lottery: IdentifyLottery(text),
		Prizes:  prizes,
		Source:  "resultadofacil",
	}, true
}

// nextTable walks forward in document order from sel to the first table.
func nextTable(sel *goquery.Selection) *goquery.Selection {
	for cur := sel.Next(); cur.Length() > 0; cur = cur.Next() {
		if goquery.NodeName(cur) == "table" {
			return cur
		}
		if t := cur.Find("table").First(); t.Length() > 0 {
			return t
		}
	}
	return sel.Parent().Find("nothing") // empty selection
}

// ParseResultPage extracts every drawing published on a primary-source day
// page. Three strategies run in order; the first to produce drawings wins,
// and the result is deduplicated either way.
func ParseResultPage(doc *goquery.Document, date string, house models.House) []models.Drawing {
	// Strategy 1: the known layout with h3.g slot headings.
	var drawings []models.Drawing
	doc.Find("h3.g").Each(func(_ int, header *goquery.Selection) {
		if d, ok := headerDrawing(header, date, house); ok {
			drawings = append(drawings, d)
		}
	})
	if len(drawings) > 0 {
		return Deduplicate(drawings)
	}

	// Strategy 2: any h3 that mentions a slot time.
	doc.Find("h3").Each(func(_ int, header *goquery.Selection) {
		if slotRe.MatchString(strings.TrimSpace(header.Text())) {
			if d, ok := headerDrawing(header, date, house); ok {
				drawings = append(drawings, d)
			}
		}
	})
	if len(drawings) > 0 {
		return Deduplicate(drawings)
	}

	// Strategy 3: scan every table and look backwards for slot and series.
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		prizes := tablePrizes(table)
		if len(prizes) < models.MinPrizes {
			return
		}
		slot, lottery := tableContext(table, house)
		if slot == "" {
			return
		}
		drawings = append(drawings, models.Drawing{
			Date:    date,
			Time:    slot,
			House:   house,
			Lottery: lottery,
			Prizes:  prizes,
			Source:  "resultadofacil",
		})
	})

	return Deduplicate(drawings)
}

// tableContext looks at up to 15 elements preceding a table for its slot
// time and series name.
func tableContext(table *goquery.Selection, house models.House) (string, models.Lottery) {
	slot := ""
	lottery := models.LotteryGeral

	seen := 0
	for cur := table.Prev(); cur.Length() > 0 && seen < 15; cur = cur.Prev() {
		candidates := []*goquery.Selection{cur}
		cur.Find("h1, h2, h3, h4, p, div, span").Each(func(_ int, s *goquery.Selection) {
			candidates = append(candidates, s)
		})
		for _, c := range candidates {
			if seen >= 15 {
				break
			}
			seen++
			text := strings.TrimSpace(c.Text())
			if slot == "" {
				if s, ok := extractSlot(text); ok {
					slot = s
				}
			}
			if lot := IdentifyLottery(text); lot != models.LotteryGeral {
				lottery = lot
				return normalizeSlot(house, slot), lottery
			}
		}
	}

	if slot == "" {
		return "", lottery
	}
	return normalizeSlot(house, slot), lottery
}

// HasDigit reports whether a rank cell labels an actual prize row.
func HasDigit(s string) bool {
	return digitRe.MatchString(s)
}
