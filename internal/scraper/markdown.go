package scraper

import (
	"regexp"

	"github.com/ultrabanca/results-engine/internal/models"
)

var (
	mdSectionRe = regexp.MustCompile(`\n##?\s+`)
	mdSlotRe    = regexp.MustCompile(`(\d{1,2})[h:H](\d{2})`)
	mdPrizeRe   = regexp.MustCompile(`\|\s*(\d{4})\s*\|`)
	// "1º - 3238" or "1º: 3238", the list layout some pages render to.
	mdOrdinalRe = regexp.MustCompile(`\d{1,2}[ºª°]\s*[:\-–]?\s*(\d{4})`)
	// Date and slot fragments that would read as bogus milhares.
	mdNoiseRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}|\d{1,2}[h:H]\d{2}`)
	mdBareRe  = regexp.MustCompile(`\b(\d{4})\b`)
)

// ParseMarkdown extracts drawings from a rendered page's markdown, the last
// resort when the renderer could not return HTML. Sections split on headings;
// a section counts when it names a slot and yields at least five 4-digit
// prizes by one of three strategies: table cells, then ordinal-labelled rows,
// then bare 4-digit runs with date and time fragments stripped out first.
func ParseMarkdown(markdown, date string, house models.House) []models.Drawing {
	var drawings []models.Drawing

	for _, section := range mdSectionRe.Split(markdown, -1) {
		m := mdSlotRe.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		hour := m[1]
		if len(hour) == 1 {
			hour = "0" + hour
		}
		slot := normalizeSlot(house, hour+":"+m[2])

		head := section
		if len(head) > 200 {
			head = head[:200]
		}
		lottery := IdentifyLottery(head)

		prizes := sectionPrizes(section)
		if len(prizes) < models.MinPrizes {
			continue
		}

		drawings = append(drawings, models.Drawing{
			Date:    date,
			Time:    slot,
			House:   house,
			Lottery: lottery,
			Prizes:  prizes,
			Source:  "render/markdown",
		})
	}

	return Deduplicate(drawings)
}

// sectionPrizes tries the extraction strategies in order of confidence and
// returns the first one that reaches the minimum prize count.
func sectionPrizes(section string) []models.Prize {
	if prizes := capMilhares(mdPrizeRe.FindAllStringSubmatch(section, -1)); len(prizes) >= models.MinPrizes {
		return prizes
	}
	if prizes := capMilhares(mdOrdinalRe.FindAllStringSubmatch(section, -1)); len(prizes) >= models.MinPrizes {
		return prizes
	}
	cleaned := mdNoiseRe.ReplaceAllString(section, " ")
	if prizes := capMilhares(mdBareRe.FindAllStringSubmatch(cleaned, -1)); len(prizes) >= models.MinPrizes {
		return prizes
	}
	return nil
}

func capMilhares(matches [][]string) []models.Prize {
	var prizes []models.Prize
	for i, m := range matches {
		if i == models.MaxPrizes {
			break
		}
		prizes = append(prizes, models.Prize{Number: m[1]})
	}
	return prizes
}
