package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ultrabanca/results-engine/internal/models"
)

// boaSorteSlots maps the hour printed on the page to the official slot.
var boaSorteSlots = map[string]string{
	"09": "09:20", "9": "09:20",
	"11": "11:20",
	"14": "14:20",
	"16": "16:20",
	"18": "18:20",
	"21": "21:20",
}

// Accepts "09:20", "09h", "9h", "09hs" and "9 horas".
var bsSlotRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2})|\s*(?:[hH]|hs|horas)\s*(\d{2})?)`)

// ParseBoaSorte extracts BOASORTE drawings from lookgoias.com (or the
// hojenobicho.com fallback, whose markup parses the same way). Only hours in
// the official slot map count; one drawing per slot survives.
func ParseBoaSorte(doc *goquery.Document, date, source string) []models.Drawing {
	var drawings []models.Drawing
	seen := make(map[string]bool)

	doc.Find("h2, h3, h4, strong, p, div").Each(func(_ int, header *goquery.Selection) {
		text := strings.TrimSpace(header.Text())

		m := bsSlotRe.FindStringSubmatch(text)
		if m == nil {
			return
		}
		slot, ok := boaSorteSlots[m[1]]
		if !ok || seen[slot] {
			return
		}

		table := nextTable(header)
		if table.Length() == 0 {
			return
		}

		prizes := tablePrizes(table)
		if len(prizes) < models.MinPrizes {
			return
		}

		seen[slot] = true
		drawings = append(drawings, models.Drawing{
			Date:    date,
			Time:    slot,
			House:   models.HouseBoaSorte,
			Lottery: models.LotteryBoaSorte,
			Prizes:  prizes,
			Source:  source,
		})
	})

	return drawings
}
