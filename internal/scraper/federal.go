package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ultrabanca/results-engine/internal/models"
)

var nonDigitRe = regexp.MustCompile(`[^\d]`)

// ParseFederalListing extracts the FEDERAL drawing for one date from the
// recent-results listing page (the per-day page comes back empty for this
// house). dateBR is the target date as DD/MM/YYYY, matching how the page
// titles its entries.
func ParseFederalListing(doc *goquery.Document, date, dateBR string) []models.Drawing {
	var drawings []models.Drawing

	doc.Find("h3.h4").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		title := strings.TrimSpace(heading.Text())
		if !strings.Contains(title, dateBR) {
			return true
		}

		table := heading.Closest("div").Find("table").First()
		if table.Length() == 0 {
			return true
		}

		var prizes []models.Prize
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 3 {
				return
			}
			// Prize rows are labelled "1º".."5º"; helper rows carry no digit.
			if !HasDigit(strings.TrimSpace(cells.Eq(0).Text())) {
				return
			}

			milhar := nonDigitRe.ReplaceAllString(cells.Eq(1).Text(), "")
			if len(milhar) < 3 || len(milhar) > 4 {
				return
			}
			for len(milhar) < 4 {
				milhar = "0" + milhar
			}

			animal := ""
			if cells.Length() >= 4 {
				animal = strings.TrimSpace(cells.Eq(3).Text())
			}
			prizes = append(prizes, models.Prize{Number: milhar, Animal: animal})
		})

		if len(prizes) >= models.MinPrizes {
			if len(prizes) > models.MaxPrizes {
				prizes = prizes[:models.MaxPrizes]
			}
			drawings = append(drawings, models.Drawing{
				Date:    date,
				Time:    "19:00",
				House:   models.HouseFederal,
				Lottery: models.LotteryFederal,
				Prizes:  prizes,
				Source:  "resultadofacil",
			})
		}
		return false // only the entry for the target date matters
	})

	return drawings
}
