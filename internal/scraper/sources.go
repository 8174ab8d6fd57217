package scraper

import "github.com/ultrabanca/results-engine/internal/models"

// HouseConfig describes where each house's results are published and which
// walk the scraper takes for it.
type HouseConfig struct {
	Code             string // short state code used in logs and skip planning
	House            models.House
	URLParam         string // path segment on the primary source
	CustomPath       string // overrides the standard primary-source pattern; {date} placeholder
	PortalBrasilSlug string // empty when the backup source has no page for this house
	FederalListing   bool   // uses the recent-results listing instead of a per-day page
	BoaSorte         bool   // uses the lookgoias.com / hojenobicho.com pair
}

// houseConfigs is the scrape order. The order is stable so logs and skip
// reports read the same across runs.
var houseConfigs = []HouseConfig{
	{Code: "RJ", House: models.HouseRioFederal, URLParam: "RJ"},
	{Code: "BA", House: models.HouseBahia, URLParam: "BA", PortalBrasilSlug: "bahia"},
	{Code: "GO", House: models.HouseLookGoias, URLParam: "GO", PortalBrasilSlug: "goias"},
	{Code: "CE", House: models.HouseLotece, URLParam: "CE", PortalBrasilSlug: "ceara"},
	{Code: "PE", House: models.HouseLotep, URLParam: "PE", PortalBrasilSlug: "pernambuco"},
	{Code: "PB", House: models.HouseParaiba, URLParam: "PB", PortalBrasilSlug: "paraiba"},
	{Code: "SP", House: models.HouseSaoPaulo, URLParam: "SP", PortalBrasilSlug: "sao-paulo"},
	{Code: "MG", House: models.HouseMinasGerais, URLParam: "MG", PortalBrasilSlug: "minas-gerais"},
	{Code: "DF", House: models.HouseBrasilia, URLParam: "DF", PortalBrasilSlug: "brasilia-df"},
	{Code: "RN", House: models.HouseRioGrandeNorte, URLParam: "RN", PortalBrasilSlug: "rio-grande-do-norte"},
	{Code: "RS", House: models.HouseRioGrandeSul, URLParam: "RS", PortalBrasilSlug: "rio-grande-do-sul"},
	{Code: "SE", House: models.HouseSergipe, URLParam: "SE", PortalBrasilSlug: "sergipe"},
	{Code: "PR", House: models.HouseParana, URLParam: "PR", PortalBrasilSlug: "parana"},
	{Code: "FED", House: models.HouseFederal, URLParam: "banca-federal", FederalListing: true},
	{Code: "NAC", House: models.HouseNacional, CustomPath: "/resultados-loteria-nacional-do-dia-{date}"},
	{Code: "BS", House: models.HouseBoaSorte, BoaSorte: true},
}

// expectedDrawings is how many drawings a full day yields per house. The
// skip planner compares stored counts against these to avoid re-scraping
// finished houses.
var expectedDrawings = map[string]int{
	"RJ":  6,  // 09:20, 11:00, 14:20, 16:00, 18:20, 21:20
	"BA":  12, // 6 GERAL + 6 MALUCA
	"GO":  8,
	"CE":  4,
	"PE":  16,
	"PB":  11, // 7 GERAL + 4 LOTEP
	"SP":  9,
	"MG":  5,
	"DF":  13,
	"NAC": 8,
	"RN":  4,
	"RS":  5,
	"SE":  5,
	"PR":  2,
	"FED": 1, // Wednesdays and Saturdays only
	"BS":  6,
}

// Houses returns the configured houses in scrape order.
func Houses() []HouseConfig {
	return houseConfigs
}

// ExpectedDrawings returns the full-day drawing count for a house code, or 0
// when unknown (unknown houses are never skipped).
func ExpectedDrawings(code string) int {
	return expectedDrawings[code]
}
