package scraper

import (
	"regexp"
	"strings"

	"github.com/ultrabanca/results-engine/internal/models"
)

var ptWord = regexp.MustCompile(`\bPT\b`)

// IdentifyLottery names the draw series from a heading or nearby text. The
// checks run most-specific first; anything unrecognized lands in GERAL.
func IdentifyLottery(text string) models.Lottery {
	upper := strings.ToUpper(text)

	switch {
	// RIO DE JANEIRO
	case strings.Contains(upper, "CORUJA"):
		return models.LotteryCoruja
	case strings.Contains(upper, "PTM"):
		return models.LotteryPTM
	case strings.Contains(upper, "PTV"):
		return models.LotteryPTV
	case strings.Contains(upper, "PTN"):
		return models.LotteryPTN

	// BAHIA
	case strings.Contains(upper, "MALUCA"):
		return models.LotteryMaluca

	// BRASILIA / DF
	case strings.Contains(upper, "LBR"):
		return models.LotteryLBR

	// CEARA
	case strings.Contains(upper, "LOTECE"):
		return models.LotteryLotece

	// PERNAMBUCO runs four series in the same slot
	case strings.Contains(upper, "AVAL") && strings.Contains(upper, "PE"):
		return models.LotteryAval
	case strings.Contains(upper, "CAMINHO DA SORTE"):
		return models.LotteryCaminhoDaSorte
	case strings.Contains(upper, "POPULAR") && (strings.Contains(upper, "RECIFE") || strings.Contains(upper, "PE,")):
		return models.LotteryPopular
	case strings.Contains(upper, "MONTE CARLOS") || strings.Contains(upper, "NORDESTE MONTE"):
		return models.LotteryMonteCarlos
	case strings.Contains(upper, "LOTEP"):
		return models.LotteryLotep

	// PARAIBA
	case strings.Contains(upper, "CAMPINA GRANDE"):
		return models.LotteryCampinaGrande

	// MINAS GERAIS
	case strings.Contains(upper, "ALVORADA"):
		return models.LotteryAlvorada
	case strings.Contains(upper, "MINAS DIA"):
		return models.LotteryMinasDia
	case strings.Contains(upper, "MINAS NOITE"):
		return models.LotteryMinasNoite
	case strings.Contains(upper, "PREFERIDA"):
		return models.LotteryPreferida

	// RIO GRANDE DO SUL
	case strings.Contains(upper, "GAUCHA") || strings.Contains(upper, "GAÚCHA"):
		return models.LotteryGaucha

	// PARANA
	case strings.Contains(upper, "PARANA") || strings.Contains(upper, "PARANÁ"):
		return models.LotteryParana

	// GOIAS
	case strings.Contains(upper, "LOOK"):
		return models.LotteryLook
	case strings.Contains(upper, "GOIAS") || strings.Contains(upper, "GOIÁS"):
		return models.LotteryGoias

	// SAO PAULO
	case strings.Contains(upper, "BANDEIRANTES"):
		return models.LotteryBandeirantes
	case strings.Contains(upper, "PAULISTA"):
		return models.LotteryPaulista

	// NACIONAL
	case strings.Contains(upper, "NACIONAL"):
		return models.LotteryNacional

	// FEDERAL
	case strings.Contains(upper, "FEDERAL"):
		return models.LotteryFederal

	// generic PT (Rio)
	case ptWord.MatchString(upper):
		return models.LotteryPT
	}

	return models.LotteryGeral
}
