// Package lotteries maps the lottery identifiers bettors pick in the app to
// the concrete drawings the scraper stores.
package lotteries

import "github.com/ultrabanca/results-engine/internal/models"

// Mapping ties a bet token to the stored drawing it settles against. Lottery
// disambiguates drawings sharing the same house and time slot (BAHIA GERAL
// vs MALUCA, PARAIBA GERAL vs LOTEP).
type Mapping struct {
	House   models.House
	Time    string
	Lottery models.Lottery
}

func m(house models.House, hhmm string, lottery models.Lottery) Mapping {
	return Mapping{House: house, Time: hhmm, Lottery: lottery}
}

// tokenTable is the canonical token registry. Tokens ending in _maluca share
// the underlying drawing of their base token; the evaluator applies the digit
// reversal at settlement time. BAHIA is the exception: its MALUCA drawings
// are published and stored separately.
var tokenTable = map[string]Mapping{
	// RIO DE JANEIRO
	"rj_pt_09":     m(models.HouseRioFederal, "09:20", models.LotteryPT),
	"rj_ptm_11":    m(models.HouseRioFederal, "11:00", models.LotteryPTM),
	"rj_pt_14":     m(models.HouseRioFederal, "14:20", models.LotteryPT),
	"pt_14":        m(models.HouseRioFederal, "14:20", models.LotteryPT), // alias
	"rj_ptv_16":    m(models.HouseRioFederal, "16:00", models.LotteryPTV),
	"rj_ptn_18":    m(models.HouseRioFederal, "18:20", models.LotteryPTN),
	"rj_coruja_21": m(models.HouseRioFederal, "21:20", models.LotteryCoruja),
	"coruja_21":    m(models.HouseRioFederal, "21:20", models.LotteryCoruja), // alias

	// BAHIA - GERAL and MALUCA are distinct drawings at the same hour
	"ba_10":        m(models.HouseBahia, "10:00", models.LotteryGeral),
	"ln_10":        m(models.HouseBahia, "10:00", models.LotteryGeral),
	"ba_12":        m(models.HouseBahia, "12:00", models.LotteryGeral),
	"ba_15":        m(models.HouseBahia, "15:00", models.LotteryGeral),
	"ba_19":        m(models.HouseBahia, "19:00", models.LotteryGeral),
	"ba_20":        m(models.HouseBahia, "20:00", models.LotteryGeral),
	"ba_21":        m(models.HouseBahia, "21:00", models.LotteryGeral),
	"ba_maluca_10": m(models.HouseBahia, "10:00", models.LotteryMaluca),
	"ba_maluca_12": m(models.HouseBahia, "12:00", models.LotteryMaluca),
	"ba_maluca_15": m(models.HouseBahia, "15:00", models.LotteryMaluca),
	"ba_maluca_19": m(models.HouseBahia, "19:00", models.LotteryMaluca),
	"ba_maluca_20": m(models.HouseBahia, "20:00", models.LotteryMaluca),
	"ba_maluca_21": m(models.HouseBahia, "21:00", models.LotteryMaluca),

	// GOIAS
	"go_07": m(models.HouseLookGoias, "07:00", models.LotteryLook),
	"go_09": m(models.HouseLookGoias, "09:00", models.LotteryLook),
	"go_11": m(models.HouseLookGoias, "11:00", models.LotteryLook),
	"go_14": m(models.HouseLookGoias, "14:00", models.LotteryLook),
	"go_16": m(models.HouseLookGoias, "16:00", models.LotteryLook),
	"go_18": m(models.HouseLookGoias, "18:00", models.LotteryLook),
	"go_21": m(models.HouseLookGoias, "21:00", models.LotteryLook),
	"go_23": m(models.HouseLookGoias, "23:00", models.LotteryLook),

	// CEARA
	"ce_11": m(models.HouseLotece, "11:00", models.LotteryLotece),
	"ce_12": m(models.HouseLotece, "11:00", models.LotteryLotece), // source says 12:00, stored as 11:00
	"ce_14": m(models.HouseLotece, "14:00", models.LotteryLotece),
	"ce_15": m(models.HouseLotece, "15:45", models.LotteryLotece),
	"ce_19": m(models.HouseLotece, "19:00", models.LotteryLotece),

	// PERNAMBUCO
	"pe_09":  m(models.HouseLotep, "09:20", models.LotteryGeral),
	"pe_09b": m(models.HouseLotep, "09:30", models.LotteryGeral),
	"pe_09c": m(models.HouseLotep, "09:40", models.LotteryGeral),
	"pe_10":  m(models.HouseLotep, "10:00", models.LotteryGeral),
	"pe_11":  m(models.HouseLotep, "11:00", models.LotteryGeral),
	"pe_12":  m(models.HouseLotep, "12:40", models.LotteryGeral),
	"pe_12b": m(models.HouseLotep, "12:45", models.LotteryGeral),
	"pe_14":  m(models.HouseLotep, "14:00", models.LotteryGeral),
	"pe_15":  m(models.HouseLotep, "15:40", models.LotteryGeral),
	"pe_15b": m(models.HouseLotep, "15:45", models.LotteryGeral),
	"pe_17":  m(models.HouseLotep, "17:00", models.LotteryGeral),
	"pe_18":  m(models.HouseLotep, "18:30", models.LotteryGeral),
	"pe_19":  m(models.HouseLotep, "19:00", models.LotteryGeral),
	"pe_19b": m(models.HouseLotep, "19:30", models.LotteryGeral),
	"pe_20":  m(models.HouseLotep, "20:00", models.LotteryGeral),
	"pe_21":  m(models.HouseLotep, "21:00", models.LotteryGeral),

	// PARAIBA - GERAL and LOTEP are distinct drawings at the same hour
	"pb_09":       m(models.HouseParaiba, "09:45", models.LotteryGeral),
	"pb_10":       m(models.HouseParaiba, "10:45", models.LotteryGeral),
	"pb_12":       m(models.HouseParaiba, "12:45", models.LotteryGeral),
	"pb_15":       m(models.HouseParaiba, "15:45", models.LotteryGeral),
	"pb_18":       m(models.HouseParaiba, "18:00", models.LotteryGeral),
	"pb_19":       m(models.HouseParaiba, "19:05", models.LotteryGeral),
	"pb_20":       m(models.HouseParaiba, "20:00", models.LotteryGeral),
	"pb_lotep_10": m(models.HouseParaiba, "10:45", models.LotteryLotep),
	"pb_lotep_12": m(models.HouseParaiba, "12:45", models.LotteryLotep),
	"pb_lotep_15": m(models.HouseParaiba, "15:45", models.LotteryLotep),
	"pb_lotep_18": m(models.HouseParaiba, "18:00", models.LotteryLotep),

	// SAO PAULO
	"sp_08":      m(models.HouseSaoPaulo, "08:00", models.LotteryGeral),
	"sp_10":      m(models.HouseSaoPaulo, "10:00", models.LotteryGeral),
	"sp_12":      m(models.HouseSaoPaulo, "12:00", models.LotteryGeral),
	"sp_13":      m(models.HouseSaoPaulo, "13:00", models.LotteryGeral),
	"sp_band_15": m(models.HouseSaoPaulo, "15:30", models.LotteryBandeirantes),
	"sp_15":      m(models.HouseSaoPaulo, "15:30", models.LotteryGeral), // backward-compat alias
	"sp_17":      m(models.HouseSaoPaulo, "17:00", models.LotteryGeral),
	"sp_18":      m(models.HouseSaoPaulo, "18:00", models.LotteryGeral),
	"sp_19":      m(models.HouseSaoPaulo, "19:00", models.LotteryGeral),
	"sp_ptn_20":  m(models.HouseSaoPaulo, "20:00", models.LotteryPTN),

	// MINAS GERAIS - each slot runs a different series
	"mg_12": m(models.HouseMinasGerais, "12:00", models.LotteryAlvorada),
	"mg_13": m(models.HouseMinasGerais, "13:00", models.LotteryGeral),
	"mg_15": m(models.HouseMinasGerais, "15:00", models.LotteryMinasDia),
	"mg_19": m(models.HouseMinasGerais, "19:00", models.LotteryMinasNoite),
	"mg_21": m(models.HouseMinasGerais, "21:00", models.LotteryPreferida),

	// DISTRITO FEDERAL / LBR
	"df_00": m(models.HouseBrasilia, "00:40", models.LotteryLBR),
	"df_07": m(models.HouseBrasilia, "07:30", models.LotteryLBR),
	"df_08": m(models.HouseBrasilia, "08:30", models.LotteryLBR),
	"df_10": m(models.HouseBrasilia, "10:00", models.LotteryLBR),
	"df_12": m(models.HouseBrasilia, "12:40", models.LotteryLBR),
	"df_13": m(models.HouseBrasilia, "13:00", models.LotteryLBR),
	"df_15": m(models.HouseBrasilia, "15:00", models.LotteryLBR),
	"df_17": m(models.HouseBrasilia, "17:00", models.LotteryLBR),
	"df_18": m(models.HouseBrasilia, "18:40", models.LotteryLBR),
	"df_19": m(models.HouseBrasilia, "19:00", models.LotteryLBR),
	"df_20": m(models.HouseBrasilia, "20:40", models.LotteryLBR),
	"df_22": m(models.HouseBrasilia, "22:00", models.LotteryLBR),
	"df_23": m(models.HouseBrasilia, "23:00", models.LotteryLBR),

	// RIO GRANDE DO NORTE
	"rn_08": m(models.HouseRioGrandeNorte, "08:30", models.LotteryGeral),
	"rn_11": m(models.HouseRioGrandeNorte, "11:45", models.LotteryGeral),
	"rn_16": m(models.HouseRioGrandeNorte, "16:45", models.LotteryGeral),
	"rn_18": m(models.HouseRioGrandeNorte, "18:30", models.LotteryGeral),

	// RIO GRANDE DO SUL
	"rs_11": m(models.HouseRioGrandeSul, "11:00", models.LotteryGeral),
	"rs_14": m(models.HouseRioGrandeSul, "14:00", models.LotteryGeral),
	"rs_16": m(models.HouseRioGrandeSul, "16:00", models.LotteryGeral),
	"rs_18": m(models.HouseRioGrandeSul, "18:00", models.LotteryGeral),
	"rs_21": m(models.HouseRioGrandeSul, "21:00", models.LotteryGeral),

	// SERGIPE
	"se_10": m(models.HouseSergipe, "10:00", models.LotteryGeral),
	"se_13": m(models.HouseSergipe, "13:00", models.LotteryGeral),
	"se_14": m(models.HouseSergipe, "14:00", models.LotteryGeral),
	"se_16": m(models.HouseSergipe, "16:00", models.LotteryGeral),
	"se_19": m(models.HouseSergipe, "19:00", models.LotteryGeral),

	// PARANA
	"pr_14": m(models.HouseParana, "14:00", models.LotteryGeral),
	"pr_18": m(models.HouseParana, "18:00", models.LotteryGeral),

	// NACIONAL
	"nac_02": m(models.HouseNacional, "02:00", models.LotteryNacional),
	"nac_08": m(models.HouseNacional, "08:00", models.LotteryNacional),
	"nac_10": m(models.HouseNacional, "10:00", models.LotteryNacional),
	"nac_12": m(models.HouseNacional, "12:00", models.LotteryNacional),
	"nac_15": m(models.HouseNacional, "15:00", models.LotteryNacional),
	"nac_17": m(models.HouseNacional, "17:00", models.LotteryNacional),
	"nac_21": m(models.HouseNacional, "21:00", models.LotteryNacional),
	"nac_23": m(models.HouseNacional, "23:00", models.LotteryNacional),

	// FAZENDINHA
	"lt_look_23hs":     m(models.HouseLookGoias, "23:19", models.LotteryLook),
	"lt_nacional_23hs": m(models.HouseNacional, "22:59", models.LotteryNacional),

	// FEDERAL
	"fed_19": m(models.HouseFederal, "19:00", models.LotteryFederal),

	// BOASORTE GOIAS
	"bs_09": m(models.HouseBoaSorte, "09:20", models.LotteryBoaSorte),
	"bs_11": m(models.HouseBoaSorte, "11:20", models.LotteryBoaSorte),
	"bs_14": m(models.HouseBoaSorte, "14:20", models.LotteryBoaSorte),
	"bs_16": m(models.HouseBoaSorte, "16:20", models.LotteryBoaSorte),
	"bs_18": m(models.HouseBoaSorte, "18:20", models.LotteryBoaSorte),
	"bs_21": m(models.HouseBoaSorte, "21:20", models.LotteryBoaSorte),

	// MALUCA variants sharing the base drawing (digit reversal at settlement)
	"rj_pt_09_maluca":     m(models.HouseRioFederal, "09:20", models.LotteryPT),
	"rj_ptm_11_maluca":    m(models.HouseRioFederal, "11:00", models.LotteryPTM),
	"rj_pt_14_maluca":     m(models.HouseRioFederal, "14:20", models.LotteryPT),
	"rj_ptv_16_maluca":    m(models.HouseRioFederal, "16:00", models.LotteryPTV),
	"rj_coruja_21_maluca": m(models.HouseRioFederal, "21:20", models.LotteryCoruja),

	"fed_19_maluca": m(models.HouseFederal, "19:00", models.LotteryFederal),

	"nac_02_maluca": m(models.HouseNacional, "02:00", models.LotteryNacional),
	"nac_08_maluca": m(models.HouseNacional, "08:00", models.LotteryNacional),
	"nac_10_maluca": m(models.HouseNacional, "10:00", models.LotteryNacional),
	"nac_12_maluca": m(models.HouseNacional, "12:00", models.LotteryNacional),
	"nac_15_maluca": m(models.HouseNacional, "15:00", models.LotteryNacional),
	"nac_17_maluca": m(models.HouseNacional, "17:00", models.LotteryNacional),
	"nac_21_maluca": m(models.HouseNacional, "21:00", models.LotteryNacional),
	"nac_23_maluca": m(models.HouseNacional, "23:00", models.LotteryNacional),

	"go_07_maluca": m(models.HouseLookGoias, "07:00", models.LotteryLook),
	"go_09_maluca": m(models.HouseLookGoias, "09:00", models.LotteryLook),
	"go_11_maluca": m(models.HouseLookGoias, "11:00", models.LotteryLook),
	"go_14_maluca": m(models.HouseLookGoias, "14:00", models.LotteryLook),
	"go_16_maluca": m(models.HouseLookGoias, "16:00", models.LotteryLook),
	"go_18_maluca": m(models.HouseLookGoias, "18:00", models.LotteryLook),
	"go_21_maluca": m(models.HouseLookGoias, "21:00", models.LotteryLook),

	"bs_09_maluca": m(models.HouseBoaSorte, "09:20", models.LotteryBoaSorte),
	"bs_11_maluca": m(models.HouseBoaSorte, "11:20", models.LotteryBoaSorte),
	"bs_14_maluca": m(models.HouseBoaSorte, "14:20", models.LotteryBoaSorte),
	"bs_16_maluca": m(models.HouseBoaSorte, "16:20", models.LotteryBoaSorte),
	"bs_18_maluca": m(models.HouseBoaSorte, "18:20", models.LotteryBoaSorte),
	"bs_21_maluca": m(models.HouseBoaSorte, "21:20", models.LotteryBoaSorte),

	"pe_09_maluca": m(models.HouseLotep, "09:20", models.LotteryGeral),
	"pe_10_maluca": m(models.HouseLotep, "10:00", models.LotteryGeral),
	"pe_12_maluca": m(models.HouseLotep, "12:40", models.LotteryGeral),
	"pe_15_maluca": m(models.HouseLotep, "15:40", models.LotteryGeral),
	"pe_18_maluca": m(models.HouseLotep, "18:30", models.LotteryGeral),
	"pe_20_maluca": m(models.HouseLotep, "20:00", models.LotteryGeral),

	"ce_11_maluca": m(models.HouseLotece, "11:00", models.LotteryLotece),
	"ce_14_maluca": m(models.HouseLotece, "14:00", models.LotteryLotece),
	"ce_15_maluca": m(models.HouseLotece, "15:45", models.LotteryLotece),
	"ce_19_maluca": m(models.HouseLotece, "19:00", models.LotteryLotece),

	"sp_08_maluca":      m(models.HouseSaoPaulo, "08:00", models.LotteryGeral),
	"sp_10_maluca":      m(models.HouseSaoPaulo, "10:00", models.LotteryGeral),
	"sp_12_maluca":      m(models.HouseSaoPaulo, "12:00", models.LotteryGeral),
	"sp_13_maluca":      m(models.HouseSaoPaulo, "13:00", models.LotteryGeral),
	"sp_band_15_maluca": m(models.HouseSaoPaulo, "15:30", models.LotteryBandeirantes),
	"sp_17_maluca":      m(models.HouseSaoPaulo, "17:00", models.LotteryGeral),
	"sp_18_maluca":      m(models.HouseSaoPaulo, "18:00", models.LotteryGeral),
	"sp_19_maluca":      m(models.HouseSaoPaulo, "19:00", models.LotteryGeral),

	"mg_12_maluca": m(models.HouseMinasGerais, "12:00", models.LotteryAlvorada),
	"mg_15_maluca": m(models.HouseMinasGerais, "15:00", models.LotteryMinasDia),

	"rs_11_maluca": m(models.HouseRioGrandeSul, "11:00", models.LotteryGeral),
	"rs_14_maluca": m(models.HouseRioGrandeSul, "14:00", models.LotteryGeral),
	"rs_16_maluca": m(models.HouseRioGrandeSul, "16:00", models.LotteryGeral),
	"rs_18_maluca": m(models.HouseRioGrandeSul, "18:00", models.LotteryGeral),
	"rs_21_maluca": m(models.HouseRioGrandeSul, "21:00", models.LotteryGeral),
}
