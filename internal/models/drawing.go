package models

// House identifies a lottery-issuing authority (banca).
type House string

const (
	HouseRioFederal      House = "RIO/FEDERAL"
	HouseBahia           House = "BAHIA"
	HouseLookGoias       House = "LOOK/GOIAS"
	HouseLotece          House = "LOTECE"
	HouseLotep           House = "LOTEP"
	HouseParaiba         House = "PARAIBA"
	HouseSaoPaulo        House = "SAO-PAULO"
	HouseMinasGerais     House = "MINAS-GERAIS"
	HouseBrasilia        House = "BRASILIA"
	HouseRioGrandeNorte  House = "RIO-GRANDE-NORTE"
	HouseRioGrandeSul    House = "RIO-GRANDE-SUL"
	HouseSergipe         House = "SERGIPE"
	HouseParana          House = "PARANA"
	HouseNacional        House = "NACIONAL"
	HouseFederal         House = "FEDERAL"
	HouseBoaSorte        House = "BOASORTE"
	HouseCaixa           House = "CAIXA"
)

// Lottery names a draw series within a house. GERAL is the catch-all when
// the source page gives no stronger hint.
type Lottery string

const (
	LotteryGeral          Lottery = "GERAL"
	LotteryPT             Lottery = "PT"
	LotteryPTM            Lottery = "PTM"
	LotteryPTV            Lottery = "PTV"
	LotteryPTN            Lottery = "PTN"
	LotteryCoruja         Lottery = "CORUJA"
	LotteryMaluca         Lottery = "MALUCA"
	LotteryLBR            Lottery = "LBR"
	LotteryLotece         Lottery = "LOTECE"
	LotteryLotep          Lottery = "LOTEP"
	LotteryAval           Lottery = "AVAL"
	LotteryCaminhoDaSorte Lottery = "CAMINHO-DA-SORTE"
	LotteryPopular        Lottery = "POPULAR"
	LotteryMonteCarlos    Lottery = "MONTE-CARLOS"
	LotteryCampinaGrande  Lottery = "CAMPINA-GRANDE"
	LotteryAlvorada       Lottery = "ALVORADA"
	LotteryMinasDia       Lottery = "MINAS-DIA"
	LotteryMinasNoite     Lottery = "MINAS-NOITE"
	LotteryPreferida      Lottery = "PREFERIDA"
	LotteryGaucha         Lottery = "GAUCHA"
	LotteryParana         Lottery = "PARANA"
	LotteryLook           Lottery = "LOOK"
	LotteryGoias          Lottery = "GOIAS"
	LotteryBandeirantes   Lottery = "BANDEIRANTES"
	LotteryPaulista       Lottery = "PAULISTA"
	LotteryNacional       Lottery = "NACIONAL"
	LotteryFederal        Lottery = "FEDERAL"
	LotteryBoaSorte       Lottery = "BOASORTE"
	LotteryLotoFacil      Lottery = "LOTO_FACIL"
	LotteryQuina          Lottery = "QUINA"
	LotteryMegaSena       Lottery = "MEGA_SENA"
)

// MaxPrizes is the deepest prize rank the store persists. Sources sometimes
// publish ranks 8-10 but those are never stored.
const MaxPrizes = 7

// MinPrizes is the smallest prize count accepted from a parse; shorter
// tables are partial publications and are discarded.
const MinPrizes = 5

// Prize is a single ranked result within a drawing. Number is the 4-digit
// milhar, zero-padded. For CAIXA drawings Number carries the CSV of drawn
// dezenas instead. Animal is the bicho label when the source publishes one.
type Prize struct {
	Number string `json:"number"`
	Animal string `json:"animal,omitempty"`
}

// Drawing is one lottery's draw at one time of one day. The identity key is
// (Date, Time, House, Lottery); everything else is payload.
type Drawing struct {
	Date    string  `json:"date"`    // YYYY-MM-DD, Brasília calendar
	Time    string  `json:"time"`    // HH:MM, Brasília local
	House   House   `json:"house"`
	Lottery Lottery `json:"lottery"`
	Prizes  []Prize `json:"prizes"`
	Source  string  `json:"source,omitempty"` // which adapter produced it
}

// Key returns the map key used to index drawings during settlement.
func (d *Drawing) Key() string {
	return d.Time + "_" + string(d.House) + "_" + string(d.Lottery)
}

// PrizeNumber returns the zero-padded milhar at 1-based rank, or "" when the
// slot is absent.
func (d *Drawing) PrizeNumber(rank int) string {
	if rank < 1 || rank > len(d.Prizes) {
		return ""
	}
	return d.Prizes[rank-1].Number
}
