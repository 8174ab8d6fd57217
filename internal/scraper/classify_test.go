package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ultrabanca/results-engine/internal/models"
)

func TestIdentifyLottery(t *testing.T) {
	tests := []struct {
		text string
		want models.Lottery
	}{
		{"Resultado CORUJA 21h20", models.LotteryCoruja},
		{"PTM 11h00", models.LotteryPTM},
		{"BAHIA MALUCA 19h", models.LotteryMaluca},
		{"LBR 12h40", models.LotteryLBR},
		{"LOTECE 14h", models.LotteryLotece},
		{"AVAL PE 11h00", models.LotteryAval},
		{"CAMINHO DA SORTE 11h", models.LotteryCaminhoDaSorte},
		{"POPULAR RECIFE 11h", models.LotteryPopular},
		{"NORDESTE MONTE CARLOS", models.LotteryMonteCarlos},
		{"LOTEP 10h45", models.LotteryLotep},
		{"CAMPINA GRANDE 12h45", models.LotteryCampinaGrande},
		{"ALVORADA MG 12h", models.LotteryAlvorada},
		{"MINAS DIA 15h", models.LotteryMinasDia},
		{"LOOK GOIAS 14h", models.LotteryLook}, // LOOK beats GOIAS
		{"BANDEIRANTES 15h30", models.LotteryBandeirantes},
		{"LOTERIA NACIONAL 12h", models.LotteryNacional},
		{"FEDERAL 19h", models.LotteryFederal},
		{"Resultado PT RIO 14h20", models.LotteryPT},
		{"Resultado do dia", models.LotteryGeral},
		// PT must match as a word, not inside other tokens.
		{"APTIDAO 14h", models.LotteryGeral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IdentifyLottery(tt.text), tt.text)
	}
}
