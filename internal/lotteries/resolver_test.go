package lotteries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultrabanca/results-engine/internal/models"
)

func TestResolveKnownTokens(t *testing.T) {
	tests := []struct {
		token   string
		house   models.House
		time    string
		lottery models.Lottery
	}{
		{"rj_pt_14", models.HouseRioFederal, "14:20", models.LotteryPT},
		{"pt_14", models.HouseRioFederal, "14:20", models.LotteryPT},
		{"ba_maluca_19", models.HouseBahia, "19:00", models.LotteryMaluca},
		{"ce_12", models.HouseLotece, "11:00", models.LotteryLotece}, // normalized slot
		{"pb_lotep_15", models.HouseParaiba, "15:45", models.LotteryLotep},
		{"sp_band_15", models.HouseSaoPaulo, "15:30", models.LotteryBandeirantes},
		{"mg_21", models.HouseMinasGerais, "21:00", models.LotteryPreferida},
		{"lt_look_23hs", models.HouseLookGoias, "23:19", models.LotteryLook},
		{"fed_19", models.HouseFederal, "19:00", models.LotteryFederal},
		{"go_14_maluca", models.HouseLookGoias, "14:00", models.LotteryLook},
	}
	for _, tt := range tests {
		mapping, ok := Resolve(tt.token)
		require.True(t, ok, tt.token)
		assert.Equal(t, tt.house, mapping.House, tt.token)
		assert.Equal(t, tt.time, mapping.Time, tt.token)
		assert.Equal(t, tt.lottery, mapping.Lottery, tt.token)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	_, ok := Resolve("xx_99")
	assert.False(t, ok)
}

func TestMappingKey(t *testing.T) {
	mapping, ok := Resolve("ba_19")
	require.True(t, ok)
	assert.Equal(t, "19:00_BAHIA_GERAL", mapping.Key())
}

func TestNeedsReversal(t *testing.T) {
	assert.True(t, NeedsReversal("rj_pt_14_maluca"))
	assert.True(t, NeedsReversal("ce_11_maluca"))
	assert.False(t, NeedsReversal("rj_pt_14"))
	// BAHIA MALUCA has its own stored drawings.
	assert.False(t, NeedsReversal("ba_maluca_19"))
}

func TestFullReversal(t *testing.T) {
	assert.True(t, FullReversal("ce_11_maluca"))
	assert.False(t, FullReversal("go_14_maluca"))
}

func TestMalucaTokensShareBaseDrawing(t *testing.T) {
	for token := range tokenTable {
		if !strings.HasSuffix(token, "_maluca") || strings.HasPrefix(token, "ba_maluca") {
			continue
		}
		base := strings.TrimSuffix(token, "_maluca")
		baseMapping, ok := Resolve(base)
		require.True(t, ok, "maluca token %s has no base token", token)
		assert.Equal(t, baseMapping.Key(), tokenTable[token].Key(), token)
	}
}
