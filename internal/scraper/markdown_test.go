package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultrabanca/results-engine/internal/models"
)

const sampleMarkdown = `
# Resultados do dia

## 21:20, CORUJA

| 1º | 3238 | Cobra |
| 2º | 1456 | Cavalo |
| 3º | 9901 | Vaca |
| 4º | 4410 | Gato |
| 5º | 2277 | Jacare |

## 14h20 PT

| 1º | 1234 |
| 2º | 5678 |
| 3º | 9012 |
| 4º | 3456 |
| 5º | 7890 |
| 6º | 2468 |
| 7º | 1357 |
| 8º | 0001 |

## Sem horario

| 1º | 1111 |
`

func TestParseMarkdown(t *testing.T) {
	drawings := ParseMarkdown(sampleMarkdown, "2026-03-10", models.HouseRioFederal)
	require.Len(t, drawings, 2)

	coruja := drawings[0]
	assert.Equal(t, "21:20", coruja.Time)
	assert.Equal(t, models.LotteryCoruja, coruja.Lottery)
	require.Len(t, coruja.Prizes, 5)
	assert.Equal(t, "3238", coruja.Prizes[0].Number)

	pt := drawings[1]
	assert.Equal(t, "14:20", pt.Time)
	assert.Equal(t, models.LotteryPT, pt.Lottery)
	// Rank 8 is dropped, the store holds 7 prizes at most.
	assert.Len(t, pt.Prizes, models.MaxPrizes)
}

func TestParseMarkdownTooFewPrizes(t *testing.T) {
	md := "## 11h00\n| 1º | 1234 |\n| 2º | 5678 |"
	assert.Empty(t, ParseMarkdown(md, "2026-03-10", models.HouseLotep))
}

func TestParseMarkdownOrdinalRows(t *testing.T) {
	md := `
## 14h20 PT

1º - 1234
2º - 5678
3º: 9012
4º - 3456
5º - 7890
`
	drawings := ParseMarkdown(md, "2026-03-10", models.HouseRioFederal)
	require.Len(t, drawings, 1)
	require.Len(t, drawings[0].Prizes, 5)
	assert.Equal(t, "1234", drawings[0].Prizes[0].Number)
	assert.Equal(t, "9012", drawings[0].Prizes[2].Number)
}

func TestParseMarkdownBareRunsStripDateAndTime(t *testing.T) {
	// No table and no ordinals; the date and slot fragments must not be
	// mistaken for milhares.
	md := `
## Resultado 10/03/2026 as 14h20

1234 5678 9012 3456 7890
`
	drawings := ParseMarkdown(md, "2026-03-10", models.HouseRioFederal)
	require.Len(t, drawings, 1)
	assert.Equal(t, "14:20", drawings[0].Time)
	require.Len(t, drawings[0].Prizes, 5)
	assert.Equal(t, "1234", drawings[0].Prizes[0].Number)
	assert.Equal(t, "7890", drawings[0].Prizes[4].Number)
}
