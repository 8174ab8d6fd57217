package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultrabanca/results-engine/internal/models"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

const h3gPage = `
<html><body>
<h3 class="g">Resultado PTM 11h00</h3>
<table>
<tr><td>1º</td><td>1234</td><td>Macaco</td></tr>
<tr><td>2º</td><td>5678</td><td>Vaca</td></tr>
<tr><td>3º</td><td>9012</td><td>Leao</td></tr>
<tr><td>4º</td><td>3456</td><td>Gato</td></tr>
<tr><td>5º</td><td>7890</td><td>Touro</td></tr>
<tr><td>Soma</td><td>27270</td><td></td></tr>
</table>
<h3 class="g">Resultado CORUJA 21h20</h3>
<table>
<tr><td>1º</td><td>1111</td><td>Avestruz</td></tr>
<tr><td>2º</td><td>2222</td><td>Aguia</td></tr>
<tr><td>3º</td><td>3333</td><td>Burro</td></tr>
<tr><td>4º</td><td>4444</td><td>Borboleta</td></tr>
<tr><td>5º</td><td>5555</td><td>Cachorro</td></tr>
<tr><td>6º</td><td>6666</td><td>Cabra</td></tr>
<tr><td>7º</td><td>7777</td><td>Carneiro</td></tr>
</table>
</body></html>`

func TestParseResultPageH3Strategy(t *testing.T) {
	drawings := ParseResultPage(doc(t, h3gPage), "2026-03-10", models.HouseRioFederal)
	require.Len(t, drawings, 2)

	ptm := drawings[0]
	assert.Equal(t, "11:00", ptm.Time)
	assert.Equal(t, models.LotteryPTM, ptm.Lottery)
	require.Len(t, ptm.Prizes, 5)
	assert.Equal(t, "1234", ptm.Prizes[0].Number)
	assert.Equal(t, "Macaco", ptm.Prizes[0].Animal)

	coruja := drawings[1]
	assert.Equal(t, "21:20", coruja.Time)
	assert.Equal(t, models.LotteryCoruja, coruja.Lottery)
	assert.Len(t, coruja.Prizes, 7)
}

func TestParseResultPageSkipsSumRows(t *testing.T) {
	drawings := ParseResultPage(doc(t, h3gPage), "2026-03-10", models.HouseRioFederal)
	require.NotEmpty(t, drawings)
	for _, d := range drawings {
		for _, p := range d.Prizes {
			assert.Len(t, p.Number, 4)
		}
	}
}

func TestParseResultPagePlainH3Fallback(t *testing.T) {
	page := strings.ReplaceAll(h3gPage, ` class="g"`, "")
	drawings := ParseResultPage(doc(t, page), "2026-03-10", models.HouseRioFederal)
	require.Len(t, drawings, 2)
	assert.Equal(t, "11:00", drawings[0].Time)
}

func TestParseResultPageRejectsShortTables(t *testing.T) {
	page := `
<html><body>
<h3 class="g">Resultado 14h20</h3>
<table>
<tr><td>1º</td><td>1234</td></tr>
<tr><td>2º</td><td>5678</td></tr>
<tr><td>3º</td><td>9012</td></tr>
</table>
</body></html>`
	drawings := ParseResultPage(doc(t, page), "2026-03-10", models.HouseRioFederal)
	assert.Empty(t, drawings)
}

func TestParseResultPageLoteceNormalization(t *testing.T) {
	page := `
<html><body>
<h3 class="g">LOTECE 12h00</h3>
<table>
<tr><td>1º</td><td>1234</td></tr>
<tr><td>2º</td><td>5678</td></tr>
<tr><td>3º</td><td>9012</td></tr>
<tr><td>4º</td><td>3456</td></tr>
<tr><td>5º</td><td>7890</td></tr>
</table>
</body></html>`
	drawings := ParseResultPage(doc(t, page), "2026-03-10", models.HouseLotece)
	require.Len(t, drawings, 1)
	assert.Equal(t, "11:00", drawings[0].Time)
	assert.Equal(t, models.LotteryLotece, drawings[0].Lottery)
}

func TestExtractSlot(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Resultado 14h20", "14:20", true},
		{"Resultado 14:20", "14:20", true},
		{"Resultado 9h00", "09:00", true},
		{"Resultado das 21h", "21:00", true},
		{"Sem horario", "", false},
	}
	for _, tt := range tests {
		got, ok := extractSlot(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
