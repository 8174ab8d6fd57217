package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const federalListing = `
<html><body>
<div>
<h3 class="h4">Resultado da Federal dia 07/03/2026</h3>
<table>
<tr><td>1º</td><td>9999</td><td>25</td><td>Vaca</td></tr>
<tr><td>2º</td><td>8888</td><td>22</td><td>Tigre</td></tr>
<tr><td>3º</td><td>7777</td><td>20</td><td>Peru</td></tr>
<tr><td>4º</td><td>6666</td><td>17</td><td>Macaco</td></tr>
<tr><td>5º</td><td>5555</td><td>14</td><td>Gato</td></tr>
</table>
</div>
<div>
<h3 class="h4">Resultado da Federal dia 10/03/2026</h3>
<table>
<tr><td>1º</td><td>4287</td><td>22</td><td>Tigre</td></tr>
<tr><td>2º</td><td>1356</td><td>14</td><td>Gato</td></tr>
<tr><td>3º</td><td>902</td><td>01</td><td>Avestruz</td></tr>
<tr><td>4º</td><td>7431</td><td>08</td><td>Camelo</td></tr>
<tr><td>5º</td><td>5120</td><td>05</td><td>Cachorro</td></tr>
<tr><td>Soma</td><td>19096</td><td></td><td></td></tr>
</table>
</div>
</body></html>`

func TestParseFederalListing(t *testing.T) {
	drawings := ParseFederalListing(doc(t, federalListing), "2026-03-10", "10/03/2026")
	require.Len(t, drawings, 1)

	d := drawings[0]
	assert.Equal(t, "19:00", d.Time)
	assert.Equal(t, "FEDERAL", string(d.House))
	require.Len(t, d.Prizes, 5)
	assert.Equal(t, "4287", d.Prizes[0].Number)
	assert.Equal(t, "Tigre", d.Prizes[0].Animal)
	// 3-digit milhares are zero-padded.
	assert.Equal(t, "0902", d.Prizes[2].Number)
}

func TestParseFederalListingNoMatchForDate(t *testing.T) {
	drawings := ParseFederalListing(doc(t, federalListing), "2026-03-11", "11/03/2026")
	assert.Empty(t, drawings)
}
