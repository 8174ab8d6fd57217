package scraper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/pkg/renderfetch"
	"github.com/ultrabanca/results-engine/pkg/webpage"
)

type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Get(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	if page, ok := f.pages[url]; ok {
		return []byte(page), nil
	}
	return nil, errors.New("not found")
}

type rateLimitedFetcher struct{}

func (f *rateLimitedFetcher) Get(_ context.Context, url string) ([]byte, error) {
	return nil, fmt.Errorf("GET %s: %w", url, webpage.ErrRateLimited)
}

type fakeRenderer struct {
	page  *renderfetch.Page
	calls int
}

func (f *fakeRenderer) Render(_ context.Context, _ string) (*renderfetch.Page, error) {
	f.calls++
	if f.page == nil {
		return nil, errors.New("render unavailable")
	}
	return f.page, nil
}

var testEndpoints = Endpoints{
	ResultadoFacil: "https://rf.test",
	PortalBrasil:   "https://pb.test",
	LookGoias:      "https://lg.test",
	HojeNoBicho:    "https://hb.test",
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func findHouse(t *testing.T, code string) HouseConfig {
	t.Helper()
	for _, hc := range Houses() {
		if hc.Code == code {
			return hc
		}
	}
	t.Fatalf("house %s not configured", code)
	return HouseConfig{}
}

func TestScrapeHousePrimarySourceWins(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://rf.test/resultado-do-jogo-do-bicho/RJ/do-dia/2026-03-10": h3gPage,
	}}
	renderer := &fakeRenderer{}
	s := NewScraper(fetcher, renderer, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "RJ"), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "resultadofacil", res.SourceUsed)
	assert.Len(t, res.Drawings, 2)
	assert.Zero(t, res.CreditsUsed)
	assert.Zero(t, renderer.calls)
	assert.Equal(t, []Attempt{{Source: "resultadofacil", Outcome: OutcomeOK}}, res.Attempts)
}

func TestScrapeHouseFallsBackToBackup(t *testing.T) {
	backupPage := `
<html><body>
<h3>12h00 – Alvorada MG</h3>
<p>1º: 9866-17 (Macaco) 2º: 1234-09 (Cobra) 3º: 5678-20 (Peru)
4º: 4321-06 (Cabra) 5º: 8765-17 (Macaco)</p>
</body></html>`
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://pb.test/jogodobicho/minas-gerais/": backupPage,
	}}
	renderer := &fakeRenderer{}
	s := NewScraper(fetcher, renderer, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "MG"), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "portalbrasil", res.SourceUsed)
	require.Len(t, res.Drawings, 1)
	assert.Equal(t, "12:00", res.Drawings[0].Time)
	assert.Equal(t, models.LotteryAlvorada, res.Drawings[0].Lottery)
	assert.Equal(t, "9866", res.Drawings[0].Prizes[0].Number)
	assert.Equal(t, "Macaco", res.Drawings[0].Prizes[0].Animal)
	assert.Zero(t, renderer.calls)
	assert.Equal(t, []Attempt{
		{Source: "resultadofacil", Outcome: OutcomeError},
		{Source: "portalbrasil", Outcome: OutcomeOK},
	}, res.Attempts)
}

func TestScrapeHouseFallsBackToRenderer(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	renderer := &fakeRenderer{page: &renderfetch.Page{HTML: h3gPage}}
	s := NewScraper(fetcher, renderer, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "RJ"), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "render", res.SourceUsed)
	assert.Equal(t, 1, res.CreditsUsed)
	assert.Len(t, res.Drawings, 2)
	assert.Equal(t, []Attempt{
		{Source: "resultadofacil", Outcome: OutcomeError},
		{Source: "render", Outcome: OutcomeOK},
	}, res.Attempts)
}

func TestScrapeHouseRendererMarkdownFallback(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	renderer := &fakeRenderer{page: &renderfetch.Page{Markdown: sampleMarkdown}}
	s := NewScraper(fetcher, renderer, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "RJ"), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "render/markdown", res.SourceUsed)
	assert.Equal(t, 1, res.CreditsUsed)
	assert.NotEmpty(t, res.Drawings)
}

func TestScrapeHouseAllSourcesFail(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	renderer := &fakeRenderer{}
	s := NewScraper(fetcher, renderer, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "RJ"), "2026-03-10")
	assert.Error(t, err)
	// The trace survives the failure so the orchestrator can report it.
	require.NotNil(t, res)
	assert.Equal(t, []Attempt{
		{Source: "resultadofacil", Outcome: OutcomeError},
		{Source: "render", Outcome: OutcomeError},
	}, res.Attempts)
}

func TestScrapeHouseRecordsRateLimit(t *testing.T) {
	fetcher := &rateLimitedFetcher{}
	renderer := &fakeRenderer{page: &renderfetch.Page{HTML: h3gPage}}
	s := NewScraper(fetcher, renderer, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "RJ"), "2026-03-10")
	require.NoError(t, err)
	require.NotEmpty(t, res.Attempts)
	assert.Equal(t, Attempt{Source: "resultadofacil", Outcome: OutcomeRateLimited}, res.Attempts[0])
}

func TestScrapeHouseNacionalCustomURL(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	renderer := &fakeRenderer{page: &renderfetch.Page{}}
	s := NewScraper(fetcher, renderer, testEndpoints, testLogger())

	_, err := s.ScrapeHouse(context.Background(), findHouse(t, "NAC"), "2026-03-10")
	require.NoError(t, err)
	require.NotEmpty(t, fetcher.calls)
	assert.Equal(t, "https://rf.test/resultados-loteria-nacional-do-dia-2026-03-10", fetcher.calls[0])
}

func TestScrapeHouseFederalListing(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://rf.test/ultimos-resultados-da-federal": federalListing,
	}}
	s := NewScraper(fetcher, &fakeRenderer{}, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "FED"), "2026-03-10")
	require.NoError(t, err)
	require.Len(t, res.Drawings, 1)
	assert.Equal(t, "4287", res.Drawings[0].Prizes[0].Number)
}

func TestScrapeHouseBoaSorteFallback(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://hb.test/resultados/bs/": boaSortePage,
	}}
	s := NewScraper(fetcher, &fakeRenderer{}, testEndpoints, testLogger())

	res, err := s.ScrapeHouse(context.Background(), findHouse(t, "BS"), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "hojenobicho", res.SourceUsed)
	require.Len(t, res.Drawings, 1)
	assert.Equal(t, "09:20", res.Drawings[0].Time)
}

func TestExpectedDrawings(t *testing.T) {
	assert.Equal(t, 12, ExpectedDrawings("BA"))
	assert.Equal(t, 1, ExpectedDrawings("FED"))
	assert.Zero(t, ExpectedDrawings("XX"))
}
