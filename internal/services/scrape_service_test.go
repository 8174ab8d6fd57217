package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/scraper"
	"github.com/ultrabanca/results-engine/pkg/caixa"
)

type fakeHouseScraper struct {
	results map[string]*scraper.HouseResult
	failed  map[string]*scraper.HouseResult
	calls   []string
}

func (f *fakeHouseScraper) ScrapeHouse(_ context.Context, hc scraper.HouseConfig, _ string) (*scraper.HouseResult, error) {
	f.calls = append(f.calls, hc.Code)
	if r, ok := f.results[hc.Code]; ok {
		return r, nil
	}
	if r, ok := f.failed[hc.Code]; ok {
		return r, errors.New("all sources exhausted")
	}
	return nil, errors.New("all sources exhausted")
}

type fakeCaixaClient struct {
	results map[string]*caixa.Result
}

func (f *fakeCaixaClient) LatestResult(_ context.Context, game string) (*caixa.Result, error) {
	if r, ok := f.results[game]; ok {
		return r, nil
	}
	return nil, errors.New("api unavailable")
}

func newScrapeFixture(houses *fakeHouseScraper, results *fakeResultRepo, cx *fakeCaixaClient) (*ScrapeServiceImpl, *fakeAlert) {
	alert := &fakeAlert{}
	svc := NewScrapeService(houses, results, cx, alert, 0, slog.Default())
	svc.sleep = func(d time.Duration) {}
	return svc, alert
}

func fullDay(milhares ...string) *scraper.HouseResult {
	d := models.Drawing{Date: "2026-03-10", Time: "11:00", House: models.HouseLookGoias, Lottery: models.LotteryLook}
	for _, m := range milhares {
		d.Prizes = append(d.Prizes, models.Prize{Number: m})
	}
	return &scraper.HouseResult{Drawings: []models.Drawing{d}, SourceUsed: "resultadofacil"}
}

func TestScrapeDaySkipsCompleteHouses(t *testing.T) {
	houses := &fakeHouseScraper{results: map[string]*scraper.HouseResult{}}
	results := &fakeResultRepo{counts: map[models.House]int{
		models.HouseFederal:  1,
		models.HouseBoaSorte: 6,
	}}
	svc, _ := newScrapeFixture(houses, results, &fakeCaixaClient{})

	summary, err := svc.ScrapeDay(context.Background(), "2026-03-10")
	require.NoError(t, err) // two houses skipped, so not every house failed
	assert.ElementsMatch(t, []string{"FED", "BS"}, summary.Skipped)
	assert.NotContains(t, houses.calls, "FED")
	assert.NotContains(t, houses.calls, "BS")
	assert.Len(t, houses.calls, len(scraper.Houses())-2)
}

func TestScrapeDayUpsertsOnlyCompleteDrawings(t *testing.T) {
	houses := &fakeHouseScraper{results: map[string]*scraper.HouseResult{
		"GO": {
			Drawings: []models.Drawing{
				fullDay("1234", "5678", "9012", "3456", "7890").Drawings[0],
				{Date: "2026-03-10", Time: "14:00", House: models.HouseLookGoias, Lottery: models.LotteryLook,
					Prizes: []models.Prize{{Number: "1111"}, {Number: "2222"}}},
			},
			SourceUsed:  "render",
			CreditsUsed: 1,
		},
	}}
	results := &fakeResultRepo{}
	svc, _ := newScrapeFixture(houses, results, &fakeCaixaClient{})

	summary, err := svc.ScrapeDay(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Scraped)
	assert.Equal(t, 1, summary.Upserted)
	assert.Equal(t, 1, summary.CreditsUsed)
	require.Len(t, results.upserts, 1)
	assert.Equal(t, "11:00", results.upserts[0].Time)
}

func TestScrapeDayStoresMatchingCaixaResults(t *testing.T) {
	houses := &fakeHouseScraper{results: map[string]*scraper.HouseResult{
		"GO": fullDay("1234", "5678", "9012", "3456", "7890"),
	}}
	results := &fakeResultRepo{}
	cx := &fakeCaixaClient{results: map[string]*caixa.Result{
		"lotofacil": {Contest: 3000, DrawDateBR: "10/03/2026", Numbers: []string{"02", "05", "06", "13"}},
		"quina":     {Contest: 6400, DrawDateBR: "09/03/2026", Numbers: []string{"10", "20", "30", "40", "50"}},
	}}
	svc, _ := newScrapeFixture(houses, results, cx)

	_, err := svc.ScrapeDay(context.Background(), "2026-03-10")
	require.NoError(t, err)

	var caixaRows []models.Drawing
	for _, d := range results.upserts {
		if d.House == models.HouseCaixa {
			caixaRows = append(caixaRows, d)
		}
	}
	require.Len(t, caixaRows, 1) // quina is yesterday's draw, megasena errored
	assert.Equal(t, models.LotteryLotoFacil, caixaRows[0].Lottery)
	assert.Equal(t, "20:00", caixaRows[0].Time)
	assert.Equal(t, "02,05,06,13", caixaRows[0].Prizes[0].Number)
}

func TestScrapeDayAlertsWhenEveryHouseFails(t *testing.T) {
	houses := &fakeHouseScraper{results: map[string]*scraper.HouseResult{}}
	svc, alert := newScrapeFixture(houses, &fakeResultRepo{}, &fakeCaixaClient{})

	summary, err := svc.ScrapeDay(context.Background(), "2026-03-10")
	require.Error(t, err)
	assert.Len(t, summary.Errors, len(scraper.Houses()))
	assert.Equal(t, []string{"Scrape run failed"}, alert.titles)
}

func TestScrapeDayCollectsSourceAttempts(t *testing.T) {
	ok := fullDay("1234", "5678", "9012", "3456", "7890")
	ok.Attempts = []scraper.Attempt{{Source: "resultadofacil", Outcome: scraper.OutcomeOK}}
	houses := &fakeHouseScraper{
		results: map[string]*scraper.HouseResult{"GO": ok},
		failed: map[string]*scraper.HouseResult{
			"RJ": {Attempts: []scraper.Attempt{
				{Source: "resultadofacil", Outcome: scraper.OutcomeRateLimited},
				{Source: "render", Outcome: scraper.OutcomeError},
			}},
		},
	}
	svc, _ := newScrapeFixture(houses, &fakeResultRepo{}, &fakeCaixaClient{})

	summary, err := svc.ScrapeDay(context.Background(), "2026-03-10")
	require.NoError(t, err)

	// The trace survives for failed houses too.
	assert.Equal(t, ok.Attempts, summary.Attempts["GO"])
	require.Len(t, summary.Attempts["RJ"], 2)
	assert.Equal(t, scraper.OutcomeRateLimited, summary.Attempts["RJ"][0].Outcome)
}

func TestScrapeDaySurvivesPlannerFailure(t *testing.T) {
	houses := &fakeHouseScraper{results: map[string]*scraper.HouseResult{
		"GO": fullDay("1234", "5678", "9012", "3456", "7890"),
	}}
	results := &fakeResultRepo{countErr: errors.New("db down")}
	svc, _ := newScrapeFixture(houses, results, &fakeCaixaClient{})

	summary, err := svc.ScrapeDay(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Empty(t, summary.Skipped)
	assert.Equal(t, 1, summary.Upserted)
}
