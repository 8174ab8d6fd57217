package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/repositories"
	"github.com/ultrabanca/results-engine/internal/scraper"
	"github.com/ultrabanca/results-engine/internal/utils"
	"github.com/ultrabanca/results-engine/pkg/caixa"
)

// HouseScraper walks the source chain for one house.
type HouseScraper interface {
	ScrapeHouse(ctx context.Context, hc scraper.HouseConfig, date string) (*scraper.HouseResult, error)
}

// CaixaClient fetches national-lottery results.
type CaixaClient interface {
	LatestResult(ctx context.Context, game string) (*caixa.Result, error)
}

// AlertNotifier posts operational failures to the on-call webhook.
type AlertNotifier interface {
	Notify(ctx context.Context, title, message, source string, cause error)
}

// ScrapeService defines the interface for result ingestion runs
type ScrapeService interface {
	ScrapeDay(ctx context.Context, date string) (*ScrapeSummary, error)
	Backfill(ctx context.Context, days int) ([]*ScrapeSummary, error)
}

// ScrapeSummary reports one ingestion pass over every house. Attempts keeps
// the per-source trace of every house's fallback chain, so a run's paid
// credits and flaky sources can be accounted for after the fact.
type ScrapeSummary struct {
	Date        string                       `json:"date"`
	Scraped     int                          `json:"scraped"`
	Upserted    int                          `json:"upserted"`
	Skipped     []string                     `json:"skipped,omitempty"`
	CreditsUsed int                          `json:"creditsUsed"`
	Attempts    map[string][]scraper.Attempt `json:"attempts,omitempty"`
	Errors      []string                     `json:"errors,omitempty"`
}

// caixaGames maps API slugs to the stored drawing identity. The three games
// back the accumulated products (lotinha, quininha, seninha).
var caixaGames = map[string]models.Lottery{
	"lotofacil": models.LotteryLotoFacil,
	"quina":     models.LotteryQuina,
	"megasena":  models.LotteryMegaSena,
}

// ScrapeServiceImpl implements the ScrapeService interface
type ScrapeServiceImpl struct {
	houses     HouseScraper
	resultRepo repositories.ResultRepository
	caixa      CaixaClient
	alert      AlertNotifier
	logger     *slog.Logger
	delay      time.Duration
	sleep      func(time.Duration)
}

// NewScrapeService creates a new scrape service
func NewScrapeService(
	houses HouseScraper,
	resultRepo repositories.ResultRepository,
	caixaClient CaixaClient,
	alert AlertNotifier,
	delay time.Duration,
	logger *slog.Logger,
) *ScrapeServiceImpl {
	return &ScrapeServiceImpl{
		houses:     houses,
		resultRepo: resultRepo,
		caixa:      caixaClient,
		alert:      alert,
		logger:     logger,
		delay:      delay,
		sleep:      time.Sleep,
	}
}

var _ ScrapeService = (*ScrapeServiceImpl)(nil)

// ScrapeDay runs one ingestion pass for a date: skip houses whose day is
// already complete in the store, walk the source chain for the rest, upsert
// everything found, then pull the CAIXA games.
func (s *ScrapeServiceImpl) ScrapeDay(ctx context.Context, date string) (*ScrapeSummary, error) {
	summary := &ScrapeSummary{Date: date, Attempts: map[string][]scraper.Attempt{}}

	counts, err := s.resultRepo.CountByHouse(ctx, date)
	if err != nil {
		// The planner is an optimization; a failed count just means no skips.
		s.logger.Warn("skip planner unavailable, scraping every house", "error", err)
		counts = map[models.House]int{}
	}

	for i, hc := range scraper.Houses() {
		if i > 0 && s.delay > 0 {
			s.sleep(s.delay)
		}

		expected := scraper.ExpectedDrawings(hc.Code)
		if expected > 0 && counts[hc.House] >= expected {
			s.logger.Info("house already complete, skipping",
				"house", hc.Code, "stored", counts[hc.House], "expected", expected)
			summary.Skipped = append(summary.Skipped, hc.Code)
			continue
		}

		result, err := s.houses.ScrapeHouse(ctx, hc, date)
		if result != nil && len(result.Attempts) > 0 {
			summary.Attempts[hc.Code] = result.Attempts
		}
		if err != nil {
			s.logger.Error("house scrape failed", "house", hc.Code, "error", err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", hc.Code, err))
			continue
		}

		summary.CreditsUsed += result.CreditsUsed
		summary.Scraped += len(result.Drawings)
		s.logger.Info("house scraped",
			"house", hc.Code, "drawings", len(result.Drawings), "source", result.SourceUsed)

		for j := range result.Drawings {
			d := &result.Drawings[j]
			if len(d.Prizes) < models.MinPrizes {
				continue
			}
			if _, err := s.resultRepo.UpsertDrawing(ctx, d); err != nil {
				s.logger.Error("drawing upsert failed", "key", d.Key(), "error", err)
				continue
			}
			summary.Upserted++
		}
	}

	s.scrapeCaixa(ctx, date, summary)

	if len(summary.Errors) == len(scraper.Houses()) {
		err := fmt.Errorf("every house failed: %s", strings.Join(summary.Errors, "; "))
		s.alert.Notify(ctx, "Scrape run failed", fmt.Sprintf("date=%s", date), "results-engine", err)
		return summary, err
	}

	return summary, nil
}

// scrapeCaixa pulls the three national games and stores each one whose
// publication date matches the target day. The drawn dezenas go into the
// first prize slot as a sorted CSV.
func (s *ScrapeServiceImpl) scrapeCaixa(ctx context.Context, date string, summary *ScrapeSummary) {
	dateBR, err := utils.BRDate(date)
	if err != nil {
		s.logger.Error("bad scrape date", "date", date, "error", err)
		return
	}

	for game, lottery := range caixaGames {
		result, err := s.caixa.LatestResult(ctx, game)
		if err != nil {
			s.logger.Warn("CAIXA fetch failed", "game", game, "error", err)
			continue
		}
		if result.DrawDateBR != dateBR {
			s.logger.Info("CAIXA result is for another day",
				"game", game, "published", result.DrawDateBR, "wanted", dateBR)
			continue
		}

		d := &models.Drawing{
			Date:    date,
			Time:    "20:00",
			House:   models.HouseCaixa,
			Lottery: lottery,
			Prizes:  []models.Prize{{Number: strings.Join(result.Numbers, ",")}},
			Source:  "caixa",
		}
		if _, err := s.resultRepo.UpsertDrawing(ctx, d); err != nil {
			s.logger.Error("CAIXA upsert failed", "game", game, "error", err)
			continue
		}
		summary.Scraped++
		summary.Upserted++
		s.logger.Info("CAIXA drawing stored", "game", game, "contest", result.Contest)
	}
}

// Backfill scrapes the last N days, most recent first.
func (s *ScrapeServiceImpl) Backfill(ctx context.Context, days int) ([]*ScrapeSummary, error) {
	var summaries []*ScrapeSummary
	now := utils.Now()
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		summary, err := s.ScrapeDay(ctx, date)
		if err != nil {
			s.logger.Error("backfill day failed", "date", date, "error", err)
		}
		if summary != nil {
			summaries = append(summaries, summary)
		}
	}
	return summaries, nil
}
