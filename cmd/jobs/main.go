// Command jobs runs one-off ingestion and settlement passes from the shell:
//
//	jobs scrape [-date YYYY-MM-DD] [-days N]
//	jobs backfill [-days N]
//	jobs settle [-date YYYY-MM-DD]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/internal/config"
	"github.com/ultrabanca/results-engine/internal/repositories"
	pgrepo "github.com/ultrabanca/results-engine/internal/repositories/postgres"
	"github.com/ultrabanca/results-engine/internal/scraper"
	"github.com/ultrabanca/results-engine/internal/services"
	"github.com/ultrabanca/results-engine/internal/utils"
	"github.com/ultrabanca/results-engine/pkg/alert"
	"github.com/ultrabanca/results-engine/pkg/appclient"
	"github.com/ultrabanca/results-engine/pkg/caixa"
	"github.com/ultrabanca/results-engine/pkg/postgres"
	"github.com/ultrabanca/results-engine/pkg/renderfetch"
	"github.com/ultrabanca/results-engine/pkg/webpage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: jobs <scrape|backfill|settle> [flags]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxOpenConns, time.Duration(cfg.Postgres.ConnMaxLifetime)*time.Second)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var resultRepo repositories.ResultRepository = pgrepo.NewResultRepository(db)
	var betRepo repositories.BetRepository = pgrepo.NewBetRepository(db)
	var walletRepo repositories.WalletRepository = pgrepo.NewWalletRepository(db)
	var oddsRepo repositories.OddsRepository = pgrepo.NewOddsRepository(db)
	var profileRepo repositories.ProfileRepository = pgrepo.NewProfileRepository(db)
	var txRepo repositories.TransactionRepository = pgrepo.NewTransactionRepository(db)

	fetcher := webpage.NewClient(logger)
	renderer := renderfetch.NewClient(cfg.Sources.RenderAPIBaseURL, cfg.Sources.RenderAPIKey, logger)
	caixaClient := caixa.NewClient(cfg.Sources.CaixaBaseURL, cfg.Sources.MockSources, logger)
	alertNotifier := alert.NewNotifier(cfg.Alert.WebhookURL, logger)
	platformClient := appclient.NewClient(cfg.App.BaseURL, cfg.App.InternalAPISecret, logger)

	houseScraper := scraper.NewScraper(fetcher, renderer, scraper.Endpoints{
		ResultadoFacil: cfg.Sources.ResultadoFacilBaseURL,
		PortalBrasil:   cfg.Sources.PortalBrasilBaseURL,
		LookGoias:      cfg.Sources.LookGoiasBaseURL,
		HojeNoBicho:    cfg.Sources.HojeNoBichoBaseURL,
	}, logger)

	scrapeService := services.NewScrapeService(
		houseScraper, resultRepo, caixaClient, alertNotifier,
		time.Duration(cfg.Sources.InterHouseDelayMs)*time.Millisecond, logger,
	)
	settlementService := services.NewSettlementService(
		resultRepo, betRepo, walletRepo, oddsRepo, profileRepo, txRepo,
		platformClient, alertNotifier, cfg.Scheduler.MaxPendingBets, logger,
	)

	switch os.Args[1] {
	case "scrape":
		fs := flag.NewFlagSet("scrape", flag.ExitOnError)
		date := fs.String("date", utils.Today(), "play date to scrape, YYYY-MM-DD")
		days := fs.Int("days", 1, "backfill the last N days instead of one date")
		_ = fs.Parse(os.Args[2:])

		if *days > 1 {
			summaries, err := scrapeService.Backfill(ctx, *days)
			exitOn(logger, err)
			for _, s := range summaries {
				logger.Info("day scraped", "date", s.Date, "upserted", s.Upserted, "credits", s.CreditsUsed)
			}
			return
		}
		summary, err := scrapeService.ScrapeDay(ctx, *date)
		exitOn(logger, err)
		logger.Info("scrape done", "date", summary.Date, "scraped", summary.Scraped,
			"upserted", summary.Upserted, "skipped", len(summary.Skipped), "credits", summary.CreditsUsed)

	case "backfill":
		fs := flag.NewFlagSet("backfill", flag.ExitOnError)
		days := fs.Int("days", 7, "number of recent days to scrape")
		_ = fs.Parse(os.Args[2:])

		summaries, err := scrapeService.Backfill(ctx, *days)
		exitOn(logger, err)
		for _, s := range summaries {
			logger.Info("day scraped", "date", s.Date, "upserted", s.Upserted, "credits", s.CreditsUsed)
		}
		if _, err := settlementService.SettleRecent(ctx); err != nil {
			logger.Error("settlement after backfill failed", "error", err)
		}

	case "settle":
		fs := flag.NewFlagSet("settle", flag.ExitOnError)
		date := fs.String("date", "", "play date to settle, YYYY-MM-DD; empty settles today and yesterday")
		_ = fs.Parse(os.Args[2:])

		if *date == "" {
			summaries, err := settlementService.SettleRecent(ctx)
			exitOn(logger, err)
			for _, s := range summaries {
				logger.Info("day settled", "date", s.Date, "checked", s.Checked, "won", s.Won,
					"lost", s.Lost, "refunded", s.Refunded, "pending", s.StillPending)
			}
			return
		}
		summary, err := settlementService.SettleDate(ctx, *date)
		exitOn(logger, err)
		logger.Info("settlement done", "date", summary.Date, "checked", summary.Checked,
			"won", summary.Won, "lost", summary.Lost, "refunded", summary.Refunded, "pending", summary.StillPending)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}

func exitOn(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("job failed", "error", err)
		os.Exit(1)
	}
}
