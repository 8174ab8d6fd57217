package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/api/routes"
	"github.com/ultrabanca/results-engine/internal/config"
	"github.com/ultrabanca/results-engine/internal/handlers"
	"github.com/ultrabanca/results-engine/internal/repositories"
	pgrepo "github.com/ultrabanca/results-engine/internal/repositories/postgres"
	"github.com/ultrabanca/results-engine/internal/scheduler"
	"github.com/ultrabanca/results-engine/internal/scraper"
	"github.com/ultrabanca/results-engine/internal/services"
	"github.com/ultrabanca/results-engine/pkg/alert"
	"github.com/ultrabanca/results-engine/pkg/appclient"
	"github.com/ultrabanca/results-engine/pkg/caixa"
	"github.com/ultrabanca/results-engine/pkg/postgres"
	"github.com/ultrabanca/results-engine/pkg/renderfetch"
	"github.com/ultrabanca/results-engine/pkg/webpage"
)

func main() {
	// .env is optional; deployed instances get real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxOpenConns, time.Duration(cfg.Postgres.ConnMaxLifetime)*time.Second)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Repositories
	var resultRepo repositories.ResultRepository = pgrepo.NewResultRepository(db)
	var betRepo repositories.BetRepository = pgrepo.NewBetRepository(db)
	var walletRepo repositories.WalletRepository = pgrepo.NewWalletRepository(db)
	var oddsRepo repositories.OddsRepository = pgrepo.NewOddsRepository(db)
	var profileRepo repositories.ProfileRepository = pgrepo.NewProfileRepository(db)
	var txRepo repositories.TransactionRepository = pgrepo.NewTransactionRepository(db)

	// Outbound clients
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

	// Services
	scrapeService := services.NewScrapeService(
		houseScraper, resultRepo, caixaClient, alertNotifier,
		time.Duration(cfg.Sources.InterHouseDelayMs)*time.Millisecond, logger,
	)
	settlementService := services.NewSettlementService(
		resultRepo, betRepo, walletRepo, oddsRepo, profileRepo, txRepo,
		platformClient, alertNotifier, cfg.Scheduler.MaxPendingBets, logger,
	)

	// Scheduler
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg, scrapeService, settlementService, platformClient, logger)
		if err != nil {
			logger.Error("failed to build scheduler", "error", err)
			os.Exit(1)
		}
		sched.Start()
	}

	// Handlers and router
	deps := routes.HandlerDependencies{
		ResultHandler: handlers.NewResultHandler(resultRepo),
		JobHandler:    handlers.NewJobHandler(scrapeService, settlementService),
	}
	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if sched != nil {
		sched.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
