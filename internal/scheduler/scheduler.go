// Package scheduler drives the recurring jobs: the half-hourly scrape and
// settle pass, and the payment reconciliation poll against the platform.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/internal/config"
	"github.com/ultrabanca/results-engine/internal/services"
	"github.com/ultrabanca/results-engine/internal/utils"
	"github.com/ultrabanca/results-engine/pkg/appclient"
)

// PaymentReconciler asks the platform to re-check pending deposits.
type PaymentReconciler interface {
	CheckPendingPayments(ctx context.Context, hoursBack, limit int) (*appclient.ReconcileSummary, error)
}

// Scheduler owns the cron runner and the registered jobs.
type Scheduler struct {
	cron       *cron.Cron
	scrape     services.ScrapeService
	settlement services.SettlementService
	logger     *slog.Logger
}

// New creates a scheduler on the Brasília clock. The specs come from
// configuration so a deploy can silence either job.
func New(cfg *config.Config, scrape services.ScrapeService, settlement services.SettlementService, reconciler PaymentReconciler, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(utils.Brasilia))

	s := &Scheduler{
		cron:       c,
		scrape:     scrape,
		settlement: settlement,
		logger:     logger,
	}

	if _, err := c.AddFunc(cfg.Scheduler.ScrapeSpec, s.runScrapeAndSettle); err != nil {
		return nil, err
	}
	if reconciler != nil {
		if _, err := c.AddFunc(cfg.Scheduler.ReconcileSpec, func() { s.runReconcile(reconciler) }); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.logger.Info("scheduler started")
	s.cron.Start()
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// runScrapeAndSettle is one full pass: pull today's results from every
// source, then settle today's and yesterday's pending bets against whatever
// landed.
func (s *Scheduler) runScrapeAndSettle() {
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Minute)
	defer cancel()

	date := utils.Today()
	summary, err := s.scrape.ScrapeDay(ctx, date)
	if err != nil {
		s.logger.Error("scheduled scrape failed", "date", date, "error", err)
	} else {
		s.logger.Info("scheduled scrape done",
			"date", date, "scraped", summary.Scraped, "upserted", summary.Upserted, "credits", summary.CreditsUsed)
	}

	if _, err := s.settlement.SettleRecent(ctx); err != nil {
		s.logger.Error("scheduled settlement failed", "error", err)
	}
}

// runReconcile nudges the platform to poll its payment providers for
// deposits still marked pending.
func (s *Scheduler) runReconcile(reconciler PaymentReconciler) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	summary, err := reconciler.CheckPendingPayments(ctx, 24, 100)
	if err != nil {
		s.logger.Warn("payment reconciliation failed", "error", err)
		return
	}
	s.logger.Info("payment reconciliation done",
		"checked", summary.Checked, "confirmed", summary.Confirmed, "errors", summary.Errors)
}
