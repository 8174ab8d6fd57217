package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/internal/engine"
	"github.com/ultrabanca/results-engine/internal/lotteries"
	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/repositories"
	"github.com/ultrabanca/results-engine/internal/utils"
	"github.com/ultrabanca/results-engine/pkg/appclient"
)

// refundGrace is how long past a drawing's scheduled time the engine waits
// before treating a missing result as never-coming and refunding the stake.
const refundGrace = 12 * time.Hour

// WinNotifier delivers the premio trigger after a payout.
type WinNotifier interface {
	NotifyWin(ctx context.Context, n appclient.WinNotification)
}

// SettlementService defines the interface for bet settlement runs
type SettlementService interface {
	SettleDate(ctx context.Context, date string) (*SettlementSummary, error)
	SettleRecent(ctx context.Context) ([]*SettlementSummary, error)
}

// SettlementSummary reports one settlement pass over a play date.
type SettlementSummary struct {
	Date         string `json:"date"`
	Checked      int    `json:"checked"`
	Won          int    `json:"won"`
	Lost         int    `json:"lost"`
	Refunded     int    `json:"refunded"`
	StillPending int    `json:"stillPending"`
}

// SettlementServiceImpl implements the SettlementService interface
type SettlementServiceImpl struct {
	resultRepo  repositories.ResultRepository
	betRepo     repositories.BetRepository
	walletRepo  repositories.WalletRepository
	oddsRepo    repositories.OddsRepository
	profileRepo repositories.ProfileRepository
	txRepo      repositories.TransactionRepository
	notifier    WinNotifier
	alert       AlertNotifier
	logger      *slog.Logger
	maxBets     int
	now         func() time.Time
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	resultRepo repositories.ResultRepository,
	betRepo repositories.BetRepository,
	walletRepo repositories.WalletRepository,
	oddsRepo repositories.OddsRepository,
	profileRepo repositories.ProfileRepository,
	txRepo repositories.TransactionRepository,
	notifier WinNotifier,
	alert AlertNotifier,
	maxBets int,
	logger *slog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		resultRepo:  resultRepo,
		betRepo:     betRepo,
		walletRepo:  walletRepo,
		oddsRepo:    oddsRepo,
		profileRepo: profileRepo,
		txRepo:      txRepo,
		notifier:    notifier,
		alert:       alert,
		logger:      logger,
		maxBets:     maxBets,
		now:         utils.Now,
	}
}

var _ SettlementService = (*SettlementServiceImpl)(nil)

// missingDrawing tracks a bet token whose drawing has not been stored yet.
type missingDrawing struct {
	token string
	time  string
}

// SettleRecent settles today's play date and then yesterday's, so bets on
// drawings published shortly after midnight are not stranded.
func (s *SettlementServiceImpl) SettleRecent(ctx context.Context) ([]*SettlementSummary, error) {
	var summaries []*SettlementSummary
	for _, date := range []string{utils.Today(), utils.Yesterday()} {
		summary, err := s.SettleDate(ctx, date)
		if err != nil {
			s.logger.Error("settlement pass failed", "date", date, "error", err)
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// SettleDate runs one settlement pass: load the day's drawings, walk every
// pending bet for that play date and decide won / lost / refunded / wait.
func (s *SettlementServiceImpl) SettleDate(ctx context.Context, date string) (*SettlementSummary, error) {
	summary := &SettlementSummary{Date: date}

	drawings, err := s.resultRepo.GetDrawingsByDates(ctx, []string{date})
	if err != nil {
		s.alert.Notify(ctx, "Settlement aborted", fmt.Sprintf("date=%s: could not load drawings", date), "results-engine", err)
		return summary, fmt.Errorf("failed to load drawings for %s: %w", date, err)
	}
	if len(drawings) == 0 {
		s.logger.Info("no drawings stored yet, nothing to settle", "date", date)
		return summary, nil
	}

	drawingMap := make(map[string]*models.Drawing, len(drawings))
	for i := range drawings {
		d := &drawings[i]
		drawingMap[d.Key()] = d
		// On Federal days BAHIA publishes the evening slot as FEDERAL while
		// the bet tokens map to GERAL. Alias the row so they still match.
		if d.House == models.HouseBahia && d.Lottery == models.LotteryFederal {
			alias := d.Time + "_" + string(models.HouseBahia) + "_" + string(models.LotteryGeral)
			if _, exists := drawingMap[alias]; !exists {
				drawingMap[alias] = d
			}
		}
	}

	dynamic, err := s.oddsRepo.DynamicTable(ctx)
	if err != nil {
		s.logger.Warn("dynamic odds unavailable", "error", err)
		dynamic = models.OddsTable{}
	}

	bets, err := s.betRepo.GetPendingByDates(ctx, []string{date}, s.maxBets)
	if err != nil {
		s.alert.Notify(ctx, "Settlement aborted", fmt.Sprintf("date=%s: could not load pending bets", date), "results-engine", err)
		return summary, fmt.Errorf("failed to load pending bets for %s: %w", date, err)
	}
	summary.Checked = len(bets)

	// Past 80% of the run's time budget the pass stops deciding new bets and
	// commits what it already has. The remainder is left for the next pass.
	var cutoff time.Time
	if deadline, ok := ctx.Deadline(); ok {
		cutoff = deadline.Add(-time.Until(deadline) / 5)
	}

	var lostBatch []string
	for i := range bets {
		if ctx.Err() != nil || (!cutoff.IsZero() && time.Now().After(cutoff)) {
			s.logger.Warn("settlement budget exhausted, deferring remaining bets",
				"date", date, "decided", i, "remaining", len(bets)-i)
			summary.StillPending += len(bets) - i
			break
		}
		s.settleBet(ctx, &bets[i], date, drawingMap, dynamic, summary, &lostBatch)
	}

	s.flushLost(ctx, lostBatch)

	s.logger.Info("settlement pass done",
		"date", date, "checked", summary.Checked, "won", summary.Won,
		"lost", summary.Lost, "refunded", summary.Refunded, "pending", summary.StillPending)
	return summary, nil
}

func (s *SettlementServiceImpl) settleBet(
	ctx context.Context,
	bet *models.Bet,
	date string,
	drawingMap map[string]*models.Drawing,
	dynamic models.OddsTable,
	summary *SettlementSummary,
	lostBatch *[]string,
) {
	// Re-runs over the same date must not touch bets a previous pass decided.
	if bet.Status != "" && bet.Status != models.BetStatusPending {
		return
	}

	modality := strings.ToLower(strings.TrimSpace(bet.Modality))
	if modality == "" {
		modality = "milhar"
	}

	guesses := make([]string, 0, len(bet.Guesses))
	for _, g := range bet.Guesses {
		if t := strings.TrimSpace(g); t != "" {
			guesses = append(guesses, t)
		}
	}
	if len(guesses) == 0 {
		guesses = []string{""}
	}

	if needed := engine.AccumulatedHitsNeeded(modality); needed > 0 {
		s.settleAccumulated(ctx, bet, modality, guesses, needed, drawingMap, dynamic, summary, lostBatch)
		return
	}

	ranks := engine.ParsePlacement(bet.Placement)

	won := false
	var missing []missingDrawing
	for _, token := range bet.LotteryTokens {
		mapping, ok := lotteries.Resolve(token)
		if !ok {
			s.logger.Warn("bet carries unmapped lottery token", "bet", bet.ID, "token", token)
			continue
		}
		drawing, found := drawingMap[mapping.Key()]
		if !found {
			missing = append(missing, missingDrawing{token: token, time: mapping.Time})
			continue
		}

		view := prizeView(drawing)
		if lotteries.NeedsReversal(token) {
			view = engine.ReverseView(view, lotteries.FullReversal(token))
		}
		if engine.Evaluate(modality, guesses, view, ranks, s.logger) {
			won = true
			break
		}
	}

	switch {
	case won:
		code, betMult := modality, bet.Multiplier
		if modality == "milhar_ct" && !s.exactMilharHit(bet, guesses, ranks, drawingMap) {
			// Consolation tier: only the centena matched, so the payout uses
			// the centena odds and the bet's own multiplier does not apply.
			code, betMult = "centena", decimal.Zero
		}
		s.payWin(ctx, bet, modality, code, betMult, dynamic, summary)
	case len(missing) == 0:
		*lostBatch = append(*lostBatch, bet.ID)
		summary.Lost++
	default:
		s.refundOrWait(ctx, bet, date, missing, summary)
	}
}

// settleAccumulated handles the lotinha / quininha / seninha products, which
// settle against the matching CAIXA game instead of per-lottery tokens.
func (s *SettlementServiceImpl) settleAccumulated(
	ctx context.Context,
	bet *models.Bet,
	modality string,
	guesses []string,
	needed int,
	drawingMap map[string]*models.Drawing,
	dynamic models.OddsTable,
	summary *SettlementSummary,
	lostBatch *[]string,
) {
	var game models.Lottery
	switch {
	case strings.HasPrefix(modality, "lotinha_"):
		game = models.LotteryLotoFacil
	case strings.HasPrefix(modality, "quininha_"):
		game = models.LotteryQuina
	default:
		game = models.LotteryMegaSena
	}

	key := "20:00_" + string(models.HouseCaixa) + "_" + string(game)
	drawing, ok := drawingMap[key]
	if !ok {
		// National draws publish late; the bet waits for the next pass.
		summary.StillPending++
		return
	}

	chosen := engine.SplitAccumulatedGuess(guesses[0])
	if len(chosen) == 0 {
		s.logger.Warn("accumulated bet with unparseable guess", "bet", bet.ID, "guess", guesses[0])
		*lostBatch = append(*lostBatch, bet.ID)
		summary.Lost++
		return
	}

	drawn := engine.SplitAccumulatedGuess(strings.ReplaceAll(drawing.PrizeNumber(1), ",", "-"))
	if len(drawn) == 0 {
		s.logger.Warn("CAIXA drawing without dezenas", "key", key)
		summary.StillPending++
		return
	}

	hits := 0
	for dezena := range chosen {
		if drawn[dezena] {
			hits++
		}
	}
	if hits >= needed {
		s.payWin(ctx, bet, modality, modality, bet.Multiplier, dynamic, summary)
		return
	}
	*lostBatch = append(*lostBatch, bet.ID)
	summary.Lost++
}

// exactMilharHit re-scans a winning milhar_ct bet against the raw (never
// reversed) drawings to tell the full-milhar tier from the centena
// consolation tier.
func (s *SettlementServiceImpl) exactMilharHit(bet *models.Bet, guesses []string, ranks []int, drawingMap map[string]*models.Drawing) bool {
	for _, guess := range guesses {
		padded := padMilhar(guess)
		for _, token := range bet.LotteryTokens {
			mapping, ok := lotteries.Resolve(token)
			if !ok {
				continue
			}
			drawing, found := drawingMap[mapping.Key()]
			if !found {
				continue
			}
			for _, rank := range ranks {
				prize := strings.TrimSpace(drawing.PrizeNumber(rank))
				if prize != "" && padded == padMilhar(prize) {
					return true
				}
			}
		}
	}
	return false
}

// multiplier resolves the payout odds for one modality code: the bet's own
// locked-in multiplier first, then the platform's table, then the database
// fallback function, then the global configuration.
func (s *SettlementServiceImpl) multiplier(ctx context.Context, bet *models.Bet, code string, betMult decimal.Decimal, dynamic models.OddsTable) decimal.Decimal {
	if betMult.IsPositive() {
		return betMult
	}
	if bet.PlatformID != nil && *bet.PlatformID != "" {
		m, err := s.oddsRepo.PlatformMultiplier(ctx, *bet.PlatformID, code)
		if err != nil {
			s.logger.Warn("platform multiplier lookup failed", "platform", *bet.PlatformID, "code", code, "error", err)
		} else if m.IsPositive() {
			return m
		}
		m, err = s.oddsRepo.RPCMultiplier(ctx, *bet.PlatformID, code)
		if err == nil && m.IsPositive() {
			return m
		}
	}
	return dynamic.Multiplier(code)
}

// payWin credits the prize and records the outcome. Order matters: the money
// moves first through the atomic ledger RPC, the bet flips to premiada only
// after the credit landed, then the audit row and the notification follow.
func (s *SettlementServiceImpl) payWin(ctx context.Context, bet *models.Bet, modality, code string, betMult decimal.Decimal, dynamic models.OddsTable, summary *SettlementSummary) {
	unit := bet.UnitValue
	if !unit.IsPositive() {
		unit = bet.TotalValue
	}
	mult := s.multiplier(ctx, bet, code, betMult, dynamic)
	prize := unit.Mul(mult).Round(2)
	summary.Won++
	s.logger.Info("bet won", "bet", bet.ID, "modality", modality, "multiplier", mult.String(), "prize", prize.String())

	if bet.UserID == "" || !prize.IsPositive() {
		s.logger.Warn("winning bet not payable", "bet", bet.ID, "prize", prize.String())
		return
	}

	description := fmt.Sprintf("Premio %s aposta %s", modality, shortID(bet.ID))
	change, err := s.walletRepo.ChangeBalance(ctx, bet.UserID, prize, "premio", bet.ID, description)
	if err != nil {
		s.logger.Error("prize credit failed", "bet", bet.ID, "error", err)
		return
	}

	marked, err := s.betRepo.MarkWon(ctx, bet.ID, prize)
	if err != nil {
		s.logger.Error("failed to mark bet premiada", "bet", bet.ID, "error", err)
		return
	}
	if !marked {
		s.logger.Warn("bet no longer pending after credit", "bet", bet.ID)
		return
	}

	tx := &models.Transaction{
		UserID:     bet.UserID,
		PlatformID: bet.PlatformID,
		Type:       models.TransactionTypePrize,
		Amount:     prize,
		Status:     "completed",
		ExternalID: "payout_" + bet.ID,
		Metadata: map[string]any{
			"modalidade":  modality,
			"description": "Premio de aposta: " + bet.ID,
		},
	}
	if err := s.txRepo.Insert(ctx, tx); err != nil {
		s.logger.Error("failed to record payout transaction", "bet", bet.ID, "error", err)
	}

	name, phone, err := s.profileRepo.GetContact(ctx, bet.UserID)
	if err != nil {
		s.logger.Warn("profile lookup failed", "user", bet.UserID, "error", err)
	}
	if name == "" {
		name = "Cliente"
	}
	prizeF, _ := prize.Float64()
	balanceF, _ := change.BalanceAfter.Float64()
	s.notifier.NotifyWin(ctx, appclient.WinNotification{
		Name:     name,
		Phone:    phone,
		Prize:    prizeF,
		Modality: modality,
		Balance:  balanceF,
	})
}

// refundOrWait decides a bet whose drawings are not all stored: refund the
// stake once every missing drawing is long past due, otherwise leave the bet
// pending for the next pass.
func (s *SettlementServiceImpl) refundOrWait(ctx context.Context, bet *models.Bet, date string, missing []missingDrawing, summary *SettlementSummary) {
	now := s.now()
	for _, m := range missing {
		if !utils.ExpiredBeyond(date, m.time, refundGrace, now) {
			summary.StillPending++
			return
		}
	}

	if bet.UserID == "" {
		s.logger.Error("refundable bet without user", "bet", bet.ID)
		summary.StillPending++
		return
	}

	amount := bet.TotalValue
	if amount.IsPositive() {
		description := "Reembolso: resultado indisponivel apos 12h"
		if _, err := s.walletRepo.ChangeBalance(ctx, bet.UserID, amount, "reembolso", bet.ID, description); err != nil {
			s.logger.Error("refund credit failed", "bet", bet.ID, "error", err)
			summary.StillPending++
			return
		}

		tokens := make([]string, 0, len(missing))
		for _, m := range missing {
			tokens = append(tokens, m.token)
		}
		tx := &models.Transaction{
			UserID:     bet.UserID,
			PlatformID: bet.PlatformID,
			Type:       models.TransactionTypeRefund,
			Amount:     amount,
			Status:     "completed",
			ExternalID: "refund_" + bet.ID,
			Metadata: map[string]any{
				"reason": "Resultado indisponivel apos 12h: " + strings.Join(tokens, ", "),
				"bet_id": bet.ID,
			},
		}
		if err := s.txRepo.Insert(ctx, tx); err != nil {
			s.logger.Error("failed to record refund transaction", "bet", bet.ID, "error", err)
		}
	}

	marked, err := s.betRepo.MarkRefunded(ctx, bet.ID)
	if err != nil {
		s.logger.Error("failed to mark bet reembolsado", "bet", bet.ID, "error", err)
		summary.StillPending++
		return
	}
	if !marked {
		s.logger.Warn("bet no longer pending at refund", "bet", bet.ID)
		return
	}
	summary.Refunded++
	s.logger.Info("bet refunded", "bet", bet.ID, "amount", amount.String())
}

// flushLost marks losing bets in one statement, falling back to row-by-row
// updates when the batch function is unavailable.
func (s *SettlementServiceImpl) flushLost(ctx context.Context, betIDs []string) {
	if len(betIDs) == 0 {
		return
	}
	err := s.betRepo.MarkLostBatch(ctx, betIDs)
	if err == nil {
		s.logger.Info("losing bets marked", "count", len(betIDs))
		return
	}
	s.logger.Warn("batch loss marking failed, falling back to single updates", "error", err)
	for _, id := range betIDs {
		if err := s.betRepo.MarkLost(ctx, id); err != nil {
			s.logger.Error("failed to mark bet perdeu", "bet", id, "error", err)
		}
	}
}

// prizeView lays a drawing's prizes into the fixed 7-slot view the modality
// evaluator expects, index 0 holding the first prize.
func prizeView(d *models.Drawing) []string {
	view := make([]string, models.MaxPrizes)
	for i := 0; i < len(d.Prizes) && i < models.MaxPrizes; i++ {
		view[i] = d.Prizes[i].Number
	}
	return view
}

func padMilhar(s string) string {
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
