package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/repositories"
)

// BetRepositoryImpl implements the BetRepository interface on the apostas
// table.
type BetRepositoryImpl struct {
	db *sqlx.DB
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *sqlx.DB) *BetRepositoryImpl {
	return &BetRepositoryImpl{db: db}
}

var _ repositories.BetRepository = (*BetRepositoryImpl)(nil)

type betRow struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	PlatformID    *string         `db:"platform_id"`
	DateOfPlay    string          `db:"data_jogo"`
	Modality      string          `db:"modalidade"`
	Placement     string          `db:"colocacao"`
	Guesses       pq.StringArray  `db:"palpites"`
	LotteryTokens pq.StringArray  `db:"loterias"`
	UnitValue     decimal.Decimal `db:"valor_unitario"`
	TotalValue    decimal.Decimal `db:"valor_total"`
	Multiplier    decimal.Decimal `db:"multiplicador"`
	Status        string          `db:"status"`
}

// GetPendingByDates loads pending bets for the given play dates, oldest
// first. limit bounds one settlement pass; leftovers are picked up by the
// next run.
func (r *BetRepositoryImpl) GetPendingByDates(ctx context.Context, dates []string, limit int) ([]models.Bet, error) {
	const query = `
		SELECT id, user_id, platform_id, data_jogo, modalidade, colocacao,
		       palpites, loterias, valor_unitario, valor_total, multiplicador, status
		FROM apostas
		WHERE status = 'pendente' AND data_jogo = ANY($1)
		ORDER BY created_at
		LIMIT $2`

	var rows []betRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(dates), limit); err != nil {
		return nil, fmt.Errorf("failed to load pending bets: %w", err)
	}

	bets := make([]models.Bet, 0, len(rows))
	for _, row := range rows {
		bets = append(bets, models.Bet{
			ID:            row.ID,
			UserID:        row.UserID,
			PlatformID:    row.PlatformID,
			DateOfPlay:    row.DateOfPlay,
			Modality:      row.Modality,
			Placement:     row.Placement,
			Guesses:       []string(row.Guesses),
			LotteryTokens: []string(row.LotteryTokens),
			UnitValue:     row.UnitValue,
			TotalValue:    row.TotalValue,
			Multiplier:    row.Multiplier,
			Status:        models.BetStatus(row.Status),
		})
	}
	return bets, nil
}

// MarkWon flips one bet pendente -> premiada. The status guard in the WHERE
// clause is what makes concurrent settlement runs safe: only one of them
// observes a row count of 1.
func (r *BetRepositoryImpl) MarkWon(ctx context.Context, betID string, prize decimal.Decimal) (bool, error) {
	const query = `
		UPDATE apostas
		SET status = 'premiada', premio_valor = $2, updated_at = now()
		WHERE id = $1 AND status = 'pendente'`

	res, err := r.db.ExecContext(ctx, query, betID, prize)
	if err != nil {
		return false, fmt.Errorf("failed to mark bet %s won: %w", betID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark bet %s won: %w", betID, err)
	}
	return n == 1, nil
}

// MarkRefunded flips one bet pendente -> reembolsado, guarded the same way
// as MarkWon.
func (r *BetRepositoryImpl) MarkRefunded(ctx context.Context, betID string) (bool, error) {
	const query = `
		UPDATE apostas
		SET status = 'reembolsado', updated_at = now()
		WHERE id = $1 AND status = 'pendente'`

	res, err := r.db.ExecContext(ctx, query, betID)
	if err != nil {
		return false, fmt.Errorf("failed to mark bet %s refunded: %w", betID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark bet %s refunded: %w", betID, err)
	}
	return n == 1, nil
}

// MarkLostBatch flips many bets pendente -> perdeu through the batch
// database function.
func (r *BetRepositoryImpl) MarkLostBatch(ctx context.Context, betIDs []string) error {
	if len(betIDs) == 0 {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `SELECT fn_mark_bets_lost($1)`, pq.Array(betIDs)); err != nil {
		return fmt.Errorf("failed to mark %d bets lost: %w", len(betIDs), err)
	}
	return nil
}

// MarkLost flips a single bet pendente -> perdeu. Fallback path when the
// batch function errors.
func (r *BetRepositoryImpl) MarkLost(ctx context.Context, betID string) error {
	const query = `
		UPDATE apostas
		SET status = 'perdeu', updated_at = now()
		WHERE id = $1 AND status = 'pendente'`

	if _, err := r.db.ExecContext(ctx, query, betID); err != nil {
		return fmt.Errorf("failed to mark bet %s lost: %w", betID, err)
	}
	return nil
}
