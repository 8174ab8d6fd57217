package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ultrabanca/results-engine/internal/models"
)

// ResultRepository defines the interface for drawing-result persistence
type ResultRepository interface {
	// UpsertDrawing writes one drawing, keyed on (date, time, house, lottery).
	// Returns true when a new row was inserted, false when an existing row was
	// updated or left alone.
	UpsertDrawing(ctx context.Context, d *models.Drawing) (bool, error)
	// GetDrawingsByDates loads every stored drawing for the given dates.
	GetDrawingsByDates(ctx context.Context, dates []string) ([]models.Drawing, error)
	// CountByHouse returns, per house, how many drawings are already stored
	// for the date. Used by the scrape planner to skip finished houses.
	CountByHouse(ctx context.Context, date string) (map[models.House]int, error)
}

// BetRepository defines the interface for bet lifecycle persistence
type BetRepository interface {
	// GetPendingByDates loads pending bets whose play date is in dates,
	// oldest first, capped at limit.
	GetPendingByDates(ctx context.Context, dates []string, limit int) ([]models.Bet, error)
	// MarkWon flips one bet pendente -> premiada recording the prize amount.
	// Returns false when the bet was no longer pending.
	MarkWon(ctx context.Context, betID string, prize decimal.Decimal) (bool, error)
	// MarkRefunded flips one bet pendente -> reembolsado. Returns false when
	// the bet was no longer pending.
	MarkRefunded(ctx context.Context, betID string) (bool, error)
	// MarkLostBatch flips many bets pendente -> perdeu in one statement.
	MarkLostBatch(ctx context.Context, betIDs []string) error
	// MarkLost is the one-row fallback used when the batch statement fails.
	MarkLost(ctx context.Context, betID string) error
}

// WalletRepository defines the interface for the wallet ledger RPC
type WalletRepository interface {
	// ChangeBalance credits amount to the user's saldo wallet through the
	// atomic ledger function. referenceID is the bet being paid.
	ChangeBalance(ctx context.Context, userID string, amount decimal.Decimal, entryType, referenceID, description string) (*models.BalanceChange, error)
}

// OddsRepository defines the interface for multiplier lookups
type OddsRepository interface {
	// PlatformMultiplier returns the active platform-specific multiplier for
	// a modality code, or zero when none is configured.
	PlatformMultiplier(ctx context.Context, platformID, code string) (decimal.Decimal, error)
	// RPCMultiplier calls the fn_get_multiplicador database function.
	RPCMultiplier(ctx context.Context, platformID, code string) (decimal.Decimal, error)
	// DynamicTable loads the global modality -> multiplier configuration.
	DynamicTable(ctx context.Context) (models.OddsTable, error)
}

// ProfileRepository defines the interface for user contact lookups
type ProfileRepository interface {
	// GetContact returns the user's display name and phone for win
	// notifications. A missing profile is not an error; the name falls back
	// to a generic greeting.
	GetContact(ctx context.Context, userID string) (name string, phone string, err error)
}

// TransactionRepository defines the interface for payout audit rows
type TransactionRepository interface {
	// Insert writes one audit row. Failures here are logged, never fatal:
	// the ledger entry already happened.
	Insert(ctx context.Context, tx *models.Transaction) error
}
