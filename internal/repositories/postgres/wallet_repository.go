package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/repositories"
)

// WalletRepositoryImpl implements the WalletRepository interface on top of
// the fn_change_balance database function. The function owns row locking and
// the ledger insert; this layer only shapes the call and decodes the result.
type WalletRepositoryImpl struct {
	db *sqlx.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *sqlx.DB) *WalletRepositoryImpl {
	return &WalletRepositoryImpl{db: db}
}

var _ repositories.WalletRepository = (*WalletRepositoryImpl)(nil)

// ChangeBalance credits amount to the user's saldo wallet. entryType is the
// ledger category ("premio" or "reembolso"); referenceID ties the entry back
// to the bet. A non-empty Error in the decoded payload means the function
// rejected the change and no money moved.
func (r *WalletRepositoryImpl) ChangeBalance(ctx context.Context, userID string, amount decimal.Decimal, entryType, referenceID, description string) (*models.BalanceChange, error) {
	const query = `
		SELECT fn_change_balance(
			p_user_id      => $1,
			p_amount       => $2,
			p_type         => $3,
			p_wallet       => 'saldo',
			p_reference_id => $4,
			p_description  => $5
		)`

	var raw []byte
	if err := r.db.QueryRowxContext(ctx, query, userID, amount, entryType, referenceID, description).Scan(&raw); err != nil {
		return nil, fmt.Errorf("failed to change balance for user %s: %w", userID, err)
	}

	var change models.BalanceChange
	if err := json.Unmarshal(raw, &change); err != nil {
		return nil, fmt.Errorf("failed to decode balance change for user %s: %w", userID, err)
	}
	if change.Error != "" {
		return nil, fmt.Errorf("balance change rejected for user %s: %s", userID, change.Error)
	}
	return &change, nil
}
