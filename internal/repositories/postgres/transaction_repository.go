package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/repositories"
)

// TransactionRepositoryImpl implements the TransactionRepository interface
// on the transactions table.
type TransactionRepositoryImpl struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) *TransactionRepositoryImpl {
	return &TransactionRepositoryImpl{db: db}
}

var _ repositories.TransactionRepository = (*TransactionRepositoryImpl)(nil)

// Insert writes one payout audit row.
func (r *TransactionRepositoryImpl) Insert(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	metadata, err := json.Marshal(tx.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode transaction metadata: %w", err)
	}

	const query = `
		INSERT INTO transactions (id, user_id, platform_id, tipo, amount, status, external_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.UserID, tx.PlatformID, string(tx.Type), tx.Amount, tx.Status, tx.ExternalID, metadata,
	); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", tx.ExternalID, err)
	}
	return nil
}
