package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ultrabanca/results-engine/internal/repositories"
)

// ProfileRepositoryImpl implements the ProfileRepository interface on the
// profiles table.
type ProfileRepositoryImpl struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepositoryImpl {
	return &ProfileRepositoryImpl{db: db}
}

var _ repositories.ProfileRepository = (*ProfileRepositoryImpl)(nil)

// GetContact returns the user's display name and phone.
func (r *ProfileRepositoryImpl) GetContact(ctx context.Context, userID string) (string, string, error) {
	var row struct {
		Name  sql.NullString `db:"nome"`
		Phone sql.NullString `db:"telefone"`
	}
	err := r.db.GetContext(ctx, &row, `SELECT nome, telefone FROM profiles WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to load profile %s: %w", userID, err)
	}
	return row.Name.String, row.Phone.String, nil
}
