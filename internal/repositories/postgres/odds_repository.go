package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/repositories"
)

// OddsRepositoryImpl implements the OddsRepository interface over the
// platform_modalidades and modalidades_config tables plus the
// fn_get_multiplicador function.
type OddsRepositoryImpl struct {
	db *sqlx.DB
}

// NewOddsRepository creates a new odds repository
func NewOddsRepository(db *sqlx.DB) *OddsRepositoryImpl {
	return &OddsRepositoryImpl{db: db}
}

var _ repositories.OddsRepository = (*OddsRepositoryImpl)(nil)

// PlatformMultiplier returns the active per-platform multiplier for a
// modality code. Missing rows are not an error, they mean "not configured".
func (r *OddsRepositoryImpl) PlatformMultiplier(ctx context.Context, platformID, code string) (decimal.Decimal, error) {
	const query = `
		SELECT multiplicador
		FROM platform_modalidades
		WHERE platform_id = $1 AND codigo = $2 AND ativo = true`

	var m decimal.Decimal
	err := r.db.GetContext(ctx, &m, query, platformID, strings.ToLower(code))
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load platform multiplier %s/%s: %w", platformID, code, err)
	}
	return m, nil
}

// RPCMultiplier calls the fn_get_multiplicador database function.
func (r *OddsRepositoryImpl) RPCMultiplier(ctx context.Context, platformID, code string) (decimal.Decimal, error) {
	const query = `SELECT fn_get_multiplicador(p_platform_id => $1, p_codigo => $2)`

	var m sql.NullString
	if err := r.db.QueryRowxContext(ctx, query, platformID, strings.ToLower(code)).Scan(&m); err != nil {
		return decimal.Zero, fmt.Errorf("failed to call fn_get_multiplicador %s/%s: %w", platformID, code, err)
	}
	if !m.Valid || m.String == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(m.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode fn_get_multiplicador result %q: %w", m.String, err)
	}
	return v, nil
}

// DynamicTable loads the global modality configuration. Codes come back
// lowercased so lookups never depend on how operators typed them.
func (r *OddsRepositoryImpl) DynamicTable(ctx context.Context) (models.OddsTable, error) {
	const query = `SELECT codigo, multiplicador FROM modalidades_config WHERE ativo = true`

	var rows []struct {
		Code       string          `db:"codigo"`
		Multiplier decimal.Decimal `db:"multiplicador"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load modality config: %w", err)
	}

	table := make(models.OddsTable, len(rows))
	for _, row := range rows {
		table[strings.ToLower(row.Code)] = row.Multiplier
	}
	return table, nil
}
