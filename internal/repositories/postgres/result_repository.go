package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/repositories"
)

// ResultRepositoryImpl implements the ResultRepository interface on the
// resultados table.
type ResultRepositoryImpl struct {
	db *sqlx.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *sqlx.DB) *ResultRepositoryImpl {
	return &ResultRepositoryImpl{db: db}
}

var _ repositories.ResultRepository = (*ResultRepositoryImpl)(nil)

type resultRow struct {
	Date    string         `db:"data"`
	Time    string         `db:"horario"`
	House   string         `db:"banca"`
	Lottery string         `db:"loteria"`
	Source  sql.NullString `db:"source"`

	P1 sql.NullString `db:"premio_1"`
	P2 sql.NullString `db:"premio_2"`
	P3 sql.NullString `db:"premio_3"`
	P4 sql.NullString `db:"premio_4"`
	P5 sql.NullString `db:"premio_5"`
	P6 sql.NullString `db:"premio_6"`
	P7 sql.NullString `db:"premio_7"`

	B1 sql.NullString `db:"bicho_1"`
	B2 sql.NullString `db:"bicho_2"`
	B3 sql.NullString `db:"bicho_3"`
	B4 sql.NullString `db:"bicho_4"`
	B5 sql.NullString `db:"bicho_5"`
	B6 sql.NullString `db:"bicho_6"`
	B7 sql.NullString `db:"bicho_7"`
}

func (r *resultRow) toDrawing() models.Drawing {
	d := models.Drawing{
		Date:    r.Date,
		Time:    r.Time,
		House:   models.House(r.House),
		Lottery: models.Lottery(r.Lottery),
		Source:  r.Source.String,
	}
	nums := []sql.NullString{r.P1, r.P2, r.P3, r.P4, r.P5, r.P6, r.P7}
	animals := []sql.NullString{r.B1, r.B2, r.B3, r.B4, r.B5, r.B6, r.B7}
	for i, n := range nums {
		if !n.Valid || n.String == "" {
			break
		}
		d.Prizes = append(d.Prizes, models.Prize{Number: n.String, Animal: animals[i].String})
	}
	return d
}

func prizeAt(d *models.Drawing, rank int) (any, any) {
	if rank > len(d.Prizes) {
		return nil, nil
	}
	p := d.Prizes[rank-1]
	var animal any
	if p.Animal != "" {
		animal = p.Animal
	}
	return p.Number, animal
}

// UpsertDrawing writes one drawing keyed on (data, horario, banca, loteria).
// A conflicting row is overwritten; re-scrapes of the same drawing are
// expected and must converge to the latest parse.
func (r *ResultRepositoryImpl) UpsertDrawing(ctx context.Context, d *models.Drawing) (bool, error) {
	args := []any{d.Date, d.Time, string(d.House), string(d.Lottery), d.Source}
	for rank := 1; rank <= models.MaxPrizes; rank++ {
		num, animal := prizeAt(d, rank)
		args = append(args, num, animal)
	}

	// xmax = 0 only holds for freshly inserted tuples.
	const query = `
		INSERT INTO resultados (
			data, horario, banca, loteria, source,
			premio_1, bicho_1, premio_2, bicho_2, premio_3, bicho_3,
			premio_4, bicho_4, premio_5, bicho_5, premio_6, bicho_6,
			premio_7, bicho_7
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (data, horario, banca, loteria) DO UPDATE SET
			source = EXCLUDED.source,
			premio_1 = EXCLUDED.premio_1, bicho_1 = EXCLUDED.bicho_1,
			premio_2 = EXCLUDED.premio_2, bicho_2 = EXCLUDED.bicho_2,
			premio_3 = EXCLUDED.premio_3, bicho_3 = EXCLUDED.bicho_3,
			premio_4 = EXCLUDED.premio_4, bicho_4 = EXCLUDED.bicho_4,
			premio_5 = EXCLUDED.premio_5, bicho_5 = EXCLUDED.bicho_5,
			premio_6 = EXCLUDED.premio_6, bicho_6 = EXCLUDED.bicho_6,
			premio_7 = EXCLUDED.premio_7, bicho_7 = EXCLUDED.bicho_7,
			updated_at = now()
		RETURNING (xmax = 0) AS inserted`

	var inserted bool
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
		return false, fmt.Errorf("failed to upsert drawing %s: %w", d.Key(), err)
	}
	return inserted, nil
}

// GetDrawingsByDates loads every stored drawing for the given dates.
func (r *ResultRepositoryImpl) GetDrawingsByDates(ctx context.Context, dates []string) ([]models.Drawing, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	const query = `
		SELECT data, horario, banca, loteria, source,
		       premio_1, premio_2, premio_3, premio_4, premio_5, premio_6, premio_7,
		       bicho_1, bicho_2, bicho_3, bicho_4, bicho_5, bicho_6, bicho_7
		FROM resultados
		WHERE data = ANY($1)
		ORDER BY data, horario`

	var rows []resultRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(dates)); err != nil {
		return nil, fmt.Errorf("failed to load drawings: %w", err)
	}

	drawings := make([]models.Drawing, 0, len(rows))
	for i := range rows {
		drawings = append(drawings, rows[i].toDrawing())
	}
	return drawings, nil
}

// CountByHouse returns the number of stored drawings per house for one date.
func (r *ResultRepositoryImpl) CountByHouse(ctx context.Context, date string) (map[models.House]int, error) {
	const query = `SELECT banca, COUNT(*) AS n FROM resultados WHERE data = $1 GROUP BY banca`

	var rows []struct {
		House string `db:"banca"`
		N     int    `db:"n"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, date); err != nil {
		return nil, fmt.Errorf("failed to count drawings for %s: %w", date, err)
	}

	counts := make(map[models.House]int, len(rows))
	for _, row := range rows {
		counts[models.House(row.House)] = row.N
	}
	return counts, nil
}
