package invoice

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore executes invoice statements against a pgx connection pool.
// It is the production Executor; tests inject an in-memory fake.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store backed by the given pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Exec runs one parameterized statement. Concurrency control is the
// database's job; this layer adds no locking or ordering.
func (s *PGStore) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := s.pool.Exec(ctx, sql, args...)
	return err
}

const listInvoicesSQL = `SELECT id, customer_id, amount, status, date FROM invoices ORDER BY date DESC, id`

// List returns all invoices, newest first. It backs the cached listing
// page whose staleness the mutation signal controls.
func (s *PGStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx, listInvoicesSQL)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec  Record
			date pgtype.Date
		)
		if err := rows.Scan(&rec.ID, &rec.CustomerID, &rec.AmountCents, &rec.Status, &date); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		rec.Date = date.Time.Format("2006-01-02")
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return records, nil
}
