package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Conversion represents one recorded conversion in the DB.
type Conversion struct {
	ID        string
	Base      string
	Target    string
	Amount    float64
	Rate      float64
	Result    float64
	CreatedAt time.Time
}

// HistoryRepository defines DB operations for the conversion history.
type HistoryRepository interface {
	Insert(ctx context.Context, c *Conversion) error
	Recent(ctx context.Context, limit int) ([]Conversion, error)
	TrimTo(ctx context.Context, keep int) error
	Clear(ctx context.Context) error
}

// PostgresHistoryRepository is an implementation of HistoryRepository using PostgreSQL.
type PostgresHistoryRepository struct {
	db *sql.DB
}

// NewPostgresHistoryRepository creates a new PostgresHistoryRepository.
func NewPostgresHistoryRepository(db *sql.DB) HistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// Insert appends one conversion record.
func (r *PostgresHistoryRepository) Insert(ctx context.Context, c *Conversion) error {
	query := `INSERT INTO conversions (id, base, target, amount, rate, result, created_at)
              VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Base, c.Target, c.Amount, c.Rate, c.Result, c.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert conversion: %w", err)
	}
	return nil
}

// Recent returns up to limit conversions, newest first.
func (r *PostgresHistoryRepository) Recent(ctx context.Context, limit int) ([]Conversion, error) {
	query := `SELECT id::text, base, target, amount, rate, result, created_at
              FROM conversions
              ORDER BY created_at DESC
              LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer rows.Close() //nolint:errcheck // best-effort close

	var out []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.Base, &c.Target, &c.Amount, &c.Rate, &c.Result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conversions: %w", err)
	}
	return out, nil
}

// TrimTo deletes all but the newest keep conversions.
func (r *PostgresHistoryRepository) TrimTo(ctx context.Context, keep int) error {
	query := `DELETE FROM conversions
              WHERE id NOT IN (
                  SELECT id FROM conversions ORDER BY created_at DESC LIMIT $1
              )`

	if _, err := r.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("failed to trim conversions: %w", err)
	}
	return nil
}

// Clear removes all conversion records.
func (r *PostgresHistoryRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversions`); err != nil {
		return fmt.Errorf("failed to clear conversions: %w", err)
	}
	return nil
}
