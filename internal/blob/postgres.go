package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bookinglog/bookinglog/internal/dbpool"
)

// PostgresMedium stores each named document as a JSONB row in the
// audit_blobs table (schema managed by the embedded migrations).
type PostgresMedium struct {
	pool *dbpool.Pool
}

// NewPostgresMedium creates a PostgresMedium backed by the given pool.
func NewPostgresMedium(pool *dbpool.Pool) *PostgresMedium {
	return &PostgresMedium{pool: pool}
}

// Get returns the document stored under name.
func (m *PostgresMedium) Get(ctx context.Context, name string) ([]byte, error) {
	var data []byte

	err := m.pool.QueryRow(ctx, "SELECT doc FROM audit_blobs WHERE name = $1", name).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", name, err)
	}

	return data, nil
}

// Set replaces the document stored under name.
func (m *PostgresMedium) Set(ctx context.Context, name string, data []byte) error {
	_, err := m.pool.Exec(ctx, `
		INSERT INTO audit_blobs (name, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("writing blob %s: %w", name, err)
	}

	return nil
}
