// Package repository implements Postgres persistence for user accounts.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository wraps a pgx connection pool. All user persistence goes
// through methods on this type.
type Repository struct {
	pool *pgxpool.Pool
}

// New opens a connection pool against databaseURL and pings it before
// returning, so a bad URL fails at startup rather than on first query.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

// Pool hands out the raw pool for test helpers (advisory locks, schema
// resets). Application code goes through Repository methods.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}
