// Package postgres implements the repository ports on PostgreSQL using pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/platform/config"
)

// DB wraps a pgx connection pool shared by all repositories.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a connection pool from the database configuration.
// The pool is established eagerly so that startup fails fast on a bad DSN.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close releases all pool connections.
func (db *DB) Close() {
	db.Pool.Close()
}

// Name returns the health check name for the database.
// Implements ports.HealthChecker.
func (db *DB) Name() string {
	return "postgres"
}

// Check pings the database.
// Implements ports.HealthChecker.
func (db *DB) Check(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("pinging postgres: %w", err)
	}

	return nil
}
