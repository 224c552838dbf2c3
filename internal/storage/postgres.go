package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	"github.com/existflow/ticketr/internal/logger"
	_ "github.com/lib/pq"
)

// connectAttempts bounds how often OpenPostgres pings before giving up
const connectAttempts = 5

// Postgres keeps the documents in a PostgreSQL table
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects to dsn and runs migrations
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ping(ctx, db, backoff.NewExponentialBackOff()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	p, err := NewPostgres(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return p, nil
}

// ping waits for the server to accept connections, backing off between tries
func ping(ctx context.Context, db *sql.DB, b backoff.BackOff) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := db.PingContext(ctx)
		if err != nil {
			logger.Warn("Database not reachable", logger.F("error", err.Error()))
		}
		return struct{}{}, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(connectAttempts))
	return err
}

// NewPostgres wraps an open connection pool and runs migrations on it
func NewPostgres(ctx context.Context, db *sql.DB) (*Postgres, error) {
	if err := migrate(ctx, db, postgresMigrations); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM key_values WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO key_values (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM key_values WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

var _ Storage = (*Postgres)(nil)
