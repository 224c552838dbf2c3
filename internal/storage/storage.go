// Package storage provides the key-value backends that hold Ticketr's JSON
// documents. Every backend stores opaque string values under string keys.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Storage is a string key-value store
type Storage interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Driver names accepted by Open
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Options selects and configures a backend
type Options struct {
	Driver      string
	Path        string // SQLite file
	DatabaseURL string // Postgres DSN
}

// DefaultPath returns the default SQLite path (~/.ticketr/ticketr.db)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ticketr", "ticketr.db"), nil
}

// Open opens the backend named by opts.Driver
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		path := opts.Path
		if path == "" {
			p, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return OpenSQLite(ctx, path)
	case DriverPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres storage requires a database url")
		}
		return OpenPostgres(ctx, opts.DatabaseURL)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
