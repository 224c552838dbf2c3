package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// migrate runs all migrations in order
func migrate(ctx context.Context, db *sql.DB, migrations []string) error {
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

var sqliteMigrations = []string{
	migrationSQLiteKeyValues,
}

var postgresMigrations = []string{
	migrationPostgresKeyValues,
}

const migrationSQLiteKeyValues = `
CREATE TABLE IF NOT EXISTS key_values (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

const migrationPostgresKeyValues = `
CREATE TABLE IF NOT EXISTS key_values (
    key VARCHAR(255) PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT NOW()
);
`
