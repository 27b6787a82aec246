package database

import (
	"context"
	"database/sql"
	"fmt"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS leads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email_identity TEXT NOT NULL UNIQUE,
    download_count INTEGER NOT NULL DEFAULT 1,
    "timestamp" TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leads_timestamp ON leads("timestamp");
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS leads (
    id BIGSERIAL PRIMARY KEY,
    email_identity TEXT NOT NULL UNIQUE,
    download_count INTEGER NOT NULL DEFAULT 1,
    "timestamp" TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leads_timestamp ON leads("timestamp");
`

func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	schema := sqliteSchema
	if driver == DriverPostgres {
		schema = postgresSchema
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
