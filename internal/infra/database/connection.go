package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	_ "modernc.org/sqlite"             // local file driver
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "pgx"
)

const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// ResolveDriver picks the driver from the connection string. Anything that
// is not a postgres URL is treated as a local SQLite file.
func ResolveDriver(connString string) (Driver, string) {
	if strings.HasPrefix(connString, "postgres://") || strings.HasPrefix(connString, "postgresql://") {
		return DriverPostgres, connString
	}

	dsn := strings.TrimPrefix(connString, "sqlite://")
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if strings.Contains(dsn, "?") {
		return DriverSQLite, dsn + "&" + sqlitePragmas
	}
	return DriverSQLite, dsn + "?" + sqlitePragmas
}

// NewDBConnection opens the pool, applies the schema and pings the server.
func NewDBConnection(ctx context.Context, connString string) (*sql.DB, Driver, error) {
	driver, dsn := ResolveDriver(connString)

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, driver, fmt.Errorf("open %s: %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		// one writer at a time, WAL lets readers through
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, driver, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := Migrate(ctx, db, driver); err != nil {
		db.Close()
		return nil, driver, err
	}

	return db, driver, nil
}

// rebind rewrites ? placeholders into $n for Postgres.
func rebind(driver Driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
