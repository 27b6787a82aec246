package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xavierca1/divai-site/internal/entity"
)

type LeadRepository struct {
	DB     *sql.DB
	Driver Driver
}

func NewLeadRepository(db *sql.DB, driver Driver) *LeadRepository {
	return &LeadRepository{DB: db, Driver: driver}
}

// Upsert relies on the UNIQUE constraint on email_identity, so two
// concurrent captures of the same address collapse into one row.
func (r *LeadRepository) Upsert(ctx context.Context, identity string, at time.Time) (*entity.Lead, error) {
	query := rebind(r.Driver, `
		INSERT INTO leads (email_identity, download_count, "timestamp")
		VALUES (?, ?, ?)
		ON CONFLICT (email_identity)
		DO UPDATE SET
			download_count = leads.download_count + 1,
			"timestamp" = excluded."timestamp"
		RETURNING id, email_identity, download_count, "timestamp"
	`)

	row := r.DB.QueryRowContext(ctx, query, identity, entity.InitialDownloadCount, at.UTC())

	lead, err := scanLead(row)
	if err != nil {
		return nil, wrapErr("upsert lead", err)
	}
	return lead, nil
}

func (r *LeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, email_identity, download_count, "timestamp"
		FROM leads
		ORDER BY "timestamp" DESC, id DESC
	`
	return r.list(ctx, query)
}

func (r *LeadRepository) ListRecent(ctx context.Context, limit int) ([]entity.Lead, error) {
	if limit <= 0 {
		return []entity.Lead{}, nil
	}

	query := rebind(r.Driver, `
		SELECT id, email_identity, download_count, "timestamp"
		FROM leads
		ORDER BY "timestamp" DESC, id DESC
		LIMIT ?
	`)
	return r.list(ctx, query, limit)
}

func (r *LeadRepository) Aggregate(ctx context.Context) (entity.LeadStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(download_count), 0) FROM leads`

	var stats entity.LeadStats
	var total, downloads int64
	if err := r.DB.QueryRowContext(ctx, query).Scan(&total, &downloads); err != nil {
		return stats, wrapErr("aggregate leads", err)
	}

	stats.TotalLeads = int(total)
	stats.TotalDownloads = int(downloads)
	return stats, nil
}

func (r *LeadRepository) list(ctx context.Context, query string, args ...any) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list leads", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, wrapErr("scan lead", err)
		}
		leads = append(leads, *lead)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list leads", err)
	}
	return leads, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(s rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var ts dbTime
	if err := s.Scan(&lead.ID, &lead.EmailIdentity, &lead.DownloadCount, &ts); err != nil {
		return nil, err
	}
	lead.Timestamp = ts.Time
	return &lead, nil
}

// dbTime accepts both native timestamps and the text form SQLite may hand back.
type dbTime struct {
	Time time.Time
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (t *dbTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unparseable timestamp %q", s)
}

func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: postgres %s: %w", op, pgErr.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
