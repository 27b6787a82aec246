package entity

import (
	"context"
	"errors"
	"time"
)

// InitialDownloadCount is the counter value of a freshly captured lead.
const InitialDownloadCount = 1

var ErrAdminDisabled = errors.New("admin report is disabled")

type Lead struct {
	ID            int64     `json:"id"`
	EmailIdentity string    `json:"email_identity"`
	DownloadCount int       `json:"download_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// IsNew reports whether the lead was just inserted.
func (l *Lead) IsNew() bool {
	return l.DownloadCount == InitialDownloadCount
}

type LeadStats struct {
	TotalLeads     int `json:"total_leads"`
	TotalDownloads int `json:"total_downloads"`
}

type LeadRepositoryInterface interface {
	// Upsert inserts the identity or bumps its counter in a single statement.
	Upsert(ctx context.Context, identity string, at time.Time) (*Lead, error)
	ListAll(ctx context.Context) ([]Lead, error)
	ListRecent(ctx context.Context, limit int) ([]Lead, error)
	Aggregate(ctx context.Context) (LeadStats, error)
}
