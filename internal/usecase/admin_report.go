package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/divai-site/internal/entity"
)

const exportFilenameLayout = "20060102_150405"

type Report struct {
	Stats       entity.LeadStats `json:"stats"`
	Recent      []entity.Lead    `json:"recent"`
	GeneratedAt time.Time        `json:"generated_at"`
}

type AdminReportUseCase struct {
	Repo        entity.LeadRepositoryInterface
	Credentials CredentialChecker
	RecentLimit int
	Logger      *zap.Logger
	Now         func() time.Time
}

func NewAdminReportUseCase(repo entity.LeadRepositoryInterface, creds CredentialChecker, recentLimit int, logger *zap.Logger) *AdminReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &AdminReportUseCase{
		Repo:        repo,
		Credentials: creds,
		RecentLimit: recentLimit,
		Logger:      logger,
		Now:         time.Now,
	}
}

func (uc *AdminReportUseCase) Enabled() bool {
	return uc.Credentials != nil && uc.Credentials.Enabled()
}

// Authorize grants admin access to the session when the secret matches.
func (uc *AdminReportUseCase) Authorize(sess *entity.VisitorSession, secret string) error {
	if !uc.Enabled() {
		return entity.ErrAdminDisabled
	}
	if !uc.Credentials.Check(secret) {
		uc.Logger.Warn("admin login rejected")
		return &AuthError{Message: "invalid password"}
	}
	if sess != nil {
		sess.GrantAdmin()
	}
	uc.Logger.Info("admin login accepted")
	return nil
}

func (uc *AdminReportUseCase) requireAdmin(sess *entity.VisitorSession) error {
	if !uc.Enabled() {
		return entity.ErrAdminDisabled
	}
	if sess == nil || !sess.AdminAuthorized {
		return &AuthError{Message: "admin login required"}
	}
	return nil
}

func (uc *AdminReportUseCase) Report(ctx context.Context, sess *entity.VisitorSession) (*Report, error) {
	if err := uc.requireAdmin(sess); err != nil {
		return nil, err
	}

	stats, err := uc.Repo.Aggregate(ctx)
	if err != nil {
		return nil, &StorageError{Op: "aggregate leads", Err: err}
	}

	recent, err := uc.Repo.ListRecent(ctx, uc.RecentLimit)
	if err != nil {
		return nil, &StorageError{Op: "list recent leads", Err: err}
	}

	return &Report{
		Stats:       stats,
		Recent:      recent,
		GeneratedAt: uc.Now().UTC(),
	}, nil
}

// ExportFilename is the timestamped name of a CSV dump taken at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("leads_export_%s.csv", t.Format(exportFilenameLayout))
}

// Export writes every lead as CSV, newest first, and returns the filename
// the download should be offered under.
func (uc *AdminReportUseCase) Export(ctx context.Context, sess *entity.VisitorSession, w io.Writer) (string, error) {
	if err := uc.requireAdmin(sess); err != nil {
		return "", err
	}

	leads, err := uc.Repo.ListAll(ctx)
	if err != nil {
		return "", &StorageError{Op: "list leads", Err: err}
	}

	filename := ExportFilename(uc.Now())
	if err := WriteLeadsCSV(w, leads); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}

	uc.Logger.Info("leads exported", zap.Int("rows", len(leads)), zap.String("file", filename))
	return filename, nil
}

func WriteLeadsCSV(w io.Writer, leads []entity.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "email_identity", "download_count", "timestamp"}); err != nil {
		return err
	}

	for _, l := range leads {
		record := []string{
			strconv.FormatInt(l.ID, 10),
			l.EmailIdentity,
			strconv.Itoa(l.DownloadCount),
			l.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
