package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/divai-site/internal/entity"
)

type CaptureLeadInput struct {
	Email string `json:"email"`
}

type CaptureLeadOutput struct {
	Email         string `json:"email"`
	IsNew         bool   `json:"new"`
	DownloadCount int    `json:"download_count"`
	DownloadURL   string `json:"download_url"`
}

type CaptureLeadUseCase struct {
	Repo        entity.LeadRepositoryInterface
	Mailer      DownloadMailer
	Mode        IdentityMode
	DownloadURL string
	Logger      *zap.Logger
	Now         func() time.Time
}

func NewCaptureLeadUseCase(
	repo entity.LeadRepositoryInterface,
	mailer DownloadMailer,
	mode IdentityMode,
	downloadURL string,
	logger *zap.Logger,
) *CaptureLeadUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CaptureLeadUseCase{
		Repo:        repo,
		Mailer:      mailer,
		Mode:        mode,
		DownloadURL: downloadURL,
		Logger:      logger,
		Now:         time.Now,
	}
}

// Execute validates the address, records the download attempt and unlocks
// the session. The session is only touched once the write has succeeded.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, sess *entity.VisitorSession, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if verr := ValidateEmail(input.Email); verr != nil {
		return nil, verr
	}

	normalized := NormalizeEmail(input.Email)
	identity := EmailIdentity(normalized, uc.Mode)

	lead, err := uc.Repo.Upsert(ctx, identity, uc.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		uc.Logger.Error("lead upsert failed", zap.String("identity", logKey(normalized)), zap.Error(err))
		return nil, &StorageError{Op: "upsert lead", Err: err}
	}

	if sess != nil {
		sess.Unlock(normalized)
	}

	uc.Logger.Info("lead captured",
		zap.String("identity", logKey(normalized)),
		zap.Bool("new", lead.IsNew()),
		zap.Int("download_count", lead.DownloadCount),
	)

	if uc.Mailer != nil {
		go func() {
			if err := uc.Mailer.SendDownloadLink(normalized, uc.DownloadURL); err != nil {
				uc.Logger.Warn("download link mail failed", zap.Error(err))
			}
		}()
	}

	return &CaptureLeadOutput{
		Email:         normalized,
		IsNew:         lead.IsNew(),
		DownloadCount: lead.DownloadCount,
		DownloadURL:   uc.DownloadURL,
	}, nil
}

// logKey keeps raw addresses out of the logs, whatever the identity mode.
func logKey(normalized string) string {
	return EmailIdentity(normalized, IdentityHash)[:12]
}
