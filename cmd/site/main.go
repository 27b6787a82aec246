package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/divai-site/internal/config"
	"github.com/xavierca1/divai-site/internal/content"
	"github.com/xavierca1/divai-site/internal/infra/database"
	"github.com/xavierca1/divai-site/internal/infra/http/handlers"
	"github.com/xavierca1/divai-site/internal/infra/mail"
	"github.com/xavierca1/divai-site/internal/infra/session"
	"github.com/xavierca1/divai-site/internal/usecase"
	"github.com/xavierca1/divai-site/internal/web/pages"
)

const version = "1.0.0"

//go:embed static
var staticFS embed.FS

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	site, err := content.Load()
	if err != nil {
		logger.Fatal("load site content", zap.Error(err))
	}

	db, driver, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open lead store", zap.Error(err))
	}
	defer db.Close()
	logger.Info("lead store ready", zap.String("driver", string(driver)))

	// Repositories
	leadRepo := database.NewLeadRepository(db, driver)

	// Adapters
	var mailer usecase.DownloadMailer
	if cfg.Mail.Enabled() {
		mailer = mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	}
	credentials := usecase.NewSharedSecret(cfg.AdminPassword)

	// Use cases
	captureUC := usecase.NewCaptureLeadUseCase(
		leadRepo, mailer, usecase.ParseIdentityMode(cfg.IdentityMode), cfg.DownloadURL, logger,
	)
	adminUC := usecase.NewAdminReportUseCase(leadRepo, credentials, cfg.AdminRecentLimit, logger)

	// Session state and limits
	sessions := session.NewStore(cfg.SessionTTL)
	captureLimit := handlers.NewRateLimiter(cfg.CaptureRateLimit, time.Minute)
	loginLimit := handlers.NewRateLimiter(5, time.Minute)
	go sessions.Run(ctx, 10*time.Minute)
	go captureLimit.Run(ctx, 5*time.Minute)
	go loginLimit.Run(ctx, 5*time.Minute)

	// Handlers
	router := pages.NewRouter(site, adminUC.Enabled())
	pageHandler := handlers.NewPageHandler(handlers.PageHandlerConfig{
		Router:      router,
		CaptureUC:   captureUC,
		AdminUC:     adminUC,
		Sessions:    sessions,
		LoginLimit:  loginLimit,
		DownloadURL: cfg.DownloadURL,
		Logger:      logger,
	})
	leadHandler := handlers.NewLeadHandler(captureUC, sessions, captureLimit, logger)
	healthHandler := handlers.NewHealthHandler(db, version)

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		logger.Fatal("access static files", zap.Error(err))
	}

	r := handlers.NewRouter(handlers.Routes{
		Pages:          pageHandler,
		Leads:          leadHandler,
		Health:         healthHandler,
		Sessions:       sessions,
		Static:         http.FS(staticSub),
		Metrics:        promhttp.Handler(),
		AllowedOrigins: cfg.AllowedOrigins,
		SecureCookies:  cfg.SecureCookies,
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("DIV-AI site listening",
			zap.String("addr", cfg.Port),
			zap.Bool("admin_enabled", adminUC.Enabled()),
			zap.Bool("mail_enabled", cfg.Mail.Enabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if level == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
