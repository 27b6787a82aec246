package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/divai-site/internal/entity"
	"github.com/xavierca1/divai-site/internal/infra/http/middleware"
	"github.com/xavierca1/divai-site/internal/infra/session"
	"github.com/xavierca1/divai-site/internal/usecase"
	"github.com/xavierca1/divai-site/internal/web/components"
	"github.com/xavierca1/divai-site/internal/web/pages"
)

const (
	msgInvalidEmail  = "Please enter a valid email address."
	msgCaptureFailed = "Something went wrong while saving your email. Please try again."
)

// PageHandler renders the site sections and handles their forms.
type PageHandler struct {
	router      *pages.Router
	captureUC   LeadCapturer
	adminUC     AdminReporter
	sessions    SessionUpdater
	loginLimit  *RateLimiter
	downloadURL string
	logger      *zap.Logger
}

type PageHandlerConfig struct {
	Router      *pages.Router
	CaptureUC   LeadCapturer
	AdminUC     AdminReporter
	Sessions    SessionUpdater
	LoginLimit  *RateLimiter
	DownloadURL string
	Logger      *zap.Logger
}

func NewPageHandler(cfg PageHandlerConfig) *PageHandler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &PageHandler{
		router:      cfg.Router,
		captureUC:   cfg.CaptureUC,
		adminUC:     cfg.AdminUC,
		sessions:    cfg.Sessions,
		loginLimit:  cfg.LoginLimit,
		downloadURL: cfg.DownloadURL,
		logger:      cfg.Logger,
	}
}

// Home (GET /)
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderSection(w, r, pages.SlugHome, http.StatusOK, pages.View{})
}

// Show (GET /{section})
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.renderSection(w, r, chi.URLParam(r, "section"), http.StatusOK, pages.View{})
}

// SubmitDownload (POST /download)
func (h *PageHandler) SubmitDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		h.renderSection(w, r, pages.SlugDownload, http.StatusBadRequest, pages.View{
			Download: components.DownloadState{Error: msgInvalidEmail},
		})
		return
	}
	email := r.PostFormValue("email")

	out, err := h.captureUC.Execute(ctx, sess, usecase.CaptureLeadInput{Email: email})
	if err != nil {
		status, msg := http.StatusInternalServerError, msgCaptureFailed
		result := "error"
		if usecase.IsValidationError(err) {
			status, msg, result = http.StatusBadRequest, msgInvalidEmail, "invalid"
		} else {
			h.logger.Error("download form capture", zap.Error(err))
		}
		middleware.RecordLeadCapture(result)

		h.renderSection(w, r, pages.SlugDownload, status, pages.View{
			Download: components.DownloadState{Error: msg, Value: email},
		})
		return
	}

	if sess != nil {
		h.sessions.Update(sess.ID, unlockWith(out.Email))
	}
	middleware.RecordLeadCapture(captureResult(out))

	http.Redirect(w, r, "/download#download-link", http.StatusSeeOther)
}

// renderSection fills in the session-derived parts of the view and writes the page.
func (h *PageHandler) renderSection(w http.ResponseWriter, r *http.Request, slug string, status int, view pages.View) {
	section, ok := h.router.Resolve(slug)
	if !ok {
		writeHTML(w, http.StatusNotFound, h.router.NotFound(slug))
		return
	}

	sess := session.FromContext(r.Context())
	if sess == nil {
		sess = &entity.VisitorSession{}
	}

	switch section.Slug {
	case pages.SlugDownload:
		view.Download.Unlocked = sess.Unlocked
		view.Download.Email = sess.Email
		view.Download.DownloadURL = h.downloadURL
	case pages.SlugAdmin:
		view.Admin = h.adminState(r, sess, view.Admin)
	}

	writeHTML(w, status, h.router.Page(section, view))
}
