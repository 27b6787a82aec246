package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/divai-site/internal/entity"
	"github.com/xavierca1/divai-site/internal/infra/http/middleware"
	"github.com/xavierca1/divai-site/internal/infra/session"
	"github.com/xavierca1/divai-site/internal/usecase"
)

// LeadHandler serves the JSON capture endpoint used by scripted clients.
type LeadHandler struct {
	captureUC   LeadCapturer
	sessions    SessionUpdater
	rateLimiter *RateLimiter
	logger      *zap.Logger
}

func NewLeadHandler(captureUC LeadCapturer, sessions SessionUpdater, limiter *RateLimiter, logger *zap.Logger) *LeadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadHandler{
		captureUC:   captureUC,
		sessions:    sessions,
		rateLimiter: limiter,
		logger:      logger,
	}
}

type CaptureLeadResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	DownloadURL string `json:"download_url"`
	New         bool   `json:"new"`
}

func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(clientIP(r)) {
		middleware.RecordLeadCapture("limited")
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req usecase.CaptureLeadInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{Message: "Invalid JSON"})
		return
	}

	sess := session.FromContext(ctx)
	out, err := h.captureUC.Execute(ctx, sess, req)
	if err != nil {
		if usecase.IsValidationError(err) {
			middleware.RecordLeadCapture("invalid")
			writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{Message: "Please enter a valid email address."})
			return
		}

		middleware.RecordLeadCapture("error")
		h.logger.Error("capture lead", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{Message: "Failed to capture lead"})
		return
	}

	if sess != nil {
		h.sessions.Update(sess.ID, unlockWith(out.Email))
	}
	middleware.RecordLeadCapture(captureResult(out))

	writeJSON(w, http.StatusOK, CaptureLeadResponse{
		Success:     true,
		DownloadURL: out.DownloadURL,
		New:         out.IsNew,
	})
}

func unlockWith(email string) func(*entity.VisitorSession) {
	return func(s *entity.VisitorSession) { s.Unlock(email) }
}

func captureResult(out *usecase.CaptureLeadOutput) string {
	if out.IsNew {
		return "new"
	}
	return "repeat"
}
