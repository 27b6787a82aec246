package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/xavierca1/divai-site/internal/entity"
	"github.com/xavierca1/divai-site/internal/usecase"
)

type LeadCapturer interface {
	Execute(ctx context.Context, sess *entity.VisitorSession, input usecase.CaptureLeadInput) (*usecase.CaptureLeadOutput, error)
}

type AdminReporter interface {
	Enabled() bool
	Authorize(sess *entity.VisitorSession, secret string) error
	Report(ctx context.Context, sess *entity.VisitorSession) (*usecase.Report, error)
	Export(ctx context.Context, sess *entity.VisitorSession, w io.Writer) (string, error)
}

// SessionUpdater applies one change to a stored session under its lock.
type SessionUpdater interface {
	Update(id string, fn func(*entity.VisitorSession)) *entity.VisitorSession
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func writeHTML(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = page.Render(w)
}
