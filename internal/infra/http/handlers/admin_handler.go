package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/xavierca1/divai-site/internal/entity"
	"github.com/xavierca1/divai-site/internal/infra/http/middleware"
	"github.com/xavierca1/divai-site/internal/infra/session"
	"github.com/xavierca1/divai-site/internal/usecase"
	"github.com/xavierca1/divai-site/internal/web/components"
	"github.com/xavierca1/divai-site/internal/web/pages"
)

const (
	msgInvalidPassword = "Invalid password."
	msgTooManyAttempts = "Too many attempts. Please wait a minute and try again."
	msgReportFailed    = "The report could not be loaded. Please try again."
)

func (h *PageHandler) adminState(r *http.Request, sess *entity.VisitorSession, state components.AdminState) components.AdminState {
	if h.adminUC == nil || !h.adminUC.Enabled() {
		return components.AdminState{}
	}

	state.Enabled = true
	state.Authorized = sess.AdminAuthorized
	if !state.Authorized {
		return state
	}

	report, err := h.adminUC.Report(r.Context(), sess)
	if err != nil {
		h.logger.Error("admin report", zap.Error(err))
		state.Error = msgReportFailed
		state.Authorized = false
		return state
	}
	state.Report = report
	return state
}

// AdminLogin (POST /admin/login)
func (h *PageHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil || h.adminUC == nil || !h.adminUC.Enabled() {
		writeHTML(w, http.StatusNotFound, h.router.NotFound(pages.SlugAdmin))
		return
	}

	if !h.loginLimit.Allow(clientIP(r)) {
		middleware.RecordAdminLogin("limited")
		h.renderSection(w, r, pages.SlugAdmin, http.StatusTooManyRequests, pages.View{
			Admin: components.AdminState{Error: msgTooManyAttempts},
		})
		return
	}

	if err := h.adminUC.Authorize(sess, r.PostFormValue("password")); err != nil {
		middleware.RecordAdminLogin("rejected")
		h.renderSection(w, r, pages.SlugAdmin, http.StatusUnauthorized, pages.View{
			Admin: components.AdminState{Error: msgInvalidPassword},
		})
		return
	}

	h.sessions.Update(sess.ID, (*entity.VisitorSession).GrantAdmin)
	middleware.RecordAdminLogin("accepted")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminLogout (POST /admin/logout)
func (h *PageHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if sess := session.FromContext(r.Context()); sess != nil && sess.AdminAuthorized {
		h.sessions.Update(sess.ID, (*entity.VisitorSession).RevokeAdmin)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminExport (GET /admin/export.csv)
func (h *PageHandler) AdminExport(w http.ResponseWriter, r *http.Request) {
	if h.adminUC == nil || !h.adminUC.Enabled() {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	filename, err := h.adminUC.Export(r.Context(), session.FromContext(r.Context()), &buf)
	if err != nil {
		switch {
		case usecase.IsAuthError(err):
			http.Error(w, "admin login required", http.StatusUnauthorized)
		case errors.Is(err, entity.ErrAdminDisabled):
			http.NotFound(w, r)
		default:
			h.logger.Error("admin export", zap.Error(err))
			http.Error(w, "export failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
