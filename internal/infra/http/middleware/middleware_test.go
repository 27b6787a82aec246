package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/divai-site/internal/entity"
	"github.com/xavierca1/divai-site/internal/infra/session"
)

func unlockHandler(store *session.Store, seen *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if sess == nil {
			http.Error(w, "no session", http.StatusInternalServerError)
			return
		}
		*seen = sess.ID
		store.Update(sess.ID, func(v *entity.VisitorSession) { v.Unlock("alice@example.com") })
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestSessionsIssuesCookieOnceStored(t *testing.T) {
	store := session.NewStore(time.Hour)

	var seen string
	handler := Sessions(store, false)(unlockHandler(store, &seen))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/download", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	first := seen
	req := httptest.NewRequest(http.MethodPost, "/download", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, first, seen)
	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, 1, store.Len())
}

func TestSessionsAnonymousViewStoresNothing(t *testing.T) {
	store := session.NewStore(time.Hour)
	handler := Sessions(store, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotNil(t, session.FromContext(r.Context()))
		_, _ = w.Write([]byte("<html></html>"))
	}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Empty(t, w.Result().Cookies())
	}
	assert.Equal(t, 0, store.Len())
}

func TestSessionsCookieSetWhenHandlerWritesNothing(t *testing.T) {
	store := session.NewStore(time.Hour)
	handler := Sessions(store, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store.Update(session.FromContext(r.Context()).ID, nil)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, w.Result().Cookies(), 1)
}

func TestSessionsUnknownCookieStartsFresh(t *testing.T) {
	store := session.NewStore(time.Hour)
	var seen string
	handler := Sessions(store, true)(unlockHandler(store, &seen))

	req := httptest.NewRequest(http.MethodPost, "/download", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "forged", cookies[0].Value)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].Secure)
	assert.False(t, store.Has("forged"))
}

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/{section}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/{section}", "418"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/faq", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/{section}", "418"))

	assert.Equal(t, 2.0, after-before)
}

func TestRecordLeadCapture(t *testing.T) {
	before := testutil.ToFloat64(leadsCaptured.WithLabelValues("new"))
	RecordLeadCapture("new")
	assert.Equal(t, 1.0, testutil.ToFloat64(leadsCaptured.WithLabelValues("new"))-before)
}
