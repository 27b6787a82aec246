package middleware

import (
	"net/http"

	"github.com/xavierca1/divai-site/internal/infra/session"
)

// Sessions attaches the visitor session to the request context. A new
// session only gets a cookie once a handler has stored it, so anonymous
// page views and bots leave nothing behind in the store.
func Sessions(store *session.Store, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(session.CookieName); err == nil {
				id = c.Value
			}

			sess, created := store.Load(id)
			ctx := session.WithSession(r.Context(), sess)
			if !created {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			cw := &cookieWriter{ResponseWriter: w, store: store, id: sess.ID, secure: secure}
			next.ServeHTTP(cw, r.WithContext(ctx))
			cw.issue()
		})
	}
}

// cookieWriter sets the session cookie just before the headers go out,
// if the handler stored the session by then.
type cookieWriter struct {
	http.ResponseWriter
	store  *session.Store
	id     string
	secure bool
	done   bool
}

func (w *cookieWriter) issue() {
	if w.done {
		return
	}
	w.done = true
	if !w.store.Has(w.id) {
		return
	}
	http.SetCookie(w.ResponseWriter, &http.Cookie{
		Name:     session.CookieName,
		Value:    w.id,
		Path:     "/",
		HttpOnly: true,
		Secure:   w.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (w *cookieWriter) WriteHeader(code int) {
	w.issue()
	w.ResponseWriter.WriteHeader(code)
}

func (w *cookieWriter) Write(b []byte) (int, error) {
	w.issue()
	return w.ResponseWriter.Write(b)
}

func (w *cookieWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
