package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/xavierca1/divai-site/internal/infra/http/middleware"
	"github.com/xavierca1/divai-site/internal/infra/session"
)

type Routes struct {
	Pages          *PageHandler
	Leads          *LeadHandler
	Health         *HealthHandler
	Sessions       *session.Store
	Static         http.FileSystem
	Metrics        http.Handler
	AllowedOrigins []string
	SecureCookies  bool
}

func NewRouter(rt Routes) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)

	if rt.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(rt.Static)))
	}
	if rt.Health != nil {
		r.Get("/health", rt.Health.Handle)
	}
	if rt.Metrics != nil {
		r.Handle("/metrics", rt.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Sessions(rt.Sessions, rt.SecureCookies))

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: rt.AllowedOrigins,
				AllowedMethods: []string{"POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
			}))
			r.MethodNotAllowed(MethodNotAllowed)
			r.Post("/leads", rt.Leads.CaptureLead)
		})

		r.Get("/", rt.Pages.Home)
		r.Post("/download", rt.Pages.SubmitDownload)
		r.Post("/admin/login", rt.Pages.AdminLogin)
		r.Post("/admin/logout", rt.Pages.AdminLogout)
		r.Get("/admin/export.csv", rt.Pages.AdminExport)
		r.Get("/{section}", rt.Pages.Show)
	})

	return r
}
