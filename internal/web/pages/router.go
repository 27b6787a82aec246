package pages

import (
	g "maragu.dev/gomponents"

	"github.com/xavierca1/divai-site/internal/content"
	"github.com/xavierca1/divai-site/internal/web/components"
)

const (
	SlugHome        = "home"
	SlugFeatures    = "features"
	SlugComparison  = "comparison"
	SlugScreenshots = "screenshots"
	SlugSpecs       = "specs"
	SlugDownload    = "download"
	SlugFAQ         = "faq"
	SlugPrivacy     = "privacy"
	SlugAbout       = "about"
	SlugAdmin       = "admin"
)

// View is the per-request state a section renders from. Nothing in it is
// shared between visitors.
type View struct {
	Download components.DownloadState
	Admin    components.AdminState
}

type Section struct {
	Slug   string
	Label  string
	Title  string
	Render func(site *content.Site, v View) g.Node
}

func (s Section) Href() string {
	if s.Slug == SlugHome {
		return "/"
	}
	return "/" + s.Slug
}

// Router maps a navigation choice to the section that renders it.
type Router struct {
	site     *content.Site
	sections []Section
	bySlug   map[string]Section
}

func NewRouter(site *content.Site, withAdmin bool) *Router {
	sections := []Section{
		{SlugHome, "🏠 Home", "", func(s *content.Site, _ View) g.Node { return components.Home(s) }},
		{SlugFeatures, "✨ Features", "Features", func(s *content.Site, _ View) g.Node { return components.Features(s) }},
		{SlugComparison, "📊 Comparison", "Comparison", func(s *content.Site, _ View) g.Node { return components.Comparison(s) }},
		{SlugScreenshots, "💻 Screenshots", "Screenshots", func(s *content.Site, _ View) g.Node { return components.Screenshots(s) }},
		{SlugSpecs, "⚙️ Technical Specs", "Technical Specs", func(s *content.Site, _ View) g.Node { return components.Specs(s) }},
		{SlugDownload, "📥 Download", "Download", func(s *content.Site, v View) g.Node { return components.DownloadPage(s, v.Download) }},
		{SlugFAQ, "❓ FAQ", "FAQ", func(s *content.Site, _ View) g.Node { return components.FAQ(s) }},
		{SlugPrivacy, "🔒 Privacy Policy", "Privacy Policy", func(s *content.Site, _ View) g.Node { return components.Privacy(s) }},
		{SlugAbout, "👨‍💻 About Creator", "About", func(s *content.Site, _ View) g.Node { return components.About(s) }},
	}
	if withAdmin {
		sections = append(sections, Section{SlugAdmin, "🛡️ Admin", "Admin", func(_ *content.Site, v View) g.Node { return components.Admin(v.Admin) }})
	}

	bySlug := make(map[string]Section, len(sections))
	for _, s := range sections {
		bySlug[s.Slug] = s
	}

	return &Router{site: site, sections: sections, bySlug: bySlug}
}

// Resolve looks a section up by slug. An empty slug is the home page.
func (r *Router) Resolve(slug string) (Section, bool) {
	if slug == "" {
		slug = SlugHome
	}
	s, ok := r.bySlug[slug]
	return s, ok
}

func (r *Router) Sections() []Section {
	return r.sections
}

func (r *Router) Site() *content.Site {
	return r.site
}

func (r *Router) nav() []components.NavItem {
	items := make([]components.NavItem, 0, len(r.sections))
	for _, s := range r.sections {
		items = append(items, components.NavItem{Slug: s.Slug, Label: s.Label, Href: s.Href()})
	}
	return items
}

// Page wraps a section in the site layout.
func (r *Router) Page(s Section, v View) g.Node {
	title := ""
	if s.Title != "" {
		title = s.Title + " - " + r.site.Product.Name
	}

	return components.Layout(
		components.PageConfig{Title: title, Active: s.Slug, Nav: r.nav()},
		r.site,
		s.Render(r.site, v),
	)
}

func (r *Router) NotFound(slug string) g.Node {
	return components.Layout(
		components.PageConfig{Title: "Not found - " + r.site.Product.Name, Nav: r.nav()},
		r.site,
		components.NotFound(slug),
	)
}
