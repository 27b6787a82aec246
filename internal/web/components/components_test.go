package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/divai-site/internal/content"
	"github.com/xavierca1/divai-site/internal/entity"
	"github.com/xavierca1/divai-site/internal/usecase"
)

func loadSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)
	return site
}

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestMarketingSectionsRender(t *testing.T) {
	site := loadSite(t)

	sections := map[string]func(*content.Site) g.Node{
		"home":        Home,
		"features":    Features,
		"comparison":  Comparison,
		"screenshots": Screenshots,
		"specs":       Specs,
		"faq":         FAQ,
		"privacy":     Privacy,
		"about":       About,
	}

	for id, section := range sections {
		t.Run(id, func(t *testing.T) {
			html := renderNode(t, section(site))
			assert.True(t, strings.HasPrefix(html, "<section"), html[:min(len(html), 40)])
			assert.Contains(t, html, `id="`+id+`"`)
		})
	}
}

func TestComparisonRendersEveryProduct(t *testing.T) {
	site := loadSite(t)

	html := renderNode(t, Comparison(site))

	for _, product := range site.Comparison.Products {
		assert.Contains(t, html, product)
	}
	assert.Contains(t, html, `class="mark mark-yes"`)
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		value string
		class string
	}{
		{"yes", "mark mark-yes"},
		{"no", "mark mark-no"},
		{"partial", "mark mark-partial"},
	}

	for _, tt := range tests {
		html := renderNode(t, Highlight(tt.value))
		assert.Contains(t, html, `class="`+tt.class+`"`, tt.value)
		assert.Contains(t, html, `aria-label="`+tt.value+`"`, tt.value)
	}

	assert.Equal(t, `<span class="mark">Limited</span>`, renderNode(t, Highlight("Limited")))
}

func TestDownloadPageLocked(t *testing.T) {
	site := loadSite(t)

	html := renderNode(t, DownloadPage(site, DownloadState{
		DownloadURL: "https://files.example.com/pkg.zip",
		Error:       "Please enter a valid email address.",
		Value:       "bad<input>",
	}))

	assert.Contains(t, html, `id="download"`)
	assert.Contains(t, html, `id="capture-form"`)
	assert.Contains(t, html, `action="/download"`)
	assert.Contains(t, html, "Please enter a valid email address.")
	assert.Contains(t, html, `value="bad&lt;input&gt;"`)
	assert.NotContains(t, html, "https://files.example.com/pkg.zip")
	assert.NotContains(t, html, `id="download-link"`)
}

func TestDownloadPageUnlocked(t *testing.T) {
	site := loadSite(t)

	html := renderNode(t, DownloadPage(site, DownloadState{
		Unlocked:    true,
		Email:       "alice@example.com",
		DownloadURL: "https://files.example.com/pkg.zip",
	}))

	assert.Contains(t, html, `id="download-link"`)
	assert.Contains(t, html, `href="https://files.example.com/pkg.zip"`)
	assert.Contains(t, html, "alice@example.com")
	assert.NotContains(t, html, `id="capture-form"`)
}

func TestAdminStates(t *testing.T) {
	disabled := renderNode(t, Admin(AdminState{}))
	assert.Contains(t, disabled, "disabled")
	assert.NotContains(t, disabled, `id="admin-login"`)

	login := renderNode(t, Admin(AdminState{Enabled: true, Error: "Invalid password."}))
	assert.Contains(t, login, `id="admin-login"`)
	assert.Contains(t, login, "Invalid password.")
	assert.NotContains(t, login, `id="admin-report"`)

	report := renderNode(t, Admin(AdminState{
		Enabled:    true,
		Authorized: true,
		Report: &usecase.Report{
			Stats: entity.LeadStats{TotalLeads: 2, TotalDownloads: 5},
			Recent: []entity.Lead{
				{ID: 7, EmailIdentity: "f00d", DownloadCount: 4, Timestamp: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)},
			},
			GeneratedAt: time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC),
		},
	}))
	assert.Contains(t, report, `id="admin-report"`)
	assert.Contains(t, report, "f00d")
	assert.Contains(t, report, "2026-10-14 09:30:00")
	assert.Contains(t, report, `href="/admin/export.csv"`)
	assert.Contains(t, report, `action="/admin/logout"`)
}

func TestAdminReportEmpty(t *testing.T) {
	html := renderNode(t, AdminReport(&usecase.Report{}))
	assert.Contains(t, html, "No leads captured yet.")
}

func TestLayoutMarksActiveSection(t *testing.T) {
	site := loadSite(t)

	html := renderNode(t, Layout(PageConfig{
		Active: "faq",
		Nav: []NavItem{
			{Slug: "home", Label: "Home", Href: "/"},
			{Slug: "faq", Label: "FAQ", Href: "/faq"},
		},
	}, site, P(g.Text("body"))))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `href="/static/styles.css"`)
	assert.Contains(t, html, "<title>"+site.Product.Name+" - "+site.Product.Tagline+"</title>")
	assert.Equal(t, 1, strings.Count(html, `aria-current="page"`))
	assert.Contains(t, html, `<a href="/faq" class="nav-link active" aria-current="page">FAQ</a>`)
}

func TestNotFoundEscapesSlug(t *testing.T) {
	html := renderNode(t, NotFound(`"><script>`))
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
}
