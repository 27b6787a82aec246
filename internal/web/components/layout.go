package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/divai-site/internal/content"
)

type NavItem struct {
	Slug  string
	Label string
	Href  string
}

type PageConfig struct {
	Title       string
	Description string
	Active      string
	Nav         []NavItem
}

func Layout(config PageConfig, site *content.Site, body ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = site.Product.Name + " - " + site.Product.Tagline
	}

	if config.Description == "" {
		config.Description = site.Product.Subtitle
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Div(
					Class("page"),
					Sidebar(site, config.Nav, config.Active),
					Main(
						Class("content"),
						MainHeader(site),
						g.Group(body),
						PageFooter(site),
					),
				),
			),
		),
	})
}

func Sidebar(site *content.Site, items []NavItem, active string) g.Node {
	return Nav(
		Class("sidebar"),
		g.Attr("aria-label", "Sections"),
		P(Class("sidebar-title"), g.Text(site.Product.Name+" Navigation")),
		Ul(
			g.Group(g.Map(items, func(item NavItem) g.Node {
				cls := "nav-link"
				if item.Slug == active {
					cls = "nav-link active"
				}
				return Li(
					A(
						Href(item.Href),
						Class(cls),
						g.If(item.Slug == active, g.Attr("aria-current", "page")),
						g.Text(item.Label),
					),
				)
			})),
		),
	)
}

func MainHeader(site *content.Site) g.Node {
	return Div(
		Class("main-header"),
		H1(g.Text(site.Product.Name)),
		H2(g.Text(site.Product.Tagline)),
		P(Class("subtitle"), g.Text(site.Product.Subtitle)),
	)
}

func PageFooter(site *content.Site) g.Node {
	return Footer(
		Class("site-footer"),
		H3(g.Text(site.Footer.Line)),
		P(g.Text(site.Footer.Copyright)),
		P(
			g.Group(g.Map(site.Footer.Links, func(l content.Link) g.Node {
				return A(Href(l.URL), g.Attr("target", "_blank"), Class("footer-link"), g.Text(l.Label))
			})),
		),
	)
}
