package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/divai-site/internal/content"
)

func SectionTitle(text string) g.Node {
	return H2(Class("section-title"), g.Text(text))
}

func Subheading(text string) g.Node {
	return H3(Class("subheading"), g.Text(text))
}

func FeatureCard(c content.Card) g.Node {
	return Div(
		Class("feature-card"),
		H4(g.Text(c.Title)),
		P(g.Text(c.Body)),
	)
}

func FeatureCards(cards []content.Card) g.Node {
	return g.Group(g.Map(cards, FeatureCard))
}

func StatBox(s content.Stat) g.Node {
	return Div(
		Class("stat-box"),
		H3(g.Text(s.Value)),
		P(g.Text(s.Label)),
	)
}

func BulletList(items []string) g.Node {
	return Ul(
		Class("bullets"),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(g.Text(item))
		})),
	)
}

func ListBlock(b content.ListBlock) g.Node {
	return Div(
		Class("list-block"),
		Subheading(b.Title),
		BulletList(b.Items),
	)
}

func Columns(nodes ...g.Node) g.Node {
	return Div(Class("columns"), g.Group(nodes))
}

// Alert renders an inline message; kind is one of info, success, warning, error.
func Alert(kind, message string) g.Node {
	return Div(
		Class("alert alert-"+kind),
		g.Attr("role", "status"),
		g.Text(message),
	)
}

// Highlight renders one comparison cell.
func Highlight(value string) g.Node {
	switch value {
	case "yes":
		return Span(Class("mark mark-yes"), g.Attr("aria-label", "yes"), g.Text("✅"))
	case "partial":
		return Span(Class("mark mark-partial"), g.Attr("aria-label", "partial"), g.Text("⚠️"))
	case "no":
		return Span(Class("mark mark-no"), g.Attr("aria-label", "no"), g.Text("❌"))
	}
	return Span(Class("mark"), g.Text(value))
}
