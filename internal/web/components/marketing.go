package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/divai-site/internal/content"
)

func Home(site *content.Site) g.Node {
	return Section(
		ID("home"),
		SectionTitle("Welcome to "+site.Product.Name),
		Columns(
			Div(
				Class("col-wide"),
				P(Class("lead"), g.Text(site.Home.Intro)),
				Subheading("Why Choose "+site.Product.Name+"?"),
				FeatureCards(site.Home.Cards),
			),
			Div(
				Class("col-narrow"),
				Subheading("Quick Stats"),
				Div(Class("stats-container"), g.Group(g.Map(site.Home.Stats, StatBox))),
				Subheading("Perfect For"),
				BulletList(site.Home.Audience),
			),
		),
		Div(
			Class("cta"),
			A(Href("/download"), Class("download-button"), g.Text("Get "+site.Product.Name)),
		),
	)
}

func Features(site *content.Site) g.Node {
	return Section(
		ID("features"),
		SectionTitle("Features"),
		Columns(g.Map(site.Features.Columns, ListBlock)...),
		Subheading("Detailed Features"),
		FeatureCards(site.Features.Detailed),
	)
}

func Comparison(site *content.Site) g.Node {
	c := site.Comparison

	return Section(
		ID("comparison"),
		SectionTitle(site.Product.Name+" vs Other AI Assistants"),
		Div(
			Class("comparison-table"),
			Table(
				THead(
					Tr(
						Th(g.Text("Feature")),
						g.Group(g.Map(c.Products, func(p string) g.Node {
							return Th(g.Attr("scope", "col"), g.Text(p))
						})),
					),
				),
				TBody(
					g.Group(g.Map(c.Rows, func(row content.ComparisonRow) g.Node {
						return Tr(
							Th(g.Attr("scope", "row"), g.Text(row.Feature)),
							g.Group(g.Map(row.Marks, func(m string) g.Node {
								return Td(Highlight(m))
							})),
						)
					})),
				),
			),
		),
		Subheading("Key Advantages"),
		Columns(g.Map(c.Advantages, ListBlock)...),
	)
}

func Screenshots(site *content.Site) g.Node {
	s := site.Screenshots

	return Section(
		ID("screenshots"),
		SectionTitle("Interface Preview"),
		Alert("info", s.Note),
		Columns(
			Div(
				Class("col-wide"),
				Subheading("Main Interface"),
				Pre(Class("mockup"), Code(g.Text(s.Mockup))),
			),
			Div(
				Class("col-narrow"),
				Subheading("Instant Responses For"),
				BulletList(s.QuickAnswers),
			),
		),
		Subheading("Interface Highlights"),
		FeatureCards(s.Highlights),
	)
}

func Specs(site *content.Site) g.Node {
	s := site.Specs

	return Section(
		ID("specs"),
		SectionTitle("Technical Specifications"),
		Columns(
			Div(Class("col-half"), g.Group(g.Map(s.Requirements, ListBlock))),
			Div(Class("col-half"), g.Group(g.Map(s.Model, ListBlock))),
		),
		Subheading("Technical Architecture"),
		FeatureCards(s.Architecture),
	)
}

func FAQ(site *content.Site) g.Node {
	return Section(
		ID("faq"),
		SectionTitle("Frequently Asked Questions"),
		g.Group(g.Map(site.FAQ, func(cat content.FAQCategory) g.Node {
			return Div(
				Class("faq-category"),
				Subheading(cat.Name),
				g.Group(g.Map(cat.Items, func(qa content.QA) g.Node {
					return Details(
						Class("faq-item"),
						Summary(g.Text(qa.Question)),
						P(g.Text(qa.Answer)),
					)
				})),
			)
		})),
	)
}

func Privacy(site *content.Site) g.Node {
	return Section(
		ID("privacy"),
		SectionTitle("Privacy Policy"),
		P(Class("muted"), g.Text("Last updated: "+site.Privacy.Updated)),
		FeatureCards(site.Privacy.Sections),
	)
}

func About(site *content.Site) g.Node {
	a := site.About

	return Section(
		ID("about"),
		SectionTitle("Meet the Creator"),
		Div(
			Class("creator"),
			H3(g.Text(a.Name)),
			P(Strong(g.Text(a.Role))),
			P(g.Text(a.Bio)),
			Subheading("Achievements"),
			BulletList(a.Achievements),
		),
		Columns(
			Div(Class("col-half"), Subheading("The Story Behind "+site.Product.Name), FeatureCards(a.Story)),
			Div(Class("col-half"), Subheading("Developer Philosophy"), FeatureCards(a.Philosophy)),
		),
		Subheading("What's Next?"),
		FeatureCards(a.Roadmap),
		Subheading("Connect & Support"),
		BulletList(a.Support),
	)
}

func NotFound(slug string) g.Node {
	return Section(
		ID("not-found"),
		SectionTitle("Page not found"),
		P(g.Text("There is no section called \""+slug+"\".")),
		A(Href("/"), Class("download-button"), g.Text("Back to Home")),
	)
}
