package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/divai-site/internal/content"
)

// DownloadState is what the download section needs from the visitor session.
type DownloadState struct {
	Unlocked    bool
	Email       string
	DownloadURL string
	Error       string
	Value       string
}

func DownloadPage(site *content.Site, state DownloadState) g.Node {
	d := site.Download

	return Section(
		ID("download"),
		SectionTitle("Download "+site.Product.Name),
		Div(
			Class("hero-banner"),
			H2(g.Text(d.Headline)),
			P(g.Text(d.Pitch)),
		),
		Columns(
			Div(
				Class("col-wide"),
				Subheading("Download Options"),
				g.Group(g.Map(d.Packages, PackageCard)),
				g.If(state.Unlocked, UnlockedDownload(site, state)),
				g.If(!state.Unlocked, CaptureForm(state)),
				Subheading("Installation Instructions"),
				Ol(
					Class("steps"),
					g.Group(g.Map(d.Steps, func(step string) g.Node { return Li(g.Text(step)) })),
				),
			),
			Div(
				Class("col-narrow"),
				Subheading("What You Get"),
				g.Group(g.Map(d.Benefits, ListBlock)),
			),
		),
		Subheading("Important Notes"),
		g.Group(g.Map(d.Notes, func(c content.Card) g.Node {
			return Div(Class("alert alert-warning"), Strong(g.Text(c.Title+": ")), g.Text(c.Body))
		})),
	)
}

func PackageCard(p content.Package) g.Node {
	return Div(
		Class("feature-card"),
		H4(g.Text(p.Title)),
		P(Strong(g.Text("Size: ")), g.Text(p.Size)),
		P(Strong(g.Text("Includes: ")), g.Text(p.Includes)),
		P(Strong(g.Text("Best for: ")), g.Text(p.BestFor)),
	)
}

func CaptureForm(state DownloadState) g.Node {
	return Form(
		Class("capture-form"),
		ID("capture-form"),
		g.Attr("method", "post"),
		g.Attr("action", "/download"),
		Label(g.Attr("for", "email"), g.Text("Enter your email to unlock the download")),
		Input(
			ID("email"),
			Name("email"),
			Type("email"),
			Placeholder("you@example.com"),
			Value(state.Value),
			g.Attr("autocomplete", "email"),
			g.Attr("required", ""),
		),
		Button(Type("submit"), Class("download-button"), g.Text("Unlock Download")),
		g.If(state.Error != "", Alert("error", state.Error)),
		P(Class("muted"), g.Text("We keep only a fingerprint of your address and a download counter. See the "), A(Href("/privacy"), g.Text("privacy policy")), g.Text(".")),
	)
}

func UnlockedDownload(site *content.Site, state DownloadState) g.Node {
	return Div(
		Class("unlocked"),
		ID("download-link"),
		Alert("success", "Thanks, "+state.Email+"! Your download is ready."),
		A(
			Href(state.DownloadURL),
			Class("download-button"),
			g.Attr("target", "_blank"),
			g.Attr("rel", "noopener"),
			g.Text("Download "+site.Product.Name+" Package"),
		),
	)
}
