package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/xavierca1/divai-site/internal/content"
	"github.com/xavierca1/divai-site/internal/entity"
	"github.com/xavierca1/divai-site/internal/usecase"
)

type AdminState struct {
	Enabled    bool
	Authorized bool
	Error      string
	Report     *usecase.Report
}

func Admin(state AdminState) g.Node {
	var body g.Node
	switch {
	case !state.Enabled:
		body = Alert("info", "The admin report is disabled on this deployment.")
	case !state.Authorized || state.Report == nil:
		body = AdminLogin(state.Error)
	default:
		body = AdminReport(state.Report)
	}

	return Section(
		ID("admin"),
		SectionTitle("Admin Dashboard"),
		body,
	)
}

func AdminLogin(errMsg string) g.Node {
	return Form(
		Class("capture-form"),
		ID("admin-login"),
		g.Attr("method", "post"),
		g.Attr("action", "/admin/login"),
		Label(g.Attr("for", "password"), g.Text("Admin password")),
		Input(ID("password"), Name("password"), Type("password"), g.Attr("autocomplete", "current-password"), g.Attr("required", "")),
		Button(Type("submit"), Class("download-button"), g.Text("Sign in")),
		g.If(errMsg != "", Alert("error", errMsg)),
	)
}

func AdminReport(r *usecase.Report) g.Node {
	return Div(
		ID("admin-report"),
		Div(
			Class("stats-container"),
			StatBox(content.Stat{Value: strconv.Itoa(r.Stats.TotalLeads), Label: "Total Leads"}),
			StatBox(content.Stat{Value: strconv.Itoa(r.Stats.TotalDownloads), Label: "Total Downloads"}),
		),
		Subheading("Recent Leads"),
		g.If(len(r.Recent) == 0, P(Class("muted"), g.Text("No leads captured yet."))),
		g.If(len(r.Recent) > 0, LeadTable(r.Recent)),
		Div(
			Class("admin-actions"),
			A(Href("/admin/export.csv"), Class("download-button"), g.Text("Export all leads (CSV)")),
			Form(
				g.Attr("method", "post"),
				g.Attr("action", "/admin/logout"),
				Button(Type("submit"), Class("btn-secondary"), g.Text("Sign out")),
			),
		),
		P(Class("muted"), g.Text("Generated "+r.GeneratedAt.Format(time.RFC1123))),
	)
}

func LeadTable(leads []entity.Lead) g.Node {
	return Table(
		Class("lead-table"),
		THead(
			Tr(
				Th(g.Text("ID")),
				Th(g.Text("Email identity")),
				Th(g.Text("Downloads")),
				Th(g.Text("Last seen")),
			),
		),
		TBody(
			g.Group(g.Map(leads, func(l entity.Lead) g.Node {
				return Tr(
					Td(g.Text(strconv.FormatInt(l.ID, 10))),
					Td(Code(g.Text(l.EmailIdentity))),
					Td(g.Text(strconv.Itoa(l.DownloadCount))),
					Td(g.Text(l.Timestamp.UTC().Format("2006-01-02 15:04:05"))),
				)
			})),
		),
	)
}
