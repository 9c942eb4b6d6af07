package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/forms"
	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/nav"
	"github.com/kidandcat/geolog/internal/render"
)

func (s *Shell) renderHome(r nav.HomeResult) app.UI {
	return app.Section().Body(
		app.H1().Text("Projects"),
		app.If(s.forms.TriggerVisible(forms.Project), func() app.UI {
			return app.Button().Class("btn").Text("New project").OnClick(func(ctx app.Context, e app.Event) {
				s.showForm(forms.NewProject)
			})
		}),
		app.If(s.forms.CreateVisible(forms.Project), func() app.UI {
			return s.projectForm("new-project", model.ProjectDraft{})
		}),
		app.If(len(r.Projects) == 0, func() app.UI {
			return emptyState("No projects yet.")
		}).Else(func() app.UI {
			return app.Ul().Class("project-list").Body(
				app.Range(r.Projects).Slice(func(i int) app.UI {
					return s.projectCard(r.Projects[i])
				}),
			)
		}),
		pagination(r.Pagination, 0, func(ctx app.Context, _ int64, page int) {
			s.goTo(ctx, nav.Home(page))
		}),
	)
}

func (s *Shell) projectCard(p model.Project) app.UI {
	return app.Li().Class("project-card").Body(
		app.A().Href("#").Class("project-title").Text(p.Title).OnClick(func(ctx app.Context, e app.Event) {
			e.PreventDefault()
			s.goTo(ctx, nav.ProjectAt(p.ID, 1))
		}),
		app.Span().Class("project-ref").Text(p.Ref),
		app.Span().Class("project-client").Text(p.Client),
		app.Span().Class("project-lead").Body(
			app.Text("Lead: "),
			app.A().Href("#").Text(p.Lead).OnClick(func(ctx app.Context, e app.Event) {
				e.PreventDefault()
				s.goTo(ctx, nav.ProfileOf(p.LeadID))
			}),
		),
		app.Span().Class("project-counts").Text(
			render.Count(p.Boreholes, "borehole", "boreholes")+", "+render.Count(p.Messages, "message", "messages"),
		),
	)
}

// projectForm is both the create and the edit form; d.ID selects which.
func (s *Shell) projectForm(prefix string, d model.ProjectDraft) app.UI {
	id := func(name string) string { return prefix + "-" + name }
	submit := "Create project"
	if d.ID != 0 {
		submit = "Save project"
	}
	return app.Div().Class("form-panel").Body(
		field(id("title"), "Title", d.Title),
		field(id("reference"), "Reference", d.Reference),
		field(id("client"), "Client", d.Client),
		textField(id("description"), "Description", d.Description),
		formButtons(submit,
			func(ctx app.Context, e app.Event) {
				draft := model.ProjectDraft{
					ID:          d.ID,
					Title:       inputValue(id("title")),
					Reference:   inputValue(id("reference")),
					Client:      inputValue(id("client")),
					Description: inputValue(id("description")),
				}
				s.run(ctx, func() error { return s.nav.SubmitProject(ctx, draft) })
			},
			func(ctx app.Context, e app.Event) { s.hideForm(forms.Project) },
		),
	)
}
