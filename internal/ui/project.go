package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/forms"
	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/nav"
	"github.com/kidandcat/geolog/internal/render"
)

func (s *Shell) renderProject(r nav.ProjectResult) app.UI {
	p := r.Project
	return app.Section().Body(
		app.H1().Text(p.Title),
		app.If(s.forms.DetailsVisible(forms.Project), func() app.UI {
			return app.Dl().Class("details").Body(
				app.Dt().Text("Reference"), app.Dd().Text(p.Ref),
				app.Dt().Text("Client"), app.Dd().Text(p.Client),
				app.Dt().Text("Lead"), app.Dd().Body(
					app.A().Href("#").Text(p.Lead).OnClick(func(ctx app.Context, e app.Event) {
						e.PreventDefault()
						s.goTo(ctx, nav.ProfileOf(p.LeadID))
					}),
				),
				app.Dt().Text("Created"), app.Dd().Text(p.CreatedAt),
				app.Dt().Text("Description"), app.Dd().Body(
					app.Raw(`<div class="markdown">`+render.Markdown(p.Description)+`</div>`),
				),
			)
		}),
		app.If(s.forms.TriggerVisible(forms.Project), func() app.UI {
			return app.Button().Class("btn").Text("Edit project").OnClick(func(ctx app.Context, e app.Event) {
				s.showForm(forms.EditProject)
			})
		}),
		app.If(s.forms.EditVisible(forms.Project), func() app.UI {
			return s.projectForm("edit-project", model.ProjectDraftFrom(p))
		}),

		app.H2().Text("Boreholes"),
		app.If(s.forms.TriggerVisible(forms.Borehole), func() app.UI {
			return app.Button().Class("btn").Text("New borehole").OnClick(func(ctx app.Context, e app.Event) {
				s.showForm(forms.NewBorehole)
			})
		}),
		app.If(s.forms.CreateVisible(forms.Borehole), func() app.UI {
			return s.boreholeForm("new-borehole", model.BoreholeDraft{ProjectID: p.ID})
		}),
		s.boreholeTable(r.Boreholes),
		pagination(r.Pagination, p.ID, func(ctx app.Context, id int64, page int) {
			s.goTo(ctx, nav.ProjectAt(id, page))
		}),

		app.H2().Text("Site sketch"),
		&SketchPad{ProjectID: p.ID, Client: s.client},

		app.H2().Text("Messages"),
		&MessageBoard{ProjectID: p.ID, Client: s.client},
	)
}

func (s *Shell) boreholeTable(bs []model.Borehole) app.UI {
	if len(bs) == 0 {
		return emptyState("No boreholes logged yet.")
	}
	return app.Table().Class("boreholes").Body(
		app.THead().Body(app.Tr().Body(
			app.Th().Text("Reference"),
			app.Th().Text("Logger"),
			app.Th().Text("Northing"),
			app.Th().Text("Easting"),
			app.Th().Text("Ground level"),
			app.Th().Text("Logged"),
		)),
		app.TBody().Body(
			app.Range(bs).Slice(func(i int) app.UI {
				b := bs[i]
				return app.Tr().Body(
					app.Td().Body(app.A().Href("#").Text(b.Ref).OnClick(func(ctx app.Context, e app.Event) {
						e.PreventDefault()
						s.goTo(ctx, nav.BoreholeAt(b.ID))
					})),
					app.Td().Body(app.A().Href("#").Text(b.Logger).OnClick(func(ctx app.Context, e app.Event) {
						e.PreventDefault()
						s.goTo(ctx, nav.ProfileOf(b.LoggerID))
					})),
					app.Td().Text(render.Coordinate(b.Northing)),
					app.Td().Text(render.Coordinate(b.Easting)),
					app.Td().Text(render.Depth(b.GroundLevel)),
					app.Td().Text(b.CreatedAt),
				)
			}),
		),
	)
}
