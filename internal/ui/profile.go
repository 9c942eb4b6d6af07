package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/nav"
	"github.com/kidandcat/geolog/internal/render"
)

func (s *Shell) renderProfile(r nav.ProfileResult) app.UI {
	title := r.Profile.User
	if r.UserID == s.nav.Session().UserID {
		title += " (you)"
	}
	return app.Section().Body(
		app.H1().Text(title),
		app.H2().Text("Leading"),
		s.projectList(r.Profile.Leading, "Not leading any projects."),
		app.H2().Text("Logging on"),
		s.projectList(r.Profile.Logging, "Not logging on any projects."),
	)
}

func (s *Shell) projectList(ps []model.Project, empty string) app.UI {
	if len(ps) == 0 {
		return emptyState(empty)
	}
	return app.Ul().Class("project-list").Body(
		app.Range(ps).Slice(func(i int) app.UI {
			return s.projectCard(ps[i])
		}),
	)
}

func (s *Shell) renderUsers(r nav.UsersResult) app.UI {
	if len(r.Users) == 0 {
		return app.Section().Body(app.H1().Text("Users"), emptyState("No users."))
	}
	return app.Section().Body(
		app.H1().Text("Users"),
		app.Table().Class("users").Body(
			app.THead().Body(app.Tr().Body(
				app.Th().Text("User"),
				app.Th().Text("Projects"),
				app.Th().Text("Boreholes"),
			)),
			app.TBody().Body(
				app.Range(r.Users).Slice(func(i int) app.UI {
					u := r.Users[i]
					return app.Tr().Body(
						app.Td().Body(app.A().Href("#").Text(u.Username).OnClick(func(ctx app.Context, e app.Event) {
							e.PreventDefault()
							s.goTo(ctx, nav.ProfileOf(u.ID))
						})),
						app.Td().Text(render.Count(u.Projects, "project", "projects")),
						app.Td().Text(render.Count(u.Boreholes, "borehole", "boreholes")),
					)
				}),
			),
		),
	)
}
