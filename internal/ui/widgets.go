package ui

import (
	"fmt"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/pager"
)

// inputValue reads a form control by id. Missing controls read as "".
func inputValue(id string) string {
	el := app.Window().GetElementByID(id)
	if !el.Truthy() {
		return ""
	}
	return strings.TrimSpace(el.Get("value").String())
}

func field(id, label, value string) app.UI {
	return app.Div().Class("field").Body(
		app.Label().For(id).Text(label),
		app.Input().ID(id).Type("text").Value(value),
	)
}

func textField(id, label, value string) app.UI {
	return app.Div().Class("field").Body(
		app.Label().For(id).Text(label),
		app.Textarea().ID(id).Rows(4).Text(value),
	)
}

func formButtons(submit string, onSubmit, onCancel app.EventHandler) app.UI {
	return app.Div().Class("form-actions").Body(
		app.Button().Class("btn btn-primary").Text(submit).OnClick(onSubmit),
		app.Button().Class("btn").Text("Cancel").OnClick(onCancel),
	)
}

// pagination renders the Previous/Next controls for s. The loader is bound at
// click time so it runs with the handler's context.
func pagination(s pager.State, id int64, load func(ctx app.Context, id int64, page int)) app.UI {
	ctrls := pager.Bind(s, id, nil)
	bound := func(ctx app.Context) pager.Controls {
		return pager.Bind(s, id, func(id int64, page int) { load(ctx, id, page) })
	}
	return app.Div().Class("pagination").Body(
		app.Button().Class("page-btn").Text(ctrls.Prev.Label).Disabled(!ctrls.Prev.Enabled).
			OnClick(func(ctx app.Context, e app.Event) { bound(ctx).Prev.Click() }),
		app.Span().Class("page-info").Text(fmt.Sprintf("Page %d of %d", s.CurrentPage, max(s.TotalPages, 1))),
		app.Button().Class("page-btn").Text(ctrls.Next.Label).Disabled(!ctrls.Next.Enabled).
			OnClick(func(ctx app.Context, e app.Event) { bound(ctx).Next.Click() }),
	)
}

func emptyState(text string) app.UI {
	return app.P().Class("empty").Text(text)
}
