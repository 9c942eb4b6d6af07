package ui

import (
	"fmt"
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/forms"
	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/nav"
	"github.com/kidandcat/geolog/internal/render"
)

const layerSelectID = "edit-layer-select"

func (s *Shell) renderBorehole(r nav.BoreholeResult) app.UI {
	b := r.Borehole
	return app.Section().Body(
		app.H1().Text("Borehole "+b.Ref),
		app.P().Class("breadcrumb").Text(fmt.Sprintf("%s, %s", b.ProjectRef, b.ProjectClient)),
		app.Dl().Class("details").Body(
			app.Dt().Text("Logged by"), app.Dd().Body(
				app.A().Href("#").Text(b.Logger).OnClick(func(ctx app.Context, e app.Event) {
					e.PreventDefault()
					s.goTo(ctx, nav.ProfileOf(b.LoggerID))
				}),
			),
			app.Dt().Text("Northing"), app.Dd().Text(render.Coordinate(b.Northing)),
			app.Dt().Text("Easting"), app.Dd().Text(render.Coordinate(b.Easting)),
			app.Dt().Text("Ground level"), app.Dd().Text(render.Depth(b.GroundLevel)),
			app.Dt().Text("Equipment"), app.Dd().Text(b.Equipment),
			app.Dt().Text("Diameter"), app.Dd().Text(fmt.Sprintf("%d mm", b.Diameter)),
		),
		app.If(s.forms.TriggerVisible(forms.Borehole), func() app.UI {
			return app.Button().Class("btn").Text("Edit borehole").OnClick(func(ctx app.Context, e app.Event) {
				s.showForm(forms.EditBorehole)
			})
		}),
		app.If(s.forms.EditVisible(forms.Borehole), func() app.UI {
			return s.boreholeForm("edit-borehole", model.BoreholeDraftFrom(b))
		}),

		app.H2().Text("Geology"),
		s.layerTable(b.ID, r.Layers),
		app.If(s.forms.TriggerVisible(forms.Layer), func() app.UI {
			return app.Div().Class("layer-actions").Body(
				app.Button().Class("btn").Text("Add layer").OnClick(func(ctx app.Context, e app.Event) {
					s.showForm(forms.NewLayer)
				}),
				app.Select().ID(layerSelectID).Body(
					app.Range(r.Layers).Slice(func(i int) app.UI {
						l := r.Layers[i]
						return app.Option().Value(strconv.FormatInt(l.ID, 10)).
							Text(fmt.Sprintf("%s to %s", render.Depth(l.StartDepth), render.Depth(l.EndDepth)))
					}),
				),
				app.Button().Class("btn").Text("Edit layer").OnClick(func(ctx app.Context, e app.Event) {
					strataID, _ := strconv.ParseInt(inputValue(layerSelectID), 10, 64)
					s.editLayer(ctx, b.ID, strataID)
				}),
			)
		}),
		app.If(s.forms.CreateVisible(forms.Layer), func() app.UI {
			return s.layerForm("new-layer", model.LayerDraft{BoreholeID: b.ID})
		}),
		app.If(s.forms.EditVisible(forms.Layer) && r.Strata != nil, func() app.UI {
			return s.layerForm("edit-layer", model.LayerDraftFrom(*r.Strata))
		}),
	)
}

func (s *Shell) editLayer(ctx app.Context, boreholeID, strataID int64) {
	s.run(ctx, func() error { return s.nav.EditLayer(ctx, boreholeID, strataID) })
}

func (s *Shell) layerTable(boreholeID int64, ls []model.Layer) app.UI {
	if len(ls) == 0 {
		return emptyState("No layers added yet.")
	}
	return app.Table().Class("layers").Body(
		app.THead().Body(app.Tr().Body(
			app.Th().Text("From"),
			app.Th().Text("To"),
			app.Th().Text("Sample"),
			app.Th().Text("SPT"),
			app.Th().Text("Field test"),
			app.Th().Text("Description"),
			app.Th(),
		)),
		app.TBody().Body(
			app.Range(ls).Slice(func(i int) app.UI {
				l := ls[i]
				return app.Tr().Body(
					app.Td().Text(render.Depth(l.StartDepth)),
					app.Td().Text(render.Depth(l.EndDepth)),
					app.Td().Text(l.SampleID),
					app.Td().Text(l.SPT),
					app.Td().Text(l.FieldTest),
					app.Td().Text(l.Description),
					app.Td().Body(app.Button().Class("btn btn-small").Text("Edit").OnClick(func(ctx app.Context, e app.Event) {
						s.editLayer(ctx, boreholeID, l.ID)
					})),
				)
			}),
		),
	)
}

func (s *Shell) boreholeForm(prefix string, d model.BoreholeDraft) app.UI {
	id := func(name string) string { return prefix + "-" + name }
	submit := "Create borehole"
	if d.ID != 0 {
		submit = "Save borehole"
	}
	return app.Div().Class("form-panel").Body(
		field(id("reference"), "Reference", d.Reference),
		field(id("northing"), "Northing", d.Northing),
		field(id("easting"), "Easting", d.Easting),
		field(id("ground-level"), "Ground level (m)", d.GroundLevel),
		field(id("equipment"), "Drilling equipment", d.Equipment),
		field(id("diameter"), "Diameter (mm)", d.Diameter),
		formButtons(submit,
			func(ctx app.Context, e app.Event) {
				draft := model.BoreholeDraft{
					ID:          d.ID,
					ProjectID:   d.ProjectID,
					Reference:   inputValue(id("reference")),
					Northing:    inputValue(id("northing")),
					Easting:     inputValue(id("easting")),
					GroundLevel: inputValue(id("ground-level")),
					Equipment:   inputValue(id("equipment")),
					Diameter:    inputValue(id("diameter")),
				}
				s.run(ctx, func() error { return s.nav.SubmitBorehole(ctx, draft) })
			},
			func(ctx app.Context, e app.Event) { s.hideForm(forms.Borehole) },
		),
	)
}

func (s *Shell) layerForm(prefix string, d model.LayerDraft) app.UI {
	id := func(name string) string { return prefix + "-" + name }
	submit := "Add layer"
	if d.ID != 0 {
		submit = "Save layer"
	}
	return app.Div().Class("form-panel").Body(
		field(id("start"), "Start depth (m)", d.StartDepth),
		field(id("end"), "End depth (m)", d.EndDepth),
		field(id("sample"), "Sample number", d.Sample),
		field(id("spt"), "SPT result", d.SPT),
		field(id("field-test"), "Field test details", d.FieldTest),
		textField(id("description"), "Geology description", d.Description),
		formButtons(submit,
			func(ctx app.Context, e app.Event) {
				draft := model.LayerDraft{
					ID:          d.ID,
					BoreholeID:  d.BoreholeID,
					StartDepth:  inputValue(id("start")),
					EndDepth:    inputValue(id("end")),
					Sample:      inputValue(id("sample")),
					SPT:         inputValue(id("spt")),
					FieldTest:   inputValue(id("field-test")),
					Description: inputValue(id("description")),
				}
				s.run(ctx, func() error { return s.nav.SubmitLayer(ctx, draft) })
			},
			func(ctx app.Context, e app.Event) { s.hideForm(forms.Layer) },
		),
	)
}
