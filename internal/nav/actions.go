package nav

import (
	"context"
	"errors"
	"log"

	"github.com/kidandcat/geolog/internal/forms"
	"github.com/kidandcat/geolog/internal/model"
)

// EditLayer loads one stratum of the open borehole into the edit-layer form.
func (n *Navigator) EditLayer(ctx context.Context, boreholeID, strataID int64) error {
	n.mu.Lock()
	gen := n.gen
	br, ok := n.view.Result.(BoreholeResult)
	n.mu.Unlock()

	if !ok || br.Borehole.ID != boreholeID {
		return errors.New("borehole is not open")
	}
	if len(br.Layers) == 0 {
		return ErrNoLayers
	}

	l, err := n.backend.Layer(ctx, boreholeID, strataID)

	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return ErrSuperseded
	}
	if err != nil {
		log.Printf("nav: layer %d of borehole %d: %v", strataID, boreholeID, err)
		return err
	}
	cur, ok := n.view.Result.(BoreholeResult)
	if !ok || cur.Borehole.ID != boreholeID {
		return ErrSuperseded
	}
	cur.Strata = &l
	n.view.Result = cur
	n.forms.Show(forms.EditLayer)
	return nil
}

// SubmitProject creates the project when d has no id and updates it otherwise,
// then closes the form and reloads the page that lists it.
func (n *Navigator) SubmitProject(ctx context.Context, d model.ProjectDraft) error {
	if d.ID == 0 {
		if err := n.mutate("create project", n.backend.CreateProject(ctx, d)); err != nil {
			return err
		}
		n.HideForm(forms.Project)
		return n.Navigate(ctx, Home(1))
	}
	if err := n.mutate("update project", n.backend.UpdateProject(ctx, d)); err != nil {
		return err
	}
	n.HideForm(forms.Project)
	return n.Navigate(ctx, ProjectAt(d.ID, 1))
}

func (n *Navigator) SubmitBorehole(ctx context.Context, d model.BoreholeDraft) error {
	if d.ID == 0 {
		if d.ProjectID == 0 {
			return errors.New("borehole needs a project")
		}
		if err := n.mutate("create borehole", n.backend.CreateBorehole(ctx, d)); err != nil {
			return err
		}
		n.HideForm(forms.Borehole)
		return n.Navigate(ctx, ProjectAt(d.ProjectID, 1))
	}
	if err := n.mutate("update borehole", n.backend.UpdateBorehole(ctx, d)); err != nil {
		return err
	}
	n.HideForm(forms.Borehole)
	return n.Navigate(ctx, BoreholeAt(d.ID))
}

func (n *Navigator) SubmitLayer(ctx context.Context, d model.LayerDraft) error {
	if d.BoreholeID == 0 {
		return errors.New("layer needs a borehole")
	}
	op, call := "create layer", n.backend.CreateLayer
	if d.ID != 0 {
		op, call = "update layer", n.backend.UpdateLayer
	}
	if err := n.mutate(op, call(ctx, d)); err != nil {
		return err
	}
	n.HideForm(forms.Layer)
	return n.Navigate(ctx, BoreholeAt(d.BoreholeID))
}

func (n *Navigator) mutate(op string, err error) error {
	if err != nil {
		log.Printf("nav: %s: %v", op, err)
	}
	return err
}
