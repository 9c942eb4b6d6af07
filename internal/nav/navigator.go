// Package nav is the client's view state machine. A Navigator holds the one
// current Page and its Result, fetches the payload for every transition and
// commits it in a single step, or not at all.
package nav

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/kidandcat/geolog/internal/forms"
	"github.com/kidandcat/geolog/internal/gateway"
	"github.com/kidandcat/geolog/internal/model"
)

var (
	// ErrSuperseded is returned by a transition that finished after a newer
	// one started; its payload was discarded.
	ErrSuperseded = errors.New("navigation superseded")
	ErrNoSession  = errors.New("not signed in")
	ErrNoLayers   = errors.New("no layers added yet")
)

// Backend is the subset of the gateway the state machine drives.
type Backend interface {
	Projects(ctx context.Context, page int) (gateway.ProjectsPage, error)
	Project(ctx context.Context, id int64, page int) (gateway.ProjectDetail, error)
	Borehole(ctx context.Context, id int64) (model.Borehole, error)
	Layers(ctx context.Context, boreholeID int64) ([]model.Layer, error)
	Layer(ctx context.Context, boreholeID, strataID int64) (model.Layer, error)
	Users(ctx context.Context) ([]model.UserSummary, error)
	Profile(ctx context.Context, userID int64) (model.Profile, error)

	CreateProject(ctx context.Context, d model.ProjectDraft) error
	UpdateProject(ctx context.Context, d model.ProjectDraft) error
	CreateBorehole(ctx context.Context, d model.BoreholeDraft) error
	UpdateBorehole(ctx context.Context, d model.BoreholeDraft) error
	CreateLayer(ctx context.Context, d model.LayerDraft) error
	UpdateLayer(ctx context.Context, d model.LayerDraft) error
}

type Navigator struct {
	backend Backend
	session Session

	mu     sync.Mutex
	gen    uint64
	busy   bool
	cancel context.CancelFunc
	view   View
	forms  forms.Orchestrator
}

// New returns a Navigator on the home page with no projects loaded yet.
func New(b Backend, s Session) *Navigator {
	return &Navigator{
		backend: b,
		session: s,
		view: View{
			Target: Home(1),
			Page:   PageHome,
			Result: HomeResult{},
		},
	}
}

func (n *Navigator) Session() Session {
	return n.session
}

// View returns the committed page and its result.
func (n *Navigator) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.view
}

func (n *Navigator) Forms() forms.Orchestrator {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.forms
}

func (n *Navigator) ShowForm(k forms.Kind) {
	n.mu.Lock()
	n.forms.Show(k)
	n.mu.Unlock()
}

func (n *Navigator) HideForm(e forms.Entity) {
	n.mu.Lock()
	n.forms.Hide(e)
	n.mu.Unlock()
}

// Navigate fetches the payload for t and switches to it. On failure the
// current view is left exactly as it was. Starting a navigation cancels the
// one in flight, and a transition that completes after a newer one started
// returns ErrSuperseded without touching state.
func (n *Navigator) Navigate(ctx context.Context, t Target) error {
	t, err := n.resolve(t)
	if err != nil {
		return err
	}

	gen, ctx, cancel := n.begin(ctx)
	defer n.finish(gen, cancel)

	res, err := n.load(ctx, t)
	if err := n.commit(gen, t, res, err); err != nil {
		if !errors.Is(err, ErrSuperseded) {
			log.Printf("nav: %s: %v", t, err)
		}
		return err
	}
	return nil
}

// Reload navigates to the current target again.
func (n *Navigator) Reload(ctx context.Context) error {
	return n.Navigate(ctx, n.View().Target)
}

func (n *Navigator) resolve(t Target) (Target, error) {
	if !t.mine {
		if t.PageNumber < 1 {
			t.PageNumber = 1
		}
		return t, nil
	}
	if !n.session.SignedIn() {
		return t, ErrNoSession
	}
	return ProfileOf(n.session.UserID), nil
}

func (n *Navigator) begin(ctx context.Context) (uint64, context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
	}
	n.gen++
	n.busy = true
	n.cancel = cancel
	return n.gen, ctx, cancel
}

func (n *Navigator) finish(gen uint64, cancel context.CancelFunc) {
	cancel()
	n.mu.Lock()
	if gen == n.gen {
		n.busy = false
	}
	n.mu.Unlock()
}

// Busy reports whether the newest navigation is still in flight. Superseded
// navigations finishing do not clear it.
func (n *Navigator) Busy() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.busy
}

func (n *Navigator) commit(gen uint64, t Target, res Result, err error) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return ErrSuperseded
	}
	if err != nil {
		return err
	}
	n.view = View{Target: t, Page: t.Page, Result: res}
	n.forms.Reset()
	return nil
}

func (n *Navigator) load(ctx context.Context, t Target) (Result, error) {
	switch t.Page {
	case PageHome:
		p, err := n.backend.Projects(ctx, t.PageNumber)
		if err != nil {
			return nil, err
		}
		warnInconsistent(t, p.State.Consistent())
		return HomeResult{Projects: p.Projects, Pagination: p.State}, nil

	case PageProject:
		p, err := n.backend.Project(ctx, t.ID, t.PageNumber)
		if err != nil {
			return nil, err
		}
		warnInconsistent(t, p.State.Consistent())
		return ProjectResult{Project: p.Project, Boreholes: p.Boreholes, Pagination: p.State}, nil

	case PageProfile:
		p, err := n.backend.Profile(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		return ProfileResult{UserID: t.ID, Profile: p}, nil

	case PageBorehole:
		b, err := n.backend.Borehole(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		ls, err := n.backend.Layers(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		return BoreholeResult{Borehole: b, Layers: ls}, nil

	case PageUsers:
		us, err := n.backend.Users(ctx)
		if err != nil {
			return nil, err
		}
		return UsersResult{Users: us}, nil
	}
	return nil, fmt.Errorf("unknown page %s", t.Page)
}

func warnInconsistent(t Target, ok bool) {
	if !ok {
		log.Printf("nav: %s: server pagination flags disagree with page numbers", t)
	}
}
