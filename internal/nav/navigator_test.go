package nav

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kidandcat/geolog/internal/forms"
	"github.com/kidandcat/geolog/internal/gateway"
	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/pager"
)

type fakeBackend struct {
	mu    sync.Mutex
	calls []string
	fail  error

	projects  gateway.ProjectsPage
	detail    gateway.ProjectDetail
	borehole  model.Borehole
	layers    []model.Layer
	layer     model.Layer
	users     []model.UserSummary
	profile   model.Profile
	projectFn func(ctx context.Context, id int64) (gateway.ProjectDetail, error)

	drafts []any
}

func (f *fakeBackend) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.fail
}

func (f *fakeBackend) Projects(ctx context.Context, page int) (gateway.ProjectsPage, error) {
	return f.projects, f.record("projects")
}

func (f *fakeBackend) Project(ctx context.Context, id int64, page int) (gateway.ProjectDetail, error) {
	if err := f.record("project"); err != nil {
		return gateway.ProjectDetail{}, err
	}
	if f.projectFn != nil {
		return f.projectFn(ctx, id)
	}
	return f.detail, nil
}

func (f *fakeBackend) Borehole(ctx context.Context, id int64) (model.Borehole, error) {
	return f.borehole, f.record("borehole")
}

func (f *fakeBackend) Layers(ctx context.Context, id int64) ([]model.Layer, error) {
	return f.layers, f.record("layers")
}

func (f *fakeBackend) Layer(ctx context.Context, bid, sid int64) (model.Layer, error) {
	return f.layer, f.record("layer")
}

func (f *fakeBackend) Users(ctx context.Context) ([]model.UserSummary, error) {
	return f.users, f.record("users")
}

func (f *fakeBackend) Profile(ctx context.Context, id int64) (model.Profile, error) {
	return f.profile, f.record("profile")
}

func (f *fakeBackend) mutation(name string, d any) error {
	f.mu.Lock()
	f.drafts = append(f.drafts, d)
	f.mu.Unlock()
	return f.record(name)
}

func (f *fakeBackend) CreateProject(ctx context.Context, d model.ProjectDraft) error {
	return f.mutation("create project", d)
}

func (f *fakeBackend) UpdateProject(ctx context.Context, d model.ProjectDraft) error {
	return f.mutation("update project", d)
}

func (f *fakeBackend) CreateBorehole(ctx context.Context, d model.BoreholeDraft) error {
	return f.mutation("create borehole", d)
}

func (f *fakeBackend) UpdateBorehole(ctx context.Context, d model.BoreholeDraft) error {
	return f.mutation("update borehole", d)
}

func (f *fakeBackend) CreateLayer(ctx context.Context, d model.LayerDraft) error {
	return f.mutation("create layer", d)
}

func (f *fakeBackend) UpdateLayer(ctx context.Context, d model.LayerDraft) error {
	return f.mutation("update layer", d)
}

func TestInitialState(t *testing.T) {
	n := New(&fakeBackend{}, Session{})
	v := n.View()
	if v.Page != PageHome {
		t.Fatalf("initial page %s", v.Page)
	}
	if _, ok := v.Home(); !ok {
		t.Fatalf("initial result %T", v.Result)
	}
}

func TestNavigateProjectScenario(t *testing.T) {
	f := &fakeBackend{detail: gateway.ProjectDetail{
		Project:   model.Project{ID: 7, Title: "Harbour"},
		Boreholes: []model.Borehole{},
		State:     pager.State{CurrentPage: 1, TotalPages: 1},
	}}
	n := New(f, Session{})

	if err := n.Navigate(context.Background(), ProjectAt(7, 0)); err != nil {
		t.Fatal(err)
	}

	v := n.View()
	if v.Page != PageProject {
		t.Fatalf("page = %s", v.Page)
	}
	pr, ok := v.Project()
	if !ok {
		t.Fatalf("result %T", v.Result)
	}
	if pr.Boreholes == nil || len(pr.Boreholes) != 0 {
		t.Fatalf("boreholes = %#v", pr.Boreholes)
	}
	c := pager.Bind(pr.Pagination, pr.Project.ID, nil)
	if c.Prev.Enabled || c.Next.Enabled {
		t.Fatalf("pagination controls enabled: %+v", c)
	}
	if v.Target.PageNumber != 1 {
		t.Fatalf("page number not defaulted: %+v", v.Target)
	}
}

func TestFailedNavigationLeavesState(t *testing.T) {
	f := &fakeBackend{users: []model.UserSummary{{ID: 1, Username: "ana"}}}
	n := New(f, Session{})
	if err := n.Navigate(context.Background(), Users()); err != nil {
		t.Fatal(err)
	}
	n.ShowForm(forms.NewProject)
	before := n.View()
	beforeForms := n.Forms()

	targets := []Target{Home(2), ProjectAt(3, 1), ProfileOf(4), BoreholeAt(5), Users()}
	for _, target := range targets {
		f.fail = &gateway.Error{Message: "Project could not be found."}
		err := n.Navigate(context.Background(), target)
		if err == nil {
			t.Fatalf("%s: expected error", target)
		}
		if diff := cmp.Diff(before, n.View(), cmp.AllowUnexported(Target{})); diff != "" {
			t.Fatalf("%s: state changed on failure (-before +after):\n%s", target, diff)
		}
		if n.Forms() != beforeForms {
			t.Fatalf("%s: forms changed on failure", target)
		}
	}
}

func TestBoreholeNeedsBothRequests(t *testing.T) {
	f := &fakeBackend{
		borehole: model.Borehole{ID: 5, Ref: "BH5"},
		layers:   []model.Layer{{ID: 1}, {ID: 2}},
	}
	n := New(f, Session{})
	if err := n.Navigate(context.Background(), BoreholeAt(5)); err != nil {
		t.Fatal(err)
	}
	br, ok := n.View().Borehole()
	if !ok || br.Borehole.Ref != "BH5" || len(br.Layers) != 2 {
		t.Fatalf("unexpected result %+v", n.View().Result)
	}
	if diff := cmp.Diff([]string{"borehole", "layers"}, f.calls); diff != "" {
		t.Fatalf("calls (-want +got):\n%s", diff)
	}
}

func TestTransitionClearsPreviousResult(t *testing.T) {
	f := &fakeBackend{
		detail:  gateway.ProjectDetail{Project: model.Project{ID: 1}, Boreholes: []model.Borehole{{ID: 9}}},
		profile: model.Profile{User: "ana"},
	}
	n := New(f, Session{UserID: 3})
	ctx := context.Background()
	if err := n.Navigate(ctx, ProjectAt(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := n.Navigate(ctx, MyProfile()); err != nil {
		t.Fatal(err)
	}
	v := n.View()
	pr, ok := v.Profile()
	if !ok {
		t.Fatalf("result %T", v.Result)
	}
	if pr.UserID != 3 || pr.Profile.User != "ana" {
		t.Fatalf("unexpected profile %+v", pr)
	}
	if _, ok := v.Project(); ok {
		t.Fatal("project result leaked into profile page")
	}
}

func TestMyProfileWithoutSession(t *testing.T) {
	f := &fakeBackend{}
	n := New(f, Session{})
	if err := n.Navigate(context.Background(), MyProfile()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatalf("unexpected calls %v", f.calls)
	}
}

func TestSupersededNavigationDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	f := &fakeBackend{}
	f.projectFn = func(ctx context.Context, id int64) (gateway.ProjectDetail, error) {
		if id == 1 {
			close(started)
			<-release
			return gateway.ProjectDetail{Project: model.Project{ID: 1}}, nil
		}
		return gateway.ProjectDetail{Project: model.Project{ID: id}}, nil
	}
	n := New(f, Session{})

	slow := make(chan error, 1)
	go func() { slow <- n.Navigate(context.Background(), ProjectAt(1, 1)) }()
	<-started

	if err := n.Navigate(context.Background(), ProjectAt(2, 1)); err != nil {
		t.Fatal(err)
	}
	close(release)

	if err := <-slow; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("slow navigation err = %v", err)
	}
	pr, _ := n.View().Project()
	if pr.Project.ID != 2 {
		t.Fatalf("stale result applied: project %d", pr.Project.ID)
	}
}

func TestSupersededCancelsContext(t *testing.T) {
	started := make(chan struct{})
	f := &fakeBackend{}
	f.projectFn = func(ctx context.Context, id int64) (gateway.ProjectDetail, error) {
		if id == 1 {
			close(started)
			<-ctx.Done()
			return gateway.ProjectDetail{}, ctx.Err()
		}
		return gateway.ProjectDetail{Project: model.Project{ID: id}}, nil
	}
	n := New(f, Session{})

	slow := make(chan error, 1)
	go func() { slow <- n.Navigate(context.Background(), ProjectAt(1, 1)) }()
	<-started
	if err := n.Navigate(context.Background(), Users()); err != nil {
		t.Fatal(err)
	}
	if err := <-slow; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("slow navigation err = %v", err)
	}
	if n.View().Page != PageUsers {
		t.Fatalf("page = %s", n.View().Page)
	}
}

func TestNavigationResetsForms(t *testing.T) {
	n := New(&fakeBackend{}, Session{})
	n.ShowForm(forms.NewProject)
	if err := n.Navigate(context.Background(), Home(1)); err != nil {
		t.Fatal(err)
	}
	if !n.Forms().TriggerVisible(forms.Project) {
		t.Fatal("form still open after navigation")
	}
}

func TestSessionFromCookies(t *testing.T) {
	if s := SessionFromCookies("csrftoken=x; geolog_user=42"); s.UserID != 42 || !s.SignedIn() {
		t.Fatalf("session = %+v", s)
	}
	if s := SessionFromCookies("csrftoken=x"); s.SignedIn() {
		t.Fatalf("session = %+v", s)
	}
	if s := SessionFromCookies("geolog_user=abc"); s.SignedIn() {
		t.Fatalf("session = %+v", s)
	}
}

func TestBusyUntilNewestNavigationFinishes(t *testing.T) {
	releaseOld := make(chan struct{})
	releaseNew := make(chan struct{})
	started := make(chan int64, 2)
	f := &fakeBackend{}
	f.projectFn = func(ctx context.Context, id int64) (gateway.ProjectDetail, error) {
		started <- id
		if id == 1 {
			<-releaseOld
		} else {
			<-releaseNew
		}
		return gateway.ProjectDetail{Project: model.Project{ID: id}}, nil
	}
	n := New(f, Session{})
	if n.Busy() {
		t.Fatal("busy before any navigation")
	}

	old := make(chan error, 1)
	go func() { old <- n.Navigate(context.Background(), ProjectAt(1, 1)) }()
	<-started
	newer := make(chan error, 1)
	go func() { newer <- n.Navigate(context.Background(), ProjectAt(2, 1)) }()
	<-started

	close(releaseOld)
	if err := <-old; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("old navigation err = %v", err)
	}
	if !n.Busy() {
		t.Fatal("superseded navigation cleared busy while the newer one is loading")
	}

	close(releaseNew)
	if err := <-newer; err != nil {
		t.Fatal(err)
	}
	if n.Busy() {
		t.Fatal("still busy after the newest navigation finished")
	}
}
