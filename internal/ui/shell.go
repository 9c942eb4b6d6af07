package ui

import (
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/forms"
	"github.com/kidandcat/geolog/internal/gateway"
	"github.com/kidandcat/geolog/internal/nav"
)

// Shell is the single page. It renders whatever the Navigator last committed.
type Shell struct {
	app.Compo

	client *gateway.Client
	nav    *nav.Navigator

	view    nav.View
	forms   forms.Orchestrator
	loading bool
}

// Register routes every path the client owns to the Shell. Both the WASM
// binary and the server that prerenders it must call it.
func Register() {
	app.Route("/", func() app.Composer { return &Shell{} })
}

func documentCookie() string {
	return app.Window().Get("document").Get("cookie").String()
}

func (s *Shell) OnInit() {
	s.client = gateway.New("", gateway.CookieToken(documentCookie, gateway.CSRFCookie))
	s.nav = nav.New(s.client, nav.SessionFromCookies(documentCookie()))
	s.sync()
}

func (s *Shell) OnMount(ctx app.Context) {
	s.goTo(ctx, nav.Home(1))
}

// sync copies the Navigator's committed state into the component.
func (s *Shell) sync() {
	s.view = s.nav.View()
	s.forms = s.nav.Forms()
	s.loading = s.nav.Busy()
}

func (s *Shell) goTo(ctx app.Context, t nav.Target) {
	s.loading = true
	ctx.Async(func() {
		err := s.nav.Navigate(ctx, t)
		ctx.Dispatch(func(ctx app.Context) {
			s.sync()
			alert(err)
		})
	})
}

// run performs a Navigator action off the UI goroutine, then re-renders.
func (s *Shell) run(ctx app.Context, action func() error) {
	ctx.Async(func() {
		err := action()
		ctx.Dispatch(func(ctx app.Context) {
			s.sync()
			alert(err)
		})
	})
}

func (s *Shell) showForm(k forms.Kind) {
	s.nav.ShowForm(k)
	s.sync()
}

func (s *Shell) hideForm(e forms.Entity) {
	s.nav.HideForm(e)
	s.sync()
}

// alert reports err to the user. Superseded navigations are silent.
func alert(err error) {
	if err == nil || errors.Is(err, nav.ErrSuperseded) {
		return
	}
	app.Log(err)
	app.Window().Call("alert", alertText(err))
}

func alertText(err error) string {
	var ge *gateway.Error
	switch {
	case errors.As(err, &ge):
		return ge.Message
	case errors.Is(err, nav.ErrNoLayers):
		return "No layers added yet."
	case errors.Is(err, nav.ErrNoSession):
		return "Please log in first."
	}
	return err.Error()
}

func (s *Shell) Render() app.UI {
	return app.Div().Class("geolog").Body(
		s.renderHeader(),
		app.Main().Class("page page-"+s.view.Page.String()).Body(
			s.renderPage(),
		),
	)
}

func (s *Shell) renderHeader() app.UI {
	link := func(label string, t nav.Target) app.UI {
		return app.A().Href("#").Text(label).OnClick(func(ctx app.Context, e app.Event) {
			e.PreventDefault()
			s.goTo(ctx, t)
		})
	}
	signedIn := s.nav.Session().SignedIn()
	return app.Header().Class("topbar").Body(
		app.Span().Class("brand").Text("GeoLog"),
		app.Nav().Body(
			link("Projects", nav.Home(1)),
			app.If(signedIn, func() app.UI {
				return link("My profile", nav.MyProfile())
			}),
			link("Users", nav.Users()),
			app.If(signedIn, func() app.UI {
				return app.A().Href("/logout").Text("Log out")
			}).Else(func() app.UI {
				return app.A().Href("/login").Text("Log in")
			}),
		),
		app.If(s.loading, func() app.UI {
			return app.Span().Class("loading-spinner")
		}),
	)
}

func (s *Shell) renderPage() app.UI {
	switch s.view.Page {
	case nav.PageProject:
		r, _ := s.view.Project()
		return s.renderProject(r)
	case nav.PageProfile:
		r, _ := s.view.Profile()
		return s.renderProfile(r)
	case nav.PageBorehole:
		r, _ := s.view.Borehole()
		return s.renderBorehole(r)
	case nav.PageUsers:
		r, _ := s.view.Users()
		return s.renderUsers(r)
	}
	r, _ := s.view.Home()
	return s.renderHome(r)
}
