package nav

import (
	"fmt"

	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/pager"
)

// Page is the single discriminator of which top-level view is rendered.
type Page int

const (
	PageHome Page = iota
	PageProject
	PageProfile
	PageBorehole
	PageUsers
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageProject:
		return "project"
	case PageProfile:
		return "profile"
	case PageBorehole:
		return "borehole"
	case PageUsers:
		return "users"
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// Target is a navigation request.
type Target struct {
	Page       Page
	ID         int64
	PageNumber int

	mine bool
}

func Home(page int) Target {
	return Target{Page: PageHome, PageNumber: page}
}

func ProjectAt(id int64, page int) Target {
	return Target{Page: PageProject, ID: id, PageNumber: page}
}

func ProfileOf(userID int64) Target {
	return Target{Page: PageProfile, ID: userID}
}

// MyProfile is the profile of the signed-in user, resolved from the Session.
func MyProfile() Target {
	return Target{Page: PageProfile, mine: true}
}

func BoreholeAt(id int64) Target {
	return Target{Page: PageBorehole, ID: id}
}

func Users() Target {
	return Target{Page: PageUsers}
}

func (t Target) String() string {
	switch {
	case t.mine:
		return "profile(me)"
	case t.Page == PageHome:
		return fmt.Sprintf("home page %d", t.PageNumber)
	case t.Page == PageProject:
		return fmt.Sprintf("project(%d) page %d", t.ID, t.PageNumber)
	case t.Page == PageUsers:
		return "users"
	}
	return fmt.Sprintf("%s(%d)", t.Page, t.ID)
}

// Result is the payload paired with a Page. Each Page has exactly one variant.
type Result interface {
	Page() Page
}

type HomeResult struct {
	Projects   []model.Project
	Pagination pager.State
}

type ProjectResult struct {
	Project    model.Project
	Boreholes  []model.Borehole
	Pagination pager.State
}

type ProfileResult struct {
	UserID  int64
	Profile model.Profile
}

type BoreholeResult struct {
	Borehole model.Borehole
	Layers   []model.Layer

	// Strata is the layer loaded into the edit-layer form, if any.
	Strata *model.Layer
}

type UsersResult struct {
	Users []model.UserSummary
}

func (HomeResult) Page() Page     { return PageHome }
func (ProjectResult) Page() Page  { return PageProject }
func (ProfileResult) Page() Page  { return PageProfile }
func (BoreholeResult) Page() Page { return PageBorehole }
func (UsersResult) Page() Page    { return PageUsers }

// View is what the view layer renders from. Page always equals Result.Page().
type View struct {
	Target Target
	Page   Page
	Result Result
}

func (v View) Home() (HomeResult, bool) {
	r, ok := v.Result.(HomeResult)
	return r, ok
}

func (v View) Project() (ProjectResult, bool) {
	r, ok := v.Result.(ProjectResult)
	return r, ok
}

func (v View) Profile() (ProfileResult, bool) {
	r, ok := v.Result.(ProfileResult)
	return r, ok
}

func (v View) Borehole() (BoreholeResult, bool) {
	r, ok := v.Result.(BoreholeResult)
	return r, ok
}

func (v View) Users() (UsersResult, bool) {
	r, ok := v.Result.(UsersResult)
	return r, ok
}
