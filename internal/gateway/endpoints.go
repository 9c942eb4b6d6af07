package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/pager"
)

type ProjectsPage struct {
	Projects []model.Project `json:"projects"`
	pager.State
}

type ProjectDetail struct {
	Project   model.Project    `json:"project"`
	Boreholes []model.Borehole `json:"boreholes"`
	pager.State
}

type MessagesPage struct {
	Messages []model.Message `json:"messages"`
	pager.State
}

// Projects

func (c *Client) Projects(ctx context.Context, page int) (ProjectsPage, error) {
	var p ProjectsPage
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/projects/0/%d", pageOrFirst(page)), nil, &p)
	return p, err
}

func (c *Client) Project(ctx context.Context, id int64, page int) (ProjectDetail, error) {
	if id == 0 {
		return ProjectDetail{}, errors.New("project id required")
	}
	var p ProjectDetail
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/%d", id, pageOrFirst(page)), nil, &p)
	return p, err
}

func (c *Client) CreateProject(ctx context.Context, d model.ProjectDraft) error {
	return c.Do(ctx, http.MethodPost, "/projects/0/1", d, nil)
}

func (c *Client) UpdateProject(ctx context.Context, d model.ProjectDraft) error {
	if d.ID == 0 {
		return errors.New("project id required")
	}
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d/1", d.ID), d, nil)
}

// Boreholes

func (c *Client) Borehole(ctx context.Context, id int64) (model.Borehole, error) {
	var b model.Borehole
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/borehole/%d", id), nil, &b)
	return b, err
}

func (c *Client) CreateBorehole(ctx context.Context, d model.BoreholeDraft) error {
	return c.Do(ctx, http.MethodPost, "/borehole/0", d, nil)
}

func (c *Client) UpdateBorehole(ctx context.Context, d model.BoreholeDraft) error {
	if d.ID == 0 {
		return errors.New("borehole id required")
	}
	d.ProjectID = 0
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/borehole/%d", d.ID), d, nil)
}

// Geology

func (c *Client) Layers(ctx context.Context, boreholeID int64) ([]model.Layer, error) {
	var ls []model.Layer
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/geology/%d/0", boreholeID), nil, &ls)
	return ls, err
}

func (c *Client) Layer(ctx context.Context, boreholeID, strataID int64) (model.Layer, error) {
	if strataID == 0 {
		return model.Layer{}, errors.New("strata id required")
	}
	var l model.Layer
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/geology/%d/%d", boreholeID, strataID), nil, &l)
	return l, err
}

func (c *Client) CreateLayer(ctx context.Context, d model.LayerDraft) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/geology/%d/0", d.BoreholeID), d, nil)
}

func (c *Client) UpdateLayer(ctx context.Context, d model.LayerDraft) error {
	if d.ID == 0 {
		return errors.New("strata id required")
	}
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/geology/%d/%d", d.BoreholeID, d.ID), d, nil)
}

// Profiles

func (c *Client) Users(ctx context.Context) ([]model.UserSummary, error) {
	var us []model.UserSummary
	err := c.Do(ctx, http.MethodGet, "/profile/0", nil, &us)
	return us, err
}

func (c *Client) Profile(ctx context.Context, userID int64) (model.Profile, error) {
	if userID == 0 {
		return model.Profile{}, errors.New("user id required")
	}
	var p model.Profile
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/profile/%d", userID), nil, &p)
	return p, err
}

// Messages

func (c *Client) Messages(ctx context.Context, projectID int64, page int) (MessagesPage, error) {
	var m MessagesPage
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/message/%d/%d", projectID, pageOrFirst(page)), nil, &m)
	return m, err
}

func (c *Client) PostMessage(ctx context.Context, projectID int64, body string) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/message/%d/0", projectID), model.MessageDraft{Body: body}, nil)
}

// Sketches

func (c *Client) Sketch(ctx context.Context, projectID int64) (model.Sketch, error) {
	var s model.Sketch
	err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/sketch/%d", projectID), nil, &s)
	return s, err
}

func (c *Client) SaveSketch(ctx context.Context, projectID int64, dataURI string) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/sketch/%d", projectID), model.SketchUpload{DataURI: dataURI}, nil)
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
