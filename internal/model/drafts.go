package model

import "strconv"

// Drafts are the request bodies of the create/edit forms. Fields stay strings
// because they are bound to text inputs; the backend validates them.

type ProjectDraft struct {
	ID          int64  `json:"-"`
	Title       string `json:"project_title"`
	Reference   string `json:"project_reference"`
	Client      string `json:"project_client"`
	Description string `json:"project_description"`
}

func ProjectDraftFrom(p Project) ProjectDraft {
	return ProjectDraft{
		ID:          p.ID,
		Title:       p.Title,
		Reference:   p.Ref,
		Client:      p.Client,
		Description: p.Description,
	}
}

type BoreholeDraft struct {
	ID          int64  `json:"-"`
	ProjectID   int64  `json:"projectId,omitempty"`
	Reference   string `json:"borehole_reference"`
	Northing    string `json:"borehole_northing"`
	Easting     string `json:"borehole_easting"`
	GroundLevel string `json:"ground_level"`
	Equipment   string `json:"drilling_equipment"`
	Diameter    string `json:"borehole_diameter"`
}

func BoreholeDraftFrom(b Borehole) BoreholeDraft {
	d := BoreholeDraft{
		ID:          b.ID,
		Reference:   b.Ref,
		Northing:    b.Northing.String(),
		Easting:     b.Easting.String(),
		GroundLevel: b.GroundLevel.String(),
		Equipment:   b.Equipment,
	}
	if b.Diameter != 0 {
		d.Diameter = strconv.Itoa(b.Diameter)
	}
	return d
}

type LayerDraft struct {
	ID          int64  `json:"-"`
	BoreholeID  int64  `json:"-"`
	StartDepth  string `json:"start_depth"`
	EndDepth    string `json:"end_depth"`
	Sample      string `json:"sample_number"`
	SPT         string `json:"spt_result"`
	FieldTest   string `json:"field_test_details"`
	Description string `json:"geology_description"`
}

func LayerDraftFrom(l Layer) LayerDraft {
	return LayerDraft{
		ID:          l.ID,
		BoreholeID:  l.BoreholeID,
		StartDepth:  l.StartDepth.String(),
		EndDepth:    l.EndDepth.String(),
		Sample:      l.SampleID,
		SPT:         l.SPT,
		FieldTest:   l.FieldTest,
		Description: l.Description,
	}
}

type MessageDraft struct {
	Body string `json:"message"`
}

type SketchUpload struct {
	DataURI string `json:"dataURI"`
}
