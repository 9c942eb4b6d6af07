// Package pager holds the pagination contract shared by every paginated list:
// the server reports where a page sits, the client only renders Previous/Next
// controls from those flags.
package pager

// State is the pagination block of a paginated response. The flags are taken
// as reported by the server and never recomputed.
type State struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

// Consistent reports whether the server flags agree with the page numbers.
func (s State) Consistent() bool {
	return s.HasPrev == (s.CurrentPage > 1) && s.HasNext == (s.CurrentPage < s.TotalPages)
}

// LoadFunc loads page number page of the collection identified by id.
type LoadFunc func(id int64, page int)

type Control struct {
	Label   string
	Enabled bool
	Page    int

	id   int64
	load LoadFunc
}

// Click calls the bound loader. Disabled controls are not wired to it.
func (c Control) Click() {
	if !c.Enabled || c.load == nil {
		return
	}
	c.load(c.id, c.Page)
}

type Controls struct {
	Prev Control
	Next Control
}

// Bind computes the Previous/Next controls for s; id is passed through to load
// untouched so one loader can serve several collections.
func Bind(s State, id int64, load LoadFunc) Controls {
	return Controls{
		Prev: Control{
			Label:   "Previous",
			Enabled: s.HasPrev,
			Page:    s.CurrentPage - 1,
			id:      id,
			load:    load,
		},
		Next: Control{
			Label:   "Next",
			Enabled: s.HasNext,
			Page:    s.CurrentPage + 1,
			id:      id,
			load:    load,
		},
	}
}
