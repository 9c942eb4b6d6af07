// Package forms tracks which create/edit panel is open for each entity kind.
// Views render panels from this state; nothing here touches the DOM or the network.
package forms

type Entity int

const (
	Project Entity = iota
	Borehole
	Layer
)

func (e Entity) String() string {
	switch e {
	case Project:
		return "project"
	case Borehole:
		return "borehole"
	case Layer:
		return "layer"
	}
	return "unknown"
}

type Mode int

const (
	Hidden Mode = iota
	Creating
	Editing
)

// Kind names a showForm request.
type Kind int

const (
	NewProject Kind = iota
	NewBorehole
	NewLayer
	EditProject
	EditBorehole
	EditLayer
)

func (k Kind) target() (Entity, Mode) {
	switch k {
	case NewProject:
		return Project, Creating
	case NewBorehole:
		return Borehole, Creating
	case NewLayer:
		return Layer, Creating
	case EditProject:
		return Project, Editing
	case EditBorehole:
		return Borehole, Editing
	case EditLayer:
		return Layer, Editing
	}
	return Project, Hidden
}

// Orchestrator is the tri-state visibility per entity. The zero value has every
// panel hidden and every trigger button visible.
type Orchestrator struct {
	modes [3]Mode
}

// Show opens the panel for k. Opening the new-layer form always closes the
// edit-layer form and the reverse.
func (o *Orchestrator) Show(k Kind) {
	e, m := k.target()
	if m == Hidden {
		return
	}
	if e == Layer {
		o.modes[Layer] = Hidden
	}
	o.modes[e] = m
}

// Hide closes whatever panel is open for e and brings back its trigger button.
func (o *Orchestrator) Hide(e Entity) {
	o.modes[e] = Hidden
}

func (o *Orchestrator) Reset() {
	o.modes = [3]Mode{}
}

func (o Orchestrator) Mode(e Entity) Mode {
	return o.modes[e]
}

func (o Orchestrator) TriggerVisible(e Entity) bool {
	return o.modes[e] == Hidden
}

func (o Orchestrator) CreateVisible(e Entity) bool {
	return o.modes[e] == Creating
}

func (o Orchestrator) EditVisible(e Entity) bool {
	return o.modes[e] == Editing
}

// DetailsVisible reports whether the read-only details of e are shown. Only
// project details make room for the edit form.
func (o Orchestrator) DetailsVisible(e Entity) bool {
	return !(e == Project && o.modes[Project] == Editing)
}
