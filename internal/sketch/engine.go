// Package sketch captures freehand strokes on a drawing surface and persists
// the surface as a raster image.
package sketch

const (
	Width  = 425
	Height = 300

	LineWidth = 6
	DotRadius = 3
)

// Surface is the subset of a 2D canvas context the engine draws with.
type Surface interface {
	Size() (w, h int)
	BeginPath()
	MoveTo(p Point)
	// LineTo on an empty path only sets the current point.
	LineTo(p Point)
	Stroke()
	// Dot fills a circle of radius r centred on p.
	Dot(p Point, r float64)
	Clear()
}

// Stroke is one continuous path from pointer-down to pointer-up.
type Stroke []Point

// Engine turns pointer events into strokes. It ignores every event until
// Enable is called, and is idle until a pointer-down engages it.
type Engine struct {
	surface Surface

	ready   bool
	engaged bool
	strokes []Stroke
}

func NewEngine(s Surface) *Engine {
	return &Engine{surface: s}
}

func (e *Engine) Enable() {
	e.ready = true
}

func (e *Engine) Ready() bool {
	return e.ready
}

func (e *Engine) Engaged() bool {
	return e.engaged
}

// Down starts a stroke. The pressed point is drawn, so a click leaves a dot.
func (e *Engine) Down(p Point) {
	if !e.ready {
		return
	}
	e.engaged = true
	e.strokes = append(e.strokes, nil)
	e.put(p)
}

func (e *Engine) Move(p Point) {
	if !e.ready || !e.engaged {
		return
	}
	e.put(p)
}

// Up ends the stroke and starts a fresh path so the next stroke is not
// joined to this one.
func (e *Engine) Up() {
	if !e.ready {
		return
	}
	e.engaged = false
	e.surface.BeginPath()
}

// Clear erases the surface. Nothing is sent to the server.
func (e *Engine) Clear() {
	e.surface.Clear()
	e.surface.BeginPath()
	e.strokes = nil
	if e.engaged {
		e.strokes = append(e.strokes, nil)
	}
}

// Strokes returns the strokes drawn since the engine was created or cleared.
func (e *Engine) Strokes() []Stroke {
	out := make([]Stroke, len(e.strokes))
	for i, s := range e.strokes {
		out[i] = append(Stroke(nil), s...)
	}
	return out
}

func (e *Engine) put(p Point) {
	last := len(e.strokes) - 1
	e.strokes[last] = append(e.strokes[last], p)

	s := e.surface
	s.LineTo(p)
	s.Stroke()
	s.Dot(p, DotRadius)
	s.BeginPath()
	s.MoveTo(p)
}
