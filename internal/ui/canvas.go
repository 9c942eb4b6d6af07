package ui

import (
	"context"
	"errors"
	"math"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/gateway"
	"github.com/kidandcat/geolog/internal/sketch"
)

const sketchCanvasID = "sketch-canvas"

// SketchPad is the project's freehand site sketch.
type SketchPad struct {
	app.Compo

	ProjectID int64
	Client    *gateway.Client

	session  *sketch.Session
	el       app.Value
	ready    bool
	previous bool
	saving   bool
}

func (p *SketchPad) OnMount(ctx app.Context) {
	p.reset(ctx)
}

func (p *SketchPad) OnUpdate(ctx app.Context) {
	if p.session == nil || p.session.ProjectID != p.ProjectID {
		p.reset(ctx)
	}
}

// reset binds a fresh session to the mounted canvas and loads the saved
// sketch. Pointer events are ignored until the load has finished.
func (p *SketchPad) reset(ctx app.Context) {
	p.el = app.Window().GetElementByID(sketchCanvasID)
	if !p.el.Truthy() {
		app.Log("sketch: canvas not mounted")
		return
	}
	surface := newCanvasSurface(p.el)
	surface.Clear()
	s := sketch.NewSession(p.Client, surface, p.ProjectID)
	p.session = s
	p.ready = false
	p.previous = false

	ctx.Async(func() {
		err := s.Load(ctx)
		ctx.Dispatch(func(ctx app.Context) {
			if s != p.session {
				return
			}
			p.ready = s.Engine().Ready()
			p.previous = s.Previous()
			alert(err)
		})
	})
}

func (p *SketchPad) canvas() sketch.Canvas {
	return sketch.Canvas{
		Node:          domNode{p.el},
		Width:         p.el.Get("width").Int(),
		Height:        p.el.Get("height").Int(),
		DisplayWidth:  p.el.Get("offsetWidth").Float(),
		DisplayHeight: p.el.Get("offsetHeight").Float(),
	}
}

func (p *SketchPad) point(e app.Event) sketch.Point {
	return p.canvas().Map(e.Get("pageX").Float(), e.Get("pageY").Float())
}

func (p *SketchPad) onMouseDown(ctx app.Context, e app.Event) {
	if p.session == nil {
		return
	}
	e.PreventDefault()
	p.session.Engine().Down(p.point(e))
}

func (p *SketchPad) onMouseMove(ctx app.Context, e app.Event) {
	if p.session == nil || !p.session.Engine().Engaged() {
		return
	}
	e.PreventDefault()
	p.session.Engine().Move(p.point(e))
}

func (p *SketchPad) onMouseUp(ctx app.Context, e app.Event) {
	if p.session == nil {
		return
	}
	p.session.Engine().Up()
}

func (p *SketchPad) onClear(ctx app.Context, e app.Event) {
	if p.session == nil {
		return
	}
	p.session.Clear()
}

func (p *SketchPad) onSave(ctx app.Context, e app.Event) {
	s := p.session
	if s == nil {
		return
	}
	p.saving = true
	ctx.Async(func() {
		err := s.Save(ctx)
		ctx.Dispatch(func(ctx app.Context) {
			p.saving = false
			p.previous = s.Previous()
			if err == nil {
				app.Window().Call("alert", "Sketch saved.")
			}
			alert(err)
		})
	})
}

func (p *SketchPad) Render() app.UI {
	status := "New sketch"
	switch {
	case !p.ready:
		status = "Loading sketch…"
	case p.previous:
		status = "Saved sketch"
	}
	return app.Div().Class("sketch").Body(
		app.Canvas().
			ID(sketchCanvasID).
			Class("sketch-canvas").
			Width(sketch.Width).
			Height(sketch.Height).
			OnMouseDown(p.onMouseDown).
			OnMouseMove(p.onMouseMove).
			OnMouseUp(p.onMouseUp).
			OnMouseLeave(p.onMouseUp),
		app.Div().Class("sketch-toolbar").Body(
			app.Span().Class("sketch-status").Text(status),
			app.Button().Class("btn").Text("Clear").Disabled(!p.ready).OnClick(p.onClear),
			app.Button().Class("btn btn-primary").Text("Save sketch").Disabled(!p.ready || p.saving).OnClick(p.onSave),
		),
	)
}

// domNode exposes an element's layout offsets to sketch.PageOffset.
type domNode struct {
	v app.Value
}

func (n domNode) OffsetLeft() float64 { return n.v.Get("offsetLeft").Float() }
func (n domNode) OffsetTop() float64  { return n.v.Get("offsetTop").Float() }

func (n domNode) OffsetParent() sketch.Node {
	parent := n.v.Get("offsetParent")
	if !parent.Truthy() {
		return nil
	}
	return domNode{parent}
}

// canvasSurface draws on an HTML canvas through its 2D context.
type canvasSurface struct {
	el  app.Value
	ctx app.Value
}

func newCanvasSurface(el app.Value) *canvasSurface {
	c := el.Call("getContext", "2d")
	c.Set("lineWidth", sketch.LineWidth)
	c.Set("lineCap", "round")
	c.Set("lineJoin", "round")
	c.Set("strokeStyle", "#000")
	c.Set("fillStyle", "#000")
	return &canvasSurface{el: el, ctx: c}
}

func (c *canvasSurface) Size() (int, int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

func (c *canvasSurface) BeginPath()            { c.ctx.Call("beginPath") }
func (c *canvasSurface) MoveTo(p sketch.Point) { c.ctx.Call("moveTo", p.X, p.Y) }
func (c *canvasSurface) LineTo(p sketch.Point) { c.ctx.Call("lineTo", p.X, p.Y) }
func (c *canvasSurface) Stroke()               { c.ctx.Call("stroke") }

func (c *canvasSurface) Dot(p sketch.Point, r float64) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", p.X, p.Y, r, 0, 2*math.Pi)
	c.ctx.Call("fill")
}

func (c *canvasSurface) Clear() {
	w, h := c.Size()
	c.ctx.Call("clearRect", 0, 0, w, h)
}

// Paint draws src at the origin once the browser has decoded it.
func (c *canvasSurface) Paint(ctx context.Context, src string) error {
	img := app.Window().Get("Image").New()
	done := make(chan error, 1)

	onload := app.FuncOf(func(this app.Value, args []app.Value) any {
		c.ctx.Call("drawImage", img, 0, 0)
		done <- nil
		return nil
	})
	defer onload.Release()
	onerror := app.FuncOf(func(this app.Value, args []app.Value) any {
		done <- errors.New("image failed to load: " + src)
		return nil
	})
	defer onerror.Release()

	img.Set("onload", onload)
	img.Set("onerror", onerror)
	img.Set("src", src)

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		img.Set("onload", nil)
		img.Set("onerror", nil)
		return ctx.Err()
	}
}

func (c *canvasSurface) DataURI() (string, error) {
	uri := c.el.Call("toDataURL", "image/png").String()
	if uri == "" || uri == "data:," {
		return "", errors.New("canvas export failed")
	}
	return uri, nil
}
