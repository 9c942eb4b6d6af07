package sketch

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kidandcat/geolog/internal/model"
)

type node struct {
	left, top float64
	parent    *node
}

func (n *node) OffsetLeft() float64 { return n.left }
func (n *node) OffsetTop() float64  { return n.top }
func (n *node) OffsetParent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func TestCanvasMap(t *testing.T) {
	body := &node{left: 8, top: 8}
	container := &node{left: 112, top: 42, parent: body}
	el := &node{left: 0, top: 10, parent: container}
	c := Canvas{Node: el, Width: 425, Height: 300, DisplayWidth: 850, DisplayHeight: 600}

	off := PageOffset(el)
	if off != (Point{X: 120, Y: 60}) {
		t.Fatalf("offset = %+v", off)
	}
	if got := c.Map(off.X, off.Y); got != (Point{}) {
		t.Fatalf("top-left maps to %+v", got)
	}
	if got := c.Map(off.X+850, off.Y+600); got != (Point{X: 425, Y: 300}) {
		t.Fatalf("bottom-right maps to %+v", got)
	}
	if got := c.Map(off.X+425, off.Y+150); got != (Point{X: 213, Y: 75}) {
		t.Fatalf("centre maps to %+v", got)
	}
}

func TestCanvasMapUnscaled(t *testing.T) {
	c := Canvas{Node: &node{left: 10, top: 20}, Width: 425, Height: 300}
	if got := c.Map(15, 27); got != (Point{X: 5, Y: 7}) {
		t.Fatalf("map = %+v", got)
	}
}

func ink(img *image.RGBA, x, y int) bool {
	_, _, _, a := img.At(x, y).RGBA()
	return a > 0
}

func TestStrokeContinuity(t *testing.T) {
	r := NewRaster(Width, Height)
	e := NewEngine(r)
	e.Enable()

	e.Down(Point{X: 10, Y: 50})
	e.Move(Point{X: 40, Y: 50})
	e.Move(Point{X: 70, Y: 50})
	e.Up()
	e.Down(Point{X: 150, Y: 50})
	e.Move(Point{X: 200, Y: 50})
	e.Up()

	want := []Stroke{
		{{X: 10, Y: 50}, {X: 40, Y: 50}, {X: 70, Y: 50}},
		{{X: 150, Y: 50}, {X: 200, Y: 50}},
	}
	if diff := cmp.Diff(want, e.Strokes()); diff != "" {
		t.Fatalf("strokes (-want +got):\n%s", diff)
	}

	img := r.Image()
	for _, x := range []int{25, 55, 175} {
		if !ink(img, x, 50) {
			t.Errorf("no ink inside stroke at x=%d", x)
		}
	}
	if ink(img, 110, 50) {
		t.Error("strokes are joined across pointer-up")
	}
	if ink(img, 25, 80) {
		t.Error("ink far from stroke")
	}
}

func TestEngineIgnoresEventsUntilEnabled(t *testing.T) {
	r := NewRaster(Width, Height)
	e := NewEngine(r)
	e.Down(Point{X: 20, Y: 20})
	e.Move(Point{X: 60, Y: 20})
	e.Up()
	if len(e.Strokes()) != 0 || ink(r.Image(), 40, 20) {
		t.Fatal("drew before enabled")
	}
}

func TestMoveWithoutDownDoesNotDraw(t *testing.T) {
	r := NewRaster(Width, Height)
	e := NewEngine(r)
	e.Enable()
	e.Move(Point{X: 20, Y: 20})
	e.Move(Point{X: 60, Y: 20})
	if e.Engaged() || len(e.Strokes()) != 0 || ink(r.Image(), 40, 20) {
		t.Fatal("idle engine drew")
	}
}

func TestClear(t *testing.T) {
	r := NewRaster(Width, Height)
	e := NewEngine(r)
	e.Enable()
	e.Down(Point{X: 20, Y: 20})
	e.Move(Point{X: 60, Y: 20})
	e.Up()
	e.Clear()
	if len(e.Strokes()) != 0 || ink(r.Image(), 40, 20) {
		t.Fatal("clear left ink")
	}
}

func TestDataURI(t *testing.T) {
	uri := EncodeDataURI("image/png", []byte{1, 2, 3})
	mime, data, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/png" || !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Fatalf("decoded %q %v", mime, data)
	}
	for _, bad := range []string{"/media/a.png", "data:image/png,abc", "data:image/png;base64"} {
		if _, _, err := DecodeDataURI(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestRasterExportsCanvasSizedPNG(t *testing.T) {
	r := NewRaster(Width, Height)
	e := NewEngine(r)
	e.Enable()
	e.Down(Point{X: 30, Y: 30})
	e.Up()

	uri, err := r.DataURI()
	if err != nil {
		t.Fatal(err)
	}
	mime, data, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/png" {
		t.Fatalf("mime = %q", mime)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("exported %dx%d", b.Dx(), b.Dy())
	}
	if _, _, _, a := img.At(30, 30).RGBA(); a == 0 {
		t.Fatal("dot missing from export")
	}
}

type memBackend struct {
	saved map[int64]string
	fail  error
}

func (m *memBackend) Sketch(ctx context.Context, id int64) (model.Sketch, error) {
	if m.fail != nil {
		return model.Sketch{}, m.fail
	}
	if uri, ok := m.saved[id]; ok {
		return model.Sketch{Img: uri}, nil
	}
	return model.Sketch{Message: "No previous sketches."}, nil
}

func (m *memBackend) SaveSketch(ctx context.Context, id int64, uri string) error {
	if m.fail != nil {
		return m.fail
	}
	m.saved[id] = uri
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := &memBackend{saved: map[int64]string{}}

	first := NewSession(b, NewRaster(Width, Height), 3)
	if err := first.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if first.Previous() || !first.Engine().Ready() {
		t.Fatal("blank load should enable drawing without a previous sketch")
	}
	e := first.Engine()
	e.Down(Point{X: 100, Y: 100})
	e.Move(Point{X: 200, Y: 100})
	e.Up()
	if err := first.Save(ctx); err != nil {
		t.Fatal(err)
	}

	r := NewRaster(Width, Height)
	second := NewSession(b, r, 3)
	if err := second.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if !second.Previous() {
		t.Fatal("saved sketch reported as missing")
	}
	if !ink(r.Image(), 150, 100) {
		t.Fatal("reloaded sketch is empty")
	}

	second.Clear()
	if ink(r.Image(), 150, 100) {
		t.Fatal("clear did not erase")
	}
	if _, ok := b.saved[3]; !ok {
		t.Fatal("clear reached the server")
	}
}

func TestSessionLoadFromURL(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	r := NewRaster(Width, Height)
	var fetched string
	r.Fetch = func(ctx context.Context, url string) ([]byte, error) {
		fetched = url
		return buf.Bytes(), nil
	}
	b := &memBackend{saved: map[int64]string{9: "/media/project_sketch/9_1.png"}}
	s := NewSession(b, r, 9)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if fetched != "/media/project_sketch/9_1.png" || !ink(r.Image(), 1, 1) {
		t.Fatalf("background not painted (fetched %q)", fetched)
	}
}

func TestSessionLoadErrorKeepsDrawingDisabled(t *testing.T) {
	b := &memBackend{fail: errors.New("User not logged in.")}
	s := NewSession(b, NewRaster(Width, Height), 1)
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if s.Engine().Ready() {
		t.Fatal("drawing enabled after failed load")
	}
	if err := s.Save(context.Background()); !errors.Is(err, ErrNotReady) {
		t.Fatalf("save err = %v", err)
	}
}
