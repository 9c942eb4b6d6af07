package sketch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points to approximate a quarter circle.
const kappa = 0.5522847498

// Fetcher downloads image bytes for a source that is not a data URI.
type Fetcher func(ctx context.Context, url string) ([]byte, error)

// Raster is an in-memory Image backed by an RGBA image. It is the headless
// stand-in for the browser canvas: tests and any off-browser caller draw on
// it through the same Session and Engine code.
type Raster struct {
	Ink       color.Color
	LineWidth float64
	Fetch     Fetcher

	img   *image.RGBA
	z     *vector.Rasterizer
	paths [][]Point
}

var _ Image = (*Raster)(nil)

func NewRaster(w, h int) *Raster {
	return &Raster{
		Ink:       color.Black,
		LineWidth: LineWidth,
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		z:         vector.NewRasterizer(w, h),
	}
}

func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) BeginPath() {
	r.paths = nil
}

func (r *Raster) MoveTo(p Point) {
	r.paths = append(r.paths, []Point{p})
}

func (r *Raster) LineTo(p Point) {
	if len(r.paths) == 0 {
		r.MoveTo(p)
		return
	}
	last := len(r.paths) - 1
	r.paths[last] = append(r.paths[last], p)
}

func (r *Raster) Stroke() {
	for _, path := range r.paths {
		for i := 1; i < len(path); i++ {
			r.segment(path[i-1], path[i])
		}
	}
}

func (r *Raster) Dot(p Point, radius float64) {
	w, h := r.Size()
	r.z.Reset(w, h)
	x, y, rad, k := float32(p.X), float32(p.Y), float32(radius), float32(radius*kappa)
	r.z.MoveTo(x+rad, y)
	r.z.CubeTo(x+rad, y+k, x+k, y+rad, x, y+rad)
	r.z.CubeTo(x-k, y+rad, x-rad, y+k, x-rad, y)
	r.z.CubeTo(x-rad, y-k, x-k, y-rad, x, y-rad)
	r.z.CubeTo(x+k, y-rad, x+rad, y-k, x+rad, y)
	r.z.ClosePath()
	r.fill()
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// Paint draws src at the origin over the current contents. src is a data URI,
// or any URL the Fetcher can download.
func (r *Raster) Paint(ctx context.Context, src string) error {
	var data []byte
	switch {
	case isDataURI(src):
		_, b, err := DecodeDataURI(src)
		if err != nil {
			return err
		}
		data = b
	case r.Fetch != nil:
		b, err := r.Fetch(ctx, src)
		if err != nil {
			return err
		}
		data = b
	default:
		return errors.New("no fetcher for " + src)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	draw.Draw(r.img, img.Bounds().Sub(img.Bounds().Min), img, img.Bounds().Min, draw.Over)
	return nil
}

func (r *Raster) DataURI() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return EncodeDataURI("image/png", buf.Bytes()), nil
}

// segment fills the quad covering a line of LineWidth from a to b.
func (r *Raster) segment(a, b Point) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	hw := r.LineWidth / 2
	nx, ny := -dy/l*hw, dx/l*hw

	w, h := r.Size()
	r.z.Reset(w, h)
	r.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.z.ClosePath()
	r.fill()
}

func (r *Raster) fill() {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Ink), image.Point{})
}
