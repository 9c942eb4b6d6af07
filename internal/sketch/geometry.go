package sketch

import "math"

type Point struct {
	X, Y float64
}

// Node is one element in a layout offset chain, as exposed by the DOM's
// offsetLeft/offsetTop/offsetParent.
type Node interface {
	OffsetLeft() float64
	OffsetTop() float64
	// OffsetParent returns nil at the top of the chain.
	OffsetParent() Node
}

// PageOffset is the cumulative offset of n within the page.
func PageOffset(n Node) Point {
	var p Point
	for ; n != nil; n = n.OffsetParent() {
		p.X += n.OffsetLeft()
		p.Y += n.OffsetTop()
	}
	return p
}

// Canvas describes a drawing element: its place in the page, its backing
// store resolution and the size it is displayed at.
type Canvas struct {
	Node          Node
	Width, Height int

	DisplayWidth, DisplayHeight float64
}

// Map converts page-relative pointer coordinates into backing store pixels.
// The backing store and the displayed size may differ, so x and y are scaled
// independently by resolution/displayed size.
func (c Canvas) Map(pageX, pageY float64) Point {
	off := PageOffset(c.Node)
	x := (pageX - off.X) * scale(c.Width, c.DisplayWidth)
	y := (pageY - off.Y) * scale(c.Height, c.DisplayHeight)
	return Point{X: math.Round(x), Y: math.Round(y)}
}

func scale(backing int, displayed float64) float64 {
	if displayed <= 0 || backing <= 0 {
		return 1
	}
	return float64(backing) / displayed
}
