// Package sketch holds the drawing state and the input rules that mutate it.
//
// The driver feeds input as Msg values into Update and calls Frame once per
// tick. Rendering reads the state and never mutates it.
package sketch

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/trail-sketch/pointset"
)

// ColorSource picks the fill color for a new rectangle
type ColorSource func() colorful.Color

// Rect is a committed rectangle between two opposite corners
type Rect struct {
	P1, P2 pointset.Position
	Color  colorful.Color
}

// Normalize returns the top-left and bottom-right corners
func (r Rect) Normalize() (minP, maxP pointset.Position) {
	minP, maxP = r.P1, r.P2
	if minP.X > maxP.X {
		minP.X, maxP.X = maxP.X, minP.X
	}
	if minP.Y > maxP.Y {
		minP.Y, maxP.Y = maxP.Y, minP.Y
	}
	return minP, maxP
}

// Drawing is the whole application state
type Drawing struct {
	// Mouse is nil while the pointer is away from the screen
	Mouse *pointset.Position
	// ClickStart is set between button press and release
	ClickStart *pointset.Position

	Rects  []Rect
	Points *pointset.PointSet

	Width, Height int

	colors ColorSource
}

// New creates a drawing whose trail keeps at most capacity points
func New(capacity int, colors ColorSource) (*Drawing, error) {
	points, err := pointset.New(capacity)
	if err != nil {
		return nil, err
	}
	if colors == nil {
		colors = colorful.HappyColor
	}
	return &Drawing{
		Rects:  make([]Rect, 0),
		Points: points,
		colors: colors,
	}, nil
}

// Dragging reports whether a rubber band is active
func (d *Drawing) Dragging() bool {
	return d.ClickStart != nil && d.Mouse != nil
}

// Frame advances the trail by one tick: the pointer position is sampled while
// present, and the oldest point is dropped while away so the trail drains.
func (d *Drawing) Frame() {
	if d.Mouse != nil {
		d.Points.AddPoint(*d.Mouse)
		return
	}
	if d.Points.Len() > 0 {
		// Len checked, cannot fail
		_ = d.Points.DropPoint()
	}
}
