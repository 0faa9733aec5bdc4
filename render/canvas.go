package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trail-sketch/pointset"
	"github.com/lixenwraith/trail-sketch/sketch"
)

const (
	trailRune = '●'
	dotRune   = '□'
)

// Canvas draws a sketch.Drawing onto a terminal screen
type Canvas struct {
	screen  tcell.Screen
	palette Palette
	bg      tcell.Style
}

// NewCanvas wraps screen with the given palette
func NewCanvas(screen tcell.Screen, palette Palette) *Canvas {
	return &Canvas{
		screen:  screen,
		palette: palette,
		bg:      tcell.StyleDefault.Background(ToTcell(palette.Background)),
	}
}

// Draw renders one frame: rectangles at the back, then the trail, then the
// rubber band on top
func (c *Canvas) Draw(d *sketch.Drawing) {
	c.screen.Fill(' ', c.bg)

	for _, r := range d.Rects {
		c.drawRect(r)
	}

	c.drawTrail(d.Points)

	if d.Dragging() {
		c.drawBand(*d.ClickStart, *d.Mouse)
	}

	c.screen.Show()
}

func (c *Canvas) inBounds(x, y int) bool {
	w, h := c.screen.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

// drawRect fills the interior and outlines it with a darker border
func (c *Canvas) drawRect(r sketch.Rect) {
	minP, maxP := r.Normalize()
	fill := tcell.StyleDefault.
		Background(ToTcell(r.Color)).
		Foreground(ToTcell(Darken(r.Color, 0.25)))

	for y := minP.Y; y <= maxP.Y; y++ {
		for x := minP.X; x <= maxP.X; x++ {
			if !c.inBounds(x, y) {
				continue
			}
			c.screen.SetContent(x, y, borderRune(x, y, minP, maxP, ' '), nil, fill)
		}
	}
}

// drawTrail renders oldest to newest, older points fading into the background
func (c *Canvas) drawTrail(points *pointset.PointSet) {
	n := points.Len()
	for i := 0; i < n; i++ {
		p, err := points.GetPoint(i)
		if err != nil {
			return
		}
		if !c.inBounds(p.X, p.Y) {
			continue
		}
		alpha := float64(i+1) / float64(n)
		fg := ToTcell(Fade(c.palette.Background, c.palette.Trail, alpha))
		c.overlay(p.X, p.Y, trailRune, fg)
	}
}

// drawBand outlines the pending rectangle without filling it
func (c *Canvas) drawBand(from, to pointset.Position) {
	minP, maxP := sketch.Rect{P1: from, P2: to}.Normalize()
	fg := ToTcell(c.palette.Band)

	for y := minP.Y; y <= maxP.Y; y++ {
		for x := minP.X; x <= maxP.X; x++ {
			if y != minP.Y && y != maxP.Y && x != minP.X && x != maxP.X {
				continue
			}
			if !c.inBounds(x, y) {
				continue
			}
			c.overlay(x, y, borderRune(x, y, minP, maxP, ' '), fg)
		}
	}
}

// overlay sets rune and foreground while keeping the cell background
func (c *Canvas) overlay(x, y int, r rune, fg tcell.Color) {
	_, _, style, _ := c.screen.GetContent(x, y)
	c.screen.SetContent(x, y, r, nil, style.Foreground(fg))
}

// borderRune picks the box-drawing rune for (x, y) within [minP, maxP]
func borderRune(x, y int, minP, maxP pointset.Position, interior rune) rune {
	switch {
	case minP.X == maxP.X && minP.Y == maxP.Y:
		return dotRune
	case minP.Y == maxP.Y:
		return '─'
	case minP.X == maxP.X:
		return '│'
	}

	top, bottom := y == minP.Y, y == maxP.Y
	left, right := x == minP.X, x == maxP.X
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top || bottom:
		return '─'
	case left || right:
		return '│'
	}
	return interior
}
