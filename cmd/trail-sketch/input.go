package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trail-sketch/pointset"
	"github.com/lixenwraith/trail-sketch/sketch"
)

// inputMapper turns terminal events into drawing messages. tcell reports the
// held button mask on every mouse event, so press and release are derived
// from the change against the previous event.
type inputMapper struct {
	held bool
}

// translate returns the message for ev, or nil when ev is ignored.
// quit is set for the exit keys.
func (m *inputMapper) translate(ev tcell.Event) (msg sketch.Msg, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := pointset.Position{X: x, Y: y}
		down := ev.Buttons()&tcell.Button1 != 0

		switch {
		case down && !m.held:
			m.held = true
			return sketch.MouseDown{Pos: pos}, false
		case !down && m.held:
			m.held = false
			return sketch.MouseUp{Pos: pos}, false
		default:
			return sketch.MouseMove{Pos: pos}, false
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			m.held = false
			return sketch.MouseOut{}, false
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		return sketch.Resize{Width: w, Height: h}, false

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return nil, true
			case 'c':
				return sketch.ClearRects{}, false
			case 'u':
				return sketch.UndoRect{}, false
			case 'x':
				// Terminals do not report the pointer leaving; let the user park it
				m.held = false
				return sketch.MouseOut{}, false
			}
		}
	}

	return nil, false
}
