package sketch

// Update applies one input message to the drawing
func (d *Drawing) Update(msg Msg) Effect {
	switch m := msg.(type) {
	case MouseDown:
		pos := m.Pos
		d.ClickStart = &pos
		d.Mouse = &pos

	case MouseMove:
		pos := m.Pos
		d.Mouse = &pos

	case MouseUp:
		pos := m.Pos
		d.Mouse = &pos
		if d.ClickStart == nil {
			return EffectNone
		}
		start := *d.ClickStart
		d.ClickStart = nil

		// Click without drag
		if start == pos {
			return EffectNone
		}
		d.Rects = append(d.Rects, Rect{P1: start, P2: pos, Color: d.colors()})
		return EffectRectAdded

	case MouseOut:
		d.Mouse = nil
		d.ClickStart = nil

	case Resize:
		d.Width, d.Height = m.Width, m.Height

	case ClearRects:
		if len(d.Rects) == 0 {
			return EffectNone
		}
		d.Rects = d.Rects[:0]
		return EffectRectRemoved

	case UndoRect:
		if len(d.Rects) == 0 {
			return EffectNone
		}
		d.Rects = d.Rects[:len(d.Rects)-1]
		return EffectRectRemoved
	}

	return EffectNone
}
