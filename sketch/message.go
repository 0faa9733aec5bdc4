package sketch

import "github.com/lixenwraith/trail-sketch/pointset"

// Msg is a discrete input delivered to Update
type Msg interface {
	isMsg()
}

// MouseDown starts a rubber band at Pos
type MouseDown struct{ Pos pointset.Position }

// MouseUp ends a rubber band at Pos
type MouseUp struct{ Pos pointset.Position }

// MouseMove reports pointer motion with or without a button held
type MouseMove struct{ Pos pointset.Position }

// MouseOut reports the pointer leaving the screen
type MouseOut struct{}

// Resize reports new screen dimensions
type Resize struct{ Width, Height int }

// ClearRects removes every committed rectangle
type ClearRects struct{}

// UndoRect removes the newest committed rectangle
type UndoRect struct{}

func (MouseDown) isMsg()  {}
func (MouseUp) isMsg()    {}
func (MouseMove) isMsg()  {}
func (MouseOut) isMsg()   {}
func (Resize) isMsg()     {}
func (ClearRects) isMsg() {}
func (UndoRect) isMsg()   {}

// Effect tells the driver about side effects an update asks for
type Effect uint8

const (
	EffectNone Effect = iota
	EffectRectAdded
	EffectRectRemoved
)
