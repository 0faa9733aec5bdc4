package pointset

import (
	"fmt"
	"iter"
)

// DefaultCapacity is the trail length used when none is configured
const DefaultCapacity = 30

// Position is a location on the drawing surface in cell coordinates
type Position struct {
	X, Y int
}

// PointSet is a ring buffer of the most recent positions
type PointSet struct {
	pts   []Position
	start int // physical slot of the oldest live point
	count int
}

// New creates an empty PointSet holding at most capacity positions
func New(capacity int) (*PointSet, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &PointSet{pts: make([]Position, capacity)}, nil
}

// NewDefault creates an empty PointSet with DefaultCapacity
func NewDefault() *PointSet {
	return &PointSet{pts: make([]Position, DefaultCapacity)}
}

// AddPoint appends p as the newest point, overwriting the oldest if full
func (ps *PointSet) AddPoint(p Position) {
	c := len(ps.pts)
	ps.pts[(ps.start+ps.count)%c] = p

	if ps.count == c {
		ps.start = (ps.start + 1) % c
	} else {
		ps.count++
	}
}

// DropPoint removes the oldest point
func (ps *PointSet) DropPoint() error {
	if ps.count == 0 {
		return ErrEmptyBuffer
	}
	ps.count--
	ps.start = (ps.start + 1) % len(ps.pts)
	return nil
}

// Len returns the number of stored points
func (ps *PointSet) Len() int {
	return ps.count
}

// Cap returns the fixed capacity
func (ps *PointSet) Cap() int {
	return len(ps.pts)
}

// GetPoint returns point number i, where 0 is the oldest
func (ps *PointSet) GetPoint(i int) (Position, error) {
	if i < 0 || i >= ps.count {
		return Position{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, ps.count)
	}
	return ps.pts[(ps.start+i)%len(ps.pts)], nil
}

// All iterates stored points oldest to newest with their logical index
func (ps *PointSet) All() iter.Seq2[int, Position] {
	return func(yield func(int, Position) bool) {
		for i := 0; i < ps.count; i++ {
			if !yield(i, ps.pts[(ps.start+i)%len(ps.pts)]) {
				return
			}
		}
	}
}

// Reset empties the buffer, keeping its storage
func (ps *PointSet) Reset() {
	ps.start = 0
	ps.count = 0
}
