package pointset

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, capacity int) *PointSet {
	t.Helper()
	ps, err := New(capacity)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", capacity, err)
	}
	return ps
}

func pt(n int) Position {
	return Position{X: n, Y: -n}
}

// contents reads all live points through GetPoint
func contents(t *testing.T, ps *PointSet) []Position {
	t.Helper()
	out := make([]Position, 0, ps.Len())
	for i := 0; i < ps.Len(); i++ {
		p, err := ps.GetPoint(i)
		if err != nil {
			t.Fatalf("GetPoint(%d) with Len %d failed: %v", i, ps.Len(), err)
		}
		out = append(out, p)
	}
	return out
}

func assertPoints(t *testing.T, ps *PointSet, want ...Position) {
	t.Helper()
	got := contents(t, ps)
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -30} {
		ps, err := New(c)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("New(%d): expected ErrInvalidCapacity, got %v", c, err)
		}
		if ps != nil {
			t.Errorf("New(%d): expected nil buffer on error", c)
		}
	}
}

func TestNew_Empty(t *testing.T) {
	for _, c := range []int{1, 2, 3, 30, 1000} {
		ps := mustNew(t, c)
		if ps.Len() != 0 {
			t.Errorf("Capacity %d: expected Len 0, got %d", c, ps.Len())
		}
		if ps.Cap() != c {
			t.Errorf("Expected Cap %d, got %d", c, ps.Cap())
		}
	}
}

func TestNewDefault(t *testing.T) {
	ps := NewDefault()
	if ps.Cap() != DefaultCapacity {
		t.Errorf("Expected default capacity %d, got %d", DefaultCapacity, ps.Cap())
	}
	if ps.Len() != 0 {
		t.Errorf("Expected empty buffer, got Len %d", ps.Len())
	}
}

func TestAddPoint_WithinCapacity(t *testing.T) {
	const capacity = 5
	for n := 0; n <= capacity; n++ {
		ps := mustNew(t, capacity)
		want := make([]Position, 0, n)
		for i := 0; i < n; i++ {
			ps.AddPoint(pt(i))
			want = append(want, pt(i))
		}
		if ps.Len() != n {
			t.Errorf("After %d adds: expected Len %d, got %d", n, n, ps.Len())
		}
		assertPoints(t, ps, want...)
	}
}

func TestAddPoint_Eviction(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 7} {
		for extra := 1; extra <= 2*capacity+1; extra++ {
			ps := mustNew(t, capacity)
			total := capacity + extra
			for i := 0; i < total; i++ {
				ps.AddPoint(pt(i))
			}
			if ps.Len() != capacity {
				t.Fatalf("Cap %d, %d adds: expected Len %d, got %d", capacity, total, capacity, ps.Len())
			}
			want := make([]Position, 0, capacity)
			for i := total - capacity; i < total; i++ {
				want = append(want, pt(i))
			}
			assertPoints(t, ps, want...)
		}
	}
}

func TestDropPoint_RemovesOldest(t *testing.T) {
	ps := mustNew(t, 4)
	for i := 0; i < 6; i++ {
		ps.AddPoint(pt(i))
	}

	second, _ := ps.GetPoint(1)
	before := ps.Len()

	if err := ps.DropPoint(); err != nil {
		t.Fatalf("DropPoint failed: %v", err)
	}
	if ps.Len() != before-1 {
		t.Errorf("Expected Len %d, got %d", before-1, ps.Len())
	}
	first, _ := ps.GetPoint(0)
	if first != second {
		t.Errorf("Expected old index 1 (%v) at index 0, got %v", second, first)
	}
}

func TestDropPoint_Empty(t *testing.T) {
	ps := mustNew(t, 3)

	if err := ps.DropPoint(); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("Expected ErrEmptyBuffer, got %v", err)
	}
	if ps.Len() != 0 {
		t.Errorf("Expected Len 0 after failed drop, got %d", ps.Len())
	}

	// Drain to empty then drop again
	ps.AddPoint(pt(1))
	ps.AddPoint(pt(2))
	_ = ps.DropPoint()
	_ = ps.DropPoint()
	if err := ps.DropPoint(); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("Expected ErrEmptyBuffer after drain, got %v", err)
	}

	// Buffer remains usable after the failure
	ps.AddPoint(pt(3))
	assertPoints(t, ps, pt(3))
}

func TestGetPoint_OutOfRange(t *testing.T) {
	ps := mustNew(t, 10)
	ps.AddPoint(pt(1))
	ps.AddPoint(pt(2))

	tests := []struct {
		name string
		idx  int
	}{
		{"Negative", -1},
		{"AtLen", 2},
		{"WithinCapacity", 5},
		{"AtCapacity", 10},
		{"BeyondCapacity", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ps.GetPoint(tt.idx)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("GetPoint(%d): expected ErrIndexOutOfRange, got %v", tt.idx, err)
			}
			if ps.Len() != 2 {
				t.Errorf("Expected Len unchanged at 2, got %d", ps.Len())
			}
		})
	}

	empty := mustNew(t, 3)
	if _, err := empty.GetPoint(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("GetPoint(0) on empty buffer: expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestGetPoint_Idempotent(t *testing.T) {
	ps := mustNew(t, 3)
	for i := 0; i < 5; i++ {
		ps.AddPoint(pt(i))
	}
	for i := 0; i < ps.Len(); i++ {
		a, errA := ps.GetPoint(i)
		b, errB := ps.GetPoint(i)
		if errA != nil || errB != nil {
			t.Fatalf("GetPoint(%d) failed: %v, %v", i, errA, errB)
		}
		if a != b {
			t.Errorf("GetPoint(%d) returned %v then %v", i, a, b)
		}
	}
	if ps.Len() != 3 {
		t.Errorf("Reads changed Len to %d", ps.Len())
	}
}

func TestScenario_CapacityThree(t *testing.T) {
	a, b, c, d := Position{1, 1}, Position{2, 2}, Position{3, 3}, Position{4, 4}
	ps := mustNew(t, 3)

	ps.AddPoint(a)
	ps.AddPoint(b)
	ps.AddPoint(c)
	assertPoints(t, ps, a, b, c)

	ps.AddPoint(d)
	assertPoints(t, ps, b, c, d)

	if err := ps.DropPoint(); err != nil {
		t.Fatalf("DropPoint failed: %v", err)
	}
	assertPoints(t, ps, c, d)
}

func TestInterleavedAddDrop_Wraparound(t *testing.T) {
	ps := mustNew(t, 3)
	var model []Position

	// Mixed sequence that walks start across the slot boundary several times
	ops := "aaadaadaaaddadaaaaddddaa"
	next := 0
	for i, op := range ops {
		switch op {
		case 'a':
			ps.AddPoint(pt(next))
			model = append(model, pt(next))
			if len(model) > 3 {
				model = model[1:]
			}
			next++
		case 'd':
			err := ps.DropPoint()
			if len(model) == 0 {
				if !errors.Is(err, ErrEmptyBuffer) {
					t.Fatalf("Op %d: expected ErrEmptyBuffer, got %v", i, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("Op %d: DropPoint failed: %v", i, err)
			}
			model = model[1:]
		}
		assertPoints(t, ps, model...)
	}
}

func TestAll_MatchesGetPoint(t *testing.T) {
	ps := mustNew(t, 4)
	for i := 0; i < 9; i++ {
		ps.AddPoint(pt(i))
	}
	_ = ps.DropPoint()

	want := contents(t, ps)
	n := 0
	for i, p := range ps.All() {
		if i != n {
			t.Errorf("Expected index %d, got %d", n, i)
		}
		if p != want[i] {
			t.Errorf("All()[%d] = %v, GetPoint = %v", i, p, want[i])
		}
		n++
	}
	if n != len(want) {
		t.Errorf("All yielded %d points, expected %d", n, len(want))
	}

	// Early break stops iteration
	seen := 0
	for range ps.All() {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("Expected 1 point before break, got %d", seen)
	}
}

func TestReset(t *testing.T) {
	ps := mustNew(t, 3)
	for i := 0; i < 5; i++ {
		ps.AddPoint(pt(i))
	}
	ps.Reset()

	if ps.Len() != 0 {
		t.Errorf("Expected Len 0 after Reset, got %d", ps.Len())
	}
	if ps.Cap() != 3 {
		t.Errorf("Reset changed capacity to %d", ps.Cap())
	}
	ps.AddPoint(pt(9))
	assertPoints(t, ps, pt(9))
}
