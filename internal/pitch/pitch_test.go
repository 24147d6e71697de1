package pitch

import (
	"errors"
	"testing"
)

func TestBoundsValidate(t *testing.T) {
	tests := []struct {
		name    string
		b       Bounds
		wantErr bool
	}{
		{"default", DefaultBounds(), false},
		{"two by two", Bounds{Left: 3, Top: 3, Right: 4, Bottom: 4}, false},
		{"single cell", Bounds{Left: 3, Top: 3, Right: 3, Bottom: 3}, true},
		{"single column", Bounds{Left: 5, Top: 1, Right: 5, Bottom: 12}, true},
		{"single row", Bounds{Left: 1, Top: 4, Right: 78, Bottom: 4}, true},
		{"inverted x", Bounds{Left: 5, Top: 1, Right: 4, Bottom: 2}, true},
		{"inverted y", Bounds{Left: 1, Top: 5, Right: 4, Bottom: 2}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.b.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBounds) {
				t.Errorf("error should wrap ErrInvalidBounds, got %v", err)
			}
		})
	}
}

func TestMirrorInvolution(t *testing.T) {
	b := DefaultBounds()
	for x := b.Left; x <= b.Right; x++ {
		m := b.MirrorX(x)
		if m < b.Left || m > b.Right {
			t.Fatalf("MirrorX(%d) = %d out of bounds", x, m)
		}
		if b.MirrorX(m) != x {
			t.Errorf("MirrorX(MirrorX(%d)) = %d", x, b.MirrorX(m))
		}
	}
	if b.MirrorX(b.Left) != b.Right {
		t.Errorf("left edge should mirror onto right edge")
	}
}

func TestGridOutOfBoundsNoop(t *testing.T) {
	b := DefaultBounds()
	g := NewGrid(b)
	for _, p := range []Point{{0, 0}, {79, 5}, {5, 13}, {-3, -3}} {
		g.Mark(p)
		if g.Occupied(p) {
			t.Errorf("out-of-bounds %v reported occupied", p)
		}
		g.Unmark(p)
	}
	for y := b.Top; y <= b.Bottom; y++ {
		for x := b.Left; x <= b.Right; x++ {
			if g.Occupied(Pt(x, y)) {
				t.Fatalf("out-of-bounds marks leaked into %v", Pt(x, y))
			}
		}
	}
}

func TestGridRebuild(t *testing.T) {
	g := NewGrid(DefaultBounds())
	g.Mark(Pt(10, 10))
	g.Rebuild([]Point{{1, 1}, {78, 12}})

	if g.Occupied(Pt(10, 10)) {
		t.Error("Rebuild should clear previous marks")
	}
	if !g.Occupied(Pt(1, 1)) || !g.Occupied(Pt(78, 12)) {
		t.Error("Rebuild should mark the given corners")
	}
	g.Unmark(Pt(1, 1))
	if g.Occupied(Pt(1, 1)) {
		t.Error("Unmark should clear the cell")
	}
}

func manhattan(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func TestBFSEmptyGridIsManhattan(t *testing.T) {
	g := NewGrid(DefaultBounds())
	tests := []struct{ start, goal Point }{
		{Pt(1, 1), Pt(78, 12)},
		{Pt(40, 6), Pt(41, 6)},
		{Pt(10, 12), Pt(10, 1)},
		{Pt(60, 3), Pt(20, 9)},
	}
	for _, tc := range tests {
		path := BFS{}.Find(g, tc.start, tc.goal)
		if len(path) != manhattan(tc.start, tc.goal) {
			t.Errorf("%v->%v: len=%d, expected %d", tc.start, tc.goal, len(path), manhattan(tc.start, tc.goal))
			continue
		}
		if path[len(path)-1] != tc.goal {
			t.Errorf("%v->%v: path ends at %v", tc.start, tc.goal, path[len(path)-1])
		}
		prev := tc.start
		for _, p := range path {
			if manhattan(prev, p) != 1 {
				t.Fatalf("%v->%v: non-adjacent step %v->%v", tc.start, tc.goal, prev, p)
			}
			prev = p
		}
	}
}

func TestBFSExpansionOrder(t *testing.T) {
	g := NewGrid(DefaultBounds())
	// Up is tried before right, so a diagonal goal is reached by first
	// stepping vertically.
	step, ok := NextStep(BFS{}, g, Pt(10, 6), Pt(12, 4))
	if !ok || step != Pt(10, 5) {
		t.Errorf("first step = %v (ok=%v), expected (10,5)", step, ok)
	}
}

func TestBFSAvoidsOccupied(t *testing.T) {
	g := NewGrid(DefaultBounds())
	// Wall at x=20 from y=1..11 leaves a gap at the bottom row.
	for y := 1; y <= 11; y++ {
		g.Mark(Pt(20, y))
	}
	path := BFS{}.Find(g, Pt(18, 2), Pt(22, 2))
	if len(path) == 0 {
		t.Fatal("expected a path around the wall")
	}
	for _, p := range path {
		if g.Occupied(p) {
			t.Fatalf("path crosses occupied cell %v", p)
		}
	}
	if len(path) <= manhattan(Pt(18, 2), Pt(22, 2)) {
		t.Errorf("detour length %d should exceed straight distance", len(path))
	}
}

func TestBFSEnclosedGoal(t *testing.T) {
	g := NewGrid(DefaultBounds())
	goal := Pt(30, 6)
	for _, d := range Neighbours {
		g.Mark(goal.Add(d))
	}
	if path := (BFS{}).Find(g, Pt(5, 5), goal); len(path) != 0 {
		t.Errorf("enclosed goal should be unreachable, got %v", path)
	}
	if _, ok := NextStep(BFS{}, g, Pt(5, 5), goal); ok {
		t.Error("NextStep should report no step")
	}
}

func TestBFSAtGoalAndClamp(t *testing.T) {
	g := NewGrid(DefaultBounds())
	if path := (BFS{}).Find(g, Pt(7, 7), Pt(7, 7)); len(path) != 0 {
		t.Errorf("start == goal should give empty path, got %v", path)
	}
	path := BFS{}.Find(g, Pt(76, 6), Pt(200, 6))
	if len(path) != 2 || path[1] != Pt(78, 6) {
		t.Errorf("out-of-bounds goal should clamp to the edge, got %v", path)
	}
}
