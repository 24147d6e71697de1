package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInner(t *testing.T) {
	inner := NewRect(0, 0, 80, 14).Inner()
	if inner != NewRect(1, 1, 78, 12) {
		t.Errorf("Inner() = %+v, expected {1 1 78 12}", inner)
	}

	// Degenerate boxes never produce negative sizes
	tiny := NewRect(3, 3, 1, 1).Inner()
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inner() of 1x1 = %+v, expected zero size", tiny)
	}
}

func TestClampHelpers(t *testing.T) {
	// Pitch columns 1..78, as used by pitch bounds and pace limits
	ints := []struct{ val, want int }{{-3, 1}, {1, 1}, {40, 40}, {78, 78}, {95, 78}}
	for _, tc := range ints {
		if got := Clamp(tc.val, 1, 78); got != tc.want {
			t.Errorf("Clamp(%d, 1, 78) = %d, expected %d", tc.val, got, tc.want)
		}
	}

	floats := []struct{ val, want float64 }{{-0.2, 0}, {0.35, 0.35}, {1.4, 1}}
	for _, tc := range floats {
		if got := ClampF(tc.val, 0, 1); got != tc.want {
			t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tc.val, got, tc.want)
		}
	}

	for _, v := range []int{-7, 0, 7} {
		if got := Abs(v); got < 0 || (got != v && got != -v) {
			t.Errorf("Abs(%d) = %d", v, got)
		}
	}
}

func TestInputFrameOrdered(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	f.Set(ActionMoveLeft)
	f.Set(ActionPause)

	got := f.Ordered()
	want := []Action{ActionPause, ActionMoveLeft, ActionQuit}
	if len(got) != len(want) {
		t.Fatalf("Ordered() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}
