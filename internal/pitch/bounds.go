// Package pitch models the playing area of a match: its inclusive bounds,
// the per-tick occupancy grid and the pathfinding used to move entities
// between free cells.
package pitch

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-matchday/internal/core"
)

// ErrInvalidBounds is returned when a bounds rectangle is inverted or has
// no width or no height.
var ErrInvalidBounds = errors.New("pitch: invalid bounds")

// Point is an integer cell coordinate on the pitch.
type Point struct {
	X, Y int
}

// Pt is shorthand for constructing a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds is the inclusive playing rectangle. Every coordinate an entity or
// the ball may occupy satisfies Left <= x <= Right and Top <= y <= Bottom.
type Bounds struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// DefaultBounds is the interior of the 80x14 live match panel.
func DefaultBounds() Bounds {
	return Bounds{Left: 1, Top: 1, Right: 78, Bottom: 12}
}

// Validate checks that left < right and top < bottom.
func (b Bounds) Validate() error {
	if b.Right <= b.Left || b.Bottom <= b.Top {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvalidBounds, b.Left, b.Top, b.Right, b.Bottom)
	}
	return nil
}

// Width returns the number of columns.
func (b Bounds) Width() int { return b.Right - b.Left + 1 }

// Height returns the number of rows.
func (b Bounds) Height() int { return b.Bottom - b.Top + 1 }

// Contains reports whether p lies within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Clamp moves p to the nearest in-bounds cell.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: core.Clamp(p.X, b.Left, b.Right),
		Y: core.Clamp(p.Y, b.Top, b.Bottom),
	}
}

// Center returns the restart point in the middle of the pitch.
func (b Bounds) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// MidX returns the column of the halfway line.
func (b Bounds) MidX() int {
	return (b.Left + b.Right) / 2
}

// MirrorX reflects a column about the vertical centerline. Applying it twice
// returns the original column, and the result is always in bounds when x is.
func (b Bounds) MirrorX(x int) int {
	return b.Left + b.Right - x
}

// Mirror reflects a point about the vertical centerline.
func (b Bounds) Mirror(p Point) Point {
	return Point{X: b.MirrorX(p.X), Y: p.Y}
}

// GoalRows returns the rows spanned by each goal mouth, centered vertically.
func (b Bounds) GoalRows() (top, bottom int) {
	c := (b.Top + b.Bottom) / 2
	span := max(1, b.Height()/6)
	return max(b.Top, c-span), min(b.Bottom, c+span)
}
