package pitch

// Grid marks which cells of the pitch are taken by an entity. It is rebuilt
// from entity positions at the start of every tick, so it is only ever as
// stale as the moves made during that tick.
type Grid struct {
	bounds Bounds
	cells  []bool
}

// NewGrid creates an empty occupancy grid covering b.
func NewGrid(b Bounds) *Grid {
	w, h := max(0, b.Width()), max(0, b.Height())
	return &Grid{bounds: b, cells: make([]bool, w*h)}
}

// Bounds returns the rectangle covered by the grid.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// InBounds reports whether p is a valid cell.
func (g *Grid) InBounds(p Point) bool {
	return g.bounds.Contains(p)
}

func (g *Grid) index(p Point) int {
	return (p.Y-g.bounds.Top)*g.bounds.Width() + (p.X - g.bounds.Left)
}

// Mark flags p as occupied. Out-of-bounds points are ignored.
func (g *Grid) Mark(p Point) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = true
	}
}

// Unmark clears p. Out-of-bounds points are ignored.
func (g *Grid) Unmark(p Point) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = false
	}
}

// Occupied reports whether p is taken. Out-of-bounds points report false.
func (g *Grid) Occupied(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[g.index(p)]
}

// Reset clears every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Rebuild clears the grid and marks every given position.
func (g *Grid) Rebuild(positions []Point) {
	g.Reset()
	for _, p := range positions {
		g.Mark(p)
	}
}
