package pitch

// Neighbours is the fixed expansion order: up, down, left, right. Keeping it
// fixed makes equal-length paths resolve the same way on every run.
var Neighbours = [4]Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Pathfinder finds a route between two cells on an occupancy grid.
//
// The returned path excludes start and ends at the goal. It is empty when
// the goal is unreachable or start already equals the goal. Callers only
// consume the first step each tick.
type Pathfinder interface {
	Find(g *Grid, start, goal Point) []Point
}

// BFS is a breadth-first Pathfinder over 4-connected free cells. The start
// cell may itself be occupied (it usually holds the mover); every other cell
// on the path, including the goal, must be free.
type BFS struct{}

// Find implements Pathfinder.
func (BFS) Find(g *Grid, start, goal Point) []Point {
	b := g.Bounds()
	goal = b.Clamp(goal)
	if start == goal || !b.Contains(start) || g.Occupied(goal) {
		return nil
	}

	w := b.Width()
	idx := func(p Point) int { return (p.Y-b.Top)*w + (p.X - b.Left) }

	prev := make([]int, w*b.Height())
	for i := range prev {
		prev[i] = -1
	}
	startIdx := idx(start)
	prev[startIdx] = startIdx

	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return unwind(prev, startIdx, idx(goal), b)
		}
		for _, d := range Neighbours {
			next := cur.Add(d)
			if !b.Contains(next) || g.Occupied(next) {
				continue
			}
			ni := idx(next)
			if prev[ni] != -1 {
				continue
			}
			prev[ni] = idx(cur)
			queue = append(queue, next)
		}
	}
	return nil
}

func unwind(prev []int, startIdx, goalIdx int, b Bounds) []Point {
	w := b.Width()
	var rev []Point
	for i := goalIdx; i != startIdx; i = prev[i] {
		rev = append(rev, Point{X: b.Left + i%w, Y: b.Top + i/w})
	}
	path := make([]Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// NextStep returns the first step of the path from start toward goal, or
// false when no step exists.
func NextStep(pf Pathfinder, g *Grid, start, goal Point) (Point, bool) {
	path := pf.Find(g, start, goal)
	if len(path) == 0 {
		return start, false
	}
	return path[0], true
}
