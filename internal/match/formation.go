package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-matchday/internal/pitch"
)

// Formation lists outfield line sizes from defence to attack.
type Formation struct {
	Name  string
	Lines []int
}

// Formations available from the settings menu.
var Formations = []Formation{
	{Name: "4-4-2", Lines: []int{4, 4, 2}},
	{Name: "4-3-3", Lines: []int{4, 3, 3}},
	{Name: "3-5-2", Lines: []int{3, 5, 2}},
}

// ParseFormation parses a dash-separated line list whose sizes add to ten.
func ParseFormation(name string) (Formation, error) {
	parts := strings.Split(strings.TrimSpace(name), "-")
	f := Formation{Name: name}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return Formation{}, fmt.Errorf("match: bad formation %q", name)
		}
		f.Lines = append(f.Lines, n)
		total += n
	}
	if total != SquadSize-1 {
		return Formation{}, fmt.Errorf("match: formation %q has %d outfielders, need %d", name, total, SquadSize-1)
	}
	return f, nil
}

// Slots returns the kick-off cell of the keeper followed by one cell per
// outfielder, for a side defending the left goal. Lines are spread evenly
// over the own half and players evenly over the pitch height.
func (f Formation) Slots(b pitch.Bounds) []pitch.Point {
	mid := b.MidX()
	slots := []pitch.Point{{X: b.Left, Y: b.Center().Y}}
	span := mid - b.Left
	for li, n := range f.Lines {
		x := b.Left + (li+1)*span/(len(f.Lines)+1)
		for j := 0; j < n; j++ {
			y := b.Top + (j+1)*b.Height()/(n+1)
			slots = append(slots, b.Clamp(pitch.Pt(x, y)))
		}
	}
	return slots
}

// seatFormation places the lineup by formation. attacksRight selects which
// half the side defends.
func seatFormation(ents []*Entity, f Formation, b pitch.Bounds, attacksRight bool, g *pitch.Grid) {
	slots := f.Slots(b)
	for i, e := range ents {
		if i >= len(slots) {
			break
		}
		p := slots[i]
		if !attacksRight {
			p = b.Mirror(p)
		}
		e.Pos = nearestFree(g, p)
		g.Mark(e.Pos)
	}
}

// seatRandom places every entity uniformly over its own half, redrawing
// until the cell is free.
func seatRandom(ents []*Entity, b pitch.Bounds, attacksRight bool, g *pitch.Grid, rng Rand) {
	lo, hi := b.Left, b.MidX()-1
	if !attacksRight {
		lo, hi = b.MidX()+1, b.Right
	}
	hi = max(lo, hi)
	for _, e := range ents {
		p := pitch.Pt(lo+rng.Intn(hi-lo+1), b.Top+rng.Intn(b.Height()))
		for tries := 0; g.Occupied(p) && tries < 64; tries++ {
			p = pitch.Pt(lo+rng.Intn(hi-lo+1), b.Top+rng.Intn(b.Height()))
		}
		e.Pos = nearestFree(g, p)
		g.Mark(e.Pos)
	}
}

// nearestFree returns p when free, otherwise the closest free cell in
// breadth-first order. A full grid returns p.
func nearestFree(g *pitch.Grid, p pitch.Point) pitch.Point {
	b := g.Bounds()
	p = b.Clamp(p)
	if !g.Occupied(p) {
		return p
	}
	seen := map[pitch.Point]bool{p: true}
	queue := []pitch.Point{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range pitch.Neighbours {
			next := cur.Add(d)
			if !b.Contains(next) || seen[next] {
				continue
			}
			if !g.Occupied(next) {
				return next
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return p
}
