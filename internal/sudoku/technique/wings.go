package technique

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/pkg/logging"
)

// XyWing looks for a bivalue pivot cell {x,y} with two bivalue pincers,
// each a buddy of the pivot, holding {x,z} and {y,z} respectively, and
// eliminates z from every cell that buddies both pincers.
func XyWing(g *board.Grid) bool {
	logging.Log(logging.Trace, "searching for xy-wings\n")

	for _, pivot := range board.AllCellPositions() {
		pc := g.GetCell(pivot.Row, pivot.Col)
		if pc.IsSolved() || pc.NumCandidates() != 2 {
			continue
		}
		xy := pc.Candidates().ToSlice()
		x, y := xy[0], xy[1]

		pincers := bivalueBuddiesSharingOneOf(g, pivot, x, y)
		for i := 0; i < len(pincers); i++ {
			for j := i + 1; j < len(pincers); j++ {
				p1, p2 := pincers[i], pincers[j]
				if tryXyWing(g, pivot, x, y, p1, p2) {
					return true
				}
			}
		}
	}
	return false
}

// bivalueBuddiesSharingOneOf returns every bivalue buddy of pivot whose
// two candidates are {x, z} or {y, z} for some third value z.
func bivalueBuddiesSharingOneOf(g *board.Grid, pivot board.Position, x, y int) []board.Position {
	var out []board.Position
	for _, b := range board.Buddies(pivot.Row, pivot.Col) {
		c := g.GetCell(b.Row, b.Col)
		if c.IsSolved() || c.NumCandidates() != 2 {
			continue
		}
		if (c.IsCandidate(x) || c.IsCandidate(y)) && !(c.IsCandidate(x) && c.IsCandidate(y)) {
			out = append(out, b)
		}
	}
	return out
}

func tryXyWing(g *board.Grid, pivot board.Position, x, y int, p1, p2 board.Position) bool {
	c1 := g.GetCell(p1.Row, p1.Col)
	c2 := g.GetCell(p2.Row, p2.Col)

	var z int
	switch {
	case c1.IsCandidate(x) && c2.IsCandidate(y):
		z = thirdValue(c1.Candidates().ToSlice(), x)
	case c1.IsCandidate(y) && c2.IsCandidate(x):
		z = thirdValue(c1.Candidates().ToSlice(), y)
	default:
		return false
	}
	if !c2.IsCandidate(z) || z == 0 {
		return false
	}
	if p1 == p2 {
		return false
	}

	var changes []change
	for _, p := range board.AllCellPositions() {
		if p == pivot || p == p1 || p == p2 {
			continue
		}
		if !board.IsBuddy(p.Row, p.Col, p1.Row, p1.Col) || !board.IsBuddy(p.Row, p.Col, p2.Row, p2.Col) {
			continue
		}
		c := g.GetCell(p.Row, p.Col)
		if c.ExcludeCandidate(z) {
			g.SetCell(p.Row, p.Col, c)
			changes = append(changes, change{p.Row, p.Col, z})
		}
	}
	if len(changes) == 0 {
		return false
	}

	logXyWing(pivot, x, y, p1, c1, p2, c2, z, changes)
	return true
}

// thirdValue returns the candidate in pair that is not exclude, or 0 if
// pair does not have exactly the expected shape.
func thirdValue(pair []int, exclude int) int {
	for _, v := range pair {
		if v != exclude {
			return v
		}
	}
	return 0
}

func logXyWing(pivot board.Position, x, y int, p1 board.Position, c1 board.Cell, p2 board.Position, c2 board.Cell, z int, changes []change) {
	xForP1, yForP1 := x, y
	if !c1.IsCandidate(x) {
		xForP1, yForP1 = y, x
	}
	xForP2, yForP2 := y, x
	if !c2.IsCandidate(y) {
		xForP2, yForP2 = x, y
	}
	_ = yForP1
	_ = xForP2

	logging.Log(logging.Info, "xy-wing (%d=%d)r%dc%d-(%d=%d)r%dc%d-(%d=%d)r%dc%d ==> %s\n",
		x, y, pivot.Row+1, pivot.Col+1,
		xForP1, z, p1.Row+1, p1.Col+1,
		yForP2, z, p2.Row+1, p2.Col+1,
		formatChanges(changes))
}

// XyzWing looks for a trivalue pivot {x,y,z} with two bivalue pincers
// {x,z} and {y,z}, each a buddy of the pivot, and eliminates z from
// every cell that buddies the pivot and both pincers.
func XyzWing(g *board.Grid) bool {
	logging.Log(logging.Trace, "searching for xyz-wings\n")

	for _, pivot := range board.AllCellPositions() {
		pc := g.GetCell(pivot.Row, pivot.Col)
		if pc.IsSolved() || pc.NumCandidates() != 3 {
			continue
		}
		triple := pc.Candidates().ToSlice()

		var pincers []board.Position
		for _, b := range board.Buddies(pivot.Row, pivot.Col) {
			c := g.GetCell(b.Row, b.Col)
			if c.IsSolved() || c.NumCandidates() != 2 {
				continue
			}
			if subsetOf(c.Candidates().ToSlice(), triple) {
				pincers = append(pincers, b)
			}
		}

		for i := 0; i < len(pincers); i++ {
			for j := i + 1; j < len(pincers); j++ {
				if tryXyzWing(g, pivot, pc, pincers[i], pincers[j]) {
					return true
				}
			}
		}
	}
	return false
}

func subsetOf(small, big []int) bool {
	for _, v := range small {
		if !contains(big, v) {
			return false
		}
	}
	return true
}

func tryXyzWing(g *board.Grid, pivot board.Position, pc board.Cell, p1, p2 board.Position) bool {
	c1 := g.GetCell(p1.Row, p1.Col)
	c2 := g.GetCell(p2.Row, p2.Col)
	if c1.Candidates() == c2.Candidates() {
		return false
	}

	var z int
	for _, v := range c1.Candidates().ToSlice() {
		if c2.IsCandidate(v) {
			z = v
			break
		}
	}
	if z == 0 || !pc.IsCandidate(z) {
		return false
	}

	var changes []change
	for _, p := range board.AllCellPositions() {
		if p == pivot || p == p1 || p == p2 {
			continue
		}
		if !board.IsBuddy(p.Row, p.Col, pivot.Row, pivot.Col) ||
			!board.IsBuddy(p.Row, p.Col, p1.Row, p1.Col) ||
			!board.IsBuddy(p.Row, p.Col, p2.Row, p2.Col) {
			continue
		}
		c := g.GetCell(p.Row, p.Col)
		if c.ExcludeCandidate(z) {
			g.SetCell(p.Row, p.Col, c)
			changes = append(changes, change{p.Row, p.Col, z})
		}
	}
	if len(changes) == 0 {
		return false
	}

	logXyzWing(p1, c1, pivot, pc, p2, c2, changes)
	return true
}

func logXyzWing(p1 board.Position, c1 board.Cell, pivot board.Position, pc board.Cell, p2 board.Position, c2 board.Cell, changes []change) {
	logging.Log(logging.Info, "xyz-wing r%dc%d=%s, r%dc%d=%s, r%dc%d=%s ==> %s\n",
		p1.Row+1, p1.Col+1, candidateDigits(c1),
		pivot.Row+1, pivot.Col+1, candidateDigits(pc),
		p2.Row+1, p2.Col+1, candidateDigits(c2),
		formatChanges(changes))
}

func candidateDigits(c board.Cell) string {
	s := ""
	for _, v := range c.Candidates().ToSlice() {
		s += itoa(v)
	}
	return s
}
