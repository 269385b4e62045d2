package technique

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/solve"
	"github.com/student/sudoku-engine/pkg/logging"
)

// UniqueRectangle looks for four cells at the corners of a rectangle
// spanning exactly two rows, two columns, and two boxes, three of which
// already hold the same candidate pair {x,y} (a "deadly pattern": if
// the fourth also settled to x or y, the two rows could swap x and y
// between the pair-only corners, giving a second solution). Type 1
// solves the fourth corner to whichever value isn't x or y, if it has
// one more candidate; Type 2/5 extends to a fourth corner carrying
// {x,y,z} plus one more same-row/col/box cell with z, eliminating z
// there.
func UniqueRectangle(g *board.Grid) bool {
	if !solve.IsUnique(g) {
		logging.Log(logging.Warning, "unique rectangle skipped: puzzle is not known to be unique\n")
		return false
	}

	logging.Log(logging.Trace, "searching for unique rectangles\n")

	for r1 := 0; r1 < 9; r1++ {
		for r2 := r1 + 1; r2 < 9; r2++ {
			for c1 := 0; c1 < 9; c1++ {
				for c2 := c1 + 1; c2 < 9; c2++ {
					if board.BoxIndex(r1, c1) == board.BoxIndex(r2, c1) {
						continue // rows must lie in different boxes for this to be a rectangle, not a box pair
					}
					if tryUniqueRectangle(g, r1, r2, c1, c2) {
						return true
					}
				}
			}
		}
	}
	return false
}

func tryUniqueRectangle(g *board.Grid, r1, r2, c1, c2 int) bool {
	corners := [4]board.Position{{Row: r1, Col: c1}, {Row: r1, Col: c2}, {Row: r2, Col: c1}, {Row: r2, Col: c2}}
	cells := [4]board.Cell{}
	for i, p := range corners {
		cells[i] = g.GetCell(p.Row, p.Col)
		if cells[i].IsSolved() {
			return false
		}
	}

	// Exactly two distinct boxes among the four corners, each box
	// holding exactly two of the corners.
	boxes := [4]int{}
	for i, p := range corners {
		boxes[i] = board.BoxIndex(p.Row, p.Col)
	}
	sideBySide := boxes[0] == boxes[1] && boxes[2] == boxes[3] && boxes[0] != boxes[2]
	stacked := boxes[0] == boxes[2] && boxes[1] == boxes[3] && boxes[0] != boxes[1]
	if !sideBySide && !stacked {
		return false
	}

	pairIdx, oddIdx, ok := findUniqueRectanglePattern(cells)
	if !ok {
		return false
	}
	x, y := pairIdx[0], pairIdx[1]

	odd := cells[oddIdx]
	if odd.NumCandidates() == 2 {
		return false // all four already bivalue: no deadly pattern to resolve, would be ambiguous without bifurcation
	}
	if !odd.IsCandidate(x) || !odd.IsCandidate(y) {
		return false
	}

	if tryUniqueRectangleType1(g, corners, oddIdx, x, y) {
		return true
	}
	return tryUniqueRectangleType2(g, corners, oddIdx, x, y)
}

// findUniqueRectanglePattern reports whether three of the four corners
// share an identical bivalue candidate pair, returning that pair and
// the index of the remaining ("odd") corner.
func findUniqueRectanglePattern(cells [4]board.Cell) (pair [2]int, oddIdx int, ok bool) {
	for odd := 0; odd < 4; odd++ {
		var ref [2]int
		refSet := false
		match := true
		for i := 0; i < 4; i++ {
			if i == odd {
				continue
			}
			if cells[i].NumCandidates() != 2 {
				match = false
				break
			}
			vals := cells[i].Candidates().ToSlice()
			v := [2]int{vals[0], vals[1]}
			if !refSet {
				ref = v
				refSet = true
			} else if ref != v {
				match = false
				break
			}
		}
		if match && refSet {
			if !cells[odd].IsCandidate(ref[0]) && !cells[odd].IsCandidate(ref[1]) {
				continue
			}
			return ref, odd, true
		}
	}
	return [2]int{}, 0, false
}

// tryUniqueRectangleType1 solves the odd corner to its third value when
// it carries exactly one candidate beyond the pair.
func tryUniqueRectangleType1(g *board.Grid, corners [4]board.Position, oddIdx, x, y int) bool {
	p := corners[oddIdx]
	c := g.GetCell(p.Row, p.Col)
	if c.NumCandidates() != 3 {
		return false
	}
	var z int
	for _, v := range c.Candidates().ToSlice() {
		if v != x && v != y {
			z = v
		}
	}
	if z == 0 {
		return false
	}

	for val := 1; val <= 9; val++ {
		if val != z {
			c.ExcludeCandidate(val)
		}
	}
	c.SetValue(z)
	g.SetCell(p.Row, p.Col, c)
	g.CrossHatch(p.Row, p.Col)

	logging.Log(logging.Info, "type-1 unique rectangle r%d%dc%d%d=%d%d ==> %s\n",
		corners[0].Row+1, corners[3].Row+1, corners[0].Col+1, corners[3].Col+1, x, y,
		change{p.Row, p.Col, z}.String())
	return true
}

// tryUniqueRectangleType2 handles the odd corner carrying {x,y,z}: if a
// peer of the odd corner (sharing its row, column, or box) also holds z
// as a candidate, z cannot be the deciding value there either, so it is
// eliminated.
func tryUniqueRectangleType2(g *board.Grid, corners [4]board.Position, oddIdx, x, y int) bool {
	p := corners[oddIdx]
	c := g.GetCell(p.Row, p.Col)
	if c.NumCandidates() != 3 {
		return false
	}
	var z int
	for _, v := range c.Candidates().ToSlice() {
		if v != x && v != y {
			z = v
		}
	}
	if z == 0 {
		return false
	}

	var changes []change
	for _, b := range board.Buddies(p.Row, p.Col) {
		if isRectangleCorner(b, corners) {
			continue
		}
		bc := g.GetCell(b.Row, b.Col)
		if bc.IsSolved() || !bc.IsCandidate(z) {
			continue
		}
		if bc.ExcludeCandidate(z) {
			g.SetCell(b.Row, b.Col, bc)
			changes = append(changes, change{b.Row, b.Col, z})
		}
	}
	if len(changes) == 0 {
		return false
	}

	logging.Log(logging.Info, "type-2 unique rectangle r%d%dc%d%d=%d%d,%d ==> %s\n",
		corners[0].Row+1, corners[3].Row+1, corners[0].Col+1, corners[3].Col+1, x, y, z,
		formatChanges(changes))
	return true
}

func isRectangleCorner(p board.Position, corners [4]board.Position) bool {
	for _, c := range corners {
		if c == p {
			return true
		}
	}
	return false
}
