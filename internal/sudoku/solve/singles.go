package solve

import "github.com/student/sudoku-engine/internal/sudoku/board"

// NakedSingle solves, in row-major order, the first unsolved cell with
// exactly one remaining candidate, cross-hatches it, and restarts the
// scan from the top — since a cross-hatch can turn an earlier cell into
// a naked single too. It keeps going until a full pass finds nothing,
// returning whether any cell was solved at all.
func NakedSingle(g *board.Grid) bool {
	any := false
	for {
		if !nakedSingleOnce(g) {
			return any
		}
		any = true
	}
}

func nakedSingleOnce(g *board.Grid) bool {
	for _, p := range board.AllCellPositions() {
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() {
			continue
		}
		if v, ok := c.Candidates().Only(); ok {
			c.SetValue(v)
			g.SetCell(p.Row, p.Col, c)
			g.CrossHatch(p.Row, p.Col)
			return true
		}
	}
	return false
}

// HiddenSingle solves, per house index 0..8 (row then column then box
// at that index), the first value with exactly one open cell in the
// house, then restarts the scan the same way NakedSingle does.
func HiddenSingle(g *board.Grid) bool {
	any := false
	for {
		if !hiddenSingleOnce(g) {
			return any
		}
		any = true
	}
}

func hiddenSingleOnce(g *board.Grid) bool {
	for i := 0; i < 9; i++ {
		rows := board.RowPositions(i)
		if hiddenSingleInHouse(g, rows[:]) {
			return true
		}
		cols := board.ColPositions(i)
		if hiddenSingleInHouse(g, cols[:]) {
			return true
		}
		boxes := board.BoxPositions(i)
		if hiddenSingleInHouse(g, boxes[:]) {
			return true
		}
	}
	return false
}

func hiddenSingleInHouse(g *board.Grid, cells []board.Position) bool {
	for val := 1; val <= 9; val++ {
		count := 0
		var only board.Position
		for _, p := range cells {
			c := g.GetCell(p.Row, p.Col)
			if !c.IsSolved() && c.IsCandidate(val) {
				count++
				only = p
			}
		}
		if count == 1 {
			c := g.GetCell(only.Row, only.Col)
			c.SetValue(val)
			g.SetCell(only.Row, only.Col, c)
			g.CrossHatch(only.Row, only.Col)
			return true
		}
	}
	return false
}
