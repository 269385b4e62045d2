package technique

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/combin"
	"github.com/student/sudoku-engine/pkg/logging"
)

// NakedPair, NakedTriple, and NakedQuad are NakedSet specialised to
// order 2, 3, and 4.
func NakedPair(g *board.Grid) bool   { return nakedSetOfOrder(g, 2) }
func NakedTriple(g *board.Grid) bool { return nakedSetOfOrder(g, 3) }
func NakedQuad(g *board.Grid) bool   { return nakedSetOfOrder(g, 4) }

// HiddenPair, HiddenTriple, and HiddenQuad are HiddenSet specialised to
// order 2, 3, and 4.
func HiddenPair(g *board.Grid) bool   { return hiddenSetOfOrder(g, 2) }
func HiddenTriple(g *board.Grid) bool { return hiddenSetOfOrder(g, 3) }
func HiddenQuad(g *board.Grid) bool   { return hiddenSetOfOrder(g, 4) }

func nakedSetOfOrder(g *board.Grid, order int) bool {
	logging.Log(logging.Trace, "searching for naked sets of order %d\n", order)
	for i := 0; i < 9; i++ {
		if nakedSetInLine(g.GetRow(i), order, func(h board.House) { g.SetRow(h, i) }, func(idx int) (int, int) { return i, idx }) {
			return true
		}
		if nakedSetInLine(g.GetCol(i), order, func(h board.House) { g.SetCol(h, i) }, func(idx int) (int, int) { return idx, i }) {
			return true
		}
		if nakedSetInLine(g.GetBox(i), order, func(h board.House) { g.SetBox(h, i) }, func(idx int) (int, int) { return board.RowForCellInBox(i, idx), board.ColForCellInBox(i, idx) }) {
			return true
		}
	}
	return false
}

func hiddenSetOfOrder(g *board.Grid, order int) bool {
	logging.Log(logging.Trace, "searching for hidden sets of order %d\n", order)
	for i := 0; i < 9; i++ {
		if hiddenSetInLine(g.GetRow(i), order, func(h board.House) { g.SetRow(h, i) }, func(idx int) (int, int) { return i, idx }) {
			return true
		}
		if hiddenSetInLine(g.GetCol(i), order, func(h board.House) { g.SetCol(h, i) }, func(idx int) (int, int) { return idx, i }) {
			return true
		}
		if hiddenSetInLine(g.GetBox(i), order, func(h board.House) { g.SetBox(h, i) }, func(idx int) (int, int) { return board.RowForCellInBox(i, idx), board.ColForCellInBox(i, idx) }) {
			return true
		}
	}
	return false
}

func maxSetSizeInHouse(h board.House) int {
	open := 0
	for _, c := range h {
		if !c.IsSolved() {
			open++
		}
	}
	return open / 2
}

// nakedSetInLine looks, within one house, for a combination of `order`
// unsolved cells whose candidate union has size exactly `order`, and if
// found strips those values from the house's other cells.
func nakedSetInLine(house board.House, order int, writeBack func(board.House), coord func(int) (int, int)) bool {
	if maxSetSizeInHouse(house) < order {
		return false
	}

	var candidates []int
	for i := 0; i < 9; i++ {
		if !house[i].IsSolved() && house[i].NumCandidates() <= order {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < order {
		return false
	}

	found := combin.Each(candidates, order, func(idxCombo []int) bool {
		union := unionOfCandidates(house, idxCombo)
		if union.Count() != order {
			return false
		}
		values := union.ToSlice()

		var changes []change
		for i := 0; i < 9; i++ {
			if contains(idxCombo, i) {
				continue
			}
			for _, v := range values {
				c := house[i]
				if c.ExcludeCandidate(v) {
					house[i] = c
					r, col := coord(i)
					changes = append(changes, change{r, col, v})
				}
			}
		}
		if len(changes) == 0 {
			return false
		}

		logNakedSet(idxCombo, values, changes, coord)
		return true
	})

	if found {
		writeBack(house)
	}
	return found
}

func unionOfCandidates(house board.House, idx []int) board.Candidates {
	var set board.Candidates
	for _, i := range idx {
		set = set.Union(house[i].Candidates())
	}
	return set
}

func hiddenSetInLine(house board.House, order int, writeBack func(board.House), coord func(int) (int, int)) bool {
	if maxSetSizeInHouse(house) < order {
		return false
	}

	var values []int
	for v := 1; v <= 9; v++ {
		n := countOpenForValue(house, v)
		if n > 0 && n <= order {
			values = append(values, v)
		}
	}
	if len(values) < order {
		return false
	}

	found := combin.Each(values, order, func(valCombo []int) bool {
		idx := positionsForValues(house, valCombo)
		if len(idx) != order {
			return false
		}

		var changes []change
		for _, v := range allValues() {
			if contains(valCombo, v) {
				continue
			}
			for _, i := range idx {
				c := house[i]
				if c.ExcludeCandidate(v) {
					house[i] = c
					r, col := coord(i)
					changes = append(changes, change{r, col, v})
				}
			}
		}
		if len(changes) == 0 {
			return false
		}

		logHiddenSet(idx, valCombo, changes, coord)
		return true
	})

	if found {
		writeBack(house)
	}
	return found
}

func countOpenForValue(house board.House, v int) int {
	n := 0
	for _, c := range house {
		if !c.IsSolved() && c.IsCandidate(v) {
			n++
		}
	}
	return n
}

func positionsForValues(house board.House, values []int) []int {
	var idx []int
	for i := 0; i < 9; i++ {
		for _, v := range values {
			if house[i].IsCandidate(v) && !contains(idx, i) {
				idx = append(idx, i)
			}
		}
	}
	return idx
}

func allValues() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
}

func orderName(order int) string {
	switch order {
	case 1:
		return "single"
	case 2:
		return "pair"
	case 3:
		return "triplet"
	case 4:
		return "quad"
	default:
		return "unknown"
	}
}

func logNakedSet(idx, values []int, changes []change, coord func(int) (int, int)) {
	logLockedSet("naked", idx, values, changes, coord)
}

func logHiddenSet(idx, values []int, changes []change, coord func(int) (int, int)) {
	logLockedSet("hidden", idx, values, changes, coord)
}

func logLockedSet(kind string, idx, values []int, changes []change, coord func(int) (int, int)) {
	vals := ""
	for _, v := range values {
		vals += itoa(v)
	}

	cellList := lockedSetCellList(idx, coord)

	logging.Log(logging.Info, "%s %s %s=%s ==> %s\n", kind, orderName(len(values)), cellList, vals, formatChanges(changes))
}

// lockedSetCellList renders a set of in-house positions the way the
// original engine does: all-same-row collapses to "r{row}c{cols}", all
// -same-column to "r{rows}c{col}", and otherwise (a box-bound set
// spanning several rows) groups by row and joins the groups with "&".
func lockedSetCellList(idx []int, coord func(int) (int, int)) string {
	rows := make([]int, len(idx))
	cols := make([]int, len(idx))
	for i, p := range idx {
		rows[i], cols[i] = coord(p)
	}

	sameRow := true
	for _, r := range rows {
		if r != rows[0] {
			sameRow = false
			break
		}
	}
	if sameRow {
		s := "r" + itoa(rows[0]+1) + "c"
		for _, c := range cols {
			s += itoa(c + 1)
		}
		return s
	}

	sameCol := true
	for _, c := range cols {
		if c != cols[0] {
			sameCol = false
			break
		}
	}
	if sameCol {
		s := "r"
		for _, r := range rows {
			s += itoa(r + 1)
		}
		return s + "c" + itoa(cols[0]+1)
	}

	var groups []string
	var groupRows []int
	for i := range idx {
		r, c := rows[i], cols[i]
		gi := -1
		for k, gr := range groupRows {
			if gr == r {
				gi = k
				break
			}
		}
		if gi == -1 {
			groupRows = append(groupRows, r)
			groups = append(groups, "r"+itoa(r+1)+"c"+itoa(c+1))
		} else {
			groups[gi] += itoa(c + 1)
		}
	}

	s := groups[0]
	for _, g := range groups[1:] {
		s += "&" + g
	}
	return s
}
