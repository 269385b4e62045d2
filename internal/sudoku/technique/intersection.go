package technique

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/pkg/logging"
)

// IntersectionRemoval eliminates candidates via line/box locked-set
// intersections: rows scanned first, then columns, and within a line
// its three boxes in index order, matching the original engine's scan
// order exactly (grounded on Techniques/IntersectionRemoval.cpp).
func IntersectionRemoval(g *board.Grid) bool {
	logging.Log(logging.Trace, "searching for line and box intersections\n")

	for i := 0; i < 9; i++ {
		if intersectionRowBox(g, i) {
			return true
		}
	}
	for i := 0; i < 9; i++ {
		if intersectionColBox(g, i) {
			return true
		}
	}
	return false
}

func intersectionRowBox(g *board.Grid, row int) bool {
	for j := 0; j < 3; j++ {
		box := board.BoxIndex(row, j*3)
		rowCells, boxCells := commonCells(row, box, true)

		rowHouse := g.GetRow(row)
		boxHouse := g.GetBox(box)

		if changes, val, ok := applyIntersection(boxHouse, boxCells, &rowHouse, rowCells); ok {
			out := make([]change, len(changes))
			for k, idx := range changes {
				out[k] = change{row, idx, val}
			}
			logging.Log(logging.Info, "row %d intersection with box %d ==> %s\n", row+1, box+1, formatChanges(out))
			g.SetRow(rowHouse, row)
			return true
		}

		if changes, val, ok := applyIntersection(rowHouse, rowCells, &boxHouse, boxCells); ok {
			out := make([]change, len(changes))
			for k, pos := range changes {
				out[k] = change{row, board.ColForCellInBox(box, pos), val}
			}
			logging.Log(logging.Info, "box %d intersection with row %d ==> %s\n", box+1, row+1, formatChanges(out))
			g.SetBox(boxHouse, box)
			return true
		}
	}
	return false
}

func intersectionColBox(g *board.Grid, col int) bool {
	for j := 0; j < 3; j++ {
		box := board.BoxIndex(j*3, col)
		colCells, boxCells := commonCells(col, box, false)

		colHouse := g.GetCol(col)
		boxHouse := g.GetBox(box)

		if changes, val, ok := applyIntersection(boxHouse, boxCells, &colHouse, colCells); ok {
			out := make([]change, len(changes))
			for k, idx := range changes {
				out[k] = change{idx, col, val}
			}
			logging.Log(logging.Info, "column %d intersection with box %d ==> %s\n", col+1, box+1, formatChanges(out))
			g.SetCol(colHouse, col)
			return true
		}

		if changes, val, ok := applyIntersection(colHouse, colCells, &boxHouse, boxCells); ok {
			out := make([]change, len(changes))
			for k, pos := range changes {
				out[k] = change{board.RowForCellInBox(box, pos), col, val}
			}
			logging.Log(logging.Info, "box %d intersection with column %d ==> %s\n", box+1, col+1, formatChanges(out))
			g.SetBox(boxHouse, box)
			return true
		}
	}
	return false
}

// commonCells returns, for a line (row or column) crossing a box, the
// three in-house positions shared between them: first into the line,
// then into the box.
func commonCells(lineIndex, box int, isRow bool) (lineCells, boxCells [3]int) {
	if isRow {
		for i := 0; i < 3; i++ {
			lineCells[i] = (box%3)*3 + i
			boxCells[i] = (lineIndex%3)*3 + i
		}
	} else {
		for i := 0; i < 3; i++ {
			lineCells[i] = (box/3)*3 + i
			boxCells[i] = lineIndex%3 + i*3
		}
	}
	return
}

// applyIntersection checks whether every source-house candidate of
// some value lies inside sourceCommon; if so it removes that value
// from target outside targetCommon, returning the in-target indices
// changed.
func applyIntersection(source board.House, sourceCommon [3]int, target *board.House, targetCommon [3]int) ([]int, int, bool) {
	for val := 1; val <= 9; val++ {
		found := 0
		ok := true
		for i := 0; i < 9; i++ {
			if !source[i].IsCandidate(val) {
				continue
			}
			if !contains(sourceCommon[:], i) {
				ok = false
				break
			}
			found++
		}
		if !ok || found == 0 {
			continue
		}

		var idx []int
		for i := 0; i < 9; i++ {
			if contains(targetCommon[:], i) {
				continue
			}
			c := (*target)[i]
			if c.ExcludeCandidate(val) {
				(*target)[i] = c
				idx = append(idx, i)
			}
		}
		if len(idx) > 0 {
			return idx, val, true
		}
	}
	return nil, 0, false
}
