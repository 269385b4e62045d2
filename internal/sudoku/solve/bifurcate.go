package solve

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/pkg/constants"
	"github.com/student/sudoku-engine/pkg/logging"
)

// reducedTechniques is the technique set used inside bifurcation's
// recursion (§4.4). It is deliberately small: correctness comes from
// bifurcation itself being exhaustive, not from the technique list
// (Design Note 9); NakedSingle/HiddenSingle just keep each branch from
// wastefully re-splitting on cells a cheap propagation would resolve.
var reducedTechniques = []Technique{NakedSingle, HiddenSingle}

// Bifurcate picks the row-major-first cell at the grid's minimum
// candidate count and case-splits on its remaining values, summing the
// completions found down each branch. It stops as soon as the running
// total reaches constants.SolutionCountLimit, since beyond that point
// the puzzle is known non-unique and further branches are pure cost.
func Bifurcate(g *board.Grid, quietBifurcation bool) int {
	row, col, found := selectBifurcationCell(g)
	if !found {
		return 0
	}

	logging.Log(logging.Debug, "bifurcating on r%dc%d\n", row+1, col+1)

	cell := g.GetCell(row, col)
	total := 0
	var solvedGrid *board.Grid
	solvedCount := 0
	var lastExplored *board.Grid

	for v := 1; v <= 9; v++ {
		if !cell.IsCandidate(v) {
			continue
		}

		branch := g.Clone()
		c := branch.GetCell(row, col)
		c.SetValue(v)
		branch.SetCell(row, col, c)
		branch.CrossHatch(row, col)

		result := Solve(branch, reducedTechniques, true, quietBifurcation)
		lastExplored = branch
		total += result
		if result == 1 {
			solvedGrid = branch
			solvedCount++
		}

		if total >= constants.SolutionCountLimit {
			break
		}
	}

	switch {
	case total == 1 && solvedCount == 1:
		*g = *solvedGrid
	case total >= 1 && lastExplored != nil:
		*g = *lastExplored
	}

	return total
}

// selectBifurcationCell returns the first unsolved cell in row-major
// order whose candidate count equals the grid's global minimum.
func selectBifurcationCell(g *board.Grid) (row, col int, ok bool) {
	for n := 1; n <= 9; n++ {
		for _, p := range board.AllCellPositions() {
			c := g.GetCell(p.Row, p.Col)
			if !c.IsSolved() && c.NumCandidates() == n {
				return p.Row, p.Col, true
			}
		}
	}
	return 0, 0, false
}

// IsUnique reports whether g has exactly one completion, memoising the
// result on the grid. It always bifurcates fully regardless of which
// techniques a caller plans to use elsewhere — a subset of techniques
// would only establish an upper bound on solution count (Design Note 9).
func IsUnique(g *board.Grid) bool {
	if cached := g.UniquenessCache(); cached != board.UniquenessUnknown {
		return cached == board.UniquenessUnique
	}

	clone := g.Clone()
	count := Solve(clone, reducedTechniques, true, true)

	if count == 1 {
		g.SetUniquenessCache(board.UniquenessUnique)
		return true
	}
	g.SetUniquenessCache(board.UniquenessNonUnique)
	return false
}
