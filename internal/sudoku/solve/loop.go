package solve

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/pkg/logging"
)

// Solve applies techniques in order, repeating from the top after every
// success, until either the grid is futile (solved or stuck) or no
// technique fires. In the latter case it falls back to bifurcation when
// useBifurcation is set, otherwise it gives up.
//
// Returns 0 (impossible), 1 (exactly one completion, reflected in g),
// or >=2 (multiple completions; g is left in the state of the most
// recently explored branch). quietBifurcation, if set, temporarily
// raises the log gate to Fatal for the duration of the bifurcation
// recursion.
func Solve(g *board.Grid, techniques []Technique, useBifurcation, quietBifurcation bool) int {
	for !g.IsFutile() {
		if applyFirst(g, techniques) {
			continue
		}
		if !useBifurcation {
			return 0
		}

		count := 0
		logging.QuietlyBifurcate(quietBifurcation, func() {
			count = Bifurcate(g, quietBifurcation)
		})
		return count
	}

	if g.IsSolved() {
		return 1
	}
	return 0
}

func applyFirst(g *board.Grid, techniques []Technique) bool {
	for _, t := range techniques {
		if t(g) {
			return true
		}
	}
	return false
}
