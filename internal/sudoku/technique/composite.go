package technique

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/solve"
)

// SimpleSudokuTechniqueSet tries a fixed, increasing-difficulty
// sequence of techniques and applies the first one that finds
// anything, matching the reference "Simple Sudoku"-style solver order.
func SimpleSudokuTechniqueSet(g *board.Grid) bool {
	sequence := []solve.Technique{
		solve.NakedSingle,
		solve.HiddenSingle,
		NakedPair,
		IntersectionRemoval,
		NakedTriple,
		NakedQuad,
		HiddenPair,
		BasicFish(2),
		BasicFish(3),
		SimpleColor,
		MultiColor,
		HiddenTriple,
		XyWing,
		HiddenQuad,
		BasicFish(4),
	}
	for _, t := range sequence {
		if t(g) {
			return true
		}
	}
	return false
}
