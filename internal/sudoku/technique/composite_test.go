package technique

import (
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

func TestSimpleSudokuTechniqueSet_ReturnsFalseOnAFreshGrid(t *testing.T) {
	g := board.NewGrid()
	if SimpleSudokuTechniqueSet(g) {
		t.Error("a grid with every candidate open has nothing to apply")
	}
}

func TestSimpleSudokuTechniqueSet_SolvesAnObviousNakedSingle(t *testing.T) {
	g := board.NewGrid()
	for col := 1; col < 9; col++ {
		c := g.GetCell(0, col)
		c.SetValue(col)
		g.SetCell(0, col, c)
		g.CrossHatch(0, col)
	}

	if !SimpleSudokuTechniqueSet(g) {
		t.Fatal("expected the leading naked single to fire")
	}
	if got := g.GetCell(0, 0).Value(); got != 9 {
		t.Errorf("r1c1 = %d, want 9", got)
	}
}
