package technique

import (
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

// urPuzzleGivens is a genuinely uniquely-solvable puzzle (55 givens) whose
// cross-hatched candidates leave r4c7/r8c7/r8c8 at {7,9} and r4c8 at
// {4,7,9} — a type-1 unique rectangle spanning box6 (r4c7,r4c8) and box9
// (r8c7,r8c8). Since the puzzle is known unique, r4c8 can't settle to 7 or
// 9 (that would let rows 4/8 swap the pair and produce a second solution),
// so it must resolve to 4. UniqueRectangle requires this precondition —
// solve.IsUnique — to hold before it can fire at all.
var urPuzzleGivens = [81]int{
	1, 7, 0, 2, 9, 3, 6, 8, 0,
	0, 0, 6, 1, 8, 5, 4, 3, 0,
	8, 5, 0, 7, 0, 6, 1, 2, 9,
	5, 0, 1, 0, 2, 0, 0, 0, 0,
	7, 8, 2, 4, 0, 0, 5, 0, 6,
	3, 0, 9, 0, 0, 7, 2, 1, 0,
	0, 1, 7, 3, 5, 4, 8, 6, 2,
	6, 3, 0, 0, 1, 2, 0, 0, 4,
	4, 2, 8, 6, 7, 0, 3, 5, 1,
}

func gridFromUrGivens() *board.Grid {
	g := board.NewGrid()
	for i, v := range urPuzzleGivens {
		if v == 0 {
			continue
		}
		row, col := i/9, i%9
		c := g.GetCell(row, col)
		c.SetValue(v)
		g.SetCell(row, col, c)
	}
	for i, v := range urPuzzleGivens {
		if v == 0 {
			continue
		}
		g.CrossHatch(i/9, i%9)
	}
	return g
}

func TestUniqueRectangle_Type1SolvesTheOddCorner(t *testing.T) {
	g := gridFromUrGivens()

	if !UniqueRectangle(g) {
		t.Fatal("expected a type-1 unique rectangle to fire")
	}
	if got := g.GetCell(3, 7).Value(); got != 4 {
		t.Errorf("r4c8 = %d, want 4", got)
	}
}

func TestUniqueRectangle_SkipsAPuzzleNotKnownToBeUnique(t *testing.T) {
	g := board.NewGrid()
	for _, rc := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		c := g.GetCell(rc[0], rc[1])
		c.SetCandidates(board.NewCandidates(1, 2))
		g.SetCell(rc[0], rc[1], c)
	}
	odd := g.GetCell(3, 3)
	odd.SetCandidates(board.NewCandidates(1, 2, 3))
	g.SetCell(3, 3, odd)

	if UniqueRectangle(g) {
		t.Error("a grid whose only constraint is the rectangle itself is not known unique and must be skipped")
	}
}

func TestUniqueRectangle_ReturnsFalseOnAFreshGrid(t *testing.T) {
	g := board.NewGrid()
	if UniqueRectangle(g) {
		t.Error("a grid with every candidate open has no unique rectangle")
	}
}
