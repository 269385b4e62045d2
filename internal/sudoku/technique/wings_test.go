package technique

import (
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

func TestXyWing_EliminatesFromACellSeeingBothPincers(t *testing.T) {
	g := board.NewGrid()
	pivot := g.GetCell(0, 0)
	pivot.SetCandidates(board.NewCandidates(1, 2))
	g.SetCell(0, 0, pivot)

	p1 := g.GetCell(0, 5)
	p1.SetCandidates(board.NewCandidates(1, 3))
	g.SetCell(0, 5, p1)

	p2 := g.GetCell(5, 0)
	p2.SetCandidates(board.NewCandidates(2, 3))
	g.SetCell(5, 0, p2)

	if !XyWing(g) {
		t.Fatal("expected an xy-wing to fire")
	}
	if g.GetCell(5, 5).IsCandidate(3) {
		t.Error("expected candidate 3 cleared from r6c6, which buddies both pincers")
	}
}

func TestXyWing_ReturnsFalseOnAFreshGrid(t *testing.T) {
	g := board.NewGrid()
	if XyWing(g) {
		t.Error("a grid with every candidate open has no xy-wing")
	}
}

func TestXyzWing_ReturnsFalseOnAFreshGrid(t *testing.T) {
	g := board.NewGrid()
	if XyzWing(g) {
		t.Error("a grid with every candidate open has no xyz-wing")
	}
}
