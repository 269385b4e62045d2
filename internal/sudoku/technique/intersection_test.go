package technique

import (
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

func TestIntersectionRemoval_PointingPairClearsCandidateFromTheRestOfTheRow(t *testing.T) {
	g := board.NewGrid()
	// confine box0's candidate-3 cells to row0 (box-local positions 0,1,2);
	// every other box0 cell loses candidate 3.
	for _, rc := range [][2]int{{1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		c := g.GetCell(rc[0], rc[1])
		c.ExcludeCandidate(3)
		g.SetCell(rc[0], rc[1], c)
	}

	if !IntersectionRemoval(g) {
		t.Fatal("expected a pointing-pair elimination")
	}
	if g.GetCell(0, 5).IsCandidate(3) {
		t.Error("expected candidate 3 to be cleared from r1c6 outside box0")
	}
	if !g.GetCell(0, 0).IsCandidate(3) {
		t.Error("did not expect the box cell itself to lose candidate 3")
	}
}

func TestIntersectionRemoval_ReturnsFalseOnAFreshGrid(t *testing.T) {
	g := board.NewGrid()
	if IntersectionRemoval(g) {
		t.Error("a grid with every candidate open has no intersection to exploit")
	}
}
