package technique

import (
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

func TestRemotePair_EliminatesFromACellSeeingBothChainEnds(t *testing.T) {
	g := board.NewGrid()
	chain := [][2]int{{0, 0}, {0, 4}, {4, 4}, {4, 8}}
	for _, rc := range chain {
		c := g.GetCell(rc[0], rc[1])
		c.SetCandidates(board.NewCandidates(1, 2))
		g.SetCell(rc[0], rc[1], c)
	}

	if !RemotePair(g) {
		t.Fatal("expected a remote pair chain to fire")
	}
	target := g.GetCell(0, 8)
	if target.IsCandidate(1) || target.IsCandidate(2) {
		t.Error("expected r1c9 (buddies both chain ends) to lose both paired candidates")
	}
}

func TestRemotePair_ReturnsFalseOnAFreshGrid(t *testing.T) {
	g := board.NewGrid()
	if RemotePair(g) {
		t.Error("a grid with every candidate open has no remote pair chain")
	}
}
