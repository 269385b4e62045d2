package technique

import (
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

func TestMedusaColor_ReturnsFalseOnAFreshGrid(t *testing.T) {
	g := board.NewGrid()
	if MedusaColor(g) {
		t.Error("a grid with every candidate open has no 3d-medusa chain")
	}
}
