// Package technique is the elimination-rule library: naked/hidden
// sets, fish, wings, remote pairs, colouring, and unique rectangles.
// Every exported function here has the solve.Technique signature
// (Grid -> bool) and follows the same contract: scan, make the first
// eliminations found, emit one log line, return true; otherwise leave
// the grid untouched and return false.
package technique

import (
	"strconv"
	"strings"

	"github.com/student/sudoku-engine/internal/sudoku/board"
	"golang.org/x/exp/slices"
)

// change is a single candidate elimination, (row, col) 0-based, used
// only to build the human-readable "==> r1c2#3, ..." log suffix.
type change struct {
	Row, Col, Val int
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func cellRef(row, col int) string {
	return "r" + itoa(row+1) + "c" + itoa(col+1)
}

func (c change) String() string {
	return cellRef(c.Row, c.Col) + "#" + itoa(c.Val)
}

func formatChanges(changes []change) string {
	parts := make([]string, len(changes))
	for i, c := range changes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func contains(s []int, v int) bool {
	return slices.Contains(s, v)
}

func containsPos(s []board.Position, p board.Position) bool {
	return slices.Contains(s, p)
}
