// Package ioformat implements the three grid text encodings: Value (9
// loosely-punctuated characters per row), Candidates (a boxed ASCII
// grid for display), and SingleLine (81 tightly packed characters, the
// generator's output format).
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

// ParseValue reads a grid in Value format: 81 cells read in row-major
// order, skipping whitespace between them; a digit 1..9 sets the cell
// and any other non-whitespace rune (conventionally '.') leaves it
// blank with every candidate. Takes *bufio.Reader rather than
// io.Reader so repeated calls on the same stdin stream never lose
// bytes the way wrapping a fresh bufio.Scanner each call would.
func ParseValue(r *bufio.Reader) (*board.Grid, bool) {
	g := board.NewGrid()

	for i := 0; i < 81; i++ {
		row, col := i/9, i%9

		var ch rune
		for {
			next, _, err := r.ReadRune()
			if err != nil {
				return nil, false
			}
			if !unicode.IsSpace(next) {
				ch = next
				break
			}
		}

		if ch >= '1' && ch <= '9' {
			g.SetCell(row, col, board.NewSolvedCell(int(ch-'0')))
		}
	}

	for _, p := range board.AllCellPositions() {
		if g.GetCell(p.Row, p.Col).IsSolved() {
			g.CrossHatch(p.Row, p.Col)
		}
	}
	return g, true
}

// PrintValue renders the grid's solved values, nine per row, `.` for
// unsolved cells, space-separated in groups of three for readability.
func PrintValue(w io.Writer, g *board.Grid) {
	for r := 0; r < 9; r++ {
		var sb strings.Builder
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteByte(' ')
			}
			cell := g.GetCell(r, c)
			if cell.IsSolved() {
				fmt.Fprintf(&sb, "%d", cell.Value())
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}
