package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

// ParseSingleLine reads one grid from exactly 81 characters (`1`..`9`
// or `.`), with no whitespace, returning false at end of input.
func ParseSingleLine(r *bufio.Reader) (*board.Grid, bool) {
	g := board.NewGrid()
	count := 0
	for count < 81 {
		ch, _, err := r.ReadRune()
		if err != nil {
			return nil, false
		}
		if ch == '\n' || ch == '\r' {
			continue
		}
		row, col := count/9, count%9
		if ch >= '1' && ch <= '9' {
			g.SetCell(row, col, board.NewSolvedCell(int(ch-'0')))
		} else if ch != '.' {
			return nil, false
		}
		count++
	}

	for _, p := range board.AllCellPositions() {
		if g.GetCell(p.Row, p.Col).IsSolved() {
			g.CrossHatch(p.Row, p.Col)
		}
	}
	return g, true
}

// PrintSingleLine renders the grid as 81 tightly packed characters.
func PrintSingleLine(w io.Writer, g *board.Grid) {
	buf := make([]byte, 0, 82)
	for _, p := range board.AllCellPositions() {
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() {
			buf = append(buf, byte('0'+c.Value()))
		} else {
			buf = append(buf, '.')
		}
	}
	fmt.Fprintln(w, string(buf))
}
