package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

// ParseCandidates reads a grid in Candidates format: for each of the 81
// cells, a maximal run of digit characters (separators and rule lines
// are skipped as non-digit filler) — a lone digit sets the cell's
// value, a run of several digits becomes exactly that candidate set.
func ParseCandidates(br *bufio.Reader) (*board.Grid, bool) {
	g := board.NewGrid()

	for i := 0; i < 81; i++ {
		row, col := i/9, i%9

		ch, ok := nextDigit(br)
		if !ok {
			return nil, false
		}

		digits := []int{int(ch - '0')}
		for {
			next, _, err := br.ReadRune()
			if err != nil {
				break
			}
			if next < '0' || next > '9' {
				br.UnreadRune()
				break
			}
			digits = append(digits, int(next-'0'))
		}

		if len(digits) == 1 {
			g.SetCell(row, col, board.NewSolvedCell(digits[0]))
		} else {
			cell := board.NewUnsolvedCell()
			for v := 1; v <= 9; v++ {
				if !containsInt(digits, v) {
					cell.ExcludeCandidate(v)
				}
			}
			g.SetCell(row, col, cell)
		}
	}

	for _, p := range board.AllCellPositions() {
		if g.GetCell(p.Row, p.Col).IsSolved() {
			g.CrossHatch(p.Row, p.Col)
		}
	}
	return g, true
}

func nextDigit(br *bufio.Reader) (rune, bool) {
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			return 0, false
		}
		if ch >= '0' && ch <= '9' {
			return ch, true
		}
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// PrintCandidates renders a box-separated ASCII grid: each cell shows
// either its solved value or the concatenation of its remaining
// candidates, every column padded to the width of its tallest entry,
// with a `+---+---+---+`-style rule between box bands.
func PrintCandidates(w io.Writer, g *board.Grid) {
	cellText := make([][9]string, 9)
	colWidth := make([]int, 9)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := g.GetCell(r, c)
			var s string
			if cell.IsSolved() {
				s = strconv.Itoa(cell.Value())
			} else {
				s = cell.Candidates().String()
			}
			cellText[r][c] = s
			if len(s) > colWidth[c] {
				colWidth[c] = len(s)
			}
		}
	}

	rule := ruleLine(colWidth)
	fmt.Fprintln(w, rule)
	for r := 0; r < 9; r++ {
		var sb strings.Builder
		sb.WriteString("| ")
		for c := 0; c < 9; c++ {
			sb.WriteString(padRight(cellText[r][c], colWidth[c]))
			sb.WriteByte(' ')
			if c%3 == 2 {
				sb.WriteString("| ")
			}
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
		if r%3 == 2 {
			fmt.Fprintln(w, rule)
		}
	}
}

func ruleLine(colWidth []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for band := 0; band < 3; band++ {
		width := 0
		for c := band * 3; c < band*3+3; c++ {
			width += colWidth[c] + 1
		}
		sb.WriteString(strings.Repeat("-", width+1))
		sb.WriteByte('+')
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
