package ioformat

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
)

const solvedLine = "174293685296185437853746129561928743782431596349567218917354862635812974428679351"

func gridFromSingleLine(t *testing.T, line string) *board.Grid {
	t.Helper()
	g, ok := ParseSingleLine(bufio.NewReader(strings.NewReader(line + "\n")))
	if !ok {
		t.Fatalf("ParseSingleLine(%q) failed", line)
	}
	return g
}

func TestParseValue_SkipsWhitespaceAndBlanks(t *testing.T) {
	input := `
4 3 5 2 6 9 7 8 1
6 8 2 5 7 1 4 9 3
1 9 7 8 3 4 5 6 2
8 2 6 1 9 5 3 4 7
3 7 4 6 8 2 9 1 5
9 5 1 7 4 3 6 2 8
5 1 9 3 2 6 8 7 4
7 4 3 9 1 8 2 5 6
2 6 8 4 5 7 1 3 9
`
	g, ok := ParseValue(bufio.NewReader(strings.NewReader(input)))
	if !ok {
		t.Fatal("ParseValue failed on well-formed input")
	}
	if got := g.GetCell(0, 0).Value(); got != 4 {
		t.Errorf("cell (0,0) = %d, want 4", got)
	}
	if got := g.GetCell(8, 8).Value(); got != 9 {
		t.Errorf("cell (8,8) = %d, want 9", got)
	}
	if !g.IsSolved() {
		t.Error("grid should be fully solved")
	}
}

func TestParseValue_BlankMarkerLeavesAllCandidates(t *testing.T) {
	input := strings.Repeat(". ", 80) + ".\n"
	g, ok := ParseValue(bufio.NewReader(strings.NewReader(input)))
	if !ok {
		t.Fatal("ParseValue failed")
	}
	cell := g.GetCell(4, 4)
	if cell.IsSolved() {
		t.Error("blank cell should not be solved")
	}
	if cell.NumCandidates() != 9 {
		t.Errorf("blank cell should carry all 9 candidates, got %d", cell.NumCandidates())
	}
}

func TestParseValue_EOFReturnsFalse(t *testing.T) {
	if _, ok := ParseValue(bufio.NewReader(strings.NewReader("123"))); ok {
		t.Error("ParseValue should fail on truncated input")
	}
	if _, ok := ParseValue(bufio.NewReader(strings.NewReader(""))); ok {
		t.Error("ParseValue should fail on empty input")
	}
}

func TestParseValue_MultiplePuzzlesOnSharedReader(t *testing.T) {
	one := strings.Repeat("1 ", 80) + "1\n"
	two := strings.Repeat("2 ", 80) + "2\n"
	r := bufio.NewReader(strings.NewReader(one + two))

	g1, ok := ParseValue(r)
	if !ok {
		t.Fatal("first ParseValue failed")
	}
	if g1.GetCell(0, 0).Value() != 1 {
		t.Errorf("first puzzle cell (0,0) = %d, want 1", g1.GetCell(0, 0).Value())
	}

	g2, ok := ParseValue(r)
	if !ok {
		t.Fatal("second ParseValue failed: buffered bytes from the first call were lost")
	}
	if g2.GetCell(0, 0).Value() != 2 {
		t.Errorf("second puzzle cell (0,0) = %d, want 2", g2.GetCell(0, 0).Value())
	}

	if _, ok := ParseValue(r); ok {
		t.Error("third ParseValue should report end of input")
	}
}

func TestParseCandidates_SingleDigitIsSolvedValue(t *testing.T) {
	input := strings.Join(strings.Split(solvedLine, ""), " ")
	g, ok := ParseCandidates(bufio.NewReader(strings.NewReader(input)))
	if !ok {
		t.Fatal("ParseCandidates failed")
	}
	if !g.IsSolved() {
		t.Error("grid of single-digit cells from a solved line should be fully solved")
	}
	if g.GetCell(3, 6).Value() != 7 {
		t.Errorf("cell (3,6) = %d, want 7", g.GetCell(3, 6).Value())
	}
}

func TestParseCandidates_MultiDigitRunBecomesExactCandidateSet(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("179 ")
	for i := 1; i < 81; i++ {
		sb.WriteString("5 ")
	}
	g, ok := ParseCandidates(bufio.NewReader(strings.NewReader(sb.String())))
	if !ok {
		t.Fatal("ParseCandidates failed")
	}
	cell := g.GetCell(0, 0)
	if cell.IsSolved() {
		t.Error("multi-digit run should leave the cell unsolved")
	}
	for _, v := range []int{1, 7, 9} {
		if !cell.IsCandidate(v) {
			t.Errorf("expected %d to remain a candidate", v)
		}
	}
	for _, v := range []int{2, 3, 4, 5, 6, 8} {
		if cell.IsCandidate(v) {
			t.Errorf("did not expect %d to remain a candidate", v)
		}
	}
}

func TestParseCandidates_MultiplePuzzlesOnSharedReader(t *testing.T) {
	first := strings.Repeat("1 ", 81)
	second := strings.Repeat("2 ", 81)
	r := bufio.NewReader(strings.NewReader(first + " " + second))

	g1, ok := ParseCandidates(r)
	if !ok {
		t.Fatal("first ParseCandidates failed")
	}
	if g1.GetCell(0, 0).Value() != 1 {
		t.Errorf("first puzzle cell (0,0) = %d, want 1", g1.GetCell(0, 0).Value())
	}

	g2, ok := ParseCandidates(r)
	if !ok {
		t.Fatal("second ParseCandidates failed: buffered bytes from the first call were lost")
	}
	if g2.GetCell(0, 0).Value() != 2 {
		t.Errorf("second puzzle cell (0,0) = %d, want 2", g2.GetCell(0, 0).Value())
	}
}

func TestParseSingleLine_RoundTripsWithPrintSingleLine(t *testing.T) {
	g := gridFromSingleLine(t, solvedLine)

	var buf bytes.Buffer
	PrintSingleLine(&buf, g)
	if strings.TrimRight(buf.String(), "\n") != solvedLine {
		t.Errorf("round trip mismatch:\n got  %q\n want %q", buf.String(), solvedLine)
	}
}

func TestParseSingleLine_MultiplePuzzlesOnSharedReader(t *testing.T) {
	blank := strings.Repeat(".", 81)
	r := bufio.NewReader(strings.NewReader(solvedLine + "\n" + blank + "\n"))

	g1, ok := ParseSingleLine(r)
	if !ok {
		t.Fatal("first ParseSingleLine failed")
	}
	if !g1.IsSolved() {
		t.Error("first puzzle should be fully solved")
	}

	g2, ok := ParseSingleLine(r)
	if !ok {
		t.Fatal("second ParseSingleLine failed")
	}
	if g2.IsSolved() {
		t.Error("second puzzle should be entirely blank")
	}

	if _, ok := ParseSingleLine(r); ok {
		t.Error("third ParseSingleLine should report end of input")
	}
}

func TestParseSingleLine_RejectsInvalidCharacter(t *testing.T) {
	bad := strings.Repeat("1", 80) + "x"
	if _, ok := ParseSingleLine(bufio.NewReader(strings.NewReader(bad))); ok {
		t.Error("ParseSingleLine should reject a non-digit, non-dot character")
	}
}

func TestPrintValue_MarksUnsolvedCellsWithDot(t *testing.T) {
	g := board.NewGrid()
	var buf bytes.Buffer
	PrintValue(&buf, g)
	if !strings.Contains(buf.String(), ".") {
		t.Error("an entirely unsolved grid should print dots")
	}
}

func TestPrintCandidates_ShowsRuleLinesAroundBoxes(t *testing.T) {
	g := gridFromSingleLine(t, solvedLine)
	var buf bytes.Buffer
	PrintCandidates(&buf, g)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 9 rows + 4 rule lines (top, and one after every band of 3 rows)
	if len(lines) != 13 {
		t.Errorf("expected 13 output lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "+") {
		t.Errorf("first line should be a rule line, got %q", lines[0])
	}
}
