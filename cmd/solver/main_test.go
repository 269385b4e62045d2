package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/solve"
)

func TestResolveTechniques_KnownTokens(t *testing.T) {
	list, err := resolveTechniques("n1,h1,lc")
	if err != nil {
		t.Fatalf("resolveTechniques failed: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("expected 3 techniques, got %d", len(list))
	}
}

func TestResolveTechniques_UnknownToken(t *testing.T) {
	if _, err := resolveTechniques("n1,bogus"); err == nil {
		t.Error("expected an error for an unknown technique token")
	}
}

func TestResolveTechniques_EmptyTokensSkipped(t *testing.T) {
	list, err := resolveTechniques(" , n1 , ")
	if err != nil {
		t.Fatalf("resolveTechniques failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 technique after trimming blanks, got %d", len(list))
	}
}

func TestTechniqueByToken_CoversEveryTableEntry(t *testing.T) {
	tokens := []string{
		"ssts", "n1", "h1", "n2", "n3", "n4", "h2", "h3", "h4", "lc",
		"bf2", "bf3", "bf4", "xyw", "xyzw", "rp", "ur", "sc", "mc", "3dmc",
		"fif", "frf", "mf",
	}
	for _, tok := range tokens {
		if _, ok := techniqueByToken[tok]; !ok {
			t.Errorf("missing techniqueByToken entry for %q", tok)
		}
	}
	if len(techniqueByToken) != len(tokens) {
		t.Errorf("techniqueByToken has %d entries, expected %d", len(techniqueByToken), len(tokens))
	}
}

func TestStatistics_Print(t *testing.T) {
	s := statistics{impossible: 1, unique: 2, nonUnique: 1}
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	s.print(w)
	w.Flush()

	out := buf.String()
	if !strings.Contains(out, "Final Statistics: 4 puzzles") {
		t.Errorf("missing total line in:\n%s", out)
	}
	if !strings.Contains(out, "impossible:  1") {
		t.Errorf("missing impossible count in:\n%s", out)
	}
}

func TestStatistics_PrintSkipsWhenEmpty(t *testing.T) {
	s := statistics{}
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	s.print(w)
	w.Flush()
	if buf.Len() != 0 {
		t.Errorf("expected no output for zero puzzles, got %q", buf.String())
	}
}

func TestCountingTechniques_CountsSuccessfulApplications(t *testing.T) {
	always := func(g *board.Grid) bool { return true }
	never := func(g *board.Grid) bool { return false }

	var n int
	wrapped := countingTechniques([]solve.Technique{always, never, always}, &n)

	g := board.NewGrid()
	for _, t := range wrapped {
		t(g)
	}
	if n != 2 {
		t.Errorf("expected 2 counted applications, got %d", n)
	}
}

func TestReadPuzzle_NoneFormatAlwaysFails(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(strings.Repeat("1", 81)))
	if _, ok := readPuzzle(r, "n"); ok {
		t.Error("input format n should never read a puzzle")
	}
}

func TestReadPuzzle_ValueFormatDefault(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(strings.Repeat("1 ", 80) + "1\n"))
	g, ok := readPuzzle(r, "v")
	if !ok {
		t.Fatal("expected a puzzle to be read")
	}
	if g.GetCell(0, 0).Value() != 1 {
		t.Errorf("cell (0,0) = %d, want 1", g.GetCell(0, 0).Value())
	}
}

func TestWriteGrid_NoneFormatWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeGrid(w, board.NewGrid(), "n")
	w.Flush()
	if buf.Len() != 0 {
		t.Errorf("expected no output for output format n, got %q", buf.String())
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	o, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if o.outputFormat != "v" || o.inputFormat != "v" || o.tokens != "ssts" || o.logLevel != "" {
		t.Errorf("unexpected defaults: %+v", o)
	}
}
