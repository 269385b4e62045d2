package board

import "testing"

func TestNewGrid_EveryCellCarriesAllCandidates(t *testing.T) {
	g := NewGrid()
	for _, p := range AllCellPositions() {
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() {
			t.Fatalf("cell %v should be unsolved", p)
		}
		if c.NumCandidates() != 9 {
			t.Fatalf("cell %v should carry 9 candidates, got %d", p, c.NumCandidates())
		}
	}
}

func TestSetCellAndGetCell(t *testing.T) {
	g := NewGrid()
	g.SetCell(2, 3, NewSolvedCell(7))
	if got := g.GetCell(2, 3).Value(); got != 7 {
		t.Errorf("GetCell(2,3) = %d, want 7", got)
	}
}

func TestCrossHatch_RemovesValueFromEveryBuddy(t *testing.T) {
	g := NewGrid()
	g.SetCell(4, 4, NewSolvedCell(5))
	g.CrossHatch(4, 4)

	for _, b := range Buddies(4, 4) {
		if g.GetCell(b.Row, b.Col).IsCandidate(5) {
			t.Errorf("buddy %v should no longer have 5 as a candidate", b)
		}
	}
	// a non-buddy cell should be untouched
	if !g.GetCell(0, 0).IsCandidate(5) {
		t.Error("non-buddy cell (0,0) should still carry candidate 5")
	}
}

func TestGetSetRow(t *testing.T) {
	g := NewGrid()
	row := g.GetRow(0)
	row[0] = NewSolvedCell(1)
	g.SetRow(row, 0)
	if g.GetCell(0, 0).Value() != 1 {
		t.Error("SetRow should write the cell back")
	}
}

func TestGetSetCol(t *testing.T) {
	g := NewGrid()
	col := g.GetCol(0)
	col[0] = NewSolvedCell(1)
	g.SetCol(col, 0)
	if g.GetCell(0, 0).Value() != 1 {
		t.Error("SetCol should write the cell back")
	}
}

func TestGetSetBox(t *testing.T) {
	g := NewGrid()
	box := g.GetBox(0)
	box[0] = NewSolvedCell(1)
	g.SetBox(box, 0)
	if g.GetCell(0, 0).Value() != 1 {
		t.Error("SetBox should write the cell back")
	}
}

func solvedGridForTest() *Grid {
	g := NewGrid()
	solution := [81]int{
		1, 7, 4, 2, 9, 3, 6, 8, 5,
		2, 9, 6, 1, 8, 5, 4, 3, 7,
		8, 5, 3, 7, 4, 6, 1, 2, 9,
		5, 6, 1, 9, 2, 8, 7, 4, 3,
		7, 8, 2, 4, 3, 1, 5, 9, 6,
		3, 4, 9, 5, 6, 7, 2, 1, 8,
		9, 1, 7, 3, 5, 4, 8, 6, 2,
		6, 3, 5, 8, 1, 2, 9, 7, 4,
		4, 2, 8, 6, 7, 9, 3, 5, 1,
	}
	for i, v := range solution {
		g.SetCell(i/9, i%9, NewSolvedCell(v))
	}
	return g
}

func TestIsSolved_CompleteGrid(t *testing.T) {
	g := solvedGridForTest()
	if !g.IsSolved() {
		t.Error("a fully valid completed grid should report solved")
	}
}

func TestIsSolved_IncompleteGrid(t *testing.T) {
	g := NewGrid()
	if g.IsSolved() {
		t.Error("a fresh grid should not report solved")
	}
}

func TestIsFutile_StuckCellWithNoCandidates(t *testing.T) {
	g := NewGrid()
	cell := g.GetCell(0, 0)
	for v := 1; v <= 9; v++ {
		cell.ExcludeCandidate(v)
	}
	g.SetCell(0, 0, cell)
	if !g.IsFutile() {
		t.Error("a grid with an empty, unsolved cell should be futile")
	}
}

func TestIsFutile_FreshGridIsNotFutile(t *testing.T) {
	g := NewGrid()
	if g.IsFutile() {
		t.Error("a fresh grid with every candidate open should not be futile")
	}
}

func TestUniquenessCache_DefaultsToUnknown(t *testing.T) {
	g := NewGrid()
	if g.UniquenessCache() != UniquenessUnknown {
		t.Error("a fresh grid's uniqueness cache should start Unknown")
	}
	g.SetUniquenessCache(UniquenessUnique)
	if g.UniquenessCache() != UniquenessUnique {
		t.Error("SetUniquenessCache should be observable via UniquenessCache")
	}
}

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	g := NewGrid()
	clone := g.Clone()
	clone.SetCell(0, 0, NewSolvedCell(9))

	if g.GetCell(0, 0).IsSolved() {
		t.Error("mutating a clone should not affect the original grid")
	}
	if clone.GetCell(0, 0).Value() != 9 {
		t.Error("the clone should carry its own mutation")
	}
}

func TestAllCellPositions_CoversEveryCellInRowMajorOrder(t *testing.T) {
	positions := AllCellPositions()
	if len(positions) != 81 {
		t.Fatalf("expected 81 positions, got %d", len(positions))
	}
	i := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if positions[i] != (Position{r, c}) {
				t.Fatalf("position %d = %v, want (%d,%d)", i, positions[i], r, c)
			}
			i++
		}
	}
}
