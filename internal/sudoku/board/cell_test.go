package board

import "testing"

func TestNewUnsolvedCell(t *testing.T) {
	c := NewUnsolvedCell()
	if c.IsSolved() {
		t.Error("a fresh unsolved cell should not be solved")
	}
	if c.NumCandidates() != 9 {
		t.Errorf("expected 9 candidates, got %d", c.NumCandidates())
	}
}

func TestNewSolvedCell(t *testing.T) {
	c := NewSolvedCell(6)
	if !c.IsSolved() {
		t.Error("a solved cell should report solved")
	}
	if c.Value() != 6 {
		t.Errorf("Value() = %d, want 6", c.Value())
	}
	if c.NumCandidates() != 0 {
		t.Errorf("a solved cell should carry no candidates, got %d", c.NumCandidates())
	}
}

func TestExcludeCandidate_ReportsChange(t *testing.T) {
	c := NewUnsolvedCell()
	if !c.ExcludeCandidate(3) {
		t.Error("excluding a present candidate should report a change")
	}
	if c.IsCandidate(3) {
		t.Error("3 should no longer be a candidate")
	}
	if c.ExcludeCandidate(3) {
		t.Error("excluding an already-absent candidate should report no change")
	}
}

func TestExcludeCandidate_DoesNotAutoPromote(t *testing.T) {
	c := NewUnsolvedCell()
	for v := 1; v <= 8; v++ {
		c.ExcludeCandidate(v)
	}
	if c.IsSolved() {
		t.Error("excluding down to a single candidate must not auto-solve the cell")
	}
	if c.NumCandidates() != 1 {
		t.Errorf("expected exactly 1 candidate left, got %d", c.NumCandidates())
	}
}

func TestSetValue_ClearsCandidates(t *testing.T) {
	c := NewUnsolvedCell()
	c.SetValue(4)
	if !c.IsSolved() || c.Value() != 4 {
		t.Error("SetValue should solve the cell")
	}
	if c.NumCandidates() != 0 {
		t.Error("SetValue should clear the candidate set")
	}
}

func TestSetCandidates_Overwrites(t *testing.T) {
	c := NewUnsolvedCell()
	c.SetCandidates(NewCandidates(2, 4))
	if c.NumCandidates() != 2 || !c.IsCandidate(2) || !c.IsCandidate(4) {
		t.Errorf("expected candidates {2,4}, got %v", c.Candidates())
	}
}
