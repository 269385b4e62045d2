package board

// Cell holds either a solved value in 1..9 or a candidate set of size at
// least one. A cell with value 0 and an empty candidate set is an
// inconsistency; it is not an error value in itself, only something the
// solver loop watches for via Grid.IsFutile.
type Cell struct {
	value      int
	candidates Candidates
}

// NewUnsolvedCell returns a cell carrying every candidate.
func NewUnsolvedCell() Cell {
	return Cell{candidates: AllCandidates()}
}

// NewSolvedCell returns a cell already holding v.
func NewSolvedCell(v int) Cell {
	return Cell{value: v}
}

// IsSolved reports whether the cell has a value.
func (c Cell) IsSolved() bool {
	return c.value != 0
}

// Value returns the solved value. Precondition: IsSolved.
func (c Cell) Value() int {
	return c.value
}

// IsCandidate reports whether v is still a candidate.
func (c Cell) IsCandidate(v int) bool {
	return c.candidates.Has(v)
}

// Candidates returns the cell's candidate mask; empty for a solved cell.
func (c Cell) Candidates() Candidates {
	return c.candidates
}

// NumCandidates returns the candidate count, 0 for a solved or
// inconsistent cell.
func (c Cell) NumCandidates() int {
	return c.candidates.Count()
}

// SetValue solves the cell, clearing its candidate set. Precondition:
// v in 1..9.
func (c *Cell) SetValue(v int) {
	c.value = v
	c.candidates = 0
}

// ExcludeCandidate removes v from the candidate set and reports whether
// that changed anything. It never auto-promotes a cell left with a
// single candidate; NakedSingle owns promotion.
func (c *Cell) ExcludeCandidate(v int) bool {
	if !c.candidates.Has(v) {
		return false
	}
	c.candidates = c.candidates.Clear(v)
	return true
}

// SetCandidates overwrites the candidate mask directly, used by house
// snapshot writeback (SetRow/SetCol/SetBox).
func (c *Cell) SetCandidates(cand Candidates) {
	c.candidates = cand
}
