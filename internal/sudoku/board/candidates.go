package board

// Candidates is a bitmask of the digits 1-9 still allowed in a cell. Bit
// position v-1 corresponds to digit v, so AllCandidates is the low nine
// bits set and a solved cell carries an empty mask.
type Candidates uint16

// AllCandidates returns a mask with every digit 1-9 present.
func AllCandidates() Candidates {
	return Candidates(0x1ff)
}

// NewCandidates builds a mask from a list of digits, ignoring anything
// outside 1-9.
func NewCandidates(digits ...int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

func bit(v int) Candidates {
	if v < 1 || v > 9 {
		return 0
	}
	return 1 << uint(v-1)
}

// Has reports whether v is a candidate.
func (c Candidates) Has(v int) bool {
	return c&bit(v) != 0
}

// Set returns c with v added.
func (c Candidates) Set(v int) Candidates {
	return c | bit(v)
}

// Clear returns c with v removed.
func (c Candidates) Clear(v int) Candidates {
	return c &^ bit(v)
}

// Count returns the number of candidates, 0-9.
func (c Candidates) Count() int {
	n := 0
	for v := 1; v <= 9; v++ {
		if c.Has(v) {
			n++
		}
	}
	return n
}

// Only returns the sole candidate and true if exactly one is set.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for v := 1; v <= 9; v++ {
		if c.Has(v) {
			return v, true
		}
	}
	return 0, false
}

// ToSlice returns the candidates in ascending order.
func (c Candidates) ToSlice() []int {
	var out []int
	for v := 1; v <= 9; v++ {
		if c.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// IsEmpty reports whether no candidate is set.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Intersect returns the candidates common to both masks.
func (c Candidates) Intersect(o Candidates) Candidates {
	return c & o
}

// Union returns the candidates present in either mask.
func (c Candidates) Union(o Candidates) Candidates {
	return c | o
}

// Subtract returns the candidates in c that are not in o.
func (c Candidates) Subtract(o Candidates) Candidates {
	return c &^ o
}

// Equals reports mask equality.
func (c Candidates) Equals(o Candidates) bool {
	return c == o
}

// String renders the candidates as a concatenated digit run, e.g. "258".
func (c Candidates) String() string {
	digits := c.ToSlice()
	buf := make([]byte, len(digits))
	for i, d := range digits {
		buf[i] = byte('0' + d)
	}
	return string(buf)
}
