// Package combin provides the lexicographic next-combination primitive
// the technique library iterates locked-set and fish candidates with.
package combin

// FirstCombination returns the lowest k-index combination into [0, n):
// [0, 1, ..., k-1].
func FirstCombination(k int) []int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// NextCombination advances idx, a strictly increasing k-length index
// vector into [0, n), to its lexicographic successor in place. It
// returns false once the final combination has been passed, mirroring
// boost::next_combination's wraparound contract; idx's contents are
// undefined after a false return.
func NextCombination(idx []int, n int) bool {
	k := len(idx)
	if k == 0 || k > n {
		return false
	}

	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}

	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}

// Select returns the k items of source picked out by idx.
func Select(source []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, p := range idx {
		out[i] = source[p]
	}
	return out
}

// Each calls fn once per k-combination of source, in lexicographic
// order, stopping and returning true as soon as fn returns true.
func Each(source []int, k int, fn func(combo []int) bool) bool {
	n := len(source)
	if k > n {
		return false
	}
	idx := FirstCombination(k)
	for {
		if fn(Select(source, idx)) {
			return true
		}
		if !NextCombination(idx, n) {
			return false
		}
	}
}
