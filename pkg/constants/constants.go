// Package constants centralises the small numeric constants shared by
// the board, solver, and CLI packages.
package constants

// Grid shape.
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	// MinGivens is the minimum clue count below which no 9x9 puzzle can
	// have a unique solution; the generator's trimming loop (§12 of
	// SPEC_FULL.md) never goes below it.
	MinGivens = 17
)

// SolutionCountLimit is the point at which bifurcation short-circuits:
// once two completions are found the puzzle is known non-unique and
// counting further branches is wasted work (§4.4).
const SolutionCountLimit = 2

// MaxLockedSetOrder and MaxFishOrder bound the k in NakedSet/HiddenSet
// and the fish family (x-wing=2 .. jellyfish=4 for basic fish, up to
// leviathan=7 for the generalized fish family).
const (
	MaxLockedSetOrder = 4
	MaxBasicFishOrder = 4
	MaxFishOrder      = 7
)
