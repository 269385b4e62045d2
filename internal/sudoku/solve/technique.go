// Package solve holds the solver loop, bifurcation, and the two base
// techniques (NakedSingle, HiddenSingle) that both the full technique
// library and bifurcation's reduced set depend on. Keeping them here,
// rather than in the technique package, lets UniqueRectangle (in
// technique) call back into Solve/IsUnique without an import cycle.
package solve

import "github.com/student/sudoku-engine/internal/sudoku/board"

// Technique mutates a grid and reports whether it made a change. Every
// deduction rule in this engine — from NakedSingle to MedusaColor —
// shares this one signature.
type Technique func(g *board.Grid) bool
