// Package puzzles manages the on-disk corpus of generated puzzles: a
// JSON file of solved grids plus the given-cell indices the generator
// settled on, each tagged with a stable ID so a puzzle can be
// referenced across runs.
package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/student/sudoku-engine/pkg/constants"
)

// CompactPuzzle is one corpus entry: a full solution plus the subset of
// cells the generator kept as givens.
type CompactPuzzle struct {
	ID       uuid.UUID `json:"id"`
	Solution string    `json:"solution"` // TotalCells-char string, "1".."9"
	Givens   []int     `json:"givens"`   // cell indices kept as givens
}

// NewCompactPuzzle builds a corpus entry from a solved grid (as a
// TotalCells-length digit string) and the indices of the cells kept as
// givens, assigning it a fresh ID.
func NewCompactPuzzle(solution string, givens []int) CompactPuzzle {
	return CompactPuzzle{ID: uuid.New(), Solution: solution, Givens: append([]int{}, givens...)}
}

// PuzzleFile is the top-level structure of the corpus JSON file.
type PuzzleFile struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Puzzles []CompactPuzzle `json:"puzzles"`
}

// Loader holds a loaded corpus in memory.
type Loader struct {
	puzzles []CompactPuzzle
	mu      sync.RWMutex
}

// Load reads a corpus file from disk.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle file: %w", err)
	}

	return &Loader{puzzles: file.Puzzles}, nil
}

// NewLoaderFromPuzzles builds a loader directly from a puzzle slice,
// primarily for tests and for the generator to hold its output before
// writing it out.
func NewLoaderFromPuzzles(puzzles []CompactPuzzle) *Loader {
	return &Loader{puzzles: puzzles}
}

// Save writes the loader's puzzles out as a corpus file.
func (l *Loader) Save(path string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	file := PuzzleFile{Version: 1, Count: len(l.puzzles), Puzzles: l.puzzles}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write puzzle file: %w", err)
	}
	return nil
}

// Add appends a puzzle to the loader.
func (l *Loader) Add(p CompactPuzzle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.puzzles = append(l.puzzles, p)
}

// Count returns the number of puzzles held.
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// GetPuzzle returns the givens array (0 for blank cells) and full
// solution for the puzzle at index.
func (l *Loader) GetPuzzle(index int) (givens []int, solution []int, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.puzzles) {
		return nil, nil, fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}

	puzzle := l.puzzles[index]
	if len(puzzle.Solution) != constants.TotalCells {
		return nil, nil, fmt.Errorf("puzzle %s has malformed solution length %d", puzzle.ID, len(puzzle.Solution))
	}

	solution = make([]int, constants.TotalCells)
	for i, c := range puzzle.Solution {
		solution[i] = int(c - '0')
	}

	givens = make([]int, constants.TotalCells)
	for _, idx := range puzzle.Givens {
		if idx < 0 || idx >= constants.TotalCells {
			continue
		}
		givens[idx] = solution[idx]
	}

	return givens, solution, nil
}

// GetPuzzleBySeed deterministically selects a puzzle from the corpus
// via an FNV hash of seed, for reproducible "-s N" generator runs that
// draw from a fixed corpus instead of generating fresh.
func (l *Loader) GetPuzzleBySeed(seed string) (givens []int, solution []int, puzzleIndex int, err error) {
	l.mu.RLock()
	count := len(l.puzzles)
	l.mu.RUnlock()

	if count == 0 {
		return nil, nil, 0, fmt.Errorf("no puzzles loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	puzzleIndex = int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	givens, solution, err = l.GetPuzzle(puzzleIndex)
	return
}
