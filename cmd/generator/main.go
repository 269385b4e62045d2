// Command generator produces one or more filled-then-pruned puzzles,
// each emitted to stdout in SingleLine format.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/bits-and-blooms/bitset"
	"github.com/blang/semver/v4"
	"github.com/dustin/go-humanize"
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/ioformat"
	"github.com/student/sudoku-engine/internal/sudoku/solve"
	"github.com/student/sudoku-engine/pkg/logging"
)

// version is reported by -version; bumped by hand per release.
var version = semver.MustParse("1.0.0")

// fillTechniques is the reduced set the filling/pruning oracle uses to
// check a candidate placement: cheap propagation plus full bifurcation
// to get an exact solution count, matching the generator's own use of
// {NakedSingle, HiddenSingle} as its bifurcation base.
var fillTechniques = []solve.Technique{solve.NakedSingle, solve.HiddenSingle}

// maxPruneAttempts bounds the do-while restart loop a -g target can
// otherwise spin forever in when the target is below what a single
// random removal pass can reach.
const maxPruneAttempts = 2000

type options struct {
	seed        int64
	number      int
	givens      int
	showVersion bool
}

func parseFlags(args []string) *options {
	fs := flag.NewFlagSet("generator", flag.ExitOnError)
	o := &options{}
	fs.Int64Var(&o.seed, "s", 0, "seed for the random number generator")
	fs.IntVar(&o.number, "n", 1, "number of puzzles to generate")
	fs.IntVar(&o.givens, "g", 0, "maximum number of givens to allow (0: prune greedily with no target)")
	fs.BoolVar(&o.showVersion, "version", false, "print the version and exit")
	fs.Parse(args)
	return o
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o := parseFlags(os.Args[1:])
	if o.showVersion {
		fmt.Println("generator", version.String())
		return
	}

	logging.SetLevel(logging.Never)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	rng := rand.New(rand.NewSource(o.seed))

	generated := 0
	for i := 0; i < o.number; i++ {
		select {
		case <-ctx.Done():
			logging.Log(logging.Warning, "interrupted, stopping between puzzles\n")
			fmt.Fprintf(os.Stderr, "generated %s puzzle(s)\n", humanize.Comma(int64(generated)))
			return
		default:
		}

		g := generateFilledGrid(rng)
		if o.givens > 0 {
			g = pruneToMaxGivens(g, rng, o.givens)
		} else {
			pruneGreedily(g, rng)
		}
		ioformat.PrintSingleLine(out, g)
		generated++
	}

	fmt.Fprintf(os.Stderr, "generated %s puzzle(s)\n", humanize.Comma(int64(generated)))
}

// generateFilledGrid builds a complete, valid grid by placing a random
// candidate in each cell in turn and using full bifurcation as an
// oracle: a placement that leaves the puzzle impossible is discarded
// and the next candidate tried; a placement that leaves it uniquely
// solvable means the whole grid is already determined, so that
// solution is returned immediately; a placement that still leaves
// multiple completions is committed and singles are propagated before
// moving to the next cell.
func generateFilledGrid(rng *rand.Rand) *board.Grid {
	g := board.NewGrid()

	for _, p := range board.AllCellPositions() {
		cell := g.GetCell(p.Row, p.Col)
		if cell.IsSolved() {
			continue
		}

		candidates := cell.Candidates().ToSlice()
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		placed := false
		for _, v := range candidates {
			tmp := g.Clone()
			tmp.SetCell(p.Row, p.Col, board.NewSolvedCell(v))
			tmp.CrossHatch(p.Row, p.Col)

			switch solve.Solve(tmp, fillTechniques, true, true) {
			case 1:
				return tmp
			case 0:
				continue
			default:
				g.SetCell(p.Row, p.Col, board.NewSolvedCell(v))
				g.CrossHatch(p.Row, p.Col)
				solve.Solve(g, fillTechniques, false, true)
				placed = true
			}
			break
		}

		if !placed {
			panic("generateFilledGrid: every candidate for a cell led to an impossible grid")
		}
	}

	return g
}

// pruneGreedily removes as many givens as a single random-order pass
// can, leaving a given cleared only when the grid is still uniquely
// solvable without it.
func pruneGreedily(g *board.Grid, rng *rand.Rand) {
	positions := shuffledPositions(rng)
	for _, p := range positions {
		tmp := g.Clone()
		tmp.SetCell(p.Row, p.Col, board.NewUnsolvedCell())
		crossHatchAll(tmp)
		if solve.Solve(tmp, fillTechniques, true, true) == 1 {
			g.SetCell(p.Row, p.Col, board.NewUnsolvedCell())
		}
	}
}

// pruneToMaxGivens repeatedly restarts from the full grid with a fresh
// random removal order until a pass leaves at most givens cells fixed,
// and returns that pruned grid.
func pruneToMaxGivens(full *board.Grid, rng *rand.Rand, givens int) *board.Grid {
	var attempt *board.Grid
	for n := 0; n < maxPruneAttempts; n++ {
		attempt = full.Clone()
		pruneGreedily(attempt, rng)
		if countGivens(attempt) <= uint(givens) {
			return attempt
		}
	}
	logging.Log(logging.Warning, "could not reach %d givens after %d attempts, returning best effort (%d givens)\n",
		givens, maxPruneAttempts, countGivens(attempt))
	return attempt
}

func shuffledPositions(rng *rand.Rand) []board.Position {
	positions := board.AllCellPositions()
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	return positions
}

func crossHatchAll(g *board.Grid) {
	for _, p := range board.AllCellPositions() {
		if g.GetCell(p.Row, p.Col).IsSolved() {
			g.CrossHatch(p.Row, p.Col)
		}
	}
}

// countGivens tracks which of the 81 cells are still givens as a
// bitset rather than a counter loop, matching the working-set shape
// the minimisation pass above reasons over.
func countGivens(g *board.Grid) uint {
	givens := bitset.New(81)
	for i, p := range board.AllCellPositions() {
		if g.GetCell(p.Row, p.Col).IsSolved() {
			givens.Set(uint(i))
		}
	}
	return givens.Count()
}
