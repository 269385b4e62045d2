// Command solver reads puzzles from stdin, solves each with a
// configurable technique pipeline plus optional bifurcation, and
// prints the outcome and resulting grid for every puzzle.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/blang/semver/v4"
	"github.com/dustin/go-humanize"
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/ioformat"
	"github.com/student/sudoku-engine/internal/sudoku/solve"
	"github.com/student/sudoku-engine/internal/sudoku/technique"
	"github.com/student/sudoku-engine/pkg/config"
	"github.com/student/sudoku-engine/pkg/logging"
)

// version is reported by -version; bumped by hand per release.
var version = semver.MustParse("1.0.0")

// techniqueByToken is the §6 technique-token table.
var techniqueByToken = map[string]solve.Technique{
	"ssts": technique.SimpleSudokuTechniqueSet,
	"n1":   solve.NakedSingle,
	"h1":   solve.HiddenSingle,
	"n2":   technique.NakedPair,
	"n3":   technique.NakedTriple,
	"n4":   technique.NakedQuad,
	"h2":   technique.HiddenPair,
	"h3":   technique.HiddenTriple,
	"h4":   technique.HiddenQuad,
	"lc":   technique.IntersectionRemoval,
	"bf2":  technique.BasicFish(2),
	"bf3":  technique.BasicFish(3),
	"bf4":  technique.BasicFish(4),
	"xyw":  technique.XyWing,
	"xyzw": technique.XyzWing,
	"rp":   technique.RemotePair,
	"ur":   technique.UniqueRectangle,
	"sc":   technique.SimpleColor,
	"mc":   technique.MultiColor,
	"3dmc": technique.MedusaColor,
	"fif":  technique.FinnedFish(2),
	"frf":  technique.FrankenFish(2),
	"mf":   technique.MutantFish(2),
}

type options struct {
	outputFormat string
	inputFormat  string
	echo         bool
	bifurcate    bool
	quiet        bool
	logLevel     string
	printLevel   bool
	statsMode    string
	tokens       string
	showVersion  bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("solver", flag.ContinueOnError)
	o := &options{}
	fs.StringVar(&o.outputFormat, "o", "v", "output format: v(alue), c(andidates), s(ingle-line), n(one)")
	fs.StringVar(&o.inputFormat, "i", "v", "input format: v(alue), c(andidates), n(one)")
	fs.BoolVar(&o.echo, "e", false, "echo the input puzzle before solving")
	fs.BoolVar(&o.bifurcate, "b", false, "enable bifurcation")
	fs.BoolVar(&o.quiet, "q", false, "quiet bifurcation logging")
	fs.StringVar(&o.logLevel, "l", "", "log level: f|e|w|i|d|t (default from SUDOKU_LOG_LEVEL, else w)")
	fs.BoolVar(&o.printLevel, "p", false, "prefix each log line with its level")
	fs.StringVar(&o.statsMode, "s", "n", "statistics mode: n(umeric)|e(lapsed)|f(ull log)")
	fs.StringVar(&o.tokens, "t", "ssts", "comma-separated ordered technique token list")
	fs.BoolVar(&o.showVersion, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func resolveTechniques(tokens string) ([]solve.Technique, error) {
	var list []solve.Technique
	for _, tok := range strings.Split(tokens, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		t, ok := techniqueByToken[tok]
		if !ok {
			return nil, fmt.Errorf("unknown technique token %q", tok)
		}
		list = append(list, t)
	}
	return list, nil
}

type statistics struct {
	impossible, unique, nonUnique int
}

func (s statistics) total() int {
	return s.impossible + s.unique + s.nonUnique
}

func (s statistics) print(w *bufio.Writer) {
	total := s.total()
	if total == 0 {
		return
	}
	fmt.Fprintf(w, "Final Statistics: %d puzzles\n", total)
	fmt.Fprintf(w, "  impossible:  %d (%.1f%%)\n", s.impossible, 100*float64(s.impossible)/float64(total))
	fmt.Fprintf(w, "  unique:      %d (%.1f%%)\n", s.unique, 100*float64(s.unique)/float64(total))
	fmt.Fprintf(w, "  non-unique:  %d (%.1f%%)\n", s.nonUnique, 100*float64(s.nonUnique)/float64(total))
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		logging.Log(logging.Fatal, "configuration error: %v\n", err)
		return 1
	}

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		logging.Log(logging.Fatal, "usage error: %v\n", err)
		return 1
	}
	if o.showVersion {
		fmt.Println("solver", version.String())
		return 0
	}

	level := cfg.DefaultLogLevel
	if o.logLevel != "" {
		parsed, ok := logging.ParseLevel(o.logLevel)
		if !ok {
			logging.Log(logging.Fatal, "invalid log level %q\n", o.logLevel)
			return 1
		}
		level = parsed
	}
	logging.SetLevel(level)
	logging.SetShouldPrintLogLevel(o.printLevel)

	techniques, err := resolveTechniques(o.tokens)
	if err != nil {
		logging.Log(logging.Fatal, "usage error: %v\n", err)
		return 1
	}
	if len(techniques) == 0 && !o.bifurcate {
		logging.Log(logging.Warning, "no techniques and no bifurcation: solver will only check if the puzzle is already solved\n")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	reader := bufio.NewReader(os.Stdin)
	stats := statistics{}
	allUnique := true

	for {
		select {
		case <-ctx.Done():
			logging.Log(logging.Warning, "interrupted, stopping between puzzles\n")
			stats.print(out)
			out.Flush()
			return 1
		default:
		}

		g, ok := readPuzzle(reader, o.inputFormat)
		if !ok {
			break
		}

		if o.echo {
			writeGrid(out, g, o.inputFormat)
		}

		puzzleTechniques := techniques
		var applications int
		if o.statsMode == "e" || o.statsMode == "f" {
			puzzleTechniques = countingTechniques(techniques, &applications)
		}

		var result int
		if o.statsMode == "f" {
			prev := logging.CurrentLevel()
			logging.SetLevel(logging.Trace)
			result = solve.Solve(g, puzzleTechniques, o.bifurcate, o.quiet)
			logging.SetLevel(prev)
		} else {
			result = solve.Solve(g, puzzleTechniques, o.bifurcate, o.quiet)
		}

		switch result {
		case 0:
			fmt.Fprintln(out, "puzzle was impossible")
			stats.impossible++
			allUnique = false
		case 1:
			fmt.Fprintln(out, "puzzle was unique")
			stats.unique++
		default:
			fmt.Fprintln(out, "puzzle was non-unique")
			stats.nonUnique++
			allUnique = false
		}

		logging.Log(logging.Info, "running totals: impossible=%d unique=%d non-unique=%d\n",
			stats.impossible, stats.unique, stats.nonUnique)

		if o.statsMode == "e" || o.statsMode == "f" {
			fmt.Fprintf(out, "  technique applications: %s\n", humanize.Comma(int64(applications)))
		}

		writeGrid(out, g, o.outputFormat)
	}

	stats.print(out)
	out.Flush()

	if !allUnique {
		return 1
	}
	return 0
}

// countingTechniques wraps each technique so a successful application
// increments counter, giving statistics mode "e"/"f" an elapsed
// technique-application count without threading counting state through
// the solver loop itself.
func countingTechniques(techniques []solve.Technique, counter *int) []solve.Technique {
	wrapped := make([]solve.Technique, len(techniques))
	for i, t := range techniques {
		t := t
		wrapped[i] = func(g *board.Grid) bool {
			if t(g) {
				*counter++
				return true
			}
			return false
		}
	}
	return wrapped
}

func readPuzzle(r *bufio.Reader, format string) (*board.Grid, bool) {
	switch format {
	case "c":
		return ioformat.ParseCandidates(r)
	case "n":
		// matches the original engine's Input(..., None), which never
		// reads anything and reports end of input immediately
		return nil, false
	default:
		return ioformat.ParseValue(r)
	}
}

func writeGrid(w *bufio.Writer, g *board.Grid, format string) {
	switch format {
	case "c":
		ioformat.PrintCandidates(w, g)
	case "s":
		ioformat.PrintSingleLine(w, g)
	case "n":
		// no grid output
	default:
		ioformat.PrintValue(w, g)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx))
}
