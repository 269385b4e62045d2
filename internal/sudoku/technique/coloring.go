package technique

import (
	"sort"

	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/pkg/logging"
	"golang.org/x/exp/maps"
)

// colorGraph holds, for one candidate value, the two-colouring of every
// conjugate chain: cells linked by a strong (exactly-two-in-a-house)
// link alternate colour.
type colorGraph struct {
	val    int
	color  map[board.Position]int // 1 or 2 per coloured cell
	chains [][]board.Position      // one entry per connected component, colour-1 cells first
}

// buildColorGraph links every pair of cells that are the only two
// candidates for val in some shared house, then walks each connected
// component assigning alternating colours.
func buildColorGraph(g *board.Grid, val int) *colorGraph {
	links := conjugateLinks(g, val)
	graph := &colorGraph{val: val, color: map[board.Position]int{}}

	// iterate cells in a fixed order so which component is discovered
	// first, and which side of it is coloured "one", never depends on
	// Go's randomised map iteration order (§8 determinism).
	cells := maps.Keys(links)
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })

	for _, cell := range cells {
		if _, done := graph.color[cell]; done {
			continue
		}
		one, two := colorComponent(cell, links, graph.color)
		if len(one) == 0 && len(two) == 0 {
			continue
		}
		graph.chains = append(graph.chains, append(append([]board.Position{}, one...), two...))
	}
	return graph
}

func conjugateLinks(g *board.Grid, val int) map[board.Position][]board.Position {
	links := map[board.Position][]board.Position{}
	addHouse := func(positions [9]board.Position) {
		var open []board.Position
		for _, p := range positions {
			c := g.GetCell(p.Row, p.Col)
			if !c.IsSolved() && c.IsCandidate(val) {
				open = append(open, p)
			}
		}
		if len(open) == 2 {
			links[open[0]] = append(links[open[0]], open[1])
			links[open[1]] = append(links[open[1]], open[0])
		}
	}
	for i := 0; i < 9; i++ {
		addHouse(board.RowPositions(i))
		addHouse(board.ColPositions(i))
		addHouse(board.BoxPositions(i))
	}
	return links
}

func colorComponent(start board.Position, links map[board.Position][]board.Position, color map[board.Position]int) (one, two []board.Position) {
	color[start] = 1
	one = append(one, start)
	queue := []board.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curColor := color[cur]
		next := 2
		if curColor == 2 {
			next = 1
		}
		for _, nb := range links[cur] {
			if _, done := color[nb]; done {
				continue
			}
			color[nb] = next
			if next == 1 {
				one = append(one, nb)
			} else {
				two = append(two, nb)
			}
			queue = append(queue, nb)
		}
	}
	return one, two
}

// SimpleColor covers the two contradiction patterns of single-value
// chain colouring: two same-coloured cells sharing a house (that
// colour is false, so eliminate it everywhere, i.e. solve the other
// colour), and an outside cell that buddies cells of both colours
// (neither colour can be that cell's value there, so eliminate it).
// A third, house-based check (trySimpleColorSeesHouse) runs after
// these two.
func SimpleColor(g *board.Grid) bool {
	logging.Log(logging.Trace, "searching for simple colouring chains\n")

	for val := 1; val <= 9; val++ {
		graph := buildColorGraph(g, val)
		for _, chain := range graph.chains {
			if trySimpleColorContradiction(g, val, chain, graph.color) {
				return true
			}
		}
		for _, chain := range graph.chains {
			if trySimpleColorElimination(g, val, chain, graph.color) {
				return true
			}
		}
		for _, chain := range graph.chains {
			if trySimpleColorSeesHouse(g, val, chain, graph.color) {
				return true
			}
		}
	}
	return false
}

// trySimpleColorContradiction finds two cells of the same colour
// sharing a house: that colour cannot be val anywhere, so the opposite
// colour's cells all solve to val.
//
// This solves the opposite colour outright rather than only excluding
// every other value from val; a strong-link chain makes both steps
// equivalent, but it means the observable per-cell change is "solved
// to val" rather than "val confirmed, other candidates untouched".
func trySimpleColorContradiction(g *board.Grid, val int, chain []board.Position, color map[board.Position]int) bool {
	for i := 0; i < len(chain); i++ {
		for j := i + 1; j < len(chain); j++ {
			a, b := chain[i], chain[j]
			if color[a] != color[b] {
				continue
			}
			if !board.IsBuddy(a.Row, a.Col, b.Row, b.Col) {
				continue
			}
			falseColor := color[a]
			var changes []change
			for _, p := range chain {
				if color[p] == falseColor {
					continue
				}
				c := g.GetCell(p.Row, p.Col)
				if c.IsSolved() {
					continue
				}
				for v := 1; v <= 9; v++ {
					if v != val {
						c.ExcludeCandidate(v)
					}
				}
				c.SetValue(val)
				g.SetCell(p.Row, p.Col, c)
				g.CrossHatch(p.Row, p.Col)
				changes = append(changes, change{p.Row, p.Col, val})
			}
			if len(changes) == 0 {
				continue
			}
			logging.Log(logging.Info, "simple color %d contradiction (two same-colour cells see each other) ==> %s\n", val, formatChanges(changes))
			return true
		}
	}
	return false
}

// trySimpleColorElimination removes val from any uncoloured cell that
// buddies a cell of each colour.
func trySimpleColorElimination(g *board.Grid, val int, chain []board.Position, color map[board.Position]int) bool {
	var changes []change
	for _, p := range board.AllCellPositions() {
		if containsPos(chain, p) {
			continue
		}
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() || !c.IsCandidate(val) {
			continue
		}
		seesOne, seesTwo := false, false
		for _, q := range chain {
			if !board.IsBuddy(p.Row, p.Col, q.Row, q.Col) {
				continue
			}
			if color[q] == 1 {
				seesOne = true
			} else {
				seesTwo = true
			}
		}
		if seesOne && seesTwo {
			c.ExcludeCandidate(val)
			g.SetCell(p.Row, p.Col, c)
			changes = append(changes, change{p.Row, p.Col, val})
		}
	}
	if len(changes) == 0 {
		return false
	}
	logging.Log(logging.Info, "simple color %d elimination (sees both colours) ==> %s\n", val, formatChanges(changes))
	return true
}

// trySimpleColorSeesHouse finds a colour whose single cell in some
// house buddies every other candidate of val in that house, forcing
// that colour false.
//
// Same stronger-than-literal step as trySimpleColorContradiction: the
// true colour's cells are solved to val directly instead of merely
// confirming val among their candidates.
func trySimpleColorSeesHouse(g *board.Grid, val int, chain []board.Position, color map[board.Position]int) bool {
	for colorToTest := 1; colorToTest <= 2; colorToTest++ {
		for houseIdx := 0; houseIdx < 9; houseIdx++ {
			for _, positions := range [][9]board.Position{board.RowPositions(houseIdx), board.ColPositions(houseIdx), board.BoxPositions(houseIdx)} {
				if !colorSeesAllOtherCandidatesInHouse(g, val, chain, color, colorToTest, positions) {
					continue
				}
				falseColor := colorToTest
				trueColor := 1
				if falseColor == 1 {
					trueColor = 2
				}
				var changes []change
				for _, p := range chain {
					if color[p] != trueColor {
						continue
					}
					c := g.GetCell(p.Row, p.Col)
					if c.IsSolved() {
						continue
					}
					for v := 1; v <= 9; v++ {
						if v != val {
							c.ExcludeCandidate(v)
						}
					}
					c.SetValue(val)
					g.SetCell(p.Row, p.Col, c)
					g.CrossHatch(p.Row, p.Col)
					changes = append(changes, change{p.Row, p.Col, val})
				}
				if len(changes) > 0 {
					logging.Log(logging.Info, "simple color %d (colour sees all candidates in a house) ==> %s\n", val, formatChanges(changes))
					return true
				}
			}
		}
	}
	return false
}

func colorSeesAllOtherCandidatesInHouse(g *board.Grid, val int, chain []board.Position, color map[board.Position]int, testColor int, positions [9]board.Position) bool {
	var testCell board.Position
	found := false
	for _, p := range chain {
		if color[p] != testColor {
			continue
		}
		for _, q := range positions {
			if q == p {
				found = true
				testCell = p
			}
		}
	}
	if !found {
		return false
	}
	sawOther := false
	for _, q := range positions {
		if q == testCell {
			continue
		}
		c := g.GetCell(q.Row, q.Col)
		if c.IsSolved() || !c.IsCandidate(val) {
			continue
		}
		sawOther = true
		if !board.IsBuddy(q.Row, q.Col, testCell.Row, testCell.Col) {
			return false
		}
	}
	return sawOther
}

// MultiColor links two independent conjugate chains for the same value
// and eliminates where either cross-chain pattern holds: a cell of one
// chain (of either colour) that buddies both colours of the other chain
// loses val itself; or a cell of chain A and a cell of chain B with the
// same colour number buddy each other, and val is removed from every
// cell that buddies both the last chain-A cell and the last chain-B
// cell (in chain order) of the other colour number.
func MultiColor(g *board.Grid) bool {
	logging.Log(logging.Trace, "searching for multi-colour chains\n")

	for val := 1; val <= 9; val++ {
		graph := buildColorGraph(g, val)
		for i := 0; i < len(graph.chains); i++ {
			for j := i + 1; j < len(graph.chains); j++ {
				if tryMultiColorPair(g, val, graph.chains[i], graph.chains[j], graph.color) {
					return true
				}
			}
		}
	}
	return false
}

func tryMultiColorPair(g *board.Grid, val int, chainA, chainB []board.Position, color map[board.Position]int) bool {
	if tryMultiColorCellSeesChain(g, val, chainA, chainB, color) {
		return true
	}
	if tryMultiColorCellSeesChain(g, val, chainB, chainA, color) {
		return true
	}
	return tryMultiColorCrossLink(g, val, chainA, chainB, color)
}

// tryMultiColorCellSeesChain eliminates val from a chainA cell that
// buddies both colours of chainB.
func tryMultiColorCellSeesChain(g *board.Grid, val int, chainA, chainB []board.Position, color map[board.Position]int) bool {
	for _, p := range chainA {
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() || !c.IsCandidate(val) {
			continue
		}
		seesOne, seesTwo := false, false
		for _, q := range chainB {
			if !board.IsBuddy(p.Row, p.Col, q.Row, q.Col) {
				continue
			}
			if color[q] == 1 {
				seesOne = true
			} else {
				seesTwo = true
			}
		}
		if seesOne && seesTwo {
			c.ExcludeCandidate(val)
			g.SetCell(p.Row, p.Col, c)
			logging.Log(logging.Info, "multi color %d (cell sees both colours of second chain) ==> %s\n", val, change{p.Row, p.Col, val}.String())
			return true
		}
	}
	return false
}

// tryMultiColorCrossLink finds two same-coloured cells, one per chain,
// that buddy each other, forcing the opposite colour of each chain, and
// eliminates val from any cell that buddies both survivors.
func tryMultiColorCrossLink(g *board.Grid, val int, chainA, chainB []board.Position, color map[board.Position]int) bool {
	for _, a := range chainA {
		for _, b := range chainB {
			if color[a] != color[b] {
				continue
			}
			if !board.IsBuddy(a.Row, a.Col, b.Row, b.Col) {
				continue
			}
			otherColor := 1
			if color[a] == 1 {
				otherColor = 2
			}
			var survivorsA, survivorsB board.Position
			for _, p := range chainA {
				if color[p] == otherColor {
					survivorsA = p
				}
			}
			for _, p := range chainB {
				if color[p] == otherColor {
					survivorsB = p
				}
			}
			var changes []change
			for _, p := range board.AllCellPositions() {
				if p == survivorsA || p == survivorsB {
					continue
				}
				c := g.GetCell(p.Row, p.Col)
				if c.IsSolved() || !c.IsCandidate(val) {
					continue
				}
				if board.IsBuddy(p.Row, p.Col, survivorsA.Row, survivorsA.Col) && board.IsBuddy(p.Row, p.Col, survivorsB.Row, survivorsB.Col) {
					c.ExcludeCandidate(val)
					g.SetCell(p.Row, p.Col, c)
					changes = append(changes, change{p.Row, p.Col, val})
				}
			}
			if len(changes) == 0 {
				continue
			}
			logging.Log(logging.Info, "multi color %d (chains linked, opposite colours forced) ==> %s\n", val, formatChanges(changes))
			return true
		}
	}
	return false
}
