package technique

import (
	"sort"

	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/pkg/logging"
	"golang.org/x/exp/maps"
)

// coloredCandidate is one (cell, value) pair in a 3D colouring chain.
type coloredCandidate struct {
	pos board.Position
	val int
}

// medusaGraph links coloured candidates two ways: bivalue cells link
// their two candidates (same cell, opposite colour), and conjugate
// pairs for a value link across cells (different cell, opposite
// colour) — the same linking MultiColor uses per-value, generalised
// across every value at once.
type medusaGraph struct {
	color map[coloredCandidate]int
	chain []coloredCandidate
}

func buildMedusaGraphs(g *board.Grid) []*medusaGraph {
	links := map[coloredCandidate][]coloredCandidate{}

	addLink := func(a, b coloredCandidate) {
		links[a] = append(links[a], b)
		links[b] = append(links[b], a)
	}

	for _, p := range board.AllCellPositions() {
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() || c.NumCandidates() != 2 {
			continue
		}
		vals := c.Candidates().ToSlice()
		addLink(coloredCandidate{p, vals[0]}, coloredCandidate{p, vals[1]})
	}

	for val := 1; val <= 9; val++ {
		for _, positions := range allHousePositions() {
			var open []board.Position
			for _, p := range positions {
				c := g.GetCell(p.Row, p.Col)
				if !c.IsSolved() && c.IsCandidate(val) {
					open = append(open, p)
				}
			}
			if len(open) == 2 {
				addLink(coloredCandidate{open[0], val}, coloredCandidate{open[1], val})
			}
		}
	}

	color := map[coloredCandidate]int{}
	var graphs []*medusaGraph

	// fixed iteration order: which component is found first, and which
	// side is coloured "one", must not depend on Go's randomised map
	// iteration order (§8 determinism).
	candidates := maps.Keys(links)
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.pos != b.pos {
			return a.pos.Less(b.pos)
		}
		return a.val < b.val
	})

	for _, cc := range candidates {
		if _, done := color[cc]; done {
			continue
		}
		one, two := colorMedusaComponent(cc, links, color)
		chain := append(append([]coloredCandidate{}, one...), two...)
		graphs = append(graphs, &medusaGraph{color: color, chain: chain})
	}
	return graphs
}

func allHousePositions() [][9]board.Position {
	var out [][9]board.Position
	for i := 0; i < 9; i++ {
		out = append(out, board.RowPositions(i), board.ColPositions(i), board.BoxPositions(i))
	}
	return out
}

func colorMedusaComponent(start coloredCandidate, links map[coloredCandidate][]coloredCandidate, color map[coloredCandidate]int) (one, two []coloredCandidate) {
	color[start] = 1
	one = append(one, start)
	queue := []coloredCandidate{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := 2
		if color[cur] == 2 {
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

// MedusaColor runs the four 3D-colouring elimination rules over every
// bivalue/conjugate chain in the grid: two same-coloured candidates in
// one cell (colour is false), two same-coloured candidates of the same
// value sharing a house (colour is false), a candidate cell seeing
// opposite colours of the same value (eliminate that candidate), and an
// uncoloured candidate whose cell or value matches one colour while it
// buddies a same-value occurrence of the other (eliminate it).
func MedusaColor(g *board.Grid) bool {
	logging.Log(logging.Trace, "searching for 3d (medusa) colouring chains\n")

	for _, graph := range buildMedusaGraphs(g) {
		if len(graph.chain) < 4 {
			continue
		}
		if tryMedusaTwinCellContradiction(g, graph) {
			return true
		}
		if tryMedusaTwinHouseContradiction(g, graph) {
			return true
		}
		if tryMedusaSeesOppositeColors(g, graph) {
			return true
		}
		if tryMedusaCellMatchesColor(g, graph) {
			return true
		}
	}
	return false
}

// tryMedusaTwinCellContradiction solves the opposite colour when two
// same-coloured candidates share a cell.
func tryMedusaTwinCellContradiction(g *board.Grid, graph *medusaGraph) bool {
	for i := 0; i < len(graph.chain); i++ {
		for j := i + 1; j < len(graph.chain); j++ {
			a, b := graph.chain[i], graph.chain[j]
			if a.pos != b.pos || a.val == b.val {
				continue
			}
			if graph.color[a] != graph.color[b] {
				continue
			}
			return applyMedusaFalseColor(g, graph, graph.color[a])
		}
	}
	return false
}

// tryMedusaTwinHouseContradiction solves the opposite colour when two
// same-coloured candidates of the same value share a house.
func tryMedusaTwinHouseContradiction(g *board.Grid, graph *medusaGraph) bool {
	for i := 0; i < len(graph.chain); i++ {
		for j := i + 1; j < len(graph.chain); j++ {
			a, b := graph.chain[i], graph.chain[j]
			if a.val != b.val || a.pos == b.pos {
				continue
			}
			if graph.color[a] != graph.color[b] {
				continue
			}
			if !board.IsBuddy(a.pos.Row, a.pos.Col, b.pos.Row, b.pos.Col) {
				continue
			}
			return applyMedusaFalseColor(g, graph, graph.color[a])
		}
	}
	return false
}

// applyMedusaFalseColor solves every cell of the true colour to its
// chain value once the opposite colour is proven false.
//
// Same stronger-than-literal step as the simple-colouring contradictions
// in coloring.go: the true colour's cells are solved outright rather
// than only having every other candidate eliminated. A bivalue/conjugate
// chain makes the two steps equivalent, but the observable per-step
// change is "solved to val" rather than "val confirmed, rest untouched".
func applyMedusaFalseColor(g *board.Grid, graph *medusaGraph, falseColor int) bool {
	trueColor := 1
	if falseColor == 1 {
		trueColor = 2
	}
	var changes []change
	for _, cc := range graph.chain {
		if graph.color[cc] != trueColor {
			continue
		}
		c := g.GetCell(cc.pos.Row, cc.pos.Col)
		if c.IsSolved() || !c.IsCandidate(cc.val) {
			continue
		}
		for v := 1; v <= 9; v++ {
			if v != cc.val {
				c.ExcludeCandidate(v)
			}
		}
		c.SetValue(cc.val)
		g.SetCell(cc.pos.Row, cc.pos.Col, c)
		g.CrossHatch(cc.pos.Row, cc.pos.Col)
		changes = append(changes, change{cc.pos.Row, cc.pos.Col, cc.val})
	}
	if len(changes) == 0 {
		return false
	}
	logging.Log(logging.Info, "3d medusa contradiction ==> %s\n", formatChanges(changes))
	return true
}

// tryMedusaSeesOppositeColors eliminates a candidate that buddies both
// a colour-1 and a colour-2 occurrence of its value.
func tryMedusaSeesOppositeColors(g *board.Grid, graph *medusaGraph) bool {
	var changes []change
	for _, p := range board.AllCellPositions() {
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() {
			continue
		}
		for _, v := range c.Candidates().ToSlice() {
			cc := coloredCandidate{p, v}
			if _, in := graph.color[cc]; in {
				continue
			}
			seesOne, seesTwo := false, false
			for _, other := range graph.chain {
				if other.val != v {
					continue
				}
				if !board.IsBuddy(p.Row, p.Col, other.pos.Row, other.pos.Col) {
					continue
				}
				if graph.color[other] == 1 {
					seesOne = true
				} else {
					seesTwo = true
				}
			}
			if seesOne && seesTwo {
				c.ExcludeCandidate(v)
				changes = append(changes, change{p.Row, p.Col, v})
			}
		}
		if len(changes) > 0 {
			g.SetCell(p.Row, p.Col, c)
			logging.Log(logging.Info, "3d medusa (candidate sees both colours) ==> %s\n", formatChanges(changes))
			return true
		}
	}
	return false
}

// tryMedusaCellMatchesColor eliminates (p,v) when p already holds a
// coloured candidate of colour X and (p,v) buddies an occurrence of v
// elsewhere coloured the other colour.
func tryMedusaCellMatchesColor(g *board.Grid, graph *medusaGraph) bool {
	cellColor := map[board.Position]int{}
	for _, cc := range graph.chain {
		cellColor[cc.pos] = graph.color[cc]
	}

	var changes []change
	for _, p := range board.AllCellPositions() {
		ownColor, hasOwnColor := cellColor[p]
		if !hasOwnColor {
			continue
		}
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() {
			continue
		}
		for _, v := range c.Candidates().ToSlice() {
			if _, in := graph.color[coloredCandidate{p, v}]; in {
				continue
			}
			for _, other := range graph.chain {
				if other.val != v || other.pos == p {
					continue
				}
				if graph.color[other] == ownColor {
					continue
				}
				if !board.IsBuddy(p.Row, p.Col, other.pos.Row, other.pos.Col) {
					continue
				}
				c.ExcludeCandidate(v)
				changes = append(changes, change{p.Row, p.Col, v})
				break
			}
		}
		if len(changes) > 0 {
			g.SetCell(p.Row, p.Col, c)
			logging.Log(logging.Info, "3d medusa (cell colour matches buddy candidate) ==> %s\n", formatChanges(changes))
			return true
		}
	}
	return false
}
