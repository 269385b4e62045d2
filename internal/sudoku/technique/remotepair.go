package technique

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/pkg/logging"
)

// RemotePair follows chains of bivalue cells sharing the same pair
// {x,y}, linked buddy-to-buddy, and eliminates from any cell that
// buddies two chain cells an odd distance apart (distance >= 3): those
// two must hold opposite values of the pair, so anything both can see
// cannot be either.
func RemotePair(g *board.Grid) bool {
	logging.Log(logging.Trace, "searching for remote pairs\n")

	pairCells := bivalueCellsByPair(g)
	visited := map[board.Position]bool{}

	for pair, cells := range pairCells {
		for _, start := range cells {
			if visited[start] {
				continue
			}
			chain := buildChain(cells, start)
			for _, p := range chain {
				visited[p] = true
			}
			if len(chain) < 4 {
				continue
			}
			if tryRemotePairChain(g, pair, chain) {
				return true
			}
		}
	}
	return false
}

// bivalueCellsByPair groups every still-bivalue cell by its candidate
// pair.
func bivalueCellsByPair(g *board.Grid) map[[2]int][]board.Position {
	out := map[[2]int][]board.Position{}
	for _, p := range board.AllCellPositions() {
		c := g.GetCell(p.Row, p.Col)
		if c.IsSolved() || c.NumCandidates() != 2 {
			continue
		}
		vals := c.Candidates().ToSlice()
		out[[2]int{vals[0], vals[1]}] = append(out[[2]int{vals[0], vals[1]}], p)
	}
	return out
}

// buildChain performs a breadth-first walk over cells holding pair,
// linking any two cells that buddy each other, and returns the
// connected component containing start in discovery order.
func buildChain(cells []board.Position, start board.Position) []board.Position {
	seen := map[board.Position]bool{start: true}
	queue := []board.Position{start}
	order := []board.Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, other := range cells {
			if seen[other] {
				continue
			}
			if board.IsBuddy(cur.Row, cur.Col, other.Row, other.Col) {
				seen[other] = true
				queue = append(queue, other)
				order = append(order, other)
			}
		}
	}
	return order
}

// tryRemotePairChain eliminates pair values from any outside cell that
// buddies two chain cells an odd distance apart: those two must hold
// opposite values of the pair, so neither value survives a cell that
// sees both.
func tryRemotePairChain(g *board.Grid, pair [2]int, chain []board.Position) bool {
	var changes []change
	seen := map[board.Position]bool{}

	for i := 0; i < len(chain); i++ {
		dist := map[board.Position]int{chain[i]: 0}
		queue := []board.Position{chain[i]}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, other := range chain {
				if _, ok := dist[other]; !ok && board.IsBuddy(cur.Row, cur.Col, other.Row, other.Col) {
					dist[other] = dist[cur] + 1
					queue = append(queue, other)
				}
			}
		}
		for j := i + 1; j < len(chain); j++ {
			if d := dist[chain[j]]; d%2 == 0 || d < 3 {
				continue
			}
			a, b := chain[i], chain[j]
			for _, p := range board.AllCellPositions() {
				if p == a || p == b || seen[p] {
					continue
				}
				if !board.IsBuddy(p.Row, p.Col, a.Row, a.Col) || !board.IsBuddy(p.Row, p.Col, b.Row, b.Col) {
					continue
				}
				c := g.GetCell(p.Row, p.Col)
				changed := false
				if c.ExcludeCandidate(pair[0]) {
					changes = append(changes, change{p.Row, p.Col, pair[0]})
					changed = true
				}
				if c.ExcludeCandidate(pair[1]) {
					changes = append(changes, change{p.Row, p.Col, pair[1]})
					changed = true
				}
				if changed {
					g.SetCell(p.Row, p.Col, c)
					seen[p] = true
				}
			}
		}
	}

	if len(changes) == 0 {
		return false
	}

	logRemotePair(chain, changes)
	return true
}

func logRemotePair(chain []board.Position, changes []change) {
	chainStr := ""
	for i, p := range chain {
		if i > 0 {
			chainStr += "-"
		}
		chainStr += cellRef(p.Row, p.Col)
	}
	logging.Log(logging.Info, "remote pairs %s ==> %s\n", chainStr, formatChanges(changes))
}
