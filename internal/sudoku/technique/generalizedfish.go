package technique

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/combin"
	"github.com/student/sudoku-engine/pkg/logging"
)

// fishShape controls which sector combinations FinnedFish, FrankenFish,
// and MutantFish are willing to consider; all three share the same
// vertex/fin/elimination geometry (§4.5).
type fishShape int

const (
	shapeFinned fishShape = iota
	shapeFranken
	shapeMutant
)

func (s fishShape) String() string {
	switch s {
	case shapeFinned:
		return "finned"
	case shapeFranken:
		return "franken"
	default:
		return "mutant"
	}
}

// FinnedFish allows fins within the basic row/column geometry.
func FinnedFish(order int) func(*board.Grid) bool { return generalFish(shapeFinned, order) }

// FrankenFish additionally allows box sectors, as long as each side
// (base or cover) mixes boxes with at most one line orientation.
func FrankenFish(order int) func(*board.Grid) bool { return generalFish(shapeFranken, order) }

// MutantFish allows any sector combination, forbidding only an
// identical sector appearing on both sides.
func MutantFish(order int) func(*board.Grid) bool { return generalFish(shapeMutant, order) }

type fishSector struct {
	label string
	kind  byte // 'r', 'c', or 'b'
	cells *bitset.BitSet
}

func cellBit(p board.Position) uint {
	return uint(p.Row*9 + p.Col)
}

func allSectors() []fishSector {
	sectors := make([]fishSector, 0, 27)
	for i := 0; i < 9; i++ {
		row := bitset.New(81)
		col := bitset.New(81)
		box := bitset.New(81)
		for j := 0; j < 9; j++ {
			row.Set(cellBit(board.Position{Row: i, Col: j}))
			col.Set(cellBit(board.Position{Row: j, Col: i}))
			box.Set(cellBit(board.CellInBox(i, j)))
		}
		sectors = append(sectors,
			fishSector{"r" + itoa(i+1), 'r', row},
			fishSector{"c" + itoa(i+1), 'c', col},
			fishSector{"b" + itoa(i+1), 'b', box},
		)
	}
	return sectors
}

func candidateMaskForValue(g *board.Grid, val int) *bitset.BitSet {
	mask := bitset.New(81)
	for _, p := range board.AllCellPositions() {
		c := g.GetCell(p.Row, p.Col)
		if !c.IsSolved() && c.IsCandidate(val) {
			mask.Set(cellBit(p))
		}
	}
	return mask
}

func generalFish(shape fishShape, order int) func(*board.Grid) bool {
	return func(g *board.Grid) bool {
		logging.Log(logging.Trace, "searching for %s fish of order %d\n", shape, order)
		for val := 1; val <= 9; val++ {
			if generalFishForValue(g, val, order, shape) {
				return true
			}
		}
		return false
	}
}

func generalFishForValue(g *board.Grid, val, order int, shape fishShape) bool {
	cand := candidateMaskForValue(g, val)
	sectors := allSectors()

	var eligible []int
	for i, s := range sectors {
		covered := s.cells.IntersectionCardinality(cand)
		if covered >= 1 {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) < order {
		return false
	}

	return combin.Each(eligible, order, func(baseIdx []int) bool {
		return combin.Each(eligible, order, func(coverIdx []int) bool {
			if sameSectorSet(baseIdx, coverIdx) {
				return false
			}
			if !shapeAllowed(shape, sectors, baseIdx, coverIdx) {
				return false
			}
			return tryFishCombo(g, val, sectors, baseIdx, coverIdx, shape, order)
		})
	})
}

func sameSectorSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !contains(b, x) {
			return false
		}
	}
	return true
}

func sideTypes(sectors []fishSector, idx []int) map[byte]bool {
	types := map[byte]bool{}
	for _, i := range idx {
		types[sectors[i].kind] = true
	}
	return types
}

func shapeAllowed(shape fishShape, sectors []fishSector, baseIdx, coverIdx []int) bool {
	switch shape {
	case shapeFinned:
		bt, ct := sideTypes(sectors, baseIdx), sideTypes(sectors, coverIdx)
		if bt['b'] || ct['b'] {
			return false
		}
		return (bt['r'] && !bt['c'] && ct['c'] && !ct['r']) ||
			(bt['c'] && !bt['r'] && ct['r'] && !ct['c'])
	case shapeFranken:
		return linesPerSide(sectors, baseIdx) <= 1 && linesPerSide(sectors, coverIdx) <= 1
	default: // mutant: forbid an identical sector on both sides
		for _, b := range baseIdx {
			if contains(coverIdx, b) {
				return false
			}
		}
		return true
	}
}

func linesPerSide(sectors []fishSector, idx []int) int {
	types := sideTypes(sectors, idx)
	n := 0
	if types['r'] {
		n++
	}
	if types['c'] {
		n++
	}
	return n
}

// tryFishCombo computes vertex(cell) = #bases - #covers for every
// candidate cell, derives fins (vertex>0) and eliminations (vertex<0,
// buddy of every fin), and applies them if any exist.
func tryFishCombo(g *board.Grid, val int, sectors []fishSector, baseIdx, coverIdx []int, shape fishShape, order int) bool {
	if !sectorsIntersect(sectors, baseIdx, coverIdx) {
		return false
	}

	cand := candidateMaskForValue(g, val)
	var fins []board.Position
	var elimCandidates []board.Position

	for _, p := range board.AllCellPositions() {
		if !cand.Test(cellBit(p)) {
			continue
		}
		vertex := 0
		for _, b := range baseIdx {
			if sectors[b].cells.Test(cellBit(p)) {
				vertex++
			}
		}
		for _, c := range coverIdx {
			if sectors[c].cells.Test(cellBit(p)) {
				vertex--
			}
		}
		switch {
		case vertex > 0:
			fins = append(fins, p)
		case vertex < 0:
			elimCandidates = append(elimCandidates, p)
		}
	}

	if shape == shapeFinned && len(fins) > 0 {
		// FinnedFish still requires the basic row/column geometry; a
		// positive vertex there just marks the exception cells fins
		// rather than disqualifying the pattern.
	}

	var changes []change
	for _, p := range elimCandidates {
		if !allBuddies(p, fins) {
			continue
		}
		c := g.GetCell(p.Row, p.Col)
		if c.ExcludeCandidate(val) {
			g.SetCell(p.Row, p.Col, c)
			changes = append(changes, change{p.Row, p.Col, val})
		}
	}

	if len(changes) == 0 {
		return false
	}

	logGeneralFish(shape, order, sectors, baseIdx, coverIdx, val, fins, changes)
	return true
}

func sectorsIntersect(sectors []fishSector, baseIdx, coverIdx []int) bool {
	for _, b := range baseIdx {
		for _, c := range coverIdx {
			if sectors[b].cells.IntersectionCardinality(sectors[c].cells) > 0 {
				return true
			}
		}
	}
	return false
}

func allBuddies(p board.Position, fins []board.Position) bool {
	for _, f := range fins {
		if !board.IsBuddy(p.Row, p.Col, f.Row, f.Col) {
			return false
		}
	}
	return true
}

func logGeneralFish(shape fishShape, order int, sectors []fishSector, baseIdx, coverIdx []int, val int, fins []board.Position, changes []change) {
	prefix := ""
	if len(fins) > 0 {
		prefix = "finned "
	}
	if shape != shapeFinned {
		prefix += shape.String() + " "
	} else if len(fins) == 0 {
		prefix += "basic "
	}

	base := sectorLabels(sectors, baseIdx)
	cover := sectorLabels(sectors, coverIdx)

	finsStr := ""
	if len(fins) > 0 {
		finsStr = ",fins=" + positionList(fins)
	}

	logging.Log(logging.Info, "%s%s %s\\%s=%d%s ==> %s\n",
		prefix, fishName(order), base, cover, val, finsStr, formatChanges(changes))
}

func sectorLabels(sectors []fishSector, idx []int) string {
	s := ""
	lastKind := byte(0)
	for _, si := range idx {
		sec := sectors[si]
		if sec.kind != lastKind {
			s += string(sec.kind)
			lastKind = sec.kind
		}
		s += sec.label[1:]
	}
	return s
}

func positionList(ps []board.Position) string {
	s := ""
	for i, p := range ps {
		if i > 0 {
			s += ","
		}
		s += cellRef(p.Row, p.Col)
	}
	return s
}
