package technique

import (
	"github.com/student/sudoku-engine/internal/sudoku/board"
	"github.com/student/sudoku-engine/internal/sudoku/combin"
	"github.com/student/sudoku-engine/pkg/logging"
)

// BasicFish searches, for every value, for an order-sized set of rows
// (the base) whose candidate columns for that value lie in exactly
// `order` columns (the cover) — and then the row/column-swapped case.
// order 2 is x-wing, 3 swordfish, 4 jellyfish.
func BasicFish(order int) func(*board.Grid) bool {
	return func(g *board.Grid) bool {
		logging.Log(logging.Trace, "searching for %s\n", fishName(order))
		for val := 1; val <= 9; val++ {
			if basicFishForValue(g, val, order, true) {
				return true
			}
			if basicFishForValue(g, val, order, false) {
				return true
			}
		}
		return false
	}
}

func maxBasicFishOrder(g *board.Grid) int {
	solved := 0
	for _, p := range board.AllCellPositions() {
		if g.GetCell(p.Row, p.Col).IsSolved() {
			solved++
		}
	}
	return (9 - solved) / 2
}

// basicFishForValue tries rows as the base (rowBase=true) or columns as
// the base (rowBase=false).
func basicFishForValue(g *board.Grid, val, order int, rowBase bool) bool {
	if order > maxBasicFishOrder(g) {
		return false
	}

	var candidateLines []int
	for i := 0; i < 9; i++ {
		house := lineHouse(g, i, rowBase)
		n := countOpenForValue(house, val)
		if n >= 1 && n <= order {
			candidateLines = append(candidateLines, i)
		}
	}
	if len(candidateLines) < order {
		return false
	}

	return combin.Each(candidateLines, order, func(bases []int) bool {
		var coverMask board.Candidates
		for _, b := range bases {
			house := lineHouse(g, b, rowBase)
			for i := 0; i < 9; i++ {
				if house[i].IsCandidate(val) {
					coverMask = coverMask.Set(i + 1)
				}
			}
		}
		if coverMask.Count() != order {
			return false
		}
		covers := coverMask.ToSlice()
		for i := range covers {
			covers[i]--
		}

		var changes []change
		for _, cover := range covers {
			crossHouse := lineHouse(g, cover, !rowBase)
			for i := 0; i < 9; i++ {
				if contains(bases, i) {
					continue
				}
				c := crossHouse[i]
				if c.ExcludeCandidate(val) {
					crossHouse[i] = c
					if rowBase {
						changes = append(changes, change{i, cover, val})
					} else {
						changes = append(changes, change{cover, i, val})
					}
				}
			}
			writeLineHouse(g, cover, !rowBase, crossHouse)
		}

		if len(changes) == 0 {
			return false
		}

		logBasicFish(order, bases, covers, val, rowBase, changes)
		return true
	})
}

func lineHouse(g *board.Grid, i int, isRow bool) board.House {
	if isRow {
		return g.GetRow(i)
	}
	return g.GetCol(i)
}

func writeLineHouse(g *board.Grid, i int, isRow bool, h board.House) {
	if isRow {
		g.SetRow(h, i)
	} else {
		g.SetCol(h, i)
	}
}

func fishName(order int) string {
	switch order {
	case 2:
		return "x-wing"
	case 3:
		return "swordfish"
	case 4:
		return "jellyfish"
	case 5:
		return "squirmbag"
	case 6:
		return "whale"
	case 7:
		return "leviathan"
	default:
		return "fish"
	}
}

func logBasicFish(order int, bases, covers []int, val int, rowBase bool, changes []change) {
	basePrefix, coverPrefix := "r", "c"
	if !rowBase {
		basePrefix, coverPrefix = "c", "r"
	}

	baseStr := basePrefix
	for _, b := range bases {
		baseStr += itoa(b + 1)
	}
	coverStr := coverPrefix
	for _, c := range covers {
		coverStr += itoa(c + 1)
	}

	logging.Log(logging.Info, "%s %s/%s=%d ==> %s\n", fishName(order), baseStr, coverStr, val, formatChanges(changes))
}
