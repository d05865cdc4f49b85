// SPDX-License-Identifier: MIT

package transport

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtransport/grid"
)

// noSecondMin stands in for the second-smallest cost of a line with a single
// active cell, so that line gets the largest possible penalty.
const noSecondMin = math.MaxInt

// candidate is the best line found by one penalty scan.
//   - row, col: target cell (the line index plus its cheapest active cross index).
//   - minCost:  the cheapest active cost on that line.
//   - penalty:  second-smallest minus smallest active cost.
type candidate struct {
	row, col int
	minCost  int
	penalty  int
	ok       bool
}

// Vogel builds an allocation with Vogel's Approximation Method.
//
// Iteration:
//  1. Row scan and column scan run concurrently over the same read-only done
//     flags; each returns its largest-penalty line and that line's cheapest
//     active cell.
//  2. The larger penalty wins. Equal penalties go to the smaller minimum cost,
//     then to the row candidate.
//  3. min(remaining supply, remaining demand) is shipped through the cell.
//
// Contract: p must pass Validate. ctx is checked once per iteration.
// Errors: ErrNotBalanced, ErrNotApplicable, ErrStalled, ctx.Err().
// Complexity: O((m+n)·m·n) time, O(m·n) memory.
func Vogel(ctx context.Context, p *Problem) (*grid.Dense, error) {
	s, err := vogel(ctx, p, false, nil)
	if err != nil {
		return nil, err
	}

	return s.result, nil
}

func vogel(ctx context.Context, p *Problem, sequential bool, onStep func(Step)) (*state, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var (
		s     = newState(p, VogelMethod, onStep)
		costs = p.CostRows()
	)

	for s.left > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rowBest, colBest := scanBoth(costs, s.rowDone, s.colDone, sequential)
		cell, ok := pickCandidate(rowBest, colBest)
		if !ok {
			return nil, ErrStalled
		}
		if _, err := s.allocate(cell.row, cell.col); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// scanBoth runs the row and column scans and joins them. Neither scan writes
// shared state, and the done flags are not touched until both return.
func scanBoth(costs [][]int, rowDone, colDone []bool, sequential bool) (rowBest, colBest candidate) {
	if sequential {
		return scanRows(costs, rowDone, colDone), scanCols(costs, rowDone, colDone)
	}

	var g errgroup.Group
	g.Go(func() error {
		rowBest = scanRows(costs, rowDone, colDone)
		return nil
	})
	g.Go(func() error {
		colBest = scanCols(costs, rowDone, colDone)
		return nil
	})
	_ = g.Wait()

	return rowBest, colBest
}

// pickCandidate applies the selection and tie-break rule.
func pickCandidate(rowBest, colBest candidate) (candidate, bool) {
	switch {
	case !rowBest.ok && !colBest.ok:
		return candidate{}, false
	case !colBest.ok:
		return rowBest, true
	case !rowBest.ok:
		return colBest, true
	case rowBest.penalty > colBest.penalty:
		return rowBest, true
	case colBest.penalty > rowBest.penalty:
		return colBest, true
	case colBest.minCost < rowBest.minCost:
		return colBest, true
	default:
		return rowBest, true
	}
}

// scanRows returns the active row with the strictly largest penalty
// (first such row in index order).
func scanRows(costs [][]int, rowDone, colDone []bool) candidate {
	best := candidate{penalty: math.MinInt}
	var i int
	for i = range rowDone {
		if rowDone[i] {
			continue
		}
		pen, minCost, at := linePenalty(len(colDone), colDone, func(k int) int { return costs[i][k] })
		if at < 0 {
			continue
		}
		if pen > best.penalty {
			best = candidate{row: i, col: at, minCost: minCost, penalty: pen, ok: true}
		}
	}

	return best
}

// scanCols mirrors scanRows over columns.
func scanCols(costs [][]int, rowDone, colDone []bool) candidate {
	best := candidate{penalty: math.MinInt}
	var j int
	for j = range colDone {
		if colDone[j] {
			continue
		}
		pen, minCost, at := linePenalty(len(rowDone), rowDone, func(k int) int { return costs[k][j] })
		if at < 0 {
			continue
		}
		if pen > best.penalty {
			best = candidate{row: at, col: j, minCost: minCost, penalty: pen, ok: true}
		}
	}

	return best
}

// linePenalty scans one row or column. at is the index of the first cheapest
// active cell, or -1 when the line has no active cell.
func linePenalty(n int, done []bool, costAt func(k int) int) (penalty, min1, at int) {
	min1, at = noSecondMin, -1
	min2 := noSecondMin
	var k, c int
	for k = 0; k < n; k++ {
		if done[k] {
			continue
		}
		c = costAt(k)
		if c < min1 {
			min2 = min1
			min1 = c
			at = k
		} else if c < min2 {
			min2 = c
		}
	}
	if at < 0 {
		return 0, 0, -1
	}

	return min2 - min1, min1, at
}
