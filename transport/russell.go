// SPDX-License-Identifier: MIT

package transport

import "github.com/katalvlaran/lvtransport/grid"

// Russell builds an allocation with a reciprocal-weight variant of Russell's
// Approximation Method.
//
// Iteration:
//  1. w[i][j] = 1/(cost[i][j]+1) for active cells, 0 for the rest.
//  2. rowSum[i] = Σ_k w[i][k], colSum[j] = Σ_k w[k][j].
//  3. The active cell with the strictly largest w/rowSum + w/colSum is served
//     (first in row-major order on ties).
//
// Weights are rebuilt from scratch every iteration.
//
// Contract: p must pass Validate.
// Errors: ErrNotBalanced, ErrNotApplicable, ErrStalled.
// Complexity: O((m+n)·m·n) time, O(m·n) memory.
func Russell(p *Problem) (*grid.Dense, error) {
	s, err := russell(p, nil)
	if err != nil {
		return nil, err
	}

	return s.result, nil
}

func russell(p *Problem, onStep func(Step)) (*state, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var (
		s     = newState(p, RussellMethod, onStep)
		costs = p.CostRows()
		w     = newWeights(p.Rows(), p.Cols())
	)

	for s.left > 0 {
		r, c, ok := w.next(costs, s.rowDone, s.colDone)
		if !ok {
			return nil, ErrStalled
		}
		if _, err := s.allocate(r, c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// weights holds the per-iteration buffers; reused across iterations of one solve.
type weights struct {
	w      [][]float64
	rowSum []float64
	colSum []float64
}

func newWeights(rows, cols int) *weights {
	w := make([][]float64, rows)
	for i := range w {
		w[i] = make([]float64, cols)
	}

	return &weights{w: w, rowSum: make([]float64, rows), colSum: make([]float64, cols)}
}

// next recomputes weights and sums and returns the cell with the largest ratio.
func (ws *weights) next(costs [][]int, rowDone, colDone []bool) (row, col int, ok bool) {
	var i, j int
	for i = range ws.w {
		for j = range ws.w[i] {
			if rowDone[i] || colDone[j] {
				ws.w[i][j] = 0
				continue
			}
			ws.w[i][j] = 1.0 / (float64(costs[i][j]) + 1.0)
		}
	}

	for i = range ws.rowSum {
		ws.rowSum[i] = 0
		for j = range ws.colSum {
			ws.rowSum[i] += ws.w[i][j]
		}
	}
	for j = range ws.colSum {
		ws.colSum[j] = 0
		for i = range ws.rowSum {
			ws.colSum[j] += ws.w[i][j]
		}
	}

	best := -1.0
	var ratio float64
	for i = range ws.w {
		if rowDone[i] {
			continue
		}
		for j = range ws.w[i] {
			if colDone[j] {
				continue
			}
			ratio = ws.w[i][j]/ws.rowSum[i] + ws.w[i][j]/ws.colSum[j]
			if ratio > best {
				best, row, col, ok = ratio, i, j, true
			}
		}
	}

	return row, col, ok
}
