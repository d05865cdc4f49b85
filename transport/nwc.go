// SPDX-License-Identifier: MIT

package transport

import "github.com/katalvlaran/lvtransport/grid"

// NorthWestCorner builds an allocation by sweeping from cell (0,0).
//
// Each step ships min(remaining supply[row], remaining demand[col]) through the
// cursor cell, then moves down when the row is exhausted and right otherwise.
// The sweep ends when the cursor leaves the grid; costs are never read.
//
// Contract: p must be balanced (ErrNotBalanced otherwise).
// Complexity: at most m+n−1 steps, O(m·n) for the result matrix.
func NorthWestCorner(p *Problem) (*grid.Dense, error) {
	s, err := northWestCorner(p, nil)
	if err != nil {
		return nil, err
	}

	return s.result, nil
}

func northWestCorner(p *Problem, onStep func(Step)) (*state, error) {
	if err := p.CheckBalanced(); err != nil {
		return nil, err
	}
	s := newState(p, NorthWestCornerMethod, onStep)

	var i, j int
	for i < p.Rows() && j < p.Cols() {
		if _, err := s.allocate(i, j); err != nil {
			return nil, err
		}
		if s.supply[i] == 0 {
			i++
		} else {
			j++
		}
	}

	return s, nil
}
