// SPDX-License-Identifier: MIT

package transport

import "github.com/katalvlaran/lvtransport/grid"

// state is the scratch owned by exactly one solve call.
type state struct {
	method  Method
	supply  []int // remaining supply per row
	demand  []int // remaining demand per column
	rowDone []bool
	colDone []bool
	result  *grid.Dense
	left    int // Σ remaining supply
	steps   int
	onStep  func(Step)
}

func newState(p *Problem, method Method, onStep func(Step)) *state {
	// NewDense cannot fail: NewProblem guarantees m, n ≥ 1.
	res, _ := grid.NewDense(p.Rows(), p.Cols())

	return &state{
		method:  method,
		supply:  p.Supply(),
		demand:  p.Demand(),
		rowDone: make([]bool, p.Rows()),
		colDone: make([]bool, p.Cols()),
		result:  res,
		left:    p.TotalSupply(),
		onStep:  onStep,
	}
}

// allocate ships min(supply[r], demand[c]) through (r, c) and marks the row
// and/or column done when its remaining quantity reaches zero.
func (s *state) allocate(r, c int) (int, error) {
	q := min(s.supply[r], s.demand[c])
	if err := s.result.Set(r, c, q); err != nil {
		return 0, err
	}

	s.demand[c] -= q
	if s.demand[c] == 0 {
		s.colDone[c] = true
	}
	s.supply[r] -= q
	if s.supply[r] == 0 {
		s.rowDone[r] = true
	}
	s.left -= q

	if s.onStep != nil {
		s.onStep(Step{Method: s.method, Index: s.steps, Row: r, Col: c, Quantity: q})
	}
	s.steps++

	return q, nil
}
