// SPDX-License-Identifier: MIT

package transport

import "fmt"

// Validate runs CheckBalanced and then CheckApplicable, returning the first
// failure. It never mutates p, so repeated calls yield the same verdict.
// Complexity: O(m·n).
func (p *Problem) Validate() error {
	if err := p.CheckBalanced(); err != nil {
		return err
	}

	return p.CheckApplicable()
}

// CheckBalanced returns ErrNotBalanced (wrapped with both totals) when
// Σ supply != Σ demand.
// Complexity: O(m + n).
func (p *Problem) CheckBalanced() error {
	s, d := p.TotalSupply(), p.TotalDemand()
	if s != d {
		return fmt.Errorf("%w: supply %d, demand %d", ErrNotBalanced, s, d)
	}

	return nil
}

// CheckApplicable returns ErrNotApplicable (wrapped with the first negative
// cell in row-major order) when any unit cost is negative.
// Complexity: O(m·n).
func (p *Problem) CheckApplicable() error {
	var err error
	p.cost.Do(func(i, j, v int) bool {
		if v < 0 {
			err = fmt.Errorf("%w: cost[%d][%d] = %d", ErrNotApplicable, i, j, v)
			return false
		}
		return true
	})

	return err
}
