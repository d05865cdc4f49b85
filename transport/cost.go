// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"

	"github.com/katalvlaran/lvtransport/grid"
)

// TotalCost returns Σ alloc[i][j]·cost[i][j].
// Errors: ErrDimensionMismatch when alloc and the cost matrix differ in shape.
// Complexity: O(m·n).
func TotalCost(p *Problem, alloc *grid.Dense) (int, error) {
	total, err := grid.HadamardSum(alloc, p.cost)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	return total, nil
}

// CheckFeasible verifies that alloc has the problem's shape, that its
// smallest entry is not negative, and that its row and column sums equal
// supply and demand. The first violation is returned wrapped in ErrInfeasible.
// Complexity: O(m·n).
func CheckFeasible(p *Problem, alloc *grid.Dense) error {
	if alloc == nil {
		return fmt.Errorf("%w: nil allocation", ErrInfeasible)
	}
	if r, c := alloc.Shape(); r != p.Rows() || c != p.Cols() {
		return fmt.Errorf("%w: allocation is %dx%d, problem is %dx%d",
			ErrInfeasible, r, c, p.Rows(), p.Cols())
	}
	if v, i, j := grid.Min(alloc); v < 0 {
		return fmt.Errorf("%w: allocation[%d][%d] = %d", ErrInfeasible, i, j, v)
	}

	for i, got := range grid.RowSums(alloc) {
		if got != p.supply[i] {
			return fmt.Errorf("%w: row %d ships %d, supply is %d", ErrInfeasible, i, got, p.supply[i])
		}
	}
	for j, got := range grid.ColSums(alloc) {
		if got != p.demand[j] {
			return fmt.Errorf("%w: column %d receives %d, demand is %d", ErrInfeasible, j, got, p.demand[j])
		}
	}

	return nil
}
