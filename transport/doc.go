// SPDX-License-Identifier: MIT

// Package transport computes initial feasible solutions to the balanced
// transportation problem.
//
// A Problem holds supply at m sources, demand at n destinations and an m×n
// unit cost matrix. Every solver returns an m×n allocation whose row sums
// equal the supply and whose column sums equal the demand. The heuristics
// only build a starting basis; no stepping-stone or MODI improvement phase
// is performed.
//
// Solvers:
//
//   - NorthWestCorner - diagonal sweep from cell (0,0), ignores costs.
//
//   - Time:   O(m + n) steps.
//
//   - Result: at most m+n−1 non-zero cells.
//
//   - Vogel - Vogel's Approximation Method. Every iteration computes row and
//     column penalties (second-smallest minus smallest active cost) in two
//     goroutines joined by an errgroup, then serves the line with the largest
//     penalty at its cheapest active cell.
//
//   - Time:   O((m + n) · m · n).
//
//   - Ties:   equal penalties go to the smaller minimum cost, then to the row.
//
//   - Russell - ratio heuristic with weights w = 1/(cost+1). The active cell
//     maximising w/rowSum + w/colSum is served first.
//
//   - Time:   O((m + n) · m · n).
//
//   - Ties:   first cell in row-major order.
//
// # Validation
//
// A Problem is solvable only when it is balanced (Σ supply == Σ demand) and
// every cost is non-negative. CheckBalanced and CheckApplicable are pure and
// idempotent; Validate runs both in that order. NorthWestCorner only needs a
// balanced problem; the cost-aware solvers require both checks.
//
// # Dispatch
//
// Solve routes to a single Method under Options; SolveAll runs several methods
// on the same Problem independently. Options.OnStep observes each allocation.
//
// # Errors
//
//	ErrNotBalanced       - Σ supply != Σ demand.
//	ErrNotApplicable     - a negative unit cost.
//	ErrDimensionMismatch - cost shape does not match supply/demand.
//	ErrNegativeQuantity  - negative supply or demand.
//	ErrEmptyProblem      - no sources or no destinations.
//	ErrUnsupportedMethod - unknown Method.
//	ErrInfeasible        - an allocation violates a constraint.
//	ErrStalled           - a solver found no active cell while supply remained.
//
// Every solve owns its scratch state (remaining quantities, done flags and
// result), so concurrent solves of the same or different Problems are safe.
package transport
