// SPDX-License-Identifier: MIT

// Package lvtransport computes initial basic feasible solutions of the
// balanced transportation problem: m sources with supplies, n destinations
// with demands and an m×n matrix of non-negative unit costs.
//
// Three heuristics are provided, each returning an m×n allocation whose row
// sums equal the supplies and whose column sums equal the demands:
//
//   - North-West Corner: sweeps from cell (0,0), ignores costs.
//   - Vogel's Approximation: allocates on the line with the largest penalty
//     (difference between its two smallest active costs).
//   - Russell's Approximation: allocates on the cell with the largest
//     weight 1/(c+1) relative to its row and column.
//
// Layout:
//
//	grid/            dense integer matrix used for costs and allocations
//	transport/       Problem, validation, the three solvers, Solve / SolveAll
//	catalog/         YAML problem sets and the built-in textbook cases
//	report/          plain, table (lipgloss) and JSON renderers
//	metrics/         Prometheus collectors for solver runs
//	runner/          validate → solve → report pipeline with zap logging
//	cmd/lvtransport  cobra CLI (solve, validate, catalog)
//
// Quick example (P1, three depots and four stores):
//
//	supply  [30 40 50]        NWC    cost 860
//	demand  [20 30 40 30]     Vogel  cost 620
//	                          Russell cost 620
//
// The result is a starting point for an optimality method such as MODI or
// stepping-stone; lvtransport does not iterate towards the optimum.
//
//	go get github.com/katalvlaran/lvtransport
package lvtransport
