// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvtransport/grid"
)

// Problem is an immutable snapshot of one transportation problem instance.
// Solvers never mutate it; accessors return copies.
type Problem struct {
	name         string
	supply       []int
	demand       []int
	cost         *grid.Dense
	sources      []string
	destinations []string
}

// ProblemOption customizes a Problem during NewProblem.
type ProblemOption func(*Problem)

// WithName attaches a display name used by reports and logs.
func WithName(name string) ProblemOption {
	return func(p *Problem) {
		p.name = name
	}
}

// WithSourceLabels overrides the default S1..Sm source labels.
// Panics on an empty label; the count is checked by NewProblem.
func WithSourceLabels(labels ...string) ProblemOption {
	mustNonEmptyLabels("WithSourceLabels", labels)
	cp := append([]string(nil), labels...)
	return func(p *Problem) {
		p.sources = cp
	}
}

// WithDestinationLabels overrides the default D1..Dn destination labels.
// Panics on an empty label; the count is checked by NewProblem.
func WithDestinationLabels(labels ...string) ProblemOption {
	mustNonEmptyLabels("WithDestinationLabels", labels)
	cp := append([]string(nil), labels...)
	return func(p *Problem) {
		p.destinations = cp
	}
}

func mustNonEmptyLabels(opt string, labels []string) {
	for _, l := range labels {
		if l == "" {
			panic("transport: " + opt + "(\"\")")
		}
	}
}

// NewProblem builds a Problem from literal supply, demand and cost values.
// Inputs are deep-copied.
//
// Contract:
//   - len(supply) ≥ 1 and len(demand) ≥ 1.
//   - cost is len(supply) × len(demand) with equal-length rows.
//   - supply and demand entries are non-negative.
//
// Balance and cost sign are NOT checked here; see Validate.
//
// Errors: ErrEmptyProblem, ErrDimensionMismatch, ErrNegativeQuantity.
// Complexity: O(m·n).
func NewProblem(supply, demand []int, cost [][]int, opts ...ProblemOption) (*Problem, error) {
	if len(supply) == 0 || len(demand) == 0 {
		return nil, ErrEmptyProblem
	}
	if len(cost) != len(supply) {
		return nil, fmt.Errorf("%w: %d cost rows for %d sources", ErrDimensionMismatch, len(cost), len(supply))
	}
	var i int
	for i = range cost {
		if len(cost[i]) != len(demand) {
			return nil, fmt.Errorf("%w: cost row %d has %d entries for %d destinations",
				ErrDimensionMismatch, i, len(cost[i]), len(demand))
		}
	}
	if err := checkNonNegative("supply", supply); err != nil {
		return nil, err
	}
	if err := checkNonNegative("demand", demand); err != nil {
		return nil, err
	}

	m, err := grid.FromRows(cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	p := &Problem{
		supply: append([]int(nil), supply...),
		demand: append([]int(nil), demand...),
		cost:   m,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.sources == nil {
		p.sources = defaultLabels("S", len(supply))
	} else if len(p.sources) != len(supply) {
		return nil, fmt.Errorf("%w: %d source labels for %d sources", ErrDimensionMismatch, len(p.sources), len(supply))
	}
	if p.destinations == nil {
		p.destinations = defaultLabels("D", len(demand))
	} else if len(p.destinations) != len(demand) {
		return nil, fmt.Errorf("%w: %d destination labels for %d destinations",
			ErrDimensionMismatch, len(p.destinations), len(demand))
	}

	return p, nil
}

// MustProblem is like NewProblem but panics on error. Intended for literals
// in tests and examples.
func MustProblem(supply, demand []int, cost [][]int, opts ...ProblemOption) *Problem {
	p, err := NewProblem(supply, demand, cost, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

func checkNonNegative(what string, xs []int) error {
	for i, x := range xs {
		if x < 0 {
			return fmt.Errorf("%w: %s[%d] = %d", ErrNegativeQuantity, what, i, x)
		}
	}

	return nil
}

func defaultLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}

// Name returns the display name (may be empty).
func (p *Problem) Name() string { return p.name }

// Rows returns the number of sources.
func (p *Problem) Rows() int { return len(p.supply) }

// Cols returns the number of destinations.
func (p *Problem) Cols() int { return len(p.demand) }

// Supply returns a copy of the supply vector.
func (p *Problem) Supply() []int { return append([]int(nil), p.supply...) }

// Demand returns a copy of the demand vector.
func (p *Problem) Demand() []int { return append([]int(nil), p.demand...) }

// Cost returns a copy of the cost matrix.
func (p *Problem) Cost() *grid.Dense { return p.cost.Clone() }

// CostRows returns the cost matrix as fresh [][]int rows.
func (p *Problem) CostRows() [][]int { return p.cost.ToRows() }

// CostAt returns the unit cost of route (i, j).
func (p *Problem) CostAt(i, j int) (int, error) { return p.cost.At(i, j) }

// SourceLabels returns a copy of the source labels.
func (p *Problem) SourceLabels() []string { return append([]string(nil), p.sources...) }

// DestinationLabels returns a copy of the destination labels.
func (p *Problem) DestinationLabels() []string { return append([]string(nil), p.destinations...) }

// TotalSupply returns Σ supply.
func (p *Problem) TotalSupply() int { return sum(p.supply) }

// TotalDemand returns Σ demand.
func (p *Problem) TotalDemand() int { return sum(p.demand) }

func sum(xs []int) int {
	var s int
	for _, x := range xs {
		s += x
	}

	return s
}
