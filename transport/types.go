// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtransport/grid"
)

var (
	// ErrNotBalanced is returned when total supply differs from total demand.
	ErrNotBalanced = errors.New("transport: the problem is not balanced")

	// ErrNotApplicable is returned when the cost matrix holds a negative entry.
	ErrNotApplicable = errors.New("transport: the method is not applicable")

	// ErrDimensionMismatch is returned when cost rows/cols do not match
	// len(supply)/len(demand), or label counts do not match.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrNegativeQuantity is returned for a negative supply or demand entry.
	ErrNegativeQuantity = errors.New("transport: negative supply or demand")

	// ErrEmptyProblem is returned when there are no sources or no destinations.
	ErrEmptyProblem = errors.New("transport: empty problem")

	// ErrUnsupportedMethod is returned for an unknown Method.
	ErrUnsupportedMethod = errors.New("transport: unsupported method")

	// ErrInfeasible is returned when an allocation breaks a supply, demand or sign constraint.
	ErrInfeasible = errors.New("transport: infeasible allocation")

	// ErrStalled is returned when a solver finds no active cell while supply remains.
	ErrStalled = errors.New("transport: no active cell left")
)

// Method selects an allocation heuristic.
type Method int

const (
	// NorthWestCornerMethod sweeps from the top-left cell.
	NorthWestCornerMethod Method = iota
	// VogelMethod is Vogel's Approximation Method.
	VogelMethod
	// RussellMethod is Russell's Approximation Method (reciprocal weighting).
	RussellMethod
)

// Methods returns every Method in canonical reporting order.
func Methods() []Method {
	return []Method{NorthWestCornerMethod, VogelMethod, RussellMethod}
}

// String returns the human-readable method name.
func (m Method) String() string {
	switch m {
	case NorthWestCornerMethod:
		return "North-West Corner"
	case VogelMethod:
		return "Vogel's Approximation"
	case RussellMethod:
		return "Russell's Approximation"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Key returns the short identifier used in flags, files and metric labels.
func (m Method) Key() string {
	switch m {
	case NorthWestCornerMethod:
		return "nwc"
	case VogelMethod:
		return "vogel"
	case RussellMethod:
		return "russell"
	default:
		return "unknown"
	}
}

// ParseMethod maps a case-insensitive name to a Method.
// Accepted: nwc, north-west, northwest; vogel, vam; russell, ram.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nwc", "north-west", "northwest":
		return NorthWestCornerMethod, nil
	case "vogel", "vam":
		return VogelMethod, nil
	case "russell", "ram":
		return RussellMethod, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Step describes one allocation made by a solver.
type Step struct {
	Method   Method
	Index    int // 0-based step counter within one solve
	Row, Col int
	Quantity int
}

// Options configures Solve and SolveAll.
//   - Method: heuristic to run (Solve only).
//   - SkipValidation: do not run Validate before solving. Solvers still
//     enforce their own preconditions.
//   - Verify: check the allocation with CheckFeasible before returning.
//   - SequentialScans: run Vogel's row and column scans on the calling
//     goroutine instead of forking.
//   - OnStep: called synchronously after every allocation.
type Options struct {
	Method          Method
	SkipValidation  bool
	Verify          bool
	SequentialScans bool
	OnStep          func(Step)
}

// DefaultOptions returns Vogel with validation and verification enabled.
func DefaultOptions() Options {
	return Options{
		Method: VogelMethod,
		Verify: true,
	}
}

// Result is the outcome of one solver run.
type Result struct {
	// Method that produced the allocation.
	Method Method

	// Allocation has the same shape as the cost matrix.
	Allocation *grid.Dense

	// Cost is Σ allocation[i][j]·cost[i][j].
	Cost int

	// Steps is the number of allocation steps performed.
	Steps int

	// Basic is the number of non-zero cells in Allocation.
	Basic int
}
