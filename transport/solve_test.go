// SPDX-License-Identifier: MIT

package transport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransport/grid"
	"github.com/katalvlaran/lvtransport/transport"
)

func TestSolve_ResultFields(t *testing.T) {
	tc := textbook[0]
	p := transport.MustProblem(tc.supply, tc.demand, tc.cost)

	opts := transport.DefaultOptions()
	opts.Method = transport.NorthWestCornerMethod
	res, err := transport.Solve(context.Background(), p, opts)
	require.NoError(t, err)

	assert.Equal(t, transport.NorthWestCornerMethod, res.Method)
	assert.Equal(t, 860, res.Cost)
	assert.Equal(t, 6, res.Steps)
	assert.Equal(t, 6, res.Basic)
}

func TestSolve_OnStep(t *testing.T) {
	tc := textbook[0]
	p := transport.MustProblem(tc.supply, tc.demand, tc.cost)

	var steps []transport.Step
	opts := transport.DefaultOptions()
	opts.Method = transport.NorthWestCornerMethod
	opts.OnStep = func(s transport.Step) { steps = append(steps, s) }

	_, err := transport.Solve(context.Background(), p, opts)
	require.NoError(t, err)
	require.Equal(t, []transport.Step{
		{Method: transport.NorthWestCornerMethod, Index: 0, Row: 0, Col: 0, Quantity: 20},
		{Method: transport.NorthWestCornerMethod, Index: 1, Row: 0, Col: 1, Quantity: 10},
		{Method: transport.NorthWestCornerMethod, Index: 2, Row: 1, Col: 1, Quantity: 20},
		{Method: transport.NorthWestCornerMethod, Index: 3, Row: 1, Col: 2, Quantity: 20},
		{Method: transport.NorthWestCornerMethod, Index: 4, Row: 2, Col: 2, Quantity: 20},
		{Method: transport.NorthWestCornerMethod, Index: 5, Row: 2, Col: 3, Quantity: 30},
	}, steps)
}

func TestSolve_SequentialScansSameResult(t *testing.T) {
	for _, tc := range textbook {
		p := transport.MustProblem(tc.supply, tc.demand, tc.cost)
		opts := transport.DefaultOptions()
		par, err := transport.Solve(context.Background(), p, opts)
		require.NoError(t, err)

		opts.SequentialScans = true
		seq, err := transport.Solve(context.Background(), p, opts)
		require.NoError(t, err)
		require.True(t, par.Allocation.Equal(seq.Allocation), tc.name)
	}
}

func TestSolve_UnsupportedMethod(t *testing.T) {
	p := transport.MustProblem([]int{1}, []int{1}, [][]int{{1}})
	opts := transport.DefaultOptions()
	opts.Method = transport.Method(42)
	_, err := transport.Solve(context.Background(), p, opts)
	require.ErrorIs(t, err, transport.ErrUnsupportedMethod)
	require.Contains(t, err.Error(), "Method(42)")
}

func TestSolve_CanceledContext(t *testing.T) {
	tc := textbook[0]
	p := transport.MustProblem(tc.supply, tc.demand, tc.cost)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := transport.Solve(ctx, p, transport.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)

	_, err = transport.Vogel(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_NilProblem(t *testing.T) {
	_, err := transport.Solve(context.Background(), nil, transport.DefaultOptions())
	require.ErrorIs(t, err, transport.ErrEmptyProblem)
	_, err = transport.SolveAll(context.Background(), nil, transport.DefaultOptions())
	require.ErrorIs(t, err, transport.ErrEmptyProblem)
}

func TestSolve_SkipValidationStillGuardsSolvers(t *testing.T) {
	p := transport.MustProblem([]int{2}, []int{2}, [][]int{{-1}})
	opts := transport.DefaultOptions()
	opts.SkipValidation = true

	// NWC does not read costs, so only balance matters to it.
	opts.Method = transport.NorthWestCornerMethod
	res, err := transport.Solve(context.Background(), p, opts)
	require.NoError(t, err)
	require.Equal(t, -2, res.Cost)

	opts.Method = transport.RussellMethod
	_, err = transport.Solve(context.Background(), p, opts)
	require.ErrorIs(t, err, transport.ErrNotApplicable)
	require.Contains(t, err.Error(), "Russell's Approximation")
}

func TestSolveAll_Order(t *testing.T) {
	tc := textbook[2]
	p := transport.MustProblem(tc.supply, tc.demand, tc.cost)
	results, err := transport.SolveAll(context.Background(), p, transport.DefaultOptions(),
		transport.RussellMethod, transport.NorthWestCornerMethod)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, transport.RussellMethod, results[0].Method)
	require.Equal(t, transport.NorthWestCornerMethod, results[1].Method)
	require.Equal(t, tc.approxCst, results[0].Cost)
	require.Equal(t, tc.nwcCost, results[1].Cost)
}

func TestCheckFeasible(t *testing.T) {
	tc := textbook[0]
	p := transport.MustProblem(tc.supply, tc.demand, tc.cost)

	require.NoError(t, transport.CheckFeasible(p, mustRows(tc.nwc)))

	bad := mustRows(tc.nwc)
	require.NoError(t, bad.Set(0, 0, 19))
	err := transport.CheckFeasible(p, bad)
	require.ErrorIs(t, err, transport.ErrInfeasible)
	require.Contains(t, err.Error(), "row 0 ships 29, supply is 30")

	neg := mustRows([][]int{{30, 0, 0, 0}, {-10, 30, 20, 0}, {0, 0, 20, 30}})
	require.ErrorContains(t, transport.CheckFeasible(p, neg), "allocation[1][0] = -10")

	twoNeg := mustRows([][]int{{30, -1, 1, 0}, {-10, 30, 20, 0}, {0, 1, 19, 30}})
	require.ErrorContains(t, transport.CheckFeasible(p, twoNeg), "allocation[1][0] = -10", "smallest entry is reported")

	colBad := mustRows([][]int{{30, 0, 0, 0}, {0, 30, 10, 0}, {0, 0, 20, 30}})
	require.ErrorContains(t, transport.CheckFeasible(p, colBad), "column 0 receives 30, demand is 20")

	small, _ := grid.NewDense(1, 1)
	err = transport.CheckFeasible(p, small)
	require.ErrorIs(t, err, transport.ErrInfeasible)
	require.ErrorContains(t, err, "allocation is 1x1, problem is 3x4")
	require.ErrorIs(t, transport.CheckFeasible(p, nil), transport.ErrInfeasible)
}

func TestParseMethod(t *testing.T) {
	cases := map[string]transport.Method{
		"nwc":        transport.NorthWestCornerMethod,
		"North-West": transport.NorthWestCornerMethod,
		" vam ":      transport.VogelMethod,
		"Vogel":      transport.VogelMethod,
		"RAM":        transport.RussellMethod,
		"russell":    transport.RussellMethod,
	}
	for in, want := range cases {
		got, err := transport.ParseMethod(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := transport.ParseMethod("modi")
	require.ErrorIs(t, err, transport.ErrUnsupportedMethod)

	for _, m := range transport.Methods() {
		back, err := transport.ParseMethod(m.Key())
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
	require.Equal(t, "unknown", transport.Method(9).Key())
}
