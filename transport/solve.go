// SPDX-License-Identifier: MIT

package transport

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtransport/grid"
)

// Solve validates p (unless opts.SkipValidation) and runs opts.Method.
//
// Stages:
//  1. Validate: balance, then cost sign.
//  2. Route by method; OnStep observes each allocation.
//  3. Score: total cost and non-zero cell count.
//  4. Verify (opts.Verify): CheckFeasible, fail fast on a bad matrix.
//
// Errors: those of Validate, the chosen solver, ErrUnsupportedMethod,
// ErrInfeasible, ctx.Err().
func Solve(ctx context.Context, p *Problem, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrEmptyProblem
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !opts.SkipValidation {
		if err := p.Validate(); err != nil {
			return Result{}, err
		}
	}

	var (
		s   *state
		err error
	)
	switch opts.Method {
	case NorthWestCornerMethod:
		s, err = northWestCorner(p, opts.OnStep)
	case VogelMethod:
		s, err = vogel(ctx, p, opts.SequentialScans, opts.OnStep)
	case RussellMethod:
		s, err = russell(p, opts.OnStep)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedMethod, opts.Method)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opts.Method, err)
	}

	res, err := score(p, opts.Method, s)
	if err != nil {
		return Result{}, err
	}
	if opts.Verify {
		if err = CheckFeasible(p, res.Allocation); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opts.Method, err)
		}
	}

	return res, nil
}

// SolveAll runs each method on p independently, in the given order, sharing
// only the read-only Problem. With no methods it runs Methods().
// Validation runs once up front unless opts.SkipValidation is set;
// opts.Method is ignored.
func SolveAll(ctx context.Context, p *Problem, opts Options, methods ...Method) ([]Result, error) {
	if p == nil {
		return nil, ErrEmptyProblem
	}
	if len(methods) == 0 {
		methods = Methods()
	}
	if !opts.SkipValidation {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	out := make([]Result, 0, len(methods))
	for _, m := range methods {
		o := opts
		o.Method = m
		o.SkipValidation = true
		res, err := Solve(ctx, p, o)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}

	return out, nil
}

func score(p *Problem, m Method, s *state) (Result, error) {
	cost, err := TotalCost(p, s.result)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Method:     m,
		Allocation: s.result,
		Cost:       cost,
		Steps:      s.steps,
		Basic:      grid.CountNonZero(s.result),
	}, nil
}
