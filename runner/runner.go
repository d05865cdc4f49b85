// SPDX-License-Identifier: MIT

// Package runner drives a set of transportation problems through validation,
// every requested solver and a report.
//
// For each problem, in order:
//  1. Validate (balance, then cost sign). A rejection is logged, counted and
//     reported; the runner moves on to the next problem.
//  2. Solve with every method independently, on the same Problem.
//  3. Render the case.
//
// A solver error after successful validation is a broken invariant: Run stops
// and returns it.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtransport/metrics"
	"github.com/katalvlaran/lvtransport/report"
	"github.com/katalvlaran/lvtransport/transport"
)

// Runner holds the configuration for Run. Build it with New.
type Runner struct {
	logger   *zap.Logger
	methods  []transport.Method
	metrics  *metrics.Collector
	renderer report.Renderer
	out      io.Writer
	opts     transport.Options
}

// Summary counts what happened during Run.
type Summary struct {
	Solved   int
	Rejected int
	Cases    []report.Case
}

// New returns a Runner with the given options applied over the defaults:
// no-op logger, all methods, no metrics, no rendering, transport.DefaultOptions().
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:  zap.NewNop(),
		methods: transport.Methods(),
		opts:    transport.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run processes problems in order and returns the summary.
func (r *Runner) Run(ctx context.Context, problems []*transport.Problem) (Summary, error) {
	var sum Summary
	for i, p := range problems {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		c, err := r.runOne(ctx, i+1, p)
		if err != nil {
			return sum, err
		}
		if c.Err != nil {
			sum.Rejected++
		} else {
			sum.Solved++
		}
		sum.Cases = append(sum.Cases, c)

		if r.renderer != nil {
			if err = r.renderer.Render(r.out, c); err != nil {
				return sum, fmt.Errorf("runner: render %s: %w", c.Title(), err)
			}
		}
	}

	r.logger.Info("run finished",
		zap.Int("problems", len(problems)),
		zap.Int("solved", sum.Solved),
		zap.Int("rejected", sum.Rejected),
	)

	return sum, nil
}

func (r *Runner) runOne(ctx context.Context, index int, p *transport.Problem) (report.Case, error) {
	c := report.Case{Index: index, Problem: p}
	log := r.logger.With(
		zap.Int("index", index),
		zap.String("problem", p.Name()),
		zap.Int("sources", p.Rows()),
		zap.Int("destinations", p.Cols()),
	)

	if err := p.Validate(); err != nil {
		c.Err = err
		log.Warn("problem rejected", zap.String("reason", reasonOf(err)), zap.Error(err))
		if r.metrics != nil {
			r.metrics.ObserveRejection(reasonOf(err))
		}
		return c, nil
	}

	for _, m := range r.methods {
		res, err := r.solve(ctx, log, p, m)
		if r.metrics != nil {
			r.metrics.ObserveSolve(m.Key(), res.elapsed, err)
		}
		if err != nil {
			log.Error("solver failed", zap.String("method", m.Key()), zap.Error(err))
			return c, fmt.Errorf("runner: %s: %w", c.Title(), err)
		}
		if r.metrics != nil {
			r.metrics.SetCost(p.Name(), index, m.Key(), res.Cost)
		}
		log.Info("solved",
			zap.String("method", m.Key()),
			zap.Int("cost", res.Cost),
			zap.Int("steps", res.Steps),
			zap.Int("basic", res.Basic),
			zap.Duration("elapsed", res.elapsed),
		)
		c.Results = append(c.Results, res.Result)
	}

	return c, nil
}

type timedResult struct {
	transport.Result
	elapsed time.Duration
}

func (r *Runner) solve(ctx context.Context, log *zap.Logger, p *transport.Problem, m transport.Method) (timedResult, error) {
	opts := r.opts
	opts.Method = m
	opts.SkipValidation = true
	opts.OnStep = func(s transport.Step) {
		if r.metrics != nil {
			r.metrics.ObserveStep(m.Key())
		}
		if ce := log.Check(zap.DebugLevel, "allocation step"); ce != nil {
			ce.Write(
				zap.String("method", m.Key()),
				zap.Int("step", s.Index),
				zap.Int("row", s.Row),
				zap.Int("col", s.Col),
				zap.Int("quantity", s.Quantity),
			)
		}
	}

	start := time.Now()
	res, err := transport.Solve(ctx, p, opts)

	return timedResult{Result: res, elapsed: time.Since(start)}, err
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, transport.ErrNotBalanced):
		return metrics.ReasonNotBalanced
	case errors.Is(err, transport.ErrNotApplicable):
		return metrics.ReasonNotApplicable
	default:
		return metrics.ReasonInvalid
	}
}
