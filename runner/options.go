// SPDX-License-Identifier: MIT

package runner

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtransport/metrics"
	"github.com/katalvlaran/lvtransport/report"
	"github.com/katalvlaran/lvtransport/transport"
)

// Option customizes a Runner. Constructors panic on meaningless input.
type Option func(*Runner)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.logger = l
	}
}

// WithMethods selects which heuristics run and in which order. Panics when empty.
func WithMethods(ms ...transport.Method) Option {
	if len(ms) == 0 {
		panic("runner: WithMethods()")
	}
	cp := append([]transport.Method(nil), ms...)
	return func(r *Runner) {
		r.methods = cp
	}
}

// WithMetrics records solver metrics on c. Panics on nil.
func WithMetrics(c *metrics.Collector) Option {
	if c == nil {
		panic("runner: WithMetrics(nil)")
	}
	return func(r *Runner) {
		r.metrics = c
	}
}

// WithRenderer renders every case to w as soon as it is done. Panics on nil.
func WithRenderer(rd report.Renderer, w io.Writer) Option {
	if rd == nil || w == nil {
		panic("runner: WithRenderer(nil)")
	}
	return func(r *Runner) {
		r.renderer = rd
		r.out = w
	}
}

// WithSolveOptions overrides the transport options used for every solve.
// Method and SkipValidation are managed by the runner; OnStep is replaced.
func WithSolveOptions(o transport.Options) Option {
	return func(r *Runner) {
		r.opts = o
	}
}
