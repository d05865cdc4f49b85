// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for solver runs.
//
// All collectors are registered on the Registerer passed to New, so tests
// can use a private prometheus.NewRegistry() and the CLI the default one.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvtransport"

// Rejection reasons used as label values.
const (
	ReasonNotBalanced   = "not_balanced"
	ReasonNotApplicable = "not_applicable"
	ReasonInvalid       = "invalid"
)

// Collector groups the solver metrics.
type Collector struct {
	solves     *prometheus.CounterVec
	steps      *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	rejections *prometheus.CounterVec
	cost       *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solver runs by method and outcome.",
		}, []string{"method", "outcome"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_steps_total",
			Help:      "Allocation steps performed by method.",
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one solver run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"method"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Problems rejected before solving, by reason.",
		}, []string{"reason"}),
		cost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_cost",
			Help:      "Total cost of the last allocation per problem and method.",
		}, []string{"problem", "method"}),
	}

	for _, col := range []prometheus.Collector{c.solves, c.steps, c.duration, c.rejections, c.cost} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveSolve records a finished run.
func (c *Collector) ObserveSolve(method string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.solves.WithLabelValues(method, outcome).Inc()
	c.duration.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveStep counts one allocation step.
func (c *Collector) ObserveStep(method string) {
	c.steps.WithLabelValues(method).Inc()
}

// ObserveRejection counts a problem rejected by validation.
func (c *Collector) ObserveRejection(reason string) {
	c.rejections.WithLabelValues(reason).Inc()
}

// SetCost stores the total cost of the last allocation.
// Unnamed problems are keyed by their 1-based position.
func (c *Collector) SetCost(problem string, index int, method string, cost int) {
	if problem == "" {
		problem = "#" + strconv.Itoa(index)
	}
	c.cost.WithLabelValues(problem, method).Set(float64(cost))
}
