// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtransport/metrics"
	"github.com/katalvlaran/lvtransport/report"
	"github.com/katalvlaran/lvtransport/runner"
	"github.com/katalvlaran/lvtransport/transport"
)

type solveFlags struct {
	methods     []string
	format      string
	metricsAddr string
	sequential  bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Validate and solve every problem, printing one report per problem",
		Long: `Validates each problem (balance first, then non-negative costs) and runs the
selected methods on it. Rejected problems are reported and skipped.

With --metrics-addr the Prometheus metrics are served on /metrics and the command
keeps running after the report until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVarP(&f.methods, "method", "m", []string{"nwc", "vogel", "russell"}, "methods to run, in order: nwc, vogel, russell")
	fl.StringVar(&f.format, "format", string(report.Plain), "report format: plain, table or json")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fl.BoolVar(&f.sequential, "sequential", false, "run Vogel's row and column scans on one goroutine")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	methods, err := parseMethods(f.methods)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(f.format)
	if err != nil {
		return err
	}
	renderer, err := report.New(format)
	if err != nil {
		return err
	}
	problems, err := a.problems()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solveOpts := transport.DefaultOptions()
	solveOpts.SequentialScans = f.sequential
	opts := []runner.Option{
		runner.WithLogger(a.logger),
		runner.WithMethods(methods...),
		runner.WithRenderer(renderer, cmd.OutOrStdout()),
		runner.WithSolveOptions(solveOpts),
	}

	var srv *metricsServer
	if f.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector, err := metrics.New(reg)
		if err != nil {
			return err
		}
		opts = append(opts, runner.WithMetrics(collector))

		if srv, err = startMetricsServer(f.metricsAddr, reg); err != nil {
			return err
		}
		a.logger.Info("serving metrics", zap.String("addr", srv.addr()))
	}

	if _, err = runner.New(opts...).Run(ctx, problems); err != nil {
		if srv != nil {
			_ = srv.shutdown()
		}
		return err
	}
	if srv == nil {
		return nil
	}

	a.logger.Info("report done, serving metrics until interrupted")
	select {
	case <-ctx.Done():
	case err = <-srv.errc:
		return fmt.Errorf("metrics server: %w", err)
	}

	return srv.shutdown()
}

func parseMethods(keys []string) ([]transport.Method, error) {
	if len(keys) == 0 {
		return nil, errors.New("at least one --method is required")
	}
	out := make([]transport.Method, 0, len(keys))
	for _, k := range keys {
		m, err := transport.ParseMethod(k)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

type metricsServer struct {
	ln   net.Listener
	srv  *http.Server
	errc chan error
}

// startMetricsServer binds addr before returning so a busy port fails the command.
func startMetricsServer(addr string, g prometheus.Gatherer) (*metricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics server: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	s := &metricsServer{
		ln:   ln,
		srv:  &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		errc: make(chan error, 1),
	}
	go func() {
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			s.errc <- err
		}
	}()

	return s, nil
}

func (s *metricsServer) addr() string { return s.ln.Addr().String() }

func (s *metricsServer) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.srv.Shutdown(ctx)
}
