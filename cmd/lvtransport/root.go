// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvtransport/catalog"
	"github.com/katalvlaran/lvtransport/transport"
)

// app carries the persistent flags and the logger built from them.
type app struct {
	file      string
	verbose   bool
	logFormat string
	logger    *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lvtransport",
		Short: "Initial solutions for the transportation problem",
		Long: `lvtransport reads balanced transportation problems (supply, demand, unit costs)
and builds an initial allocation with the North-West Corner, Vogel's Approximation
and Russell's Approximation methods.

Without --file the five built-in textbook cases are used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "", "YAML problem set (default: built-in textbook cases)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every allocation step")
	pf.StringVar(&a.logFormat, "log-format", "json", "log encoding: json or console")

	root.AddCommand(newSolveCmd(a), newValidateCmd(a), newCatalogCmd(a))

	return root
}

// initLogger builds a production logger on stderr.
func (a *app) initLogger() error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	switch a.logFormat {
	case "json":
	case "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return fmt.Errorf("unknown log format %q (want json or console)", a.logFormat)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// entries loads --file, or the textbook cases when it is empty.
func (a *app) entries() ([]catalog.Entry, error) {
	if a.file == "" {
		return catalog.Textbook(), nil
	}
	entries, err := catalog.Load(a.file)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("problem set loaded", zap.String("file", a.file), zap.Int("problems", len(entries)))

	return entries, nil
}

// problems loads and converts the problem set.
func (a *app) problems() ([]*transport.Problem, error) {
	entries, err := a.entries()
	if err != nil {
		return nil, err
	}

	return catalog.Problems(entries)
}
