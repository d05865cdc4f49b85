// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtransport/report"
)

// errRejected makes validate exit non-zero without repeating every verdict.
var errRejected = errors.New("some problems were rejected")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every problem is balanced and has non-negative costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := a.problems()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var rejected int
			for i, p := range problems {
				c := report.Case{Index: i + 1, Problem: p, Err: p.Validate()}
				if c.Err != nil {
					rejected++
					a.logger.Debug("problem rejected", zap.String("problem", p.Name()), zap.Error(c.Err))
					fmt.Fprintf(out, "%s: %s (%v)\n", c.Title(), c.Status(), c.Err)
					continue
				}
				fmt.Fprintf(out, "%s: ok\n", c.Title())
			}
			if rejected > 0 {
				return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(problems))
			}

			return nil
		},
	}
}
