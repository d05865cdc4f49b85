// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtransport/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect a problem set",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List problem names and sizes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				entries, err := a.entries()
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tSOURCES\tDESTINATIONS\tSUPPLY\tDEMAND")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", e.Name, len(e.Supply), len(e.Demand), total(e.Supply), total(e.Demand))
				}

				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "dump",
			Short: "Write the problem set as YAML",
			Long:  "Write the problem set as YAML. Without --file this prints the built-in cases, a starting point for your own files.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				entries, err := a.entries()
				if err != nil {
					return err
				}

				return catalog.Encode(cmd.OutOrStdout(), entries)
			},
		},
	)

	return cmd
}

func total(xs []int) int {
	var s int
	for _, x := range xs {
		s += x
	}

	return s
}
