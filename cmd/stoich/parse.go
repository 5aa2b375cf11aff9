// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/stoich/compound"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <formula>",
		Short: "Print the element counts of one formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table(cmd.Context())
			if err != nil {
				return err
			}
			counts, err := compound.Parse(args[0], table, compound.WithLogger(a.logger))
			if err != nil {
				return err
			}
			for _, sym := range counts.Symbols() {
				if _, err = fmt.Fprintf(a.out, "%s\t%d\n", sym, counts.Get(sym)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
