// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/stoich"
	"github.com/katalvlaran/stoich/compound"
	"github.com/katalvlaran/stoich/server"
	"github.com/spf13/cobra"
)

func newBalanceCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "balance <reaction...>",
		Short: "Balance a chemical equation",
		Long: `Balance a chemical equation. Arguments are joined with spaces, so quoting
is optional:

  stoich balance H2 + O2 = H2O
  stoich balance "Fe + O2 -> Fe2O3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table(cmd.Context())
			if err != nil {
				return err
			}
			opts := []compound.Option{compound.WithLogger(a.logger)}
			if strict {
				opts = append(opts, compound.WithStrictMultipliers())
			}

			res, err := stoich.Balance(strings.Join(args, " "), table, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", stoich.KindOf(err), err)
			}
			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")

				return enc.Encode(server.BalanceResponse{
					Balanced:  res.String(),
					Reactants: res.Reactants,
					Products:  res.Products,
				})
			}
			_, err = fmt.Fprintln(a.out, res)

			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the structured result")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject multipliers inside groups, as in (2H2O)")

	return cmd
}
