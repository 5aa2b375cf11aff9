// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoich/config"
	"github.com/katalvlaran/stoich/elements"
	"github.com/katalvlaran/stoich/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errDatabasePathRequired = errors.New("--" + config.FlagDatabasePath + " (or DATABASE_PATH) is required")

func newAtomsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atoms",
		Short: "Manage the element table",
	}
	cmd.AddCommand(newAtomsSeedCmd(a), newAtomsListCmd(a))

	return cmd
}

func newAtomsSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in (or --elements-file) table into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DatabasePath == "" {
				return errDatabasePathRequired
			}
			source := elements.Periodic()
			if a.cfg.ElementsFile != "" {
				set, err := elements.LoadFile(a.cfg.ElementsFile)
				if err != nil {
					return err
				}
				source = set
			}

			s, err := store.Open(cmd.Context(), a.cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := s.Seed(cmd.Context(), source.Atoms())
			if err != nil {
				return err
			}
			a.logger.Info("seeded atoms", zap.String("path", a.cfg.DatabasePath), zap.Int("atoms", n))
			_, err = fmt.Fprintf(a.out, "seeded %d atoms into %s\n", n, a.cfg.DatabasePath)

			return err
		},
	}
}

func newAtomsListCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the element table in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := a.table(cmd.Context())
			if err != nil {
				return err
			}
			switch format {
			case "text":
				for _, at := range table.Atoms() {
					if _, err = fmt.Fprintf(a.out, "%d\t%s\n", at.Number, at.Symbol); err != nil {
						return err
					}
				}

				return nil
			case "yaml":
				enc := yaml.NewEncoder(a.out)
				defer enc.Close()

				return enc.Encode(elements.Document{Atoms: table.Atoms()})
			default:
				return fmt.Errorf("%w: %q", elements.ErrUnknownFormat, format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")

	return cmd
}
