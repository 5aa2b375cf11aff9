// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/stoich/config"
	"github.com/katalvlaran/stoich/elements"
	"github.com/katalvlaran/stoich/logging"
	"github.com/katalvlaran/stoich/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	out    io.Writer
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "stoich",
		Short: "Parse and balance chemical equations",
		Long: `stoich balances chemical equations with exact rational arithmetic.

Element tables are taken from --elements-file (JSON or YAML), then from the
SQLite database at --database-path, then from the built-in periodic table.
Settings are also read from a .env file (searched upwards from the working
directory) and from the environment (PORT, FRONTEND_URL, DATABASE_PATH,
ELEMENTS_FILE, LOG_LEVEL, SHUTDOWN_TIMEOUT).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(config.FlagLogLevel, logging.DefaultLevel, "log level: debug, info, warn, error")
	pf.String(config.FlagElementsFile, "", "JSON or YAML element table")
	pf.String(config.FlagDatabasePath, "", "SQLite database holding the element table")

	root.AddCommand(
		newBalanceCmd(a),
		newParseCmd(a),
		newServeCmd(a),
		newAtomsCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}
	dotenv, _ := config.FindDotEnv(wd)

	cfg, err := config.Load(cmd.Flags(), dotenv)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	if dotenv != "" {
		a.logger.Debug("loaded .env", zap.String("path", dotenv))
	}

	return nil
}

// table resolves the element table: file, then database, then built-in.
func (a *app) table(ctx context.Context) (*elements.Set, error) {
	if a.cfg.ElementsFile != "" {
		set, err := elements.LoadFile(a.cfg.ElementsFile)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("element table from file", zap.String("path", a.cfg.ElementsFile), zap.Int("atoms", set.Len()))

		return set, nil
	}

	if a.cfg.DatabasePath != "" {
		s, err := store.Open(ctx, a.cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		defer s.Close()

		set, err := s.Table(ctx)
		switch {
		case err == nil:
			a.logger.Debug("element table from database", zap.String("path", a.cfg.DatabasePath), zap.Int("atoms", set.Len()))

			return set, nil
		case errors.Is(err, store.ErrEmptyTable):
			a.logger.Warn("database has no atoms, using built-in table", zap.String("path", a.cfg.DatabasePath))
		default:
			return nil, err
		}
	}

	return elements.Periodic(), nil
}
