// SPDX-License-Identifier: MIT

package main

import (
	"os/signal"
	"syscall"

	"github.com/katalvlaran/stoich/config"
	"github.com/katalvlaran/stoich/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireFrontendURL(); err != nil {
				return err
			}
			table, err := a.table(cmd.Context())
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			opts := []server.Option{
				server.WithAddr(a.cfg.Addr()),
				server.WithFrontendURL(a.cfg.FrontendURL),
				server.WithShutdownTimeout(a.cfg.ShutdownTimeout),
				server.WithLogger(a.logger),
				server.WithRegistry(reg),
			}
			if strict {
				opts = append(opts, server.WithStrictMultipliers())
			}
			srv, err := server.New(table, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			a.logger.Info("starting server",
				zap.String("addr", a.cfg.Addr()),
				zap.String("frontend_url", a.cfg.FrontendURL),
				zap.Int("atoms", table.Len()))

			return srv.Run(ctx)
		},
	}
	f := cmd.Flags()
	f.Int(config.FlagPort, config.DefaultPort, "listen port")
	f.String(config.FlagFrontendURL, "", "allowed CORS origin (required)")
	f.Duration(config.FlagShutdownTimeout, config.DefaultShutdownTimeout, "graceful shutdown timeout")
	f.BoolVar(&strict, "strict", false, "reject multipliers inside groups")

	return cmd
}
