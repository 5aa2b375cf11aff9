// SPDX-License-Identifier: MIT

// Package server exposes the balancer over HTTP with fiber.
//
// Routes:
//
//	POST /equation/balance  {"equation": "H2 + O2 = H2O"}
//	GET  /data/atoms        the element table in use
//	GET  /health
//	GET  /metrics           Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/katalvlaran/stoich/elements"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNilTable indicates New was called without an element table.
var ErrNilTable = errors.New("server: nil element table")

// Server is a configured HTTP API. Create with New.
type Server struct {
	app             *fiber.App
	table           *elements.Set
	metrics         *Metrics
	logger          *zap.Logger
	addr            string
	shutdownTimeout time.Duration
	strict          bool
}

// New wires routes and middleware around table.
func New(table *elements.Set, opts ...Option) (*Server, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	o := gatherOptions(opts...)

	metrics, err := NewMetrics(o.registry)
	if err != nil {
		return nil, fmt.Errorf("server: register metrics: %w", err)
	}

	s := &Server{
		table:           table,
		metrics:         metrics,
		logger:          o.logger,
		addr:            o.addr,
		shutdownTimeout: o.shutdownTimeout,
		strict:          o.strict,
	}

	app := fiber.New(fiber.Config{
		AppName:               "stoich",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(withRequestID())
	app.Use(withAccessLog(o.logger))
	app.Use(withCORS(o.frontendURL))

	app.Post("/equation/balance", s.handleBalance)
	app.Get("/data/atoms", s.handleAtoms)
	app.Get("/health", s.handleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})))

	s.app = app

	return s, nil
}

// App exposes the fiber application (used by tests via App().Test).
func (s *Server) App() *fiber.App { return s.app }

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured timeout. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	served := make(chan struct{})

	g.Go(func() error {
		defer close(served)
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := s.app.Listener(ln); err != nil {
			return fmt.Errorf("server: serve: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-served:
		}
		s.logger.Info("shutting down", zap.Duration("timeout", s.shutdownTimeout))

		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		err := s.app.ShutdownWithContext(sctx)
		// Serve may not have registered ln yet; closing it unblocks Accept.
		_ = ln.Close()
		if err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}

		return nil
	})

	return g.Wait()
}
