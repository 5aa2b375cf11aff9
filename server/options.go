// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	defaultAddr            = ":6942"
	defaultShutdownTimeout = 10 * time.Second
)

// Option customizes a Server.
type Option func(*options)

type options struct {
	addr            string
	frontendURL     string
	shutdownTimeout time.Duration
	logger          *zap.Logger
	registry        *prometheus.Registry
	strict          bool
}

// WithAddr sets the listen address used by Run.
func WithAddr(addr string) Option {
	return func(o *options) { o.addr = addr }
}

// WithFrontendURL restricts CORS to one origin and allows credentials.
// Empty means any origin without credentials.
func WithFrontendURL(u string) Option {
	return func(o *options) { o.frontendURL = u }
}

// WithShutdownTimeout bounds graceful shutdown. Non-positive values are ignored.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithLogger sets the access and parser logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry registers the server collectors on reg and serves it at
// /metrics. Nil is ignored.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithStrictMultipliers rejects leading multipliers inside formulas.
func WithStrictMultipliers() Option {
	return func(o *options) { o.strict = true }
}

func gatherOptions(opts ...Option) options {
	o := options{
		addr:            defaultAddr,
		shutdownTimeout: defaultShutdownTimeout,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	return o
}
