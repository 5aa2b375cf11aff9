// SPDX-License-Identifier: MIT

// Package compound: functional options for Parse.
//
// Options are resolved once per call; there is no package-level state.
package compound

import "go.uber.org/zap"

// Option mutates parser options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective parser configuration.
type Options struct {
	logger *zap.Logger
	strict bool
}

// WithLogger routes parser diagnostics (currently: ignored leading
// multipliers) to l at warn level. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrictMultipliers turns an ignored leading multiplier, as in "(2H2O)",
// into ErrMisplacedMultiplier.
func WithStrictMultipliers() Option {
	return func(o *Options) {
		o.strict = true
	}
}

// gatherOptions applies user options over the defaults: silent logger,
// lenient multipliers.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
