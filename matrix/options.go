// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the determinant kernels and
// the text formatter. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The cofactor determinant is O(n!). The library never bounds it on its
//     own; callers opt into a hard limit with WithCofactorLimit.
//   - Logging is silent unless WithLogger is supplied.
package matrix

import "github.com/hashicorp/go-hclog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCofactorLimit is the maximum order accepted by Determinant.
	// 0 means "no limit": the cofactor expansion runs for any order.
	DefaultCofactorLimit = 0

	// DefaultCofactorWarnOrder is the order from which Determinant logs a single
	// warning about exponential cost (only visible with WithLogger).
	DefaultCofactorWarnOrder = 9

	// DefaultPrecision is the number of fractional digits used by Format
	// when the caller passes a negative precision.
	DefaultPrecision = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCofactorLimitInvalid = "matrix: WithCofactorLimit: limit must be >= 0"
	panicWarnOrderInvalid     = "matrix: WithCofactorWarnOrder: order must be >= 1"
	panicLoggerNil            = "matrix: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	cofactorLimit int          // >= 0; DefaultCofactorLimit (0 = unlimited)
	warnOrder     int          // >= 1; DefaultCofactorWarnOrder
	logger        hclog.Logger // never nil after gatherOptions
}

// WithCofactorLimit refuses cofactor expansion for matrices of order > limit
// with ErrCofactorLimit. limit == 0 removes the bound.
// Panics when limit < 0.
//
// Complexity: O(1).
func WithCofactorLimit(limit int) Option {
	if limit < 0 {
		panic(panicCofactorLimitInvalid)
	}

	return func(o *Options) { o.cofactorLimit = limit }
}

// WithCofactorWarnOrder sets the order from which a warning is logged.
// Panics when order < 1.
func WithCofactorWarnOrder(order int) Option {
	if order < 1 {
		panic(panicWarnOrderInvalid)
	}

	return func(o *Options) { o.warnOrder = order }
}

// WithLogger routes determinant diagnostics to l: trace lines when the
// expansion starts and finishes, and one warning for orders at or above the
// warn order.
// Panics when l is nil; use hclog.NewNullLogger() to silence explicitly.
func WithLogger(l hclog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		cofactorLimit: DefaultCofactorLimit,
		warnOrder:     DefaultCofactorWarnOrder,
		logger:        hclog.NewNullLogger(),
	}
}

// gatherOptions applies opts over defaults in order; later options win.
// nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
