// Package spacetime: options and sentinel errors for the space-time
// engine.
package spacetime

import (
	"context"
	"errors"
)

// Sentinel errors for space-time queries.
var (
	// ErrTimeout is returned when the cooperative expansion budget is
	// exhausted before the search concludes.
	ErrTimeout = errors.New("spacetime: expansion budget exhausted")

	// ErrBadDepth indicates a negative depth limit.
	ErrBadDepth = errors.New("spacetime: depth limit must be non-negative")

	// ErrBadLength indicates a path length below 1.
	ErrBadLength = errors.New("spacetime: path length must be at least 1")

	// ErrTableMismatch indicates a reservation table built for a
	// different graph size.
	ErrTableMismatch = errors.New("spacetime: reservation table size does not match graph")
)

// Options configures the space-time engine.
//
//   - MaxExpansions: cooperative budget checked at each node expansion;
//     0 means unlimited.
//   - Ctx: cancellation context checked between expansions.
type Options struct {
	MaxExpansions int
	Ctx           context.Context
}

// Option is a functional option for New.
type Option func(*Options)

// WithMaxExpansions caps the number of state expansions per query.
// Exceeding the cap surfaces ErrTimeout and leaves no external state
// modified. Zero disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithContext attaches a cancellation context, checked once per
// expansion; a done context aborts the query with ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns the Options New starts from: no expansion cap
// and a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
