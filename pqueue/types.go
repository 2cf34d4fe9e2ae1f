package pqueue

import (
	"go.uber.org/zap"
)

// Entry is a dequeued (priority, item) pair.
type Entry[P any, T any] struct {
	Priority P
	Item     T
}

// Option configures optional behavior of a PriorityQueue.
// Use with New(isMin, opts...).
type Option func(*Options)

// Options holds configurable parameters for a PriorityQueue.
type Options struct {
	// Logger receives a report whenever an internal invariant is found broken.
	// Defaults to zap.NewNop(): the queue is silent unless asked otherwise.
	Logger *zap.Logger

	// Strict turns an internal invariant violation into a panic carrying an
	// assertion-failure error instead of reporting an empty result.
	// Default is false.
	Strict bool
}

// DefaultOptions returns Options with:
//   - a no-op logger
//   - lenient handling of invariant violations (Strict = false)
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Strict: false,
	}
}

// WithLogger returns an Option that installs l as the queue's logger.
// Passing nil has no effect (the no-op logger is retained).
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrict returns an Option that makes invariant violations panic.
// Intended for tests and debug builds.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}
