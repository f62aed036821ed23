package funcz

import (
	"log/slog"
	"time"
)

// Timer is a scheduled call that can be cancelled.
type Timer interface {
	// Stop prevents the call from running.
	// It reports false if the call already ran or was stopped.
	Stop() bool
}

// Clock is the source of time for the decorators that depend on it.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f in its own goroutine after d.
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

type options struct {
	clock  Clock
	logger *slog.Logger
}

type Option func(o *options)

// WithClock sets the clock, [SystemClock] by default.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log.With("component", "funcz")
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		clock:  SystemClock,
		logger: slog.Default().With("component", "funcz"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
