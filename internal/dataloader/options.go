package dataloader

import "time"

type options struct {
	wait     time.Duration
	maxBatch int
	name     string
}

func defaultOptions() options {
	return options{name: "loader"}
}

// Option configures a Loader
type Option func(*options)

// WithWait dispatches a pending batch once d has elapsed since its first key was enqueued, so
// keys requested by concurrent goroutines within the window share one batch. Evaluating a thunk
// no longer dispatches on its own; Flush and WithMaxBatch still do.
func WithWait(d time.Duration) Option {
	return func(o *options) {
		o.wait = d
	}
}

// WithMaxBatch dispatches a pending batch as soon as it holds n keys
func WithMaxBatch(n int) Option {
	return func(o *options) {
		o.maxBatch = n
	}
}

// WithName sets the loader name used in log fields
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
