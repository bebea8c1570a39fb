package workerpool

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrInvalidWorkers is returned by New when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workerpool: worker count must be > 0")

	// ErrNilTask is returned by Enqueue for a nil task.
	ErrNilTask = errors.New("workerpool: task is nil")

	// ErrPoolDisposed is returned by Enqueue once Dispose has been called.
	ErrPoolDisposed = errors.New("workerpool: cannot add tasks after the pool is disposed")
)

// Task is a unit of work. A non-nil error marks the task as failed.
type Task func() error

// PanicError carries a value recovered from a panicking task.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: task panicked: %v", e.Value)
}

// Stats is a point-in-time snapshot of task counters.
type Stats struct {
	Submitted uint64
	Completed uint64
	Failed    uint64
	Queued    int
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	onError    func(error)
	registerer prometheus.Registerer
	name       string
}

// WithErrorHandler installs fn to observe task errors and recovered panics.
// fn runs on the worker goroutine that executed the task.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithRegisterer registers the pool's metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithName sets the pool label used in log lines and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}
