package pool

import (
	"github.com/sirupsen/logrus"
)

// DefaultWorkers is the worker count used when none is configured and the
// number of CPUs cannot be determined.
const DefaultWorkers = 8

type Option func(*Options)

type Options struct {
	workers    int
	workersSet bool
	label      string
	logger     logrus.FieldLogger
	observer   Observer
}

func defaultOptions() Options {
	return Options{logger: logrus.StandardLogger()}
}

// WithWorkers sets the number of worker goroutines. Passing a value of
// zero or less makes New fail with ErrNoWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n; o.workersSet = true }
}

// WithLabel names the pool. The label shows up in log fields and is meant
// to be reused as a metric label by observers.
func WithLabel(label string) Option { return func(o *Options) { o.label = label } }

// WithLogger sets the logger used for recovered task panics and worker
// failures. Defaults to logrus.StandardLogger.
func WithLogger(l logrus.FieldLogger) Option { return func(o *Options) { o.logger = l } }

// WithObserver registers lifecycle hooks for the pool and its scopes.
func WithObserver(obs Observer) Option { return func(o *Options) { o.observer = obs } }
