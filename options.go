package bitvec

import "github.com/hupe1980/bitvec/resource"

type options struct {
	logger     *Logger
	controller *resource.Controller
	metrics    MetricsCollector
}

// Option configures vector construction.
//
// Vectors derived from another vector (Clone, Slice, Concat, Repeat and the
// word-wise combinators) inherit the source's options; options passed to the
// derived call override them.
type Option func(*options)

// WithLogger sets the logger used for allocation and rank build events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithController charges backing arrays against a shared memory budget and
// limits parallel rank build goroutines.
//
// A nil controller disables accounting.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithMetrics sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

var defaultLogger = NoopLogger()

func buildOptions(base *options, opts []Option) *options {
	o := &options{
		logger:  defaultLogger,
		metrics: NoopMetricsCollector{},
	}
	if base != nil {
		*o = *base
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
