package chunklist

import "github.com/hupe1980/chunklist/internal/chunk"

// DefaultLoadFactor is the target chunk size used when WithLoadFactor
// is not supplied. A chunk splits at twice this value and merges below
// half of it.
const DefaultLoadFactor = chunk.DefaultLoadFactor

type options struct {
	loadFactor       int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures list construction. The load factor is the only
// structural tunable; logging and metrics are ambient concerns and do
// not affect behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		loadFactor: DefaultLoadFactor,
	}
}

// WithLoadFactor configures the target chunk size, fixed for the
// lifetime of the list. Non-positive values fall back to
// DefaultLoadFactor.
//
// Smaller values bound the per-mutation copy cost more tightly at the
// price of more chunks to walk; larger values favor reads. The default
// is a good fit for lists in the hundred-thousand element range.
func WithLoadFactor(n int) Option {
	return func(o *options) {
		o.loadFactor = n
	}
}

// WithLogger configures a logger for rebalancing events, emitted at
// Debug level. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &chunklist.BasicMetricsCollector{}
//	list := chunklist.NewSortedList[int](chunklist.WithMetricsCollector(metrics))
//	// ... workload ...
//	fmt.Println(metrics.SplitCount.Load())
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = m
	}
}
