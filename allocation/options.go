package allocation

import "github.com/go-logr/logr"

// Option configures an Allocator.
type Option func(*Options)

// Options holds the Allocator settings resolved from Option values.
//
// Logger – receives V(1) traces of table widths and the final allocation.
// OnStep – called after every forward transition with a copy of its table;
// stage is the index of the stage the transition ends at (1..N−1).
type Options struct {
	Logger logr.Logger
	OnStep func(stage int, step StepResult)
}

// DefaultOptions returns Options with a discarding logger and no step hook.
func DefaultOptions() Options {
	return Options{
		Logger: logr.Discard(),
	}
}

// WithLogger routes engine traces to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStepHook registers fn to observe each forward-pass table.
// The tables passed to fn are copies; mutating them has no effect.
func WithStepHook(fn func(stage int, step StepResult)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// gatherOptions applies opts over DefaultOptions, skipping nil entries.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
