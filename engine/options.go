package engine

import "go.uber.org/zap"

// Option configures an analysis via functional arguments.
type Option func(*Options)

// Options holds the parameters of one analysis run.
type Options struct {
	// Logger receives debug events about the run. Never nil after DefaultOptions.
	Logger *zap.Logger

	// Name labels the input in log lines, e.g. a file path.
	Name string
}

// DefaultOptions returns Options with a no-op logger and an empty name.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}

// WithLogger sets the logger. A nil logger leaves the no-op default in place.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithName labels the analyzed input in log lines.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}
