package protectedx

import "log/slog"

// Option configures a Container via the functional options pattern.
type Option func(*options)

type options struct {
	logger *slog.Logger
	index  any
}

// WithLogger sets the structured logger used for debug events.
// Containers log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIndex records the container in ix when it is constructed.
// The index state type must match the container's.
func WithIndex[S any](ix *Index[S]) Option {
	return func(o *options) {
		if ix != nil {
			o.index = ix
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
