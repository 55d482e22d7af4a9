package pipeline

import (
	"context"
	"errors"
)

// ErrNilGraph indicates Analyze was handed a nil graph.
var ErrNilGraph = errors.New("pipeline: nil graph")

// Option configures an analysis run.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{}
}

// WithCancelContext returns an Option that sets the cancellation
// context handed to every stage. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
