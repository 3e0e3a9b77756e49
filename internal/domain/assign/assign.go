// Package assign fills the daily table's activity columns from the
// normalized event sequence. Each assigner owns its day-boundary policy;
// none of them ever creates a row.
package assign

import (
	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/pkg/logger"
)

type options struct {
	asmp model.Assumptions
	log  logger.Logger
}

// Option applies a configuration option to an assigner call.
type Option func(*options)

// WithAssumptions sets the heuristic constants.
func WithAssumptions(a model.Assumptions) Option {
	return func(o *options) { o.asmp = a }
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{asmp: model.DefaultAssumptions()}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.Named("assign")
	}
	return o
}
