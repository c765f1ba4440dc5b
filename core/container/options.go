package container

import (
	"math"

	"github.com/mogud/jenga/core/logging"
)

// DefaultMaxCapacity bounds how far Enter may grow an empty Jenga.
const DefaultMaxCapacity int64 = math.MaxInt32

type options struct {
	capacity    int
	maxCapacity int64
	logger      logging.ILogger
}

type Option func(o *options)

// WithCapacity pre-sizes the backing store of keyed containers.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

func WithMaxCapacity(maxCapacity int64) Option {
	return func(o *options) {
		o.maxCapacity = maxCapacity
	}
}

// WithLogger traces every fault a container returns at debug level.
func WithLogger(logger logging.ILogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{maxCapacity: DefaultMaxCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) limit() int64 {
	if o.maxCapacity <= 0 {
		return DefaultMaxCapacity
	}
	return o.maxCapacity
}

func (o *options) trace(err error) error {
	if err != nil && o.logger != nil {
		o.logger.Debugf("jenga fault: %v", err)
	}
	return err
}
