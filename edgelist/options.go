// SPDX-License-Identifier: MIT

package edgelist

import "github.com/katalvlaran/topeigen/sparse"

const (
	// DefaultPrecision matches C's "%le": six digits after the point.
	DefaultPrecision = 6

	// DefaultMaxLineBytes bounds a single input line.
	DefaultMaxLineBytes = 1 << 20
)

const panicPrecisionInvalid = "edgelist: WithPrecision: precision must be in [0,17]"

// Option configures Read and Write.
type Option func(*options)

type options struct {
	precision    int
	maxLineBytes int
	builderOpts  []sparse.Option
}

// WithPrecision sets the number of fractional digits written per value.
// Panics outside [0,17].
func WithPrecision(p int) Option {
	if p < 0 || p > 17 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = p }
}

// WithMaxLineBytes bounds the length of one input line.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineBytes = n
		}
	}
}

// WithBuilderOptions forwards options to the sparse.Builder used by Read.
func WithBuilderOptions(opts ...sparse.Option) Option {
	return func(o *options) { o.builderOpts = append(o.builderOpts, opts...) }
}

func gatherOptions(opts ...Option) options {
	o := options{
		precision:    DefaultPrecision,
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
