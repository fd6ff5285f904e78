// SPDX-License-Identifier: MIT

package sparse

// Defaults for Builder options.
const (
	// DefaultValidateWeights rejects NaN and ±Inf weights at ingestion.
	DefaultValidateWeights = true

	// DefaultCapacity is the initial edge capacity of a Builder.
	DefaultCapacity = 1024
)

const panicCapacityInvalid = "sparse: WithCapacity: capacity must be >= 0"

// Option configures a Builder.
type Option func(*Options)

// Options holds the effective Builder configuration.
type Options struct {
	validateWeights bool
	capacity        int
}

// WithValidateWeights toggles NaN/±Inf weight rejection.
func WithValidateWeights(on bool) Option {
	return func(o *Options) { o.validateWeights = on }
}

// WithCapacity presizes the edge slice. Panics on a negative capacity.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		validateWeights: DefaultValidateWeights,
		capacity:        DefaultCapacity,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
