// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Defaults (single source of truth).
const (
	// DefaultIterations is the fixed power-iteration budget per eigenpair.
	DefaultIterations = 30

	// DefaultTolerance disables the early-stop rule.
	DefaultTolerance = 0.0

	// DefaultStrictNumerics reports degenerate iterates as ErrDegenerate.
	DefaultStrictNumerics = true

	// defaultSeed replaces a zero seed so the default stream is stable.
	defaultSeed int64 = 1
)

const (
	panicIterationsInvalid = "eigen: WithIterations: budget must be >= 0"
	panicToleranceInvalid  = "eigen: WithTolerance: tol must be finite and >= 0"
)

// Estimator selects how the eigenvalue is read off the final iterate.
type Estimator int

const (
	// SumRatio estimates λ as Σ(A·v)/Σv after projection. This is the
	// reference definition and the default.
	SumRatio Estimator = iota

	// Rayleigh estimates λ as ⟨v, A·v⟩/⟨v, v⟩ after projection. More robust
	// when the eigenvector's components cancel, but changes numerical output.
	Rayleigh
)

// String returns the stable flag name of the estimator.
func (e Estimator) String() string {
	switch e {
	case SumRatio:
		return "sum-ratio"
	case Rayleigh:
		return "rayleigh"
	default:
		return fmt.Sprintf("Estimator(%d)", int(e))
	}
}

// ParseEstimator maps "sum-ratio" / "rayleigh" (case-insensitive) to an Estimator.
func ParseEstimator(s string) (Estimator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum-ratio", "sumratio", "ratio", "":
		return SumRatio, nil
	case "rayleigh":
		return Rayleigh, nil
	default:
		return SumRatio, fmt.Errorf("ParseEstimator(%q): %w", s, ErrUnknownEstimator)
	}
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	iterations int
	tolerance  float64
	seed       int64
	rng        *rand.Rand
	estimator  Estimator
	strict     bool
	observers  []Observer
}

// Iterations returns the configured budget per eigenpair.
func (o Options) Iterations() int { return o.iterations }

// Estimator returns the configured eigenvalue estimator.
func (o Options) Estimator() Estimator { return o.estimator }

// WithIterations sets the power-iteration budget per eigenpair.
// Zero is allowed and skips straight to the finalize step.
// Panics when n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.iterations = n }
}

// WithTolerance enables early stopping once the sign-insensitive distance
// between consecutive normalized iterates drops below tol. tol == 0 keeps the
// fixed budget. Panics when tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithSeed seeds a fresh random stream per Solve call. Seed 0 maps to a fixed
// default seed. Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand uses rng as the random source. The stream is consumed across
// calls, so a Solver holding it is not safe for concurrent use.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithEstimator selects the eigenvalue estimator.
func WithEstimator(e Estimator) Option {
	return func(o *Options) { o.estimator = e }
}

// WithStrictNumerics toggles degeneracy detection. When off, a zero-norm
// iterate silently turns the slot's values into NaN, as the reference does.
func WithStrictNumerics(on bool) Option {
	return func(o *Options) { o.strict = on }
}

// WithObserver registers a per-slot hook. May be given multiple times;
// observers run in registration order. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		iterations: DefaultIterations,
		tolerance:  DefaultTolerance,
		estimator:  SumRatio,
		strict:     DefaultStrictNumerics,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// random returns the configured stream or a fresh one from the seed policy.
func (o Options) random() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}
	s := o.seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
