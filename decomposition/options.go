// SPDX-License-Identifier: MIT

// Package decomposition: functional configuration for the spectral
// routines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package decomposition

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance terminates backward iteration once the reciprocal
	// iterate norm drops to this level (shifted system near-singular).
	DefaultTolerance = 1e-14

	// DefaultMaxIterations caps backward iteration; exhaustion is a hard
	// ErrNotConverged failure.
	DefaultMaxIterations = 100

	// DefaultPerturbation shifts the theoretical eigenvalue 1 to 1−ε so
	// the shifted matrix stays non-singular yet near-degenerate.
	DefaultPerturbation = 1e-15

	// DefaultLagTime is the lag time τ used in t = −τ/ln|λ|.
	DefaultLagTime = 1.0

	// UnitMagnitudeTol is the absolute tolerance under which |λ| counts as
	// one (non-decaying mode, infinite timescale).
	UnitMagnitudeTol = 1e-14

	// ImagTol is the absolute tolerance under which an imaginary part
	// counts as negligible for timescale diagnostics.
	ImagTol = 1e-8

	// DefaultNorm is the RDL normalization applied when none is requested.
	DefaultNorm = NormStandard
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTolInvalid     = "decomposition: WithTolerance: tol must be finite, > 0"
	panicMaxIterInvalid = "decomposition: WithMaxIterations: n must be > 0"
	panicEpsInvalid     = "decomposition: WithPerturbation: eps must be finite, > 0"
	panicLagInvalid     = "decomposition: WithLagTime: tau must be finite, > 0"
	panicCountInvalid   = "decomposition: WithCount: k must be > 0"
	panicIndicesEmpty   = "decomposition: WithIndices: at least one index required"
	panicIndexNegative  = "decomposition: WithIndices: indices must be >= 0"
	panicCheckerNil     = "decomposition: WithReversibilityChecker: checker must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. It is intentionally unexported-by-field to prevent external
// mutation; public entry points accept `...Option` and resolve them via
// gatherOptions.
type Options struct {
	// backward iteration policy
	tol     float64 // > 0; DefaultTolerance
	maxIter int     // > 0; DefaultMaxIterations
	eps     float64 // > 0; DefaultPerturbation

	// spectrum selection policy
	k       int   // 0 ⇒ full spectrum; > 0 ⇒ leading k
	indices []int // nil ⇒ unused; takes precedence over k
	left    bool  // Eigenvectors: left instead of right

	// reversible symmetrization policy
	reversible bool
	mu         []float64 // optional precomputed stationary vector

	// RDL policy
	norm    Norm
	checker ReversibilityChecker // consumed by NormAuto only

	// timescale policy
	lag float64 // > 0; DefaultLagTime
}

// ---------- Constructors (WithX) ----------

// WithTolerance sets the convergence tolerance of backward iteration.
// Panics when tol is not a finite positive number (programmer error).
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the number of inverse-iteration refinements.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithPerturbation sets ε in the shift μ = 1−ε used to extract the
// stationary mode. Smaller ε converges faster but edges the factorization
// closer to exact singularity. Panics when eps is not finite positive.
func WithPerturbation(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithCount requests the leading k entries of the magnitude-sorted
// spectrum (or the leading k columns/rows of a decomposition). A k larger
// than the dimension yields the full result. Panics when k <= 0.
//
// Notes:
//   - WithIndices takes precedence over WithCount when both are applied.
func WithCount(k int) Option {
	if k <= 0 {
		panic(panicCountInvalid)
	}

	return func(o *Options) { o.k = k }
}

// WithIndices requests exactly the given positions of the
// magnitude-sorted spectrum, in the given order. Positions outside the
// spectrum fail at call time with ErrIndexOutOfRange (reporting the
// offending indices). Panics on an empty list or negative entries.
func WithIndices(indices ...int) Option {
	if len(indices) == 0 {
		panic(panicIndicesEmpty)
	}
	for _, ix := range indices {
		if ix < 0 {
			panic(panicIndexNegative)
		}
	}
	// Copy to decouple from the caller's backing array.
	own := make([]int, len(indices))
	copy(own, indices)

	return func(o *Options) { o.indices = own }
}

// WithLeft switches Eigenvectors to the left eigenvectors of the matrix.
func WithLeft() Option {
	return func(o *Options) { o.left = true }
}

// WithReversible declares the transition matrix reversible, enabling the
// symmetric similarity transform S = diag(√μ)·T·diag(1/√μ): identical
// spectrum, but a symmetric solver that is faster and guarantees real
// eigenvalues. The stationary vector μ is computed via backward iteration
// unless supplied with WithStationary.
func WithReversible() Option {
	return func(o *Options) { o.reversible = true }
}

// WithStationary supplies a precomputed stationary vector μ, consumed by
// the reversible symmetrization. Length and positivity are validated at
// call time against the matrix dimension.
func WithStationary(mu []float64) Option {
	// Copy to decouple from the caller's backing array.
	own := make([]float64, len(mu))
	copy(own, mu)

	return func(o *Options) { o.mu = own }
}

// WithNorm selects the RDL normalization convention. Unrecognized values
// fail at call time with ErrUnknownNorm (user input, not programmer error).
func WithNorm(n Norm) Option {
	return func(o *Options) { o.norm = n }
}

// WithReversibilityChecker injects the predicate consumed by NormAuto.
// Panics when checker is nil.
//
// AI-Hints:
//   - Pass a closure over stochastic.IsReversible with your own μ and
//     tolerance to keep auto-detection consistent with your validation.
func WithReversibilityChecker(checker ReversibilityChecker) Option {
	if checker == nil {
		panic(panicCheckerNil)
	}

	return func(o *Options) { o.checker = checker }
}

// WithLagTime sets the lag time τ of the implied-timescale conversion.
// Panics when tau is not a finite positive number.
func WithLagTime(tau float64) Option {
	if isNonFinite(tau) || tau <= 0 {
		panic(panicLagInvalid)
	}

	return func(o *Options) { o.lag = tau }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; deterministic for a given setter sequence.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		eps:     DefaultPerturbation,
		norm:    DefaultNorm,
		lag:     DefaultLagTime,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
