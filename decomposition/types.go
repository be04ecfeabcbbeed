// SPDX-License-Identifier: MIT

// Package decomposition: domain-facing types shared across the spectral
// engine. This file intentionally contains ONLY types (normalization
// modes, diagnostic records, injected capabilities). Errors and options
// live in dedicated files (errors.go, options.go) per the global
// conventions.
package decomposition

import "gonum.org/v1/gonum/mat"

// Norm selects the normalization convention of an RDL decomposition.
//
//   - NormStandard   — L = (Rᵀ)⁻¹ so that L·R = I; the first row of L is
//     rescaled into a probability distribution (the stationary vector),
//     compensating the first column of R to preserve L·R = I.
//   - NormReversible — L = diag(μ)·R with the diagonal overlap rescaled
//     so that LᵀR = I exactly; valid for reversible chains.
//   - NormAuto       — resolves to NormReversible when the injected
//     ReversibilityChecker accepts the matrix, NormStandard otherwise.
type Norm int

const (
	// NormStandard enforces L·R = I with a probabilistic first left row.
	NormStandard Norm = iota

	// NormReversible couples L and R through the stationary vector.
	NormReversible

	// NormAuto defers the choice to a reversibility check.
	NormAuto
)

// String implements fmt.Stringer for error messages and logs.
func (n Norm) String() string {
	switch n {
	case NormStandard:
		return "standard"
	case NormReversible:
		return "reversible"
	case NormAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DiagnosticKind classifies a non-fatal spectral finding.
type DiagnosticKind int

const (
	// DiagComplexEigenvalues — eigenvalues with non-negligible imaginary
	// part were used where a real decay rate is expected; timescales are
	// then computed from magnitudes only.
	DiagComplexEigenvalues DiagnosticKind = iota

	// DiagDegenerateSpectrum — more than one eigenvalue of magnitude ≈ 1,
	// implying a reducible chain with multiple stationary components.
	DiagDegenerateSpectrum
)

// String implements fmt.Stringer.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagComplexEigenvalues:
		return "complex eigenvalues"
	case DiagDegenerateSpectrum:
		return "degenerate spectrum"
	default:
		return "unknown"
	}
}

// Diagnostic is a typed, advisory finding attached to a computation.
// Diagnostics never alter returned values; callers can collect, filter,
// or promote them to failures explicitly.
type Diagnostic struct {
	// Kind classifies the finding.
	Kind DiagnosticKind
	// Detail is a human-readable elaboration (counts, offending values).
	Detail string
}

// ReversibilityChecker reports whether t satisfies detailed balance.
// RDLDecomposition consumes it for NormAuto; injecting the predicate
// keeps the package free of hidden cross-package coupling. See
// stochastic.IsReversible for the canonical implementation.
type ReversibilityChecker func(t *mat.Dense) (bool, error)
