// SPDX-License-Identifier: MIT
// Package decomposition: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// decomposition package. All algorithms MUST return these sentinels and
// tests MUST check them via errors.Is. No algorithm panics on
// user-triggered error conditions; panics are reserved for programmer
// errors in option constructors.

package decomposition

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "decomposition: ..." for consistency and
// to allow easy grepping across logs. Do not %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// via errors.Is.

var (
	// ErrNilMatrix indicates that a nil or empty matrix argument was used.
	ErrNilMatrix = errors.New("decomposition: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("decomposition: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between a
	// matrix and a vector argument (e.g., initial guess or stationary vector).
	ErrDimensionMismatch = errors.New("decomposition: dimension mismatch")

	// ErrZeroVector indicates an initial vector with zero Euclidean norm,
	// which cannot seed an inverse iteration.
	ErrZeroVector = errors.New("decomposition: initial vector has zero norm")

	// ErrNotConverged is returned by BackwardIteration when the reciprocal
	// iterate norm never drops below tolerance within the iteration budget.
	// The wrap at the call site carries the iteration count and the final
	// residuum. This is the only hard numerical failure in the package.
	ErrNotConverged = errors.New("decomposition: backward iteration failed to converge")

	// ErrUnknownNorm is returned by RDLDecomposition for a normalization
	// mode outside {NormStandard, NormReversible, NormAuto}.
	ErrUnknownNorm = errors.New("decomposition: unknown normalization mode")

	// ErrIndexOutOfRange indicates an eigenvalue index selection outside
	// the sorted spectrum; the wrap reports the offending indices.
	ErrIndexOutOfRange = errors.New("decomposition: eigenvalue index out of range")

	// ErrBadDistribution indicates a supplied stationary vector that is not
	// strictly positive, so the reversible symmetrization diag(√μ)·T·diag(1/√μ)
	// is undefined.
	ErrBadDistribution = errors.New("decomposition: stationary vector must be strictly positive")

	// ErrEigenFailed indicates that the underlying dense eigen-solver did
	// not successfully factorize the input.
	ErrEigenFailed = errors.New("decomposition: eigen decomposition failed")

	// ErrSingular is returned when a linear solve against a factored system
	// fails outright (beyond an ill-conditioning advisory).
	ErrSingular = errors.New("decomposition: singular matrix")
)
