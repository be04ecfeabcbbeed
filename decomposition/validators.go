// SPDX-License-Identifier: MIT
// Package: decomposition
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep algorithm files minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (wrapped with a validator tag) so call
//     sites can wrap uniformly and callers match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package decomposition

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquareMatrix ensures t is non-nil, non-empty and square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareMatrix(t *mat.Dense) error {
	if t == nil || t.IsEmpty() {
		return validatorErrorf("ValidateSquareMatrix", ErrNilMatrix)
	}
	if r, c := t.Dims(); r != c {
		return validatorErrorf("ValidateSquareMatrix", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil || len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePositiveVec ensures every entry of mu is strictly positive, as
// required by the diag(√μ) similarity transform.
// Errors: ErrBadDistribution. Complexity: O(n).
func ValidatePositiveVec(mu []float64) error {
	for i, v := range mu {
		if !(v > 0) { // rejects zero, negatives and NaN in one predicate
			return validatorErrorf(fmt.Sprintf("ValidatePositiveVec: entry %d = %g", i, v), ErrBadDistribution)
		}
	}

	return nil
}

// ValidateIndices ensures every selection index falls inside [0, n).
// All offending indices are reported in the wrap, not just the first.
// Errors: ErrIndexOutOfRange. Complexity: O(len(indices)).
func ValidateIndices(indices []int, n int) error {
	var bad []int
	for _, ix := range indices {
		if ix < 0 || ix >= n {
			bad = append(bad, ix)
		}
	}
	if len(bad) > 0 {
		return validatorErrorf(fmt.Sprintf("ValidateIndices: indices %v do not exist in a spectrum of size %d", bad, n), ErrIndexOutOfRange)
	}

	return nil
}
