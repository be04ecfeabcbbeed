// SPDX-License-Identifier: MIT

package stochastic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultTol is the absolute tolerance used by callers that do not carry
// a tolerance of their own. It sits well above float64 round-off yet far
// below any probability a model would distinguish.
const DefaultTol = 1e-12

// IsTransitionMatrix reports whether t is a row-stochastic transition
// matrix: square, every entry ≥ −tol, every row sum within tol of one.
//
// Behavior highlights:
//   - A nil or empty matrix is not a transition matrix; no error, just false.
//   - Entries in (−tol, 0) are accepted as numerical noise, matching the
//     tolerance applied to the row sums.
//
// Determinism: pure function of (t, tol). Complexity: O(n²) time, O(1) space.
func IsTransitionMatrix(t *mat.Dense, tol float64) bool {
	if t == nil || t.IsEmpty() {
		return false
	}
	r, c := t.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		row := t.RawRowView(i)
		for _, p := range row {
			if p < -tol {
				return false
			}
		}
		if math.Abs(floats.Sum(row)-1.0) > tol {
			return false
		}
	}

	return true
}

// IsDistribution reports whether v is a probability distribution: every
// entry ≥ −tol and the total within tol of one. An empty vector is not a
// distribution. Complexity: O(n).
func IsDistribution(v []float64, tol float64) bool {
	if len(v) == 0 {
		return false
	}
	for _, p := range v {
		if p < -tol {
			return false
		}
	}

	return math.Abs(floats.Sum(v)-1.0) <= tol
}

// IsReversible reports whether t satisfies detailed balance with respect
// to the stationary vector mu:
//
//	μᵢ·Tᵢⱼ = μⱼ·Tⱼᵢ   for all i, j (within tol, absolute).
//
// Inputs:
//   - t  : transition matrix (n×n).
//   - mu : stationary distribution candidate, length n.
//   - tol: absolute comparison tolerance (DefaultTol is a sane pick).
//
// Returns:
//   - (true, nil) when every flux pair balances.
//   - (false, nil) on the first violated pair.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare on a malformed matrix.
//   - ErrDimensionMismatch when len(mu) differs from n.
//
// Determinism: pure function of its inputs. Complexity: O(n²) time.
func IsReversible(t *mat.Dense, mu []float64, tol float64) (bool, error) {
	if t == nil || t.IsEmpty() {
		return false, fmt.Errorf("IsReversible: %w", ErrNilMatrix)
	}
	r, c := t.Dims()
	if r != c {
		return false, fmt.Errorf("IsReversible: %dx%d: %w", r, c, ErrNonSquare)
	}
	if len(mu) != r {
		return false, fmt.Errorf("IsReversible: vector length %d, matrix order %d: %w", len(mu), r, ErrDimensionMismatch)
	}

	// Only the upper triangle needs checking; the relation is symmetric.
	var i, j int
	for i = 0; i < r; i++ {
		for j = i + 1; j < r; j++ {
			if math.Abs(mu[i]*t.At(i, j)-mu[j]*t.At(j, i)) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
