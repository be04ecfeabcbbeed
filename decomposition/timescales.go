// SPDX-License-Identifier: MIT

package decomposition

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// TimescalesFromEigenvalues converts an eigenvalue sequence into implied
// relaxation timescales, one per eigenvalue and in the same order:
//
//	t = −τ / ln|λ|,   with |λ| ≈ 1 (within UnitMagnitudeTol) ⇒ +Inf
//
// the infinite entries marking non-decaying (stationary) modes.
//
// Diagnostics (advisory, never altering the returned values):
//   - DiagComplexEigenvalues when any |Im λ| exceeds ImagTol — a complex
//     eigenvalue makes "timescale" ill-defined as a real decay rate; the
//     conversion proceeds on magnitudes only.
//   - DiagDegenerateSpectrum when more than one eigenvalue has magnitude
//     ≈ 1 — the chain is reducible, with multiple stationary components.
//
// The input order is taken as-is; callers holding an unsorted spectrum
// get timescales co-indexed with their own ordering.
//
// Complexity: Time O(k), Space O(k).
func TimescalesFromEigenvalues(evals []complex128, opts ...Option) ([]float64, []Diagnostic) {
	o := gatherOptions(opts...)

	var diags []Diagnostic

	// Complex-spectrum advisory.
	complexCount := 0
	for _, ev := range evals {
		if math.Abs(imag(ev)) > ImagTol {
			complexCount++
		}
	}
	if complexCount > 0 {
		diags = append(diags, Diagnostic{
			Kind:   DiagComplexEigenvalues,
			Detail: fmt.Sprintf("%d eigenvalues with non-zero imaginary part; timescales use magnitudes only", complexCount),
		})
	}

	// Unit-magnitude detection (absolute tolerance, no relative component).
	unit := make([]bool, len(evals))
	unitCount := 0
	for i, ev := range evals {
		if math.Abs(cmplx.Abs(ev)-1.0) <= UnitMagnitudeTol {
			unit[i] = true
			unitCount++
		}
	}
	if unitCount > 1 {
		diags = append(diags, Diagnostic{
			Kind:   DiagDegenerateSpectrum,
			Detail: fmt.Sprintf("%d eigenvalues with magnitude one", unitCount),
		})
	}

	ts := make([]float64, len(evals))
	for i, ev := range evals {
		if unit[i] {
			ts[i] = math.Inf(1)
			continue
		}
		ts[i] = -o.lag / math.Log(cmplx.Abs(ev))
	}

	return ts, diags
}

// Timescales composes Eigenvalues with the timescale conversion: the
// implied relaxation timescales of a transition matrix at lag time τ.
//
// Ordering and truncation are owned entirely by Eigenvalues (decreasing
// magnitude, WithCount/WithIndices); no second sort happens here, so the
// i-th timescale always belongs to the i-th returned eigenvalue.
//
// Inputs:
//   - t   : row-stochastic transition matrix (n×n); not enforced here.
//   - opts: WithLagTime (default 1), WithCount, WithReversible,
//     WithStationary.
//
// Returns the timescales, any advisory diagnostics, and an error from the
// spectrum computation.
func Timescales(t *mat.Dense, opts ...Option) ([]float64, []Diagnostic, error) {
	o := gatherOptions(opts...)

	evals, err := Eigenvalues(t, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Timescales: %w", err)
	}

	ts, diags := TimescalesFromEigenvalues(evals, WithLagTime(o.lag))

	return ts, diags, nil
}
