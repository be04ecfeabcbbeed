// SPDX-License-Identifier: MIT

package decomposition

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BackwardIteration refines an eigenvector estimate for the eigenvalue of
// a nearest μ via classic inverse iteration.
//
// Implementation:
//   - Stage 1: Validate a (square) and x0 (length n, nonzero norm).
//     Form the shifted matrix (A − μI) and LU-factor it once.
//   - Stage 2: Repeatedly solve the factored system against the current
//     normalized iterate, renormalize, and track the reciprocal norm r as
//     the convergence signal. Because (A − μI) is near-singular when μ is
//     close to a true eigenvalue, each solve amplifies the eigenvector
//     component; r ≤ tol means the iterate has locked onto it.
//
// Behavior highlights:
//   - Input a and x0 are never mutated; the result is freshly allocated.
//   - gonum reports ill-conditioned solves through a mat.Condition value;
//     the shifted system is near-singular by construction, so Condition is
//     treated as advisory and only genuine solve failures abort.
//
// Inputs:
//   - a   : square matrix (n×n) whose eigenvector is desired.
//   - mu  : approximate eigenvalue for the desired eigenvector.
//   - x0  : initial guess, length n, nonzero.
//   - opts: WithTolerance (default 1e-14), WithMaxIterations (default 100).
//
// Returns:
//   - []float64: unit-norm eigenvector estimate for the eigenvalue nearest μ.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch / ErrZeroVector
//     on malformed input.
//   - ErrSingular when a solve fails outright.
//   - ErrNotConverged after the iteration budget; the wrap carries the
//     iteration count and the final residuum. Retrying with the same
//     inputs cannot help — choose a different shift or initial vector.
//
// Complexity:
//   - Time O(n³) for the factorization plus O(maxIter·n²) solves; Space O(n²).
//
// AI-Hints:
//   - For the stationary mode of a stochastic matrix, shift with μ = 1−ε
//     (see StationaryFromBackwardIteration) instead of μ = 1 exactly.
func BackwardIteration(a *mat.Dense, mu float64, x0 []float64, opts ...Option) ([]float64, error) {
	// Validate shape contracts first (fail fast, before any allocation).
	if err := ValidateSquareMatrix(a); err != nil {
		return nil, fmt.Errorf("BackwardIteration: %w", err)
	}
	n, _ := a.Dims()
	if err := ValidateVecLen(x0, n); err != nil {
		return nil, fmt.Errorf("BackwardIteration: %w", err)
	}
	o := gatherOptions(opts...)

	// Shifted matrix (A − μI); a itself stays untouched.
	shifted := mat.NewDense(n, n, nil)
	shifted.Copy(a)
	var i int
	for i = 0; i < n; i++ {
		shifted.Set(i, i, shifted.At(i, i)-mu)
	}

	// Factor once; every refinement reuses the same LU.
	var lu mat.LU
	lu.Factorize(shifted)

	// Starting iterate with ‖y₀‖ = 1.
	r := floats.Norm(x0, 2)
	if r == 0 {
		return nil, fmt.Errorf("BackwardIteration: %w", ErrZeroVector)
	}
	r = 1.0 / r
	y := mat.NewVecDense(n, nil)
	for i = 0; i < n; i++ {
		y.SetVec(i, x0[i]*r)
	}

	// Inverse-iteration refinements.
	x := mat.NewVecDense(n, nil)
	var cond mat.Condition
	var iter int
	for iter = 0; iter < o.maxIter; iter++ {
		if err := lu.SolveVecTo(x, false, y); err != nil && !errors.As(err, &cond) {
			return nil, fmt.Errorf("BackwardIteration: solve: %w", ErrSingular)
		}
		r = 1.0 / floats.Norm(x.RawVector().Data, 2)
		y.ScaleVec(r, x)
		if r <= o.tol {
			out := make([]float64, n)
			copy(out, y.RawVector().Data)

			return out, nil
		}
	}

	return nil, fmt.Errorf("BackwardIteration: failed after %d iterations, residuum is %e: %w", o.maxIter, r, ErrNotConverged)
}
