// SPDX-License-Identifier: MIT

package decomposition

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// StationaryFromBackwardIteration computes the stationary vector of t
// using backward iteration — the preferred path: one LU factorization and
// a few O(n²) solves instead of a full O(n³) eigen-decomposition, and
// numerically steadier for the eigenvalue-1 mode specifically.
//
// Implementation:
//   - Stage 1: Transpose t (the stationary vector is a LEFT eigenvector)
//     and shift with μ = 1−ε: a controlled perturbation away from the
//     theoretical eigenvalue 1 keeps the shifted matrix non-singular yet
//     near-degenerate.
//   - Stage 2: Run BackwardIteration seeded with the uniform vector, then
//     l1-normalize the result (divide by its SUM, not its norm) into a
//     probability distribution.
//
// Inputs:
//   - t   : row-stochastic transition matrix (n×n); not enforced here.
//   - opts: WithPerturbation (default 1e-15), plus BackwardIteration knobs.
//
// Returns:
//   - []float64: stationary distribution π with Σπᵢ = 1.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare on malformed input.
//   - ErrNotConverged propagated from BackwardIteration.
//
// Complexity:
//   - Time O(n³) dominated by the LU factorization; Space O(n²).
func StationaryFromBackwardIteration(t *mat.Dense, opts ...Option) ([]float64, error) {
	if err := ValidateSquareMatrix(t); err != nil {
		return nil, fmt.Errorf("StationaryFromBackwardIteration: %w", err)
	}
	o := gatherOptions(opts...)
	n, _ := t.Dims()

	// Left eigenproblem of t == right eigenproblem of tᵀ.
	a := mat.NewDense(n, n, nil)
	a.Copy(t.T())

	// Shift away from the theoretical eigenvalue 1.
	mu := 1.0 - o.eps

	// Uniform seed: strictly positive, overlaps any stationary component.
	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = 1.0
	}

	y, err := BackwardIteration(a, mu, x0, WithTolerance(o.tol), WithMaxIterations(o.maxIter))
	if err != nil {
		return nil, err
	}

	// l1 normalization: divide by the sum so entries form a distribution.
	// Dividing by the (possibly negative) sum also cancels the arbitrary
	// sign of the returned eigenvector.
	s := floats.Sum(y)
	pi := make([]float64, n)
	for i := range y {
		pi[i] = y[i] / s
	}

	return pi, nil
}

// StationaryFromEigenvector computes the stationary vector of t from a
// full left eigen-decomposition — the fallback/validation path.
//
// Implementation:
//   - Stage 1: Left eigen-decomposition of t.
//   - Stage 2: Sort eigenvalues descending by raw value — NOT by
//     magnitude. For a well-formed stochastic matrix this places the
//     eigenvalue 1 first without letting a −1 eigenvalue of a periodic
//     chain tie it; the asymmetry with Eigenvalues' magnitude sort is
//     intentional and preserved.
//   - Stage 3: Take the eigenvector of the top eigenvalue, apply
//     elementwise absolute value (guards against the solver's global sign
//     ambiguity), then l1-normalize.
//
// Returns:
//   - []float64: stationary distribution π with Σπᵢ = 1, entries ≥ 0.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare on malformed input.
//   - ErrEigenFailed when the dense solver does not factorize.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func StationaryFromEigenvector(t *mat.Dense) ([]float64, error) {
	if err := ValidateSquareMatrix(t); err != nil {
		return nil, fmt.Errorf("StationaryFromEigenvector: %w", err)
	}
	n, _ := t.Dims()

	var eig mat.Eigen
	if ok := eig.Factorize(t, mat.EigenLeft); !ok {
		return nil, fmt.Errorf("StationaryFromEigenvector: %w", ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var left mat.CDense
	eig.LeftVectorsTo(&left)

	// Descending raw-value order puts the stationary mode first.
	perm := permByValueDesc(vals)
	top := perm[0]

	// |L[:,top]| then l1-normalize.
	nu := make([]float64, n)
	for i := 0; i < n; i++ {
		nu[i] = cmplx.Abs(left.At(i, top))
	}
	s := floats.Sum(nu)
	for i := range nu {
		nu[i] /= s
	}

	return nu, nil
}

// StationaryDistribution computes the stationary vector of t, trying the
// cheap backward-iteration path first and falling back to the full
// eigen-decomposition only when the iteration exhausts its budget.
//
// Notes:
//   - Structural errors (shape, nil) are NOT retried on the fallback;
//     only ErrNotConverged triggers it.
func StationaryDistribution(t *mat.Dense, opts ...Option) ([]float64, error) {
	pi, err := StationaryFromBackwardIteration(t, opts...)
	if err == nil {
		return pi, nil
	}
	if !errors.Is(err, ErrNotConverged) {
		return nil, err
	}

	return StationaryFromEigenvector(t)
}
