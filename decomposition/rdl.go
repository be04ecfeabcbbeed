// SPDX-License-Identifier: MIT

package decomposition

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/stochastic"
)

// RDLDecomposition computes the joint decomposition of a transition
// matrix into right eigenvectors R (columns), the diagonal eigenvalue
// matrix D, and left eigenvectors L (rows), co-indexed and sorted by
// decreasing eigenvalue magnitude.
//
// Implementation:
//   - Stage 1: Validate; general right eigen-decomposition of T; sort the
//     pairs by decreasing |λ| (stable ties).
//   - Stage 2: Resolve NormAuto through the injected
//     ReversibilityChecker (default: detailed balance against a
//     backward-iteration stationary vector).
//   - Stage 3 (NormStandard): solve Rᵀ·Lcols = I so that L·R = I, then
//     rescale the pair at index 0 — the first row of L becomes a true
//     probability distribution (the stationary vector) while the first
//     column of R absorbs the same factor, preserving L·R = I.
//   - Stage 3 (NormReversible): solve the single system Rᵀ·ν = e₀ for a
//     vector proportional to the stationary distribution, l1-normalize to
//     μ, fix the sign of R's first column so its first entry is positive
//     (removes the solver's arbitrary sign freedom), set L = diag(μ)·R,
//     and rescale both by the diagonal overlap 1/√diag(LᵀR) so that
//     LᵀR becomes the identity exactly.
//   - Stage 4: Truncate to the leading k pairs when WithCount is applied:
//     first k columns of R, the k×k block of D, first k rows of L.
//
// Inputs:
//   - t   : row-stochastic transition matrix (n×n); not enforced here.
//   - opts: WithNorm (default NormStandard), WithCount,
//     WithReversibilityChecker (NormAuto only).
//
// Returns:
//   - r: n×k matrix of right eigenvectors as columns.
//   - d: k×k diagonal matrix of eigenvalues.
//   - l: k×n matrix of left eigenvectors as rows.
//
// Errors:
//   - ErrUnknownNorm for a mode outside the three recognized values.
//   - ErrNilMatrix / ErrNonSquare on malformed input.
//   - ErrEigenFailed / ErrSingular / ErrNotConverged propagated from the
//     primitives (the last only via the default auto checker).
//
// Complexity:
//   - Time O(n³); the standard norm solves the complex system through a
//     real 2n×2n embedding. Space O(n²).
//
// AI-Hints:
//   - Prefer an explicit WithNorm over NormAuto when the chain's class is
//     known; auto adds a stationary-vector computation per call.
func RDLDecomposition(t *mat.Dense, opts ...Option) (r, d, l *mat.CDense, err error) {
	if err = ValidateSquareMatrix(t); err != nil {
		return nil, nil, nil, fmt.Errorf("RDLDecomposition: %w", err)
	}
	o := gatherOptions(opts...)
	norm := o.norm
	if norm != NormStandard && norm != NormReversible && norm != NormAuto {
		return nil, nil, nil, fmt.Errorf("RDLDecomposition: norm %d: %w", int(norm), ErrUnknownNorm)
	}
	n, _ := t.Dims()

	// General right eigen-decomposition; spectrum may be complex.
	var eig mat.Eigen
	if ok := eig.Factorize(t, mat.EigenRight); !ok {
		return nil, nil, nil, fmt.Errorf("RDLDecomposition: %w", ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var raw mat.CDense
	eig.VectorsTo(&raw)

	// Sorted copies: R columns and the diagonal of D share the ordering.
	perm := permByMagnitudeDesc(vals)
	rm := mat.NewCDense(n, n, nil)
	dm := mat.NewCDense(n, n, nil)
	var i, j int
	for j = 0; j < n; j++ {
		src := perm[j]
		dm.Set(j, j, vals[src])
		for i = 0; i < n; i++ {
			rm.Set(i, j, raw.At(i, src))
		}
	}

	// Auto mode resolves through the injected predicate.
	if norm == NormAuto {
		checker := o.checker
		if checker == nil {
			checker = defaultReversibilityChecker
		}
		rev, cerr := checker(t)
		if cerr != nil {
			return nil, nil, nil, fmt.Errorf("RDLDecomposition: auto norm: %w", cerr)
		}
		if rev {
			norm = NormReversible
		} else {
			norm = NormStandard
		}
	}

	var lm *mat.CDense // left eigenvectors as ROWS
	switch norm {
	case NormStandard:
		// Lcols = (Rᵀ)⁻¹, columns are left eigenvectors.
		lcols, serr := solveComplex(ctranspose(rm), cidentity(n))
		if serr != nil {
			return nil, nil, nil, fmt.Errorf("RDLDecomposition: %w", serr)
		}
		// Rescale pair 0: first left vector becomes a distribution, the
		// first right column compensates to keep L·R = I.
		var sum0 complex128
		for i = 0; i < n; i++ {
			sum0 += lcols.At(i, 0)
		}
		for i = 0; i < n; i++ {
			rm.Set(i, 0, rm.At(i, 0)*sum0)
			lcols.Set(i, 0, lcols.At(i, 0)/sum0)
		}
		lm = ctranspose(lcols)

	case NormReversible:
		// Single solve Rᵀ·ν = e₀ yields ν ∝ μ.
		e0 := mat.NewCDense(n, 1, nil)
		e0.Set(0, 0, 1)
		nu, serr := solveComplex(ctranspose(rm), e0)
		if serr != nil {
			return nil, nil, nil, fmt.Errorf("RDLDecomposition: %w", serr)
		}
		var sum complex128
		for i = 0; i < n; i++ {
			sum += nu.At(i, 0)
		}
		muc := make([]complex128, n)
		for i = 0; i < n; i++ {
			muc[i] = nu.At(i, 0) / sum
		}

		// Remove the solver's sign freedom on the stationary column.
		if real(rm.At(0, 0)) < 0 {
			for i = 0; i < n; i++ {
				rm.Set(i, 0, -rm.At(i, 0))
			}
		}

		// L = diag(μ)·R, columns orientation.
		lcols := mat.NewCDense(n, n, nil)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				lcols.Set(i, j, muc[i]*rm.At(i, j))
			}
		}

		// Diagonal overlap s = diag(LᵀR); rescale both sides by 1/√s so
		// LᵀR becomes the identity exactly.
		var s, root complex128
		for j = 0; j < n; j++ {
			s = 0
			for i = 0; i < n; i++ {
				s += lcols.At(i, j) * rm.At(i, j)
			}
			root = cmplx.Sqrt(s)
			for i = 0; i < n; i++ {
				rm.Set(i, j, rm.At(i, j)/root)
				lcols.Set(i, j, lcols.At(i, j)/root)
			}
		}
		lm = ctranspose(lcols)
	}

	return truncateRDL(rm, dm, lm, o.k)
}

// truncateRDL cuts the co-indexed triple down to its leading k pairs:
// R keeps its first k columns, D its leading k×k block, L its first k
// rows. k <= 0 or k >= n returns fresh full-size copies, so callers
// always own their result.
func truncateRDL(rm, dm, lm *mat.CDense, k int) (r, d, l *mat.CDense, err error) {
	n, _ := rm.Dims()
	if k <= 0 || k > n {
		k = n
	}
	r = mat.NewCDense(n, k, nil)
	d = mat.NewCDense(k, k, nil)
	l = mat.NewCDense(k, n, nil)
	var i, j int
	for j = 0; j < k; j++ {
		d.Set(j, j, dm.At(j, j))
		for i = 0; i < n; i++ {
			r.Set(i, j, rm.At(i, j))
			l.Set(j, i, lm.At(j, i))
		}
	}

	return r, d, l, nil
}

// defaultReversibilityChecker backs NormAuto when no predicate was
// injected: detailed balance against a backward-iteration stationary
// vector, with the stochastic package's default tolerance.
func defaultReversibilityChecker(t *mat.Dense) (bool, error) {
	mu, err := StationaryFromBackwardIteration(t)
	if err != nil {
		return false, err
	}

	return stochastic.IsReversible(t, mu, stochastic.DefaultTol)
}
