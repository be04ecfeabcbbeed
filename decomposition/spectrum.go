// SPDX-License-Identifier: MIT

package decomposition

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// permByMagnitudeDesc returns the permutation that sorts vals by
// decreasing absolute value. The sort is stable: ties keep the
// solver-returned order (documented policy; no secondary key is imposed).
func permByMagnitudeDesc(vals []complex128) []int {
	perm := make([]int, len(vals))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return cmplx.Abs(vals[perm[a]]) > cmplx.Abs(vals[perm[b]])
	})

	return perm
}

// permByValueDesc returns the permutation that sorts vals by decreasing
// raw value: real part first, imaginary part as tiebreaker. Used by the
// stationary-from-eigenvector path only (see StationaryFromEigenvector).
func permByValueDesc(vals []complex128) []int {
	perm := make([]int, len(vals))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		va, vb := vals[perm[a]], vals[perm[b]]
		if real(va) != real(vb) {
			return real(va) > real(vb)
		}

		return imag(va) > imag(vb)
	})

	return perm
}

// selectPositions resolves the k/indices policy against a sorted spectrum
// of size n: explicit indices win over a leading count; a count larger
// than n, or no selection at all, yields the identity 0..n-1.
func selectPositions(o Options, n int) ([]int, error) {
	if o.indices != nil {
		if err := ValidateIndices(o.indices, n); err != nil {
			return nil, err
		}

		return o.indices, nil
	}
	size := n
	if o.k > 0 && o.k < n {
		size = o.k
	}
	pos := make([]int, size)
	for i := range pos {
		pos[i] = i
	}

	return pos, nil
}

// symmetrize builds S = diag(√μ)·T·diag(1/√μ), the similarity transform
// of a reversible transition matrix: identical spectrum, but symmetric,
// so the specialized symmetric solver applies and eigenvalues are real.
// Each entry is written to both triangles from the single (i,j) formula
// so the result is exactly symmetric despite float noise in T.
func symmetrize(t *mat.Dense, mu []float64) *mat.SymDense {
	n := len(mu)
	smu := make([]float64, n)
	for i, v := range mu {
		smu[i] = math.Sqrt(v)
	}
	data := make([]float64, n*n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = smu[i] * t.At(i, j) / smu[j]
			data[i*n+j] = v
			data[j*n+i] = v
		}
	}

	return mat.NewSymDense(n, data)
}

// resolveStationary returns the μ to symmetrize with: the supplied vector
// (validated for length and positivity) or a fresh backward-iteration run.
func resolveStationary(t *mat.Dense, o Options) ([]float64, error) {
	n, _ := t.Dims()
	if o.mu != nil {
		if err := ValidateVecLen(o.mu, n); err != nil {
			return nil, err
		}
		if err := ValidatePositiveVec(o.mu); err != nil {
			return nil, err
		}

		return o.mu, nil
	}

	return StationaryFromBackwardIteration(t)
}

// Eigenvalues computes the eigenvalues of a transition matrix, ordered by
// decreasing absolute value.
//
// Implementation:
//   - Stage 1: Validate; resolve options.
//   - Stage 2: Reversible path — symmetrize via S = diag(√μ)·T·diag(1/√μ)
//     (μ from WithStationary or backward iteration) and run the symmetric
//     solver. General path — run the general solver on T directly;
//     eigenvalues may be complex.
//   - Stage 3: Sort by decreasing magnitude. The re-sort is required on
//     BOTH paths: the symmetric solver returns ascending real eigenvalues
//     and the general solver gives no ordering guarantee.
//   - Stage 4: Apply the selection policy (WithIndices exact positions,
//     WithCount leading entries, default full spectrum).
//
// Inputs:
//   - t   : row-stochastic transition matrix (n×n); not enforced here.
//   - opts: WithCount, WithIndices, WithReversible, WithStationary.
//
// Returns:
//   - []complex128: selected eigenvalues, magnitude non-increasing
//     (within the selection); real-axis values keep zero imaginary parts
//     on the reversible path.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare on malformed input.
//   - ErrBadDistribution / ErrDimensionMismatch for an unusable μ.
//   - ErrIndexOutOfRange for selections outside the spectrum, reporting
//     the offending indices.
//   - ErrEigenFailed / ErrNotConverged propagated from the primitives.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Pass WithStationary when you already hold μ; it skips a full
//     backward-iteration run per call.
func Eigenvalues(t *mat.Dense, opts ...Option) ([]complex128, error) {
	if err := ValidateSquareMatrix(t); err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}
	o := gatherOptions(opts...)
	n, _ := t.Dims()

	var evals []complex128
	if o.reversible {
		mu, err := resolveStationary(t, o)
		if err != nil {
			return nil, fmt.Errorf("Eigenvalues: %w", err)
		}
		var es mat.EigenSym
		if ok := es.Factorize(symmetrize(t, mu), false); !ok {
			return nil, fmt.Errorf("Eigenvalues: %w", ErrEigenFailed)
		}
		re := es.Values(nil) // ascending real eigenvalues
		evals = make([]complex128, n)
		for i, v := range re {
			evals[i] = complex(v, 0)
		}
	} else {
		var eig mat.Eigen
		if ok := eig.Factorize(t, mat.EigenNone); !ok {
			return nil, fmt.Errorf("Eigenvalues: %w", ErrEigenFailed)
		}
		evals = eig.Values(nil)
	}

	// Decreasing |λ| with stable ties.
	perm := permByMagnitudeDesc(evals)
	sorted := make([]complex128, n)
	for i, p := range perm {
		sorted[i] = evals[p]
	}

	// Selection policy.
	pos, err := selectPositions(o, n)
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}
	out := make([]complex128, len(pos))
	for i, p := range pos {
		out[i] = sorted[p]
	}

	return out, nil
}

// Eigenvectors computes the right (default) or left (WithLeft)
// eigenvectors of a transition matrix, returned as the columns of a fresh
// complex matrix, ordered by decreasing magnitude of the corresponding
// eigenvalue and filtered by the same selection policy as Eigenvalues.
//
// Errors mirror Eigenvalues; the reversible symmetrization does not apply
// here (vectors of S are not vectors of T without back-transformation).
//
// Complexity: Time O(n³), Space O(n²).
func Eigenvectors(t *mat.Dense, opts ...Option) (*mat.CDense, error) {
	if err := ValidateSquareMatrix(t); err != nil {
		return nil, fmt.Errorf("Eigenvectors: %w", err)
	}
	o := gatherOptions(opts...)
	n, _ := t.Dims()

	kind := mat.EigenRight
	if o.left {
		kind = mat.EigenLeft
	}
	var eig mat.Eigen
	if ok := eig.Factorize(t, kind); !ok {
		return nil, fmt.Errorf("Eigenvectors: %w", ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var vecs mat.CDense
	if o.left {
		eig.LeftVectorsTo(&vecs)
	} else {
		eig.VectorsTo(&vecs)
	}

	perm := permByMagnitudeDesc(vals)
	pos, err := selectPositions(o, n)
	if err != nil {
		return nil, fmt.Errorf("Eigenvectors: %w", err)
	}

	// Column p of the output is the eigenvector at sorted position pos[p].
	out := mat.NewCDense(n, len(pos), nil)
	var i, p int
	for p = 0; p < len(pos); p++ {
		src := perm[pos[p]]
		for i = 0; i < n; i++ {
			out.Set(i, p, vecs.At(i, src))
		}
	}

	return out, nil
}
