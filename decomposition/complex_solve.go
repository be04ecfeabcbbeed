// SPDX-License-Identifier: MIT

package decomposition

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Complex linear systems arise on the standard-norm RDL path whenever the
// general solver returns a complex spectrum. gonum's mat package offers
// no complex LU/solve, and hand-rolling complex Gaussian elimination
// would cross the consumed-primitives boundary — so A·X = B is solved
// through the standard real embedding
//
//	[ Re(A) −Im(A) ] [ Re(X) ]   [ Re(B) ]
//	[ Im(A)  Re(A) ] [ Im(X) ] = [ Im(B) ]
//
// keeping gonum's real Dense.Solve as the only primitive exercised.

// solveComplex solves A·X = B for square complex A (n×n) and B (n×m).
// A and B are not mutated; X is freshly allocated.
// Errors: ErrSingular when the embedded real solve fails outright
// (a mat.Condition advisory is tolerated). Complexity: O((2n)³).
func solveComplex(a, b *mat.CDense) (*mat.CDense, error) {
	n, _ := a.Dims()
	_, m := b.Dims()

	// Assemble the 2n×2n real block matrix and 2n×m right-hand side.
	big := mat.NewDense(2*n, 2*n, nil)
	rhs := mat.NewDense(2*n, m, nil)
	var i, j int
	var v complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = a.At(i, j)
			big.Set(i, j, real(v))
			big.Set(i, n+j, -imag(v))
			big.Set(n+i, j, imag(v))
			big.Set(n+i, n+j, real(v))
		}
		for j = 0; j < m; j++ {
			v = b.At(i, j)
			rhs.Set(i, j, real(v))
			rhs.Set(n+i, j, imag(v))
		}
	}

	var x mat.Dense
	var cond mat.Condition
	if err := x.Solve(big, rhs); err != nil && !errors.As(err, &cond) {
		return nil, fmt.Errorf("solveComplex: %w", ErrSingular)
	}

	// Unpack the stacked real solution back into complex form.
	out := mat.NewCDense(n, m, nil)
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			out.Set(i, j, complex(x.At(i, j), x.At(n+i, j)))
		}
	}

	return out, nil
}

// ctranspose returns the plain (non-conjugating) transpose of a as a
// fresh CDense. The RDL normalizations are defined through Aᵀ, not Aᴴ.
func ctranspose(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}

	return out
}

// cidentity returns the n×n complex identity.
func cidentity(n int) *mat.CDense {
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}

	return out
}
