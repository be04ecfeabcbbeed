// SPDX-License-Identifier: MIT

package decomposition_test

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/decomposition"
)

// cmul multiplies two complex matrices the slow, obviously-correct way.
func cmul(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)
	var i, j, k int
	var acc complex128
	for i = 0; i < ar; i++ {
		for j = 0; j < bc; j++ {
			acc = 0
			for k = 0; k < ac; k++ {
				acc += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, acc)
		}
	}

	return out
}

// assertCIdentity asserts m ≈ I.
func assertCIdentity(t *testing.T, m *mat.CDense, tol float64) {
	t.Helper()
	r, c := m.Dims()
	require.Equal(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, 0.0, cmplx.Abs(m.At(i, j)-want), tol)
		}
	}
}

// assertReconstructs asserts R·D·L ≈ T.
func assertReconstructs(t *testing.T, tm *mat.Dense, r, d, l *mat.CDense, tol float64) {
	t.Helper()
	prod := cmul(cmul(r, d), l)
	n, _ := tm.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, 0.0, cmplx.Abs(prod.At(i, j)-complex(tm.At(i, j), 0)), tol)
		}
	}
}

func TestRDLDecomposition_StandardNorm(t *testing.T) {
	tm, err := builder.TwoState(0.1, 0.3)
	require.NoError(t, err)

	r, d, l, err := decomposition.RDLDecomposition(tm)
	require.NoError(t, err)

	// L·R = I and R·D·L reconstructs T.
	assertCIdentity(t, cmul(l, r), 1e-10)
	assertReconstructs(t, tm, r, d, l, 1e-10)

	// Leading eigenvalue sits at D[0,0].
	assert.InDelta(t, 1.0, real(d.At(0, 0)), 1e-12)
	assert.InDelta(t, 0.6, real(d.At(1, 1)), 1e-12)

	// The first left row is the stationary distribution and the first
	// right column the constant vector, the standard-norm pairing.
	assert.InDelta(t, 0.75, real(l.At(0, 0)), 1e-10)
	assert.InDelta(t, 0.25, real(l.At(0, 1)), 1e-10)
	assert.InDelta(t, 1.0, real(r.At(0, 0)), 1e-10)
	assert.InDelta(t, 1.0, real(r.At(1, 0)), 1e-10)
}

func TestRDLDecomposition_ReversibleNorm(t *testing.T) {
	tm, err := builder.BirthDeath(6, 0.2, 0.1)
	require.NoError(t, err)

	r, d, l, err := decomposition.RDLDecomposition(tm, decomposition.WithNorm(decomposition.NormReversible))
	require.NoError(t, err)

	assertCIdentity(t, cmul(l, r), 1e-9)
	assertReconstructs(t, tm, r, d, l, 1e-9)

	// Stationary pairing with the sign fixed positive.
	assert.InDelta(t, 1.0, real(d.At(0, 0)), 1e-10)
	assert.Greater(t, real(r.At(0, 0)), 0.0)

	// First left row equals the stationary distribution.
	pi, err := decomposition.StationaryDistribution(tm)
	require.NoError(t, err)
	for j := range pi {
		assert.InDelta(t, pi[j], real(l.At(0, j)), 1e-9)
		assert.InDelta(t, 0.0, imag(l.At(0, j)), 1e-12)
	}
}

func TestRDLDecomposition_ReversibleWeighting(t *testing.T) {
	// In the reversible convention L = diag(μ)·R entry for entry.
	tm, err := builder.BirthDeath(5, 0.25, 0.15)
	require.NoError(t, err)

	r, _, l, err := decomposition.RDLDecomposition(tm, decomposition.WithNorm(decomposition.NormReversible))
	require.NoError(t, err)
	pi, err := decomposition.StationaryDistribution(tm)
	require.NoError(t, err)

	n := len(pi)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, 0.0, cmplx.Abs(l.At(j, i)-complex(pi[i], 0)*r.At(i, j)), 1e-9)
		}
	}
}

func TestRDLDecomposition_AutoNorm(t *testing.T) {
	tm, err := builder.BirthDeath(5, 0.2, 0.1)
	require.NoError(t, err)

	// The default checker detects detailed balance and routes to the
	// reversible convention.
	ar, ad, al, err := decomposition.RDLDecomposition(tm, decomposition.WithNorm(decomposition.NormAuto))
	require.NoError(t, err)
	rr, rd, rl, err := decomposition.RDLDecomposition(tm, decomposition.WithNorm(decomposition.NormReversible))
	require.NoError(t, err)

	assert.True(t, mat.CEqualApprox(ar, rr, 1e-12))
	assert.True(t, mat.CEqualApprox(ad, rd, 1e-12))
	assert.True(t, mat.CEqualApprox(al, rl, 1e-12))
}

func TestRDLDecomposition_AutoNormInjectedChecker(t *testing.T) {
	tm, err := builder.BirthDeath(5, 0.2, 0.1)
	require.NoError(t, err)

	// An injected always-false predicate forces the standard convention
	// even on a reversible chain.
	deny := func(*mat.Dense) (bool, error) { return false, nil }
	ar, _, _, err := decomposition.RDLDecomposition(tm,
		decomposition.WithNorm(decomposition.NormAuto),
		decomposition.WithReversibilityChecker(deny))
	require.NoError(t, err)
	sr, _, _, err := decomposition.RDLDecomposition(tm, decomposition.WithNorm(decomposition.NormStandard))
	require.NoError(t, err)

	assert.True(t, mat.CEqualApprox(ar, sr, 1e-12))
}

func TestRDLDecomposition_Truncation(t *testing.T) {
	const n, k = 6, 3
	tm, err := builder.BirthDeath(n, 0.2, 0.1)
	require.NoError(t, err)

	r, d, l, err := decomposition.RDLDecomposition(tm, decomposition.WithCount(k))
	require.NoError(t, err)

	rr, rc := r.Dims()
	dr, dc := d.Dims()
	lr, lc := l.Dims()
	assert.Equal(t, [2]int{n, k}, [2]int{rr, rc})
	assert.Equal(t, [2]int{k, k}, [2]int{dr, dc})
	assert.Equal(t, [2]int{k, n}, [2]int{lr, lc})

	// The truncated blocks still pair up: L·R = I on the leading k modes.
	assertCIdentity(t, cmul(l, r), 1e-9)

	// Truncation is a pure prefix of the full decomposition.
	fr, fd, fl, err := decomposition.RDLDecomposition(tm)
	require.NoError(t, err)
	for j := 0; j < k; j++ {
		assert.Equal(t, fd.At(j, j), d.At(j, j))
		for i := 0; i < n; i++ {
			assert.Equal(t, fr.At(i, j), r.At(i, j))
			assert.Equal(t, fl.At(j, i), l.At(j, i))
		}
	}
}

func TestRDLDecomposition_ComplexSpectrum(t *testing.T) {
	// A strongly cyclic chain has genuinely complex eigenvalue pairs; the
	// standard norm must still satisfy L·R = I and R·D·L = T.
	tm := mat.NewDense(3, 3, []float64{
		0.1, 0.8, 0.1,
		0.1, 0.1, 0.8,
		0.8, 0.1, 0.1,
	})

	r, d, l, err := decomposition.RDLDecomposition(tm)
	require.NoError(t, err)

	hasComplex := false
	for i := 0; i < 3; i++ {
		if imag(d.At(i, i)) != 0 {
			hasComplex = true
		}
	}
	assert.True(t, hasComplex)

	assertCIdentity(t, cmul(l, r), 1e-9)
	assertReconstructs(t, tm, r, d, l, 1e-9)
}

func TestRDLDecomposition_Errors(t *testing.T) {
	tm, err := builder.TwoState(0.1, 0.3)
	require.NoError(t, err)

	_, _, _, err = decomposition.RDLDecomposition(nil)
	assert.True(t, errors.Is(err, decomposition.ErrNilMatrix))

	_, _, _, err = decomposition.RDLDecomposition(tm, decomposition.WithNorm(decomposition.Norm(42)))
	assert.True(t, errors.Is(err, decomposition.ErrUnknownNorm))
}
