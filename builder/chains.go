// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// chains.go — canonical transition-matrix constructors.
//
// Contract (shared by every constructor):
//   • Parameter domains are validated first; sentinel errors, never panics.
//   • Rows of the returned matrix sum to one up to float64 round-off.
//   • Construction is fully deterministic given the arguments (and seed).
//
// Complexity: O(n²) time and space per constructor unless noted.

package builder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodTwoState   = "TwoState"
	methodBirthDeath = "BirthDeath"
	methodLazyWalk   = "LazyRandomWalk"
	methodMetastable = "Metastable"
	methodRandom     = "RandomStochastic"

	minChainStates = 2
	minBlockCount  = 2
	minBlockSize   = 2
)

// TwoState builds the 2-state chain
//
//	⎡ 1−a   a  ⎤
//	⎣  b   1−b ⎦
//
// with switch rates a (state 0 → 1) and b (state 1 → 0). Its spectrum is
// {1, 1−a−b} and its stationary distribution (b, a)/(a+b), which makes it
// the standard closed-form fixture for spectral assertions.
//
// Errors: ErrBadProbability when a or b escapes [0,1].
func TwoState(a, b float64) (*mat.Dense, error) {
	if a < 0 || a > 1 {
		return nil, fmt.Errorf("%s: a=%g: %w", methodTwoState, a, ErrBadProbability)
	}
	if b < 0 || b > 1 {
		return nil, fmt.Errorf("%s: b=%g: %w", methodTwoState, b, ErrBadProbability)
	}

	return mat.NewDense(2, 2, []float64{
		1 - a, a,
		b, 1 - b,
	}), nil
}

// BirthDeath builds the nearest-neighbour chain on states 0..n−1: every
// interior state moves up with probability p, down with probability q,
// and holds with 1−p−q; the two boundary states reflect the blocked move
// into their holding mass. The chain is reversible by construction, so
// it exercises the symmetrized (real-spectrum) code paths.
//
// Errors:
//   - ErrBadSize when n < 2.
//   - ErrBadProbability when p or q escapes [0,1] or p+q > 1.
func BirthDeath(n int, p, q float64) (*mat.Dense, error) {
	if n < minChainStates {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBirthDeath, n, minChainStates, ErrBadSize)
	}
	if p < 0 || p > 1 || q < 0 || q > 1 || p+q > 1 {
		return nil, fmt.Errorf("%s: p=%g q=%g: %w", methodBirthDeath, p, q, ErrBadProbability)
	}

	t := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		hold := 1 - p - q
		if i > 0 {
			t.Set(i, i-1, q)
		} else {
			hold += q // blocked down-move folds into holding
		}
		if i < n-1 {
			t.Set(i, i+1, p)
		} else {
			hold += p // blocked up-move folds into holding
		}
		t.Set(i, i, hold)
	}

	return t, nil
}

// LazyRandomWalk builds the lazy walk on the n-cycle: each state keeps
// probability hold on itself and splits the remainder evenly between its
// two ring neighbours. The matrix is doubly stochastic, so the
// stationary distribution is exactly uniform, and hold > 0 keeps the
// spectrum clear of −1 (no periodicity artifacts).
//
// Errors:
//   - ErrBadSize when n < 2.
//   - ErrBadProbability when hold escapes [0,1].
func LazyRandomWalk(n int, hold float64) (*mat.Dense, error) {
	if n < minChainStates {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodLazyWalk, n, minChainStates, ErrBadSize)
	}
	if hold < 0 || hold > 1 {
		return nil, fmt.Errorf("%s: hold=%g: %w", methodLazyWalk, hold, ErrBadProbability)
	}

	step := (1 - hold) / 2
	t := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		t.Set(i, i, t.At(i, i)+hold)
		// Neighbour indices wrap; on n=2 both land on the same state.
		t.Set(i, (i+1)%n, t.At(i, (i+1)%n)+step)
		t.Set(i, (i+n-1)%n, t.At(i, (i+n-1)%n)+step)
	}

	return t, nil
}

// Metastable builds a block-structured chain of `blocks` groups with
// `size` states each: inside a block probability spreads uniformly,
// while a small coupling mass leaks to the next block (cyclically).
// The slow eigenvalues cluster near one — one per block — separated
// from the fast intra-block bulk, the spectral gap pattern that
// implied-timescale analysis is designed to resolve.
//
// Errors:
//   - ErrBadSize when blocks < 2 or size < 2.
//   - ErrBadProbability when coupling escapes [0,1].
func Metastable(blocks, size int, coupling float64) (*mat.Dense, error) {
	if blocks < minBlockCount {
		return nil, fmt.Errorf("%s: blocks=%d < min=%d: %w", methodMetastable, blocks, minBlockCount, ErrBadSize)
	}
	if size < minBlockSize {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", methodMetastable, size, minBlockSize, ErrBadSize)
	}
	if coupling < 0 || coupling > 1 {
		return nil, fmt.Errorf("%s: coupling=%g: %w", methodMetastable, coupling, ErrBadProbability)
	}

	n := blocks * size
	inside := (1 - coupling) / float64(size)
	leak := coupling / float64(size)

	t := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		block := i / size
		next := (block + 1) % blocks
		for j = 0; j < size; j++ {
			t.Set(i, block*size+j, inside)
			t.Set(i, next*size+j, leak)
		}
	}

	return t, nil
}

// RandomStochastic builds a seeded random row-stochastic matrix: entries
// drawn uniformly from (0,1), rows normalized by their sums. Strictly
// positive entries make the chain irreducible and aperiodic, so the
// Perron eigenvalue one is simple and the stationary vector unique.
// Identical (n, seed) pairs reproduce the matrix exactly.
//
// Errors: ErrBadSize when n < 2.
func RandomStochastic(n int, seed int64) (*mat.Dense, error) {
	if n < minChainStates {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minChainStates, ErrBadSize)
	}

	rng := rand.New(rand.NewSource(seed))
	t := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row := t.RawRowView(i)
		for j := range row {
			// 1−Float64() keeps every entry strictly positive.
			row[j] = 1 - rng.Float64()
		}
		floats.Scale(1/floats.Sum(row), row)
	}

	return t, nil
}
