// SPDX-License-Identifier: MIT

package stochastic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/stochastic"
)

func TestIsTransitionMatrix(t *testing.T) {
	ok := mat.NewDense(2, 2, []float64{0.9, 0.1, 0.3, 0.7})
	assert.True(t, stochastic.IsTransitionMatrix(ok, stochastic.DefaultTol))

	// Tiny negative noise within tolerance passes.
	noisy := mat.NewDense(2, 2, []float64{1 + 1e-14, -1e-14, 0.3, 0.7})
	assert.True(t, stochastic.IsTransitionMatrix(noisy, stochastic.DefaultTol))

	badSum := mat.NewDense(2, 2, []float64{0.9, 0.2, 0.3, 0.7})
	assert.False(t, stochastic.IsTransitionMatrix(badSum, stochastic.DefaultTol))

	negative := mat.NewDense(2, 2, []float64{1.1, -0.1, 0.3, 0.7})
	assert.False(t, stochastic.IsTransitionMatrix(negative, stochastic.DefaultTol))

	rect := mat.NewDense(2, 3, []float64{0.5, 0.5, 0, 0.5, 0.5, 0})
	assert.False(t, stochastic.IsTransitionMatrix(rect, stochastic.DefaultTol))

	assert.False(t, stochastic.IsTransitionMatrix(nil, stochastic.DefaultTol))
}

func TestIsDistribution(t *testing.T) {
	assert.True(t, stochastic.IsDistribution([]float64{0.25, 0.75}, stochastic.DefaultTol))
	assert.False(t, stochastic.IsDistribution([]float64{0.5, 0.6}, stochastic.DefaultTol))
	assert.False(t, stochastic.IsDistribution([]float64{1.5, -0.5}, stochastic.DefaultTol))
	assert.False(t, stochastic.IsDistribution(nil, stochastic.DefaultTol))
}

func TestIsReversible(t *testing.T) {
	// Two-state chains always balance against their stationary vector:
	// T = [[0.9, 0.1], [0.3, 0.7]], μ = (0.75, 0.25).
	tm := mat.NewDense(2, 2, []float64{0.9, 0.1, 0.3, 0.7})
	rev, err := stochastic.IsReversible(tm, []float64{0.75, 0.25}, stochastic.DefaultTol)
	require.NoError(t, err)
	assert.True(t, rev)

	// A wrong vector breaks detailed balance.
	rev, err = stochastic.IsReversible(tm, []float64{0.5, 0.5}, stochastic.DefaultTol)
	require.NoError(t, err)
	assert.False(t, rev)
}

func TestIsReversible_DirectedCycle(t *testing.T) {
	// The deterministic 3-cycle is irreversible: flux only flows one way.
	cycle := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	})
	third := 1.0 / 3.0
	rev, err := stochastic.IsReversible(cycle, []float64{third, third, third}, stochastic.DefaultTol)
	require.NoError(t, err)
	assert.False(t, rev)
}

func TestIsReversible_Errors(t *testing.T) {
	_, err := stochastic.IsReversible(nil, []float64{1}, stochastic.DefaultTol)
	assert.True(t, errors.Is(err, stochastic.ErrNilMatrix))

	rect := mat.NewDense(2, 3, nil)
	_, err = stochastic.IsReversible(rect, []float64{0.5, 0.5}, stochastic.DefaultTol)
	assert.True(t, errors.Is(err, stochastic.ErrNonSquare))

	square := mat.NewDense(2, 2, []float64{0.9, 0.1, 0.3, 0.7})
	_, err = stochastic.IsReversible(square, []float64{1, 0, 0}, stochastic.DefaultTol)
	assert.True(t, errors.Is(err, stochastic.ErrDimensionMismatch))
}
