// SPDX-License-Identifier: MIT

package decomposition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spectral/decomposition"
)

// Option constructors must reject nonsensical values loudly (programmer
// error), never silently absorb them.

func TestWithTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { decomposition.WithTolerance(0) })
	assert.Panics(t, func() { decomposition.WithTolerance(-1e-9) })
	assert.Panics(t, func() { decomposition.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { decomposition.WithTolerance(math.Inf(1)) })
	assert.NotPanics(t, func() { decomposition.WithTolerance(1e-10) })
}

func TestWithMaxIterations_Panics(t *testing.T) {
	assert.Panics(t, func() { decomposition.WithMaxIterations(0) })
	assert.Panics(t, func() { decomposition.WithMaxIterations(-3) })
	assert.NotPanics(t, func() { decomposition.WithMaxIterations(1) })
}

func TestWithPerturbation_Panics(t *testing.T) {
	assert.Panics(t, func() { decomposition.WithPerturbation(0) })
	assert.Panics(t, func() { decomposition.WithPerturbation(math.NaN()) })
	assert.NotPanics(t, func() { decomposition.WithPerturbation(1e-12) })
}

func TestWithLagTime_Panics(t *testing.T) {
	assert.Panics(t, func() { decomposition.WithLagTime(0) })
	assert.Panics(t, func() { decomposition.WithLagTime(-2) })
	assert.Panics(t, func() { decomposition.WithLagTime(math.Inf(1)) })
	assert.NotPanics(t, func() { decomposition.WithLagTime(10) })
}

func TestWithCount_Panics(t *testing.T) {
	assert.Panics(t, func() { decomposition.WithCount(0) })
	assert.Panics(t, func() { decomposition.WithCount(-1) })
	assert.NotPanics(t, func() { decomposition.WithCount(3) })
}

func TestWithIndices_Panics(t *testing.T) {
	assert.Panics(t, func() { decomposition.WithIndices() })
	assert.Panics(t, func() { decomposition.WithIndices(0, -1) })
	assert.NotPanics(t, func() { decomposition.WithIndices(2, 0, 1) })
}

func TestWithReversibilityChecker_Panics(t *testing.T) {
	assert.Panics(t, func() { decomposition.WithReversibilityChecker(nil) })
}
