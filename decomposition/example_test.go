// SPDX-License-Identifier: MIT

package decomposition_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/decomposition"
)

// The two-state chain with switch rates a=0.5 and b=0.25 has the
// closed-form spectrum {1, 1−a−b} = {1, 0.25} and the stationary
// distribution (b, a)/(a+b) = (1/3, 2/3), which makes the outputs below
// exact up to printing precision.

func ExampleEigenvalues() {
	t, _ := builder.TwoState(0.5, 0.25)

	evals, _ := decomposition.Eigenvalues(t)
	for _, ev := range evals {
		fmt.Printf("%.2f\n", real(ev))
	}
	// Output:
	// 1.00
	// 0.25
}

func ExampleStationaryDistribution() {
	t, _ := builder.TwoState(0.5, 0.25)

	pi, _ := decomposition.StationaryDistribution(t)
	fmt.Printf("%.4f %.4f\n", pi[0], pi[1])
	// Output:
	// 0.3333 0.6667
}

func ExampleTimescales() {
	t, _ := builder.TwoState(0.5, 0.25)

	ts, _, _ := decomposition.Timescales(t, decomposition.WithLagTime(2))
	for i, v := range ts {
		if math.IsInf(v, 1) {
			fmt.Printf("mode %d: stationary\n", i)
			continue
		}
		fmt.Printf("mode %d: %.3f\n", i, v)
	}
	// Output:
	// mode 0: stationary
	// mode 1: 1.443
}
