// Package allocation_test holds fixtures and a brute-force reference solver
// shared by the allocation tests.
package allocation_test

import (
	"math/rand"

	"github.com/katalvlaran/stagealloc/allocation"
)

// epsTotal is the tolerance for comparing float totals.
const epsTotal = 1e-9

// scenarioCapital is the classic four-plant capital budgeting instance.
func scenarioCapital() *allocation.Parameters {
	return &allocation.Parameters{
		Levels: []float64{100, 200, 300, 400, 500, 600, 700},
		Values: [][]float64{
			{42, 58, 71, 80, 89, 95, 100},
			{30, 49, 63, 68, 69, 65, 60},
			{22, 37, 49, 59, 68, 76, 82},
			{50, 68, 82, 92, 100, 107, 112},
		},
		Direction: allocation.Maximize,
	}
}

// scenarioFractional has fractional values and a stage that gets nothing.
func scenarioFractional() *allocation.Parameters {
	return &allocation.Parameters{
		Levels: []float64{1, 2, 3, 4, 5},
		Values: [][]float64{
			{3.22, 3.57, 4.12, 4, 4.85},
			{3.33, 4.87, 5.26, 7.34, 9.49},
			{4.27, 7.64, 10.25, 15.93, 16.12},
		},
		Direction: allocation.Maximize,
	}
}

// scenarioUneven minimizes over rows of different lengths.
func scenarioUneven() *allocation.Parameters {
	levels := make([]float64, 13)
	for i := range levels {
		levels[i] = float64(i + 1)
	}

	return &allocation.Parameters{
		Levels: levels,
		Values: [][]float64{
			{1.08, 2.04, 3, 4, 5, 5.82, 6.79},
			{1.04, 2.02},
			{1.03, 2.02, 3, 4, 5, 6, 7},
			{1.01, 2, 3, 4, 4.9, 6, 7},
		},
		Direction: allocation.Minimize,
	}
}

// bruteForce enumerates every index vector whose sum equals the effective
// resource count minus one and returns the best total under cfg's direction.
func bruteForce(cfg *allocation.Config) float64 {
	values := cfg.Values()
	target := cfg.ResourceCount() - 1
	maximize := cfg.Direction() == allocation.Maximize

	var (
		best  float64
		found bool
		walk  func(stage, remaining int, acc float64)
	)
	walk = func(stage, remaining int, acc float64) {
		if stage == len(values) {
			if remaining != 0 {
				return
			}
			if !found || (maximize && acc > best) || (!maximize && acc < best) {
				best, found = acc, true
			}
			return
		}
		for i := 0; i < len(values[stage]) && i <= remaining; i++ {
			walk(stage+1, remaining-i, acc+values[stage][i])
		}
	}
	walk(0, target, 0)

	return best
}

// randomParameters draws a small instance with 1..4 stages and 1..6 levels.
// When negative is true, values may drop below zero.
func randomParameters(rng *rand.Rand, dir allocation.Direction, negative bool) *allocation.Parameters {
	nLevels := 1 + rng.Intn(6)
	nStages := 1 + rng.Intn(4)

	levels := make([]float64, nLevels)
	for i := range levels {
		levels[i] = float64(i + 1)
	}

	low := 0.1
	if negative {
		low = -5
	}
	values := make([][]float64, nStages)
	for k := range values {
		row := make([]float64, 1+rng.Intn(nLevels))
		for i := range row {
			row[i] = low + rng.Float64()*(10-low)
		}
		values[k] = row
	}

	return &allocation.Parameters{Levels: levels, Values: values, Direction: dir}
}

// withZeros replaces roughly a third of p's values with an exact zero.
func withZeros(rng *rand.Rand, p *allocation.Parameters) *allocation.Parameters {
	for _, row := range p.Values {
		for i := range row {
			if rng.Intn(3) == 0 {
				row[i] = 0
			}
		}
	}

	return p
}

// sumInts adds up xs.
func sumInts(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
