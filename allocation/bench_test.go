package allocation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stagealloc/allocation"
)

// benchmarkAllocate builds a random instance with the given number of stages
// and levels and measures Allocate alone.
func benchmarkAllocate(b *testing.B, stages, levels int, policy allocation.CellPolicy) {
	rng := rand.New(rand.NewSource(42))
	lv := make([]float64, levels)
	for i := range lv {
		lv[i] = float64(i + 1)
	}
	values := make([][]float64, stages)
	for k := range values {
		row := make([]float64, levels)
		acc := 0.0
		for i := range row {
			acc += rng.Float64() // concave-ish, increasing
			row[i] = acc
		}
		values[k] = row
	}
	cfg, err := allocation.NewConfig(&allocation.Parameters{
		Levels:    lv,
		Values:    values,
		Direction: allocation.Maximize,
		Policy:    policy,
	})
	if err != nil {
		b.Fatalf("NewConfig failed: %v", err)
	}
	a := allocation.MustNew(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Allocate()
	}
}

// BenchmarkAllocate_Small benchmarks 10 stages over 100 levels.
func BenchmarkAllocate_Small(b *testing.B) {
	benchmarkAllocate(b, 10, 100, allocation.ZeroSentinel)
}

// BenchmarkAllocate_Medium benchmarks 30 stages over 500 levels.
func BenchmarkAllocate_Medium(b *testing.B) {
	benchmarkAllocate(b, 30, 500, allocation.ZeroSentinel)
}

// BenchmarkAllocate_MediumTracked is Medium under TrackPopulated.
func BenchmarkAllocate_MediumTracked(b *testing.B) {
	benchmarkAllocate(b, 30, 500, allocation.TrackPopulated)
}
