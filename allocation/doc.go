// Package allocation solves the discrete multi-stage resource allocation
// problem with dynamic programming.
//
// 🚀 What is it?
//
//	A fixed resource (budget, weight, machine hours) is discretized into a
//	shared, ascending level set. Each of N independent stages yields a known
//	value for every level it may receive. The engine finds the split of the
//	whole resource axis across stages that maximizes (or minimizes) the
//	total value. Typical uses:
//	  • Capital budgeting across projects or plants
//	  • Spreading a maintenance crew over machines
//	  • Knapsack-style splits of time or bandwidth
//
// ✨ Key features:
//   - exact DP: forward pairwise convolution, backward traceback
//   - table width clamped to the reachable resource range
//   - Minimize / Maximize directions with the classic zero-sentinel cells,
//     or explicit per-cell population tracking (TrackPopulated)
//   - pluggable Aggregator for the reported total
//   - immutable Config; Allocator swaps configurations atomically
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stagealloc/allocation"
//
//	cfg, err := allocation.NewConfig(&allocation.Parameters{
//	  Levels:    []float64{100, 200, 300},
//	  Values:    [][]float64{{42, 58, 71}, {30, 49, 63}},
//	  Direction: allocation.Maximize,
//	})
//	if err != nil {
//	  log.Fatal(err)
//	}
//	res := allocation.MustNew(cfg).Allocate()
//	fmt.Println(res.Allocation, res.Total)
//
// Normalization:
//
//	Index 0 of the level set means "nothing assigned". Unless
//	Parameters.LeadingZeros is set, a 0 is prepended to the levels and to
//	every value row, shifting the caller's entries right by one.
//
// Performance:
//
//   - Time:   O(N·R·L) where R is the effective resource count and L the
//     longest value row
//   - Memory: O(N·R) for the per-stage choice tables
//
// The engine is single-threaded and allocation-local: every Allocate call
// owns its step tables and drops them on return.
package allocation
