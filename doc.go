// Package stagealloc is a small toolkit for discrete multi-stage resource
// allocation: splitting a fixed, discretized resource across independent
// stages so that the total value is maximized (or minimized).
//
// 🚀 What is stagealloc?
//
//	A pure-Go dynamic-programming engine plus the plumbing around it:
//		• allocation/: Config, comparator and aggregator strategies, DP engine
//		• aggregate/:  expression-backed aggregators (resource * value, ...)
//		• problem/:    YAML problem documents and solved-allocation reports
//		• cmd/stagealloc: command line front end
//
// ✨ Why stagealloc?
//
//   - Exact – forward convolution plus traceback, no heuristics
//   - Validated – malformed inputs fail at configuration time with typed errors
//   - Immutable configs – swap parameters wholesale, never field by field
//   - Observable – logr traces and per-step hooks
//
// Quick example:
//
//	res, err := allocation.Solve(&allocation.Parameters{
//	    Levels:    []float64{1, 2, 3},
//	    Values:    [][]float64{{3, 5, 6}, {2, 6, 7}},
//	    Direction: allocation.Maximize,
//	})
//
//	go get github.com/katalvlaran/stagealloc
package stagealloc
