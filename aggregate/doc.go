// Package aggregate builds allocation.Aggregator values from expressions.
//
// An expression sees two float64 variables, resource and value, and must
// evaluate to a number:
//
//	value                      // the default, stage value as-is
//	resource * value           // per-unit yields
//	value - 0.05 * resource    // value net of a carrying cost
//	value > 0 ? value : 0.0    // clip losses
//
// Expressions are compiled once with github.com/expr-lang/expr and run per
// stage when a Result total is assembled.
package aggregate
