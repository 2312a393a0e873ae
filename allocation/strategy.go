package allocation

// Aggregator folds a stage's chosen resource amount and the value it earns
// into its contribution to Result.Total.
type Aggregator interface {
	Aggregate(resource, value float64) float64
}

// AggregatorFunc adapts an ordinary function to the Aggregator interface.
type AggregatorFunc func(resource, value float64) float64

// Aggregate calls f(resource, value).
func (f AggregatorFunc) Aggregate(resource, value float64) float64 { return f(resource, value) }

// RawValue reports the stage value unchanged and ignores the resource amount.
// It is the default Aggregator.
var RawValue Aggregator = AggregatorFunc(func(_, value float64) float64 { return value })

// ResourceWeighted reports resource × value, e.g. when values are per-unit
// yields.
var ResourceWeighted Aggregator = AggregatorFunc(func(resource, value float64) float64 {
	return resource * value
})

// comparator decides whether candidate should replace incumbent at a table
// cell. populated is only meaningful under TrackPopulated.
type comparator func(incumbent, candidate float64, populated bool) bool

// newComparator resolves the replacement rule for a direction and policy.
// Callers must have validated both.
func newComparator(d Direction, p CellPolicy) comparator {
	if p == TrackPopulated {
		if d == Minimize {
			return func(incumbent, candidate float64, populated bool) bool {
				return !populated || candidate < incumbent
			}
		}

		return func(incumbent, candidate float64, populated bool) bool {
			return !populated || candidate > incumbent
		}
	}

	if d == Minimize {
		// An untouched cell holds 0 and must accept any candidate.
		return func(incumbent, candidate float64, _ bool) bool {
			return incumbent > candidate || incumbent == 0
		}
	}

	return func(incumbent, candidate float64, _ bool) bool {
		return candidate > incumbent
	}
}
