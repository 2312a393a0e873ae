package aggregate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stagealloc/aggregate"
	"github.com/katalvlaran/stagealloc/allocation"
)

// TestCompile_Evaluates checks arithmetic over both variables.
func TestCompile_Evaluates(t *testing.T) {
	tests := []struct {
		source          string
		resource, value float64
		want            float64
	}{
		{"value", 200, 58, 58},
		{"resource * value", 200, 0.5, 100},
		{"value - 0.05 * resource", 100, 10, 5},
		{"value > 0 ? value : 0.0", 3, -2, 0},
		{"2", 3, 4, 2}, // integer literal coerced to float64
	}
	for _, tc := range tests {
		t.Run(tc.source, func(t *testing.T) {
			e, err := aggregate.Compile(tc.source)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, e.Aggregate(tc.resource, tc.value), 1e-12)
		})
	}
}

// TestCompile_Errors covers blank, malformed and ill-typed expressions.
func TestCompile_Errors(t *testing.T) {
	_, err := aggregate.Compile("   ")
	assert.ErrorIs(t, err, aggregate.ErrEmptyExpression)

	for _, src := range []string{"value +", "budget * value", `"text"`} {
		_, err = aggregate.Compile(src)
		assert.Error(t, err, src)
	}

	assert.Panics(t, func() { aggregate.MustCompile("value +") })
}

// TestExpr_Source trims surrounding whitespace.
func TestExpr_Source(t *testing.T) {
	assert.Equal(t, "resource * value", aggregate.MustCompile("  resource * value ").Source())
}

// TestExpr_WithAllocation plugs a compiled expression into the engine.
func TestExpr_WithAllocation(t *testing.T) {
	res, err := allocation.Solve(&allocation.Parameters{
		Levels:     []float64{100, 200, 300, 400, 500, 600, 700},
		Values:     [][]float64{{42, 58, 71, 80, 89, 95, 100}, {30, 49, 63, 68, 69, 65, 60}, {22, 37, 49, 59, 68, 76, 82}, {50, 68, 82, 92, 100, 107, 112}},
		Direction:  allocation.Maximize,
		Aggregator: aggregate.MustCompile("resource * value"),
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{200, 200, 100, 200}, res.Allocation)
	assert.InDelta(t, 37200.0, res.Total, 1e-9)
	assert.False(t, math.IsNaN(res.Total))
}

// TestExpr_RuntimeErrors checks that Eval reports failures while Aggregate
// folds them into NaN and keeps the first one for Err.
func TestExpr_RuntimeErrors(t *testing.T) {
	e, err := aggregate.Compile("int(resource) % int(value - 2)")
	require.NoError(t, err)
	require.NoError(t, e.Err())

	got, err := e.Eval(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	_, err = e.Eval(1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `aggregate: run "int(resource) % int(value - 2)"`)
	assert.Contains(t, err.Error(), "divide by zero")
	assert.NoError(t, e.Err(), "Eval leaves the recorded error alone")

	assert.True(t, math.IsNaN(e.Aggregate(1, 2)))
	first := e.Err()
	require.Error(t, first)

	assert.Equal(t, 1.0, e.Aggregate(3, 4))
	assert.True(t, math.IsNaN(e.Aggregate(5, 2)))
	assert.Equal(t, first, e.Err(), "only the first failure is kept")
}
