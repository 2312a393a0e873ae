package aggregate

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/stagealloc/allocation"
)

// Variable names visible to expressions.
const (
	VarResource = "resource"
	VarValue    = "value"
)

// ErrEmptyExpression indicates that Compile received a blank expression.
var ErrEmptyExpression = errors.New("aggregate: expression is empty")

// Expr is a compiled aggregation expression. It is safe for concurrent use.
type Expr struct {
	source  string
	program *vm.Program

	mu       sync.Mutex
	firstErr error // first runtime failure seen by Aggregate
}

var _ allocation.Aggregator = (*Expr)(nil)

// Compile parses source and type-checks it against the resource/value
// environment. The result is coerced to float64.
func Compile(source string) (*Expr, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrEmptyExpression
	}

	program, err := expr.Compile(source,
		expr.Env(env(0, 0)),
		expr.AsFloat64(),
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate: compile %q: %w", source, err)
	}

	e := &Expr{source: source, program: program}
	// Surface runtime failures (e.g. bad builtin arguments) at build time.
	if _, err = e.Eval(1, 1); err != nil {
		return nil, err
	}

	return e, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(source string) *Expr {
	e, err := Compile(source)
	if err != nil {
		panic(err)
	}

	return e
}

// Source returns the trimmed expression text.
func (e *Expr) Source() string { return e.source }

// Aggregate implements allocation.Aggregator. A runtime failure yields NaN,
// which propagates into Result.Total; the first such failure is kept for Err.
func (e *Expr) Aggregate(resource, value float64) float64 {
	out, err := e.Eval(resource, value)
	if err != nil {
		e.mu.Lock()
		if e.firstErr == nil {
			e.firstErr = err
		}
		e.mu.Unlock()

		return math.NaN()
	}

	return out
}

// Err returns the first runtime error Aggregate swallowed, or nil.
func (e *Expr) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.firstErr
}

// Eval runs the expression for one (resource, value) pair and reports
// runtime failures instead of folding them into NaN.
func (e *Expr) Eval(resource, value float64) (float64, error) {
	out, err := expr.Run(e.program, env(resource, value))
	if err != nil {
		return 0, fmt.Errorf("aggregate: run %q: %w", e.source, err)
	}
	f, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("aggregate: %q returned %T, want float64", e.source, out)
	}

	return f, nil
}

func env(resource, value float64) map[string]any {
	return map[string]any{
		VarResource: resource,
		VarValue:    value,
	}
}
