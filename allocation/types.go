package allocation

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by configuration building and validation.
//
// Every validation failure is returned as a *ConfigError that wraps one of
// the sentinels below, so callers may match either the concrete cause
// (errors.Is(err, ErrNoStages)) or the whole class
// (errors.Is(err, ErrConfiguration)).
var (
	// ErrConfiguration is the umbrella for every configuration failure.
	ErrConfiguration = errors.New("allocation: invalid configuration")

	// ErrNilParameters indicates that NewConfig received a nil *Parameters.
	ErrNilParameters = errors.New("allocation: parameters are nil")

	// ErrNilConfig indicates that an Allocator was given a nil *Config.
	ErrNilConfig = errors.New("allocation: config is nil")

	// ErrUnknownDirection indicates a Direction other than Minimize or Maximize.
	ErrUnknownDirection = errors.New("allocation: unknown optimization direction")

	// ErrUnknownPolicy indicates a CellPolicy outside the known set.
	ErrUnknownPolicy = errors.New("allocation: unknown cell policy")

	// ErrNoStages indicates an empty value matrix.
	ErrNoStages = errors.New("allocation: at least one stage is required")

	// ErrTooFewLevels indicates that no non-zero resource level exists.
	ErrTooFewLevels = errors.New("allocation: at least one non-zero resource level is required")

	// ErrMissingZeroLevel indicates pre-padded levels whose first entry is not 0.
	ErrMissingZeroLevel = errors.New("allocation: level 0 must be the zero allocation")

	// ErrNegativeLevel indicates a resource level below zero.
	ErrNegativeLevel = errors.New("allocation: resource levels must be non-negative")

	// ErrLevelsNotAscending indicates a level set that is not strictly ascending.
	ErrLevelsNotAscending = errors.New("allocation: resource levels must be strictly ascending")

	// ErrEmptyRow indicates a value row without even the zero entry.
	ErrEmptyRow = errors.New("allocation: value row is empty")

	// ErrRowTooLong indicates a value row with more entries than resource levels.
	ErrRowTooLong = errors.New("allocation: value row is longer than the level set")

	// ErrNaNInf indicates a NaN or ±Inf level or value.
	ErrNaNInf = errors.New("allocation: NaN or Inf encountered")

	// ErrNegativeValue indicates a negative stage value when maximizing under
	// ZeroSentinel. A cell whose candidates are all negative never beats the
	// 0 it starts with, so traceback cannot recover a valid split.
	ErrNegativeValue = errors.New("allocation: negative values require the TrackPopulated policy when maximizing")

	// ErrZeroValue indicates a zero value at a non-zero level when maximizing
	// under ZeroSentinel. A zero sum never displaces the zero cell, for the
	// same reason as ErrNegativeValue.
	ErrZeroValue = errors.New("allocation: zero values at non-zero levels require the TrackPopulated policy when maximizing")
)

// ConfigError describes a rejected configuration. Field names the offending
// input ("levels", "values", "direction", ...); Stage and Index locate the
// entry when relevant and are -1 otherwise.
type ConfigError struct {
	Field string
	Stage int
	Index int
	Err   error
}

// Error implements error.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Field != "" {
		b.WriteString(" (")
		b.WriteString(e.Field)
		if e.Stage >= 0 {
			fmt.Fprintf(&b, " stage=%d", e.Stage)
		}
		if e.Index >= 0 {
			fmt.Fprintf(&b, " index=%d", e.Index)
		}
		b.WriteString(")")
	}

	return b.String()
}

// Unwrap returns the underlying sentinel.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is reports ErrConfiguration as a match for every ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// newConfigError builds a ConfigError; pass -1 for an unused stage or index.
func newConfigError(field string, stage, index int, err error) *ConfigError {
	return &ConfigError{Field: field, Stage: stage, Index: index, Err: err}
}

// Direction selects whether the total is maximized or minimized.
// The zero value is deliberately invalid so an unset direction is caught.
type Direction int

const (
	// Minimize keeps the smallest candidate per table cell.
	Minimize Direction = iota + 1

	// Maximize keeps the largest candidate per table cell.
	Maximize
)

// String returns "minimize", "maximize" or "Direction(n)".
func (d Direction) String() string {
	switch d {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps "min", "minimize", "max" and "maximize"
// (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// CellPolicy controls how the forward pass tells an untouched table cell
// from a populated one.
//
//   - ZeroSentinel: a cell holding 0 counts as untouched when minimizing,
//     so any candidate replaces it. Compatible with the classic formulation.
//     A legitimate zero sum is indistinguishable from an untouched cell: when
//     minimizing, a later worse candidate can overwrite it and the result may
//     not be optimal (any finite value is still accepted). When maximizing,
//     negative values and zeros at non-zero levels are rejected.
//   - TrackPopulated: each cell carries an explicit populated flag; the
//     first candidate always installs and later ones are compared strictly.
type CellPolicy int

const (
	// ZeroSentinel overloads the value 0 as "cell not yet populated".
	ZeroSentinel CellPolicy = iota

	// TrackPopulated keeps an explicit populated flag per cell.
	TrackPopulated
)

// String returns "zero-sentinel", "track-populated" or "CellPolicy(n)".
func (p CellPolicy) String() string {
	switch p {
	case ZeroSentinel:
		return "zero-sentinel"
	case TrackPopulated:
		return "track-populated"
	default:
		return fmt.Sprintf("CellPolicy(%d)", int(p))
	}
}

// ParseCellPolicy maps "zero-sentinel" and "track-populated" to a CellPolicy.
// An empty string yields ZeroSentinel.
func ParseCellPolicy(s string) (CellPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "zero-sentinel", "zero":
		return ZeroSentinel, nil
	case "track-populated", "track":
		return TrackPopulated, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Parameters is the raw input bundle for NewConfig.
type Parameters struct {
	// Levels are the discrete resource amounts any single stage may receive.
	Levels []float64

	// Values holds one row per stage; Values[k][i] is the value stage k
	// obtains from Levels[i]. Rows may be shorter than Levels.
	Values [][]float64

	// Direction selects Minimize or Maximize. Required.
	Direction Direction

	// Aggregator combines (resource, value) into the reported total.
	// nil selects RawValue.
	Aggregator Aggregator

	// LeadingZeros asserts that Levels[0] and Values[k][0] already encode the
	// zero allocation. When false, a zero entry is prepended to each.
	LeadingZeros bool

	// Policy selects how untouched DP cells are recognised.
	Policy CellPolicy
}

// StepResult is the table produced by one forward-pass transition.
// Best[c] is the best value reachable by the stages seen so far using exactly
// c resource units; Choice[c] is the level index the newest stage took there.
type StepResult struct {
	Best   []float64
	Choice []int
}

// Result is the outcome of an allocation.
type Result struct {
	// Allocation holds the resource amount assigned to each stage.
	Allocation []float64

	// Indexes holds the level index assigned to each stage.
	Indexes []int

	// Total is the sum of Aggregate(resource, value) across stages.
	Total float64
}
