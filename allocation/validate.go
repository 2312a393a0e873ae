// Package allocation - validation and normalization of raw Parameters.
//
// This file contains the staged checks run once by NewConfig:
//  1. Bundle-level sanity (nil, direction, policy, stage count).
//  2. Normalization (zero entry prepended, inputs deep-copied).
//  3. Level set shape and values.
//  4. Value rows shape and values.
//
// Nothing here logs or panics; every failure is a *ConfigError wrapping a
// sentinel from types.go. Reported indices refer to the caller's slices.
package allocation

import "math"

// validateBundle checks the parts of p that do not depend on normalization.
//
// Complexity: O(1).
func validateBundle(p *Parameters) error {
	if p == nil {
		return newConfigError("parameters", -1, -1, ErrNilParameters)
	}
	if p.Direction != Minimize && p.Direction != Maximize {
		return newConfigError("direction", -1, -1, ErrUnknownDirection)
	}
	if p.Policy != ZeroSentinel && p.Policy != TrackPopulated {
		return newConfigError("policy", -1, -1, ErrUnknownPolicy)
	}
	if len(p.Values) == 0 {
		return newConfigError("values", -1, -1, ErrNoStages)
	}

	return nil
}

// normalize returns deep copies of the level set and value rows, with a
// leading zero prepended to each unless the caller already supplied it.
//
// Complexity: O(Σ len(row) + len(levels)).
func normalize(levels []float64, values [][]float64, leadingZeros bool) ([]float64, [][]float64) {
	shift := 1
	if leadingZeros {
		shift = 0
	}

	outLevels := make([]float64, len(levels)+shift)
	copy(outLevels[shift:], levels)

	outValues := make([][]float64, len(values))
	for k, row := range values {
		outValues[k] = make([]float64, len(row)+shift)
		copy(outValues[k][shift:], row)
	}

	return outLevels, outValues
}

// validateLevels checks a normalized level set: at least two entries,
// zero first, finite, non-negative and strictly ascending.
//
// Complexity: O(len(levels)).
func validateLevels(levels []float64, shift int) error {
	if len(levels) < 2 {
		return newConfigError("levels", -1, -1, ErrTooFewLevels)
	}

	var (
		i  int     // normalized index
		lv float64 // current level
	)
	for i = 0; i < len(levels); i++ {
		lv = levels[i]
		if math.IsNaN(lv) || math.IsInf(lv, 0) {
			return newConfigError("levels", -1, i-shift, ErrNaNInf)
		}
		if lv < 0 {
			return newConfigError("levels", -1, i-shift, ErrNegativeLevel)
		}
		if i == 0 {
			if lv != 0 {
				return newConfigError("levels", -1, 0, ErrMissingZeroLevel)
			}
			continue
		}
		if lv <= levels[i-1] {
			return newConfigError("levels", -1, i-shift, ErrLevelsNotAscending)
		}
	}

	return nil
}

// validateRows checks every normalized value row against the level set.
// Maximizing under ZeroSentinel never installs a candidate that does not beat
// the 0 a fresh cell holds, so such a cell keeps choice 0 and traceback would
// leave a remainder no row can absorb. Negative values and zeros at non-zero
// levels are refused there. Minimizing installs every first candidate and
// accepts any finite value.
//
// Complexity: O(Σ len(row)).
func validateRows(values [][]float64, nLevels, shift int, dir Direction, policy CellPolicy) error {
	var (
		k, i int     // stage, normalized index
		v    float64 // current value
	)
	for k = 0; k < len(values); k++ {
		row := values[k]
		if len(row) == 0 {
			return newConfigError("values", k, -1, ErrEmptyRow)
		}
		if len(row) > nLevels {
			return newConfigError("values", k, -1, ErrRowTooLong)
		}
		for i = 0; i < len(row); i++ {
			v = row[i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return newConfigError("values", k, i-shift, ErrNaNInf)
			}
			if policy != ZeroSentinel || dir != Maximize {
				continue
			}
			if v < 0 {
				return newConfigError("values", k, i-shift, ErrNegativeValue)
			}
			if v == 0 && i > 0 {
				return newConfigError("values", k, i-shift, ErrZeroValue)
			}
		}
	}

	return nil
}

// effectiveResourceCount clamps the table width to what the stages can reach:
// min(len(levels), 1 + Σ(len(row)−1)).
//
// Complexity: O(N).
func effectiveResourceCount(nLevels int, values [][]float64) int {
	reach := 0
	for _, row := range values {
		reach += len(row) - 1
	}
	if reach+1 < nLevels {
		return reach + 1
	}

	return nLevels
}
