package usecase

import (
	"math"
	"strconv"
	"strings"
)

// ParseCalorieValue converts a stored calorie string into a single number.
// The field is free-form: either a plain value ("450") or an inclusive range
// ("450-500"), which resolves to the arithmetic mean of its bounds.
//
// Parsing fails closed: empty strings, garbage text, NaN/Inf and half-broken
// ranges all yield 0. A string with more than one hyphen is split on every
// hyphen and only the first two segments are used, so a negative low bound
// like "-50-100" has an empty first segment and yields 0.
func ParseCalorieValue(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) < 2 {
			return 0
		}
		low, err := parseFiniteFloat(parts[0])
		if err != nil {
			return 0
		}
		high, err := parseFiniteFloat(parts[1])
		if err != nil {
			return 0
		}
		return (low + high) / 2
	}

	v, err := parseFiniteFloat(s)
	if err != nil {
		return 0
	}
	return v
}

// NormalizeCalorieNumber sanitizes an already-numeric calorie value: NaN and
// infinities become 0. Negative values pass through unchanged, matching the
// long-standing behavior of the stored data; the input layer never produces
// them.
func NormalizeCalorieNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatCalorieValue renders a normalized calorie number back into the
// storage representation (shortest exact decimal form).
func FormatCalorieValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseFiniteFloat parses a trimmed float and rejects NaN and infinities,
// which strconv.ParseFloat would otherwise accept as literals.
func parseFiniteFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
