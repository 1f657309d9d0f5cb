package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidValue is returned when a value is not a number.
	ErrInvalidValue = errors.New("value must be a number")

	// ErrNonFiniteValue is returned for NaN and infinite values.
	ErrNonFiniteValue = errors.New("value must be finite")
)

// =============================================================================
// Conversion Validation Functions
// =============================================================================

// ValidateConvertFields validates required fields for a conversion.
// Returns the field name and error message if validation fails.
// Returns empty strings if all fields are present.
//
// Example:
//
//	field, msg := ValidateConvertFields("10", "kWh", "J")
//	if field != "" {
//	    // Handle validation error
//	}
func ValidateConvertFields(value, from, to string) (field, message string) {
	if strings.TrimSpace(value) == "" {
		return "value", "value is required"
	}
	return ValidateUnitFields(from, to)
}

// ValidateUnitFields validates the unit identifiers of a conversion whose
// value is already numeric (e.g., a JSON body).
func ValidateUnitFields(from, to string) (field, message string) {
	if from == "" {
		return "from", "from is required"
	}
	if to == "" {
		return "to", "to is required"
	}
	return "", ""
}

// ParseValue parses a conversion value from text.
// Surrounding whitespace is ignored; NaN and infinities are rejected.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, ErrInvalidValue
		}
		// Overflow yields ±Inf; underflow rounds toward zero and is kept.
		if math.IsInf(v, 0) {
			return 0, ErrNonFiniteValue
		}
		return v, nil
	}
	if !IsFiniteResult(v) {
		return 0, ErrNonFiniteValue
	}
	return v, nil
}

// IsFiniteResult reports whether v is neither NaN nor infinite.
func IsFiniteResult(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
