// Package validation provides pure validation functions for conversion
// requests that arrive as text.
//
// This package contains the functional core logic for checking HTTP query
// parameters, form fields and CLI arguments before they reach the converter.
// All functions are pure (no I/O, no side effects).
//
// # Functions
//
//   - ValidateConvertFields: Check that value, from and to are present
//   - ValidateUnitFields: Check that from and to are present
//   - ParseValue: Parse a finite float64 from text
//   - IsFiniteResult: Check that a result can be encoded as JSON
//
// # Usage
//
// The API handlers and the CLI use these functions before converting:
//
//	if field, msg := validation.ValidateConvertFields(value, from, to); field != "" {
//	    // Return 400 Bad Request with msg
//	}
//	v, err := validation.ParseValue(value)
package validation
