package conversion

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when a unit identifier is not registered.
var ErrUnknownUnit = errors.New("unknown energy unit")

// UnknownUnitError names the identifier that was not found.
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown energy unit: %s", e.Unit)
}

func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// UnknownUnit returns the offending identifier if err is an UnknownUnitError.
func UnknownUnit(err error) (string, bool) {
	var uerr *UnknownUnitError
	if errors.As(err, &uerr) {
		return uerr.Unit, true
	}
	return "", false
}
