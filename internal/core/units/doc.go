// Package units provides the immutable registry of energy units.
//
// This package contains the functional core data for energy conversion: the
// canonical unit table, the SI prefix table and the Registry built from them.
// All functions are pure (no I/O, no side effects). A Registry is built once
// and never mutated, so it can be shared by any number of goroutines.
//
// # Policies
//
//   - PolicyNamed: the 30 display-named units (J, kJ, ..., horsepower_h)
//   - PolicyPrefixed: the 26 base units, each followed by its 20 SI-prefixed
//     derivatives (546 entries)
//
// # Usage
//
//	reg, err := units.NewRegistry(units.PolicyNamed)
//	if err != nil {
//	    return err
//	}
//	for u := range reg.Units() {
//	    fmt.Println(u.ID, u.DisplayName)
//	}
package units
