// Package conversion converts energy quantities between registered units.
//
// Every conversion goes through the joule: the value is multiplied by the
// source factor, then divided by the target factor, in that order. The
// Converter holds no mutable state and performs no I/O. Callers that want
// logging inject an Observer.
//
// Converting a unit to itself computes value * f / f. For finite non-zero f
// this returns value in the common case, but multiply-then-divide is not a
// bitwise identity for every float64, so callers should compare with a
// tolerance.
package conversion
