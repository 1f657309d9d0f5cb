package units

import "math"

// =============================================================================
// Unit
// =============================================================================

// Unit is a single registry entry: an identifier and its factor into joules.
type Unit struct {
	// ID is the unique, case-sensitive identifier (e.g., "kWh").
	ID string `json:"id" yaml:"id"`

	// Factor converts one of this unit into joules. Always > 0 and finite.
	Factor float64 `json:"factor" yaml:"factor"`

	// DisplayName is the human-readable label shown in selectors.
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Label returns the display name, falling back to the identifier.
func (u Unit) Label() string {
	if u.DisplayName == "" {
		return u.ID
	}
	return u.DisplayName
}

// validate checks the entry invariants.
func (u Unit) validate() error {
	if u.ID == "" {
		return NewTableError("", "identifier is required", ErrEmptyID)
	}
	if math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) || u.Factor <= 0 {
		return NewTableError(u.ID, "factor must be positive and finite", ErrInvalidFactor)
	}
	return nil
}

// =============================================================================
// Canonical Tables
// =============================================================================

// BtuIT is the International Table British thermal unit in joules.
// Every BTU-derived factor in the canonical tables is built from it.
const BtuIT = 1055.05585262

// Kept as variables so the derived factors are evaluated with float64
// arithmetic, one operation at a time, rather than as exact constants.
var (
	btuIT               float64 = BtuIT
	shortTonsPerLongTon float64 = 2240.0 / 2000.0
)

// NamedUnits returns the canonical display-named unit table.
// The returned slice is a fresh copy on every call.
func NamedUnits() []Unit {
	named := []Unit{
		{ID: "J", Factor: 1, DisplayName: "J"},
		{ID: "kJ", Factor: 1e3, DisplayName: "kJ"},
		{ID: "MJ", Factor: 1e6, DisplayName: "MJ"},
		{ID: "GJ", Factor: 1e9, DisplayName: "GJ"},
		{ID: "TJ", Factor: 1e12, DisplayName: "TJ"},
	}
	return append(named, BaseUnits()[1:]...)
}

// BaseUnits returns the canonical table without the prefixed joule
// multiples (kJ, MJ, GJ, TJ). It is the input to SI prefix expansion, so
// no derived identifier can collide with a table identifier.
func BaseUnits() []Unit {
	return []Unit{
		{ID: "J", Factor: 1, DisplayName: "J"},
		{ID: "cal", Factor: 4.184, DisplayName: "cal"},
		{ID: "Btu", Factor: btuIT, DisplayName: "Btu"},
		{ID: "therm", Factor: btuIT * 1e5, DisplayName: "Therm"},
		{ID: "MMBtu", Factor: btuIT * 1e6, DisplayName: "MMBtu"},
		{ID: "quad", Factor: btuIT * 1e15, DisplayName: "quad"},
		{ID: "eV", Factor: 1.60218e-19, DisplayName: "eV"},
		{ID: "tonneTNT", Factor: 4.184e9, DisplayName: "tTNT"},
		{ID: "TWyr", Factor: 31.54e18, DisplayName: "TWyr"},
		{ID: "kWh", Factor: 60 * 60 * 1e3, DisplayName: "kWh"},
		{ID: "short_ton_coal", Factor: 18.82e6 * btuIT, DisplayName: "st Coal"},
		{ID: "long_ton_coal", Factor: 18.82e6 * shortTonsPerLongTon * btuIT, DisplayName: "lt Coal"},
		{ID: "cord_wood", Factor: 20e6 * btuIT, DisplayName: "cord Wood"},
		{ID: "cubic_foot_ng", Factor: 1036 * btuIT, DisplayName: "ft3 NG"},
		{ID: "oil_bbl", Factor: 5684000 * btuIT, DisplayName: "bbl Oil"},
		{ID: "bbl_av_gasoline", Factor: 5.326e9, DisplayName: "bbl Aviation Gasoline"},
		{ID: "gal_gasoline", Factor: 120214.286 * btuIT, DisplayName: "gal Gasoline"},
		{ID: "gal_diesel", Factor: 137380.952 * btuIT, DisplayName: "gal Diesel"},
		{ID: "gal_heating_oil", Factor: 138500 * btuIT, DisplayName: "gal Heating Oil"},
		{ID: "bbl_residual_oil", Factor: 6.287e6 * btuIT, DisplayName: "bbl Residual Oil"},
		{ID: "gal_propane", Factor: 91452 * btuIT, DisplayName: "gal Propane"},
		{ID: "food_calorie", Factor: 1000 * 4.184, DisplayName: "Food Calorie"},
		{ID: "toe", Factor: 4.187e10, DisplayName: "toe"},
		{ID: "tce", Factor: 2.93e10, DisplayName: "tce"},
		{ID: "boe", Factor: 6.118e9, DisplayName: "boe"},
		{ID: "horsepower_h", Factor: 2684519.5368856, DisplayName: "hph"},
	}
}
