package units

// Prefix is an SI prefix and its power-of-ten multiplier.
type Prefix struct {
	Symbol     string
	Name       string
	Multiplier float64
}

// SIPrefixes returns the fixed SI prefix table, smallest first.
func SIPrefixes() []Prefix {
	return []Prefix{
		{Symbol: "y", Name: "yocto", Multiplier: 1e-24},
		{Symbol: "z", Name: "zepto", Multiplier: 1e-21},
		{Symbol: "a", Name: "atto", Multiplier: 1e-18},
		{Symbol: "f", Name: "femto", Multiplier: 1e-15},
		{Symbol: "p", Name: "pico", Multiplier: 1e-12},
		{Symbol: "n", Name: "nano", Multiplier: 1e-9},
		{Symbol: "μ", Name: "micro", Multiplier: 1e-6},
		{Symbol: "m", Name: "milli", Multiplier: 1e-3},
		{Symbol: "c", Name: "centi", Multiplier: 1e-2},
		{Symbol: "d", Name: "deci", Multiplier: 1e-1},
		{Symbol: "da", Name: "deca", Multiplier: 1e1},
		{Symbol: "h", Name: "hecto", Multiplier: 1e2},
		{Symbol: "k", Name: "kilo", Multiplier: 1e3},
		{Symbol: "M", Name: "mega", Multiplier: 1e6},
		{Symbol: "G", Name: "giga", Multiplier: 1e9},
		{Symbol: "T", Name: "tera", Multiplier: 1e12},
		{Symbol: "P", Name: "peta", Multiplier: 1e15},
		{Symbol: "E", Name: "exa", Multiplier: 1e18},
		{Symbol: "Z", Name: "zetta", Multiplier: 1e21},
		{Symbol: "Y", Name: "yotta", Multiplier: 1e24},
	}
}

// Apply derives the prefixed unit from a base unit.
func (p Prefix) Apply(base Unit) Unit {
	return Unit{
		ID:          p.Symbol + base.ID,
		Factor:      base.Factor * p.Multiplier,
		DisplayName: p.Symbol + base.Label(),
	}
}
