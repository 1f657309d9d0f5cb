package conversion

import "github.com/artpar/energyx/internal/core/units"

// Lookuper resolves unit identifiers. *units.Registry satisfies it.
type Lookuper interface {
	Lookup(id string) (units.Unit, bool)
}

// Request is a single conversion.
type Request struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

// Result is the outcome of a Request. Value is meaningful only when Err is nil.
type Result struct {
	Request Request
	Value   float64
	Err     error
}

// Observer receives every conversion outcome.
// Implementations must be safe for concurrent use.
type Observer interface {
	Observe(Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Result)

// Observe calls f(r).
func (f ObserverFunc) Observe(r Result) {
	f(r)
}

// Option configures a Converter.
type Option func(*Converter)

// WithObserver registers an observer notified after every conversion.
func WithObserver(o Observer) Option {
	return func(c *Converter) {
		c.observer = o
	}
}

// Converter converts values between units of one registry.
type Converter struct {
	registry Lookuper
	observer Observer
}

// New creates a Converter over the given registry.
func New(registry Lookuper, opts ...Option) *Converter {
	c := &Converter{registry: registry}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts value from one unit to another.
// The from unit is checked first, so it is the one reported when both are unknown.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	res := c.Do(Request{Value: value, From: from, To: to})
	return res.Value, res.Err
}

// Do performs req and returns its Result.
func (c *Converter) Do(req Request) Result {
	res := convert(c.registry, req)
	if c.observer != nil {
		c.observer.Observe(res)
	}
	return res
}

func convert(reg Lookuper, req Request) Result {
	src, ok := reg.Lookup(req.From)
	if !ok {
		return Result{Request: req, Err: &UnknownUnitError{Unit: req.From}}
	}
	dst, ok := reg.Lookup(req.To)
	if !ok {
		return Result{Request: req, Err: &UnknownUnitError{Unit: req.To}}
	}

	joules := req.Value * src.Factor
	return Result{Request: req, Value: joules / dst.Factor}
}
