package units

import (
	"fmt"
	"iter"
	"strings"
)

// =============================================================================
// Policy
// =============================================================================

// Policy selects which canonical table a Registry exposes.
type Policy string

const (
	// PolicyNamed exposes exactly the display-named table.
	PolicyNamed Policy = "named"

	// PolicyPrefixed exposes the base table plus its full SI prefix expansion.
	PolicyPrefixed Policy = "prefixed"
)

// ParsePolicy parses a policy name, case-insensitively.
// An empty string selects PolicyNamed.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyNamed:
		return PolicyNamed, nil
	case PolicyPrefixed:
		return PolicyPrefixed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// =============================================================================
// Registry
// =============================================================================

// Registry is an immutable mapping from identifier to Unit.
// It has no mutating methods; concurrent reads need no locking.
type Registry struct {
	policy Policy
	order  []Unit
	index  map[string]int
}

// NewRegistry builds one of the canonical registries.
func NewRegistry(policy Policy) (*Registry, error) {
	var (
		reg *Registry
		err error
	)
	switch policy {
	case PolicyNamed:
		reg, err = Build(NamedUnits(), nil)
	case PolicyPrefixed:
		reg, err = Build(BaseUnits(), SIPrefixes())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
	}
	if err != nil {
		return nil, err
	}
	reg.policy = policy
	return reg, nil
}

// Build validates a table and returns a Registry over it. When prefixes is
// non-empty every table entry is followed by one derived entry per prefix,
// in prefix order. Any invalid or duplicate entry fails the whole build;
// conflicting factors are never merged.
func Build(table []Unit, prefixes []Prefix) (*Registry, error) {
	size := len(table) * (1 + len(prefixes))
	reg := &Registry{
		order: make([]Unit, 0, size),
		index: make(map[string]int, size),
	}

	for _, base := range table {
		if err := reg.add(base); err != nil {
			return nil, err
		}
		for _, p := range prefixes {
			if err := reg.add(p.Apply(base)); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// add is only called during Build.
func (r *Registry) add(u Unit) error {
	if err := u.validate(); err != nil {
		return err
	}
	if _, exists := r.index[u.ID]; exists {
		return NewTableError(u.ID, "identifier already registered", ErrDuplicateUnit)
	}
	if u.DisplayName == "" {
		u.DisplayName = u.ID
	}
	r.index[u.ID] = len(r.order)
	r.order = append(r.order, u)
	return nil
}

// Policy returns the policy the registry was built with.
// Registries from Build without NewRegistry report an empty policy.
func (r *Registry) Policy() Policy {
	return r.policy
}

// Lookup returns the unit with the given identifier.
// Matching is exact and case-sensitive.
func (r *Registry) Lookup(id string) (Unit, bool) {
	i, ok := r.index[id]
	if !ok {
		return Unit{}, false
	}
	return r.order[i], true
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.order)
}

// Units yields every unit in registry order. Each call starts a fresh
// iteration over the same immutable data.
func (r *Registry) Units() iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for _, u := range r.order {
			if !yield(u) {
				return
			}
		}
	}
}

// List returns a copy of every unit in registry order.
func (r *Registry) List() []Unit {
	out := make([]Unit, len(r.order))
	copy(out, r.order)
	return out
}
