// Package resources provides JSON:API resource implementations for the energyx API.
package resources

import (
	"fmt"
	"net/http"

	"github.com/artpar/energyx/internal/core/units"
	"github.com/manyminds/api2go"
)

// =============================================================================
// Unit JSON:API Model
// =============================================================================

// Unit wraps units.Unit to implement JSON:API interfaces.
type Unit struct {
	ID          string  `json:"-"`
	DisplayName string  `json:"display_name"`
	Factor      float64 `json:"factor"`
}

// GetID returns the unit identifier for JSON:API.
func (u Unit) GetID() string {
	return u.ID
}

// SetID sets the unit identifier for JSON:API.
func (u *Unit) SetID(id string) error {
	u.ID = id
	return nil
}

// GetName returns the JSON:API resource type name.
func (u Unit) GetName() string {
	return "units"
}

// UnitFromDomain converts a units.Unit to a JSON:API Unit.
func UnitFromDomain(u units.Unit) Unit {
	return Unit{
		ID:          u.ID,
		DisplayName: u.Label(),
		Factor:      u.Factor,
	}
}

// =============================================================================
// UnitResource - Read-only Operations
// =============================================================================

// UnitResource exposes a registry as the read-only "units" collection.
type UnitResource struct {
	Registry *units.Registry
}

// NewUnitResource creates a new unit resource handler.
func NewUnitResource(reg *units.Registry) UnitResource {
	return UnitResource{Registry: reg}
}

// FindAll returns every unit in registry order.
func (r UnitResource) FindAll(req api2go.Request) (api2go.Responder, error) {
	result := make([]Unit, 0, r.Registry.Len())
	for u := range r.Registry.Units() {
		result = append(result, UnitFromDomain(u))
	}

	return &Response{
		Code: http.StatusOK,
		Res:  result,
		Meta: map[string]interface{}{
			"total":  len(result),
			"policy": string(r.Registry.Policy()),
		},
	}, nil
}

// FindOne returns a single unit by identifier.
func (r UnitResource) FindOne(id string, req api2go.Request) (api2go.Responder, error) {
	u, ok := r.Registry.Lookup(id)
	if !ok {
		return &Response{Code: http.StatusNotFound}, api2go.NewHTTPError(
			fmt.Errorf("unknown energy unit: %s", id),
			fmt.Sprintf("unknown energy unit: %s", id),
			http.StatusNotFound,
		)
	}

	return &Response{
		Code: http.StatusOK,
		Res:  UnitFromDomain(u),
	}, nil
}

// =============================================================================
// Response Implementation
// =============================================================================

// Response implements api2go.Responder.
type Response struct {
	Code int
	Res  interface{}
	Meta map[string]interface{}
}

// Metadata returns additional metadata for the response.
func (r *Response) Metadata() map[string]interface{} {
	return r.Meta
}

// Result returns the response data.
func (r *Response) Result() interface{} {
	return r.Res
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.Code
}
