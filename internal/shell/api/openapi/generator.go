// Package openapi provides reflective OpenAPI 3.0 specification generation.
package openapi

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// =============================================================================
// Generator
// =============================================================================

// Generator produces OpenAPI 3.0 specifications by reflecting on registered
// resources and actions.
type Generator struct {
	title       string
	version     string
	description string
	servers     []string
	resources   []ResourceInfo
	actions     []ActionInfo
	mu          sync.RWMutex
	cachedSpec  *openapi3.T
}

// ResourceInfo holds information about a read-only JSON:API resource.
type ResourceInfo struct {
	Name  string      // Resource type name (e.g., "units")
	Model interface{} // The model struct for schema extraction
}

// ActionInfo describes a plain JSON endpoint outside the JSON:API resources.
type ActionInfo struct {
	Path        string      // Full path, e.g. "/api/v1/convert"
	Method      string      // http.MethodGet or http.MethodPost
	OperationID string      // e.g. "convertQuery"
	Summary     string      // Short description
	Query       []string    // Required query parameters (GET)
	Request     interface{} // Request body model (POST), nil for none
	Response    interface{} // Success response model
}

// Option configures the generator.
type Option func(*Generator)

// WithTitle sets the API title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithVersion sets the API version.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithDescription sets the API description.
func WithDescription(description string) Option {
	return func(g *Generator) {
		g.description = description
	}
}

// WithServer adds a server URL.
func WithServer(url string) Option {
	return func(g *Generator) {
		g.servers = append(g.servers, url)
	}
}

// NewGenerator creates a new OpenAPI generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		title:       "energyx API",
		version:     "1.0.0",
		description: "Energy unit conversion API",
		resources:   make([]ResourceInfo, 0),
		actions:     make([]ActionInfo, 0),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RegisterResource adds a resource to the generator for spec generation.
func (g *Generator) RegisterResource(info ResourceInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resources = append(g.resources, info)
	g.cachedSpec = nil // Invalidate cache
}

// RegisterAction adds a plain JSON endpoint to the generator.
func (g *Generator) RegisterAction(info ActionInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.actions = append(g.actions, info)
	g.cachedSpec = nil
}

// Generate produces the complete OpenAPI 3.0 specification.
func (g *Generator) Generate() *openapi3.T {
	g.mu.RLock()
	if g.cachedSpec != nil {
		spec := g.cachedSpec
		g.mu.RUnlock()
		return spec
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	// Double-check after acquiring write lock
	if g.cachedSpec != nil {
		return g.cachedSpec
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.title,
			Version:     g.version,
			Description: g.description,
		},
		Servers: make(openapi3.Servers, 0, len(g.servers)),
		Paths:   &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}

	for _, url := range g.servers {
		spec.Servers = append(spec.Servers, &openapi3.Server{URL: url})
	}

	g.addCommonSchemas(spec)

	for _, res := range g.resources {
		g.addResourceToSpec(spec, res)
	}
	for _, act := range g.actions {
		g.addActionToSpec(spec, act)
	}

	g.cachedSpec = spec
	return spec
}

// Handler returns an HTTP handler that serves the OpenAPI specification.
func (g *Generator) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec := g.Generate()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(spec); err != nil {
			http.Error(w, "Failed to encode OpenAPI spec", http.StatusInternalServerError)
		}
	}
}

// =============================================================================
// Schema Generation
// =============================================================================

// addCommonSchemas adds the shared error schemas to the spec.
func (g *Generator) addCommonSchemas(spec *openapi3.T) {
	str := func() *openapi3.SchemaRef {
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}}
	}

	// Plain JSON error (convert endpoints)
	spec.Components.Schemas["Error"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"error": str(),
				"code":  str(),
				"field": str(),
				"unit":  str(),
			},
			Required: []string{"error", "code"},
		},
	}

	// JSON:API error document (resource endpoints)
	spec.Components.Schemas["JSONAPIError"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"errors": &openapi3.SchemaRef{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"array"},
						Items: &openapi3.SchemaRef{
							Value: &openapi3.Schema{
								Type: &openapi3.Types{"object"},
								Properties: openapi3.Schemas{
									"status": str(),
									"title":  str(),
									"detail": str(),
								},
							},
						},
					},
				},
			},
		},
	}
}

// addResourceToSpec adds list and get paths for a read-only resource.
func (g *Generator) addResourceToSpec(spec *openapi3.T, res ResourceInfo) {
	basePath := "/api/v1/" + res.Name
	schemaName := capitalize(singularize(res.Name))

	spec.Components.Schemas[schemaName+"Attributes"] = g.extractSchema(res.Model)

	spec.Components.Schemas[schemaName] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"type": &openapi3.SchemaRef{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"string"},
						Enum: []interface{}{res.Name},
					},
				},
				"id": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
				"attributes": &openapi3.SchemaRef{
					Ref: "#/components/schemas/" + schemaName + "Attributes",
				},
			},
			Required: []string{"type", "id"},
		},
	}

	spec.Components.Schemas[schemaName+"Response"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"data": &openapi3.SchemaRef{
					Ref: "#/components/schemas/" + schemaName,
				},
			},
		},
	}

	spec.Components.Schemas[schemaName+"ListResponse"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"data": &openapi3.SchemaRef{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"array"},
						Items: &openapi3.SchemaRef{
							Ref: "#/components/schemas/" + schemaName,
						},
					},
				},
				"meta": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"object"}},
				},
			},
		},
	}

	spec.Paths.Set(basePath, &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "list" + capitalize(res.Name),
			Summary:     "List " + res.Name,
			Tags:        []string{capitalize(res.Name)},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("OK", schemaName+"ListResponse")),
			),
		},
	})

	spec.Paths.Set(basePath+"/{id}", &openapi3.PathItem{
		Parameters: openapi3.Parameters{
			&openapi3.ParameterRef{
				Value: openapi3.NewPathParameter("id").
					WithSchema(openapi3.NewStringSchema()),
			},
		},
		Get: &openapi3.Operation{
			OperationID: "get" + schemaName,
			Summary:     "Get a " + singularize(res.Name),
			Tags:        []string{capitalize(res.Name)},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("OK", schemaName+"Response")),
				openapi3.WithStatus(http.StatusNotFound, jsonResponse("Unknown unit", "JSONAPIError")),
			),
		},
	})
}

// addActionToSpec adds a plain JSON endpoint.
func (g *Generator) addActionToSpec(spec *openapi3.T, act ActionInfo) {
	op := &openapi3.Operation{
		OperationID: act.OperationID,
		Summary:     act.Summary,
		Tags:        []string{"Actions"},
	}

	for _, name := range act.Query {
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
			Value: openapi3.NewQueryParameter(name).
				WithRequired(true).
				WithSchema(openapi3.NewStringSchema()),
		})
	}

	if act.Request != nil {
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchemaRef(g.extractSchema(act.Request)),
		}
	}

	respName := capitalize(act.OperationID) + "Response"
	if act.Response != nil {
		spec.Components.Schemas[respName] = g.extractSchema(act.Response)
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("OK", respName)),
		openapi3.WithStatus(http.StatusBadRequest, jsonResponse("Invalid input or unknown unit", "Error")),
		openapi3.WithStatus(http.StatusUnprocessableEntity, jsonResponse("Result outside the float64 range", "Error")),
	)

	item := spec.Paths.Value(act.Path)
	if item == nil {
		item = &openapi3.PathItem{}
		spec.Paths.Set(act.Path, item)
	}
	item.SetOperation(act.Method, op)
}

// jsonResponse builds a response referencing a component schema.
func jsonResponse(description, schemaName string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/" + schemaName}),
	}
}

// extractSchema extracts an OpenAPI schema from a Go struct.
func (g *Generator) extractSchema(model interface{}) *openapi3.SchemaRef {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	schema := &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Properties: make(openapi3.Schemas),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		// Get JSON tag
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		// Parse JSON tag for name
		name := field.Name
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
		}

		// Convert Go type to OpenAPI type
		propSchema := g.goTypeToSchema(field.Type)
		if propSchema != nil {
			schema.Properties[name] = propSchema
		}
	}

	return &openapi3.SchemaRef{Value: schema}
}

// goTypeToSchema converts a Go type to an OpenAPI schema.
func (g *Generator) goTypeToSchema(t reflect.Type) *openapi3.SchemaRef {
	switch t.Kind() {
	case reflect.String:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int32"}}

	case reflect.Int64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int64"}}

	case reflect.Float32:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"number"}, Format: "float"}}

	case reflect.Float64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"number"}, Format: "double"}}

	case reflect.Bool:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"boolean"}}}

	case reflect.Slice, reflect.Array:
		return &openapi3.SchemaRef{
			Value: &openapi3.Schema{
				Type:  &openapi3.Types{"array"},
				Items: g.goTypeToSchema(t.Elem()),
			},
		}

	case reflect.Ptr:
		schema := g.goTypeToSchema(t.Elem())
		if schema != nil && schema.Value != nil {
			schema.Value.Nullable = true
		}
		return schema

	case reflect.Struct:
		// Handle time.Time specially
		if t == reflect.TypeOf(time.Time{}) {
			return &openapi3.SchemaRef{
				Value: &openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "date-time"},
			}
		}
		return g.extractSchema(reflect.New(t).Interface())

	default:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"object"}}}
	}
}

// =============================================================================
// Helpers
// =============================================================================

// capitalize returns the string with the first letter capitalized.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// singularize performs basic singularization (removes trailing 's').
func singularize(s string) string {
	if strings.HasSuffix(s, "ies") {
		return s[:len(s)-3] + "y"
	}
	if strings.HasSuffix(s, "s") {
		return s[:len(s)-1]
	}
	return s
}
