package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/artpar/energyx/internal/core/conversion"
	"github.com/artpar/energyx/internal/core/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestRegistry(t *testing.T, policy units.Policy) *units.Registry {
	t.Helper()
	reg, err := units.NewRegistry(policy)
	require.NoError(t, err)
	return reg
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	reg := newTestRegistry(t, units.PolicyNamed)
	return NewHandler(conversion.New(reg), nil) // nil logger uses default
}

// jsonBody encodes a value to JSON and returns a reader.
func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// parseResponse decodes a JSON response body.
func parseResponse[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(body).Decode(&result))
	return result
}

func ptr[T any](v T) *T { return &v }

// =============================================================================
// GET /api/v1/convert
// =============================================================================

func TestConvertQuery_Success(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?value=1&from=kWh&to=J", nil)
	w := httptest.NewRecorder()

	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := parseResponse[ConvertResponse](t, w.Body)
	assert.Equal(t, 3600000.0, resp.Result)
	assert.Equal(t, 1.0, resp.Value)
	assert.Equal(t, "kWh", resp.From)
	assert.Equal(t, "J", resp.To)
	assert.True(t, strings.HasPrefix(resp.ID, "conv_"))
}

func TestConvertQuery_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"missing value", "from=J&to=kJ", "value"},
		{"missing from", "value=1&to=kJ", "from"},
		{"missing to", "value=1&from=J", "to"},
		{"not a number", "value=abc&from=J&to=kJ", "value"},
		{"nan", "value=NaN&from=J&to=kJ", "value"},
		{"infinite", "value=1e400&from=J&to=kJ", "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?"+tt.query, nil)
			w := httptest.NewRecorder()

			h.Routes().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseResponse[ErrorResponse](t, w.Body)
			assert.Equal(t, CodeValidation, resp.Code)
			assert.Equal(t, tt.field, resp.Field)
		})
	}
}

func TestConvertQuery_UnknownUnit(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		unit string
	}{
		{"unknown from", "furlong", "J", "furlong"},
		{"unknown to", "J", "parsec", "parsec"},
		{"both unknown reports from", "a", "b", "a"},
		{"case sensitive", "j", "J", "j"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/convert?value=1&from="+tt.from+"&to="+tt.to, nil)
			w := httptest.NewRecorder()

			h.Routes().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseResponse[ErrorResponse](t, w.Body)
			assert.Equal(t, CodeUnknownUnit, resp.Code)
			assert.Equal(t, tt.unit, resp.Unit)
			assert.Contains(t, resp.Error, tt.unit)
		})
	}
}

func TestConvertQuery_ResultOutOfRange(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?value=1e300&from=TJ&to=eV", nil)
	w := httptest.NewRecorder()

	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := parseResponse[ErrorResponse](t, w.Body)
	assert.Equal(t, CodeOutOfRange, resp.Code)
}

// =============================================================================
// POST /api/v1/convert
// =============================================================================

func TestConvertBody_Success(t *testing.T) {
	h := newTestHandler(t)

	body := jsonBody(t, ConvertRequest{Value: ptr(2.5), From: "kJ", To: "J"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", body)
	w := httptest.NewRecorder()

	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse[ConvertResponse](t, w.Body)
	assert.Equal(t, 2500.0, resp.Result)
}

func TestConvertBody_ZeroValue(t *testing.T) {
	h := newTestHandler(t)

	body := jsonBody(t, ConvertRequest{Value: ptr(0.0), From: "kWh", To: "eV"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", body)
	w := httptest.NewRecorder()

	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse[ConvertResponse](t, w.Body)
	assert.Equal(t, 0.0, resp.Result)
}

func TestConvertBody_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseResponse[ErrorResponse](t, w.Body)
	assert.Equal(t, CodeValidation, resp.Code)
}

func TestConvertBody_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		req   ConvertRequest
		field string
	}{
		{"missing value", ConvertRequest{From: "J", To: "kJ"}, "value"},
		{"missing from", ConvertRequest{Value: ptr(1.0), To: "kJ"}, "from"},
		{"missing to", ConvertRequest{Value: ptr(1.0), From: "J"}, "to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", jsonBody(t, tt.req))
			w := httptest.NewRecorder()

			h.Routes().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseResponse[ErrorResponse](t, w.Body)
			assert.Equal(t, tt.field, resp.Field)
		})
	}
}

func TestConvertBody_UnknownUnit(t *testing.T) {
	h := newTestHandler(t)

	body := jsonBody(t, ConvertRequest{Value: ptr(1.0), From: "J", To: "kJoule"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", body)
	w := httptest.NewRecorder()

	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseResponse[ErrorResponse](t, w.Body)
	assert.Equal(t, CodeUnknownUnit, resp.Code)
	assert.Equal(t, "kJoule", resp.Unit)
	assert.Equal(t, "unknown energy unit: kJoule", resp.Error)
}

func TestConvert_PrefixedRegistry(t *testing.T) {
	reg := newTestRegistry(t, units.PolicyPrefixed)
	h := NewHandler(conversion.New(reg), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?value=1&from=kWh&to=MJ", nil)
	w := httptest.NewRecorder()

	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse[ConvertResponse](t, w.Body)
	assert.InEpsilon(t, 3.6, resp.Result, 1e-12)
}

// =============================================================================
// Unmatched Routes
// =============================================================================

func TestRoutes_UnmatchedReturnJSON(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
		code   string
	}{
		{"unknown path", http.MethodGet, "/api/v1/converter", http.StatusNotFound, CodeNotFound},
		{"wrong method", http.MethodPut, "/api/v1/convert", http.StatusMethodNotAllowed, CodeNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			h.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			resp := parseResponse[ErrorResponse](t, w.Body)
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}
