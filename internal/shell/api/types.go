package api

// =============================================================================
// Request Types
// =============================================================================

// ConvertRequest is the request body for POST /api/v1/convert.
type ConvertRequest struct {
	Value *float64 `json:"value"`
	From  string   `json:"from"`
	To    string   `json:"to"`
}

// =============================================================================
// Response Types
// =============================================================================

// ConvertResponse is the response for a successful conversion.
type ConvertResponse struct {
	ID     string  `json:"id"`
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}

// ErrorResponse is the response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

// HealthResponse is the response for health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Policy  string `json:"policy"`
	Units   int    `json:"units"`
}
