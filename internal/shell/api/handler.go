// Package api provides HTTP handlers for the energyx API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/artpar/energyx/internal/core/conversion"
	"github.com/artpar/energyx/internal/core/validation"
	"github.com/artpar/energyx/internal/shell/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeValidation  = "validation_error"
	CodeUnknownUnit = "unknown_unit"
	CodeOutOfRange  = "result_out_of_range"
	CodeNotFound    = "not_found"
	CodeNotAllowed  = "method_not_allowed"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides the conversion endpoints.
type Handler struct {
	converter *conversion.Converter
	logger    *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(c *conversion.Converter, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		converter: c,
		logger:    l,
	}
}

// Routes returns the router with all conversion routes configured.
// Request IDs and panic recovery come from the root router in SetupAPI.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(h.jsonContentType)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusNotFound, "no route for "+r.URL.Path, CodeNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed", CodeNotAllowed)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert", h.handleConvertQuery)
		r.Post("/convert", h.handleConvertBody)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Convert Handlers
// =============================================================================

func (h *Handler) handleConvertQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw, from, to := q.Get("value"), q.Get("from"), q.Get("to")

	if field, msg := validation.ValidateConvertFields(raw, from, to); field != "" {
		h.writeFieldError(w, field, msg)
		return
	}

	value, err := validation.ParseValue(raw)
	if err != nil {
		h.writeFieldError(w, "value", err.Error())
		return
	}

	h.convert(w, r, conversion.Request{Value: value, From: from, To: to})
}

func (h *Handler) handleConvertBody(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", CodeValidation)
		return
	}

	if req.Value == nil {
		h.writeFieldError(w, "value", "value is required")
		return
	}
	if field, msg := validation.ValidateUnitFields(req.From, req.To); field != "" {
		h.writeFieldError(w, field, msg)
		return
	}

	h.convert(w, r, conversion.Request{Value: *req.Value, From: req.From, To: req.To})
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request, req conversion.Request) {
	res := h.converter.Do(req)
	if res.Err != nil {
		var uerr *conversion.UnknownUnitError
		if errors.As(res.Err, &uerr) {
			h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: res.Err.Error(),
				Code:  CodeUnknownUnit,
				Unit:  uerr.Unit,
			})
			return
		}
		h.logger.Error("conversion failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", res.Err,
		)
		h.writeError(w, http.StatusInternalServerError, "conversion failed", "internal_error")
		return
	}

	if !validation.IsFiniteResult(res.Value) {
		h.writeError(w, http.StatusUnprocessableEntity, "result is outside the float64 range", CodeOutOfRange)
		return
	}

	h.writeJSON(w, http.StatusOK, ConvertResponse{
		ID:     "conv_" + uuid.New().String()[:8],
		Value:  req.Value,
		From:   req.From,
		To:     req.To,
		Result: res.Value,
	})
}

// =============================================================================
// Helpers
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func (h *Handler) writeFieldError(w http.ResponseWriter, field, message string) {
	h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: message,
		Code:  CodeValidation,
		Field: field,
	})
}
