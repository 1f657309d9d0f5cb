package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/artpar/energyx/internal/core/conversion"
	"github.com/artpar/energyx/internal/core/units"
	"github.com/artpar/energyx/internal/shell/api/middleware"
	"github.com/artpar/energyx/internal/shell/api/openapi"
	"github.com/artpar/energyx/internal/shell/api/resources"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go"
)

// =============================================================================
// API Setup
// =============================================================================

// APIConfig holds configuration for the API setup.
type APIConfig struct {
	Registry  *units.Registry
	Converter *conversion.Converter
	Logger    *slog.Logger
	Version   string
}

// SetupAPI creates the complete router: conversion endpoints, the JSON:API
// units collection, the OpenAPI document and the HTML form.
func SetupAPI(cfg APIConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if cfg.Converter == nil {
		cfg.Converter = conversion.New(cfg.Registry)
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog(cfg.Logger))
	router.Use(middleware.Recover(cfg.Logger))

	router.HandleFunc("/health", healthHandler(cfg.Registry, cfg.Version)).Methods("GET")

	// OpenAPI endpoint
	openapiGen := openapi.NewGenerator(
		openapi.WithTitle("energyx API"),
		openapi.WithVersion(cfg.Version),
		openapi.WithDescription("Energy unit conversion through a joule-based factor registry"),
	)
	openapiGen.RegisterResource(openapi.ResourceInfo{
		Name:  "units",
		Model: resources.Unit{},
	})
	openapiGen.RegisterAction(openapi.ActionInfo{
		Path:        "/api/v1/convert",
		Method:      http.MethodGet,
		OperationID: "convertQuery",
		Summary:     "Convert a value between two units",
		Query:       []string{"value", "from", "to"},
		Response:    ConvertResponse{},
	})
	openapiGen.RegisterAction(openapi.ActionInfo{
		Path:        "/api/v1/convert",
		Method:      http.MethodPost,
		OperationID: "convertBody",
		Summary:     "Convert a value between two units",
		Request:     ConvertRequest{},
		Response:    ConvertResponse{},
	})
	router.HandleFunc("/openapi.json", openapiGen.Handler()).Methods("GET")

	// Conversion endpoints must be registered before the api2go prefix
	router.PathPrefix("/api/v1/convert").Handler(NewHandler(cfg.Converter, cfg.Logger).Routes())

	// api2go expects paths without the /api prefix (e.g., /v1/units)
	jsonAPI := api2go.NewAPIWithResolver("v1", api2go.NewStaticResolver("/api"))
	jsonAPI.ContentType = "application/vnd.api+json"
	jsonAPI.AddResource(resources.Unit{}, resources.NewUnitResource(cfg.Registry))
	router.PathPrefix("/api").Handler(http.StripPrefix("/api", jsonAPI.Handler()))

	// Catch-all
	router.PathPrefix("/").Handler(WebUIHandler(cfg.Registry, cfg.Converter, cfg.Logger))

	return router
}

// =============================================================================
// Health Handler
// =============================================================================

func healthHandler(reg *units.Registry, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{
			Status:  "healthy",
			Version: version,
			Policy:  string(reg.Policy()),
			Units:   reg.Len(),
		})
	}
}
