package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/artpar/energyx/internal/core/conversion"
	"github.com/artpar/energyx/internal/core/units"
	"github.com/artpar/energyx/internal/shell/api"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess         = 0
	ExitConfigError     = 1
	ExitUsageError      = 2
	ExitConversionError = 3
	ExitHTTPServerError = 4
)

// =============================================================================
// Server
// =============================================================================

// Server is the energyx HTTP server.
type Server struct {
	config     *Config
	httpServer *http.Server
	logger     *slog.Logger
	ready      chan net.Addr
}

// NewServer creates a server over an existing registry and converter.
func NewServer(cfg *Config, reg *units.Registry, conv *conversion.Converter, logger *slog.Logger) *Server {
	handler := api.SetupAPI(api.APIConfig{
		Registry:  reg,
		Converter: conv,
		Logger:    logger,
		Version:   Version,
	})

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:         cfg.Server.Address(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		logger: logger,
		ready:  make(chan net.Addr, 1),
	}
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return &CommandError{Op: "serve", Err: err, ExitCode: ExitHTTPServerError}
	}
	s.ready <- ln.Addr()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		s.logger.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		return &CommandError{Op: "serve", Err: err, ExitCode: ExitHTTPServerError}
	case <-ctx.Done():
		s.logger.Info("context cancelled")
	}

	return s.Shutdown(context.Background())
}

// Ready receives the bound address once the listener is open.
func (s *Server) Ready() <-chan net.Addr {
	return s.ready
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return &CommandError{Op: "shutdown", Err: err, ExitCode: ExitHTTPServerError}
	}

	s.logger.Info("shutdown complete")
	return nil
}

// =============================================================================
// Command Error
// =============================================================================

// CommandError represents a failed command and the exit code it maps to.
type CommandError struct {
	Op       string
	Err      error
	ExitCode int
}

func (e *CommandError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
