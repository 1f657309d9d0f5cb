// Package observe reports conversion outcomes to a structured logger.
package observe

import (
	"log/slog"

	"github.com/artpar/energyx/internal/core/conversion"
)

// SlogObserver logs conversions. Successes go to Debug; unknown units to Warn.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates an observer writing to logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

// Observe implements conversion.Observer.
func (o *SlogObserver) Observe(r conversion.Result) {
	if r.Err != nil {
		unit, _ := conversion.UnknownUnit(r.Err)
		o.logger.Warn("conversion failed",
			"unit", unit,
			"from", r.Request.From,
			"to", r.Request.To,
			"error", r.Err,
		)
		return
	}

	o.logger.Debug("conversion complete",
		"from", r.Request.From,
		"to", r.Request.To,
		"value", r.Request.Value,
		"result", r.Value,
	)
}
