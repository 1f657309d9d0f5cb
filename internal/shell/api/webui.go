package api

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/artpar/energyx/internal/core/conversion"
	"github.com/artpar/energyx/internal/core/units"
	"github.com/artpar/energyx/internal/core/validation"
)

//go:embed templates/*.html
var templatesFS embed.FS

var formTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// formData is the view model for form.html.
type formData struct {
	Units  []units.Unit
	Value  string
	From   string
	To     string
	Result string
	Error  string
}

// WebUIHandler returns an HTTP handler that serves the conversion form.
// When value, from and to are all present in the query the conversion is
// performed and rendered below the form.
func WebUIHandler(reg *units.Registry, c *conversion.Converter, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	list := reg.List()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		q := r.URL.Query()
		data := formData{
			Units: list,
			Value: q.Get("value"),
			From:  q.Get("from"),
			To:    q.Get("to"),
		}
		// Preselect only on first load; an explicit empty value is a validation error.
		if !q.Has("from") && len(list) > 0 {
			data.From = list[0].ID
		}
		if !q.Has("to") && len(list) > 0 {
			data.To = list[0].ID
		}

		status := http.StatusOK
		if q.Has("value") && q.Has("from") && q.Has("to") {
			status = renderConversion(&data, c)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := formTmpl.ExecuteTemplate(w, "form.html", data); err != nil {
			logger.Error("failed to render form", "error", err)
		}
	})
}

// renderConversion fills data.Result or data.Error and returns the status code.
func renderConversion(data *formData, c *conversion.Converter) int {
	if field, msg := validation.ValidateConvertFields(data.Value, data.From, data.To); field != "" {
		data.Error = msg
		return http.StatusBadRequest
	}
	value, err := validation.ParseValue(data.Value)
	if err != nil {
		data.Error = err.Error()
		return http.StatusBadRequest
	}

	result, err := c.Convert(value, data.From, data.To)
	if err != nil {
		if errors.Is(err, conversion.ErrUnknownUnit) {
			data.Error = err.Error()
			return http.StatusBadRequest
		}
		data.Error = "conversion failed"
		return http.StatusInternalServerError
	}
	if !validation.IsFiniteResult(result) {
		data.Error = "result is outside the float64 range"
		return http.StatusUnprocessableEntity
	}

	data.Result = strconv.FormatFloat(result, 'g', -1, 64)
	return http.StatusOK
}
