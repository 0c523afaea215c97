// Package v1handler implements the v1 HTTP handlers of the tax service:
// the embedded calculator form, the calculate endpoint and the JSON
// error responses shared between them.
package v1handler

import (
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"

	"taxapp/internal/notify"
	"taxapp/pkg/logger"
	"taxapp/pkg/metrics"
	"taxapp/pkg/serrors"
)

// formPage contains the embedded calculator frontend served at the root path.
//
//go:embed form.html
var formPage []byte

// RouteNotFoundMessage is the error body returned for unknown paths and methods.
const RouteNotFoundMessage = "Route not found"

type Deps struct {
	// Dispatcher delivers calculation results over the channel selected at startup.
	Dispatcher notify.Dispatcher
	// Metrics is optional, nil disables instrumentation.
	Metrics *metrics.Metrics
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Index serves the embedded calculator form.
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(formPage)
}

// NotFound replies with the service's JSON 404 body. It replaces the default
// plain-text response of net/http for unknown routes and wrong methods alike.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: RouteNotFoundMessage})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps semantic error kinds to HTTP statuses and writes the
// JSON error body. Unrecognized errors become a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error(r.Context(), err.Error())

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrUnavailable):
		status = http.StatusInternalServerError
	case errors.Is(err, serrors.ErrTimeout):
		status = http.StatusGatewayTimeout
	}

	writeJSON(w, status, errorBody{Error: err.Error()})
}
