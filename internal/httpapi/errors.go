package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/portfolio/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "validation_error")
}

func notFound(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusNotFound, msg, "not_found")
}

func internalError(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusInternalServerError, msg, "internal_error")
}

// writeServiceError maps service errors onto HTTP responses. Unexpected errors
// are logged and surfaced with the opaque fallback message only.
func writeServiceError(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrInvalid):
		badRequest(w, errs.Message(err, "invalid request"))
	case errors.Is(err, errs.ErrNotFound):
		notFound(w, errs.Message(err, "not found"))
	default:
		l.Error("request failed", "req_id", chimw.GetReqID(r.Context()), "path", r.URL.Path, "err", err)
		internalError(w, fallback)
	}
}
