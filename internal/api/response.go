package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
)

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_ERROR"
)

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers already sent
		core.CurrentLogger().Warnf("failed to encode JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, statusCode int, code string, message string) {
	respondJSON(w, statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondCoreError maps the core errors to HTTP status codes.
// Internal details are logged, never returned.
func respondCoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case core.IsClientError(err):
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
	case errors.Is(err, core.ErrNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, "article not found")
	default:
		core.CurrentLogger().Warnf("%s %s failed: %v", r.Method, r.URL.Path, err)
		respondError(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}
