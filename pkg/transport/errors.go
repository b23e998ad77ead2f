package transport

import (
	"encoding/json"
	"net/http"

	"github.com/rlmdev/rlmbridge/pkg/api"
)

// HTTPStatusFromError maps an api.Error type to the corresponding HTTP
// status code. Validation failures are rejected with 400 before the bridge
// core runs; everything else surfaces as 500.
func HTTPStatusFromError(err *api.Error) int {
	switch err.Type {
	case api.ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case api.ErrorTypeEngine, api.ErrorTypeServer:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// WriteErrorResponse writes the flat {"error": "<message>"} JSON body with
// the given status code.
func WriteErrorResponse(w http.ResponseWriter, apiErr *api.Error, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: apiErr.Message})
}

// WriteError writes an error response, deriving the HTTP status code from
// the error type.
func WriteError(w http.ResponseWriter, apiErr *api.Error) {
	WriteErrorResponse(w, apiErr, HTTPStatusFromError(apiErr))
}
