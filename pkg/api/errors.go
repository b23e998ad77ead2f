package api

import "fmt"

// ErrorType represents the category of a bridge error.
type ErrorType string

const (
	// ErrorTypeInvalidRequest covers caller mistakes rejected before the
	// orchestrator runs (missing body, missing messages).
	ErrorTypeInvalidRequest ErrorType = "invalid_request"

	// ErrorTypeEngine covers failures from the engine invocation other
	// than "engine unavailable": bad credentials, provider errors,
	// malformed engine output.
	ErrorTypeEngine ErrorType = "engine_error"

	// ErrorTypeServer covers everything else, including recovered panics.
	ErrorTypeServer ErrorType = "server_error"
)

// Error is a categorized bridge error. The type selects the HTTP status at
// the transport boundary; only the message crosses it.
type Error struct {
	Type    ErrorType
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorResponse is the wire shape for every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewInvalidRequestError creates an Error for rejected caller input.
func NewInvalidRequestError(message string) *Error {
	return &Error{Type: ErrorTypeInvalidRequest, Message: message}
}

// NewEngineError creates an Error for a failed engine invocation.
func NewEngineError(message string) *Error {
	return &Error{Type: ErrorTypeEngine, Message: message}
}

// NewServerError creates an Error for internal failures.
func NewServerError(message string) *Error {
	return &Error{Type: ErrorTypeServer, Message: message}
}
