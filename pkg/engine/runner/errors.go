package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rlmdev/rlmbridge/pkg/api"
)

// errorResponse covers both error shapes the runner may produce: a flat
// {"error": "msg"} and a nested {"error": {"message": "msg"}}.
type errorResponse struct {
	Error json.RawMessage `json:"error"`
}

type nestedError struct {
	Message string `json:"message"`
}

// mapHTTPError converts a non-2xx runner response into an api.Error,
// extracting a descriptive message from the body when present.
func mapHTTPError(resp *http.Response) *api.Error {
	message := extractErrorMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		if message == "" {
			message = "invalid request to runner"
		}
		return api.NewInvalidRequestError(message)

	case resp.StatusCode >= http.StatusInternalServerError:
		if message == "" {
			message = fmt.Sprintf("runner error (HTTP %d)", resp.StatusCode)
		}
		return api.NewEngineError(message)

	default:
		if message == "" {
			message = fmt.Sprintf("unexpected runner error (HTTP %d)", resp.StatusCode)
		}
		return api.NewEngineError(message)
	}
}

// mapNetworkError converts a network-level error (connection refused,
// timeout, DNS failure) into an api.Error.
func mapNetworkError(err error) *api.Error {
	return api.NewEngineError(fmt.Sprintf("runner connection error: %s", err.Error()))
}

// extractErrorMessage tries to parse the response body as an errorResponse
// and returns the error message if found.
func extractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var errResp errorResponse
	if err := json.Unmarshal(data, &errResp); err != nil || len(errResp.Error) == 0 {
		return ""
	}

	var flat string
	if err := json.Unmarshal(errResp.Error, &flat); err == nil {
		return flat
	}

	var nested nestedError
	if err := json.Unmarshal(errResp.Error, &nested); err == nil {
		return nested.Message
	}

	return ""
}
