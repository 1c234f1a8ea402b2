package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthenticated indicates a private operation was invoked on an agent
// that has not been upgraded with credentials. It is raised synchronously,
// before any network call.
var ErrUnauthenticated = errors.New("agent has no credentials; call Upgrade first")

// TransportError represents a network-level failure where no response was
// received from the server.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success response from the server. The raw body is
// always retained; Error surfaces the most specific detail available.
type APIError struct {
	// StatusCode is the HTTP status the server responded with
	StatusCode int

	// Message is the server-supplied error message field, when present
	Message string

	// Body is the raw response body
	Body []byte
}

// newAPIError normalizes a non-success response. Preference order for the
// surfaced detail: the server's structured message field, then the raw body,
// then the bare status.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Message
	}

	return apiErr
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}

	if body := strings.TrimSpace(string(e.Body)); body != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, body)
	}

	return fmt.Sprintf("api error: server responded with status %d", e.StatusCode)
}
