package agent

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the success envelope for one dispatched request.
type Response struct {
	// StatusCode is the HTTP status the server responded with
	StatusCode int

	// Header holds the response headers, including the exchange's pagination
	// cursors (CB-BEFORE, CB-AFTER)
	Header http.Header

	// Body is the raw response body
	Body []byte
}

// Decode unmarshals the response body into v
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
