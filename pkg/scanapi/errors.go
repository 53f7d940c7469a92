package scanapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is the service's error envelope. Validation failures carry
// per-field messages under Fields; everything else carries a Detail string.
// It is shared by the server (to write responses) and the client (to
// represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is a short machine-readable error code, e.g. "validation_error".
	Code string `json:"error,omitempty"`

	// Detail is a human-readable description.
	Detail string `json:"detail,omitempty"`

	// Fields maps payload field names to validation messages.
	Fields map[string][]string `json:"fields,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for f := range e.Fields {
			names = append(names, f)
		}
		sort.Strings(names)
		return fmt.Sprintf("%s: %s", e.Code, strings.Join(names, ", "))
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// parseErrorResponse turns a non-2xx response body into an APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.Code == "" && apiErr.Detail == "" && len(apiErr.Fields) == 0) {
		apiErr.Detail = strings.TrimSpace(string(body))
		if apiErr.Detail == "" {
			apiErr.Detail = http.StatusText(resp.StatusCode)
		}
	}
	return apiErr
}
