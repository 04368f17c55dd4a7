package groq

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-200 response from the Groq API
type APIError struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	RawBody    json.RawMessage `json:"raw_body,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("groq API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("groq API error %d", e.StatusCode)
}

// NetworkError is a transport-level failure that survived the retry budget
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("groq network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}
