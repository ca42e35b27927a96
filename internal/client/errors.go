package client

import (
	"errors"
	"fmt"
)

// ConfigError reports that the client has no base URL to talk to. It is
// produced before any network activity.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	if e == nil || e.Message == "" {
		return "notes API base URL is not configured"
	}
	return e.Message
}

// RequestError wraps a transport-level failure (DNS, refused connection,
// timeout) together with the base URL that was being attempted.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx HTTP response. Body holds the decoded JSON payload
// when the server declared a JSON content type, otherwise the raw text.
type APIError struct {
	StatusCode int
	Status     string
	Body       any
}

func (e *APIError) Error() string {
	if msg := e.bodyMessage(); msg != "" {
		return fmt.Sprintf("api error (%d %s): %s", e.StatusCode, e.Status, msg)
	}
	return fmt.Sprintf("api error (%d %s)", e.StatusCode, e.Status)
}

func (e *APIError) bodyMessage() string {
	switch body := e.Body.(type) {
	case nil:
		return ""
	case string:
		return body
	case map[string]any:
		for _, key := range []string{"error", "message", "detail"} {
			if msg, ok := body[key].(string); ok && msg != "" {
				return msg
			}
		}
		return fmt.Sprintf("%v", body)
	default:
		return fmt.Sprintf("%v", body)
	}
}

// AsAPIError unwraps err to an *APIError, or nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
