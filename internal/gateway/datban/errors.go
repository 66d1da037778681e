package datban

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBackend indicates a failed call against the booking platform API.
var ErrBackend = errors.New("[datban] error when trying to get response from booking api")

// RequestError is the single error type callers see for failed requests.
// StatusCode is the HTTP status of the response, or 0 when no response was
// obtained at all; Message is the server-provided message or the HTTP status
// text. Raw transport errors never escape the gateway.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestError) Error() string {
	parts := []string{ErrBackend.Error()}
	parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	if msg := strings.TrimSpace(e.Message); msg != "" {
		parts = append(parts, fmt.Sprintf("message=%q", msg))
	}
	method := strings.TrimSpace(e.Method)
	url := strings.TrimSpace(e.URL)
	if method != "" || url != "" {
		parts = append(parts, strings.TrimSpace(method+" "+url))
	}
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}
	return strings.Join(parts, "; ")
}

func (e *RequestError) Unwrap() error {
	return ErrBackend
}

// IsUnreachable reports whether err is a transport-level failure, meaning no
// HTTP response was obtained from the backend.
func IsUnreachable(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == 0
}
