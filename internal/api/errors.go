package api

import (
	"fmt"

	"github.com/destinykit/bungie-go/types"
)

// PlatformError is a non-success Platform envelope. Code, Status and
// Message are carried verbatim from the vendor response.
type PlatformError struct {
	Code            types.PlatformErrorCode
	Status          string
	Message         string
	ThrottleSeconds int32
	MessageData     map[string]string
}

func (e *PlatformError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("platform error %d (%s): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("platform error %d: %s", e.Code, e.Message)
}

// NetworkError is a failure before a valid envelope was obtained:
// connection errors, timeouts, non-JSON bodies, envelope decode
// failures.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("network error: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TokenError is a non-success response from the OAuth token endpoint.
type TokenError struct {
	StatusCode  int
	ErrorType   string
	Description string
}

func (e *TokenError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("oauth error %d: %s: %s", e.StatusCode, e.ErrorType, e.Description)
	}
	if e.ErrorType != "" {
		return fmt.Sprintf("oauth error %d: %s", e.StatusCode, e.ErrorType)
	}
	return fmt.Sprintf("oauth error %d", e.StatusCode)
}
