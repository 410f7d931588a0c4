package bungie

import (
	"errors"
	"fmt"

	"github.com/destinykit/bungie-go/internal/api"
	"github.com/destinykit/bungie-go/types"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidConfig is returned when client options fail validation.
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrMissingOAuthClientID is returned by OAuth operations when no
	// client ID is configured.
	ErrMissingOAuthClientID = errors.New("OAuth client ID is required")

	// ErrMissingOAuthClientSecret is returned by token refresh when no
	// client secret is configured.
	ErrMissingOAuthClientSecret = errors.New("OAuth client secret is required")

	// ErrUnauthorized is returned when the API key is invalid or the
	// call requires authentication the caller did not provide.
	ErrUnauthorized = errors.New("invalid API key or missing authorization")

	// ErrThrottled is returned when the vendor throttled the request.
	ErrThrottled = errors.New("request throttled")

	// ErrSystemDisabled is returned while the vendor API is offline for
	// maintenance.
	ErrSystemDisabled = errors.New("API is temporarily disabled")

	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")
)

// BungieError is implemented by all errors this package returns.
type BungieError interface {
	error
	BungieError() // marker method
}

// ConfigError reports invalid client setup. It is detected before any
// network call is made.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		if e.Message != "" {
			return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Err)
		}
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// BungieError implements the BungieError interface.
func (e *ConfigError) BungieError() {}

// TransportError reports a failure before a valid response envelope
// was obtained: connection errors, timeouts, non-JSON bodies, or a
// payload that failed to decode.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("transport error: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// BungieError implements the BungieError interface.
func (e *TransportError) BungieError() {}

// PlatformError reports a response envelope whose ErrorCode was not
// Success. Code, Status and Message carry the vendor's values
// verbatim.
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

// Is implements errors.Is for sentinel error matching.
func (e *PlatformError) Is(target error) bool {
	switch e.Code {
	case types.ErrorCodeSystemDisabled:
		return target == ErrSystemDisabled
	case types.ErrorCodeAuthenticationInvalid,
		types.ErrorCodeWebAuthRequired,
		types.ErrorCodeApiInvalidOrExpiredKey,
		types.ErrorCodeApiKeyMissingFromRequest:
		return target == ErrUnauthorized
	case types.ErrorCodeThrottleLimitExceeded,
		types.ErrorCodeThrottleLimitExceededMinutes,
		types.ErrorCodeThrottleLimitExceededMomentarily,
		types.ErrorCodeThrottleLimitExceededSeconds:
		return target == ErrThrottled
	case types.ErrorCodeDataNotFound,
		types.ErrorCodeNotFound,
		types.ErrorCodeDestinyAccountNotFound:
		return target == ErrNotFound
	}
	return false
}

// BungieError implements the BungieError interface.
func (e *PlatformError) BungieError() {}

// OAuthError reports a non-success response from the OAuth token
// endpoint, which speaks plain OAuth JSON rather than the Platform
// envelope.
type OAuthError struct {
	StatusCode  int
	ErrorType   string
	Description string
}

func (e *OAuthError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("oauth error %d: %s: %s", e.StatusCode, e.ErrorType, e.Description)
	}
	if e.ErrorType != "" {
		return fmt.Sprintf("oauth error %d: %s", e.StatusCode, e.ErrorType)
	}
	return fmt.Sprintf("oauth error %d", e.StatusCode)
}

// BungieError implements the BungieError interface.
func (e *OAuthError) BungieError() {}

// wrapError converts internal transport errors to public errors so
// that errors.Is() checks work with the public sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var perr *api.PlatformError
	if errors.As(err, &perr) {
		return &PlatformError{
			Code:            perr.Code,
			Status:          perr.Status,
			Message:         perr.Message,
			ThrottleSeconds: perr.ThrottleSeconds,
			MessageData:     perr.MessageData,
		}
	}

	var nerr *api.NetworkError
	if errors.As(err, &nerr) {
		return &TransportError{
			URL: nerr.URL,
			Err: nerr.Err,
		}
	}

	var terr *api.TokenError
	if errors.As(err, &terr) {
		return &OAuthError{
			StatusCode:  terr.StatusCode,
			ErrorType:   terr.ErrorType,
			Description: terr.Description,
		}
	}

	return err
}
