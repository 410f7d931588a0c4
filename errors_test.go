package bungie

import (
	"errors"
	"strings"
	"testing"

	"github.com/destinykit/bungie-go/internal/api"
	"github.com/destinykit/bungie-go/types"
)

func TestPlatformError_SentinelMapping(t *testing.T) {
	tests := []struct {
		code types.PlatformErrorCode
		want error
	}{
		{types.ErrorCodeSystemDisabled, ErrSystemDisabled},
		{types.ErrorCodeAuthenticationInvalid, ErrUnauthorized},
		{types.ErrorCodeWebAuthRequired, ErrUnauthorized},
		{types.ErrorCodeApiInvalidOrExpiredKey, ErrUnauthorized},
		{types.ErrorCodeApiKeyMissingFromRequest, ErrUnauthorized},
		{types.ErrorCodeThrottleLimitExceeded, ErrThrottled},
		{types.ErrorCodeThrottleLimitExceededMinutes, ErrThrottled},
		{types.ErrorCodeThrottleLimitExceededMomentarily, ErrThrottled},
		{types.ErrorCodeThrottleLimitExceededSeconds, ErrThrottled},
		{types.ErrorCodeDataNotFound, ErrNotFound},
		{types.ErrorCodeNotFound, ErrNotFound},
		{types.ErrorCodeDestinyAccountNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		err := &PlatformError{Code: tt.code}
		if !errors.Is(err, tt.want) {
			t.Errorf("code %d: errors.Is(%v) = false", tt.code, tt.want)
		}
	}

	// An unmapped code matches no sentinel.
	err := &PlatformError{Code: types.ErrorCodeUnhandledException}
	for _, sentinel := range []error{ErrSystemDisabled, ErrUnauthorized, ErrThrottled, ErrNotFound} {
		if errors.Is(err, sentinel) {
			t.Errorf("code 3 unexpectedly matches %v", sentinel)
		}
	}
}

func TestPlatformError_Message(t *testing.T) {
	err := &PlatformError{Code: 2101, Status: "ApiInvalidOrExpiredKey", Message: "API Key is invalid."}
	want := "platform error 2101 (ApiInvalidOrExpiredKey): API Key is invalid."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestConfigError_IsInvalidConfig(t *testing.T) {
	err := &ConfigError{Message: "timeout must not be negative"}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(ErrInvalidConfig) = false")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{URL: "/Destiny2/Manifest/", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(cause) = false")
	}
}

func TestWrapError_Translations(t *testing.T) {
	perr := wrapError(&api.PlatformError{Code: 5, Status: "SystemDisabled", Message: "down"})
	var gotPlatform *PlatformError
	if !errors.As(perr, &gotPlatform) {
		t.Fatalf("wrapError(api.PlatformError) = %T", perr)
	}
	if gotPlatform.Code != 5 || gotPlatform.Status != "SystemDisabled" {
		t.Errorf("translated = %+v", gotPlatform)
	}

	nerr := wrapError(&api.NetworkError{Err: errors.New("timeout"), URL: "/Settings/"})
	var gotTransport *TransportError
	if !errors.As(nerr, &gotTransport) {
		t.Fatalf("wrapError(api.NetworkError) = %T", nerr)
	}
	if gotTransport.URL != "/Settings/" {
		t.Errorf("URL = %q", gotTransport.URL)
	}

	terr := wrapError(&api.TokenError{StatusCode: 400, ErrorType: "invalid_grant"})
	var gotOAuth *OAuthError
	if !errors.As(terr, &gotOAuth) {
		t.Fatalf("wrapError(api.TokenError) = %T", terr)
	}
	if gotOAuth.ErrorType != "invalid_grant" {
		t.Errorf("ErrorType = %q", gotOAuth.ErrorType)
	}

	if wrapError(nil) != nil {
		t.Error("wrapError(nil) != nil")
	}
}

func TestBungieErrorMarker(t *testing.T) {
	var _ BungieError = (*ConfigError)(nil)
	var _ BungieError = (*TransportError)(nil)
	var _ BungieError = (*PlatformError)(nil)
	var _ BungieError = (*OAuthError)(nil)
}
