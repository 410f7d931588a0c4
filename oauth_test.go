package bungie

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizationURL(t *testing.T) {
	client, err := New("KEY123", WithOAuthClientID("12345"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	raw, err := client.AuthorizationURL("en", "state-abc")
	if err != nil {
		t.Fatalf("AuthorizationURL() error = %v", err)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q) error = %v", raw, err)
	}
	if !strings.HasPrefix(raw, "https://www.bungie.net/en/OAuth/Authorize/") {
		t.Errorf("url = %q", raw)
	}
	q := parsed.Query()
	if q.Get("client_id") != "12345" {
		t.Errorf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q", q.Get("response_type"))
	}
	if q.Get("state") != "state-abc" {
		t.Errorf("state = %q", q.Get("state"))
	}
}

func TestAuthorizationURL_RequiresClientID(t *testing.T) {
	client, err := New("KEY123")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.AuthorizationURL("en", ""); !errors.Is(err, ErrMissingOAuthClientID) {
		t.Errorf("error = %v, want ErrMissingOAuthClientID", err)
	}
}

func TestRequestAccessToken(t *testing.T) {
	var gotForm url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/App/OAuth/Token/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "access-1",
			"token_type": "Bearer",
			"expires_in": 3600,
			"refresh_token": "refresh-1",
			"refresh_expires_in": 7776000,
			"membership_id": "12345678"
		}`))
	}, WithOAuthClientID("12345"), WithOAuthClientSecret("hush"))

	token, err := client.RequestAccessToken(context.Background(), "code-xyz")
	if err != nil {
		t.Fatalf("RequestAccessToken() error = %v", err)
	}

	if gotForm.Get("grant_type") != "authorization_code" {
		t.Errorf("grant_type = %q", gotForm.Get("grant_type"))
	}
	if gotForm.Get("code") != "code-xyz" {
		t.Errorf("code = %q", gotForm.Get("code"))
	}
	if gotForm.Get("client_secret") != "hush" {
		t.Errorf("client_secret = %q", gotForm.Get("client_secret"))
	}

	if token.AccessToken != "access-1" {
		t.Errorf("AccessToken = %q", token.AccessToken)
	}
	if token.MembershipId != 12345678 {
		t.Errorf("MembershipId = %d", token.MembershipId)
	}
	if token.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d", token.ExpiresIn)
	}
}

func TestRequestAccessToken_RequiresClientID(t *testing.T) {
	client, err := New("KEY123")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.RequestAccessToken(context.Background(), "code"); !errors.Is(err, ErrMissingOAuthClientID) {
		t.Errorf("error = %v, want ErrMissingOAuthClientID", err)
	}
}

func TestRefreshAccessToken_RequiresSecret(t *testing.T) {
	client, err := New("KEY123", WithOAuthClientID("12345"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.RefreshAccessToken(context.Background(), "refresh"); !errors.Is(err, ErrMissingOAuthClientSecret) {
		t.Errorf("error = %v, want ErrMissingOAuthClientSecret", err)
	}
}

func TestRefreshAccessToken_OAuthError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Refresh token expired."}`))
	}, WithOAuthClientID("12345"), WithOAuthClientSecret("hush"))

	_, err := client.RefreshAccessToken(context.Background(), "stale")
	var oerr *OAuthError
	if !errors.As(err, &oerr) {
		t.Fatalf("error = %v (%T), want *OAuthError", err, err)
	}
	if oerr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", oerr.StatusCode)
	}
	if oerr.ErrorType != "invalid_grant" {
		t.Errorf("ErrorType = %q", oerr.ErrorType)
	}
}
