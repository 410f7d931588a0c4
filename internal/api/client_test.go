package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/destinykit/bungie-go/types"
)

func newTestTransport(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{APIKey: "KEY123", BaseURL: server.URL})
}

func TestPlatform_ReturnsRawPayload(t *testing.T) {
	client := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"Response": {"version": "7.0.0.1"}, "ErrorCode": 1, "ErrorStatus": "Success"}`))
	})

	raw, err := client.Platform(context.Background(), Request{
		Operation: "Destiny2.GetDestinyManifest",
		Method:    http.MethodGet,
		Path:      "/Destiny2/Manifest/",
	})
	if err != nil {
		t.Fatalf("Platform() error = %v", err)
	}

	var payload struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Version != "7.0.0.1" {
		t.Errorf("version = %q", payload.Version)
	}
}

func TestPlatform_EnvelopeError(t *testing.T) {
	client := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// The Platform reports errors inside the envelope, often with
		// HTTP 200.
		w.Write([]byte(`{"ErrorCode": 2101, "ThrottleSeconds": 0, "ErrorStatus": "ApiInvalidOrExpiredKey", "Message": "API Key is invalid.", "MessageData": {}}`))
	})

	_, err := client.Platform(context.Background(), Request{Method: http.MethodGet, Path: "/Settings/"})
	var perr *PlatformError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v (%T), want *PlatformError", err, err)
	}
	if perr.Code != types.ErrorCodeApiInvalidOrExpiredKey {
		t.Errorf("Code = %d, want 2101", perr.Code)
	}
	if perr.Message != "API Key is invalid." {
		t.Errorf("Message = %q", perr.Message)
	}
}

func TestPlatform_RejectsNonJSONContentType(t *testing.T) {
	client := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := client.Platform(context.Background(), Request{Method: http.MethodGet, Path: "/Settings/"})
	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("error = %v (%T), want *NetworkError", err, err)
	}
}

func TestPlatform_SendsHeadersAndQuery(t *testing.T) {
	var gotKey, gotUA, gotAuth, gotComponents string
	client := newTestTransportWithConfig(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		gotComponents = r.URL.Query().Get("components")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {}, "ErrorCode": 1}`))
	}, Config{APIKey: "KEY123", UserAgent: "test-agent/1", AuthToken: "client-token"})

	query := url.Values{}
	query.Set("components", "100,200")
	_, err := client.Platform(context.Background(), Request{Method: http.MethodGet, Path: "/x/", Query: query})
	if err != nil {
		t.Fatalf("Platform() error = %v", err)
	}

	if gotKey != "KEY123" {
		t.Errorf("X-API-Key = %q", gotKey)
	}
	if gotUA != "test-agent/1" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotAuth != "Bearer client-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotComponents != "100,200" {
		t.Errorf("components = %q", gotComponents)
	}
}

func newTestTransportWithConfig(t *testing.T, handler http.HandlerFunc, cfg Config) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg.BaseURL = server.URL
	return New(cfg)
}

func TestPlatform_PerCallTokenWins(t *testing.T) {
	var gotAuth string
	client := newTestTransportWithConfig(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {}, "ErrorCode": 1}`))
	}, Config{APIKey: "KEY123", AuthToken: "client-token"})

	_, err := client.Platform(context.Background(), Request{
		Method:    http.MethodGet,
		Path:      "/x/",
		AuthToken: "call-token",
	})
	if err != nil {
		t.Fatalf("Platform() error = %v", err)
	}
	if gotAuth != "Bearer call-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestToken_DecodesResponse(t *testing.T) {
	client := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "a", "token_type": "Bearer", "expires_in": 3600, "membership_id": "42"}`))
	})

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	token, err := client.Token(context.Background(), "/App/OAuth/Token/", form)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token.AccessToken != "a" || token.MembershipId != 42 {
		t.Errorf("token = %+v", token)
	}
}

func TestToken_ErrorResponse(t *testing.T) {
	client := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid_client", "error_description": "Client authentication failed."}`))
	})

	_, err := client.Token(context.Background(), "/App/OAuth/Token/", url.Values{})
	var terr *TokenError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v (%T), want *TokenError", err, err)
	}
	if terr.StatusCode != http.StatusUnauthorized || terr.ErrorType != "invalid_client" {
		t.Errorf("terr = %+v", terr)
	}
}

func TestPlatform_ContextCancellation(t *testing.T) {
	client := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {}, "ErrorCode": 1}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Platform(ctx, Request{Method: http.MethodGet, Path: "/x/"})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
}
