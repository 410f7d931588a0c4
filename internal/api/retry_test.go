package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
)

func respWithStatus(code int) *resty.Response {
	return &resty.Response{RawResponse: &http.Response{StatusCode: code}}
}

func TestDefaultRetryPolicy(t *testing.T) {
	tests := []struct {
		name string
		resp *resty.Response
		err  error
		want bool
	}{
		{"connection error", nil, errors.New("connection refused"), true},
		{"context canceled", nil, context.Canceled, false},
		{"deadline exceeded", nil, context.DeadlineExceeded, false},
		{"dns failure", nil, &net.DNSError{Err: "no such host", Name: "www.bungie.net"}, false},
		{"nil response no error", nil, nil, false},
		{"throttled", respWithStatus(http.StatusTooManyRequests), nil, true},
		{"server error", respWithStatus(http.StatusBadGateway), nil, true},
		{"ok", respWithStatus(http.StatusOK), nil, false},
		{"client error", respWithStatus(http.StatusNotFound), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRetryPolicy(tt.resp, tt.err); got != tt.want {
				t.Errorf("DefaultRetryPolicy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	client := newTestTransportWithConfig(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {}, "ErrorCode": 1}`))
	}, Config{APIKey: "KEY123", RetryCount: 3})

	_, err := client.Platform(context.Background(), Request{Method: http.MethodGet, Path: "/x/"})
	if err != nil {
		t.Fatalf("Platform() error = %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestClient_NoRetriesByDefault(t *testing.T) {
	attempts := 0
	client := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Platform(context.Background(), Request{Method: http.MethodGet, Path: "/x/"})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want exactly 1", attempts)
	}
}
