package bungie

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/destinykit/bungie-go/types"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("New() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	_, err := New("KEY123", WithBaseURL("not a url"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("New() error type = %T, want *ConfigError", err)
	}
}

func TestNew_RejectsNegativeRetryCount(t *testing.T) {
	_, err := New("KEY123", WithRetryCount(-1))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestNew_NoNetworkIO(t *testing.T) {
	// A base URL that nothing listens on must not matter at build time.
	client, err := New("KEY123", WithBaseURL("http://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL() != "http://127.0.0.1:1" {
		t.Errorf("BaseURL() = %q", client.BaseURL())
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("KEY123", append([]Option{WithBaseURL(server.URL)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestGetDestinyManifest(t *testing.T) {
	var gotPath, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {"version": "7.0.0.1"}, "ErrorCode": 1}`))
	})

	manifest, err := client.GetDestinyManifest(context.Background())
	if err != nil {
		t.Fatalf("GetDestinyManifest() error = %v", err)
	}
	if manifest.Version != "7.0.0.1" {
		t.Errorf("Version = %q, want %q", manifest.Version, "7.0.0.1")
	}
	if gotPath != "/Destiny2/Manifest/" {
		t.Errorf("path = %q, want /Destiny2/Manifest/", gotPath)
	}
	if gotKey != "KEY123" {
		t.Errorf("X-API-Key = %q, want KEY123", gotKey)
	}
}

func TestGetProfile_PathAndComponents(t *testing.T) {
	var gotPath, gotComponents string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotComponents = r.URL.Query().Get("components")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {"profile": {"data": {"userInfo": {"membershipId": "4611686018467238913"}}}}, "ErrorCode": 1}`))
	})

	profile, err := client.GetProfile(context.Background(),
		types.MembershipTypeTigerSteam, 4611686018467238913,
		[]types.DestinyComponentType{types.ComponentProfiles, types.ComponentCharacters})
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}

	wantPath := "/Destiny2/3/Profile/4611686018467238913/"
	if gotPath != wantPath {
		t.Errorf("path = %q, want %q", gotPath, wantPath)
	}
	if gotComponents != "100,200" {
		t.Errorf("components = %q, want 100,200", gotComponents)
	}
	if profile.Profile == nil || profile.Profile.Data == nil {
		t.Fatal("profile component missing")
	}
	if got := profile.Profile.Data.UserInfo.MembershipId; got != 4611686018467238913 {
		t.Errorf("MembershipId = %d", got)
	}
}

func TestTransferItem_PostBody(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": 0, "ErrorCode": 1}`))
	})

	_, err := client.TransferItem(context.Background(), types.DestinyItemTransferRequest{
		ItemReferenceHash: 691752909,
		StackSize:         1,
		TransferToVault:   true,
		ItemId:            6917529042839773,
		CharacterId:       2305843009261519028,
		MembershipType:    types.MembershipTypeTigerSteam,
	})
	if err != nil {
		t.Fatalf("TransferItem() error = %v", err)
	}

	// int64 ids cross the wire as strings
	if got := gotBody["itemId"]; got != "6917529042839773" {
		t.Errorf("itemId = %v (%T), want string", got, got)
	}
	if got := gotBody["characterId"]; got != "2305843009261519028" {
		t.Errorf("characterId = %v (%T), want string", got, got)
	}
	if got := gotBody["transferToVault"]; got != true {
		t.Errorf("transferToVault = %v", got)
	}
}

func TestPlatformError_Surfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ErrorCode": 5, "ThrottleSeconds": 0, "ErrorStatus": "SystemDisabled", "Message": "This system is temporarily disabled for maintenance.", "MessageData": {}}`))
	})

	_, err := client.GetDestinyManifest(context.Background())
	if err == nil {
		t.Fatal("GetDestinyManifest() expected error")
	}

	var perr *PlatformError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *PlatformError", err)
	}
	if perr.Code != types.ErrorCodeSystemDisabled {
		t.Errorf("Code = %d, want 5", perr.Code)
	}
	if perr.Status != "SystemDisabled" {
		t.Errorf("Status = %q", perr.Status)
	}
	if !errors.Is(err, ErrSystemDisabled) {
		t.Errorf("errors.Is(err, ErrSystemDisabled) = false")
	}
}

func TestNonJSONResponse_IsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("<html>down for maintenance</html>"))
	})

	_, err := client.GetDestinyManifest(context.Background())
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v (%T), want *TransportError", err, err)
	}
}

func TestAuthorization_PerCallOverride(t *testing.T) {
	var gotAuth []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {"bungieNetUser": {}}, "ErrorCode": 1}`))
	}, WithAccessToken("client-wide"))

	ctx := context.Background()
	if _, err := client.GetMembershipDataForCurrentUser(ctx); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	if _, err := client.GetMembershipDataForCurrentUser(ctx, WithRequestToken("per-call")); err != nil {
		t.Fatalf("second call error = %v", err)
	}

	if gotAuth[0] != "Bearer client-wide" {
		t.Errorf("first Authorization = %q", gotAuth[0])
	}
	if gotAuth[1] != "Bearer per-call" {
		t.Errorf("second Authorization = %q", gotAuth[1])
	}
}

func TestWithRateLimit_AdmitsSequentialCalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": {}, "ErrorCode": 1}`))
	}, WithRateLimit(100, 1), WithTimeout(5*time.Second))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.GetAvailableLocales(ctx); err != nil {
			t.Fatalf("call %d error = %v", i, err)
		}
	}
}

func TestGetGlobalAlerts_Query(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("includestreaming")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": [{"AlertKey": "alert-1", "AlertLevel": 2}], "ErrorCode": 1}`))
	})

	alerts, err := client.GetGlobalAlerts(context.Background(), true)
	if err != nil {
		t.Fatalf("GetGlobalAlerts() error = %v", err)
	}
	if gotQuery != "true" {
		t.Errorf("includestreaming = %q", gotQuery)
	}
	if len(alerts) != 1 || alerts[0].AlertKey != "alert-1" {
		t.Errorf("alerts = %+v", alerts)
	}
}
