//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	bungie "github.com/destinykit/bungie-go"
	"github.com/destinykit/bungie-go/types"
	"github.com/joho/godotenv"
)

var apiKey string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("BUNGIE_API_KEY")
	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: BUNGIE_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *bungie.Client {
	t.Helper()

	client, err := bungie.New(apiKey,
		bungie.WithTimeout(30*time.Second),
		bungie.WithRateLimit(20, 1),
	)
	if err != nil {
		t.Fatalf("bungie.New() error = %v", err)
	}
	return client
}

func TestGetDestinyManifest(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	manifest, err := client.GetDestinyManifest(ctx)
	if err != nil {
		t.Fatalf("GetDestinyManifest() error = %v", err)
	}
	if manifest.Version == "" {
		t.Error("manifest version is empty")
	}
	if len(manifest.JsonWorldComponentContentPaths) == 0 {
		t.Error("no world component content paths")
	}
}

func TestGetCommonSettings(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	settings, err := client.GetCommonSettings(ctx)
	if err != nil {
		t.Fatalf("GetCommonSettings() error = %v", err)
	}
	if len(settings.Systems) == 0 {
		t.Error("no systems in common settings")
	}
}

func TestSearchDestinyPlayerByBungieName(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cards, err := client.SearchDestinyPlayerByBungieName(ctx, types.MembershipTypeAll,
		types.ExactSearchRequest{DisplayName: "Datto", DisplayNameCode: 557})
	if err != nil {
		t.Fatalf("SearchDestinyPlayerByBungieName() error = %v", err)
	}
	for _, card := range cards {
		if card.MembershipId == 0 {
			t.Error("membership card with zero id")
		}
	}
}
