// Package bungie is a typed Go client for the Bungie.net Platform API,
// covering the Destiny 2, User, App and Social endpoint groups plus the
// OAuth token flow.
//
// A client needs only an API key from https://www.bungie.net/en/Application:
//
//	client, err := bungie.New(os.Getenv("BUNGIE_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manifest, err := client.GetDestinyManifest(ctx)
//
// Endpoints that act on a player's account require an OAuth access
// token, supplied either client-wide with bungie.WithAccessToken or
// per call with bungie.WithRequestToken.
//
// Every operation returns an error that satisfies errors.Is against
// the package sentinels: a *ConfigError before any request is made, a
// *TransportError when no valid Platform envelope was obtained, and a
// *PlatformError carrying the vendor's error code, status and message
// when the envelope reports anything but success.
package bungie
