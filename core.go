package bungie

import (
	"context"
	"net/url"
	"strconv"

	"github.com/destinykit/bungie-go/types"
)

// GetAvailableLocales lists the localization cultures the Platform
// supports, keyed by culture code.
func (c *Client) GetAvailableLocales(ctx context.Context, opts ...CallOption) (map[string]string, error) {
	return platformGet[map[string]string](ctx, c, "GetAvailableLocales", "/GetAvailableLocales/", nil, opts)
}

// GetCommonSettings returns the common settings used by the Bungie.net
// environment, including feature switches and Destiny 2 content hashes.
func (c *Client) GetCommonSettings(ctx context.Context, opts ...CallOption) (*types.CoreSettingsConfiguration, error) {
	return platformGet[*types.CoreSettingsConfiguration](ctx, c, "GetCommonSettings", "/Settings/", nil, opts)
}

// GetUserSystemOverrides returns the portion of common settings that
// can be overridden per user.
func (c *Client) GetUserSystemOverrides(ctx context.Context, opts ...CallOption) (map[string]types.CoreSystem, error) {
	return platformGet[map[string]types.CoreSystem](ctx, c, "GetUserSystemOverrides", "/UserSystemOverrides/", nil, opts)
}

// GetGlobalAlerts returns any active global alert for the site.
// includeStreaming also returns alerts for community streaming events.
func (c *Client) GetGlobalAlerts(ctx context.Context, includeStreaming bool, opts ...CallOption) ([]types.GlobalAlert, error) {
	query := url.Values{}
	if includeStreaming {
		query.Set("includestreaming", strconv.FormatBool(includeStreaming))
	}
	return platformGet[[]types.GlobalAlert](ctx, c, "GetGlobalAlerts", "/GlobalAlerts/", query, opts)
}
