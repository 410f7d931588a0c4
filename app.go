package bungie

import (
	"context"
	"net/url"
	"time"

	"github.com/destinykit/bungie-go/types"
)

// ApiUsageParams narrows GetApplicationAPIUsage to a time range. The
// vendor limits the range to 48 hours and defaults to the last 24.
type ApiUsageParams struct {
	Start *time.Time
	End   *time.Time
}

func (p *ApiUsageParams) query() url.Values {
	if p == nil {
		return nil
	}
	query := url.Values{}
	if p.Start != nil {
		query.Set("start", p.Start.UTC().Format(time.RFC3339))
	}
	if p.End != nil {
		query.Set("end", p.End.UTC().Format(time.RFC3339))
	}
	return query
}

// GetApplicationAPIUsage returns API usage per application for
// applications owned by the current user. Requires an OAuth token with
// the ReadUserData scope.
func (c *Client) GetApplicationAPIUsage(ctx context.Context, applicationID int32, params *ApiUsageParams, opts ...CallOption) (*types.ApiUsage, error) {
	path := "/App/ApiUsage/" + i32(applicationID) + "/"
	return platformGet[*types.ApiUsage](ctx, c, "App.GetApplicationApiUsage", path, params.query(), opts)
}

// GetBungieApplications lists applications created by Bungie.
func (c *Client) GetBungieApplications(ctx context.Context, opts ...CallOption) ([]types.Application, error) {
	return platformGet[[]types.Application](ctx, c, "App.GetBungieApplications", "/App/FirstParty/", nil, opts)
}
