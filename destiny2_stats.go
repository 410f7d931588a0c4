package bungie

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/destinykit/bungie-go/types"
)

const statsDayFormat = "2006-01-02"

// HistoricalStatsParams narrows GetHistoricalStats. Nil fields are left
// to the vendor defaults.
type HistoricalStatsParams struct {
	DayStart   *time.Time
	DayEnd     *time.Time
	Groups     []types.DestinyStatsGroupType
	Modes      []types.DestinyActivityModeType
	PeriodType types.PeriodType
}

func (p *HistoricalStatsParams) query() url.Values {
	if p == nil {
		return nil
	}
	query := url.Values{}
	if p.DayStart != nil {
		query.Set("daystart", p.DayStart.UTC().Format(statsDayFormat))
	}
	if p.DayEnd != nil {
		query.Set("dayend", p.DayEnd.UTC().Format(statsDayFormat))
	}
	if len(p.Groups) > 0 {
		query.Set("groups", statsGroupsCSV(p.Groups))
	}
	if len(p.Modes) > 0 {
		modes := make([]string, len(p.Modes))
		for i, m := range p.Modes {
			modes[i] = i32(m)
		}
		query.Set("modes", strings.Join(modes, ","))
	}
	if p.PeriodType != types.PeriodNone {
		query.Set("periodType", i32(p.PeriodType))
	}
	return query
}

func statsGroupsCSV(groups []types.DestinyStatsGroupType) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = i32(g)
	}
	return strings.Join(parts, ",")
}

// ActivityHistoryParams narrows GetActivityHistory.
type ActivityHistoryParams struct {
	Count *int32
	Mode  types.DestinyActivityModeType
	Page  *int32
}

func (p *ActivityHistoryParams) query() url.Values {
	if p == nil {
		return nil
	}
	query := url.Values{}
	if p.Count != nil {
		query.Set("count", i32(*p.Count))
	}
	if p.Mode != types.ActivityModeNone {
		query.Set("mode", i32(p.Mode))
	}
	if p.Page != nil {
		query.Set("page", i32(*p.Page))
	}
	return query
}

// GetPostGameCarnageReport returns the full carnage report for the
// given activity instance.
func (c *Client) GetPostGameCarnageReport(ctx context.Context, activityID int64, opts ...CallOption) (*types.DestinyPostGameCarnageReportData, error) {
	path := "/Destiny2/Stats/PostGameCarnageReport/" + i64(activityID) + "/"
	return platformGet[*types.DestinyPostGameCarnageReportData](ctx, c, "Destiny2.GetPostGameCarnageReport", path, nil, opts)
}

// ReportOffensivePostGameCarnageReportPlayer reports a player in the
// given activity for offensive behavior. The caller must have played
// in the activity. Requires an OAuth token.
func (c *Client) ReportOffensivePostGameCarnageReportPlayer(ctx context.Context, activityID int64, request types.DestinyReportOffensePgcrRequest, opts ...CallOption) (int32, error) {
	path := "/Destiny2/Stats/PostGameCarnageReport/" + i64(activityID) + "/Report/"
	return platformPost[int32](ctx, c, "Destiny2.ReportOffensivePostGameCarnageReportPlayer", path, request, opts)
}

// GetHistoricalStatsDefinition returns the definitions of all
// historical stats, keyed by stat id.
func (c *Client) GetHistoricalStatsDefinition(ctx context.Context, opts ...CallOption) (map[string]types.DestinyHistoricalStatsDefinition, error) {
	return platformGet[map[string]types.DestinyHistoricalStatsDefinition](ctx, c, "Destiny2.GetHistoricalStatsDefinition", "/Destiny2/Stats/Definition/", nil, opts)
}

// GetHistoricalStats returns historical stats for the given character,
// keyed by stat group name. Pass characterID 0 for account-wide stats.
func (c *Client) GetHistoricalStats(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID, characterID int64, params *HistoricalStatsParams, opts ...CallOption) (map[string]types.DestinyHistoricalStatsByPeriod, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Account/" + i64(destinyMembershipID) + "/Character/" + i64(characterID) + "/Stats/"
	return platformGet[map[string]types.DestinyHistoricalStatsByPeriod](ctx, c, "Destiny2.GetHistoricalStats", path, params.query(), opts)
}

// GetHistoricalStatsForAccount aggregates historical stats across all
// characters of the account, including deleted ones.
func (c *Client) GetHistoricalStatsForAccount(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID int64, groups []types.DestinyStatsGroupType, opts ...CallOption) (*types.DestinyHistoricalStatsAccountResult, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Account/" + i64(destinyMembershipID) + "/Stats/"
	var query url.Values
	if len(groups) > 0 {
		query = url.Values{}
		query.Set("groups", statsGroupsCSV(groups))
	}
	return platformGet[*types.DestinyHistoricalStatsAccountResult](ctx, c, "Destiny2.GetHistoricalStatsForAccount", path, query, opts)
}

// GetActivityHistory pages through a character's activity history,
// most recent first.
func (c *Client) GetActivityHistory(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID, characterID int64, params *ActivityHistoryParams, opts ...CallOption) (*types.DestinyActivityHistoryResults, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Account/" + i64(destinyMembershipID) + "/Character/" + i64(characterID) + "/Stats/Activities/"
	return platformGet[*types.DestinyActivityHistoryResults](ctx, c, "Destiny2.GetActivityHistory", path, params.query(), opts)
}

// GetUniqueWeaponHistory returns per-weapon kill stats for the given
// character.
func (c *Client) GetUniqueWeaponHistory(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID, characterID int64, opts ...CallOption) (*types.DestinyHistoricalWeaponStatsData, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Account/" + i64(destinyMembershipID) + "/Character/" + i64(characterID) + "/Stats/UniqueWeapons/"
	return platformGet[*types.DestinyHistoricalWeaponStatsData](ctx, c, "Destiny2.GetUniqueWeaponHistory", path, nil, opts)
}

// GetDestinyAggregateActivityStats returns all-time stats for each
// activity the character has played.
func (c *Client) GetDestinyAggregateActivityStats(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID, characterID int64, opts ...CallOption) (*types.DestinyAggregateActivityResults, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Account/" + i64(destinyMembershipID) + "/Character/" + i64(characterID) + "/Stats/AggregateActivityStats/"
	return platformGet[*types.DestinyAggregateActivityResults](ctx, c, "Destiny2.GetDestinyAggregateActivityStats", path, nil, opts)
}
