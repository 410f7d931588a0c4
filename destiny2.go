package bungie

import (
	"context"
	"net/url"
	"strconv"

	"github.com/destinykit/bungie-go/types"
)

// GetDestinyManifest returns the current version of the Destiny 2
// content manifest and the paths of its downloadable databases.
func (c *Client) GetDestinyManifest(ctx context.Context, opts ...CallOption) (*types.DestinyManifest, error) {
	return platformGet[*types.DestinyManifest](ctx, c, "Destiny2.GetDestinyManifest", "/Destiny2/Manifest/", nil, opts)
}

// GetDestinyEntityDefinition returns the static definition of an
// entity of the given type, e.g. "DestinyInventoryItemDefinition".
// Intended for one-off lookups; bulk consumers should download the
// manifest databases instead.
func (c *Client) GetDestinyEntityDefinition(ctx context.Context, entityType string, hashIdentifier uint32, opts ...CallOption) (*types.DestinyDefinition, error) {
	path := "/Destiny2/Manifest/" + url.PathEscape(entityType) + "/" + u32(hashIdentifier) + "/"
	return platformGet[*types.DestinyDefinition](ctx, c, "Destiny2.GetDestinyEntityDefinition", path, nil, opts)
}

// SearchDestinyEntities performs a page-based full-text search against
// entities of the given type.
func (c *Client) SearchDestinyEntities(ctx context.Context, entityType, searchTerm string, page int32, opts ...CallOption) (*types.DestinyEntitySearchResult, error) {
	path := "/Destiny2/Armory/Search/" + url.PathEscape(entityType) + "/" + url.PathEscape(searchTerm) + "/"
	query := url.Values{}
	query.Set("page", i32(page))
	return platformGet[*types.DestinyEntitySearchResult](ctx, c, "Destiny2.SearchDestinyEntities", path, query, opts)
}

// SearchDestinyPlayerByBungieName looks up Destiny memberships by
// exact global display name and code. Pass types.MembershipTypeAll to
// search across platforms.
func (c *Client) SearchDestinyPlayerByBungieName(ctx context.Context, membershipType types.BungieMembershipType, request types.ExactSearchRequest, opts ...CallOption) ([]types.UserInfoCard, error) {
	path := "/Destiny2/SearchDestinyPlayerByBungieName/" + i32(membershipType) + "/"
	return platformPost[[]types.UserInfoCard](ctx, c, "Destiny2.SearchDestinyPlayerByBungieName", path, request, opts)
}

// GetLinkedProfiles returns the Destiny profiles linked to the given
// membership, including profiles blocked by cross save.
func (c *Client) GetLinkedProfiles(ctx context.Context, membershipType types.BungieMembershipType, membershipID int64, getAllMemberships bool, opts ...CallOption) (*types.DestinyLinkedProfilesResponse, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Profile/" + i64(membershipID) + "/LinkedProfiles/"
	query := url.Values{}
	if getAllMemberships {
		query.Set("getAllMemberships", strconv.FormatBool(getAllMemberships))
	}
	return platformGet[*types.DestinyLinkedProfilesResponse](ctx, c, "Destiny2.GetLinkedProfiles", path, query, opts)
}

// GetProfile returns profile information for the given Destiny
// membership. The components select which sections of the response are
// populated; everything else stays nil.
func (c *Client) GetProfile(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID int64, components []types.DestinyComponentType, opts ...CallOption) (*types.DestinyProfileResponse, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Profile/" + i64(destinyMembershipID) + "/"
	query := url.Values{}
	query.Set("components", componentsCSV(components))
	return platformGet[*types.DestinyProfileResponse](ctx, c, "Destiny2.GetProfile", path, query, opts)
}

// GetCharacter returns character information for the given character
// on the given Destiny membership.
func (c *Client) GetCharacter(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID, characterID int64, components []types.DestinyComponentType, opts ...CallOption) (*types.DestinyCharacterResponse, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Profile/" + i64(destinyMembershipID) + "/Character/" + i64(characterID) + "/"
	query := url.Values{}
	query.Set("components", componentsCSV(components))
	return platformGet[*types.DestinyCharacterResponse](ctx, c, "Destiny2.GetCharacter", path, query, opts)
}

// GetItem returns details for a specific instanced item on the given
// Destiny membership.
func (c *Client) GetItem(ctx context.Context, membershipType types.BungieMembershipType, destinyMembershipID, itemInstanceID int64, components []types.DestinyComponentType, opts ...CallOption) (*types.DestinyItemResponse, error) {
	path := "/Destiny2/" + i32(membershipType) + "/Profile/" + i64(destinyMembershipID) + "/Item/" + i64(itemInstanceID) + "/"
	query := url.Values{}
	query.Set("components", componentsCSV(components))
	return platformGet[*types.DestinyItemResponse](ctx, c, "Destiny2.GetItem", path, query, opts)
}

// GetPublicMilestones returns the currently active public milestones,
// keyed by milestone hash.
func (c *Client) GetPublicMilestones(ctx context.Context, opts ...CallOption) (map[uint32]types.DestinyPublicMilestone, error) {
	return platformGet[map[uint32]types.DestinyPublicMilestone](ctx, c, "Destiny2.GetPublicMilestones", "/Destiny2/Milestones/", nil, opts)
}

// GetPublicMilestoneContent returns custom localized content for the
// given milestone, if any.
func (c *Client) GetPublicMilestoneContent(ctx context.Context, milestoneHash uint32, opts ...CallOption) (*types.DestinyMilestoneContent, error) {
	path := "/Destiny2/Milestones/" + u32(milestoneHash) + "/Content/"
	return platformGet[*types.DestinyMilestoneContent](ctx, c, "Destiny2.GetPublicMilestoneContent", path, nil, opts)
}
