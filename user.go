package bungie

import (
	"context"
	"net/url"

	"github.com/destinykit/bungie-go/types"
)

// GetBungieNetUserByID loads a Bungie.net user by membership id.
func (c *Client) GetBungieNetUserByID(ctx context.Context, id int64, opts ...CallOption) (*types.GeneralUser, error) {
	path := "/User/GetBungieNetUserById/" + i64(id) + "/"
	return platformGet[*types.GeneralUser](ctx, c, "User.GetBungieNetUserById", path, nil, opts)
}

// GetSanitizedPlatformDisplayNames returns a user's credential display
// names, keyed by credential type, with anything sensitive removed.
func (c *Client) GetSanitizedPlatformDisplayNames(ctx context.Context, membershipID int64, opts ...CallOption) (map[types.BungieCredentialType]string, error) {
	path := "/User/GetSanitizedPlatformDisplayNames/" + i64(membershipID) + "/"
	return platformGet[map[types.BungieCredentialType]string](ctx, c, "User.GetSanitizedPlatformDisplayNames", path, nil, opts)
}

// GetCredentialTypesForTargetAccount lists the credential types
// attached to the given account. Requires an OAuth token.
func (c *Client) GetCredentialTypesForTargetAccount(ctx context.Context, membershipID int64, opts ...CallOption) ([]types.GetCredentialTypesForAccountResponse, error) {
	path := "/User/GetCredentialTypesForTargetAccount/" + i64(membershipID) + "/"
	return platformGet[[]types.GetCredentialTypesForAccountResponse](ctx, c, "User.GetCredentialTypesForTargetAccount", path, nil, opts)
}

// GetAvailableThemes lists the profile themes a user can pick from.
func (c *Client) GetAvailableThemes(ctx context.Context, opts ...CallOption) ([]types.UserTheme, error) {
	return platformGet[[]types.UserTheme](ctx, c, "User.GetAvailableThemes", "/User/GetAvailableThemes/", nil, opts)
}

// GetMembershipDataByID returns the memberships linked to the given
// membership id and type.
func (c *Client) GetMembershipDataByID(ctx context.Context, membershipID int64, membershipType types.BungieMembershipType, opts ...CallOption) (*types.UserMembershipData, error) {
	path := "/User/GetMembershipsById/" + i64(membershipID) + "/" + i32(membershipType) + "/"
	return platformGet[*types.UserMembershipData](ctx, c, "User.GetMembershipDataById", path, nil, opts)
}

// GetMembershipDataForCurrentUser returns the memberships of the user
// the OAuth token belongs to. Requires an OAuth token.
func (c *Client) GetMembershipDataForCurrentUser(ctx context.Context, opts ...CallOption) (*types.UserMembershipData, error) {
	return platformGet[*types.UserMembershipData](ctx, c, "User.GetMembershipDataForCurrentUser", "/User/GetMembershipsForCurrentUser/", nil, opts)
}

// GetMembershipFromHardLinkedCredential resolves a platform credential,
// such as a Steam id, to the hard-linked Destiny membership.
func (c *Client) GetMembershipFromHardLinkedCredential(ctx context.Context, crType types.BungieCredentialType, credential string, opts ...CallOption) (*types.HardLinkedUserMembership, error) {
	path := "/User/GetMembershipFromHardLinkedCredential/" + i32(crType) + "/" + url.PathEscape(credential) + "/"
	return platformGet[*types.HardLinkedUserMembership](ctx, c, "User.GetMembershipFromHardLinkedCredential", path, nil, opts)
}

// SearchByGlobalNamePost searches for users by global display name
// prefix. Pages are zero-based; check HasMore on the response.
func (c *Client) SearchByGlobalNamePost(ctx context.Context, page int32, request types.UserSearchPrefixRequest, opts ...CallOption) (*types.UserSearchResponse, error) {
	path := "/User/Search/GlobalName/" + i32(page) + "/"
	return platformPost[*types.UserSearchResponse](ctx, c, "User.SearchByGlobalNamePost", path, request, opts)
}

// SearchByGlobalNamePrefix searches for users whose global display
// name starts with the given prefix.
func (c *Client) SearchByGlobalNamePrefix(ctx context.Context, displayNamePrefix string, page int32, opts ...CallOption) (*types.UserSearchResponse, error) {
	path := "/User/Search/Prefix/" + url.PathEscape(displayNamePrefix) + "/" + i32(page) + "/"
	return platformGet[*types.UserSearchResponse](ctx, c, "User.SearchByGlobalNamePrefix", path, nil, opts)
}
