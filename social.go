package bungie

import (
	"context"

	"github.com/destinykit/bungie-go/types"
)

// Social endpoints all require an OAuth token with the BnetWrite scope
// (ReadUserData for the read-only ones).

// GetFriendList returns the current user's Bungie friend list.
func (c *Client) GetFriendList(ctx context.Context, opts ...CallOption) (*types.BungieFriendListResponse, error) {
	return platformGet[*types.BungieFriendListResponse](ctx, c, "Social.GetFriendList", "/Social/Friends/", nil, opts)
}

// GetFriendRequestList returns the current user's incoming and
// outgoing friend requests.
func (c *Client) GetFriendRequestList(ctx context.Context, opts ...CallOption) (*types.BungieFriendRequestListResponse, error) {
	return platformGet[*types.BungieFriendRequestListResponse](ctx, c, "Social.GetFriendRequestList", "/Social/Friends/Requests/", nil, opts)
}

// IssueFriendRequest sends a friend request to the given Bungie.net
// membership.
func (c *Client) IssueFriendRequest(ctx context.Context, membershipID int64, opts ...CallOption) (bool, error) {
	path := "/Social/Friends/Add/" + i64(membershipID) + "/"
	return platformPost[bool](ctx, c, "Social.IssueFriendRequest", path, nil, opts)
}

// AcceptFriendRequest accepts a pending incoming friend request.
func (c *Client) AcceptFriendRequest(ctx context.Context, membershipID int64, opts ...CallOption) (bool, error) {
	path := "/Social/Friends/Requests/Accept/" + i64(membershipID) + "/"
	return platformPost[bool](ctx, c, "Social.AcceptFriendRequest", path, nil, opts)
}

// DeclineFriendRequest declines a pending incoming friend request.
func (c *Client) DeclineFriendRequest(ctx context.Context, membershipID int64, opts ...CallOption) (bool, error) {
	path := "/Social/Friends/Requests/Decline/" + i64(membershipID) + "/"
	return platformPost[bool](ctx, c, "Social.DeclineFriendRequest", path, nil, opts)
}

// RemoveFriend removes the given membership from the current user's
// friend list.
func (c *Client) RemoveFriend(ctx context.Context, membershipID int64, opts ...CallOption) (bool, error) {
	path := "/Social/Friends/Remove/" + i64(membershipID) + "/"
	return platformPost[bool](ctx, c, "Social.RemoveFriend", path, nil, opts)
}

// RemoveFriendRequest withdraws a pending outgoing friend request.
func (c *Client) RemoveFriendRequest(ctx context.Context, membershipID int64, opts ...CallOption) (bool, error) {
	path := "/Social/Friends/Requests/Remove/" + i64(membershipID) + "/"
	return platformPost[bool](ctx, c, "Social.RemoveFriendRequest", path, nil, opts)
}

// GetPlatformFriendList pages through the current user's friends on
// the given external platform, with linked Bungie memberships where
// they exist.
func (c *Client) GetPlatformFriendList(ctx context.Context, friendPlatform types.PlatformFriendType, page int32, opts ...CallOption) (*types.PlatformFriendResponse, error) {
	path := "/Social/PlatformFriends/" + i32(friendPlatform) + "/" + i32(page) + "/"
	return platformGet[*types.PlatformFriendResponse](ctx, c, "Social.GetPlatformFriendList", path, nil, opts)
}
