package bungie

import (
	"context"
	"net/url"

	"github.com/destinykit/bungie-go/types"
)

// Item action endpoints. All of them require an OAuth token with the
// MoveEquipDestinyItems scope, and most are rejected while the account
// is in a Destiny activity.

// TransferItem moves an item between a character and the vault, or
// between the vault and a character. Non-instanced items move by hash
// and stack size.
func (c *Client) TransferItem(ctx context.Context, request types.DestinyItemTransferRequest, opts ...CallOption) (int32, error) {
	return platformPost[int32](ctx, c, "Destiny2.TransferItem", "/Destiny2/Actions/Items/TransferItem/", request, opts)
}

// PullFromPostmaster extracts an item from a character's postmaster.
func (c *Client) PullFromPostmaster(ctx context.Context, request types.DestinyPostmasterTransferRequest, opts ...CallOption) (int32, error) {
	return platformPost[int32](ctx, c, "Destiny2.PullFromPostmaster", "/Destiny2/Actions/Items/PullFromPostmaster/", request, opts)
}

// EquipItem equips an item already in the character's inventory.
func (c *Client) EquipItem(ctx context.Context, request types.DestinyItemActionRequest, opts ...CallOption) (int32, error) {
	return platformPost[int32](ctx, c, "Destiny2.EquipItem", "/Destiny2/Actions/Items/EquipItem/", request, opts)
}

// EquipItems equips a list of items. The response carries a per-item
// equip status; any item can fail independently of the rest.
func (c *Client) EquipItems(ctx context.Context, request types.DestinyItemSetActionRequest, opts ...CallOption) (*types.DestinyEquipItemResults, error) {
	return platformPost[*types.DestinyEquipItemResults](ctx, c, "Destiny2.EquipItems", "/Destiny2/Actions/Items/EquipItems/", request, opts)
}

// SetItemLockState locks or unlocks an instanced item.
func (c *Client) SetItemLockState(ctx context.Context, request types.DestinyItemStateRequest, opts ...CallOption) (int32, error) {
	return platformPost[int32](ctx, c, "Destiny2.SetItemLockState", "/Destiny2/Actions/Items/SetLockState/", request, opts)
}

// SetQuestTrackedState marks a quest as tracked or untracked.
func (c *Client) SetQuestTrackedState(ctx context.Context, request types.DestinyItemStateRequest, opts ...CallOption) (int32, error) {
	return platformPost[int32](ctx, c, "Destiny2.SetQuestTrackedState", "/Destiny2/Actions/Items/SetTrackedState/", request, opts)
}

// InsertSocketPlug inserts a plug into a socketed item, consuming the
// materials the plug requires. Needs an AWA action token from the AWA
// flow below in addition to the OAuth scope.
func (c *Client) InsertSocketPlug(ctx context.Context, request types.DestinyInsertPlugsActionRequest, opts ...CallOption) (*types.DestinyItemChangeResponse, error) {
	return platformPost[*types.DestinyItemChangeResponse](ctx, c, "Destiny2.InsertSocketPlug", "/Destiny2/Actions/Items/InsertSocketPlug/", request, opts)
}

// InsertSocketPlugFree inserts a plug whose insertion is free and
// reversible, such as shaders and ornaments. No AWA token needed.
func (c *Client) InsertSocketPlugFree(ctx context.Context, request types.DestinyInsertPlugsFreeActionRequest, opts ...CallOption) (*types.DestinyItemChangeResponse, error) {
	return platformPost[*types.DestinyItemChangeResponse](ctx, c, "Destiny2.InsertSocketPlugFree", "/Destiny2/Actions/Items/InsertSocketPlugFree/", request, opts)
}

// AwaInitializeRequest starts an Advanced Write Action authorization:
// the user approves the request in a companion app, after which
// AwaGetActionToken obtains the token to attach to the guarded action.
func (c *Client) AwaInitializeRequest(ctx context.Context, request types.AwaPermissionRequested, opts ...CallOption) (*types.AwaInitializeResponse, error) {
	return platformPost[*types.AwaInitializeResponse](ctx, c, "Destiny2.AwaInitializeRequest", "/Destiny2/Awa/Initialize/", request, opts)
}

// AwaProvideAuthorizationResult submits the user's approval or denial
// of a pending Advanced Write Action request.
func (c *Client) AwaProvideAuthorizationResult(ctx context.Context, request types.AwaUserResponse, opts ...CallOption) (int32, error) {
	return platformPost[int32](ctx, c, "Destiny2.AwaProvideAuthorizationResult", "/Destiny2/Awa/AwaProvideAuthorizationResult/", request, opts)
}

// AwaGetActionToken returns the action token for an approved Advanced
// Write Action request.
func (c *Client) AwaGetActionToken(ctx context.Context, correlationID string, opts ...CallOption) (*types.AwaAuthorizationResult, error) {
	path := "/Destiny2/Awa/GetActionToken/" + url.PathEscape(correlationID) + "/"
	return platformGet[*types.AwaAuthorizationResult](ctx, c, "Destiny2.AwaGetActionToken", path, nil, opts)
}
