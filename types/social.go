package types

// FriendRelationshipState is the friendship state between the caller
// and another user.
type FriendRelationshipState int32

const (
	RelationshipNone            FriendRelationshipState = 0
	RelationshipFriend          FriendRelationshipState = 1
	RelationshipIncomingRequest FriendRelationshipState = 2
	RelationshipOutgoingRequest FriendRelationshipState = 3
)

// PresenceStatus reports whether a friend is currently online.
type PresenceStatus int32

const (
	PresenceOfflineOrUnknown PresenceStatus = 0
	PresenceOnline           PresenceStatus = 1
)

// PresenceOnlineStateFlags is the bit-flag set of titles a friend is
// online in.
type PresenceOnlineStateFlags uint32

const (
	PresenceDestiny1 PresenceOnlineStateFlags = 1
	PresenceDestiny2 PresenceOnlineStateFlags = 2
)

// BungieFriend is one entry in the caller's friend list.
type BungieFriend struct {
	LastSeenAsMembershipId         int64                    `json:"lastSeenAsMembershipId,string"`
	LastSeenAsBungieMembershipType BungieMembershipType     `json:"lastSeenAsBungieMembershipType"`
	BungieGlobalDisplayName        string                   `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode    *int16                   `json:"bungieGlobalDisplayNameCode,omitempty"`
	OnlineStatus                   PresenceStatus           `json:"onlineStatus"`
	OnlineTitle                    PresenceOnlineStateFlags `json:"onlineTitle"`
	Relationship                   FriendRelationshipState  `json:"relationship"`
	BungieNetUser                  *GeneralUser             `json:"bungieNetUser,omitempty"`
}

// BungieFriendListResponse is the caller's full friend list.
type BungieFriendListResponse struct {
	Friends []BungieFriend `json:"friends,omitempty"`
}

// BungieFriendRequestListResponse lists pending friend requests in both
// directions.
type BungieFriendRequestListResponse struct {
	IncomingRequests []BungieFriend `json:"incomingRequests,omitempty"`
	OutgoingRequests []BungieFriend `json:"outgoingRequests,omitempty"`
}

// PlatformFriendType identifies the external platform a friend list is
// pulled from.
type PlatformFriendType int32

const (
	PlatformFriendUnknown PlatformFriendType = 0
	PlatformFriendXbox    PlatformFriendType = 1
	PlatformFriendPSN     PlatformFriendType = 2
	PlatformFriendSteam   PlatformFriendType = 3
	PlatformFriendEgs     PlatformFriendType = 4
)

// PlatformFriend is one friend on an external platform, with their
// Destiny identity when it can be resolved.
type PlatformFriend struct {
	PlatformDisplayName         string                `json:"platformDisplayName,omitempty"`
	FriendPlatform              PlatformFriendType    `json:"friendPlatform"`
	DestinyMembershipId         *int64                `json:"destinyMembershipId,omitempty,string"`
	DestinyMembershipType       *BungieMembershipType `json:"destinyMembershipType,omitempty"`
	BungieNetMembershipId       *int64                `json:"bungieNetMembershipId,omitempty,string"`
	BungieGlobalDisplayName     string                `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode *int16                `json:"bungieGlobalDisplayNameCode,omitempty"`
}

// PlatformFriendResponse is a page of platform friends.
type PlatformFriendResponse struct {
	ItemsPerPage    int32            `json:"itemsPerPage"`
	CurrentPage     int32            `json:"currentPage"`
	HasMore         bool             `json:"hasMore"`
	PlatformFriends []PlatformFriend `json:"platformFriends,omitempty"`
}
