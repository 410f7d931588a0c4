package types

// DestinyItemTransferRequest moves an item between a character and the
// vault.
type DestinyItemTransferRequest struct {
	ItemReferenceHash uint32               `json:"itemReferenceHash"`
	StackSize         int32                `json:"stackSize"`
	TransferToVault   bool                 `json:"transferToVault"`
	ItemId            int64                `json:"itemId,string"`
	CharacterId       int64                `json:"characterId,string"`
	MembershipType    BungieMembershipType `json:"membershipType"`
}

// DestinyPostmasterTransferRequest pulls an item from the postmaster.
type DestinyPostmasterTransferRequest struct {
	ItemReferenceHash uint32               `json:"itemReferenceHash"`
	StackSize         int32                `json:"stackSize"`
	ItemId            int64                `json:"itemId,string"`
	CharacterId       int64                `json:"characterId,string"`
	MembershipType    BungieMembershipType `json:"membershipType"`
}

// DestinyItemActionRequest acts on a single instanced item.
type DestinyItemActionRequest struct {
	ItemId         int64                `json:"itemId,string"`
	CharacterId    int64                `json:"characterId,string"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

// DestinyItemSetActionRequest acts on a batch of instanced items.
type DestinyItemSetActionRequest struct {
	ItemIds        []Int64String        `json:"itemIds,omitempty"`
	CharacterId    int64                `json:"characterId,string"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

// DestinyItemStateRequest sets a boolean state (lock, tracked) on an
// instanced item.
type DestinyItemStateRequest struct {
	State          bool                 `json:"state"`
	ItemId         int64                `json:"itemId,string"`
	CharacterId    int64                `json:"characterId,string"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

// DestinyInsertPlugsRequestEntry picks the plug to insert and the
// socket to insert it into.
type DestinyInsertPlugsRequestEntry struct {
	SocketIndex     int32                  `json:"socketIndex"`
	SocketArrayType DestinySocketArrayType `json:"socketArrayType"`
	PlugItemHash    uint32                 `json:"plugItemHash"`
}

// DestinySocketArrayType selects which socket array a socket index
// refers to.
type DestinySocketArrayType int32

const (
	SocketArrayDefault   DestinySocketArrayType = 0
	SocketArrayIntrinsic DestinySocketArrayType = 1
)

// DestinyInsertPlugsActionRequest inserts a plug using an Advanced
// Write Actions token.
type DestinyInsertPlugsActionRequest struct {
	ActionToken    string                          `json:"actionToken"`
	ItemInstanceId int64                           `json:"itemInstanceId,string"`
	Plug           *DestinyInsertPlugsRequestEntry `json:"plug,omitempty"`
	CharacterId    int64                           `json:"characterId,string"`
	MembershipType BungieMembershipType            `json:"membershipType"`
}

// DestinyInsertPlugsFreeActionRequest inserts a plug that has no
// insertion cost, without an AWA token.
type DestinyInsertPlugsFreeActionRequest struct {
	Plug           *DestinyInsertPlugsRequestEntry `json:"plug,omitempty"`
	ItemId         int64                           `json:"itemId,string"`
	CharacterId    int64                           `json:"characterId,string"`
	MembershipType BungieMembershipType            `json:"membershipType"`
}
