package types

import "time"

// DestinyProfileUserInfoCard is a UserInfoCard plus cross-save and
// override metadata, used by the linked profiles endpoint.
type DestinyProfileUserInfoCard struct {
	DateLastPlayed              time.Time                                     `json:"dateLastPlayed"`
	IsOverridden                bool                                          `json:"isOverridden"`
	IsCrossSavePrimary          bool                                          `json:"isCrossSavePrimary"`
	PlatformSilver              map[BungieMembershipType]DestinyItemComponent `json:"platformSilver,omitempty"`
	UnpairedGameVersions        *int32                                        `json:"unpairedGameVersions,omitempty"`
	SupplementalDisplayName     string                                        `json:"supplementalDisplayName,omitempty"`
	IconPath                    string                                        `json:"iconPath,omitempty"`
	CrossSaveOverride           BungieMembershipType                          `json:"crossSaveOverride"`
	ApplicableMembershipTypes   []BungieMembershipType                        `json:"applicableMembershipTypes,omitempty"`
	IsPublic                    bool                                          `json:"isPublic"`
	MembershipType              BungieMembershipType                          `json:"membershipType"`
	MembershipId                int64                                         `json:"membershipId,string"`
	DisplayName                 string                                        `json:"displayName,omitempty"`
	BungieGlobalDisplayName     string                                        `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode *int16                                        `json:"bungieGlobalDisplayNameCode,omitempty"`
}

// DestinyErrorProfile describes a linked profile that could not be
// returned.
type DestinyErrorProfile struct {
	ErrorCode PlatformErrorCode `json:"errorCode"`
	InfoCard  *UserInfoCard     `json:"infoCard,omitempty"`
}

// DestinyLinkedProfilesResponse lists all profiles linked to the
// requested membership.
type DestinyLinkedProfilesResponse struct {
	Profiles           []DestinyProfileUserInfoCard `json:"profiles,omitempty"`
	BnetMembership     *UserInfoCard                `json:"bnetMembership,omitempty"`
	ProfilesWithErrors []DestinyErrorProfile        `json:"profilesWithErrors,omitempty"`
}

// DestinyProfileResponse is the component-gated profile payload. Every
// field maps to one DestinyComponentType; fields for components that
// were not requested are nil.
type DestinyProfileResponse struct {
	VendorReceipts        *SingleComponentResponse[DestinyVendorReceiptsComponent]                  `json:"vendorReceipts,omitempty"`
	ProfileInventory      *SingleComponentResponse[DestinyInventoryComponent]                       `json:"profileInventory,omitempty"`
	ProfileCurrencies     *SingleComponentResponse[DestinyInventoryComponent]                       `json:"profileCurrencies,omitempty"`
	Profile               *SingleComponentResponse[DestinyProfileComponent]                         `json:"profile,omitempty"`
	PlatformSilver        *SingleComponentResponse[DestinyPlatformSilverComponent]                  `json:"platformSilver,omitempty"`
	Characters            *DictionaryComponentResponse[int64, DestinyCharacterComponent]            `json:"characters,omitempty"`
	CharacterInventories  *DictionaryComponentResponse[int64, DestinyInventoryComponent]            `json:"characterInventories,omitempty"`
	CharacterProgressions *DictionaryComponentResponse[int64, DestinyCharacterProgressionComponent] `json:"characterProgressions,omitempty"`
	CharacterRenderData   *DictionaryComponentResponse[int64, DestinyCharacterRenderComponent]      `json:"characterRenderData,omitempty"`
	CharacterActivities   *DictionaryComponentResponse[int64, DestinyCharacterActivitiesComponent]  `json:"characterActivities,omitempty"`
	CharacterEquipment    *DictionaryComponentResponse[int64, DestinyInventoryComponent]            `json:"characterEquipment,omitempty"`
	ItemComponents        *DestinyItemComponentSetOfInt64                                           `json:"itemComponents,omitempty"`
}

// DestinyPlatformSilverComponent maps each platform to its silver
// balance item.
type DestinyPlatformSilverComponent struct {
	PlatformSilver map[BungieMembershipType]DestinyItemComponent `json:"platformSilver,omitempty"`
}

// DestinyCharacterResponse is the component-gated single character
// payload.
type DestinyCharacterResponse struct {
	Inventory      *SingleComponentResponse[DestinyInventoryComponent]            `json:"inventory,omitempty"`
	Character      *SingleComponentResponse[DestinyCharacterComponent]            `json:"character,omitempty"`
	Progressions   *SingleComponentResponse[DestinyCharacterProgressionComponent] `json:"progressions,omitempty"`
	RenderData     *SingleComponentResponse[DestinyCharacterRenderComponent]      `json:"renderData,omitempty"`
	Activities     *SingleComponentResponse[DestinyCharacterActivitiesComponent]  `json:"activities,omitempty"`
	Equipment      *SingleComponentResponse[DestinyInventoryComponent]            `json:"equipment,omitempty"`
	ItemComponents *DestinyItemComponentSetOfInt64                                `json:"itemComponents,omitempty"`
}

// DestinyItemResponse is the component-gated single item payload.
type DestinyItemResponse struct {
	CharacterId *int64                                                   `json:"characterId,omitempty,string"`
	Item        *SingleComponentResponse[DestinyItemComponent]           `json:"item,omitempty"`
	Instance    *SingleComponentResponse[DestinyItemInstanceComponent]   `json:"instance,omitempty"`
	Objectives  *SingleComponentResponse[DestinyItemObjectivesComponent] `json:"objectives,omitempty"`
	Perks       *SingleComponentResponse[DestinyItemPerksComponent]      `json:"perks,omitempty"`
	Stats       *SingleComponentResponse[DestinyItemStatsComponent]      `json:"stats,omitempty"`
	Sockets     *SingleComponentResponse[DestinyItemSocketsComponent]    `json:"sockets,omitempty"`
}

// DestinyItemChangeResponse reports the item and inventory changes a
// socket action produced.
type DestinyItemChangeResponse struct {
	Item                  *DestinyItemResponse   `json:"item,omitempty"`
	AddedInventoryItems   []DestinyItemComponent `json:"addedInventoryItems,omitempty"`
	RemovedInventoryItems []DestinyItemComponent `json:"removedInventoryItems,omitempty"`
}
