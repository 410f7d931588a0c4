package types

import "time"

// DestinyProfileComponent is the account-wide summary component.
type DestinyProfileComponent struct {
	UserInfo                    *UserInfoCard       `json:"userInfo,omitempty"`
	DateLastPlayed              time.Time           `json:"dateLastPlayed"`
	VersionsOwned               DestinyGameVersions `json:"versionsOwned"`
	CharacterIds                []Int64String       `json:"characterIds,omitempty"`
	SeasonHashes                []uint32            `json:"seasonHashes,omitempty"`
	EventCardHashesOwned        []uint32            `json:"eventCardHashesOwned,omitempty"`
	CurrentSeasonHash           *uint32             `json:"currentSeasonHash,omitempty"`
	CurrentSeasonRewardPowerCap *int32              `json:"currentSeasonRewardPowerCap,omitempty"`
	ActiveEventCardHash         *uint32             `json:"activeEventCardHash,omitempty"`
	CurrentGuardianRank         int32               `json:"currentGuardianRank"`
	LifetimeHighestGuardianRank int32               `json:"lifetimeHighestGuardianRank"`
}

// DestinyVendorReceipt records a vendor purchase that can expire or be
// refunded.
type DestinyVendorReceipt struct {
	CurrencyPaid           DestinyItemQuantity    `json:"currencyPaid"`
	ItemReceived           DestinyItemQuantity    `json:"itemReceived"`
	LicenseUnlockHash      uint32                 `json:"licenseUnlockHash"`
	PurchasedByCharacterId int64                  `json:"purchasedByCharacterId,string"`
	RefundPolicy           VendorItemRefundPolicy `json:"refundPolicy"`
	SequenceNumber         int32                  `json:"sequenceNumber"`
	TimeToExpiration       int64                  `json:"timeToExpiration,string"`
	ExpiresOn              time.Time              `json:"expiresOn"`
}

// DestinyVendorReceiptsComponent lists the profile's vendor receipts.
type DestinyVendorReceiptsComponent struct {
	Receipts []DestinyVendorReceipt `json:"receipts,omitempty"`
}

// DestinyObjectiveProgress is the live progress against one objective.
type DestinyObjectiveProgress struct {
	ObjectiveHash   uint32  `json:"objectiveHash"`
	DestinationHash *uint32 `json:"destinationHash,omitempty"`
	ActivityHash    *uint32 `json:"activityHash,omitempty"`
	Progress        *int32  `json:"progress,omitempty"`
	CompletionValue int32   `json:"completionValue"`
	Complete        bool    `json:"complete"`
	Visible         bool    `json:"visible"`
}

// DestinyItemComponent is the base component of an inventory item.
type DestinyItemComponent struct {
	ItemHash                   uint32                    `json:"itemHash"`
	ItemInstanceId             *int64                    `json:"itemInstanceId,omitempty,string"`
	Quantity                   int32                     `json:"quantity"`
	BindStatus                 ItemBindStatus            `json:"bindStatus"`
	Location                   ItemLocation              `json:"location"`
	BucketHash                 uint32                    `json:"bucketHash"`
	TransferStatus             TransferStatuses          `json:"transferStatus"`
	Lockable                   bool                      `json:"lockable"`
	State                      ItemState                 `json:"state"`
	OverrideStyleItemHash      *uint32                   `json:"overrideStyleItemHash,omitempty"`
	ExpirationDate             *time.Time                `json:"expirationDate,omitempty"`
	IsWrapper                  bool                      `json:"isWrapper"`
	TooltipNotificationIndexes []int32                   `json:"tooltipNotificationIndexes,omitempty"`
	MetricHash                 *uint32                   `json:"metricHash,omitempty"`
	MetricObjective            *DestinyObjectiveProgress `json:"metricObjective,omitempty"`
	VersionNumber              *int32                    `json:"versionNumber,omitempty"`
	ItemValueVisibility        []bool                    `json:"itemValueVisibility,omitempty"`
}

// DestinyInventoryComponent is a flat list of items in an inventory
// bucket group.
type DestinyInventoryComponent struct {
	Items []DestinyItemComponent `json:"items,omitempty"`
}

// DestinyItemInstanceEnergy is the energy meter of an instanced armor
// piece.
type DestinyItemInstanceEnergy struct {
	EnergyTypeHash uint32            `json:"energyTypeHash"`
	EnergyType     DestinyEnergyType `json:"energyType"`
	EnergyCapacity int32             `json:"energyCapacity"`
	EnergyUsed     int32             `json:"energyUsed"`
	EnergyUnused   int32             `json:"energyUnused"`
}

// DestinyItemInstanceComponent is the instance-specific state of an
// item.
type DestinyItemInstanceComponent struct {
	DamageType                  DamageType                 `json:"damageType"`
	DamageTypeHash              *uint32                    `json:"damageTypeHash,omitempty"`
	PrimaryStat                 *DestinyStat               `json:"primaryStat,omitempty"`
	ItemLevel                   int32                      `json:"itemLevel"`
	Quality                     int32                      `json:"quality"`
	IsEquipped                  bool                       `json:"isEquipped"`
	CanEquip                    bool                       `json:"canEquip"`
	EquipRequiredLevel          int32                      `json:"equipRequiredLevel"`
	UnlockHashesRequiredToEquip []uint32                   `json:"unlockHashesRequiredToEquip,omitempty"`
	CannotEquipReason           EquipFailureReason         `json:"cannotEquipReason"`
	BreakerType                 *int32                     `json:"breakerType,omitempty"`
	BreakerTypeHash             *uint32                    `json:"breakerTypeHash,omitempty"`
	Energy                      *DestinyItemInstanceEnergy `json:"energy,omitempty"`
	GearTier                    *int32                     `json:"gearTier,omitempty"`
}

// DestinyPerkReference is an active or dormant perk on an item.
type DestinyPerkReference struct {
	PerkHash uint32 `json:"perkHash"`
	IconPath string `json:"iconPath,omitempty"`
	IsActive bool   `json:"isActive"`
	Visible  bool   `json:"visible"`
}

// DestinyItemPerksComponent lists an item's perks.
type DestinyItemPerksComponent struct {
	Perks []DestinyPerkReference `json:"perks,omitempty"`
}

// DestinyItemObjectivesComponent carries an item's objective progress.
type DestinyItemObjectivesComponent struct {
	Objectives      []DestinyObjectiveProgress `json:"objectives,omitempty"`
	FlavorObjective *DestinyObjectiveProgress  `json:"flavorObjective,omitempty"`
	DateCompleted   *time.Time                 `json:"dateCompleted,omitempty"`
}

// DestinyItemStatsComponent maps stat hashes to live stat values.
type DestinyItemStatsComponent struct {
	Stats map[uint32]DestinyStat `json:"stats,omitempty"`
}

// DestinyItemSocketState is the live state of one socket.
type DestinyItemSocketState struct {
	PlugHash          *uint32 `json:"plugHash,omitempty"`
	IsEnabled         bool    `json:"isEnabled"`
	IsVisible         bool    `json:"isVisible"`
	EnableFailIndexes []int32 `json:"enableFailIndexes,omitempty"`
}

// DestinyItemSocketsComponent lists an item's socket states in
// definition order.
type DestinyItemSocketsComponent struct {
	Sockets []DestinyItemSocketState `json:"sockets,omitempty"`
}

// DyeReference pairs a dye channel with the applied dye.
type DyeReference struct {
	ChannelHash uint32 `json:"channelHash"`
	DyeHash     uint32 `json:"dyeHash"`
}

// DestinyItemPeerView is the minimal render data for one equipped item.
type DestinyItemPeerView struct {
	ItemHash uint32         `json:"itemHash"`
	Dyes     []DyeReference `json:"dyes,omitempty"`
}

// DestinyCharacterPeerView is the minimal render data other players see.
type DestinyCharacterPeerView struct {
	Equipment []DestinyItemPeerView `json:"equipment,omitempty"`
}

// DestinyCharacterRenderComponent carries the data needed to render a
// character.
type DestinyCharacterRenderComponent struct {
	CustomDyes []DyeReference            `json:"customDyes,omitempty"`
	PeerView   *DestinyCharacterPeerView `json:"peerView,omitempty"`
}

// DestinyCharacterComponent is the top-level summary of one character.
type DestinyCharacterComponent struct {
	MembershipId             int64                `json:"membershipId,string"`
	MembershipType           BungieMembershipType `json:"membershipType"`
	CharacterId              int64                `json:"characterId,string"`
	DateLastPlayed           time.Time            `json:"dateLastPlayed"`
	MinutesPlayedThisSession int64                `json:"minutesPlayedThisSession,string"`
	MinutesPlayedTotal       int64                `json:"minutesPlayedTotal,string"`
	Light                    int32                `json:"light"`
	Stats                    map[uint32]int32     `json:"stats,omitempty"`
	RaceHash                 uint32               `json:"raceHash"`
	GenderHash               uint32               `json:"genderHash"`
	ClassHash                uint32               `json:"classHash"`
	RaceType                 DestinyRace          `json:"raceType"`
	ClassType                DestinyClass         `json:"classType"`
	GenderType               DestinyGender        `json:"genderType"`
	EmblemPath               string               `json:"emblemPath,omitempty"`
	EmblemBackgroundPath     string               `json:"emblemBackgroundPath,omitempty"`
	EmblemHash               uint32               `json:"emblemHash"`
	EmblemColor              *DestinyColor        `json:"emblemColor,omitempty"`
	LevelProgression         *DestinyProgression  `json:"levelProgression,omitempty"`
	BaseCharacterLevel       int32                `json:"baseCharacterLevel"`
	PercentToNextLevel       float32              `json:"percentToNextLevel"`
	TitleRecordHash          *uint32              `json:"titleRecordHash,omitempty"`
}

// DestinyQuestStatus is the live status of one quest step.
type DestinyQuestStatus struct {
	QuestHash      uint32                     `json:"questHash"`
	StepHash       uint32                     `json:"stepHash"`
	StepObjectives []DestinyObjectiveProgress `json:"stepObjectives,omitempty"`
	Tracked        bool                       `json:"tracked"`
	ItemInstanceId int64                      `json:"itemInstanceId,string"`
	Completed      bool                       `json:"completed"`
	Redeemed       bool                       `json:"redeemed"`
	Started        bool                       `json:"started"`
	VendorHash     *uint32                    `json:"vendorHash,omitempty"`
}

// DestinyChallengeStatus is the objective state of an activity
// challenge.
type DestinyChallengeStatus struct {
	Objective DestinyObjectiveProgress `json:"objective"`
}

// DestinyCharacterProgressionComponent carries a character's
// progressions, factions, milestones and quests.
type DestinyCharacterProgressionComponent struct {
	Progressions              map[uint32]DestinyProgression         `json:"progressions,omitempty"`
	Factions                  map[uint32]DestinyFactionProgression  `json:"factions,omitempty"`
	Milestones                map[uint32]DestinyMilestone           `json:"milestones,omitempty"`
	QuestStatuses             []DestinyQuestStatus                  `json:"quests,omitempty"`
	UninstancedItemObjectives map[uint32][]DestinyObjectiveProgress `json:"uninstancedItemObjectives,omitempty"`
}

// DestinyActivity is one activity a character can launch.
type DestinyActivity struct {
	ActivityHash     uint32                        `json:"activityHash"`
	IsNew            bool                          `json:"isNew"`
	CanLead          bool                          `json:"canLead"`
	CanJoin          bool                          `json:"canJoin"`
	IsCompleted      bool                          `json:"isCompleted"`
	IsVisible        bool                          `json:"isVisible"`
	DisplayLevel     *int32                        `json:"displayLevel,omitempty"`
	RecommendedLight *int32                        `json:"recommendedLight,omitempty"`
	DifficultyTier   DestinyActivityDifficultyTier `json:"difficultyTier"`
	Challenges       []DestinyChallengeStatus      `json:"challenges,omitempty"`
	ModifierHashes   []uint32                      `json:"modifierHashes,omitempty"`
}

// DestinyCharacterActivitiesComponent reports what a character is doing
// and can do.
type DestinyCharacterActivitiesComponent struct {
	DateActivityStarted         time.Time                 `json:"dateActivityStarted"`
	AvailableActivities         []DestinyActivity         `json:"availableActivities,omitempty"`
	CurrentActivityHash         uint32                    `json:"currentActivityHash"`
	CurrentActivityModeHash     uint32                    `json:"currentActivityModeHash"`
	CurrentActivityModeType     *int32                    `json:"currentActivityModeType,omitempty"`
	CurrentActivityModeHashes   []uint32                  `json:"currentActivityModeHashes,omitempty"`
	CurrentActivityModeTypes    []DestinyActivityModeType `json:"currentActivityModeTypes,omitempty"`
	CurrentPlaylistActivityHash *uint32                   `json:"currentPlaylistActivityHash,omitempty"`
	LastCompletedStoryHash      uint32                    `json:"lastCompletedStoryHash"`
}

// DestinyItemComponentSetOfInt64 groups the per-instance item
// components keyed by item instance ID.
type DestinyItemComponentSetOfInt64 struct {
	Instances  *DictionaryComponentResponse[int64, DestinyItemInstanceComponent]   `json:"instances,omitempty"`
	Perks      *DictionaryComponentResponse[int64, DestinyItemPerksComponent]      `json:"perks,omitempty"`
	Objectives *DictionaryComponentResponse[int64, DestinyItemObjectivesComponent] `json:"objectives,omitempty"`
	Stats      *DictionaryComponentResponse[int64, DestinyItemStatsComponent]      `json:"stats,omitempty"`
	Sockets    *DictionaryComponentResponse[int64, DestinyItemSocketsComponent]    `json:"sockets,omitempty"`
}
