package types

// DestinyComponentType selects which component blocks a profile,
// character or item request returns. Pass one or more values in the
// components query parameter.
type DestinyComponentType int32

const (
	ComponentNone                  DestinyComponentType = 0
	ComponentProfiles              DestinyComponentType = 100
	ComponentVendorReceipts        DestinyComponentType = 101
	ComponentProfileInventories    DestinyComponentType = 102
	ComponentProfileCurrencies     DestinyComponentType = 103
	ComponentProfileProgression    DestinyComponentType = 104
	ComponentPlatformSilver        DestinyComponentType = 105
	ComponentCharacters            DestinyComponentType = 200
	ComponentCharacterInventories  DestinyComponentType = 201
	ComponentCharacterProgressions DestinyComponentType = 202
	ComponentCharacterRenderData   DestinyComponentType = 203
	ComponentCharacterActivities   DestinyComponentType = 204
	ComponentCharacterEquipment    DestinyComponentType = 205
	ComponentCharacterLoadouts     DestinyComponentType = 206
	ComponentItemInstances         DestinyComponentType = 300
	ComponentItemObjectives        DestinyComponentType = 301
	ComponentItemPerks             DestinyComponentType = 302
	ComponentItemRenderData        DestinyComponentType = 303
	ComponentItemStats             DestinyComponentType = 304
	ComponentItemSockets           DestinyComponentType = 305
	ComponentItemTalentGrids       DestinyComponentType = 306
	ComponentItemCommonData        DestinyComponentType = 307
	ComponentItemPlugStates        DestinyComponentType = 308
	ComponentItemPlugObjectives    DestinyComponentType = 309
	ComponentItemReusablePlugs     DestinyComponentType = 310
	ComponentVendors               DestinyComponentType = 400
	ComponentVendorCategories      DestinyComponentType = 401
	ComponentVendorSales           DestinyComponentType = 402
	ComponentKiosks                DestinyComponentType = 500
	ComponentCurrencyLookups       DestinyComponentType = 600
	ComponentPresentationNodes     DestinyComponentType = 700
	ComponentCollectibles          DestinyComponentType = 800
	ComponentRecords               DestinyComponentType = 900
	ComponentTransitory            DestinyComponentType = 1000
	ComponentMetrics               DestinyComponentType = 1100
	ComponentStringVariables       DestinyComponentType = 1200
	ComponentCraftables            DestinyComponentType = 1300
	ComponentSocialCommendations   DestinyComponentType = 1400
)

// DestinyClass is a character class.
type DestinyClass int32

const (
	ClassTitan   DestinyClass = 0
	ClassHunter  DestinyClass = 1
	ClassWarlock DestinyClass = 2
	ClassUnknown DestinyClass = 3
)

// DestinyRace is a character race.
type DestinyRace int32

const (
	RaceHuman   DestinyRace = 0
	RaceAwoken  DestinyRace = 1
	RaceExo     DestinyRace = 2
	RaceUnknown DestinyRace = 3
)

// DestinyGender is a character gender.
type DestinyGender int32

const (
	GenderMale    DestinyGender = 0
	GenderFemale  DestinyGender = 1
	GenderUnknown DestinyGender = 2
)

// DamageType is a weapon or ability damage type.
type DamageType int32

const (
	DamageNone    DamageType = 0
	DamageKinetic DamageType = 1
	DamageArc     DamageType = 2
	DamageThermal DamageType = 3
	DamageVoid    DamageType = 4
	DamageRaid    DamageType = 5
	DamageStasis  DamageType = 6
	DamageStrand  DamageType = 7
)

// DestinyEnergyType is an armor energy type.
type DestinyEnergyType int32

const (
	EnergyTypeAny      DestinyEnergyType = 0
	EnergyTypeArc      DestinyEnergyType = 1
	EnergyTypeThermal  DestinyEnergyType = 2
	EnergyTypeVoid     DestinyEnergyType = 3
	EnergyTypeGhost    DestinyEnergyType = 4
	EnergyTypeSubclass DestinyEnergyType = 5
	EnergyTypeStasis   DestinyEnergyType = 6
)

// ItemBindStatus reports whether an item is bound to a character or
// account.
type ItemBindStatus int32

const (
	ItemBindStatusNotBound         ItemBindStatus = 0
	ItemBindStatusBoundToCharacter ItemBindStatus = 1
	ItemBindStatusBoundToAccount   ItemBindStatus = 2
	ItemBindStatusBoundToGuild     ItemBindStatus = 3
)

// ItemLocation is the broad location of an item.
type ItemLocation int32

const (
	ItemLocationUnknown    ItemLocation = 0
	ItemLocationInventory  ItemLocation = 1
	ItemLocationVault      ItemLocation = 2
	ItemLocationVendor     ItemLocation = 3
	ItemLocationPostmaster ItemLocation = 4
)

// TransferStatuses is the bit-flag set describing why an item cannot be
// transferred. A zero value means the item is transferable.
type TransferStatuses uint32

const (
	TransferStatusItemIsEquipped      TransferStatuses = 1
	TransferStatusNotTransferrable    TransferStatuses = 2
	TransferStatusNoRoomInDestination TransferStatuses = 4
)

// ItemState is the bit-flag set of an item's instance state. A zero
// value carries no state bits.
type ItemState uint32

const (
	ItemStateLocked               ItemState = 1
	ItemStateTracked              ItemState = 2
	ItemStateMasterwork           ItemState = 4
	ItemStateCrafted              ItemState = 8
	ItemStateHighlightedObjective ItemState = 16
)

// DestinyGameVersions is the bit-flag set of game releases an account
// owns. A zero value means no versions are owned.
type DestinyGameVersions uint32

const (
	GameVersionDestiny2          DestinyGameVersions = 1
	GameVersionDLC1              DestinyGameVersions = 2
	GameVersionDLC2              DestinyGameVersions = 4
	GameVersionForsaken          DestinyGameVersions = 8
	GameVersionYearTwoAnnualPass DestinyGameVersions = 16
	GameVersionShadowkeep        DestinyGameVersions = 32
	GameVersionBeyondLight       DestinyGameVersions = 64
	GameVersionAnniversary30th   DestinyGameVersions = 128
	GameVersionTheWitchQueen     DestinyGameVersions = 256
	GameVersionLightfall         DestinyGameVersions = 512
	GameVersionTheFinalShape     DestinyGameVersions = 1024
)

// EquipFailureReason is the bit-flag set of reasons an equip attempt
// failed. A zero value means the equip succeeded.
type EquipFailureReason uint32

const (
	EquipFailureItemUnequippable             EquipFailureReason = 1
	EquipFailureItemUniqueEquipRestricted    EquipFailureReason = 2
	EquipFailureItemFailedUnlockCheck        EquipFailureReason = 4
	EquipFailureItemFailedLevelCheck         EquipFailureReason = 8
	EquipFailureItemWrapped                  EquipFailureReason = 16
	EquipFailureItemNotLoaded                EquipFailureReason = 32
	EquipFailureItemEquipBlocklisted         EquipFailureReason = 64
	EquipFailureItemLoadoutRequirementNotMet EquipFailureReason = 128
)

// DestinyVendorFilter narrows vendor listings.
type DestinyVendorFilter int32

const (
	VendorFilterNone           DestinyVendorFilter = 0
	VendorFilterApiPurchasable DestinyVendorFilter = 1
)

// VendorItemRefundPolicy describes what happens when a vendor purchase
// is refunded.
type VendorItemRefundPolicy int32

const (
	RefundPolicyNotRefundable  VendorItemRefundPolicy = 0
	RefundPolicyDeletesItem    VendorItemRefundPolicy = 1
	RefundPolicyRevokesLicense VendorItemRefundPolicy = 2
)

// DestinyActivityDifficultyTier is the difficulty banding of an
// activity.
type DestinyActivityDifficultyTier int32

const (
	DifficultyTierTrivial          DestinyActivityDifficultyTier = 0
	DifficultyTierEasy             DestinyActivityDifficultyTier = 1
	DifficultyTierNormal           DestinyActivityDifficultyTier = 2
	DifficultyTierChallenging      DestinyActivityDifficultyTier = 3
	DifficultyTierHard             DestinyActivityDifficultyTier = 4
	DifficultyTierBrave            DestinyActivityDifficultyTier = 5
	DifficultyTierAlmostImpossible DestinyActivityDifficultyTier = 6
	DifficultyTierImpossible       DestinyActivityDifficultyTier = 7
)

// DestinyProgressionRewardItemState is the bit-flag set reporting the
// claim state of a progression reward item.
type DestinyProgressionRewardItemState uint32

const (
	ProgressionRewardItemInvisible    DestinyProgressionRewardItemState = 1
	ProgressionRewardItemEarned       DestinyProgressionRewardItemState = 2
	ProgressionRewardItemClaimed      DestinyProgressionRewardItemState = 4
	ProgressionRewardItemClaimAllowed DestinyProgressionRewardItemState = 8
)

// DestinyStat is a stat value keyed by its definition hash.
type DestinyStat struct {
	StatHash uint32 `json:"statHash"`
	Value    int32  `json:"value"`
}

// DestinyColor is an RGBA color rendered by the game.
type DestinyColor struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
	Alpha uint8 `json:"alpha"`
}

// DestinyProgression is the live state of a progression (rank, level,
// reputation) for a character or profile.
type DestinyProgression struct {
	ProgressionHash     uint32                              `json:"progressionHash"`
	DailyProgress       int32                               `json:"dailyProgress"`
	DailyLimit          int32                               `json:"dailyLimit"`
	WeeklyProgress      int32                               `json:"weeklyProgress"`
	WeeklyLimit         int32                               `json:"weeklyLimit"`
	CurrentProgress     int32                               `json:"currentProgress"`
	Level               int32                               `json:"level"`
	LevelCap            int32                               `json:"levelCap"`
	StepIndex           int32                               `json:"stepIndex"`
	ProgressToNextLevel int32                               `json:"progressToNextLevel"`
	NextLevelAt         int32                               `json:"nextLevelAt"`
	CurrentResetCount   *int32                              `json:"currentResetCount,omitempty"`
	SeasonResets        []DestinyProgressionResetEntry      `json:"seasonResets,omitempty"`
	RewardItemStates    []DestinyProgressionRewardItemState `json:"rewardItemStates,omitempty"`
}

// DestinyProgressionResetEntry records a progression reset in a season.
type DestinyProgressionResetEntry struct {
	Season int32 `json:"season"`
	Resets int32 `json:"resets"`
}

// DestinyFactionProgression is a faction's progression state including
// its vendor, if currently available.
type DestinyFactionProgression struct {
	FactionHash         uint32 `json:"factionHash"`
	FactionVendorIndex  int32  `json:"factionVendorIndex"`
	ProgressionHash     uint32 `json:"progressionHash"`
	DailyProgress       int32  `json:"dailyProgress"`
	DailyLimit          int32  `json:"dailyLimit"`
	WeeklyProgress      int32  `json:"weeklyProgress"`
	WeeklyLimit         int32  `json:"weeklyLimit"`
	CurrentProgress     int32  `json:"currentProgress"`
	Level               int32  `json:"level"`
	LevelCap            int32  `json:"levelCap"`
	StepIndex           int32  `json:"stepIndex"`
	ProgressToNextLevel int32  `json:"progressToNextLevel"`
	NextLevelAt         int32  `json:"nextLevelAt"`
}

// DestinyItemQuantity names an item and how many of it, optionally tied
// to a specific instance.
type DestinyItemQuantity struct {
	ItemHash                 uint32 `json:"itemHash"`
	ItemInstanceId           *int64 `json:"itemInstanceId,omitempty,string"`
	Quantity                 int32  `json:"quantity"`
	HasConditionalVisibility bool   `json:"hasConditionalVisibility"`
}

// DestinyEquipItemResult is the outcome of equipping one item in a
// batch equip request.
type DestinyEquipItemResult struct {
	ItemInstanceId int64             `json:"itemInstanceId,string"`
	EquipStatus    PlatformErrorCode `json:"equipStatus"`
}

// DestinyEquipItemResults is the payload of a batch equip request.
type DestinyEquipItemResults struct {
	EquipResults []DestinyEquipItemResult `json:"equipResults,omitempty"`
}
