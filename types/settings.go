package types

// CoreSystem reports whether a named backend system is enabled, along
// with any system-specific parameters.
type CoreSystem struct {
	Enabled    bool              `json:"enabled"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// CoreSetting is a single configurable value in the common settings
// payload. Settings nest arbitrarily through ChildSettings.
type CoreSetting struct {
	Identifier    string        `json:"identifier,omitempty"`
	IsDefault     bool          `json:"isDefault"`
	DisplayName   string        `json:"displayName,omitempty"`
	Summary       string        `json:"summary,omitempty"`
	ImagePath     string        `json:"imagePath,omitempty"`
	ChildSettings []CoreSetting `json:"childSettings,omitempty"`
}

// Destiny2CoreSettings carries the game-content anchor hashes the
// vendor publishes alongside the common settings.
type Destiny2CoreSettings struct {
	CollectionRootNode                     uint32   `json:"collectionRootNode"`
	BadgesRootNode                         uint32   `json:"badgesRootNode"`
	RecordsRootNode                        uint32   `json:"recordsRootNode"`
	MedalsRootNode                         uint32   `json:"medalsRootNode"`
	MetricsRootNode                        uint32   `json:"metricsRootNode"`
	ActiveTriumphsRootNodeHash             uint32   `json:"activeTriumphsRootNodeHash"`
	ActiveSealsRootNodeHash                uint32   `json:"activeSealsRootNodeHash"`
	LegacyTriumphsRootNodeHash             uint32   `json:"legacyTriumphsRootNodeHash"`
	LegacySealsRootNodeHash                uint32   `json:"legacySealsRootNodeHash"`
	MedalsRootNodeHash                     uint32   `json:"medalsRootNodeHash"`
	ExoticCatalystsRootNodeHash            uint32   `json:"exoticCatalystsRootNodeHash"`
	LoreRootNodeHash                       uint32   `json:"loreRootNodeHash"`
	CraftingRootNodeHash                   uint32   `json:"craftingRootNodeHash"`
	CurrentRankProgressionHashes           []uint32 `json:"currentRankProgressionHashes,omitempty"`
	InsertPlugFreeProtectedPlugItemHashes  []uint32 `json:"insertPlugFreeProtectedPlugItemHashes,omitempty"`
	InsertPlugFreeBlockedSocketTypeHashes  []uint32 `json:"insertPlugFreeBlockedSocketTypeHashes,omitempty"`
	UndiscoveredCollectibleImage           string   `json:"undiscoveredCollectibleImage,omitempty"`
	AmmoTypeHeavyIcon                      string   `json:"ammoTypeHeavyIcon,omitempty"`
	AmmoTypeSpecialIcon                    string   `json:"ammoTypeSpecialIcon,omitempty"`
	AmmoTypePrimaryIcon                    string   `json:"ammoTypePrimaryIcon,omitempty"`
	CurrentSeasonalArtifactHash            uint32   `json:"currentSeasonalArtifactHash"`
	CurrentSeasonHash                      *uint32  `json:"currentSeasonHash,omitempty"`
	SeasonalChallengesPresentationNodeHash *uint32  `json:"seasonalChallengesPresentationNodeHash,omitempty"`
	FutureSeasonHashes                     []uint32 `json:"futureSeasonHashes,omitempty"`
	PastSeasonHashes                       []uint32 `json:"pastSeasonHashes,omitempty"`
}

// CoreSettingsConfiguration is the payload of the common settings
// endpoint.
type CoreSettingsConfiguration struct {
	Environment                    string                `json:"environment,omitempty"`
	Systems                        map[string]CoreSystem `json:"systems,omitempty"`
	IgnoreReasons                  []CoreSetting         `json:"ignoreReasons,omitempty"`
	ForumCategories                []CoreSetting         `json:"forumCategories,omitempty"`
	GroupAvatars                   []CoreSetting         `json:"groupAvatars,omitempty"`
	DefaultGroupTheme              *CoreSetting          `json:"defaultGroupTheme,omitempty"`
	DestinyMembershipTypes         []CoreSetting         `json:"destinyMembershipTypes,omitempty"`
	RecruitmentPlatformTags        []CoreSetting         `json:"recruitmentPlatformTags,omitempty"`
	RecruitmentMiscTags            []CoreSetting         `json:"recruitmentMiscTags,omitempty"`
	RecruitmentActivities          []CoreSetting         `json:"recruitmentActivities,omitempty"`
	UserContentLocales             []CoreSetting         `json:"userContentLocales,omitempty"`
	SystemContentLocales           []CoreSetting         `json:"systemContentLocales,omitempty"`
	ClanBannerDecals               []CoreSetting         `json:"clanBannerDecals,omitempty"`
	ClanBannerDecalColors          []CoreSetting         `json:"clanBannerDecalColors,omitempty"`
	ClanBannerGonfalons            []CoreSetting         `json:"clanBannerGonfalons,omitempty"`
	ClanBannerGonfalonColors       []CoreSetting         `json:"clanBannerGonfalonColors,omitempty"`
	ClanBannerGonfalonDetails      []CoreSetting         `json:"clanBannerGonfalonDetails,omitempty"`
	ClanBannerGonfalonDetailColors []CoreSetting         `json:"clanBannerGonfalonDetailColors,omitempty"`
	ClanBannerStandards            []CoreSetting         `json:"clanBannerStandards,omitempty"`
	Destiny2CoreSettings           *Destiny2CoreSettings `json:"destiny2CoreSettings,omitempty"`
	FireteamActivities             []CoreSetting         `json:"fireteamActivities,omitempty"`
}
