package types

import "time"

// DestinyActivityModeType identifies a gameplay mode for historical
// stats queries and activity history.
type DestinyActivityModeType int32

const (
	ActivityModeNone                    DestinyActivityModeType = 0
	ActivityModeStory                   DestinyActivityModeType = 2
	ActivityModeStrike                  DestinyActivityModeType = 3
	ActivityModeRaid                    DestinyActivityModeType = 4
	ActivityModeAllPvP                  DestinyActivityModeType = 5
	ActivityModePatrol                  DestinyActivityModeType = 6
	ActivityModeAllPvE                  DestinyActivityModeType = 7
	ActivityModeControl                 DestinyActivityModeType = 10
	ActivityModeClash                   DestinyActivityModeType = 12
	ActivityModeCrimsonDoubles          DestinyActivityModeType = 15
	ActivityModeNightfall               DestinyActivityModeType = 16
	ActivityModeHeroicNightfall         DestinyActivityModeType = 17
	ActivityModeAllStrikes              DestinyActivityModeType = 18
	ActivityModeIronBanner              DestinyActivityModeType = 19
	ActivityModeAllMayhem               DestinyActivityModeType = 25
	ActivityModeSupremacy               DestinyActivityModeType = 31
	ActivityModePrivateMatchesAll       DestinyActivityModeType = 32
	ActivityModeSurvival                DestinyActivityModeType = 37
	ActivityModeCountdown               DestinyActivityModeType = 38
	ActivityModeTrialsOfTheNine         DestinyActivityModeType = 39
	ActivityModeSocial                  DestinyActivityModeType = 40
	ActivityModeTrialsCountdown         DestinyActivityModeType = 41
	ActivityModeTrialsSurvival          DestinyActivityModeType = 42
	ActivityModeIronBannerControl       DestinyActivityModeType = 43
	ActivityModeIronBannerClash         DestinyActivityModeType = 44
	ActivityModeIronBannerSupremacy     DestinyActivityModeType = 45
	ActivityModeScoredNightfall         DestinyActivityModeType = 46
	ActivityModeScoredHeroicNightfall   DestinyActivityModeType = 47
	ActivityModeRumble                  DestinyActivityModeType = 48
	ActivityModeAllDoubles              DestinyActivityModeType = 49
	ActivityModeDoubles                 DestinyActivityModeType = 50
	ActivityModePrivateMatchesClash     DestinyActivityModeType = 51
	ActivityModePrivateMatchesControl   DestinyActivityModeType = 52
	ActivityModePrivateMatchesSupremacy DestinyActivityModeType = 53
	ActivityModePrivateMatchesCountdown DestinyActivityModeType = 54
	ActivityModePrivateMatchesSurvival  DestinyActivityModeType = 55
	ActivityModePrivateMatchesMayhem    DestinyActivityModeType = 56
	ActivityModePrivateMatchesRumble    DestinyActivityModeType = 57
	ActivityModeHeroicAdventure         DestinyActivityModeType = 58
	ActivityModeShowdown                DestinyActivityModeType = 59
	ActivityModeLockdown                DestinyActivityModeType = 60
	ActivityModeScorched                DestinyActivityModeType = 61
	ActivityModeScorchedTeam            DestinyActivityModeType = 62
	ActivityModeGambit                  DestinyActivityModeType = 63
	ActivityModeAllPvECompetitive       DestinyActivityModeType = 64
	ActivityModeBreakthrough            DestinyActivityModeType = 65
	ActivityModeBlackArmoryRun          DestinyActivityModeType = 66
	ActivityModeSalvage                 DestinyActivityModeType = 67
	ActivityModeIronBannerSalvage       DestinyActivityModeType = 68
	ActivityModePvPCompetitive          DestinyActivityModeType = 69
	ActivityModePvPQuickplay            DestinyActivityModeType = 70
	ActivityModeClashQuickplay          DestinyActivityModeType = 71
	ActivityModeClashCompetitive        DestinyActivityModeType = 72
	ActivityModeControlQuickplay        DestinyActivityModeType = 73
	ActivityModeControlCompetitive      DestinyActivityModeType = 74
	ActivityModeGambitPrime             DestinyActivityModeType = 75
	ActivityModeReckoning               DestinyActivityModeType = 76
	ActivityModeMenagerie               DestinyActivityModeType = 77
	ActivityModeVexOffensive            DestinyActivityModeType = 78
	ActivityModeNightmareHunt           DestinyActivityModeType = 79
	ActivityModeElimination             DestinyActivityModeType = 80
	ActivityModeMomentum                DestinyActivityModeType = 81
	ActivityModeDungeon                 DestinyActivityModeType = 82
	ActivityModeSundial                 DestinyActivityModeType = 83
	ActivityModeTrialsOfOsiris          DestinyActivityModeType = 84
	ActivityModeDares                   DestinyActivityModeType = 85
	ActivityModeOffensive               DestinyActivityModeType = 86
	ActivityModeLostSector              DestinyActivityModeType = 87
	ActivityModeRift                    DestinyActivityModeType = 88
	ActivityModeZoneControl             DestinyActivityModeType = 89
	ActivityModeIronBannerRift          DestinyActivityModeType = 90
	ActivityModeIronBannerZoneControl   DestinyActivityModeType = 91
)

// DestinyStatsGroupType is the bit-incompatible (single-select) group
// selector for historical stats queries.
type DestinyStatsGroupType int32

const (
	StatsGroupNone           DestinyStatsGroupType = 0
	StatsGroupGeneral        DestinyStatsGroupType = 1
	StatsGroupWeapons        DestinyStatsGroupType = 2
	StatsGroupMedals         DestinyStatsGroupType = 3
	StatsGroupReservedGroups DestinyStatsGroupType = 100
	StatsGroupLeaderboard    DestinyStatsGroupType = 101
	StatsGroupActivity       DestinyStatsGroupType = 102
	StatsGroupUniqueWeapon   DestinyStatsGroupType = 103
	StatsGroupInternal       DestinyStatsGroupType = 104
)

// PeriodType is the aggregation window for historical stats.
type PeriodType int32

const (
	PeriodNone     PeriodType = 0
	PeriodDaily    PeriodType = 1
	PeriodAllTime  PeriodType = 2
	PeriodActivity PeriodType = 3
)

// UnitType is the unit a historical stat is measured in.
type UnitType int32

const (
	UnitNone             UnitType = 0
	UnitCount            UnitType = 1
	UnitPerGame          UnitType = 2
	UnitSeconds          UnitType = 3
	UnitPoints           UnitType = 4
	UnitTeam             UnitType = 5
	UnitDistance         UnitType = 6
	UnitPercent          UnitType = 7
	UnitRatio            UnitType = 8
	UnitBoolean          UnitType = 9
	UnitWeaponType       UnitType = 10
	UnitStanding         UnitType = 11
	UnitMilliseconds     UnitType = 12
	UnitCompletionReason UnitType = 13
)

// DestinyHistoricalStatsDefinition describes one historical stat.
type DestinyHistoricalStatsDefinition struct {
	StatId              string                    `json:"statId,omitempty"`
	Group               DestinyStatsGroupType     `json:"group"`
	PeriodTypes         []PeriodType              `json:"periodTypes,omitempty"`
	Modes               []DestinyActivityModeType `json:"modes,omitempty"`
	Category            int32                     `json:"category"`
	StatName            string                    `json:"statName,omitempty"`
	StatNameAbbreviated string                    `json:"statNameAbbreviated,omitempty"`
	StatDescription     string                    `json:"statDescription,omitempty"`
	UnitType            UnitType                  `json:"unitType"`
	IconImage           string                    `json:"iconImage,omitempty"`
	MergeMethod         *int32                    `json:"mergeMethod,omitempty"`
	UnitLabel           string                    `json:"unitLabel,omitempty"`
	Weight              float32                   `json:"weight"`
	MedalTierHash       *uint32                   `json:"medalTierHash,omitempty"`
}

// DestinyHistoricalStatsValuePair is a raw stat value with its display
// form.
type DestinyHistoricalStatsValuePair struct {
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue,omitempty"`
}

// DestinyHistoricalStatsValue is one stat including optional per-game
// average and weight.
type DestinyHistoricalStatsValue struct {
	StatId     string                           `json:"statId,omitempty"`
	Basic      DestinyHistoricalStatsValuePair  `json:"basic"`
	Pga        *DestinyHistoricalStatsValuePair `json:"pga,omitempty"`
	Weighted   *DestinyHistoricalStatsValuePair `json:"weighted,omitempty"`
	ActivityId *int64                           `json:"activityId,omitempty,string"`
}

// DestinyHistoricalStatsPeriodGroup is one period bucket of stats.
type DestinyHistoricalStatsPeriodGroup struct {
	Period          time.Time                              `json:"period"`
	ActivityDetails *DestinyHistoricalStatsActivity        `json:"activityDetails,omitempty"`
	Values          map[string]DestinyHistoricalStatsValue `json:"values,omitempty"`
}

// DestinyHistoricalStatsByPeriod groups stats by aggregation window.
type DestinyHistoricalStatsByPeriod struct {
	AllTime      map[string]DestinyHistoricalStatsValue `json:"allTime,omitempty"`
	AllTimeTier1 map[string]DestinyHistoricalStatsValue `json:"allTimeTier1,omitempty"`
	AllTimeTier2 map[string]DestinyHistoricalStatsValue `json:"allTimeTier2,omitempty"`
	AllTimeTier3 map[string]DestinyHistoricalStatsValue `json:"allTimeTier3,omitempty"`
	Daily        []DestinyHistoricalStatsPeriodGroup    `json:"daily,omitempty"`
	Monthly      []DestinyHistoricalStatsPeriodGroup    `json:"monthly,omitempty"`
}

// DestinyHistoricalStatsActivity identifies the activity instance a
// stats entry came from.
type DestinyHistoricalStatsActivity struct {
	ReferenceId          uint32                    `json:"referenceId"`
	DirectorActivityHash uint32                    `json:"directorActivityHash"`
	InstanceId           int64                     `json:"instanceId,string"`
	Mode                 DestinyActivityModeType   `json:"mode"`
	Modes                []DestinyActivityModeType `json:"modes,omitempty"`
	IsPrivate            bool                      `json:"isPrivate"`
	MembershipType       BungieMembershipType      `json:"membershipType"`
}

// DestinyPlayer identifies a player in a post game carnage report.
type DestinyPlayer struct {
	DestinyUserInfo   *UserInfoCard `json:"destinyUserInfo,omitempty"`
	CharacterClass    string        `json:"characterClass,omitempty"`
	ClassHash         uint32        `json:"classHash"`
	RaceHash          uint32        `json:"raceHash"`
	GenderHash        uint32        `json:"genderHash"`
	CharacterLevel    int32         `json:"characterLevel"`
	LightLevel        int32         `json:"lightLevel"`
	BungieNetUserInfo *UserInfoCard `json:"bungieNetUserInfo,omitempty"`
	ClanName          string        `json:"clanName,omitempty"`
	ClanTag           string        `json:"clanTag,omitempty"`
	EmblemHash        uint32        `json:"emblemHash"`
}

// DestinyPostGameCarnageReportExtendedData carries weapon and extra
// stat values for one PGCR entry.
type DestinyPostGameCarnageReportExtendedData struct {
	Weapons []DestinyHistoricalWeaponStats         `json:"weapons,omitempty"`
	Values  map[string]DestinyHistoricalStatsValue `json:"values,omitempty"`
}

// DestinyPostGameCarnageReportEntry is one player's results in a PGCR.
type DestinyPostGameCarnageReportEntry struct {
	Standing    int32                                     `json:"standing"`
	Score       *DestinyHistoricalStatsValue              `json:"score,omitempty"`
	Player      *DestinyPlayer                            `json:"player,omitempty"`
	CharacterId int64                                     `json:"characterId,string"`
	Values      map[string]DestinyHistoricalStatsValue    `json:"values,omitempty"`
	Extended    *DestinyPostGameCarnageReportExtendedData `json:"extended,omitempty"`
}

// DestinyPostGameCarnageReportTeamEntry is one team's results in a PGCR.
type DestinyPostGameCarnageReportTeamEntry struct {
	TeamId   int32                        `json:"teamId"`
	Standing *DestinyHistoricalStatsValue `json:"standing,omitempty"`
	Score    *DestinyHistoricalStatsValue `json:"score,omitempty"`
	TeamName string                       `json:"teamName,omitempty"`
}

// DestinyPostGameCarnageReportData is a complete post game carnage
// report.
type DestinyPostGameCarnageReportData struct {
	Period                          time.Time                               `json:"period"`
	StartingPhaseIndex              *int32                                  `json:"startingPhaseIndex,omitempty"`
	ActivityWasStartedFromBeginning *bool                                   `json:"activityWasStartedFromBeginning,omitempty"`
	ActivityDetails                 *DestinyHistoricalStatsActivity         `json:"activityDetails,omitempty"`
	Entries                         []DestinyPostGameCarnageReportEntry     `json:"entries,omitempty"`
	Teams                           []DestinyPostGameCarnageReportTeamEntry `json:"teams,omitempty"`
}

// DestinyReportOffensePgcrRequest reports a player in a PGCR for
// offensive behavior.
type DestinyReportOffensePgcrRequest struct {
	ReasonCategoryHashes []uint32 `json:"reasonCategoryHashes,omitempty"`
	ReasonHashes         []uint32 `json:"reasonHashes,omitempty"`
	OffendingCharacterId int64    `json:"offendingCharacterId,string"`
}

// DestinyHistoricalStatsAccountResult is the account-wide historical
// stats payload.
type DestinyHistoricalStatsAccountResult struct {
	MergedDeletedCharacters *DestinyHistoricalStatsWithMerged    `json:"mergedDeletedCharacters,omitempty"`
	MergedAllCharacters     *DestinyHistoricalStatsWithMerged    `json:"mergedAllCharacters,omitempty"`
	Characters              []DestinyHistoricalStatsPerCharacter `json:"characters,omitempty"`
}

// DestinyHistoricalStatsWithMerged merges stats across characters.
type DestinyHistoricalStatsWithMerged struct {
	Results map[string]DestinyHistoricalStatsByPeriod `json:"results,omitempty"`
	Merged  *DestinyHistoricalStatsByPeriod           `json:"merged,omitempty"`
}

// DestinyHistoricalStatsPerCharacter is one character's slice of the
// account stats payload.
type DestinyHistoricalStatsPerCharacter struct {
	CharacterId int64                                     `json:"characterId,string"`
	Deleted     bool                                      `json:"deleted"`
	Results     map[string]DestinyHistoricalStatsByPeriod `json:"results,omitempty"`
	Merged      *DestinyHistoricalStatsByPeriod           `json:"merged,omitempty"`
}

// DestinyActivityHistoryResults is a page of played activities.
type DestinyActivityHistoryResults struct {
	Activities []DestinyHistoricalStatsPeriodGroup `json:"activities,omitempty"`
}

// DestinyHistoricalWeaponStats is the usage stats of one weapon.
type DestinyHistoricalWeaponStats struct {
	ReferenceId uint32                                 `json:"referenceId"`
	Values      map[string]DestinyHistoricalStatsValue `json:"values,omitempty"`
}

// DestinyHistoricalWeaponStatsData is the unique weapon history
// payload.
type DestinyHistoricalWeaponStatsData struct {
	Weapons []DestinyHistoricalWeaponStats `json:"weapons,omitempty"`
}

// DestinyAggregateActivityStats is lifetime stats against one activity.
type DestinyAggregateActivityStats struct {
	ActivityHash uint32                                 `json:"activityHash"`
	Values       map[string]DestinyHistoricalStatsValue `json:"values,omitempty"`
}

// DestinyAggregateActivityResults is the aggregate activity stats
// payload.
type DestinyAggregateActivityResults struct {
	Activities []DestinyAggregateActivityStats `json:"activities,omitempty"`
}
