package types

import "time"

// DestinyMilestoneActivityVariant is one difficulty variant of a
// milestone activity.
type DestinyMilestoneActivityVariant struct {
	ActivityHash     uint32                                    `json:"activityHash"`
	CompletionStatus *DestinyMilestoneActivityCompletionStatus `json:"completionStatus,omitempty"`
	ActivityModeHash *uint32                                   `json:"activityModeHash,omitempty"`
	ActivityModeType *int32                                    `json:"activityModeType,omitempty"`
}

// DestinyMilestoneActivityPhase is one phase of a milestone activity.
type DestinyMilestoneActivityPhase struct {
	Complete  bool   `json:"complete"`
	PhaseHash uint32 `json:"phaseHash"`
}

// DestinyMilestoneActivityCompletionStatus reports per-phase completion
// of a milestone activity.
type DestinyMilestoneActivityCompletionStatus struct {
	Completed bool                            `json:"completed"`
	Phases    []DestinyMilestoneActivityPhase `json:"phases,omitempty"`
}

// DestinyMilestoneActivity is the activity a milestone quest plays out
// in.
type DestinyMilestoneActivity struct {
	ActivityHash     uint32                            `json:"activityHash"`
	ActivityModeHash *uint32                           `json:"activityModeHash,omitempty"`
	ActivityModeType *int32                            `json:"activityModeType,omitempty"`
	ModifierHashes   []uint32                          `json:"modifierHashes,omitempty"`
	Variants         []DestinyMilestoneActivityVariant `json:"variants,omitempty"`
}

// DestinyMilestoneQuest is a quest tied to a milestone, with its live
// status for the requesting character.
type DestinyMilestoneQuest struct {
	QuestItemHash uint32                    `json:"questItemHash"`
	Status        *DestinyQuestStatus       `json:"status,omitempty"`
	Activity      *DestinyMilestoneActivity `json:"activity,omitempty"`
	Challenges    []DestinyChallengeStatus  `json:"challenges,omitempty"`
}

// DestinyMilestoneChallengeActivity is one challenge-bearing activity
// of a milestone.
type DestinyMilestoneChallengeActivity struct {
	ActivityHash            uint32                          `json:"activityHash"`
	Challenges              []DestinyChallengeStatus        `json:"challenges,omitempty"`
	ModifierHashes          []uint32                        `json:"modifierHashes,omitempty"`
	BoothHash               *uint32                         `json:"boothHash,omitempty"`
	LoadoutRequirementIndex *int32                          `json:"loadoutRequirementIndex,omitempty"`
	Phases                  []DestinyMilestoneActivityPhase `json:"phases,omitempty"`
}

// DestinyMilestoneVendor is a vendor surfaced by a milestone.
type DestinyMilestoneVendor struct {
	VendorHash      uint32  `json:"vendorHash"`
	PreviewItemHash *uint32 `json:"previewItemHash,omitempty"`
}

// DestinyMilestoneRewardEntry is one claimable reward in a milestone
// reward category.
type DestinyMilestoneRewardEntry struct {
	RewardEntryHash uint32 `json:"rewardEntryHash"`
	Earned          bool   `json:"earned"`
	Redeemed        bool   `json:"redeemed"`
}

// DestinyMilestoneRewardCategory groups a milestone's reward entries.
type DestinyMilestoneRewardCategory struct {
	RewardCategoryHash uint32                        `json:"rewardCategoryHash"`
	Entries            []DestinyMilestoneRewardEntry `json:"entries,omitempty"`
}

// DestinyMilestone is the live state of a milestone for a character.
type DestinyMilestone struct {
	MilestoneHash   uint32                              `json:"milestoneHash"`
	AvailableQuests []DestinyMilestoneQuest             `json:"availableQuests,omitempty"`
	Activities      []DestinyMilestoneChallengeActivity `json:"activities,omitempty"`
	Values          map[string]float32                  `json:"values,omitempty"`
	VendorHashes    []uint32                            `json:"vendorHashes,omitempty"`
	Vendors         []DestinyMilestoneVendor            `json:"vendors,omitempty"`
	Rewards         []DestinyMilestoneRewardCategory    `json:"rewards,omitempty"`
	StartDate       *time.Time                          `json:"startDate,omitempty"`
	EndDate         *time.Time                          `json:"endDate,omitempty"`
	Order           int32                               `json:"order"`
}

// DestinyPublicMilestoneQuest is the public (characterless) view of a
// milestone quest.
type DestinyPublicMilestoneQuest struct {
	QuestItemHash uint32                            `json:"questItemHash"`
	Activity      *DestinyPublicMilestoneActivity   `json:"activity,omitempty"`
	Challenges    []DestinyPublicMilestoneChallenge `json:"challenges,omitempty"`
}

// DestinyPublicMilestoneActivity is the public view of a milestone
// activity.
type DestinyPublicMilestoneActivity struct {
	ActivityHash     uint32                                  `json:"activityHash"`
	ModifierHashes   []uint32                                `json:"modifierHashes,omitempty"`
	Variants         []DestinyPublicMilestoneActivityVariant `json:"variants,omitempty"`
	ActivityModeHash *uint32                                 `json:"activityModeHash,omitempty"`
	ActivityModeType *int32                                  `json:"activityModeType,omitempty"`
}

// DestinyPublicMilestoneActivityVariant is one public variant of a
// milestone activity.
type DestinyPublicMilestoneActivityVariant struct {
	ActivityHash     uint32  `json:"activityHash"`
	ActivityModeHash *uint32 `json:"activityModeHash,omitempty"`
	ActivityModeType *int32  `json:"activityModeType,omitempty"`
}

// DestinyPublicMilestoneChallenge is the public view of an activity
// challenge.
type DestinyPublicMilestoneChallenge struct {
	ObjectiveHash uint32  `json:"objectiveHash"`
	ActivityHash  *uint32 `json:"activityHash,omitempty"`
}

// DestinyPublicMilestoneChallengeActivity is a challenge-bearing
// activity in the public milestone view.
type DestinyPublicMilestoneChallengeActivity struct {
	ActivityHash             uint32   `json:"activityHash"`
	ChallengeObjectiveHashes []uint32 `json:"challengeObjectiveHashes,omitempty"`
	ModifierHashes           []uint32 `json:"modifierHashes,omitempty"`
	LoadoutRequirementIndex  *int32   `json:"loadoutRequirementIndex,omitempty"`
	PhaseHashes              []uint32 `json:"phaseHashes,omitempty"`
	BoothHash                *uint32  `json:"boothHash,omitempty"`
}

// DestinyPublicMilestoneVendor is a vendor surfaced by a public
// milestone.
type DestinyPublicMilestoneVendor struct {
	VendorHash      uint32  `json:"vendorHash"`
	PreviewItemHash *uint32 `json:"previewItemHash,omitempty"`
}

// DestinyPublicMilestone is the account-independent state of a
// milestone.
type DestinyPublicMilestone struct {
	MilestoneHash   uint32                                    `json:"milestoneHash"`
	AvailableQuests []DestinyPublicMilestoneQuest             `json:"availableQuests,omitempty"`
	Activities      []DestinyPublicMilestoneChallengeActivity `json:"activities,omitempty"`
	VendorHashes    []uint32                                  `json:"vendorHashes,omitempty"`
	Vendors         []DestinyPublicMilestoneVendor            `json:"vendors,omitempty"`
	StartDate       *time.Time                                `json:"startDate,omitempty"`
	EndDate         *time.Time                                `json:"endDate,omitempty"`
	Order           int32                                     `json:"order"`
}

// DestinyMilestoneContentItemCategory groups the items relevant to a
// milestone under a title.
type DestinyMilestoneContentItemCategory struct {
	Title      string   `json:"title,omitempty"`
	ItemHashes []uint32 `json:"itemHashes,omitempty"`
}

// DestinyMilestoneContent is the editorial content backing a milestone.
type DestinyMilestoneContent struct {
	About          string                                `json:"about,omitempty"`
	Status         string                                `json:"status,omitempty"`
	Tips           []string                              `json:"tips,omitempty"`
	ItemCategories []DestinyMilestoneContentItemCategory `json:"itemCategories,omitempty"`
}
