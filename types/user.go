package types

import "time"

// IgnoreStatus is the bit-flag set describing why a user or item is
// ignored.
type IgnoreStatus uint32

const (
	IgnoredUser    IgnoreStatus = 1
	IgnoredGroup   IgnoreStatus = 2
	IgnoredByGroup IgnoreStatus = 4
	IgnoredPost    IgnoreStatus = 8
	IgnoredTag     IgnoreStatus = 16
	IgnoredGlobal  IgnoreStatus = 32
)

// OptInFlags is the bit-flag set of email opt-in categories.
type OptInFlags uint64

const (
	OptInNewsletter      OptInFlags = 1
	OptInSystem          OptInFlags = 2
	OptInMarketing       OptInFlags = 4
	OptInUserResearch    OptInFlags = 8
	OptInCustomerService OptInFlags = 16
	OptInSocial          OptInFlags = 32
	OptInPlayTests       OptInFlags = 64
	OptInPlayTestsLocal  OptInFlags = 128
	OptInCareers         OptInFlags = 256
)

// IgnoreResponse reports the caller's ignore state toward another user.
type IgnoreResponse struct {
	IsIgnored   bool         `json:"isIgnored"`
	IgnoreFlags IgnoreStatus `json:"ignoreFlags"`
}

// UserToUserContext carries relationship data between the requesting
// user and the user being viewed.
type UserToUserContext struct {
	IsFollowing         bool            `json:"isFollowing"`
	IgnoreStatus        *IgnoreResponse `json:"ignoreStatus,omitempty"`
	GlobalIgnoreEndDate *time.Time      `json:"globalIgnoreEndDate,omitempty"`
}

// GeneralUser is a full Bungie.net user profile.
type GeneralUser struct {
	MembershipId                      int64              `json:"membershipId,string"`
	UniqueName                        string             `json:"uniqueName,omitempty"`
	NormalizedName                    string             `json:"normalizedName,omitempty"`
	DisplayName                       string             `json:"displayName,omitempty"`
	ProfilePicture                    int32              `json:"profilePicture"`
	ProfileTheme                      int32              `json:"profileTheme"`
	UserTitle                         int32              `json:"userTitle"`
	SuccessMessageFlags               int64              `json:"successMessageFlags,string"`
	IsDeleted                         bool               `json:"isDeleted"`
	About                             string             `json:"about,omitempty"`
	FirstAccess                       *time.Time         `json:"firstAccess,omitempty"`
	LastUpdate                        *time.Time         `json:"lastUpdate,omitempty"`
	LegacyPortalUID                   *int64             `json:"legacyPortalUID,omitempty,string"`
	Context                           *UserToUserContext `json:"context,omitempty"`
	PsnDisplayName                    string             `json:"psnDisplayName,omitempty"`
	XboxDisplayName                   string             `json:"xboxDisplayName,omitempty"`
	FbDisplayName                     string             `json:"fbDisplayName,omitempty"`
	ShowActivity                      *bool              `json:"showActivity,omitempty"`
	Locale                            string             `json:"locale,omitempty"`
	LocaleInheritDefault              bool               `json:"localeInheritDefault"`
	LastBanReportId                   *int64             `json:"lastBanReportId,omitempty,string"`
	ShowGroupMessaging                bool               `json:"showGroupMessaging"`
	ProfilePicturePath                string             `json:"profilePicturePath,omitempty"`
	ProfilePictureWidePath            string             `json:"profilePictureWidePath,omitempty"`
	ProfileThemeName                  string             `json:"profileThemeName,omitempty"`
	UserTitleDisplay                  string             `json:"userTitleDisplay,omitempty"`
	StatusText                        string             `json:"statusText,omitempty"`
	StatusDate                        time.Time          `json:"statusDate"`
	ProfileBanExpire                  *time.Time         `json:"profileBanExpire,omitempty"`
	BlizzardDisplayName               string             `json:"blizzardDisplayName,omitempty"`
	SteamDisplayName                  string             `json:"steamDisplayName,omitempty"`
	StadiaDisplayName                 string             `json:"stadiaDisplayName,omitempty"`
	TwitchDisplayName                 string             `json:"twitchDisplayName,omitempty"`
	CachedBungieGlobalDisplayName     string             `json:"cachedBungieGlobalDisplayName,omitempty"`
	CachedBungieGlobalDisplayNameCode *int16             `json:"cachedBungieGlobalDisplayNameCode,omitempty"`
	EgsDisplayName                    string             `json:"egsDisplayName,omitempty"`
}

// UserInfoCard is the compact membership card used across the API
// wherever a platform identity is referenced.
type UserInfoCard struct {
	SupplementalDisplayName     string                 `json:"supplementalDisplayName,omitempty"`
	IconPath                    string                 `json:"iconPath,omitempty"`
	CrossSaveOverride           BungieMembershipType   `json:"crossSaveOverride"`
	ApplicableMembershipTypes   []BungieMembershipType `json:"applicableMembershipTypes,omitempty"`
	IsPublic                    bool                   `json:"isPublic"`
	MembershipType              BungieMembershipType   `json:"membershipType"`
	MembershipId                int64                  `json:"membershipId,string"`
	DisplayName                 string                 `json:"displayName,omitempty"`
	BungieGlobalDisplayName     string                 `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode *int16                 `json:"bungieGlobalDisplayNameCode,omitempty"`
}

// GroupUserInfoCard extends UserInfoCard with the platform-specific
// display name the user was last seen under.
type GroupUserInfoCard struct {
	LastSeenDisplayName         string                 `json:"LastSeenDisplayName,omitempty"`
	LastSeenDisplayNameType     BungieMembershipType   `json:"LastSeenDisplayNameType"`
	SupplementalDisplayName     string                 `json:"supplementalDisplayName,omitempty"`
	IconPath                    string                 `json:"iconPath,omitempty"`
	CrossSaveOverride           BungieMembershipType   `json:"crossSaveOverride"`
	ApplicableMembershipTypes   []BungieMembershipType `json:"applicableMembershipTypes,omitempty"`
	IsPublic                    bool                   `json:"isPublic"`
	MembershipType              BungieMembershipType   `json:"membershipType"`
	MembershipId                int64                  `json:"membershipId,string"`
	DisplayName                 string                 `json:"displayName,omitempty"`
	BungieGlobalDisplayName     string                 `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode *int16                 `json:"bungieGlobalDisplayNameCode,omitempty"`
}

// UserMembershipData bundles all platform memberships for a user along
// with the Bungie.net profile.
type UserMembershipData struct {
	DestinyMemberships  []GroupUserInfoCard `json:"destinyMemberships,omitempty"`
	PrimaryMembershipId *int64              `json:"primaryMembershipId,omitempty,string"`
	BungieNetUser       *GeneralUser        `json:"bungieNetUser,omitempty"`
}

// HardLinkedUserMembership is the result of resolving a hard-linked
// platform credential to a membership.
type HardLinkedUserMembership struct {
	MembershipType                  BungieMembershipType `json:"membershipType"`
	MembershipId                    int64                `json:"membershipId,string"`
	CrossSaveOverriddenType         BungieMembershipType `json:"CrossSaveOverriddenType"`
	CrossSaveOverriddenMembershipId *int64               `json:"CrossSaveOverriddenMembershipId,omitempty,string"`
}

// UserSearchPrefixRequest is the body of the global display name search.
type UserSearchPrefixRequest struct {
	DisplayNamePrefix string `json:"displayNamePrefix"`
}

// ExactSearchRequest identifies a player by exact global display name
// and code.
type ExactSearchRequest struct {
	DisplayName     string `json:"displayName"`
	DisplayNameCode int16  `json:"displayNameCode"`
}

// UserSearchResponseDetail is one hit in a global display name search.
type UserSearchResponseDetail struct {
	BungieGlobalDisplayName     string         `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode *int16         `json:"bungieGlobalDisplayNameCode,omitempty"`
	BungieNetMembershipId       *int64         `json:"bungieNetMembershipId,omitempty,string"`
	DestinyMemberships          []UserInfoCard `json:"destinyMemberships,omitempty"`
}

// UserSearchResponse is a page of global display name search results.
type UserSearchResponse struct {
	SearchResults []UserSearchResponseDetail `json:"searchResults,omitempty"`
	Page          int32                      `json:"page"`
	HasMore       bool                       `json:"hasMore"`
}

// GetCredentialTypesForAccountResponse describes one linked credential
// on an account.
type GetCredentialTypesForAccountResponse struct {
	CredentialType        BungieCredentialType `json:"credentialType"`
	CredentialDisplayName string               `json:"credentialDisplayName,omitempty"`
	IsPublic              bool                 `json:"isPublic"`
	CredentialAsString    string               `json:"credentialAsString,omitempty"`
}

// UserTheme is a selectable Bungie.net profile theme.
type UserTheme struct {
	UserThemeId          int32  `json:"userThemeId"`
	UserThemeName        string `json:"userThemeName,omitempty"`
	UserThemeDescription string `json:"userThemeDescription,omitempty"`
}
