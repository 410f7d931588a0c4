package types

import "time"

// ApplicationScopes is the bit-flag set of permissions an application
// can request. Combine flags with bitwise OR.
type ApplicationScopes uint64

const (
	ScopeReadBasicUserProfile          ApplicationScopes = 1
	ScopeReadGroups                    ApplicationScopes = 2
	ScopeWriteGroups                   ApplicationScopes = 4
	ScopeAdminGroups                   ApplicationScopes = 8
	ScopeBnetWrite                     ApplicationScopes = 16
	ScopeMoveEquipDestinyItems         ApplicationScopes = 32
	ScopeReadDestinyInventoryAndVault  ApplicationScopes = 64
	ScopeReadUserData                  ApplicationScopes = 128
	ScopeEditUserData                  ApplicationScopes = 256
	ScopeReadDestinyVendorsAndAdvisors ApplicationScopes = 512
	ScopeReadAndApplyTokens            ApplicationScopes = 1024
	ScopeAdvancedWriteActions          ApplicationScopes = 2048
	ScopePartnerOfferGrant             ApplicationScopes = 4096
	ScopeDestinyUnlockValueQuery       ApplicationScopes = 8192
	ScopeUserPiiRead                   ApplicationScopes = 16384
)

// ApplicationStatus is the lifecycle state of a registered application.
type ApplicationStatus int32

const (
	ApplicationStatusNone     ApplicationStatus = 0
	ApplicationStatusPrivate  ApplicationStatus = 1
	ApplicationStatusPublic   ApplicationStatus = 2
	ApplicationStatusDisabled ApplicationStatus = 3
	ApplicationStatusBlocked  ApplicationStatus = 4
)

// DeveloperRole is a team member's role on an application.
type DeveloperRole int32

const (
	DeveloperRoleNone       DeveloperRole = 0
	DeveloperRoleOwner      DeveloperRole = 1
	DeveloperRoleTeamMember DeveloperRole = 2
)

// Datapoint is a single time-bucketed usage sample.
type Datapoint struct {
	Time  time.Time `json:"time"`
	Count *float64  `json:"count,omitempty"`
}

// Series is a named sequence of usage datapoints.
type Series struct {
	Datapoints []Datapoint `json:"datapoints,omitempty"`
	Target     string      `json:"target,omitempty"`
}

// ApiUsage reports API call and throttle counts for an application over
// a requested time window.
type ApiUsage struct {
	ApiCalls          []Series `json:"apiCalls,omitempty"`
	ThrottledRequests []Series `json:"throttledRequests,omitempty"`
}

// ApplicationDeveloper is a member of an application's team.
type ApplicationDeveloper struct {
	Role          DeveloperRole `json:"role"`
	ApiEuaVersion int32         `json:"apiEuaVersion"`
	User          *UserInfoCard `json:"user,omitempty"`
}

// Application is a registered Bungie.net application.
type Application struct {
	ApplicationId             int32                  `json:"applicationId"`
	Name                      string                 `json:"name,omitempty"`
	RedirectUrl               string                 `json:"redirectUrl,omitempty"`
	Link                      string                 `json:"link,omitempty"`
	Scope                     int64                  `json:"scope,string"`
	Origin                    string                 `json:"origin,omitempty"`
	Status                    ApplicationStatus      `json:"status"`
	CreationDate              time.Time              `json:"creationDate"`
	StatusChanged             time.Time              `json:"statusChanged"`
	FirstPublished            time.Time              `json:"firstPublished"`
	Team                      []ApplicationDeveloper `json:"team,omitempty"`
	OverrideAuthorizeViewName string                 `json:"overrideAuthorizeViewName,omitempty"`
}
