package types

import "time"

// AwaType is the category of advanced write action being authorized.
type AwaType int32

const (
	AwaTypeNone        AwaType = 0
	AwaTypeInsertPlugs AwaType = 1
	AwaTypeDismantle   AwaType = 2
)

// AwaUserSelection is the user's answer to an authorization request.
type AwaUserSelection int32

const (
	AwaSelectionNone     AwaUserSelection = 0
	AwaSelectionRejected AwaUserSelection = 1
	AwaSelectionApproved AwaUserSelection = 2
)

// AwaResponseReason explains how an authorization request concluded.
type AwaResponseReason int32

const (
	AwaReasonNone     AwaResponseReason = 0
	AwaReasonAnswered AwaResponseReason = 1
	AwaReasonTimedOut AwaResponseReason = 2
	AwaReasonReplaced AwaResponseReason = 3
)

// AwaPermissionRequested initiates an advanced write action
// authorization.
type AwaPermissionRequested struct {
	Type           AwaType              `json:"type"`
	AffectedItemId *int64               `json:"affectedItemId,omitempty,string"`
	MembershipType BungieMembershipType `json:"membershipType"`
	CharacterId    *int64               `json:"characterId,omitempty,string"`
}

// AwaInitializeResponse acknowledges an authorization request.
type AwaInitializeResponse struct {
	CorrelationId string `json:"correlationId,omitempty"`
	SentToSelf    bool   `json:"sentToSelf"`
}

// AwaUserResponse is the companion-app answer to an authorization
// request.
type AwaUserResponse struct {
	Selection     AwaUserSelection `json:"selection"`
	CorrelationId string           `json:"correlationId,omitempty"`
	Nonce         []int32          `json:"nonce,omitempty"`
}

// AwaAuthorizationResult is the final outcome of an authorization
// request, including the action token when approved.
type AwaAuthorizationResult struct {
	UserSelection       AwaUserSelection     `json:"userSelection"`
	ResponseReason      AwaResponseReason    `json:"responseReason"`
	DeveloperNote       string               `json:"developerNote,omitempty"`
	ActionToken         string               `json:"actionToken,omitempty"`
	MaximumNumberOfUses int32                `json:"maximumNumberOfUses"`
	ValidUntil          *time.Time           `json:"validUntil,omitempty"`
	Type                AwaType              `json:"type"`
	MembershipType      BungieMembershipType `json:"membershipType"`
}
