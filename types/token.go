package types

// BungieTokenResponse is the OAuth token endpoint payload. Unlike every
// other Platform response it is not wrapped in the standard envelope.
type BungieTokenResponse struct {
	AccessToken      string `json:"access_token,omitempty"`
	TokenType        string `json:"token_type,omitempty"`
	ExpiresIn        int32  `json:"expires_in"`
	RefreshToken     string `json:"refresh_token,omitempty"`
	RefreshExpiresIn int32  `json:"refresh_expires_in"`
	MembershipId     int64  `json:"membership_id,string"`
}
