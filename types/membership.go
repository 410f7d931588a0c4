package types

// BungieMembershipType identifies the platform a membership belongs to.
type BungieMembershipType int32

const (
	MembershipTypeNone          BungieMembershipType = 0
	MembershipTypeTigerXbox     BungieMembershipType = 1
	MembershipTypeTigerPsn      BungieMembershipType = 2
	MembershipTypeTigerSteam    BungieMembershipType = 3
	MembershipTypeTigerBlizzard BungieMembershipType = 4
	MembershipTypeTigerStadia   BungieMembershipType = 5
	MembershipTypeTigerEgs      BungieMembershipType = 6
	MembershipTypeTigerDemon    BungieMembershipType = 10
	MembershipTypeBungieNext    BungieMembershipType = 254

	// MembershipTypeAll is only valid for searching capabilities.
	MembershipTypeAll BungieMembershipType = -1
)

// BungieCredentialType identifies an external credential linked to a
// Bungie.net account.
type BungieCredentialType int32

const (
	CredentialTypeNone        BungieCredentialType = 0
	CredentialTypeXuid        BungieCredentialType = 1
	CredentialTypePsnid       BungieCredentialType = 2
	CredentialTypeWlid        BungieCredentialType = 3
	CredentialTypeFake        BungieCredentialType = 4
	CredentialTypeFacebook    BungieCredentialType = 5
	CredentialTypeGoogle      BungieCredentialType = 8
	CredentialTypeWindows     BungieCredentialType = 9
	CredentialTypeDemonId     BungieCredentialType = 10
	CredentialTypeSteamId     BungieCredentialType = 12
	CredentialTypeBattleNetId BungieCredentialType = 14
	CredentialTypeStadiaId    BungieCredentialType = 16
	CredentialTypeTwitchId    BungieCredentialType = 18
	CredentialTypeEgsId       BungieCredentialType = 20
)
