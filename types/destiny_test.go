package types

import (
	"encoding/json"
	"testing"
)

func TestItemState_Flags(t *testing.T) {
	var item DestinyItemComponent
	if err := json.Unmarshal([]byte(`{"itemHash": 691752909, "state": 5}`), &item); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if item.State&ItemStateLocked == 0 {
		t.Error("Locked flag not set")
	}
	if item.State&ItemStateMasterwork == 0 {
		t.Error("Masterwork flag not set")
	}
	if item.State&ItemStateTracked != 0 {
		t.Error("Tracked flag unexpectedly set")
	}
}

func TestTransferStatuses_ZeroMeansTransferable(t *testing.T) {
	var status TransferStatuses
	if err := json.Unmarshal([]byte(`0`), &status); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if status != 0 {
		t.Errorf("status = %d", status)
	}

	if err := json.Unmarshal([]byte(`3`), &status); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if status&TransferStatusItemIsEquipped == 0 || status&TransferStatusNotTransferrable == 0 {
		t.Errorf("status = %b, want ItemIsEquipped|NotTransferrable", status)
	}
}

func TestMembershipType_NegativeAll(t *testing.T) {
	var mt BungieMembershipType
	if err := json.Unmarshal([]byte(`-1`), &mt); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if mt != MembershipTypeAll {
		t.Errorf("mt = %d, want MembershipTypeAll", mt)
	}
}

func TestDestinyGameVersions_Combination(t *testing.T) {
	// 127 covers the base game through Lightfall.
	var versions DestinyGameVersions
	if err := json.Unmarshal([]byte(`127`), &versions); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if versions&GameVersionDestiny2 == 0 {
		t.Error("Destiny2 flag not set")
	}
	if versions&GameVersionTheFinalShape != 0 {
		t.Error("TheFinalShape flag unexpectedly set")
	}
}

func TestDestinyItemTransferRequest_WireFormat(t *testing.T) {
	req := DestinyItemTransferRequest{
		ItemReferenceHash: 691752909,
		StackSize:         1,
		TransferToVault:   true,
		ItemId:            6917529042839773,
		CharacterId:       2305843009261519028,
		MembershipType:    MembershipTypeTigerSteam,
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var wire map[string]interface{}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if wire["itemId"] != "6917529042839773" {
		t.Errorf("itemId = %v (%T), want string", wire["itemId"], wire["itemId"])
	}
	if wire["itemReferenceHash"] != float64(691752909) {
		t.Errorf("itemReferenceHash = %v, want number", wire["itemReferenceHash"])
	}
}

func TestDestinyProfileComponent_CharacterIds(t *testing.T) {
	raw := []byte(`{
		"userInfo": {"membershipId": "4611686018467238913", "membershipType": 3},
		"characterIds": ["2305843009261519028", "2305843009261519029"],
		"versionsOwned": 127
	}`)

	var profile DestinyProfileComponent
	if err := json.Unmarshal(raw, &profile); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(profile.CharacterIds) != 2 {
		t.Fatalf("len(CharacterIds) = %d", len(profile.CharacterIds))
	}
	if profile.CharacterIds[0] != 2305843009261519028 {
		t.Errorf("CharacterIds[0] = %d", profile.CharacterIds[0])
	}
	if profile.UserInfo.MembershipId != 4611686018467238913 {
		t.Errorf("MembershipId = %d", profile.UserInfo.MembershipId)
	}
}
