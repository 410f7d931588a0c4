package types

import (
	"encoding/json"
	"testing"
)

func TestInt64String_Unmarshal(t *testing.T) {
	var id Int64String
	if err := json.Unmarshal([]byte(`"4611686018467238913"`), &id); err != nil {
		t.Fatalf("Unmarshal quoted: %v", err)
	}
	if id != 4611686018467238913 {
		t.Errorf("id = %d", id)
	}

	// Some older endpoints emit bare numbers.
	if err := json.Unmarshal([]byte(`42`), &id); err != nil {
		t.Fatalf("Unmarshal bare: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d", id)
	}
}

func TestInt64String_Marshal(t *testing.T) {
	data, err := json.Marshal(Int64String(6917529042839773))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"6917529042839773"` {
		t.Errorf("marshaled = %s", data)
	}
}

func TestSearchResult_Decode(t *testing.T) {
	raw := []byte(`{
		"results": [{"displayName": "guardian"}],
		"totalResults": 1,
		"hasMore": false,
		"query": {"itemsPerPage": 25, "currentPage": 0},
		"useTotalResults": true
	}`)

	var result SearchResult[GeneralUser]
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(result.Results) != 1 || result.Results[0].DisplayName != "guardian" {
		t.Errorf("Results = %+v", result.Results)
	}
	if result.Query == nil || result.Query.ItemsPerPage != 25 {
		t.Errorf("Query = %+v", result.Query)
	}
}

func TestDictionaryComponentResponse_Int64Keys(t *testing.T) {
	raw := []byte(`{
		"data": {
			"6917529042839773": {"isEquipped": true},
			"6917529042839774": {"isEquipped": false}
		},
		"privacy": 1
	}`)

	var resp DictionaryComponentResponse[int64, DestinyItemInstanceComponent]
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("len(Data) = %d", len(resp.Data))
	}
	if !resp.Data[6917529042839773].IsEquipped {
		t.Error("IsEquipped = false, want true")
	}
	if resp.Privacy != ComponentPrivacyPublic {
		t.Errorf("Privacy = %d", resp.Privacy)
	}
}
