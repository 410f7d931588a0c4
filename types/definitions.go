package types

// DestinyIconSequenceDefinition is one animation sequence of an icon.
type DestinyIconSequenceDefinition struct {
	Frames []string `json:"frames,omitempty"`
}

// DestinyDisplayPropertiesDefinition is the common name/description/
// icon block shared by most definitions.
type DestinyDisplayPropertiesDefinition struct {
	Description   string                          `json:"description,omitempty"`
	Name          string                          `json:"name,omitempty"`
	Icon          string                          `json:"icon,omitempty"`
	IconSequences []DestinyIconSequenceDefinition `json:"iconSequences,omitempty"`
	HighResIcon   string                          `json:"highResIcon,omitempty"`
	HasIcon       bool                            `json:"hasIcon"`
}

// DestinyDefinition is the base shape shared by every manifest entity
// definition. The entity definition endpoint returns it for any entity
// type; redacted definitions carry only Hash and Index.
type DestinyDefinition struct {
	DisplayProperties *DestinyDisplayPropertiesDefinition `json:"displayProperties,omitempty"`
	Hash              uint32                              `json:"hash"`
	Index             int32                               `json:"index"`
	Redacted          bool                                `json:"redacted"`
}

// DestinyEntitySearchResultItem is one armory search hit.
type DestinyEntitySearchResultItem struct {
	Hash              uint32                              `json:"hash"`
	EntityType        string                              `json:"entityType,omitempty"`
	DisplayProperties *DestinyDisplayPropertiesDefinition `json:"displayProperties,omitempty"`
	Weight            float64                             `json:"weight"`
}

// DestinyEntitySearchResult is a page of armory search hits plus
// spelling suggestions.
type DestinyEntitySearchResult struct {
	SuggestedWords []string                                    `json:"suggestedWords,omitempty"`
	Results        SearchResult[DestinyEntitySearchResultItem] `json:"results"`
}
