package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Int64String is an int64 that the vendor serializes as a JSON string.
// It exists for slice elements, where the ",string" tag modifier does
// not apply; scalar fields use int64 with the tag instead.
type Int64String int64

// MarshalJSON implements json.Marshaler.
func (i Int64String) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(i), 10))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int64String) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		// Some endpoints return the value unquoted.
		s = string(data)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse int64 string %q: %w", s, err)
	}
	*i = Int64String(v)
	return nil
}

// PagedQuery describes a page request against a queryable endpoint.
type PagedQuery struct {
	ItemsPerPage             int32  `json:"itemsPerPage"`
	CurrentPage              int32  `json:"currentPage"`
	RequestContinuationToken string `json:"requestContinuationToken,omitempty"`
}

// SearchResult is the vendor's generic paged result wrapper.
type SearchResult[T any] struct {
	Results                      []T         `json:"results"`
	TotalResults                 int32       `json:"totalResults"`
	HasMore                      bool        `json:"hasMore"`
	Query                        *PagedQuery `json:"query,omitempty"`
	ReplacementContinuationToken string      `json:"replacementContinuationToken,omitempty"`
	UseTotalResults              bool        `json:"useTotalResults"`
}

// ComponentPrivacySetting indicates whether a profile component was
// visible to the caller.
type ComponentPrivacySetting int32

const (
	ComponentPrivacyNone    ComponentPrivacySetting = 0
	ComponentPrivacyPublic  ComponentPrivacySetting = 1
	ComponentPrivacyPrivate ComponentPrivacySetting = 2
)

// SingleComponentResponse wraps a single profile component. Data is nil
// when the component was not requested or is private/disabled.
type SingleComponentResponse[T any] struct {
	Data     *T                      `json:"data,omitempty"`
	Privacy  ComponentPrivacySetting `json:"privacy"`
	Disabled *bool                   `json:"disabled,omitempty"`
}

// DictionaryComponentResponse wraps a component keyed by an identifier,
// typically a character ID or item hash.
type DictionaryComponentResponse[K comparable, T any] struct {
	Data     map[K]T                 `json:"data,omitempty"`
	Privacy  ComponentPrivacySetting `json:"privacy"`
	Disabled *bool                   `json:"disabled,omitempty"`
}

var (
	_ json.Marshaler   = Int64String(0)
	_ json.Unmarshaler = (*Int64String)(nil)
)
