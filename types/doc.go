// Package types contains the Go representations of the Bungie.net
// Platform API request and response schema: entity structs, enums and
// bit-flag sets, and the generic wrapper shapes the vendor applies to
// search results and profile components.
//
// Wire-level field identifiers are preserved through json struct tags.
// 64-bit identifiers that the vendor encodes as JSON strings carry the
// ",string" tag modifier (or use Int64String inside slices). Hash
// identifiers are uint32. Bit-flag enumerations are unsigned integer
// types whose named constants cover the primitive flags only; combined
// values are built with bitwise OR.
package types
