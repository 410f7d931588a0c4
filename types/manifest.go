package types

// ImagePyramidEntry describes one scaled tier of the gear CDN image
// pyramid.
type ImagePyramidEntry struct {
	Name   string  `json:"name,omitempty"`
	Factor float32 `json:"factor"`
}

// GearAssetDataBaseDefinition points at one of the gear asset sqlite
// databases.
type GearAssetDataBaseDefinition struct {
	Version int32  `json:"version"`
	Path    string `json:"path,omitempty"`
}

// DestinyManifest is the manifest of downloadable content databases and
// their version. DestinyManifest changes whenever the game content is
// updated; the Version string is the cache key for everything else in
// the payload.
type DestinyManifest struct {
	Version                        string                        `json:"version,omitempty"`
	MobileAssetContentPath         string                        `json:"mobileAssetContentPath,omitempty"`
	MobileGearAssetDataBases       []GearAssetDataBaseDefinition `json:"mobileGearAssetDataBases,omitempty"`
	MobileWorldContentPaths        map[string]string             `json:"mobileWorldContentPaths,omitempty"`
	JsonWorldContentPaths          map[string]string             `json:"jsonWorldContentPaths,omitempty"`
	JsonWorldComponentContentPaths map[string]map[string]string  `json:"jsonWorldComponentContentPaths,omitempty"`
	MobileClanBannerDatabasePath   string                        `json:"mobileClanBannerDatabasePath,omitempty"`
	MobileGearCDN                  map[string]string             `json:"mobileGearCDN,omitempty"`
	IconImagePyramidInfo           []ImagePyramidEntry           `json:"iconImagePyramidInfo,omitempty"`
}
