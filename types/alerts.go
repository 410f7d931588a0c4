package types

import "time"

// GlobalAlertLevel is the severity of a global alert.
type GlobalAlertLevel int32

const (
	AlertLevelUnknown GlobalAlertLevel = 0
	AlertLevelBlue    GlobalAlertLevel = 1
	AlertLevelYellow  GlobalAlertLevel = 2
	AlertLevelRed     GlobalAlertLevel = 3
)

// GlobalAlertType distinguishes sitewide alerts from streaming alerts.
type GlobalAlertType int32

const (
	AlertTypeGlobalAlert    GlobalAlertType = 0
	AlertTypeStreamingAlert GlobalAlertType = 1
)

// StreamInfo carries the streaming channel for streaming-type alerts.
type StreamInfo struct {
	ChannelName string `json:"ChannelName,omitempty"`
}

// GlobalAlert is a sitewide operational alert published by the vendor.
type GlobalAlert struct {
	AlertKey       string           `json:"AlertKey,omitempty"`
	AlertHtml      string           `json:"AlertHtml,omitempty"`
	AlertTimestamp time.Time        `json:"AlertTimestamp"`
	AlertLink      string           `json:"AlertLink,omitempty"`
	AlertLevel     GlobalAlertLevel `json:"AlertLevel"`
	AlertType      GlobalAlertType  `json:"AlertType"`
	StreamInfo     *StreamInfo      `json:"StreamInfo,omitempty"`
}
