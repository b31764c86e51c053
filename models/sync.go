package models

import (
	"encoding/json"
	"time"
)

// SyncRecord is one persisted notification-sync event. Records are created
// only via push, are immutable afterwards, and are deduplicated per device by
// the (DeviceID, LocalID) pair.
type SyncRecord struct {
	SyncID   int64  `json:"id"`
	UserID   int64  `json:"-"`
	DeviceID string `json:"-"`

	// LocalID is the client-local identifier of the event and the dedup
	// key within a device. Pushing an already-seen LocalID is a no-op.
	LocalID string `json:"local_id"`

	// SyncType is the client-defined event category
	// (e.g. "notification", "profile", "vip").
	SyncType string `json:"type"`

	// DataJSON is the opaque event payload, stored without interpretation.
	DataJSON string `json:"data"`

	// SyncedAt is the server-assigned timestamp used as the pull watermark.
	SyncedAt time.Time `json:"synced_at"`
}

// TableName returns the name of the database table
// associated with the SyncRecord model.
func (s SyncRecord) TableName() string {
	return "notification_syncs"
}

// SyncItem is a single entry of a push batch as submitted by the client.
type SyncItem struct {
	LocalID string `json:"local_id"`
	Type    string `json:"type"`

	// Data is the opaque event payload. Kept raw so the server never
	// imposes a shape on client data.
	Data json.RawMessage `json:"data"`
}

// SyncPushRequest is the body of POST /v1/sync/push.
type SyncPushRequest struct {
	Items []SyncItem `json:"items"`

	// DeviceTimestamp is the client's clock at push time. Recorded for
	// diagnostics only; server-side ordering uses SyncedAt.
	DeviceTimestamp string `json:"device_timestamp"`
}

// SyncPushResponse is the body returned by POST /v1/sync/push.
type SyncPushResponse struct {
	Success bool `json:"success"`

	// SyncedCount is the number of items actually inserted; replayed
	// duplicates are excluded.
	SyncedCount int `json:"synced_count"`

	ServerTimestamp string `json:"server_timestamp"`
}

// SyncPullResponse is the body returned by GET /v1/sync/pull.
type SyncPullResponse struct {
	Success         bool         `json:"success"`
	Items           []SyncRecord `json:"items"`
	ServerTimestamp string       `json:"server_timestamp"`
}

// SyncPullPageSize caps the number of records returned by a single pull.
// Clients catch up by advancing the `since` watermark between calls.
const SyncPullPageSize = 100
