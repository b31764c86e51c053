package models

import "time"

// VIP is an override contact exempt from quiet-hours suppression,
// owned by exactly one user.
type VIP struct {
	VIPID  int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// AppPackage identifies the originating application
	// (e.g. "com.whatsapp").
	AppPackage string `json:"app_package"`

	// Identifier is the contact handle within the application:
	// a phone number, an email address, a chat name, etc.
	Identifier string `json:"identifier"`

	// Priority ranks the contact from 1 (lowest) to 5 (highest).
	Priority int `json:"priority"`

	// BypassQuietHours lets notifications from this contact through even
	// inside an active quiet-hours window.
	BypassQuietHours bool `json:"bypass_quiet_hours"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VIP model.
func (v VIP) TableName() string {
	return "vips"
}

// VIPCreate carries the client-supplied fields for VIP creation requests.
type VIPCreate struct {
	AppPackage       string `json:"app_package"`
	Identifier       string `json:"identifier"`
	Priority         int    `json:"priority"`
	BypassQuietHours bool   `json:"bypass_quiet_hours"`
}

// VIP priority bounds accepted by the API.
const (
	VIPPriorityMin = 1
	VIPPriorityMax = 5
)
