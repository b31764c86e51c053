package models

import (
	"encoding/json"
	"time"
)

// Profile is a named quiet-hours configuration owned by exactly one user.
// Quiet-hours boundaries are wall-clock "HH:MM" strings; the rules payload is
// an opaque serialized structure the server stores without interpreting.
type Profile struct {
	ProfileID int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`

	// QuietHoursStart and QuietHoursEnd bound the deferral window in
	// wall-clock "HH:MM" format (e.g. "22:00" .. "07:00").
	QuietHoursStart *string `json:"quiet_hours_start"`
	QuietHoursEnd   *string `json:"quiet_hours_end"`

	// RulesJSON is an opaque client-defined rules document. The server
	// treats it as pass-through storage.
	RulesJSON *string `json:"rules_json"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileUpsert carries the client-supplied fields for profile creation and
// update requests. Absent optional fields fall back to the defaults used for
// the registration-time default profile.
type ProfileUpsert struct {
	Name            string  `json:"name"`
	QuietHoursStart *string `json:"quiet_hours_start"`
	QuietHoursEnd   *string `json:"quiet_hours_end"`
	RulesJSON       *string `json:"rules_json"`
	IsActive        bool    `json:"is_active"`
}

// Defaults applied to the profile created automatically at registration and
// to creation requests that omit the optional fields.
const (
	DefaultProfileName    = "Default"
	DefaultQuietHoursFrom = "22:00"
	DefaultQuietHoursTo   = "07:00"
	DefaultRulesJSON      = "{}"
)

// ValidRulesJSON reports whether the opaque rules payload is syntactically
// valid JSON. Empty payloads are valid (the default "{}" is substituted).
func ValidRulesJSON(rules *string) bool {
	if rules == nil || *rules == "" {
		return true
	}
	return json.Valid([]byte(*rules))
}
