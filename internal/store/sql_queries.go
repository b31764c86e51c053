package store

import (
	"time"

	"github.com/MKhiriev/quiet-inbox/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = "user_id, email, password_hash, device_id, is_pro, created_at, last_sync"

	createUser = `INSERT INTO users (email, password_hash, device_id)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByDeviceID = `SELECT ` + userColumns + `
    FROM users
    WHERE device_id = $1;`

	upgradeUserToPro = `UPDATE users
    SET is_pro = TRUE
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	updateUserLastSync = `UPDATE users
    SET last_sync = $2
    WHERE user_id = $1;`

	profileColumns = "profile_id, user_id, name, quiet_hours_start, quiet_hours_end, rules_json, is_active, created_at"

	createProfile = `INSERT INTO profiles (user_id, name, quiet_hours_start, quiet_hours_end, rules_json, is_active)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + profileColumns + `;`

	getUserProfiles = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE user_id = $1
    ORDER BY profile_id;`

	countUserProfiles = `SELECT COUNT(*)
    FROM profiles
    WHERE user_id = $1;`

	vipColumns = "vip_id, user_id, app_package, identifier, priority, bypass_quiet_hours, created_at"

	createVIP = `INSERT INTO vips (user_id, app_package, identifier, priority, bypass_quiet_hours)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + vipColumns + `;`

	getUserVIPs = `SELECT ` + vipColumns + `
    FROM vips
    WHERE user_id = $1
    ORDER BY vip_id;`

	deleteVIP = `DELETE FROM vips
    WHERE user_id = $1 AND vip_id = $2;`

	// ON CONFLICT DO NOTHING makes a replayed or racing push of the same
	// (device_id, local_id) pair a benign no-op; RowsAffected reports
	// whether the row was actually inserted.
	insertSyncRecord = `INSERT INTO notification_syncs (user_id, device_id, local_id, sync_type, data_json, synced_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (device_id, local_id) DO NOTHING;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildPullSyncQuery assembles the watermark-based catch-up read: all of the
// user's records, optionally restricted to those synced strictly after since,
// newest first, capped at one page. The secondary sync_id ordering keeps the
// result stable when a whole batch shares one server timestamp.
func buildPullSyncQuery(userID int64, since *time.Time) (string, []any, error) {
	builder := psql.
		Select("sync_id", "user_id", "device_id", "local_id", "sync_type", "data_json", "synced_at").
		From(models.SyncRecord{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("synced_at DESC", "sync_id DESC").
		Limit(models.SyncPullPageSize)

	if since != nil {
		builder = builder.Where(sq.Gt{"synced_at": *since})
	}

	return builder.ToSql()
}

// buildUpdateProfileQuery assembles the full-row profile update scoped to the
// owning user, returning the canonical database representation.
func buildUpdateProfileQuery(profile models.Profile) (string, []any, error) {
	return psql.
		Update(models.Profile{}.TableName()).
		Set("name", profile.Name).
		Set("quiet_hours_start", profile.QuietHoursStart).
		Set("quiet_hours_end", profile.QuietHoursEnd).
		Set("rules_json", profile.RulesJSON).
		Set("is_active", profile.IsActive).
		Where(sq.Eq{"profile_id": profile.ProfileID, "user_id": profile.UserID}).
		Suffix("RETURNING " + profileColumns).
		ToSql()
}
