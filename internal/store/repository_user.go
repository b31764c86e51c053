package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and its default quiet-hours profile in
// one transaction and returns the fully populated [models.User] with
// server-assigned fields (UserID, CreatedAt).
//
// The default profile mirrors what a fresh client expects: named
// [models.DefaultProfileName], quiet hours 22:00–07:00, empty rules, active.
// A failure at any step rolls back both inserts — no account without its
// default profile ever becomes visible.
//
// Error handling:
//   - unique_violation on users_email_key → [ErrEmailAlreadyExists].
//   - unique_violation on users_device_id_key → [ErrDeviceAlreadyRegistered]
//     (two registrations racing for one device; caller re-reads the winner).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error starting transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	row := tx.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.DeviceID)
	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.DeviceID, &user.IsPro, &user.CreatedAt, &user.LastSync); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("device_id", user.DeviceID).Bool("retryable", r.db.retryable(err)).Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case "users_email_key":
				return models.User{}, ErrEmailAlreadyExists
			default:
				return models.User{}, ErrDeviceAlreadyRegistered
			}
		}

		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	defaultStart, defaultEnd, defaultRules := models.DefaultQuietHoursFrom, models.DefaultQuietHoursTo, models.DefaultRulesJSON
	_, err = tx.ExecContext(ctx, createProfile,
		user.UserID, models.DefaultProfileName, &defaultStart, &defaultEnd, &defaultRules, true)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Int64("user_id", user.UserID).Msg("error inserting default profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindUserByID retrieves a user record by its surrogate primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

// FindUserByEmail retrieves a user record by its unique email address.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByDeviceID retrieves a user record by its unique device identifier.
func (r *userRepository) FindUserByDeviceID(ctx context.Context, deviceID string) (models.User, error) {
	return r.findUser(ctx, findUserByDeviceID, deviceID)
}

// UpgradeToPro flips the is_pro flag and returns the updated record.
//
// Error handling mirrors [userRepository.FindUserByID]: a missing row is
// reported as [ErrNoUserWasFound].
func (r *userRepository) UpgradeToPro(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, upgradeUserToPro, userID)
}

// findUser runs a single-row user query and scans the canonical column set.
func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.DeviceID, &foundUser.IsPro, &foundUser.CreatedAt, &foundUser.LastSync); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Bool("retryable", r.db.retryable(err)).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
