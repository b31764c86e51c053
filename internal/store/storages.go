package store

import (
	"context"

	"github.com/MKhiriev/quiet-inbox/internal/config"
	"github.com/MKhiriev/quiet-inbox/internal/logger"
)

// Storages bundles every repository backed by the shared database connection.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	VIPRepository     VIPRepository
	SyncRepository    SyncRepository

	// DB is the shared connection, exposed for health checks.
	DB *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ProfileRepository: NewProfileRepository(db, logger),
		VIPRepository:     NewVIPRepository(db, logger),
		SyncRepository:    NewSyncRepository(db, logger),
		DB:                db,
	}, nil
}
