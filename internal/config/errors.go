package config

import "errors"

// Validation errors returned when the merged configuration is missing
// values that have no safe default.
var (
	ErrNoDatabaseDSN   = errors.New("database DSN is not specified")
	ErrNoTokenSignKey  = errors.New("token sign key is not specified")
	ErrNoServerAddress = errors.New("server address is not specified")
)
