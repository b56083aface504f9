package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// supplied by any configuration source. The server refuses to start in
	// this state.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingDatabaseDSN indicates that no database connection string was
	// supplied by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
)
