package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are incomplete or invalid.
var (
	// ErrEmptyTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source. The server refuses to start
	// rather than issue unverifiable tokens.
	ErrEmptyTokenSignKey = errors.New("empty token sign key")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
