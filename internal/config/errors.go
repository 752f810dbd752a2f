package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidTransportConfigs indicates invalid outbound transport
	// settings (for example, missing base URL or zero request timeout).
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid sync tunables (for example,
	// non-positive batch size or drain interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
