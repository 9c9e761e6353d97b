package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidIdentityConfigs indicates a missing or malformed identity
	// store URL or service-role key.
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a malformed base URL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
