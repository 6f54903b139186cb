package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after merging all sources.
var (
	// ErrInvalidStorageConfigs indicates an empty DSN or a DSN with a
	// scheme no storage backend handles.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates missing token issuer or duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidClientConfigs indicates an incomplete client setup
	// (missing base URL, non-positive timeout, negative retry count).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
