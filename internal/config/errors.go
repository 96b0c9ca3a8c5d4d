package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty credential store path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidTransportConfigs indicates a credential transport other
	// than "bearer" or "cookie".
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
)
