package config

import "errors"

// Validation errors returned by [AgentConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote API settings
	// (for example, missing base URL or request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidSyncConfigs indicates invalid drain-cycle settings
	// (for example, a zero retry limit or backoff base).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidOptimizerConfigs indicates invalid storage-optimizer
	// settings (for example, a negative quota).
	ErrInvalidOptimizerConfigs = errors.New("invalid optimizer configuration")
)
