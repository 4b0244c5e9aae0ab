// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself stays permissive: any combination of sources
// may be partial, and the agent view applies defaults before its own
// validation. Returns nil if the configuration is valid.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.RetryLimit <= 0 || cfg.Sync.BackoffBase <= 0 || cfg.Sync.BackoffCap < cfg.Sync.BackoffBase {
		return ErrInvalidSyncConfigs
	}

	if cfg.Optimizer.QuotaBytes <= 0 || cfg.Optimizer.RetentionDays <= 0 {
		return ErrInvalidOptimizerConfigs
	}

	return nil
}
