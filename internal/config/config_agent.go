package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetAgentConfig] for settings the merged configuration
// leaves unset. Retry and backoff defaults match the drain-cycle contract:
// three attempts, exponential delay starting at one second.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultBackoffBase    = time.Second
	DefaultBackoffCap     = 5 * time.Minute
	DefaultRetryLimit     = 3
	DefaultDrainLockTTL   = 2 * time.Minute
	DefaultQuotaBytes     = 512 << 20
	DefaultRetentionDays  = 30
)

// AgentConfig is the validated configuration view used by the sync agent.
// It is assembled from [StructuredConfig] with defaults applied to optional
// settings.
type AgentConfig struct {
	// Storage contains local persistence settings.
	Storage Storage
	// Remote contains remote inventory API settings.
	Remote Remote
	// Sync contains drain-cycle settings.
	Sync Sync
	// Optimizer contains storage-budget settings.
	Optimizer Optimizer
}

// GetAgentConfig builds and validates the agent configuration from the
// merged structured configuration, applying defaults for optional fields.
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		Storage:   cfg.Storage,
		Remote:    cfg.Remote,
		Sync:      cfg.Sync,
		Optimizer: cfg.Optimizer,
	}
	agentCfg.applyDefaults()

	return agentCfg, agentCfg.validate()
}

func (cfg *AgentConfig) applyDefaults() {
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.BackoffBase <= 0 {
		cfg.Sync.BackoffBase = DefaultBackoffBase
	}
	if cfg.Sync.BackoffCap <= 0 {
		cfg.Sync.BackoffCap = DefaultBackoffCap
	}
	if cfg.Sync.RetryLimit <= 0 {
		cfg.Sync.RetryLimit = DefaultRetryLimit
	}
	if cfg.Sync.DrainLockTTL <= 0 {
		cfg.Sync.DrainLockTTL = DefaultDrainLockTTL
	}
	if cfg.Optimizer.QuotaBytes <= 0 {
		cfg.Optimizer.QuotaBytes = DefaultQuotaBytes
	}
	if cfg.Optimizer.RetentionDays <= 0 {
		cfg.Optimizer.RetentionDays = DefaultRetentionDays
	}
}
