package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAgentConfig() *AgentConfig {
	cfg := &AgentConfig{
		Storage: Storage{DB: DB{DSN: "local.db"}},
		Remote:  Remote{BaseURL: "http://localhost:8080"},
	}
	cfg.applyDefaults()
	return cfg
}

func TestAgentConfig_Defaults(t *testing.T) {
	cfg := validAgentConfig()

	assert.Equal(t, DefaultRequestTimeout, cfg.Remote.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Sync.Interval)
	assert.Equal(t, time.Second, cfg.Sync.BackoffBase)
	assert.Equal(t, DefaultBackoffCap, cfg.Sync.BackoffCap)
	assert.Equal(t, 3, cfg.Sync.RetryLimit)
	assert.Equal(t, int64(DefaultQuotaBytes), cfg.Optimizer.QuotaBytes)
	assert.Equal(t, DefaultRetentionDays, cfg.Optimizer.RetentionDays)
}

func TestAgentConfig_DefaultsKeepExplicitValues(t *testing.T) {
	cfg := &AgentConfig{
		Storage: Storage{DB: DB{DSN: "local.db"}},
		Remote:  Remote{BaseURL: "http://localhost:8080", RequestTimeout: time.Minute},
		Sync:    Sync{RetryLimit: 5, BackoffBase: 2 * time.Second},
	}
	cfg.applyDefaults()

	assert.Equal(t, time.Minute, cfg.Remote.RequestTimeout)
	assert.Equal(t, 5, cfg.Sync.RetryLimit)
	assert.Equal(t, 2*time.Second, cfg.Sync.BackoffBase)
}

func TestAgentConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *AgentConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *AgentConfig) {},
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *AgentConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty remote url",
			mutate:  func(cfg *AgentConfig) { cfg.Remote.BaseURL = "" },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *AgentConfig) { cfg.Remote.RequestTimeout = 0 },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "zero retry limit",
			mutate:  func(cfg *AgentConfig) { cfg.Sync.RetryLimit = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "backoff cap below base",
			mutate:  func(cfg *AgentConfig) { cfg.Sync.BackoffCap = cfg.Sync.BackoffBase / 2 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "negative quota",
			mutate:  func(cfg *AgentConfig) { cfg.Optimizer.QuotaBytes = -1 },
			wantErr: ErrInvalidOptimizerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAgentConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
