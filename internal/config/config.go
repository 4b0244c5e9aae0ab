// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// shelfsync engine. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds settings for the remote inventory API the queue is
	// drained against.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds drain-cycle settings: interval, retry ceiling, backoff.
	Sync Sync `envPrefix:"SYNC_"`

	// Optimizer holds local storage quota and retention settings.
	Optimizer Optimizer `envPrefix:"OPTIMIZER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "/var/lib/shelfsync/local.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds network settings for the outbound sync transport.
type Remote struct {
	// BaseURL is the root URL of the remote inventory API
	// (e.g. "https://inventory.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every network call made during a drain cycle.
	// A timed-out call counts as a retryable network error.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds drain-cycle settings for the sync manager.
type Sync struct {
	// Interval is how often the background job wakes a drain cycle when no
	// explicit wake arrives (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// BackoffBase is the first retry delay; attempt n waits
	// BackoffBase * 2^n, capped at BackoffCap.
	// Env: SYNC_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffCap bounds the exponential retry delay.
	// Env: SYNC_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`

	// RetryLimit is how many failed attempts a queue entry survives before
	// it is dropped as a terminal failure.
	// Env: SYNC_RETRY_LIMIT
	RetryLimit int `env:"RETRY_LIMIT"`

	// DrainLockTTL is how long a durable drain lease stays valid before
	// another process may take it over (crash recovery).
	// Env: SYNC_DRAIN_LOCK_TTL
	DrainLockTTL time.Duration `env:"DRAIN_LOCK_TTL"`
}

// Optimizer holds storage-optimizer settings.
type Optimizer struct {
	// QuotaBytes is the local storage budget the optimizer reports against.
	// Env: OPTIMIZER_QUOTA_BYTES
	QuotaBytes int64 `env:"QUOTA_BYTES"`

	// RetentionDays is the default age threshold for pruning activity-log
	// and notification history.
	// Env: OPTIMIZER_RETENTION_DAYS
	RetentionDays int `env:"RETENTION_DAYS"`
}
