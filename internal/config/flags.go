package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database file path
//	-remote-url base URL of the remote inventory API
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-sync-interval background drain interval (e.g., "5m")
//	-backoff-base first retry delay (e.g., "1s")
//	-backoff-cap upper bound on the retry delay (e.g., "5m")
//	-retry-limit failed attempts before an entry is dropped
//	-drain-lock-ttl stale drain-lease takeover threshold
//	-quota-bytes local storage budget in bytes
//	-retention-days default cleanup age for logs and notifications
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var remoteBaseURL string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var backoffBase time.Duration
	var backoffCap time.Duration
	var retryLimit int
	var drainLockTTL time.Duration
	var quotaBytes int64
	var retentionDays int
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&remoteBaseURL, "remote-url", "", "Remote inventory API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background drain interval (e.g., 5m)")
	flag.DurationVar(&backoffBase, "backoff-base", 0, "First retry delay (e.g., 1s)")
	flag.DurationVar(&backoffCap, "backoff-cap", 0, "Upper bound on the retry delay (e.g., 5m)")
	flag.IntVar(&retryLimit, "retry-limit", 0, "Failed attempts before an entry is dropped")
	flag.DurationVar(&drainLockTTL, "drain-lock-ttl", 0, "Stale drain-lease takeover threshold")
	flag.Int64Var(&quotaBytes, "quota-bytes", 0, "Local storage budget in bytes")
	flag.IntVar(&retentionDays, "retention-days", 0, "Default cleanup age for logs and notifications")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:     syncInterval,
			BackoffBase:  backoffBase,
			BackoffCap:   backoffCap,
			RetryLimit:   retryLimit,
			DrainLockTTL: drainLockTTL,
		},
		Optimizer: Optimizer{
			QuotaBytes:    quotaBytes,
			RetentionDays: retentionDays,
		},
		JSONFilePath: jsonConfigPath,
	}
}
