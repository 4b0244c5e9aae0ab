package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		Interval     Duration `json:"interval"`
		BackoffBase  Duration `json:"backoff_base"`
		BackoffCap   Duration `json:"backoff_cap"`
		RetryLimit   int      `json:"retry_limit"`
		DrainLockTTL Duration `json:"drain_lock_ttl"`
	} `json:"sync,omitempty"`

	Optimizer struct {
		QuotaBytes    int64 `json:"quota_bytes"`
		RetentionDays int   `json:"retention_days"`
	} `json:"optimizer,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			Interval:     time.Duration(jsonCfg.Sync.Interval),
			BackoffBase:  time.Duration(jsonCfg.Sync.BackoffBase),
			BackoffCap:   time.Duration(jsonCfg.Sync.BackoffCap),
			RetryLimit:   jsonCfg.Sync.RetryLimit,
			DrainLockTTL: time.Duration(jsonCfg.Sync.DrainLockTTL),
		},
		Optimizer: Optimizer{
			QuotaBytes:    jsonCfg.Optimizer.QuotaBytes,
			RetentionDays: jsonCfg.Optimizer.RetentionDays,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
