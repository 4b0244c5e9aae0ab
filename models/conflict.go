package models

import "time"

// Strategy names a conflict-resolution strategy.
type Strategy string

const (
	// StrategyKeepLocal keeps the local value and re-sends it against the
	// current remote version.
	StrategyKeepLocal Strategy = "keep_local"

	// StrategyKeepRemote overwrites the local record with the remote value.
	StrategyKeepRemote Strategy = "keep_remote"

	// StrategyMerge combines both values via the field-specific merge policy.
	StrategyMerge Strategy = "merge"
)

// AutoStrategy is a batch policy applied uniformly across a list of
// conflicts without user interaction.
type AutoStrategy string

const (
	// AutoLatestWins picks whichever side carries the strictly later
	// timestamp; equal timestamps default to local.
	AutoLatestWins AutoStrategy = "latest-wins"

	AutoRemoteWins AutoStrategy = "remote-wins"
	AutoLocalWins  AutoStrategy = "local-wins"
)

// Conflict records a single field whose local and remote values diverged.
// A version mismatch on a record produces one Conflict per differing field,
// so non-overlapping edits can be resolved independently.
type Conflict struct {
	ID              string     `json:"id"`
	EntryID         int64      `json:"entry_id"`
	EntityType      EntityType `json:"entity_type"`
	EntityID        string     `json:"entity_id"`
	Field           string     `json:"field"`
	LocalValue      any        `json:"local_value"`
	RemoteValue     any        `json:"remote_value"`
	LocalTimestamp  time.Time  `json:"local_timestamp"`
	RemoteTimestamp time.Time  `json:"remote_timestamp"`
	RemoteVersion   int64      `json:"remote_version"`
	DetectedAt      time.Time  `json:"detected_at"`
}

// ConflictResolution is the decision for one conflict, produced either by a
// batch AutoStrategy or by explicit user choice.
type ConflictResolution struct {
	ConflictID    string   `json:"conflict_id"`
	Strategy      Strategy `json:"strategy"`
	ResolvedValue any      `json:"resolved_value,omitempty"`
}
