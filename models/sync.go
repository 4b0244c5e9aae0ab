package models

import (
	"encoding/json"
	"time"
)

// SyncStatus is the user-visible summary of unsynced work. PendingCount and
// ConflictCount are reported separately: pending entries resolve with time,
// conflicts require a decision.
type SyncStatus struct {
	PendingCount  int `json:"pending_count"`
	ConflictCount int `json:"conflict_count"`
}

// EventKind classifies sync lifecycle events published on the observer bus.
type EventKind string

const (
	EventEntryConfirmed  EventKind = "entry_confirmed"
	EventConflictFound   EventKind = "conflict_found"
	EventTerminalFailure EventKind = "terminal_failure"
	EventDrainFinished   EventKind = "drain_finished"
)

// SyncEvent is published after every notable transition of a drain cycle.
// For EventTerminalFailure the original payload is carried so that dropped
// work is reported, never silently lost.
type SyncEvent struct {
	Kind       EventKind       `json:"kind"`
	EntityType EntityType      `json:"entity_type,omitempty"`
	EntityID   string          `json:"entity_id,omitempty"`
	EntryID    int64           `json:"entry_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Err        string          `json:"error,omitempty"`
	At         time.Time       `json:"at"`
}
