package models

import (
	"encoding/json"
	"time"
)

// Operation is the kind of mutation carried by a queue entry.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// EntryStatus is the durable state of a queue entry. Confirmed and terminal
// entries are removed from the queue rather than kept in a final state.
type EntryStatus string

const (
	// EntryPending — awaiting its next drain attempt.
	EntryPending EntryStatus = "pending"

	// EntryInFlight — a drain cycle has picked the entry up and the network
	// call may be in progress. Restored to pending on crash recovery.
	EntryInFlight EntryStatus = "inflight"

	// EntryConflicted — the server rejected the base version; the entry is
	// held for conflict resolution and never retried automatically.
	EntryConflicted EntryStatus = "conflicted"
)

// SyncQueueEntry is one pending mutation awaiting propagation to the remote
// backend. Entries for the same entity id are processed strictly in enqueue
// order.
//
// OperationID is a stable idempotency key: it never changes across retries,
// so the server can deduplicate at-least-once resends.
type SyncQueueEntry struct {
	ID            int64           `json:"id"`
	EntityType    EntityType      `json:"entity_type"`
	EntityID      string          `json:"entity_id"`
	Operation     Operation       `json:"operation"`
	Payload       json.RawMessage `json:"payload"`
	BaseVersion   int64           `json:"base_version"`
	OperationID   string          `json:"operation_id"`
	RetryCount    int             `json:"retry_count"`
	Status        EntryStatus     `json:"status"`
	NextAttemptAt time.Time       `json:"next_attempt_at"`
	EnqueuedAt    time.Time       `json:"enqueued_at"`
}

// Fields decodes the entry payload (the changed fields of the mutation) into
// a map for conflict detection.
func (e SyncQueueEntry) Fields() (map[string]any, error) {
	if len(e.Payload) == 0 {
		return map[string]any{}, nil
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(e.Payload, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
