package models

import (
	"encoding/json"
	"time"
)

// RecordStatus tracks the two-phase commit state of a local write: a
// mutation starts unconfirmed and is promoted to confirmed once the remote
// backend has accepted it.
type RecordStatus string

const (
	RecordUnconfirmed RecordStatus = "unconfirmed"
	RecordConfirmed   RecordStatus = "confirmed"
)

// Record is the envelope around an inventory entity as stored locally.
//
// LocalVersion is bumped on every local write; RemoteVersion is the last
// version confirmed by the server. The invariant RemoteVersion <= LocalVersion
// holds at all times, with equality meaning the record is in sync.
//
// ConfirmedPayload keeps the last server-confirmed value so that a terminal
// sync failure can revert the optimistic write instead of leaving a value the
// server never accepted.
type Record struct {
	EntityType       EntityType      `json:"entity_type"`
	EntityID         string          `json:"entity_id"`
	Payload          json.RawMessage `json:"payload"`
	ConfirmedPayload json.RawMessage `json:"confirmed_payload,omitempty"`
	LocalVersion     int64           `json:"local_version"`
	RemoteVersion    int64           `json:"remote_version"`
	Status           RecordStatus    `json:"status"`
	Deleted          bool            `json:"deleted"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// InSync reports whether the record has no local changes awaiting
// propagation.
func (r Record) InSync() bool {
	return r.RemoteVersion == r.LocalVersion
}

// Fields decodes the payload into a field map for per-field comparison.
func (r Record) Fields() (map[string]any, error) {
	if len(r.Payload) == 0 {
		return map[string]any{}, nil
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(r.Payload, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
