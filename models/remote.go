// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// PushRequest is the wire form of one queued mutation sent to the remote
// inventory API. BaseVersion drives the server's optimistic-concurrency
// check; OperationID lets the server deduplicate at-least-once resends.
type PushRequest struct {
	EntityType  EntityType      `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	Operation   Operation       `json:"operation"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	BaseVersion int64           `json:"base_version"`
	OperationID string          `json:"operation_id"`
}

// PushResponse is the server's acceptance: the new authoritative version of
// the entity after the mutation was applied.
type PushResponse struct {
	EntityID   string `json:"entity_id"`
	NewVersion int64  `json:"new_version"`
}

// RemoteRecord is the server's current view of an entity, returned on fetch
// and inside version-conflict rejections.
type RemoteRecord struct {
	EntityType EntityType      `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload"`
	Version    int64           `json:"version"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Deleted    bool            `json:"deleted"`
}

// Fields decodes the remote payload into a field map for conflict detection.
func (r RemoteRecord) Fields() (map[string]any, error) {
	if len(r.Payload) == 0 {
		return map[string]any{}, nil
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(r.Payload, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
