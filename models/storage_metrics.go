// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StorageMetrics is a point-in-time snapshot of local storage consumption.
// Recomputed on demand, never persisted.
type StorageMetrics struct {
	UsedBytes              int64 `json:"used_bytes"`
	QuotaBytes             int64 `json:"quota_bytes"`
	PersistentGrantGranted bool  `json:"persistent_grant_granted"`
}

// Free returns the remaining storage budget, never negative.
func (m StorageMetrics) Free() int64 {
	if m.UsedBytes >= m.QuotaBytes {
		return 0
	}
	return m.QuotaBytes - m.UsedBytes
}

// ActivityEntry is one row of the local activity log: a human-readable trace
// of sync and mutation history, prunable by the storage optimizer.
type ActivityEntry struct {
	ID         int64      `json:"id"`
	EntityType EntityType `json:"entity_type,omitempty"`
	EntityID   string     `json:"entity_id,omitempty"`
	Action     string     `json:"action"`
	Detail     string     `json:"detail,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CleanupSuggestion is one recommendation produced by the storage optimizer
// when local usage approaches the quota.
type CleanupSuggestion struct {
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	EstimatedBytes int64  `json:"estimated_bytes,omitempty"`
}

// NotificationEntry is a queued user-facing notification. Delivery is the
// caller's concern; the engine only stores and prunes them.
type NotificationEntry struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
