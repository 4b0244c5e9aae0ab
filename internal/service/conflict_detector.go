// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/models"
)

// deletedField is the synthetic field name used when one side deleted the
// entity while the other edited it. Field-level comparison has nothing to
// diff against a tombstone, so the whole record becomes a single conflict.
const deletedField = "deleted"

// conflictDetector turns a version-rejected queue entry into per-field
// conflicts by fetching the server's current view and diffing it against the
// fields the entry changed. An empty diff means both sides converged on the
// same values and the entry can be confirmed without user input.
type conflictDetector struct {
	remote adapter.RemoteAPI
}

func newConflictDetector(remote adapter.RemoteAPI) *conflictDetector {
	return &conflictDetector{remote: remote}
}

// detect fetches the remote record and returns the conflicting fields.
// A fetch that fails with a transport error is returned to the caller so the
// entry can be retried later instead of losing the conflict.
func (d *conflictDetector) detect(ctx context.Context, entry models.SyncQueueEntry) (models.RemoteRecord, []models.Conflict, error) {
	remote, err := d.remote.Fetch(ctx, entry.EntityType, entry.EntityID)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		// the entity is gone remotely; treat it as a remote deletion
		remote = models.RemoteRecord{
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Version:    entry.BaseVersion + 1,
			Deleted:    true,
		}
	case err != nil:
		return models.RemoteRecord{}, nil, fmt.Errorf("fetch remote record: %w", err)
	}

	conflicts, err := d.diff(entry, remote)
	if err != nil {
		return models.RemoteRecord{}, nil, err
	}

	return remote, conflicts, nil
}

func (d *conflictDetector) diff(entry models.SyncQueueEntry, remote models.RemoteRecord) ([]models.Conflict, error) {
	now := time.Now().UTC()

	if entry.Operation == models.OpDelete {
		if remote.Deleted {
			// both sides deleted, nothing to decide
			return nil, nil
		}
		return []models.Conflict{newConflict(entry, remote, deletedField, true, false, now)}, nil
	}

	if remote.Deleted {
		return []models.Conflict{newConflict(entry, remote, deletedField, false, true, now)}, nil
	}

	localFields, err := entry.Fields()
	if err != nil {
		return nil, fmt.Errorf("decode entry payload: %w", err)
	}
	remoteFields, err := remote.Fields()
	if err != nil {
		return nil, fmt.Errorf("decode remote payload: %w", err)
	}

	var conflicts []models.Conflict
	for _, field := range sortedKeys(localFields) {
		local := localFields[field]
		if valuesEqual(local, remoteFields[field]) {
			continue
		}
		conflicts = append(conflicts, newConflict(entry, remote, field, local, remoteFields[field], now))
	}

	return conflicts, nil
}

// newConflict builds a conflict with a deterministic id so that re-deriving
// conflicts from the durable queue after a restart yields the same ids.
func newConflict(entry models.SyncQueueEntry, remote models.RemoteRecord, field string, local, remoteValue any, now time.Time) models.Conflict {
	return models.Conflict{
		ID:              strconv.FormatInt(entry.ID, 10) + ":" + field,
		EntryID:         entry.ID,
		EntityType:      entry.EntityType,
		EntityID:        entry.EntityID,
		Field:           field,
		LocalValue:      local,
		RemoteValue:     remoteValue,
		LocalTimestamp:  entry.EnqueuedAt,
		RemoteTimestamp: remote.UpdatedAt,
		RemoteVersion:   remote.Version,
		DetectedAt:      now,
	}
}

// valuesEqual compares two JSON-decoded values. Both sides come out of
// encoding/json, so maps, slices, and scalars compare structurally.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func sortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
