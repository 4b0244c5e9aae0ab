// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shelfsync/models"
)

const (
	getRecord = `
		SELECT
			entity_type,
			entity_id,
			payload,
			confirmed_payload,
			local_version,
			remote_version,
			status,
			deleted,
			updated_at
		FROM records
		WHERE entity_type = ? AND entity_id = ?;`

	upsertRecord = `
		INSERT INTO records (
			entity_type,
			entity_id,
			payload,
			confirmed_payload,
			local_version,
			remote_version,
			status,
			deleted,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			payload           = excluded.payload,
			confirmed_payload = excluded.confirmed_payload,
			local_version     = excluded.local_version,
			remote_version    = excluded.remote_version,
			status            = excluded.status,
			deleted           = excluded.deleted,
			updated_at        = excluded.updated_at;`

	deleteRecord = `
		DELETE FROM records
		WHERE entity_type = ? AND entity_id = ?;`

	tombstoneRecord = `
		UPDATE records SET
			deleted       = 1,
			local_version = local_version + 1,
			status        = ?,
			updated_at    = ?
		WHERE entity_type = ? AND entity_id = ? AND deleted = 0;`

	insertQueueEntry = `
		INSERT INTO sync_queue (
			entity_type,
			entity_id,
			operation,
			payload,
			base_version,
			operation_id,
			retry_count,
			status,
			next_attempt_at,
			enqueued_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	// A due entry must also be the oldest sendable entry for its entity:
	// an earlier sibling still waiting (in backoff, conflicted or
	// in-flight) holds every later entry for that entity back, so edits
	// never overtake each other across drain cycles.
	selectDueEntries = `
		SELECT
			e.id,
			e.entity_type,
			e.entity_id,
			e.operation,
			e.payload,
			e.base_version,
			e.operation_id,
			e.retry_count,
			e.status,
			e.next_attempt_at,
			e.enqueued_at
		FROM sync_queue e
		WHERE e.status = ? AND e.next_attempt_at <= ?
		  AND NOT EXISTS (
			SELECT 1 FROM sync_queue h
			WHERE h.entity_type = e.entity_type
			  AND h.entity_id = e.entity_id
			  AND h.id < e.id
			  AND NOT (h.status = ? AND h.next_attempt_at <= ?))
		ORDER BY e.id;`

	selectEntriesByStatus = `
		SELECT
			id,
			entity_type,
			entity_id,
			operation,
			payload,
			base_version,
			operation_id,
			retry_count,
			status,
			next_attempt_at,
			enqueued_at
		FROM sync_queue
		WHERE status = ?
		ORDER BY id;`

	updateEntryStatus = `
		UPDATE sync_queue SET status = ?
		WHERE id = ?;`

	updateEntryRetry = `
		UPDATE sync_queue SET
			status          = ?,
			retry_count     = ?,
			next_attempt_at = ?
		WHERE id = ?;`

	deleteQueueEntry = `
		DELETE FROM sync_queue
		WHERE id = ?;`

	recoverInFlightEntries = `
		UPDATE sync_queue SET status = ?
		WHERE status = ?;`

	countEntriesForEntity = `
		SELECT COUNT(*) FROM sync_queue
		WHERE entity_type = ? AND entity_id = ?;`

	countPendingEntries = `
		SELECT COUNT(*) FROM sync_queue
		WHERE status = ?;`

	insertActivityEntry = `
		INSERT INTO activity_log (entity_type, entity_id, action, detail, created_at)
		VALUES (?, ?, ?, ?, ?);`

	insertNotification = `
		INSERT INTO notifications (title, body, read, created_at)
		VALUES (?, ?, ?, ?);`

	acquireDrainLock = `
		INSERT INTO drain_lock (id, holder, acquired_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			holder      = excluded.holder,
			acquired_at = excluded.acquired_at
		WHERE drain_lock.holder = excluded.holder
		   OR drain_lock.acquired_at <= ?;`

	releaseDrainLock = `
		DELETE FROM drain_lock
		WHERE id = 1 AND holder = ?;`
)

// buildQueryRecords builds the dynamic SELECT used by
// [RecordRepository.Query]. A fresh statement is produced per call so every
// query restarts from scratch with no shared cursor state.
func buildQueryRecords(entityType models.EntityType, filter RecordFilter) (string, []any, error) {
	builder := sq.Select(
		"entity_type",
		"entity_id",
		"payload",
		"confirmed_payload",
		"local_version",
		"remote_version",
		"status",
		"deleted",
		"updated_at",
	).
		From("records").
		Where(sq.Eq{"entity_type": entityType}).
		OrderBy("entity_id")

	if filter.Deleted != nil {
		builder = builder.Where(sq.Eq{"deleted": *filter.Deleted})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.UpdatedAfter != nil {
		builder = builder.Where(sq.Gt{"updated_at": *filter.UpdatedAfter})
	}
	if filter.UpdatedBefore != nil {
		builder = builder.Where(sq.Lt{"updated_at": *filter.UpdatedBefore})
	}

	return builder.ToSql()
}

// buildPurgeOlderThan builds the age-threshold DELETE for the prunable
// collections (activity_log, notifications).
func buildPurgeOlderThan(table string, cutoff any) (string, []any, error) {
	return sq.Delete(table).Where(sq.Lt{"created_at": cutoff}).ToSql()
}
