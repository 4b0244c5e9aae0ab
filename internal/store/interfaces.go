// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordFilter narrows Query results. Nil fields are ignored, so the zero
// value matches every record of the entity type.
type RecordFilter struct {
	Deleted       *bool
	Status        *models.RecordStatus
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
}

// ResolutionCommit describes the atomic settlement of a conflicted queue
// entry: the final local payload, the authoritative remote version, and an
// optional fresh queue entry when the resolved value still has to be pushed.
type ResolutionCommit struct {
	Entry         models.SyncQueueEntry
	Payload       json.RawMessage
	RemoteVersion int64
	Requeue       *models.SyncQueueEntry
}

// RecordRepository is the single writer for the records collection. Every
// mutating operation that needs a matching queue entry performs both writes
// in one transaction: no mutation without a queue entry, no orphan queue
// entry without the mutation.
type RecordRepository interface {
	Get(ctx context.Context, entityType models.EntityType, entityID string) (models.Record, error)
	Query(ctx context.Context, entityType models.EntityType, filter RecordFilter) ([]models.Record, error)

	// PutAndEnqueue overwrites the record (bumping its local version) and
	// enqueues the matching sync entry atomically. payload is the full new
	// entity value; changed carries only the mutated fields for conflict
	// detection.
	PutAndEnqueue(ctx context.Context, entityType models.EntityType, entityID string, payload, changed json.RawMessage) (models.Record, models.SyncQueueEntry, error)

	// SoftDeleteAndEnqueue tombstones the record and enqueues the delete in
	// one transaction. The row is purged only once the delete is confirmed.
	SoftDeleteAndEnqueue(ctx context.Context, entityType models.EntityType, entityID string) (models.SyncQueueEntry, error)

	// ApplyRemote overwrites the record with the server's authoritative
	// state (first fetch, keep-remote resolution, refresh after conflict).
	ApplyRemote(ctx context.Context, remote models.RemoteRecord) error

	// ConfirmEntry removes the accepted queue entry and advances the
	// record's remote version; the record is promoted to confirmed (and a
	// confirmed delete purged) once no further entries remain for it.
	ConfirmEntry(ctx context.Context, entry models.SyncQueueEntry, newVersion int64) error

	// RevertEntry drops a terminally failed entry and, when it was the
	// entity's last pending mutation, restores the record to its last
	// confirmed state.
	RevertEntry(ctx context.Context, entry models.SyncQueueEntry) error

	// CommitResolution settles a conflicted entry in one transaction.
	// Returns ErrQueueEntryNotFound when the entry was already settled,
	// which callers treat as an idempotent no-op.
	CommitResolution(ctx context.Context, commit ResolutionCommit) error
}

// QueueRepository manages the durable outbound mutation queue.
type QueueRepository interface {
	// Due returns pending entries whose next attempt is not after now, in
	// enqueue order.
	Due(ctx context.Context, now time.Time) ([]models.SyncQueueEntry, error)

	MarkInFlight(ctx context.Context, id int64) error
	MarkRetry(ctx context.Context, id int64, retryCount int, nextAttempt time.Time) error
	MarkConflicted(ctx context.Context, id int64) error
	Remove(ctx context.Context, id int64) error

	// Conflicted returns entries held for conflict resolution, in enqueue
	// order, so conflicts can be re-derived after a restart.
	Conflicted(ctx context.Context) ([]models.SyncQueueEntry, error)

	// RecoverInFlight returns in-flight entries to pending. Called once on
	// startup: a crash mid-drain leaves entries in-flight, and the contract
	// is at-least-once resend.
	RecoverInFlight(ctx context.Context) (int64, error)

	PendingCount(ctx context.Context) (int, error)
}

// ActivityRepository stores the prunable local activity log.
type ActivityRepository interface {
	Append(ctx context.Context, entry models.ActivityEntry) error
	// PurgeOlderThan removes entries created before cutoff and returns an
	// estimate of the bytes freed.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	OldestCreatedAt(ctx context.Context) (*time.Time, error)
}

// NotificationRepository stores queued user-facing notifications.
type NotificationRepository interface {
	Append(ctx context.Context, entry models.NotificationEntry) error
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	OldestCreatedAt(ctx context.Context) (*time.Time, error)
}

// DrainLockRepository is the durable lease guaranteeing at-most-one drain
// cycle across process boundaries.
type DrainLockRepository interface {
	// Acquire takes the lease for holder, stealing it only when the current
	// lease is older than ttl. Returns ErrDrainLockHeld otherwise.
	Acquire(ctx context.Context, holder string, ttl time.Duration) error
	Release(ctx context.Context, holder string) error
}
