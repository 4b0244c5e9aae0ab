package service

import (
	"context"
	"time"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// InventoryService is the local-first CRUD surface for inventory entities.
// Every write lands in the local store immediately and enqueues a sync entry
// in the same transaction; no operation here ever waits on the network.
type InventoryService interface {
	// PutItem creates or updates an item locally and enqueues the mutation.
	// The item gets a fresh UUID when its ID is empty. Returns the stored
	// record envelope (payload plus version counters).
	// Returns ErrInvalidDataProvided when the name is empty and
	// ErrStorageQuotaExceeded when the write does not fit the local budget.
	PutItem(ctx context.Context, item models.Item) (models.Record, error)

	// GetItem loads one item from the local store. Tombstoned items are
	// reported as not found.
	GetItem(ctx context.Context, id string) (models.Item, error)

	// ListItems returns every non-deleted item in the local store.
	ListItems(ctx context.Context) ([]models.Item, error)

	// DeleteItem tombstones the item locally and enqueues the delete.
	// The row is purged only after the server confirms the deletion.
	DeleteItem(ctx context.Context, id string) error

	// PutCategory creates or updates a category locally and enqueues the
	// mutation, with the same semantics as PutItem.
	PutCategory(ctx context.Context, category models.Category) (models.Record, error)

	// GetCategory loads one category from the local store.
	GetCategory(ctx context.Context, id string) (models.Category, error)

	// ListCategories returns every non-deleted category in the local store.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// DeleteCategory tombstones the category locally and enqueues the delete.
	DeleteCategory(ctx context.Context, id string) error
}

// SyncManager drives the outbound drain cycle: it pushes due queue entries
// to the remote backend in enqueue order, routes version conflicts to
// detection, and applies exponential backoff to transient failures.
type SyncManager interface {
	// OnWake runs one drain cycle. Wakes are coalesced: if a cycle is
	// already running in this process, or another process holds the durable
	// drain lease, OnWake returns nil immediately. The first cycle after
	// startup also recovers in-flight entries and re-derives pending
	// conflicts from the durable queue.
	OnWake(ctx context.Context) error

	// Status reports the number of entries awaiting sync and the number of
	// conflicts awaiting a decision.
	Status(ctx context.Context) (models.SyncStatus, error)

	// Subscribe registers a callback for sync lifecycle events. The
	// returned function removes the subscription. Callbacks must not block;
	// a panicking callback is recovered and logged without affecting the
	// drain cycle.
	Subscribe(fn func(models.SyncEvent)) (unsubscribe func())
}

// ConflictResolver holds conflicts awaiting a decision and settles them.
// The set is kept in memory and re-derived from conflicted queue entries on
// the first drain after a restart.
type ConflictResolver interface {
	// ListPendingConflicts returns every unresolved conflict in stable
	// order (by queue entry, then by field).
	ListPendingConflicts() []models.Conflict

	// SuggestResolution recommends a strategy for one conflict: the side
	// with the later timestamp wins, a tie keeps local.
	SuggestResolution(conflict models.Conflict) models.Strategy

	// SuggestMerge computes the merged value for one conflict. The result
	// is deterministic: the same conflict always yields the same value.
	// Additive fields (quantity) sum both sides; all others take the
	// later-timestamp value, tie keeps local.
	SuggestMerge(conflict models.Conflict) any

	// ApplyResolutions settles conflicts in one pass. All conflicts of an
	// affected queue entry must be covered for that entry to commit;
	// fully covered entries are committed even when others are left
	// incomplete, and ErrIncompleteResolution is returned for the rest.
	// Re-applying an already settled resolution is a no-op.
	ApplyResolutions(ctx context.Context, resolutions []models.ConflictResolution) error

	// AutoResolve settles every pending conflict with a uniform batch
	// policy: latest-wins, remote-wins, or local-wins.
	AutoResolve(ctx context.Context, strategy models.AutoStrategy) error
}

// StorageOptimizer watches local storage consumption against the configured
// quota and prunes reclaimable history.
type StorageOptimizer interface {
	// UpdateMetrics recomputes the storage snapshot from the live database
	// size. Metrics are never persisted.
	UpdateMetrics(ctx context.Context) (models.StorageMetrics, error)

	// CleanupOldData prunes activity-log and notification history older
	// than the given age (the configured retention when zero) and returns
	// an estimate of the bytes freed. Records, queue entries, and
	// unsynced data are never touched.
	CleanupOldData(ctx context.Context, olderThan time.Duration) (int64, error)

	// GetSuggestions returns cleanup recommendations once usage crosses
	// the warning threshold; an empty slice means no action is needed.
	GetSuggestions(ctx context.Context) ([]models.CleanupSuggestion, error)

	// HasEnoughSpace reports whether an estimated write fits the remaining
	// local budget.
	HasEnoughSpace(ctx context.Context, estimatedBytes int64) (bool, error)
}
