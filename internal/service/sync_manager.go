// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
)

// syncManager drains the durable queue against the remote backend.
//
// At most one drain cycle runs at a time: an in-process atomic flag
// coalesces concurrent wakes, and the durable drain lease in the database
// excludes other processes sharing the same store. Entries for the same
// entity are pushed strictly in enqueue order: when one fails, the rest of
// that entity's entries are skipped for the remainder of the cycle, and the
// store keeps later entries out of the due set while an earlier sibling is
// still in backoff, conflicted or in-flight, so ordering also survives
// across cycles.
type syncManager struct {
	storages *store.Storages
	remote   adapter.RemoteAPI
	detector *conflictDetector
	resolver *conflictResolver
	bus      *Bus
	cfg      config.Sync
	log      *logger.Logger

	holder    string
	draining  atomic.Bool
	recovered bool
}

func newSyncManager(storages *store.Storages, remote adapter.RemoteAPI, resolver *conflictResolver, bus *Bus, cfg config.Sync, log *logger.Logger) *syncManager {
	return &syncManager{
		storages: storages,
		remote:   remote,
		detector: newConflictDetector(remote),
		resolver: resolver,
		bus:      bus,
		cfg:      cfg,
		log:      log,
		holder:   uuid.NewString(),
	}
}

func (m *syncManager) OnWake(ctx context.Context) error {
	if !m.draining.CompareAndSwap(false, true) {
		// a cycle is already running; the wake is absorbed by it
		return nil
	}
	defer m.draining.Store(false)

	ctx = m.log.WithContext(ctx)
	log := m.log

	err := m.storages.DrainLock.Acquire(ctx, m.holder, m.cfg.DrainLockTTL)
	if errors.Is(err, store.ErrDrainLockHeld) {
		log.Debug().
			Str("func", "syncManager.OnWake").
			Msg("drain lease held elsewhere, skipping cycle")
		return nil
	}
	if err != nil {
		return fmt.Errorf("acquire drain lease: %w", err)
	}
	defer func() {
		if relErr := m.storages.DrainLock.Release(context.WithoutCancel(ctx), m.holder); relErr != nil {
			log.Warn().Err(relErr).
				Str("func", "syncManager.OnWake").
				Msg("failed to release drain lease")
		}
	}()

	// OnWake is exclusive past the CAS, so plain bool is enough here
	if !m.recovered {
		if err = m.recover(ctx); err != nil {
			return err
		}
		m.recovered = true
	}

	return m.drain(ctx)
}

func (m *syncManager) Status(ctx context.Context) (models.SyncStatus, error) {
	pending, err := m.storages.Queue.PendingCount(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count pending entries: %w", err)
	}
	return models.SyncStatus{
		PendingCount:  pending,
		ConflictCount: m.resolver.count(),
	}, nil
}

func (m *syncManager) Subscribe(fn func(models.SyncEvent)) func() {
	return m.bus.Subscribe(fn)
}

// recover runs once per process: entries stranded in-flight by a crash go
// back to pending, and conflicts are re-derived from conflicted entries so
// the in-memory set matches the durable queue.
func (m *syncManager) recover(ctx context.Context) error {
	restored, err := m.storages.Queue.RecoverInFlight(ctx)
	if err != nil {
		return fmt.Errorf("recover in-flight entries: %w", err)
	}
	if restored > 0 {
		m.log.Info().
			Str("func", "syncManager.recover").
			Int64("restored", restored).
			Msg("returned in-flight entries to pending")
	}

	conflicted, err := m.storages.Queue.Conflicted(ctx)
	if err != nil {
		return fmt.Errorf("load conflicted entries: %w", err)
	}

	for _, entry := range conflicted {
		remote, conflicts, dErr := m.detector.detect(ctx, entry)
		if dErr != nil {
			// the entry stays conflicted; the next wake tries again
			m.log.Warn().Err(dErr).
				Str("func", "syncManager.recover").
				Int64("entry_id", entry.ID).
				Msg("could not re-derive conflicts, leaving entry held")
			continue
		}
		if len(conflicts) == 0 {
			m.confirm(ctx, entry, remote.Version)
			continue
		}
		m.resolver.register(entry, remote, conflicts)
	}

	return nil
}

func (m *syncManager) drain(ctx context.Context) error {
	now := time.Now().UTC()

	entries, err := m.storages.Queue.Due(ctx, now)
	if err != nil {
		return fmt.Errorf("load due entries: %w", err)
	}

	m.log.Debug().
		Str("func", "syncManager.drain").
		Int("due", len(entries)).
		Msg("drain cycle started")

	// entities that hit a failure this cycle; later entries for them keep
	// their place in line instead of being pushed out of order
	blocked := make(map[string]struct{})

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		key := entityKey(entry)
		if _, skip := blocked[key]; skip {
			continue
		}
		if err = m.push(ctx, entry, blocked); err != nil {
			return err
		}
	}

	m.bus.Publish(models.SyncEvent{Kind: models.EventDrainFinished, At: time.Now().UTC()})
	return nil
}

// push sends one entry. Remote failures are handled in place (conflict
// detection, backoff, terminal revert); only storage errors propagate and
// abort the cycle.
func (m *syncManager) push(ctx context.Context, entry models.SyncQueueEntry, blocked map[string]struct{}) error {
	if err := m.storages.Queue.MarkInFlight(ctx, entry.ID); err != nil {
		return fmt.Errorf("mark entry in-flight: %w", err)
	}

	resp, err := m.remote.Push(ctx, models.PushRequest{
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Operation:   entry.Operation,
		Payload:     entry.Payload,
		BaseVersion: entry.BaseVersion,
		OperationID: entry.OperationID,
	})

	switch {
	case err == nil:
		m.confirm(ctx, entry, resp.NewVersion)
		return nil
	case errors.Is(err, adapter.ErrVersionConflict):
		return m.handleConflict(ctx, entry, blocked)
	default:
		return m.handleFailure(ctx, entry, err, blocked)
	}
}

func (m *syncManager) confirm(ctx context.Context, entry models.SyncQueueEntry, newVersion int64) {
	if err := m.storages.Records.ConfirmEntry(ctx, entry, newVersion); err != nil {
		m.log.Error().Err(err).
			Str("func", "syncManager.confirm").
			Int64("entry_id", entry.ID).
			Msg("failed to confirm entry")
		return
	}

	m.appendActivity(ctx, entry, "synced", fmt.Sprintf("%s confirmed at version %d", entry.Operation, newVersion))
	m.bus.Publish(models.SyncEvent{
		Kind:       models.EventEntryConfirmed,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		EntryID:    entry.ID,
		At:         time.Now().UTC(),
	})
}

func (m *syncManager) handleConflict(ctx context.Context, entry models.SyncQueueEntry, blocked map[string]struct{}) error {
	remote, conflicts, err := m.detector.detect(ctx, entry)
	if err != nil {
		// could not compare against the server, treat as a transient failure
		return m.handleFailure(ctx, entry, err, blocked)
	}

	if len(conflicts) == 0 {
		// both sides converged on the same values
		m.confirm(ctx, entry, remote.Version)
		return nil
	}

	if err = m.storages.Queue.MarkConflicted(ctx, entry.ID); err != nil {
		return fmt.Errorf("mark entry conflicted: %w", err)
	}
	m.resolver.register(entry, remote, conflicts)
	blocked[entityKey(entry)] = struct{}{}

	m.appendActivity(ctx, entry, "conflict", fmt.Sprintf("%d field(s) diverged from server", len(conflicts)))
	m.notify(ctx, "Sync conflict", fmt.Sprintf("%s %s has %d conflicting field(s)", entry.EntityType, entry.EntityID, len(conflicts)))
	m.bus.Publish(models.SyncEvent{
		Kind:       models.EventConflictFound,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		EntryID:    entry.ID,
		At:         time.Now().UTC(),
	})

	return nil
}

func (m *syncManager) handleFailure(ctx context.Context, entry models.SyncQueueEntry, cause error, blocked map[string]struct{}) error {
	blocked[entityKey(entry)] = struct{}{}

	attempts := entry.RetryCount + 1
	if attempts < m.cfg.RetryLimit {
		delay := m.backoff(entry.RetryCount)
		if err := m.storages.Queue.MarkRetry(ctx, entry.ID, attempts, time.Now().UTC().Add(delay)); err != nil {
			return fmt.Errorf("schedule retry: %w", err)
		}
		m.log.Warn().Err(cause).
			Str("func", "syncManager.handleFailure").
			Int64("entry_id", entry.ID).
			Int("attempts", attempts).
			Dur("next_in", delay).
			Msg("push failed, retry scheduled")
		return nil
	}

	// retry ceiling reached: drop the entry and roll the record back to
	// its last confirmed state, surfacing the dropped payload
	if err := m.storages.Records.RevertEntry(ctx, entry); err != nil {
		return fmt.Errorf("revert terminally failed entry: %w", err)
	}

	m.appendActivity(ctx, entry, "sync_failed", fmt.Sprintf("%s dropped after %d attempts: %v", entry.Operation, attempts, cause))
	m.notify(ctx, "Sync failed", fmt.Sprintf("%s %s could not be synced and was reverted", entry.EntityType, entry.EntityID))
	m.bus.Publish(models.SyncEvent{
		Kind:       models.EventTerminalFailure,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		EntryID:    entry.ID,
		Payload:    entry.Payload,
		Err:        cause.Error(),
		At:         time.Now().UTC(),
	})

	m.log.Error().Err(cause).
		Str("func", "syncManager.handleFailure").
		Int64("entry_id", entry.ID).
		Str("entity_id", entry.EntityID).
		Msg("entry dropped after retry ceiling")

	return nil
}

// backoff computes the delay before the next attempt: base doubled per
// failed attempt, capped.
func (m *syncManager) backoff(retryCount int) time.Duration {
	if retryCount > 30 {
		return m.cfg.BackoffCap
	}
	delay := m.cfg.BackoffBase << uint(retryCount)
	if delay > m.cfg.BackoffCap || delay <= 0 {
		delay = m.cfg.BackoffCap
	}
	return delay
}

func (m *syncManager) appendActivity(ctx context.Context, entry models.SyncQueueEntry, action, detail string) {
	err := m.storages.Activity.Append(ctx, models.ActivityEntry{
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Action:     action,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		m.log.Warn().Err(err).
			Str("func", "syncManager.appendActivity").
			Msg("failed to append activity entry")
	}
}

func (m *syncManager) notify(ctx context.Context, title, body string) {
	err := m.storages.Notifications.Append(ctx, models.NotificationEntry{
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		m.log.Warn().Err(err).
			Str("func", "syncManager.notify").
			Msg("failed to queue notification")
	}
}

func entityKey(entry models.SyncQueueEntry) string {
	return string(entry.EntityType) + "/" + entry.EntityID
}
