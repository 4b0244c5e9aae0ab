// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
)

// additiveFields are merged by summing both sides instead of picking one.
var additiveFields = map[string]struct{}{
	"quantity": {},
}

// pendingEntry is one conflicted queue entry together with the remote state
// it was diffed against and its per-field conflicts.
type pendingEntry struct {
	entry     models.SyncQueueEntry
	remote    models.RemoteRecord
	conflicts map[string]models.Conflict // keyed by conflict id
}

type conflictResolver struct {
	records store.RecordRepository
	queue   store.QueueRepository
	log     *logger.Logger

	mu         sync.RWMutex
	byEntry    map[int64]*pendingEntry
	conflictID map[string]int64 // conflict id -> entry id
}

func newConflictResolver(records store.RecordRepository, queue store.QueueRepository, log *logger.Logger) *conflictResolver {
	return &conflictResolver{
		records:    records,
		queue:      queue,
		log:        log,
		byEntry:    make(map[int64]*pendingEntry),
		conflictID: make(map[string]int64),
	}
}

// register records detected conflicts for an entry, replacing any earlier
// registration of the same entry (re-detection after a restart).
func (r *conflictResolver) register(entry models.SyncQueueEntry, remote models.RemoteRecord, conflicts []models.Conflict) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byEntry[entry.ID]; ok {
		for id := range old.conflicts {
			delete(r.conflictID, id)
		}
	}

	pe := &pendingEntry{
		entry:     entry,
		remote:    remote,
		conflicts: make(map[string]models.Conflict, len(conflicts)),
	}
	for _, c := range conflicts {
		pe.conflicts[c.ID] = c
		r.conflictID[c.ID] = entry.ID
	}
	r.byEntry[entry.ID] = pe
}

// count returns the number of unresolved conflicts.
func (r *conflictResolver) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conflictID)
}

func (r *conflictResolver) ListPendingConflicts() []models.Conflict {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryIDs := make([]int64, 0, len(r.byEntry))
	for id := range r.byEntry {
		entryIDs = append(entryIDs, id)
	}
	sort.Slice(entryIDs, func(i, j int) bool { return entryIDs[i] < entryIDs[j] })

	out := make([]models.Conflict, 0, len(r.conflictID))
	for _, entryID := range entryIDs {
		pe := r.byEntry[entryID]
		fields := make([]models.Conflict, 0, len(pe.conflicts))
		for _, c := range pe.conflicts {
			fields = append(fields, c)
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
		out = append(out, fields...)
	}
	return out
}

func (r *conflictResolver) SuggestResolution(conflict models.Conflict) models.Strategy {
	if conflict.RemoteTimestamp.After(conflict.LocalTimestamp) {
		return models.StrategyKeepRemote
	}
	return models.StrategyKeepLocal
}

func (r *conflictResolver) SuggestMerge(conflict models.Conflict) any {
	if _, additive := additiveFields[conflict.Field]; additive {
		if sum, ok := sumNumeric(conflict.LocalValue, conflict.RemoteValue); ok {
			return sum
		}
	}
	if conflict.RemoteTimestamp.After(conflict.LocalTimestamp) {
		return conflict.RemoteValue
	}
	return conflict.LocalValue
}

func (r *conflictResolver) ApplyResolutions(ctx context.Context, resolutions []models.ConflictResolution) error {
	log := logger.FromContext(ctx)

	// group decisions by the queue entry they settle
	byEntry := make(map[int64]map[string]models.ConflictResolution)
	r.mu.RLock()
	for _, res := range resolutions {
		entryID, ok := r.conflictID[res.ConflictID]
		if !ok {
			// already settled or never existed: re-applying is a no-op
			log.Debug().
				Str("func", "conflictResolver.ApplyResolutions").
				Str("conflict_id", res.ConflictID).
				Msg("skipping unknown conflict")
			continue
		}
		if byEntry[entryID] == nil {
			byEntry[entryID] = make(map[string]models.ConflictResolution)
		}
		byEntry[entryID][res.ConflictID] = res
	}
	r.mu.RUnlock()

	var incomplete bool
	for entryID, decisions := range byEntry {
		r.mu.RLock()
		pe := r.byEntry[entryID]
		r.mu.RUnlock()
		if pe == nil {
			continue
		}

		if len(decisions) < len(pe.conflicts) {
			incomplete = true
			continue
		}

		if err := r.settle(ctx, pe, decisions); err != nil {
			return err
		}

		r.mu.Lock()
		for id := range pe.conflicts {
			delete(r.conflictID, id)
		}
		delete(r.byEntry, entryID)
		r.mu.Unlock()
	}

	if incomplete {
		return ErrIncompleteResolution
	}
	return nil
}

func (r *conflictResolver) AutoResolve(ctx context.Context, strategy models.AutoStrategy) error {
	conflicts := r.ListPendingConflicts()
	if len(conflicts) == 0 {
		return nil
	}

	resolutions := make([]models.ConflictResolution, 0, len(conflicts))
	for _, c := range conflicts {
		var chosen models.Strategy
		switch strategy {
		case models.AutoLatestWins:
			chosen = r.SuggestResolution(c)
		case models.AutoRemoteWins:
			chosen = models.StrategyKeepRemote
		case models.AutoLocalWins:
			chosen = models.StrategyKeepLocal
		default:
			return fmt.Errorf("%w: %s", ErrUnknownAutoStrategy, strategy)
		}
		resolutions = append(resolutions, models.ConflictResolution{ConflictID: c.ID, Strategy: chosen})
	}

	return r.ApplyResolutions(ctx, resolutions)
}

// settle computes the final payload for one fully decided entry and commits
// it atomically. Values that differ from the remote side are pushed again
// through a fresh queue entry based on the current remote version.
func (r *conflictResolver) settle(ctx context.Context, pe *pendingEntry, decisions map[string]models.ConflictResolution) error {
	log := logger.FromContext(ctx)

	if _, ok := pe.conflicts[deletionConflictID(pe.entry)]; ok {
		return r.settleDeletion(ctx, pe, decisions[deletionConflictID(pe.entry)])
	}

	final, err := pe.remote.Fields()
	if err != nil {
		return fmt.Errorf("decode remote payload: %w", err)
	}

	resolved := make(map[string]any, len(decisions))
	requeueFields := make(map[string]any)
	for id, res := range decisions {
		conflict := pe.conflicts[id]
		value, vErr := r.resolvedValue(conflict, res)
		if vErr != nil {
			return vErr
		}
		resolved[conflict.Field] = value
		if !valuesEqual(value, conflict.RemoteValue) {
			requeueFields[conflict.Field] = value
		}
	}

	if err = mergo.Merge(&final, resolved, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge resolved fields: %w", err)
	}

	payload, err := json.Marshal(final)
	if err != nil {
		return fmt.Errorf("encode final payload: %w", err)
	}

	commit := store.ResolutionCommit{
		Entry:         pe.entry,
		Payload:       payload,
		RemoteVersion: pe.remote.Version,
	}
	if len(requeueFields) > 0 {
		changed, mErr := json.Marshal(requeueFields)
		if mErr != nil {
			return fmt.Errorf("encode requeue payload: %w", mErr)
		}
		commit.Requeue = &models.SyncQueueEntry{
			EntityType:  pe.entry.EntityType,
			EntityID:    pe.entry.EntityID,
			Operation:   models.OpUpdate,
			Payload:     changed,
			OperationID: uuid.NewString(),
		}
	}

	if err = r.records.CommitResolution(ctx, commit); err != nil {
		if errors.Is(err, store.ErrQueueEntryNotFound) {
			// a concurrent caller settled the entry first
			return nil
		}
		return fmt.Errorf("commit resolution: %w", err)
	}

	log.Info().
		Str("func", "conflictResolver.settle").
		Int64("entry_id", pe.entry.ID).
		Str("entity_id", pe.entry.EntityID).
		Int("fields", len(decisions)).
		Bool("requeued", commit.Requeue != nil).
		Msg("conflict resolved")

	return nil
}

// settleDeletion handles the two whole-record conflicts: local delete vs
// remote edit (entry is a delete) and local edit vs remote delete.
func (r *conflictResolver) settleDeletion(ctx context.Context, pe *pendingEntry, res models.ConflictResolution) error {
	strategy := res.Strategy
	if strategy == models.StrategyMerge {
		// merging a tombstone degenerates to picking the later side
		conflict := pe.conflicts[res.ConflictID]
		strategy = r.SuggestResolution(conflict)
	}

	switch {
	case pe.entry.Operation == models.OpDelete && strategy == models.StrategyKeepLocal:
		// re-send the delete against the current remote version
		commit := store.ResolutionCommit{
			Entry:         pe.entry,
			Payload:       pe.entry.Payload,
			RemoteVersion: pe.remote.Version,
			Requeue: &models.SyncQueueEntry{
				EntityType:  pe.entry.EntityType,
				EntityID:    pe.entry.EntityID,
				Operation:   models.OpDelete,
				OperationID: uuid.NewString(),
			},
		}
		return r.commitIgnoringSettled(ctx, commit)

	case pe.entry.Operation == models.OpDelete && strategy == models.StrategyKeepRemote:
		// undelete locally with the server's current state
		commit := store.ResolutionCommit{
			Entry:         pe.entry,
			Payload:       pe.remote.Payload,
			RemoteVersion: pe.remote.Version,
		}
		return r.commitIgnoringSettled(ctx, commit)

	case strategy == models.StrategyKeepLocal:
		// remote deleted, local edit wins: resurrect remotely with the
		// full local payload
		rec, err := r.records.Get(ctx, pe.entry.EntityType, pe.entry.EntityID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return r.discardEntry(ctx, pe.entry)
			}
			return fmt.Errorf("load local record: %w", err)
		}
		commit := store.ResolutionCommit{
			Entry:         pe.entry,
			Payload:       rec.Payload,
			RemoteVersion: pe.remote.Version,
			Requeue: &models.SyncQueueEntry{
				EntityType:  pe.entry.EntityType,
				EntityID:    pe.entry.EntityID,
				Operation:   models.OpCreate,
				Payload:     rec.Payload,
				OperationID: uuid.NewString(),
			},
		}
		return r.commitIgnoringSettled(ctx, commit)

	case strategy == models.StrategyKeepRemote:
		// accept the remote deletion: drop the entry and tombstone locally
		if err := r.discardEntry(ctx, pe.entry); err != nil {
			return err
		}
		remote := pe.remote
		remote.Deleted = true
		if err := r.records.ApplyRemote(ctx, remote); err != nil {
			return fmt.Errorf("apply remote deletion: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, res.Strategy)
	}
}

func (r *conflictResolver) resolvedValue(conflict models.Conflict, res models.ConflictResolution) (any, error) {
	switch res.Strategy {
	case models.StrategyKeepLocal:
		return conflict.LocalValue, nil
	case models.StrategyKeepRemote:
		return conflict.RemoteValue, nil
	case models.StrategyMerge:
		if res.ResolvedValue != nil {
			return res.ResolvedValue, nil
		}
		return r.SuggestMerge(conflict), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, res.Strategy)
	}
}

func (r *conflictResolver) commitIgnoringSettled(ctx context.Context, commit store.ResolutionCommit) error {
	err := r.records.CommitResolution(ctx, commit)
	if err != nil && !errors.Is(err, store.ErrQueueEntryNotFound) {
		return fmt.Errorf("commit resolution: %w", err)
	}
	return nil
}

func (r *conflictResolver) discardEntry(ctx context.Context, entry models.SyncQueueEntry) error {
	if err := r.queue.Remove(ctx, entry.ID); err != nil {
		return fmt.Errorf("remove queue entry: %w", err)
	}
	return nil
}

func deletionConflictID(entry models.SyncQueueEntry) string {
	return fmt.Sprintf("%d:%s", entry.ID, deletedField)
}

// sumNumeric adds two JSON numbers. Decoded JSON numbers arrive as float64;
// integral results stay integral when re-encoded.
func sumNumeric(a, b any) (float64, bool) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return 0, false
	}
	return af + bf, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
