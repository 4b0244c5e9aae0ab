package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

// recordRepository is the SQLite-backed implementation of
// [RecordRepository]. It is the single writer for the records table: both
// the optimistic-write path and conflict resolution commit through it, and
// every mutation that needs propagation inserts its sync_queue entry inside
// the same transaction.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		rec       models.Record
		payload   string
		confirmed sql.NullString
	)

	err := row.Scan(
		&rec.EntityType,
		&rec.EntityID,
		&payload,
		&confirmed,
		&rec.LocalVersion,
		&rec.RemoteVersion,
		&rec.Status,
		&rec.Deleted,
		&rec.UpdatedAt,
	)
	if err != nil {
		return models.Record{}, err
	}

	rec.Payload = json.RawMessage(payload)
	if confirmed.Valid {
		rec.ConfirmedPayload = json.RawMessage(confirmed.String)
	}
	return rec, nil
}

func (r *recordRepository) Get(ctx context.Context, entityType models.EntityType, entityID string) (models.Record, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getRecord, entityType, entityID)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "recordRepository.Get").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *recordRepository) Query(ctx context.Context, entityType models.EntityType, filter RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQueryRecords(entityType, filter)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Query").
			Str("entity_type", string(entityType)).
			Msg("failed to build records query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Query").
			Str("entity_type", string(entityType)).
			Msg("failed to execute records query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Record, 0, 50)

	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.Query").
				Str("entity_type", string(entityType)).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.Query").
			Str("entity_type", string(entityType)).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (r *recordRepository) PutAndEnqueue(ctx context.Context, entityType models.EntityType, entityID string, payload, changed json.RawMessage) (models.Record, models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	var (
		rec   models.Record
		entry models.SyncQueueEntry
	)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		current, getErr := scanRecord(tx.QueryRowContext(ctx, getRecord, entityType, entityID))
		operation := models.OpUpdate
		switch {
		case errors.Is(getErr, sql.ErrNoRows):
			operation = models.OpCreate
			current = models.Record{EntityType: entityType, EntityID: entityID}
		case getErr != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, getErr)
		}

		rec = models.Record{
			EntityType:       entityType,
			EntityID:         entityID,
			Payload:          payload,
			ConfirmedPayload: current.ConfirmedPayload,
			LocalVersion:     current.LocalVersion + 1,
			RemoteVersion:    current.RemoteVersion,
			Status:           models.RecordUnconfirmed,
			Deleted:          false,
			UpdatedAt:        now,
		}

		if upErr := upsertRecordTx(ctx, tx, rec); upErr != nil {
			return upErr
		}

		entry = models.SyncQueueEntry{
			EntityType:    entityType,
			EntityID:      entityID,
			Operation:     operation,
			Payload:       changed,
			BaseVersion:   current.RemoteVersion,
			OperationID:   uuid.NewString(),
			RetryCount:    0,
			Status:        models.EntryPending,
			NextAttemptAt: now,
			EnqueuedAt:    now,
		}

		id, insErr := insertQueueEntryTx(ctx, tx, entry)
		if insErr != nil {
			return insErr
		}
		entry.ID = id

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.PutAndEnqueue").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to save record with queue entry")
		return models.Record{}, models.SyncQueueEntry{}, err
	}

	return rec, entry, nil
}

func (r *recordRepository) SoftDeleteAndEnqueue(ctx context.Context, entityType models.EntityType, entityID string) (models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	var entry models.SyncQueueEntry

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		current, getErr := scanRecord(tx.QueryRowContext(ctx, getRecord, entityType, entityID))
		if errors.Is(getErr, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		if getErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, getErr)
		}

		res, execErr := tx.ExecContext(ctx, tombstoneRecord, models.RecordUnconfirmed, now, entityType, entityID)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			// already tombstoned, the earlier delete entry is still queued
			return ErrRecordNotFound
		}

		entry = models.SyncQueueEntry{
			EntityType:    entityType,
			EntityID:      entityID,
			Operation:     models.OpDelete,
			Payload:       nil,
			BaseVersion:   current.RemoteVersion,
			OperationID:   uuid.NewString(),
			RetryCount:    0,
			Status:        models.EntryPending,
			NextAttemptAt: now,
			EnqueuedAt:    now,
		}

		id, insErr := insertQueueEntryTx(ctx, tx, entry)
		if insErr != nil {
			return insErr
		}
		entry.ID = id

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SoftDeleteAndEnqueue").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to tombstone record with queue entry")
		return models.SyncQueueEntry{}, err
	}

	return entry, nil
}

func (r *recordRepository) ApplyRemote(ctx context.Context, remote models.RemoteRecord) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	rec := models.Record{
		EntityType:       remote.EntityType,
		EntityID:         remote.EntityID,
		Payload:          remote.Payload,
		ConfirmedPayload: remote.Payload,
		LocalVersion:     remote.Version,
		RemoteVersion:    remote.Version,
		Status:           models.RecordConfirmed,
		Deleted:          remote.Deleted,
		UpdatedAt:        now,
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		return upsertRecordTx(ctx, tx, rec)
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ApplyRemote").
			Str("entity_type", string(remote.EntityType)).
			Str("entity_id", remote.EntityID).
			Msg("failed to apply remote record")
		return err
	}

	return nil
}

func (r *recordRepository) ConfirmEntry(ctx context.Context, entry models.SyncQueueEntry, newVersion int64) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, deleteQueueEntry, entry.ID)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			// already confirmed by an earlier drain, nothing left to do
			return nil
		}

		remaining, cntErr := countEntriesForEntityTx(ctx, tx, entry.EntityType, entry.EntityID)
		if cntErr != nil {
			return cntErr
		}

		if entry.Operation == models.OpDelete && remaining == 0 {
			// tombstone confirmed remotely, safe to purge
			if _, delErr := tx.ExecContext(ctx, deleteRecord, entry.EntityType, entry.EntityID); delErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, delErr)
			}
			return nil
		}

		current, getErr := scanRecord(tx.QueryRowContext(ctx, getRecord, entry.EntityType, entry.EntityID))
		if errors.Is(getErr, sql.ErrNoRows) {
			return nil
		}
		if getErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, getErr)
		}

		current.RemoteVersion = newVersion
		if current.LocalVersion < newVersion {
			current.LocalVersion = newVersion
		}
		if remaining == 0 {
			current.Status = models.RecordConfirmed
			current.ConfirmedPayload = current.Payload
		}
		current.UpdatedAt = now

		return upsertRecordTx(ctx, tx, current)
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ConfirmEntry").
			Int64("entry_id", entry.ID).
			Str("entity_id", entry.EntityID).
			Msg("failed to confirm queue entry")
		return err
	}

	return nil
}

func (r *recordRepository) RevertEntry(ctx context.Context, entry models.SyncQueueEntry) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, deleteQueueEntry, entry.ID)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return nil
		}

		remaining, cntErr := countEntriesForEntityTx(ctx, tx, entry.EntityType, entry.EntityID)
		if cntErr != nil {
			return cntErr
		}
		if remaining > 0 {
			// later mutations for the entity are still queued; the record
			// keeps its optimistic value until they settle
			return nil
		}

		current, getErr := scanRecord(tx.QueryRowContext(ctx, getRecord, entry.EntityType, entry.EntityID))
		if errors.Is(getErr, sql.ErrNoRows) {
			return nil
		}
		if getErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, getErr)
		}

		if current.ConfirmedPayload == nil && current.RemoteVersion == 0 {
			// the entity never reached the server: reverting a failed
			// create removes the optimistic record entirely
			if _, delErr := tx.ExecContext(ctx, deleteRecord, entry.EntityType, entry.EntityID); delErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, delErr)
			}
			return nil
		}

		current.Payload = current.ConfirmedPayload
		current.LocalVersion = current.RemoteVersion
		current.Status = models.RecordConfirmed
		current.Deleted = false
		current.UpdatedAt = now

		return upsertRecordTx(ctx, tx, current)
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.RevertEntry").
			Int64("entry_id", entry.ID).
			Str("entity_id", entry.EntityID).
			Msg("failed to revert queue entry")
		return err
	}

	return nil
}

func (r *recordRepository) CommitResolution(ctx context.Context, commit ResolutionCommit) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()
	entry := commit.Entry

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, deleteQueueEntry, entry.ID)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			// entry already settled: the same resolution was applied before
			return ErrQueueEntryNotFound
		}

		current, getErr := scanRecord(tx.QueryRowContext(ctx, getRecord, entry.EntityType, entry.EntityID))
		if errors.Is(getErr, sql.ErrNoRows) {
			return nil
		}
		if getErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, getErr)
		}

		if current.Deleted && entry.Operation != models.OpDelete {
			// deletion has highest precedence: a tombstone placed while the
			// conflict was pending discards the resolution, and the queued
			// delete keeps its place
			return nil
		}

		if commit.Requeue != nil {
			if current.Deleted {
				// rebasing a conflicted delete: the tombstone stays, only
				// the base version moves forward
				current.RemoteVersion = commit.RemoteVersion
				current.Status = models.RecordUnconfirmed
				current.UpdatedAt = now
			} else {
				current.Payload = commit.Payload
				current.RemoteVersion = commit.RemoteVersion
				current.LocalVersion = commit.RemoteVersion + 1
				current.Status = models.RecordUnconfirmed
				current.UpdatedAt = now
			}

			if upErr := upsertRecordTx(ctx, tx, current); upErr != nil {
				return upErr
			}

			requeue := *commit.Requeue
			requeue.BaseVersion = commit.RemoteVersion
			requeue.Status = models.EntryPending
			requeue.NextAttemptAt = now
			requeue.EnqueuedAt = now

			id, insErr := insertQueueEntryTx(ctx, tx, requeue)
			if insErr != nil {
				return insErr
			}
			commit.Requeue.ID = id
			return nil
		}

		current.Payload = commit.Payload
		current.ConfirmedPayload = commit.Payload
		current.RemoteVersion = commit.RemoteVersion
		current.LocalVersion = commit.RemoteVersion
		current.Status = models.RecordConfirmed
		current.Deleted = false
		current.UpdatedAt = now

		return upsertRecordTx(ctx, tx, current)
	})
	if err != nil {
		if !errors.Is(err, ErrQueueEntryNotFound) {
			log.Err(err).
				Str("func", "recordRepository.CommitResolution").
				Int64("entry_id", entry.ID).
				Str("entity_id", entry.EntityID).
				Msg("failed to commit conflict resolution")
		}
		return err
	}

	return nil
}

// ── shared tx helpers ────────────────────────────────────────────────────────

func upsertRecordTx(ctx context.Context, tx *sql.Tx, rec models.Record) error {
	var confirmed any
	if rec.ConfirmedPayload != nil {
		confirmed = string(rec.ConfirmedPayload)
	}

	_, err := tx.ExecContext(ctx, upsertRecord,
		rec.EntityType,
		rec.EntityID,
		string(rec.Payload),
		confirmed,
		rec.LocalVersion,
		rec.RemoteVersion,
		rec.Status,
		rec.Deleted,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func insertQueueEntryTx(ctx context.Context, tx *sql.Tx, entry models.SyncQueueEntry) (int64, error) {
	payload := "{}"
	if entry.Payload != nil {
		payload = string(entry.Payload)
	}

	res, err := tx.ExecContext(ctx, insertQueueEntry,
		entry.EntityType,
		entry.EntityID,
		entry.Operation,
		payload,
		entry.BaseVersion,
		entry.OperationID,
		entry.RetryCount,
		entry.Status,
		entry.NextAttemptAt,
		entry.EnqueuedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return id, nil
}

func countEntriesForEntityTx(ctx context.Context, tx *sql.Tx, entityType models.EntityType, entityID string) (int, error) {
	var count int
	if err := tx.QueryRowContext(ctx, countEntriesForEntity, entityType, entityID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
