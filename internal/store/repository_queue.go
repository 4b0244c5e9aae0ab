package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

// queueRepository is the SQLite-backed implementation of [QueueRepository].
// Queue state transitions are persisted before the corresponding network
// call is made, so a crash mid-drain resumes with an at-least-once resend.
type queueRepository struct {
	*DB
	logger *logger.Logger
}

// NewQueueRepository constructs a [QueueRepository] backed by the provided
// database connection and logger.
func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func scanQueueEntry(row rowScanner) (models.SyncQueueEntry, error) {
	var (
		entry   models.SyncQueueEntry
		payload string
	)

	err := row.Scan(
		&entry.ID,
		&entry.EntityType,
		&entry.EntityID,
		&entry.Operation,
		&payload,
		&entry.BaseVersion,
		&entry.OperationID,
		&entry.RetryCount,
		&entry.Status,
		&entry.NextAttemptAt,
		&entry.EnqueuedAt,
	)
	if err != nil {
		return models.SyncQueueEntry{}, err
	}

	entry.Payload = json.RawMessage(payload)
	return entry, nil
}

func (q *queueRepository) selectEntries(ctx context.Context, funcName, query string, args ...any) ([]models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute queue query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.SyncQueueEntry, 0, 16)

	for rows.Next() {
		entry, scanErr := scanQueueEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan queue entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (q *queueRepository) Due(ctx context.Context, now time.Time) ([]models.SyncQueueEntry, error) {
	return q.selectEntries(ctx, "queueRepository.Due", selectDueEntries, models.EntryPending, now, models.EntryPending, now)
}

func (q *queueRepository) Conflicted(ctx context.Context) ([]models.SyncQueueEntry, error) {
	return q.selectEntries(ctx, "queueRepository.Conflicted", selectEntriesByStatus, models.EntryConflicted)
}

func (q *queueRepository) setStatus(ctx context.Context, funcName string, id int64, status models.EntryStatus) error {
	log := logger.FromContext(ctx)

	res, err := q.DB.ExecContext(ctx, updateEntryStatus, status, id)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("entry_id", id).
			Msg("failed to update queue entry status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (q *queueRepository) MarkInFlight(ctx context.Context, id int64) error {
	return q.setStatus(ctx, "queueRepository.MarkInFlight", id, models.EntryInFlight)
}

func (q *queueRepository) MarkConflicted(ctx context.Context, id int64) error {
	return q.setStatus(ctx, "queueRepository.MarkConflicted", id, models.EntryConflicted)
}

func (q *queueRepository) MarkRetry(ctx context.Context, id int64, retryCount int, nextAttempt time.Time) error {
	log := logger.FromContext(ctx)

	res, err := q.DB.ExecContext(ctx, updateEntryRetry, models.EntryPending, retryCount, nextAttempt, id)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkRetry").
			Int64("entry_id", id).
			Int("retry_count", retryCount).
			Msg("failed to schedule queue entry retry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (q *queueRepository) Remove(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	_, err := q.DB.ExecContext(ctx, deleteQueueEntry, id)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Remove").
			Int64("entry_id", id).
			Msg("failed to remove queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (q *queueRepository) RecoverInFlight(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := q.DB.ExecContext(ctx, recoverInFlightEntries, models.EntryPending, models.EntryInFlight)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.RecoverInFlight").
			Msg("failed to recover in-flight queue entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	recovered, _ := res.RowsAffected()
	if recovered > 0 {
		log.Warn().
			Str("func", "queueRepository.RecoverInFlight").
			Int64("recovered", recovered).
			Msg("returned in-flight entries to pending after unclean shutdown")
	}

	return recovered, nil
}

func (q *queueRepository) PendingCount(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := q.DB.QueryRowContext(ctx, countPendingEntries, models.EntryPending).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "queueRepository.PendingCount").
			Msg("failed to count pending queue entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
