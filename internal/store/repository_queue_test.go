package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

var queueColumns = []string{
	"id",
	"entity_type",
	"entity_id",
	"operation",
	"payload",
	"base_version",
	"operation_id",
	"retry_count",
	"status",
	"next_attempt_at",
	"enqueued_at",
}

func TestQueueRepository_Due(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	now := time.Now().UTC()
	rows := sqlmock.NewRows(queueColumns).
		AddRow(1, "item", "item-a", "update", `{"quantity":5}`, 2, "op-1", 0, "pending", now, now).
		AddRow(2, "item", "item-b", "create", `{"name":"Crate"}`, 0, "op-2", 1, "pending", now, now)

	dbMock.ExpectQuery(regexp.QuoteMeta(selectDueEntries)).
		WithArgs(models.EntryPending, now, models.EntryPending, now).
		WillReturnRows(rows)

	entries, err := repo.Due(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, models.OpUpdate, entries[0].Operation)
	assert.JSONEq(t, `{"quantity":5}`, string(entries[0].Payload))
	assert.Equal(t, int64(2), entries[0].BaseVersion)
	assert.Equal(t, 1, entries[1].RetryCount)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestQueueRepository_Conflicted(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	now := time.Now().UTC()
	dbMock.ExpectQuery(regexp.QuoteMeta(selectEntriesByStatus)).
		WithArgs(models.EntryConflicted).
		WillReturnRows(sqlmock.NewRows(queueColumns).
			AddRow(7, "item", "item-a", "update", `{"quantity":5}`, 2, "op-7", 0, "conflicted", now, now))

	entries, err := repo.Conflicted(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.EntryConflicted, entries[0].Status)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestQueueRepository_MarkInFlight(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	t.Run("marks the entry", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(updateEntryStatus)).
			WithArgs(models.EntryInFlight, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkInFlight(context.Background(), 5))
	})

	t.Run("missing entry", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(updateEntryStatus)).
			WithArgs(models.EntryInFlight, int64(6)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.MarkInFlight(context.Background(), 6), ErrQueueEntryNotFound)
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestQueueRepository_MarkRetry(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	nextAttempt := time.Now().UTC().Add(2 * time.Second)
	dbMock.ExpectExec(regexp.QuoteMeta(updateEntryRetry)).
		WithArgs(models.EntryPending, 2, nextAttempt, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkRetry(context.Background(), 5, 2, nextAttempt))
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestQueueRepository_RecoverInFlight(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	dbMock.ExpectExec(regexp.QuoteMeta(recoverInFlightEntries)).
		WithArgs(models.EntryPending, models.EntryInFlight).
		WillReturnResult(sqlmock.NewResult(0, 3))

	recovered, err := repo.RecoverInFlight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), recovered)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestQueueRepository_Remove(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	dbMock.ExpectExec(regexp.QuoteMeta(deleteQueueEntry)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Remove(context.Background(), 9))
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestQueueRepository_PendingCount(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	dbMock.ExpectQuery(regexp.QuoteMeta(countPendingEntries)).
		WithArgs(models.EntryPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
