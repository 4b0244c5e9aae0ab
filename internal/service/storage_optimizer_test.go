package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/mock"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
)

const sizeQuery = `SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size();`

func newTestOptimizer(t *testing.T, ctrl *gomock.Controller, quota int64) (StorageOptimizer, sqlmock.Sqlmock, *mock.MockActivityRepository, *mock.MockNotificationRepository) {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	activity := mock.NewMockActivityRepository(ctrl)
	notifications := mock.NewMockNotificationRepository(ctrl)

	storages := &store.Storages{
		DB:            &store.DB{DB: db},
		Activity:      activity,
		Notifications: notifications,
	}

	cfg := config.Optimizer{QuotaBytes: quota, RetentionDays: 30}
	return NewStorageOptimizer(storages, cfg, logger.Nop()), dbMock, activity, notifications
}

func expectSize(dbMock sqlmock.Sqlmock, size int64) {
	dbMock.ExpectQuery(regexp.QuoteMeta(sizeQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"size"}).AddRow(size))
}

func TestStorageOptimizer_UpdateMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	optimizer, dbMock, _, _ := newTestOptimizer(t, ctrl, 1000)
	expectSize(dbMock, 400)

	metrics, err := optimizer.UpdateMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(400), metrics.UsedBytes)
	assert.Equal(t, int64(1000), metrics.QuotaBytes)
	assert.Equal(t, int64(600), metrics.Free())
	assert.True(t, metrics.PersistentGrantGranted)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestStorageOptimizer_HasEnoughSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	optimizer, dbMock, _, _ := newTestOptimizer(t, ctrl, 1000)

	expectSize(dbMock, 400)
	ok, err := optimizer.HasEnoughSpace(context.Background(), 600)
	require.NoError(t, err)
	assert.True(t, ok)

	expectSize(dbMock, 400)
	ok, err = optimizer.HasEnoughSpace(context.Background(), 601)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageOptimizer_CleanupOldData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	optimizer, _, activity, notifications := newTestOptimizer(t, ctrl, 1000)

	before := time.Now().UTC().Add(-48 * time.Hour)
	activity.EXPECT().
		PurgeOlderThan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.True(t, cutoff.After(before))
			return 300, nil
		})
	notifications.EXPECT().PurgeOlderThan(gomock.Any(), gomock.Any()).Return(int64(120), nil)

	freed, err := optimizer.CleanupOldData(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(420), freed)
}

func TestStorageOptimizer_GetSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("quiet below the warn ratio", func(t *testing.T) {
		optimizer, dbMock, _, _ := newTestOptimizer(t, ctrl, 1000)
		expectSize(dbMock, 500)

		suggestions, err := optimizer.GetSuggestions(context.Background())
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("suggests pruning old history", func(t *testing.T) {
		optimizer, dbMock, activity, notifications := newTestOptimizer(t, ctrl, 1000)
		expectSize(dbMock, 900)

		old := time.Now().UTC().AddDate(0, -2, 0)
		recent := time.Now().UTC()
		activity.EXPECT().OldestCreatedAt(gomock.Any()).Return(&old, nil)
		notifications.EXPECT().OldestCreatedAt(gomock.Any()).Return(&recent, nil)

		suggestions, err := optimizer.GetSuggestions(context.Background())
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "activity_log", suggestions[0].Kind)
	})

	t.Run("falls back to a quota suggestion", func(t *testing.T) {
		optimizer, dbMock, activity, notifications := newTestOptimizer(t, ctrl, 1000)
		expectSize(dbMock, 900)

		activity.EXPECT().OldestCreatedAt(gomock.Any()).Return(nil, nil)
		notifications.EXPECT().OldestCreatedAt(gomock.Any()).Return(nil, nil)

		suggestions, err := optimizer.GetSuggestions(context.Background())
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "quota", suggestions[0].Kind)
	})
}

func TestStorageMetrics_Free(t *testing.T) {
	metrics := models.StorageMetrics{UsedBytes: 1200, QuotaBytes: 1000}
	assert.Equal(t, int64(0), metrics.Free())
}
