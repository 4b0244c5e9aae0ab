package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/mock"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
)

func newTestResolver(ctrl *gomock.Controller) (*conflictResolver, *mock.MockRecordRepository, *mock.MockQueueRepository) {
	records := mock.NewMockRecordRepository(ctrl)
	queue := mock.NewMockQueueRepository(ctrl)
	return newConflictResolver(records, queue, logger.Nop()), records, queue
}

func TestConflictResolver_SuggestResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _, _ := newTestResolver(ctrl)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		local  time.Time
		remote time.Time
		want   models.Strategy
	}{
		{name: "remote is newer", local: base, remote: base.Add(time.Minute), want: models.StrategyKeepRemote},
		{name: "local is newer", local: base.Add(time.Minute), remote: base, want: models.StrategyKeepLocal},
		{name: "equal timestamps favor local", local: base, remote: base, want: models.StrategyKeepLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.SuggestResolution(models.Conflict{
				LocalTimestamp:  tt.local,
				RemoteTimestamp: tt.remote,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConflictResolver_SuggestMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _, _ := newTestResolver(ctrl)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("quantity sums both sides", func(t *testing.T) {
		got := resolver.SuggestMerge(models.Conflict{
			Field:       "quantity",
			LocalValue:  float64(5),
			RemoteValue: float64(8),
		})
		assert.Equal(t, float64(13), got)
	})

	t.Run("merge is deterministic across repeats", func(t *testing.T) {
		conflict := models.Conflict{
			Field:       "quantity",
			LocalValue:  float64(5),
			RemoteValue: float64(8),
		}
		first := resolver.SuggestMerge(conflict)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, resolver.SuggestMerge(conflict))
		}
	})

	t.Run("non-numeric field falls back to latest side", func(t *testing.T) {
		got := resolver.SuggestMerge(models.Conflict{
			Field:           "name",
			LocalValue:      "Crate",
			RemoteValue:     "Box",
			LocalTimestamp:  base,
			RemoteTimestamp: base.Add(time.Minute),
		})
		assert.Equal(t, "Box", got)
	})

	t.Run("timestamp tie keeps local", func(t *testing.T) {
		got := resolver.SuggestMerge(models.Conflict{
			Field:           "name",
			LocalValue:      "Crate",
			RemoteValue:     "Box",
			LocalTimestamp:  base,
			RemoteTimestamp: base,
		})
		assert.Equal(t, "Crate", got)
	})
}

func registerFieldConflict(resolver *conflictResolver) (models.SyncQueueEntry, models.RemoteRecord, models.Conflict) {
	entry := makeEntry(7, "item-a", models.OpUpdate, `{"quantity":5}`, 0)
	remote := models.RemoteRecord{
		EntityType: models.EntityItem,
		EntityID:   "item-a",
		Payload:    json.RawMessage(`{"name":"Widget","quantity":8}`),
		Version:    4,
		UpdatedAt:  time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC),
	}
	conflict := models.Conflict{
		ID:              "7:quantity",
		EntryID:         7,
		EntityType:      models.EntityItem,
		EntityID:        "item-a",
		Field:           "quantity",
		LocalValue:      float64(5),
		RemoteValue:     float64(8),
		LocalTimestamp:  entry.EnqueuedAt,
		RemoteTimestamp: remote.UpdatedAt,
		RemoteVersion:   remote.Version,
	}
	resolver.register(entry, remote, []models.Conflict{conflict})
	return entry, remote, conflict
}

func TestConflictResolver_ApplyResolutions_KeepLocalRequeues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, records, _ := newTestResolver(ctrl)
	_, remote, conflict := registerFieldConflict(resolver)

	records.EXPECT().
		CommitResolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, commit store.ResolutionCommit) error {
			assert.Equal(t, remote.Version, commit.RemoteVersion)
			assert.JSONEq(t, `{"name":"Widget","quantity":5}`, string(commit.Payload))
			require.NotNil(t, commit.Requeue)
			assert.Equal(t, models.OpUpdate, commit.Requeue.Operation)
			assert.JSONEq(t, `{"quantity":5}`, string(commit.Requeue.Payload))
			assert.NotEmpty(t, commit.Requeue.OperationID)
			return nil
		})

	err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
		{ConflictID: conflict.ID, Strategy: models.StrategyKeepLocal},
	})
	require.NoError(t, err)
	assert.Zero(t, resolver.count())
}

func TestConflictResolver_ApplyResolutions_KeepRemoteDoesNotRequeue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, records, _ := newTestResolver(ctrl)
	_, remote, conflict := registerFieldConflict(resolver)

	records.EXPECT().
		CommitResolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, commit store.ResolutionCommit) error {
			assert.Equal(t, remote.Version, commit.RemoteVersion)
			assert.JSONEq(t, `{"name":"Widget","quantity":8}`, string(commit.Payload))
			assert.Nil(t, commit.Requeue)
			return nil
		})

	err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
		{ConflictID: conflict.ID, Strategy: models.StrategyKeepRemote},
	})
	require.NoError(t, err)
}

func TestConflictResolver_ApplyResolutions_MergeSumsQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, records, _ := newTestResolver(ctrl)
	_, _, conflict := registerFieldConflict(resolver)

	records.EXPECT().
		CommitResolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, commit store.ResolutionCommit) error {
			assert.JSONEq(t, `{"name":"Widget","quantity":13}`, string(commit.Payload))
			require.NotNil(t, commit.Requeue)
			assert.JSONEq(t, `{"quantity":13}`, string(commit.Requeue.Payload))
			return nil
		})

	err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
		{ConflictID: conflict.ID, Strategy: models.StrategyMerge},
	})
	require.NoError(t, err)
}

func TestConflictResolver_ApplyResolutions_ReapplyIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, records, _ := newTestResolver(ctrl)
	_, _, conflict := registerFieldConflict(resolver)

	records.EXPECT().CommitResolution(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	resolutions := []models.ConflictResolution{
		{ConflictID: conflict.ID, Strategy: models.StrategyKeepRemote},
	}
	require.NoError(t, resolver.ApplyResolutions(context.Background(), resolutions))

	// second application finds nothing to settle
	require.NoError(t, resolver.ApplyResolutions(context.Background(), resolutions))
}

func TestConflictResolver_ApplyResolutions_PartialCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _, _ := newTestResolver(ctrl)

	entry := makeEntry(7, "item-a", models.OpUpdate, `{"quantity":5,"name":"Crate"}`, 0)
	remote := models.RemoteRecord{
		EntityType: models.EntityItem,
		EntityID:   "item-a",
		Payload:    json.RawMessage(`{"name":"Box","quantity":8}`),
		Version:    4,
	}
	resolver.register(entry, remote, []models.Conflict{
		{ID: "7:quantity", EntryID: 7, Field: "quantity", LocalValue: float64(5), RemoteValue: float64(8)},
		{ID: "7:name", EntryID: 7, Field: "name", LocalValue: "Crate", RemoteValue: "Box"},
	})

	err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
		{ConflictID: "7:quantity", Strategy: models.StrategyKeepLocal},
	})
	require.ErrorIs(t, err, ErrIncompleteResolution)

	// nothing was committed, both conflicts remain pending
	assert.Equal(t, 2, resolver.count())
}

func TestConflictResolver_AutoResolve_RemoteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, records, _ := newTestResolver(ctrl)
	registerFieldConflict(resolver)

	records.EXPECT().
		CommitResolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, commit store.ResolutionCommit) error {
			assert.JSONEq(t, `{"name":"Widget","quantity":8}`, string(commit.Payload))
			assert.Nil(t, commit.Requeue)
			return nil
		})

	require.NoError(t, resolver.AutoResolve(context.Background(), models.AutoRemoteWins))
	assert.Zero(t, resolver.count())
}

func TestConflictResolver_AutoResolve_UnknownStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _, _ := newTestResolver(ctrl)
	registerFieldConflict(resolver)

	err := resolver.AutoResolve(context.Background(), models.AutoStrategy("newest-server"))
	require.ErrorIs(t, err, ErrUnknownAutoStrategy)
}

func TestConflictResolver_LocalDeleteVsRemoteEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := makeEntry(9, "item-a", models.OpDelete, "", 0)
	remote := models.RemoteRecord{
		EntityType: models.EntityItem,
		EntityID:   "item-a",
		Payload:    json.RawMessage(`{"name":"Widget","quantity":8}`),
		Version:    4,
		UpdatedAt:  time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC),
	}
	conflict := models.Conflict{
		ID:          "9:deleted",
		EntryID:     9,
		Field:       deletedField,
		LocalValue:  true,
		RemoteValue: false,
	}

	t.Run("keep local re-sends the delete", func(t *testing.T) {
		resolver, records, _ := newTestResolver(ctrl)
		resolver.register(entry, remote, []models.Conflict{conflict})

		records.EXPECT().
			CommitResolution(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, commit store.ResolutionCommit) error {
				assert.Equal(t, remote.Version, commit.RemoteVersion)
				require.NotNil(t, commit.Requeue)
				assert.Equal(t, models.OpDelete, commit.Requeue.Operation)
				return nil
			})

		err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
			{ConflictID: conflict.ID, Strategy: models.StrategyKeepLocal},
		})
		require.NoError(t, err)
	})

	t.Run("keep remote undeletes with server state", func(t *testing.T) {
		resolver, records, _ := newTestResolver(ctrl)
		resolver.register(entry, remote, []models.Conflict{conflict})

		records.EXPECT().
			CommitResolution(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, commit store.ResolutionCommit) error {
				assert.JSONEq(t, `{"name":"Widget","quantity":8}`, string(commit.Payload))
				assert.Nil(t, commit.Requeue)
				return nil
			})

		err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
			{ConflictID: conflict.ID, Strategy: models.StrategyKeepRemote},
		})
		require.NoError(t, err)
	})
}

func TestConflictResolver_LocalEditVsRemoteDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := makeEntry(9, "item-a", models.OpUpdate, `{"quantity":5}`, 0)
	remote := models.RemoteRecord{
		EntityType: models.EntityItem,
		EntityID:   "item-a",
		Version:    4,
		Deleted:    true,
	}
	conflict := models.Conflict{
		ID:          "9:deleted",
		EntryID:     9,
		Field:       deletedField,
		LocalValue:  false,
		RemoteValue: true,
	}

	t.Run("keep local resurrects the entity remotely", func(t *testing.T) {
		resolver, records, _ := newTestResolver(ctrl)
		resolver.register(entry, remote, []models.Conflict{conflict})

		rec := models.Record{
			EntityType: models.EntityItem,
			EntityID:   "item-a",
			Payload:    json.RawMessage(`{"name":"Widget","quantity":5}`),
		}
		records.EXPECT().Get(gomock.Any(), models.EntityItem, "item-a").Return(rec, nil)
		records.EXPECT().
			CommitResolution(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, commit store.ResolutionCommit) error {
				require.NotNil(t, commit.Requeue)
				assert.Equal(t, models.OpCreate, commit.Requeue.Operation)
				assert.JSONEq(t, string(rec.Payload), string(commit.Requeue.Payload))
				return nil
			})

		err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
			{ConflictID: conflict.ID, Strategy: models.StrategyKeepLocal},
		})
		require.NoError(t, err)
	})

	t.Run("keep remote accepts the deletion", func(t *testing.T) {
		resolver, records, queue := newTestResolver(ctrl)
		resolver.register(entry, remote, []models.Conflict{conflict})

		queue.EXPECT().Remove(gomock.Any(), int64(9)).Return(nil)
		records.EXPECT().
			ApplyRemote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, applied models.RemoteRecord) error {
				assert.True(t, applied.Deleted)
				assert.Equal(t, int64(4), applied.Version)
				return nil
			})

		err := resolver.ApplyResolutions(context.Background(), []models.ConflictResolution{
			{ConflictID: conflict.ID, Strategy: models.StrategyKeepRemote},
		})
		require.NoError(t, err)
	})
}

func TestConflictResolver_ListPendingConflicts_Ordering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _, _ := newTestResolver(ctrl)

	second := makeEntry(12, "item-b", models.OpUpdate, `{"name":"Box"}`, 0)
	resolver.register(second, models.RemoteRecord{Version: 2}, []models.Conflict{
		{ID: "12:name", EntryID: 12, Field: "name"},
	})

	first := makeEntry(7, "item-a", models.OpUpdate, `{"quantity":5,"name":"Crate"}`, 0)
	resolver.register(first, models.RemoteRecord{Version: 3}, []models.Conflict{
		{ID: "7:quantity", EntryID: 7, Field: "quantity"},
		{ID: "7:name", EntryID: 7, Field: "name"},
	})

	conflicts := resolver.ListPendingConflicts()
	require.Len(t, conflicts, 3)
	assert.Equal(t, "7:name", conflicts[0].ID)
	assert.Equal(t, "7:quantity", conflicts[1].ID)
	assert.Equal(t, "12:name", conflicts[2].ID)
}
