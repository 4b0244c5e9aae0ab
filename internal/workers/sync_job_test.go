package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/mock"
)

func TestSyncJob_TriggerNowWakesDrain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)

	woke := make(chan struct{}, 1)
	manager.EXPECT().
		OnWake(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			select {
			case woke <- struct{}{}:
			default:
			}
			return nil
		}).
		MinTimes(1)

	job := NewSyncJob(manager, time.Hour, logger.Nop())
	job.Run(context.Background())
	defer job.Stop()

	job.TriggerNow()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("drain cycle was not triggered")
	}
}

func TestSyncJob_TickerWakesDrain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)

	woke := make(chan struct{}, 1)
	manager.EXPECT().
		OnWake(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			select {
			case woke <- struct{}{}:
			default:
			}
			return nil
		}).
		MinTimes(1)

	job := NewSyncJob(manager, 10*time.Millisecond, logger.Nop())
	job.Run(context.Background())
	defer job.Stop()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never fired a drain cycle")
	}
}

func TestSyncJob_StopTerminatesGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	manager.EXPECT().OnWake(gomock.Any()).Return(nil).AnyTimes()

	job := NewSyncJob(manager, 10*time.Millisecond, logger.Nop())
	job.Run(context.Background())
	job.Stop()

	// a stopped job ignores triggers
	job.TriggerNow()
	time.Sleep(50 * time.Millisecond)

	// Stop is safe to call again
	require.NotPanics(t, job.Stop)
}

func TestSyncJob_RunRestartsPreviousJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	manager.EXPECT().OnWake(gomock.Any()).Return(nil).AnyTimes()

	job := NewSyncJob(manager, time.Hour, logger.Nop())
	job.Run(context.Background())
	job.Run(context.Background())
	job.Stop()
}
