package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
)

// usageWarnRatio is the fraction of the quota at which the optimizer starts
// producing cleanup suggestions.
const usageWarnRatio = 0.8

type storageOptimizer struct {
	storages *store.Storages
	cfg      config.Optimizer
	log      *logger.Logger
}

func NewStorageOptimizer(storages *store.Storages, cfg config.Optimizer, log *logger.Logger) StorageOptimizer {
	return &storageOptimizer{
		storages: storages,
		cfg:      cfg,
		log:      log,
	}
}

func (o *storageOptimizer) UpdateMetrics(ctx context.Context) (models.StorageMetrics, error) {
	used, err := o.storages.DB.SizeBytes(ctx)
	if err != nil {
		return models.StorageMetrics{}, fmt.Errorf("measure database size: %w", err)
	}

	return models.StorageMetrics{
		UsedBytes:              used,
		QuotaBytes:             o.cfg.QuotaBytes,
		PersistentGrantGranted: true,
	}, nil
}

func (o *storageOptimizer) CleanupOldData(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		olderThan = time.Duration(o.cfg.RetentionDays) * 24 * time.Hour
	}
	cutoff := time.Now().UTC().Add(-olderThan)

	var freed int64

	activityFreed, err := o.storages.Activity.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge activity log: %w", err)
	}
	freed += activityFreed

	notificationFreed, err := o.storages.Notifications.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return freed, fmt.Errorf("purge notifications: %w", err)
	}
	freed += notificationFreed

	o.log.Info().
		Str("func", "storageOptimizer.CleanupOldData").
		Time("cutoff", cutoff).
		Int64("freed_bytes", freed).
		Msg("pruned old history")

	return freed, nil
}

func (o *storageOptimizer) GetSuggestions(ctx context.Context) ([]models.CleanupSuggestion, error) {
	metrics, err := o.UpdateMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if metrics.QuotaBytes <= 0 || float64(metrics.UsedBytes) < usageWarnRatio*float64(metrics.QuotaBytes) {
		return nil, nil
	}

	retention := time.Duration(o.cfg.RetentionDays) * 24 * time.Hour
	cutoffNote := fmt.Sprintf("older than %d days", o.cfg.RetentionDays)

	suggestions := make([]models.CleanupSuggestion, 0, 2)

	if oldest, oErr := o.storages.Activity.OldestCreatedAt(ctx); oErr == nil && oldest != nil && time.Since(*oldest) > retention {
		suggestions = append(suggestions, models.CleanupSuggestion{
			Kind:        "activity_log",
			Description: "prune activity log entries " + cutoffNote,
		})
	}
	if oldest, oErr := o.storages.Notifications.OldestCreatedAt(ctx); oErr == nil && oldest != nil && time.Since(*oldest) > retention {
		suggestions = append(suggestions, models.CleanupSuggestion{
			Kind:        "notifications",
			Description: "prune delivered notifications " + cutoffNote,
		})
	}

	if len(suggestions) == 0 {
		// nothing prunable is old enough; the only option is a bigger quota
		suggestions = append(suggestions, models.CleanupSuggestion{
			Kind:        "quota",
			Description: "local storage is nearly full and no history is old enough to prune; raise the quota",
		})
	}

	return suggestions, nil
}

func (o *storageOptimizer) HasEnoughSpace(ctx context.Context, estimatedBytes int64) (bool, error) {
	metrics, err := o.UpdateMetrics(ctx)
	if err != nil {
		return false, err
	}
	return metrics.Free() >= estimatedBytes, nil
}
