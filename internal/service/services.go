package service

import (
	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
)

// Services wires the sync engine together: local-first CRUD, the drain
// cycle, conflict resolution, and the storage optimizer all share the same
// storages and event bus.
type Services struct {
	Inventory InventoryService
	Sync      SyncManager
	Conflicts ConflictResolver
	Optimizer StorageOptimizer
	Events    *Bus
}

func NewServices(storages *store.Storages, remote adapter.RemoteAPI, cfg *config.AgentConfig, log *logger.Logger) *Services {
	bus := NewBus(log)
	optimizer := NewStorageOptimizer(storages, cfg.Optimizer, log)
	resolver := newConflictResolver(storages.Records, storages.Queue, log)
	manager := newSyncManager(storages, remote, resolver, bus, cfg.Sync, log)

	return &Services{
		Inventory: NewInventoryService(storages.Records, storages.Activity, optimizer, log),
		Sync:      manager,
		Conflicts: resolver,
		Optimizer: optimizer,
		Events:    bus,
	}
}
