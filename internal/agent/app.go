package agent

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/internal/workers"
	"github.com/MKhiriev/shelfsync/models"
)

type App struct {
	services   *service.Services
	job        workers.SyncJob
	background *workers.Workers
	cfg        *config.AgentConfig
	logger     *logger.Logger
}

func NewApp(cfg *config.AgentConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote := adapter.NewHTTPRemoteAPI(adapter.HTTPClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.RequestTimeout,
	})

	svcs := service.NewServices(storages, remote, cfg, log)
	job := workers.NewSyncJob(svcs.Sync, cfg.Sync.Interval, log)

	return &App{
		services:   svcs,
		job:        job,
		background: workers.NewWorkers(job),
		cfg:        cfg,
		logger:     log,
	}, nil
}

// Services exposes the wired sync engine for embedding callers (tests, a UI
// shell, or an IPC layer living on top of the agent).
func (a *App) Services() *service.Services {
	return a.services
}

// TriggerSync asks the background sync job for an immediate drain cycle,
// for embedding callers that want a "sync now" action.
func (a *App) TriggerSync() {
	a.job.TriggerNow()
}

// Run drains the queue once at startup, then keeps draining on the
// configured interval until the process receives a stop signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	unsubscribe := a.services.Sync.Subscribe(a.logEvent)
	defer unsubscribe()

	if err := a.services.Sync.OnWake(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial drain cycle failed")
	}

	a.background.Run(ctx)
	defer a.background.Stop()

	status, err := a.services.Sync.Status(ctx)
	if err == nil {
		a.logger.Info().
			Int("pending", status.PendingCount).
			Int("conflicts", status.ConflictCount).
			Dur("interval", a.cfg.Sync.Interval).
			Msg("agent running")
	}

	<-ctx.Done()
	a.logger.Info().Msg("agent shutting down")

	return nil
}

func (a *App) logEvent(event models.SyncEvent) {
	entry := a.logger.Info()
	if event.Kind == models.EventTerminalFailure {
		entry = a.logger.Error()
	}
	entry.
		Str("kind", string(event.Kind)).
		Str("entity_type", string(event.EntityType)).
		Str("entity_id", event.EntityID).
		Str("error", event.Err).
		Msg("sync event")
}
