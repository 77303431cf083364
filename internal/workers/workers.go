package workers

import (
	"context"

	"github.com/devfriend/devfriend/internal/config"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by configuration.
// Workers run until ctx is cancelled.
func NewWorkers(ctx context.Context, storages *store.Storages, services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.SyncInterval > 0 {
		workers.workers = append(workers.workers, newSyncWorker(
			ctx,
			storages.IntegrationRepository,
			services.IntegrationService,
			cfg.SyncInterval,
			logger,
		))
	}

	return workers
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
