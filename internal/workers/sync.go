// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DevFriend Authors

package workers

import (
	"context"
	"time"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
)

// syncWorker periodically refreshes the cached summary of every connected
// integration so the dashboard shows counters without an explicit sync.
//
// Integrations that fall out of StatusConnected (needs_reauth, token_expired,
// error) are skipped until a user action brings them back; the sync path
// itself moves them there on failure.
type syncWorker struct {
	ctx          context.Context
	integrations store.IntegrationRepository
	service      service.IntegrationService
	interval     time.Duration
	logger       *logger.Logger
}

func newSyncWorker(ctx context.Context, integrations store.IntegrationRepository, svc service.IntegrationService, interval time.Duration, logger *logger.Logger) *syncWorker {
	return &syncWorker{
		ctx:          ctx,
		integrations: integrations,
		service:      svc,
		interval:     interval,
		logger:       logger,
	}
}

// Run starts the periodic sync loop in its own goroutine and returns
// immediately. The loop stops when the worker's context is cancelled.
func (w *syncWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting integration sync worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				w.logger.Info().Msg("integration sync worker stopped")
				return
			case <-ticker.C:
				w.syncAll(w.ctx)
			}
		}
	}()
}

// syncAll refreshes every connected integration once. Failures are logged
// and do not stop the pass; the service layer already downgrades the
// integration status on its own.
func (w *syncWorker) syncAll(ctx context.Context) {
	connected, err := w.integrations.ListByStatus(ctx, models.StatusConnected)
	if err != nil {
		w.logger.Err(err).Str("func", "syncWorker.syncAll").Msg("error listing connected integrations")
		return
	}

	for _, integration := range connected {
		if ctx.Err() != nil {
			return
		}

		if _, err := w.service.Sync(ctx, integration.UserID, integration.ID); err != nil {
			w.logger.Warn().
				Err(err).
				Int64("integration_id", integration.ID).
				Int64("user_id", integration.UserID).
				Msg("background sync failed")
		}
	}

	w.logger.Debug().Int("count", len(connected)).Msg("background sync pass finished")
}
