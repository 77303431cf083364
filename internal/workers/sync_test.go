package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/devfriend/devfriend/internal/config"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/mock"
	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncWorker(t *testing.T, ctrl *gomock.Controller, interval time.Duration) (*syncWorker, *mock.MockIntegrationRepository, *mock.MockIntegrationService) {
	t.Helper()

	repo := mock.NewMockIntegrationRepository(ctrl)
	svc := mock.NewMockIntegrationService(ctrl)

	w := newSyncWorker(context.Background(), repo, svc, interval, logger.Nop())
	return w, repo, svc
}

func TestSyncAll_SyncsEveryConnectedIntegration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, repo, svc := newTestSyncWorker(t, ctrl, time.Minute)

	repo.EXPECT().ListByStatus(gomock.Any(), models.StatusConnected).Return([]models.Integration{
		{ID: 1, UserID: 10, ServiceType: models.ServiceTypeGmail},
		{ID: 2, UserID: 11, ServiceType: models.ServiceTypeGitHub},
	}, nil)
	svc.EXPECT().Sync(gomock.Any(), int64(10), int64(1)).Return(models.Integration{}, nil)
	svc.EXPECT().Sync(gomock.Any(), int64(11), int64(2)).Return(models.Integration{}, nil)

	w.syncAll(context.Background())
}

func TestSyncAll_OneFailureDoesNotStopThePass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, repo, svc := newTestSyncWorker(t, ctrl, time.Minute)

	repo.EXPECT().ListByStatus(gomock.Any(), models.StatusConnected).Return([]models.Integration{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 11},
	}, nil)
	svc.EXPECT().Sync(gomock.Any(), int64(10), int64(1)).Return(models.Integration{}, service.ErrReauthRequired)
	svc.EXPECT().Sync(gomock.Any(), int64(11), int64(2)).Return(models.Integration{}, nil)

	w.syncAll(context.Background())
}

func TestSyncAll_ListFailureSkipsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, repo, _ := newTestSyncWorker(t, ctrl, time.Minute)

	repo.EXPECT().ListByStatus(gomock.Any(), models.StatusConnected).
		Return(nil, errors.New("connection refused"))

	w.syncAll(context.Background())
}

func TestSyncAll_StopsWhenContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, repo, svc := newTestSyncWorker(t, ctrl, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())

	repo.EXPECT().ListByStatus(gomock.Any(), models.StatusConnected).Return([]models.Integration{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 11},
	}, nil)
	// the first sync cancels the context; the second integration must not
	// be touched
	svc.EXPECT().Sync(gomock.Any(), int64(10), int64(1)).DoAndReturn(
		func(context.Context, int64, int64) (models.Integration, error) {
			cancel()
			return models.Integration{}, nil
		},
	)

	w.syncAll(ctx)
}

func TestSyncWorker_RunTicksUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockIntegrationRepository(ctrl)
	svc := mock.NewMockIntegrationService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	passes := 0
	done := make(chan struct{})

	repo.EXPECT().ListByStatus(gomock.Any(), models.StatusConnected).DoAndReturn(
		func(context.Context, models.IntegrationStatus) ([]models.Integration, error) {
			mu.Lock()
			defer mu.Unlock()
			passes++
			if passes == 2 {
				close(done)
			}
			return nil, nil
		},
	).MinTimes(2)

	w := newSyncWorker(ctx, repo, svc, 5*time.Millisecond, logger.Nop())
	w.Run()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sync worker never ticked twice")
	}
	cancel()
}

func TestNewWorkers_DisabledWithoutInterval(t *testing.T) {
	ws := NewWorkers(context.Background(), &store.Storages{}, &service.Services{}, config.Workers{}, logger.Nop())

	require.NotNil(t, ws)
	assert.Empty(t, ws.workers)
}

func TestNewWorkers_SyncWorkerEnabled(t *testing.T) {
	ws := NewWorkers(context.Background(), &store.Storages{}, &service.Services{}, config.Workers{SyncInterval: time.Minute}, logger.Nop())

	require.Len(t, ws.workers, 1)
	assert.IsType(t, &syncWorker{}, ws.workers[0])
}
