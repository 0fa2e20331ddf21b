package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gsheetsmocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeRefresher struct {
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{}
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.release != nil {
		<-f.release
	}
	return f.err
}

func (f *fakeRefresher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestConfig(enabled bool, cron string) *config.Config {
	cfg := &config.Config{}
	cfg.DatasetRefresh.Enabled = enabled
	cfg.DatasetRefresh.CronSchedule = cron
	return cfg
}

func TestDatasetRefreshService_RefreshDatasets(t *testing.T) {
	refresher := &fakeRefresher{}
	service := NewDatasetRefreshService(refresher, newTestConfig(true, "*/10 * * * *"))

	require.NoError(t, service.RefreshDatasets(context.Background()))
	assert.Equal(t, 1, refresher.Calls())

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/10 * * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestDatasetRefreshService_RefreshDatasets_ErrorIsNotRetried(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("403 Forbidden")}
	service := NewDatasetRefreshService(refresher, newTestConfig(true, "*/10 * * * *"))

	err := service.RefreshDatasets(context.Background())

	assert.EqualError(t, err, "403 Forbidden")
	assert.Equal(t, 1, refresher.Calls())
	assert.Equal(t, "403 Forbidden", service.GetStatus()["last_sync_error"])
}

func TestDatasetRefreshService_SkipsWhenRunning(t *testing.T) {
	refresher := &fakeRefresher{release: make(chan struct{})}
	service := NewDatasetRefreshService(refresher, newTestConfig(true, "*/10 * * * *"))

	done := make(chan error)
	go func() {
		done <- service.RefreshDatasets(context.Background())
	}()

	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == true
	}, time.Second, 5*time.Millisecond)

	// segunda chamada retorna sem chamar a origem
	require.NoError(t, service.RefreshDatasets(context.Background()))
	service.TriggerManualSync()

	close(refresher.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, refresher.Calls())
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	refresher := &fakeRefresher{}
	service := NewDatasetRefreshService(refresher, newTestConfig(false, ""))

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return refresher.Calls() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDatasetRefreshService_Start(t *testing.T) {
	t.Run("desabilitado não agenda", func(t *testing.T) {
		service := NewDatasetRefreshService(&fakeRefresher{}, newTestConfig(false, "invalido"))
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("expressão cron inválida", func(t *testing.T) {
		service := NewDatasetRefreshService(&fakeRefresher{}, newTestConfig(true, "invalido"))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("para quando o contexto é cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewDatasetRefreshService(&fakeRefresher{}, newTestConfig(true, "0 6 * * *"))

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, time.Second, 5*time.Millisecond)
	})
}

func TestDatabaseImporter_Refresh(t *testing.T) {
	datasets := &domain.Datasets{
		Sales: []domain.SalesRecord{{Store: "Centro", Goal: 100, Realized: 120}},
	}

	t.Run("importa a planilha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sheets := gsheetsmocks.NewMockGSheetsIntegrator(ctrl)
		repo := mocks.NewMockSalesRepository(ctrl)

		gomock.InOrder(
			sheets.EXPECT().Refresh(gomock.Any()).Return(nil),
			sheets.EXPECT().LoadDatasets(gomock.Any()).Return(datasets, nil),
			repo.EXPECT().ReplaceDatasets(gomock.Any(), datasets).Return(nil),
		)

		assert.NoError(t, NewDatabaseImporter(sheets, repo).Refresh(context.Background()))
	})

	t.Run("falha na planilha não altera o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sheets := gsheetsmocks.NewMockGSheetsIntegrator(ctrl)
		repo := mocks.NewMockSalesRepository(ctrl)

		sheets.EXPECT().Refresh(gomock.Any()).Return(errors.New("timeout"))

		assert.EqualError(t, NewDatabaseImporter(sheets, repo).Refresh(context.Background()), "timeout")
	})
}
