// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// DatasetRefresher recarrega as tabelas de vendas a partir da origem
type DatasetRefresher interface {
	Refresh(ctx context.Context) error
}

type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           DatasetRefresher
	config              DatasetRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetRefreshService(refresher DatasetRefresher, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule, // Default: a cada 10 minutos
		SyncEnabled:  cfg.DatasetRefresh.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização da planilha carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização da planilha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDatasets(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização da planilha")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização da planilha: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDatasets executa uma atualização. Se outra já estiver em andamento, não faz nada.
// Falhas não são repetidas: a próxima tentativa é a próxima execução agendada.
func (s *DatasetRefreshService) RefreshDatasets(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização da planilha já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização da planilha")

	err := s.refresher.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.Info("Atualização da planilha concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma atualização da planilha
func (s *DatasetRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização da planilha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual da planilha")
	go func() {
		if err := s.RefreshDatasets(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual da planilha")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
