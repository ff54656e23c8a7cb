package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/internal/domain"
	"github.com/vfg2006/meli-sales-api/internal/usecases/syncing"
)

// OrderSyncConfig representa a configuração do agendador de sincronização de ordens
type OrderSyncConfig struct {
	CronSchedule string
	Limit        int
	SyncEnabled  bool
}

// OrderSyncService agenda a recuperação periódica das ordens recentes que o webhook pode ter perdido
type OrderSyncService struct {
	scheduler           *gocron.Scheduler
	config              OrderSyncConfig
	syncService         syncing.SyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult
	lastError           string
}

func NewOrderSyncService(syncService syncing.SyncService, appConfig *config.Config) *OrderSyncService {
	syncConfig := OrderSyncConfig{
		CronSchedule: appConfig.OrderSync.CronSchedule,
		Limit:        appConfig.OrderSync.Limit,
		SyncEnabled:  appConfig.OrderSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"limit":         syncConfig.Limit,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ordens carregada")

	return &OrderSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		syncService: syncService,
	}
}

// Start inicia o agendador
func (s *OrderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de ordens desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de ordens")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRecentOrders(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de ordens: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de ordens")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma sincronização em segundo plano.
// Retorna false quando já existe uma execução em andamento.
func (s *OrderSyncService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Sincronização de ordens já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de ordens")
	go s.run(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *OrderSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_limit":             s.config.Limit,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_processed"] = s.lastResult.Processed
		status["last_total"] = s.lastResult.Total
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}

func (s *OrderSyncService) syncRecentOrders(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Sincronização de ordens já em andamento, ignorando")
		return
	}

	s.run(ctx)
}

func (s *OrderSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

// run executa a sincronização. Quem chama precisa ter obtido a vez em tryStart.
func (s *OrderSyncService) run(ctx context.Context) {
	result, err := s.syncService.SyncRecent(ctx, s.config.Limit)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na sincronização agendada de ordens")
		return
	}

	s.lastError = ""
	s.lastResult = result

	logrus.WithFields(logrus.Fields{
		"processed": result.Processed,
		"total":     result.Total,
		"duration":  s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Sincronização agendada de ordens concluída")
}
