package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adsight/bi-ads-api/infrastructure/repository"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	"github.com/adsight/bi-ads-api/pkg/utils"
)

const googleLockName = "google_sync"

// GoogleSyncScheduler agenda a sincronização horária do Google Ads e o
// reprocessamento diário, sob o mesmo regime de lock do agendador do Facebook
type GoogleSyncScheduler struct {
	scheduler   *gocron.Scheduler
	cfg         config.GoogleSync
	appConfig   *config.Config
	syncService syncing.GoogleSyncer
	lock        repository.SchedulerLock

	// syncMutex protege a flag de execução e os campos de status lidos
	// pelo GetStatus enquanto o job roda em outra goroutine
	syncRunning         bool
	syncMutex           sync.Mutex
	lockHeld            bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult

	now func() time.Time
}

func NewGoogleSyncScheduler(
	syncService syncing.GoogleSyncer,
	lock repository.SchedulerLock,
	appConfig *config.Config,
) *GoogleSyncScheduler {
	cfg := appConfig.GoogleSync

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    cfg.CronSchedule,
		"hourly_days":      cfg.HourlyDays,
		"backfill_days":    cfg.BackfillDays,
		"backfill_hour":    cfg.BackfillHour,
		"backfill_enabled": cfg.BackfillEnabled,
		"sync_enabled":     cfg.Enabled,
	}).Info("Configuração do agendador de sincronização do Google Ads carregada")

	return &GoogleSyncScheduler{
		scheduler:   gocron.NewScheduler(time.Local),
		cfg:         cfg,
		appConfig:   appConfig,
		syncService: syncService,
		lock:        lock,
		now:         time.Now,
	}
}

// Start disputa o lock e agenda o job; lock indisponível deixa a instância ociosa
func (s *GoogleSyncScheduler) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Sincronização do Google Ads desabilitada por configuração")
		return nil
	}

	acquired, err := s.lock.TryAcquire(ctx, googleLockName)
	if err != nil {
		return fmt.Errorf("erro ao disputar o lock do agendador do Google Ads: %w", err)
	}
	if !acquired {
		logrus.Info("Lock do agendador do Google Ads detido por outro processo; esta instância ficará ociosa")
		return nil
	}
	s.lockHeld = true

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de sincronização do Google Ads")

	_, err = s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runScheduledSync(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do Google Ads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Google Ads")
		s.scheduler.Stop()

		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.lock.Release(releaseCtx); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar o lock do agendador do Google Ads")
		}
	}()

	return nil
}

func (s *GoogleSyncScheduler) runScheduledSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Google Ads já em andamento, ignorando tick")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Pânico na sincronização do Google Ads; aguardando o próximo tick")
		}

		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	now := s.now()
	hourly := hourlyWindow(domain.PlatformGoogle, s.appConfig.GoogleAds.CustomerID, s.cfg.HourlyDays, now)
	backfill := backfillWindow(domain.PlatformGoogle, s.appConfig.GoogleAds.CustomerID, s.cfg.BackfillDays, now)

	s.runWindow(ctx, hourly)

	if shouldBackfill(s.cfg.BackfillEnabled, s.cfg.BackfillHour, hourly, backfill, now) {
		logrus.Infof("Hora do reprocessamento diário do Google Ads (%s)", backfill)
		s.runWindow(ctx, backfill)
	}
}

func (s *GoogleSyncScheduler) runWindow(ctx context.Context, window domain.SyncWindow) {
	result := s.syncService.Sync(ctx, syncing.DefaultOptions(window))

	s.syncMutex.Lock()
	s.lastResult = result
	s.syncMutex.Unlock()

	logrus.Debugf("Resultado da sincronização do Google Ads: %s", utils.PrettyJson(result))

	if !result.Success {
		logrus.WithFields(logrus.Fields{
			"window": window.String(),
			"errors": result.Errors,
		}).Error("Sincronização do Google Ads falhou")
	}
}

// TriggerManualSync dispara um tick completo fora do cron
func (s *GoogleSyncScheduler) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Google Ads já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do Google Ads")
	go s.runScheduledSync(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *GoogleSyncScheduler) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.cfg.Enabled,
		"sync_cron":              s.cfg.CronSchedule,
		"sync_running":           s.syncRunning,
		"lock_held":              s.lockHeld,
		"hourly_days":            s.cfg.HourlyDays,
		"backfill_days":          s.cfg.BackfillDays,
		"backfill_hour":          s.cfg.BackfillHour,
		"backfill_enabled":       s.cfg.BackfillEnabled,
		"customer_id":            s.appConfig.GoogleAds.CustomerID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
