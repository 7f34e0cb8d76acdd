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

const facebookLockName = "facebook_sync"

// FacebookSyncScheduler agenda a sincronização horária do Facebook e o
// reprocessamento diário. Antes de agendar, disputa o lock do agendador no
// banco: a instância que não o obtiver fica ociosa sem erro.
type FacebookSyncScheduler struct {
	scheduler   *gocron.Scheduler
	cfg         config.FacebookSync
	appConfig   *config.Config
	syncService syncing.FacebookSyncer
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

func NewFacebookSyncScheduler(
	syncService syncing.FacebookSyncer,
	lock repository.SchedulerLock,
	appConfig *config.Config,
) *FacebookSyncScheduler {
	cfg := appConfig.FacebookSync

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    cfg.CronSchedule,
		"hourly_days":      cfg.HourlyDays,
		"backfill_days":    cfg.BackfillDays,
		"backfill_hour":    cfg.BackfillHour,
		"backfill_enabled": cfg.BackfillEnabled,
		"sync_enabled":     cfg.Enabled,
	}).Info("Configuração do agendador de sincronização do Facebook carregada")

	return &FacebookSyncScheduler{
		scheduler:   gocron.NewScheduler(time.Local),
		cfg:         cfg,
		appConfig:   appConfig,
		syncService: syncService,
		lock:        lock,
		now:         time.Now,
	}
}

// Start disputa o lock e agenda o job. Lock indisponível não é erro: outra
// instância já está sincronizando.
func (s *FacebookSyncScheduler) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Sincronização do Facebook desabilitada por configuração")
		return nil
	}

	acquired, err := s.lock.TryAcquire(ctx, facebookLockName)
	if err != nil {
		return fmt.Errorf("erro ao disputar o lock do agendador do Facebook: %w", err)
	}
	if !acquired {
		logrus.Info("Lock do agendador do Facebook detido por outro processo; esta instância ficará ociosa")
		return nil
	}
	s.lockHeld = true

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de sincronização do Facebook")

	_, err = s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runScheduledSync(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do Facebook: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Facebook")
		s.scheduler.Stop()

		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.lock.Release(releaseCtx); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar o lock do agendador do Facebook")
		}
	}()

	return nil
}

// runScheduledSync executa um tick: a janela incremental sempre, e o
// reprocessamento quando for a hora dele. Pânicos são contidos para o
// agendador continuar vivo no próximo tick.
func (s *FacebookSyncScheduler) runScheduledSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Facebook já em andamento, ignorando tick")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Pânico na sincronização do Facebook; aguardando o próximo tick")
		}

		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	now := s.now()
	hourly := hourlyWindow(domain.PlatformFacebook, "", s.cfg.HourlyDays, now)
	backfill := backfillWindow(domain.PlatformFacebook, "", s.cfg.BackfillDays, now)

	s.syncAllAccounts(ctx, hourly)

	if shouldBackfill(s.cfg.BackfillEnabled, s.cfg.BackfillHour, hourly, backfill, now) {
		logrus.Infof("Hora do reprocessamento diário do Facebook (%s)", backfill)
		s.syncAllAccounts(ctx, backfill)
	}
}

// syncAllAccounts roda a janela para cada conta configurada, em sequência
func (s *FacebookSyncScheduler) syncAllAccounts(ctx context.Context, window domain.SyncWindow) {
	accounts := s.appConfig.FacebookAccountIDs()
	if len(accounts) == 0 {
		logrus.Warn("Nenhuma conta do Facebook configurada para sincronização")
		return
	}

	for _, accountID := range accounts {
		window.AccountScope = accountID

		result := s.syncService.Sync(ctx, syncing.DefaultOptions(window))

		s.syncMutex.Lock()
		s.lastResult = result
		s.syncMutex.Unlock()

		logrus.Debugf("Resultado da sincronização do Facebook (%s): %s", accountID, utils.PrettyJson(result))

		if !result.Success {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"window":     window.String(),
				"errors":     result.Errors,
			}).Error("Sincronização do Facebook falhou para a conta")
		}
	}
}

// TriggerManualSync dispara um tick completo fora do cron
func (s *FacebookSyncScheduler) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Facebook já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do Facebook")
	go s.runScheduledSync(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *FacebookSyncScheduler) GetStatus() map[string]any {
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
		"accounts":               s.appConfig.FacebookAccountIDs(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
