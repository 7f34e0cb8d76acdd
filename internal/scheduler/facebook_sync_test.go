package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/adsight/bi-ads-api/infrastructure/repository/mocks"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	syncmocks "github.com/adsight/bi-ads-api/internal/usecases/syncing/mocks"
)

func facebookSchedulerConfig() *config.Config {
	return &config.Config{
		Facebook: config.Facebook{
			AccountIDs: "111,222",
		},
		FacebookSync: config.FacebookSync{
			Enabled:         true,
			CronSchedule:    "0 * * * *",
			HourlyDays:      14,
			BackfillDays:    30,
			BackfillHour:    2,
			BackfillEnabled: true,
		},
	}
}

func TestFacebookSchedulerTickSincronizaTodasAsContas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockFacebookSyncer(ctrl)
	mockLock := repomocks.NewMockSchedulerLock(ctrl)

	s := NewFacebookSyncScheduler(mockSyncer, mockLock, facebookSchedulerConfig())
	s.now = func() time.Time {
		// Fora da hora de reprocessamento
		return time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	}

	var scopes []string
	mockSyncer.EXPECT().
		Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts syncing.Options) *domain.SyncResult {
			assert.Equal(t, domain.SyncModeHourly, opts.Window.Mode)
			assert.Equal(t, 14, opts.Window.Days())
			scopes = append(scopes, opts.Window.AccountScope)
			return domain.NewSyncResult("ok", 10)
		}).
		Times(2)

	s.runScheduledSync(context.Background())

	assert.Equal(t, []string{"111", "222"}, scopes)
	assert.NotNil(t, s.lastResult)
	assert.True(t, s.lastResult.Success)
}

func TestFacebookSchedulerTickComReprocessamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockFacebookSyncer(ctrl)
	mockLock := repomocks.NewMockSchedulerLock(ctrl)

	s := NewFacebookSyncScheduler(mockSyncer, mockLock, facebookSchedulerConfig())
	s.now = func() time.Time {
		return time.Date(2026, 8, 20, 2, 0, 0, 0, time.UTC)
	}

	modes := map[domain.SyncMode]int{}
	mockSyncer.EXPECT().
		Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts syncing.Options) *domain.SyncResult {
			modes[opts.Window.Mode]++
			return domain.NewSyncResult("ok", 1)
		}).
		Times(4)

	s.runScheduledSync(context.Background())

	// Na hora configurada, cada conta roda a janela incremental e a de
	// reprocessamento
	assert.Equal(t, 2, modes[domain.SyncModeHourly])
	assert.Equal(t, 2, modes[domain.SyncModeBackfill])
}

func TestFacebookSchedulerPanicoNaoDerrubaOAgendador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockFacebookSyncer(ctrl)
	mockLock := repomocks.NewMockSchedulerLock(ctrl)

	s := NewFacebookSyncScheduler(mockSyncer, mockLock, facebookSchedulerConfig())
	s.now = func() time.Time {
		return time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	}

	calls := 0
	mockSyncer.EXPECT().
		Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ syncing.Options) *domain.SyncResult {
			calls++
			if calls == 1 {
				panic("falha inesperada")
			}
			return domain.NewSyncResult("ok", 1)
		}).
		Times(3)

	assert.NotPanics(t, func() {
		s.runScheduledSync(context.Background())
	})

	// O pânico libera a flag de execução e o próximo tick roda normalmente
	s.runScheduledSync(context.Background())
	assert.Equal(t, 3, calls)
}

func TestFacebookSchedulerStartSemLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockFacebookSyncer(ctrl)
	mockLock := repomocks.NewMockSchedulerLock(ctrl)

	mockLock.EXPECT().
		TryAcquire(gomock.Any(), "facebook_sync").
		Return(false, nil)

	s := NewFacebookSyncScheduler(mockSyncer, mockLock, facebookSchedulerConfig())

	// Lock detido por outra instância não é erro, apenas ociosidade
	err := s.Start(context.Background())
	assert.NoError(t, err)

	status := s.GetStatus()
	assert.Equal(t, false, status["lock_held"])
	assert.Equal(t, false, status["sync_running"])
}

func TestFacebookSchedulerStartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockFacebookSyncer(ctrl)
	mockLock := repomocks.NewMockSchedulerLock(ctrl)

	appConfig := facebookSchedulerConfig()
	appConfig.FacebookSync.Enabled = false

	s := NewFacebookSyncScheduler(mockSyncer, mockLock, appConfig)

	// Desabilitado não disputa o lock
	err := s.Start(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, false, s.GetStatus()["lock_held"])
}

func TestFacebookSchedulerStatusDuranteExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockFacebookSyncer(ctrl)
	mockLock := repomocks.NewMockSchedulerLock(ctrl)

	appConfig := facebookSchedulerConfig()
	appConfig.Facebook.AccountIDs = "111"

	s := NewFacebookSyncScheduler(mockSyncer, mockLock, appConfig)
	s.now = func() time.Time {
		return time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	mockSyncer.EXPECT().
		Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ syncing.Options) *domain.SyncResult {
			close(started)
			<-release
			return domain.NewSyncResult("ok", 1)
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.runScheduledSync(context.Background())
	}()

	<-started

	// Status consultado enquanto o job roda em outra goroutine
	assert.Equal(t, true, s.GetStatus()["sync_running"])

	close(release)
	<-done

	status := s.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	assert.NotNil(t, status["last_result"])
}

func TestFacebookSchedulerStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockFacebookSyncer(ctrl)
	mockLock := repomocks.NewMockSchedulerLock(ctrl)

	s := NewFacebookSyncScheduler(mockSyncer, mockLock, facebookSchedulerConfig())

	status := s.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 * * * *", status["sync_cron"])
	assert.Equal(t, 14, status["hourly_days"])
	assert.Equal(t, 30, status["backfill_days"])
	assert.Equal(t, []string{"111", "222"}, status["accounts"])
	assert.NotContains(t, status, "last_result")
}
