package syncing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	gadsdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/googleads/domain"
	gadsmocks "github.com/adsight/bi-ads-api/infrastructure/integrator/googleads/mocks"
	repomocks "github.com/adsight/bi-ads-api/infrastructure/repository/mocks"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	syncmocks "github.com/adsight/bi-ads-api/internal/usecases/syncing/mocks"
)

func googleTestConfig() *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{
			AccessToken:    "token-de-teste",
			DeveloperToken: "dev-token",
			CustomerID:     "999",
		},
		GoogleSync: config.GoogleSync{
			MaxDaysPerBatch: 7,
			MaxWorkers:      2,
		},
	}
}

func googleWindow(t *testing.T, start, end time.Time) domain.SyncWindow {
	t.Helper()
	window, err := domain.NewSyncWindow(domain.PlatformGoogle, "", start, end, domain.SyncModeManual)
	assert.NoError(t, err)
	return window
}

func campaignRow(id, name, date, costMicros string) gadsdomain.CampaignRow {
	return gadsdomain.CampaignRow{
		Campaign: gadsdomain.Campaign{ID: id, Name: name},
		Metrics: gadsdomain.Metrics{
			Impressions:      "1000",
			Clicks:           "50",
			CostMicros:       costMicros,
			Conversions:      3.456,
			ConversionsValue: 120.987,
		},
		Segments: gadsdomain.Segments{Date: date},
	}
}

func TestGoogleSyncCredenciaisAusentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := googleTestConfig()
	cfg.GoogleAds.DeveloperToken = ""

	mockClient := gadsmocks.NewMockClient(ctrl)
	mockRepo := repomocks.NewMockGoogleCampaignRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewGoogleSyncService(mockClient, mockRepo, mockCache, cfg)

	window := googleWindow(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))
	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.RecordsSynced)
	assert.Contains(t, result.Message, "Credenciais")
	assert.Equal(t, domain.ErrKindAuth, result.FailureKind)
}

func TestGoogleSyncJanelaComDoisDias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := gadsmocks.NewMockClient(ctrl)
	mockRepo := repomocks.NewMockGoogleCampaignRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewGoogleSyncService(mockClient, mockRepo, mockCache, googleTestConfig())

	day1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	window := googleWindow(t, day1, day2)

	// Uma query GAQL por dia da janela
	mockClient.EXPECT().
		SearchCampaignMetrics(gomock.Any(), "999", day1).
		Return([]gadsdomain.CampaignRow{campaignRow("11", "Brand", "2026-08-01", "12345678")}, nil)

	mockClient.EXPECT().
		SearchCampaignMetrics(gomock.Any(), "999", day2).
		Return([]gadsdomain.CampaignRow{campaignRow("11", "Brand", "2026-08-02", "2000000")}, nil)

	var written []*domain.GoogleCampaignRecord
	mockRepo.EXPECT().
		ReplaceWindow(gomock.Any(), gomock.Any(), day1, day2).
		DoAndReturn(func(_ context.Context, records []*domain.GoogleCampaignRecord, _, _ time.Time) (int, error) {
			written = records
			return len(records), nil
		})

	mockCache.EXPECT().
		InvalidatePrefixes(gomock.Any(), syncing.GoogleCachePatterns).
		Return(4)

	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.RecordsSynced)
	assert.Empty(t, result.Errors)

	assert.Len(t, written, 2)

	// A escrita chega ordenada por data
	assert.Equal(t, day1, written[0].Date)
	assert.Equal(t, day2, written[1].Date)

	first := written[0]
	assert.Equal(t, "11", first.CampaignID)
	assert.Equal(t, int64(1000), first.Impressions)
	assert.Equal(t, int64(50), first.Clicks)
	// 12.345.678 micros = 12.35 após arredondar em duas casas
	assert.Equal(t, 12.35, first.Cost)
	assert.Equal(t, 3.46, first.Conversions)
	assert.Equal(t, 120.99, first.ConversionValue)
}

func TestGoogleSyncTodosOsDiasFalham(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := gadsmocks.NewMockClient(ctrl)
	mockRepo := repomocks.NewMockGoogleCampaignRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewGoogleSyncService(mockClient, mockRepo, mockCache, googleTestConfig())

	day1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	window := googleWindow(t, day1, day2)

	mockClient.EXPECT().
		SearchCampaignMetrics(gomock.Any(), "999", gomock.Any()).
		Times(2).
		Return(nil, domain.NewTransientError(errors.New("indisponível")))

	// Sem dias bons não há escrita nem invalidação de cache
	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.RecordsSynced)
	assert.Len(t, result.Errors, 1)
}

func TestGoogleSyncDiaComFalhaIsolada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := gadsmocks.NewMockClient(ctrl)
	mockRepo := repomocks.NewMockGoogleCampaignRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewGoogleSyncService(mockClient, mockRepo, mockCache, googleTestConfig())

	day1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	window := googleWindow(t, day1, day3)

	mockClient.EXPECT().
		SearchCampaignMetrics(gomock.Any(), "999", day1).
		Return([]gadsdomain.CampaignRow{campaignRow("11", "Brand", "2026-08-01", "1000000")}, nil)

	mockClient.EXPECT().
		SearchCampaignMetrics(gomock.Any(), "999", day2).
		Return(nil, domain.NewValidationError(errors.New("query rejeitada")))

	mockClient.EXPECT().
		SearchCampaignMetrics(gomock.Any(), "999", day3).
		Return([]gadsdomain.CampaignRow{campaignRow("11", "Brand", "2026-08-03", "2000000")}, nil)

	// A limpeza acontece dia a dia e pula o dia que falhou: os dados já
	// gravados de 2026-08-02 ficam intactos
	mockRepo.EXPECT().
		DeleteByDateRange(gomock.Any(), day1, day1).
		Return(int64(1), nil)
	mockRepo.EXPECT().
		DeleteByDateRange(gomock.Any(), day3, day3).
		Return(int64(0), nil)

	mockRepo.EXPECT().
		InsertChunked(gomock.Any(), gomock.Len(2)).
		Return(2, nil)

	mockCache.EXPECT().
		InvalidatePrefixes(gomock.Any(), syncing.GoogleCachePatterns).
		Return(0)

	// Um dia ruim não derruba a janela: os dias bons são escritos
	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.RecordsSynced)

	// O dia com falha aparece no desfecho
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "2026-08-02")
	assert.Contains(t, result.Errors[0], "query rejeitada")
}
