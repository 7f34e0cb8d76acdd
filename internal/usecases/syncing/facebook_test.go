package syncing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
	fbmocks "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/mocks"
	repomocks "github.com/adsight/bi-ads-api/infrastructure/repository/mocks"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	syncmocks "github.com/adsight/bi-ads-api/internal/usecases/syncing/mocks"
)

func facebookTestConfig() *config.Config {
	return &config.Config{
		Facebook: config.Facebook{
			AccessToken: "token-de-teste",
		},
		FacebookSync: config.FacebookSync{
			MaxDaysPerBatch: 7,
		},
	}
}

func mustWindow(t *testing.T, start, end time.Time) domain.SyncWindow {
	t.Helper()
	window, err := domain.NewSyncWindow(domain.PlatformFacebook, "123", start, end, domain.SyncModeManual)
	assert.NoError(t, err)
	return window
}

func adInsight(adID, date, spend string) fbdomain.AdInsight {
	return fbdomain.AdInsight{
		CampaignID:   "c1",
		CampaignName: "Campanha",
		AdsetID:      "s1",
		AdsetName:    "Conjunto",
		AdID:         adID,
		AdName:       "Anúncio " + adID,
		Impressions:  "100",
		Spend:        spend,
		Clicks:       "10",
		Reach:        "80",
		DateStart:    date,
		DateStop:     date,
	}
}

func TestFacebookSyncCredenciaisAusentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := facebookTestConfig()
	cfg.Facebook.AccessToken = ""

	mockClient := fbmocks.NewMockClient(ctrl)
	mockResolver := syncmocks.NewMockCreativeResolver(ctrl)
	mockRepo := repomocks.NewMockFacebookAdRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewFacebookSyncService(mockClient, mockResolver, mockRepo, mockCache, cfg)

	window := mustWindow(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC))
	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	// Nada pode ser buscado nem escrito sem credenciais
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.RecordsSynced)
	assert.Contains(t, result.Message, "Credenciais")
	assert.Equal(t, domain.ErrKindAuth, result.FailureKind)
}

func TestFacebookSyncJanelaUnica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fbmocks.NewMockClient(ctrl)
	mockResolver := syncmocks.NewMockCreativeResolver(ctrl)
	mockRepo := repomocks.NewMockFacebookAdRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewFacebookSyncService(mockClient, mockResolver, mockRepo, mockCache, facebookTestConfig())

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	window := mustWindow(t, start, end)

	// O mesmo anúncio aparece em dois dias; o enriquecimento recebe todos os
	// ad_ids e devolve uma entrada por anúncio
	insights := []fbdomain.AdInsight{
		adInsight("ad1", "2026-08-01", "10.50"),
		adInsight("ad1", "2026-08-02", "5.00"),
		adInsight("ad2", "2026-08-02", "3.25"),
	}
	insights[0].PurchaseRoas = []fbdomain.ActionValue{{ActionType: "omni_purchase", Value: "2"}}
	insights[0].Actions = []fbdomain.ActionValue{
		{ActionType: "omni_purchase", Value: "4"},
		{ActionType: "omni_add_to_cart", Value: "9"},
	}
	insights[0].UniqueActions = []fbdomain.ActionValue{{ActionType: "link_click", Value: "6"}}

	mockClient.EXPECT().
		GetAccountInsights(gomock.Any(), "123", start, end).
		Return(insights, nil)

	mockResolver.EXPECT().
		Resolve(gomock.Any(), []string{"ad1", "ad1", "ad2"}).
		Return(map[string]fbdomain.CreativeInfo{
			"ad1": {ImageURL: "http://img/ad1", PreviewURL: "http://prev/ad1"},
			"ad2": {},
		})

	var written []*domain.FacebookAdRecord
	mockRepo.EXPECT().
		ReplaceWindow(gomock.Any(), gomock.Any(), start, end, "123").
		DoAndReturn(func(_ context.Context, records []*domain.FacebookAdRecord, _, _ time.Time, _ string) (int, error) {
			written = records
			return len(records), nil
		})

	mockCache.EXPECT().
		InvalidatePrefixes(gomock.Any(), syncing.FacebookCachePatterns).
		Return(10)

	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.RecordsSynced)
	assert.Empty(t, result.Errors)

	assert.Len(t, written, 3)

	first := written[0]
	assert.Equal(t, "ad1", first.AdID)
	assert.Equal(t, "123", first.AccountID)
	assert.Equal(t, int64(100), first.Impressions)
	assert.Equal(t, 10.5, first.Spend)
	assert.Equal(t, 2.0, first.PurchaseRoas)
	// Valor de conversão derivado: 10.50 × 2 = 21.00
	assert.Equal(t, 21.0, first.PurchaseConversionValue)
	assert.Equal(t, int64(4), first.Purchases)
	assert.Equal(t, int64(9), first.AddsToCart)
	assert.Equal(t, int64(6), first.UniqueLinkClicks)
	assert.Equal(t, "http://img/ad1", first.ImageURL)
	assert.Equal(t, "http://prev/ad1", first.PreviewURL)

	// Anúncio sem criativo resolvido fica com URLs vazias, nunca ausente
	assert.Equal(t, "", written[2].ImageURL)
}

func TestFacebookSyncFalhaParcialDeJanela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fbmocks.NewMockClient(ctrl)
	mockResolver := syncmocks.NewMockCreativeResolver(ctrl)
	mockRepo := repomocks.NewMockFacebookAdRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewFacebookSyncService(mockClient, mockResolver, mockRepo, mockCache, facebookTestConfig())

	// 14 dias viram duas sub-janelas de 7
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	window := mustWindow(t, start, end)

	firstEnd := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)
	secondStart := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)

	// Primeira sub-janela falha na busca; a segunda segue normalmente
	mockClient.EXPECT().
		GetAccountInsights(gomock.Any(), "123", start, firstEnd).
		Return(nil, domain.NewValidationError(errors.New("janela rejeitada")))

	mockClient.EXPECT().
		GetAccountInsights(gomock.Any(), "123", secondStart, end).
		Return([]fbdomain.AdInsight{adInsight("ad9", "2026-08-09", "1.00")}, nil)

	mockResolver.EXPECT().
		Resolve(gomock.Any(), []string{"ad9"}).
		Return(map[string]fbdomain.CreativeInfo{"ad9": {}})

	mockRepo.EXPECT().
		ReplaceWindow(gomock.Any(), gomock.Any(), secondStart, end, "123").
		Return(1, nil)

	mockCache.EXPECT().
		InvalidatePrefixes(gomock.Any(), syncing.FacebookCachePatterns).
		Return(0)

	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	// Uma janela boa basta para o resultado ser sucesso, com a falha registrada
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.RecordsSynced)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "2026-08-01")
}

func TestFacebookSyncTodasAsJanelasFalham(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fbmocks.NewMockClient(ctrl)
	mockResolver := syncmocks.NewMockCreativeResolver(ctrl)
	mockRepo := repomocks.NewMockFacebookAdRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewFacebookSyncService(mockClient, mockResolver, mockRepo, mockCache, facebookTestConfig())

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	window := mustWindow(t, start, end)

	mockClient.EXPECT().
		GetAccountInsights(gomock.Any(), "123", start, end).
		Return(nil, domain.NewAuthError(errors.New("token inválido")))

	// Sem escrita bem-sucedida o cache não pode ser invalidado
	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.RecordsSynced)
	assert.Len(t, result.Errors, 1)
}

func TestFacebookSyncEscritaParcial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fbmocks.NewMockClient(ctrl)
	mockResolver := syncmocks.NewMockCreativeResolver(ctrl)
	mockRepo := repomocks.NewMockFacebookAdRepository(ctrl)
	mockCache := syncmocks.NewMockCacheInvalidator(ctrl)

	service := syncing.NewFacebookSyncService(mockClient, mockResolver, mockRepo, mockCache, facebookTestConfig())

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	window := mustWindow(t, start, start)

	mockClient.EXPECT().
		GetAccountInsights(gomock.Any(), "123", start, start).
		Return([]fbdomain.AdInsight{
			adInsight("ad1", "2026-08-01", "1.00"),
			adInsight("ad2", "2026-08-01", "2.00"),
		}, nil)

	mockResolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(map[string]fbdomain.CreativeInfo{})

	partialErr := &domain.PartialWriteError{Committed: 1, Total: 2, Err: errors.New("chunk falhou")}
	mockRepo.EXPECT().
		ReplaceWindow(gomock.Any(), gomock.Any(), start, start, "123").
		Return(1, partialErr)

	result := service.Sync(context.Background(), syncing.DefaultOptions(window))

	// A contagem reflete o que foi confirmado antes da falha
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.RecordsSynced)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "escrita parcial")
}
