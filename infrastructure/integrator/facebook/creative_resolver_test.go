package facebook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
	fbmocks "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/mocks"
	"github.com/adsight/bi-ads-api/internal/config"
)

func resolverConfig() config.FacebookSync {
	return config.FacebookSync{
		MaxWorkers:       2,
		BatchSize:        50,
		EnablePreview:    true,
		CreativeCacheTTL: 3600,
	}
}

func TestResolveDeduplicaEntradas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fbmocks.NewMockClient(ctrl)
	resolver := NewCreativeResolver(mockClient, resolverConfig())

	// Cada anúncio único gera exatamente um lookup de criativo e um de preview
	mockClient.EXPECT().
		GetAdCreative(gomock.Any(), "ad1").
		Return(&fbdomain.Creative{ImageURL: "http://img/1"}, nil)
	mockClient.EXPECT().
		GetAdPreview(gomock.Any(), "ad1").
		Return("http://prev/1", nil)

	mockClient.EXPECT().
		GetAdCreative(gomock.Any(), "ad2").
		Return(&fbdomain.Creative{ImageURL: "http://img/2"}, nil)
	mockClient.EXPECT().
		GetAdPreview(gomock.Any(), "ad2").
		Return("http://prev/2", nil)

	infos := resolver.Resolve(context.Background(), []string{"ad1", "ad2", "ad1", "ad1"})

	assert.Len(t, infos, 2)
	assert.Equal(t, "http://img/1", infos["ad1"].ImageURL)
	assert.Equal(t, "http://prev/2", infos["ad2"].PreviewURL)
}

func TestResolveUsaCacheNaSegundaChamada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fbmocks.NewMockClient(ctrl)
	resolver := NewCreativeResolver(mockClient, resolverConfig())

	mockClient.EXPECT().
		GetAdCreative(gomock.Any(), "ad1").
		Return(&fbdomain.Creative{ImageURL: "http://img/1"}, nil).
		Times(1)
	mockClient.EXPECT().
		GetAdPreview(gomock.Any(), "ad1").
		Return("", nil).
		Times(1)

	first := resolver.Resolve(context.Background(), []string{"ad1"})
	assert.Equal(t, "http://img/1", first["ad1"].ImageURL)

	// A segunda chamada não pode ir ao Graph API
	second := resolver.Resolve(context.Background(), []string{"ad1"})
	assert.Equal(t, "http://img/1", second["ad1"].ImageURL)
}

func TestResolveFalhaViraValorVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fbmocks.NewMockClient(ctrl)
	resolver := NewCreativeResolver(mockClient, resolverConfig())

	mockClient.EXPECT().
		GetAdCreative(gomock.Any(), "ad1").
		Return(nil, errors.New("indisponível")).
		Times(1)
	mockClient.EXPECT().
		GetAdPreview(gomock.Any(), "ad1").
		Return("", errors.New("indisponível")).
		Times(1)

	infos := resolver.Resolve(context.Background(), []string{"ad1"})

	// A falha individual vira valores vazios e entra no cache negativo
	info, ok := infos["ad1"]
	assert.True(t, ok)
	assert.Equal(t, "", info.ImageURL)
	assert.Equal(t, "", info.PreviewURL)

	// O resultado negativo também evita novos lookups
	again := resolver.Resolve(context.Background(), []string{"ad1"})
	assert.Len(t, again, 1)
}

func TestResolveThumbnailComoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := resolverConfig()
	cfg.EnablePreview = false

	mockClient := fbmocks.NewMockClient(ctrl)
	resolver := NewCreativeResolver(mockClient, cfg)

	mockClient.EXPECT().
		GetAdCreative(gomock.Any(), "ad1").
		Return(&fbdomain.Creative{ThumbnailURL: "http://thumb/1"}, nil)

	infos := resolver.Resolve(context.Background(), []string{"ad1"})
	assert.Equal(t, "http://thumb/1", infos["ad1"].ImageURL)
}

func TestResolveModoBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := resolverConfig()
	cfg.UseBatchAPI = true
	cfg.EnablePreview = false

	mockClient := fbmocks.NewMockClient(ctrl)
	resolver := NewCreativeResolver(mockClient, cfg)

	// As respostas do lote casam com as requisições pela posição
	mockClient.EXPECT().
		ExecuteBatch(gomock.Any(), gomock.Len(2)).
		Return([]fbdomain.BatchResponse{
			{Code: 200, Body: `{"id":"ad1","creative":{"id":"c1","image_url":"http://img/1"}}`},
			{Code: 404, Body: `{}`},
		}, nil)

	infos := resolver.Resolve(context.Background(), []string{"ad1", "ad2"})

	assert.Len(t, infos, 2)
	assert.Equal(t, "http://img/1", infos["ad1"].ImageURL)
	assert.Equal(t, "", infos["ad2"].ImageURL)
}
