package syncing

import (
	"context"

	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
	"github.com/adsight/bi-ads-api/internal/domain"
)

// FacebookSyncer sincroniza uma janela de métricas de anúncios do Facebook
type FacebookSyncer interface {
	// Sync nunca devolve falha de negócio como erro: o desfecho vai no SyncResult
	Sync(ctx context.Context, opts Options) *domain.SyncResult
}

// GoogleSyncer sincroniza uma janela de métricas de campanhas do Google Ads
type GoogleSyncer interface {
	Sync(ctx context.Context, opts Options) *domain.SyncResult
}

// CreativeResolver enriquece anúncios com imagem e preview do criativo
type CreativeResolver interface {
	Resolve(ctx context.Context, adIDs []string) map[string]fbdomain.CreativeInfo
}

// CacheInvalidator aplica os padrões de invalidação de uma plataforma
type CacheInvalidator interface {
	InvalidatePrefixes(ctx context.Context, patterns []string) int
}

// Options parametriza uma sincronização disparada pelo agendador ou pela API
type Options struct {
	Window domain.SyncWindow

	// Limit trunca a quantidade de registros gravados; zero desliga o limite
	Limit int

	// ClearExisting limpa a janela antes de inserir (comportamento padrão dos
	// agendadores). Desligado, os registros são apenas inseridos/atualizados.
	ClearExisting bool
}

// DefaultOptions é o comportamento dos agendadores: janela limpa, sem limite
func DefaultOptions(window domain.SyncWindow) Options {
	return Options{
		Window:        window,
		ClearExisting: true,
	}
}

// Padrões de cache invalidados após uma sincronização com escrita bem-sucedida
var (
	FacebookCachePatterns = []string{
		"facebook:impressions*",
		"facebook:purchases*",
		"facebook:overview*",
		"facebook:performance_comparison*",
		"facebook:campaign_performance*",
		"facebook:ads_performance*",
		"facebook:adsets_performance*",
		"facebook:ads_detail_performance*",
		"facebook:impressions:db*",
		"facebook:purchases:db*",
	}

	GoogleCachePatterns = []string{
		"google:impressions*",
		"google:purchases*",
		"google:campaigns*",
		"google:ads_performance*",
		"google:performance_comparison*",
		"google:overview*",
	}
)
