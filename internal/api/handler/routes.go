package handler

import (
	"net/http"

	"github.com/adsight/bi-ads-api/infrastructure/cache"
	"github.com/adsight/bi-ads-api/infrastructure/database/postgres"
	"github.com/adsight/bi-ads-api/infrastructure/repository"
	"github.com/adsight/bi-ads-api/internal/api/handler/router"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	"github.com/adsight/bi-ads-api/pkg/middleware"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

// Syncs expõe o disparo manual de sincronizações por janela arbitrária
func Syncs(
	facebookService syncing.FacebookSyncer,
	googleService syncing.GoogleSyncer,
	store *config.Store,
) []router.Route {
	admin := middleware.AdminAuth(store.Current().Auth.Secret)

	return []router.Route{
		{
			Path:        "/v1/facebook/sync",
			Method:      http.MethodPost,
			Handler:     SyncFacebook(facebookService, store),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
		{
			Path:        "/v1/google/sync",
			Method:      http.MethodPost,
			Handler:     SyncGoogle(googleService, store),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
	}
}

// AppConfig expõe o reload do snapshot de configuração
func AppConfig(store *config.Store) []router.Route {
	admin := middleware.AdminAuth(store.Current().Auth.Secret)

	return []router.Route{
		{
			Path:        "/v1/config/reload",
			Method:      http.MethodPost,
			Handler:     ReloadConfig(store),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
	}
}

// Performance expõe a leitura das tabelas fato, com cache de consulta
func Performance(
	facebookRepo repository.FacebookAdRepository,
	googleRepo repository.GoogleCampaignRepository,
	cacheManager *cache.Manager,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/facebook/ads-performance",
			Method:  http.MethodGet,
			Handler: FacebookAdsPerformance(facebookRepo, cacheManager),
		},
		{
			Path:    "/v1/google/campaigns",
			Method:  http.MethodGet,
			Handler: GoogleCampaigns(googleRepo, cacheManager),
		},
	}
}

// Cache expõe a administração das camadas de cache
func Cache(cacheManager *cache.Manager, appConfig *config.Config) []router.Route {
	admin := middleware.AdminAuth(appConfig.Auth.Secret)

	return []router.Route{
		{
			Path:    "/v1/cache/stats",
			Method:  http.MethodGet,
			Handler: GetCacheStats(cacheManager),
		},
		{
			Path:        "/v1/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidateCache(cacheManager),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
		{
			Path:        "/v1/cache/flush",
			Method:      http.MethodPost,
			Handler:     FlushCache(cacheManager),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
	}
}

func CronJobs(services CronJobServices, appConfig *config.Config) []router.Route {
	admin := middleware.AdminAuth(appConfig.Auth.Secret)

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
	}
}
