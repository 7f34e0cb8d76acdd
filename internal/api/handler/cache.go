package handler

import (
	"net/http"

	"github.com/adsight/bi-ads-api/infrastructure/cache"
	"github.com/adsight/bi-ads-api/pkg/apiErrors"
	"github.com/adsight/bi-ads-api/pkg/log"
)

// InvalidateCacheRequest é o corpo da invalidação manual
type InvalidateCacheRequest struct {
	Pattern string `json:"pattern"`
}

// GetCacheStats expõe contadores e saúde das duas camadas de cache
func GetCacheStats(cacheManager *cache.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats := cacheManager.Stats(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.ForContext(r.Context()).WithField("error", err.Error()).Error("Erro ao escrever estatísticas do cache")
		}
	})
}

// InvalidateCache remove as entradas que casam com o padrão informado
func InvalidateCache(cacheManager *cache.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req InvalidateCacheRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Pattern == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo pattern é obrigatório", nil)
			return
		}

		removed := cacheManager.Invalidate(r.Context(), req.Pattern)

		logger.WithFields(log.Fields{
			"pattern": req.Pattern,
			"removed": removed,
		}).Info("Invalidação manual de cache executada")

		response := map[string]any{
			"pattern": req.Pattern,
			"removed": removed,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao escrever a resposta de invalidação")
		}
	})
}

// FlushCache limpa as duas camadas por completo
func FlushCache(cacheManager *cache.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := cacheManager.FlushAll(r.Context()); err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao limpar o cache")
			apiErrors.WriteError(w, apiErrors.ErrCacheUnavailable, "Erro ao limpar o cache", nil)
			return
		}

		logger.Info("Cache limpo por completo via API")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"message": "Cache limpo com sucesso"}); err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao escrever a resposta de limpeza do cache")
		}
	})
}
