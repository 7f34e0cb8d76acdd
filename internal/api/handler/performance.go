package handler

import (
	"net/http"
	"time"

	"github.com/adsight/bi-ads-api/infrastructure/cache"
	"github.com/adsight/bi-ads-api/infrastructure/repository"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/pkg/apiErrors"
	"github.com/adsight/bi-ads-api/pkg/log"
	"github.com/adsight/bi-ads-api/pkg/utils"
)

func parseDateRange(r *http.Request) (time.Time, time.Time, string) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil || startDate.IsZero() {
		return time.Time{}, time.Time{}, "start_date inválido, use o formato YYYY-MM-DD"
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil || endDate.IsZero() {
		return time.Time{}, time.Time{}, "end_date inválido, use o formato YYYY-MM-DD"
	}

	if startDate.After(*endDate) {
		return time.Time{}, time.Time{}, "start_date posterior a end_date"
	}

	return *startDate, *endDate, ""
}

// FacebookAdsPerformance lista as métricas consolidadas de anúncios do Facebook,
// servindo do cache quando a mesma consulta já foi respondida
func FacebookAdsPerformance(repo repository.FacebookAdRepository, cacheManager *cache.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, msg := parseDateRange(r)
		if msg != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, msg, nil)
			return
		}

		accountID := r.URL.Query().Get("account_id")

		cacheKey := cache.BuildKey("facebook:ads_performance", map[string]interface{}{
			"account": accountID,
			"start":   startDate,
			"end":     endDate,
		})

		var records []*domain.FacebookAdRecord
		if cacheManager.Get(r.Context(), cacheKey, &records) {
			writeRecords(w, logger, records)
			return
		}

		records, err := repo.ListByDateRange(r.Context(), accountID, startDate, endDate)
		if err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao consultar métricas de anúncios do Facebook")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas de anúncios", nil)
			return
		}

		cacheManager.Set(r.Context(), cacheKey, records, cache.DefaultTTL)
		writeRecords(w, logger, records)
	})
}

// GoogleCampaigns lista as métricas consolidadas de campanhas do Google Ads
func GoogleCampaigns(repo repository.GoogleCampaignRepository, cacheManager *cache.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, msg := parseDateRange(r)
		if msg != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, msg, nil)
			return
		}

		cacheKey := cache.BuildKey("google:campaigns", map[string]interface{}{
			"start": startDate,
			"end":   endDate,
		})

		var records []*domain.GoogleCampaignRecord
		if cacheManager.Get(r.Context(), cacheKey, &records) {
			writeRecords(w, logger, records)
			return
		}

		records, err := repo.ListByDateRange(r.Context(), startDate, endDate)
		if err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao consultar métricas de campanhas do Google Ads")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas de campanhas", nil)
			return
		}

		cacheManager.Set(r.Context(), cacheKey, records, cache.DefaultTTL)
		writeRecords(w, logger, records)
	})
}

func writeRecords(w http.ResponseWriter, logger log.Logger, records any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		logger.WithField("error", err.Error()).Error("Erro ao escrever a resposta de métricas")
	}
}
