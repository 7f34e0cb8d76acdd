package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/adsight/bi-ads-api/internal/scheduler"
	"github.com/adsight/bi-ads-api/pkg/apiErrors"
	"github.com/adsight/bi-ads-api/pkg/log"
)

// Tipos de cron job aceitos pelo disparo manual
const (
	CronJobTypeFacebook = "facebook"
	CronJobTypeGoogle   = "google"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	FacebookSyncScheduler *scheduler.FacebookSyncScheduler
	GoogleSyncScheduler   *scheduler.GoogleSyncScheduler
}

// RunCronJob dispara manualmente um tick de sincronização
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeFacebook:
			if services.FacebookSyncScheduler == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador do Facebook não disponível", nil)
				return
			}
			services.FacebookSyncScheduler.TriggerManualSync()

		case CronJobTypeGoogle:
			if services.GoogleSyncScheduler == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador do Google Ads não disponível", nil)
				return
			}
			services.GoogleSyncScheduler.TriggerManualSync()

		case CronJobTypeAll:
			if services.FacebookSyncScheduler != nil {
				services.FacebookSyncScheduler.TriggerManualSync()
			}
			if services.GoogleSyncScheduler != nil {
				services.GoogleSyncScheduler.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownSyncType, "Tipo de cron job inválido. Valores aceitos: facebook, google, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("Cron job disparada manualmente")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao escrever a resposta da cron job")
		}
	})
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"facebook": services.FacebookSyncScheduler.GetStatus(),
			"google":   services.GoogleSyncScheduler.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.ForContext(r.Context()).WithField("error", err.Error()).Error("Erro ao escrever o status das crons")
		}
	})
}
