package handler

import (
	"net/http"

	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/pkg/apiErrors"
	"github.com/adsight/bi-ads-api/pkg/log"
)

// ReloadConfig recarrega a configuração do ambiente e troca o snapshot
// corrente. Os handlers que leem o snapshot passam a ver os novos valores na
// requisição seguinte; os agendadores mantêm o snapshot de boot.
func ReloadConfig(store *config.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cfg, err := store.Reload()
		if err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao recarregar a configuração")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recarregar a configuração", nil)
			return
		}

		logger.Info("Configuração recarregada via API")

		response := map[string]any{
			"message":               "Configuração recarregada com sucesso",
			"log_level":             cfg.App.LogLevel,
			"facebook_sync_enabled": cfg.FacebookSync.Enabled,
			"google_sync_enabled":   cfg.GoogleSync.Enabled,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("Erro ao escrever a resposta do reload")
		}
	})
}
