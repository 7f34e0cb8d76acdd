package handler

import (
	"net/http"

	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	"github.com/adsight/bi-ads-api/pkg/apiErrors"
	"github.com/adsight/bi-ads-api/pkg/log"
	"github.com/adsight/bi-ads-api/pkg/utils"
)

// SyncRequest é o corpo das sincronizações disparadas pela API
type SyncRequest struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	AccountID     string `json:"account_id,omitempty"`
	CustomerID    string `json:"customer_id,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	ClearExisting *bool  `json:"clear_existing,omitempty"`
}

func (req *SyncRequest) options(platform domain.Platform, scope string) (syncing.Options, string) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil || startDate.IsZero() {
		return syncing.Options{}, "start_date inválido, use o formato YYYY-MM-DD"
	}

	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil || endDate.IsZero() {
		return syncing.Options{}, "end_date inválido, use o formato YYYY-MM-DD"
	}

	window, err := domain.NewSyncWindow(platform, scope, *startDate, *endDate, domain.SyncModeManual)
	if err != nil {
		return syncing.Options{}, err.Error()
	}

	opts := syncing.Options{
		Window:        window,
		Limit:         req.Limit,
		ClearExisting: true,
	}
	if req.ClearExisting != nil {
		opts.ClearExisting = *req.ClearExisting
	}

	return opts, ""
}

// SyncFacebook sincroniza uma janela arbitrária do Facebook sob demanda.
// As flags são lidas do snapshot corrente, então um reload vale já na
// próxima requisição.
func SyncFacebook(service syncing.FacebookSyncer, store *config.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !store.Current().FacebookSync.Enabled {
			apiErrors.WriteError(w, apiErrors.ErrSyncNotEnabled, "Sincronização do Facebook desabilitada por configuração", nil)
			return
		}

		var req SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		opts, msg := req.options(domain.PlatformFacebook, req.AccountID)
		if msg != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, msg, nil)
			return
		}

		logger.WithFields(log.Fields{
			"platform":   "facebook",
			"account_id": req.AccountID,
			"window":     opts.Window.String(),
		}).Info("Sincronização manual do Facebook solicitada pela API")

		result := service.Sync(r.Context(), opts)
		writeSyncResult(w, result)
	})
}

// SyncGoogle sincroniza uma janela arbitrária do Google Ads sob demanda
func SyncGoogle(service syncing.GoogleSyncer, store *config.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !store.Current().GoogleSync.Enabled {
			apiErrors.WriteError(w, apiErrors.ErrSyncNotEnabled, "Sincronização do Google Ads desabilitada por configuração", nil)
			return
		}

		var req SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		opts, msg := req.options(domain.PlatformGoogle, req.CustomerID)
		if msg != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, msg, nil)
			return
		}

		logger.WithFields(log.Fields{
			"platform":    "google",
			"customer_id": req.CustomerID,
			"window":      opts.Window.String(),
		}).Info("Sincronização manual do Google Ads solicitada pela API")

		result := service.Sync(r.Context(), opts)
		writeSyncResult(w, result)
	})
}

func writeSyncResult(w http.ResponseWriter, result *domain.SyncResult) {
	if !result.Success {
		if result.FailureKind == domain.ErrKindAuth {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, result.Message, result.Errors)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrVendorIntegration, result.Message, result.Errors)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.L.WithField("error", err.Error()).Error("Erro ao escrever o resultado da sincronização")
	}
}
