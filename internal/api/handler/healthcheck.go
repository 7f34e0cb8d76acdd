package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/adsight/bi-ads-api/infrastructure/database/postgres"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func HealthcheckHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		if err := conn.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("Healthcheck: banco de dados indisponível")

			response["status"] = "degraded"
			response["database"] = "unavailable"
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			response["database"] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("Healthcheck: erro ao escrever a resposta")
		}
	})
}
