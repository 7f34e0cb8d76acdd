package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/adsight/bi-ads-api/infrastructure/cache"
	"github.com/adsight/bi-ads-api/infrastructure/database/postgres"
	"github.com/adsight/bi-ads-api/infrastructure/repository"
	"github.com/adsight/bi-ads-api/internal/api/handler"
	"github.com/adsight/bi-ads-api/internal/api/handler/router"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/scheduler"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	"github.com/adsight/bi-ads-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	store *config.Store,
	conn postgres.Conn,
	facebookService syncing.FacebookSyncer,
	googleService syncing.GoogleSyncer,
	facebookRepo repository.FacebookAdRepository,
	googleRepo repository.GoogleCampaignRepository,
	cacheManager *cache.Manager,
	facebookScheduler *scheduler.FacebookSyncScheduler,
	googleScheduler *scheduler.GoogleSyncScheduler,
) (*Server, error) {
	appConfig := store.Current()

	cronServices := handler.CronJobServices{
		FacebookSyncScheduler: facebookScheduler,
		GoogleSyncScheduler:   googleScheduler,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn)...),
		router.WithRoutes(handler.Syncs(facebookService, googleService, store)...),
		router.WithRoutes(handler.Performance(facebookRepo, googleRepo, cacheManager)...),
		router.WithRoutes(handler.Cache(cacheManager, appConfig)...),
		router.WithRoutes(handler.CronJobs(cronServices, appConfig)...),
		router.WithRoutes(handler.AppConfig(store)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", appConfig.Server.Host, appConfig.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
