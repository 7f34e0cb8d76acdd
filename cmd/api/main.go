package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/adsight/bi-ads-api/infrastructure/cache"
	"github.com/adsight/bi-ads-api/infrastructure/database/postgres"
	"github.com/adsight/bi-ads-api/infrastructure/integrator/facebook"
	"github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/fbclient"
	"github.com/adsight/bi-ads-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/adsight/bi-ads-api/infrastructure/repository"
	"github.com/adsight/bi-ads-api/internal/api"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/internal/scheduler"
	"github.com/adsight/bi-ads-api/internal/usecases/syncing"
	"github.com/adsight/bi-ads-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// O snapshot corrente alimenta o reload de configuração pela API
	store := config.NewStore(cfg)

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	facebookRepo := repository.NewFacebookAdRepository(pgConn, cfg.FacebookSync.DBChunkSize)
	googleRepo := repository.NewGoogleCampaignRepository(pgConn, cfg.GoogleSync.DBChunkSize)

	cacheManager := cache.NewManager(cfg.Redis)

	facebookClient, err := fbclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do Facebook")
	}

	googleClient, err := gadsclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do Google Ads")
	}

	creativeResolver := facebook.NewCreativeResolver(facebookClient, cfg.FacebookSync)

	facebookSyncService := syncing.NewFacebookSyncService(
		facebookClient,
		creativeResolver,
		facebookRepo,
		cacheManager,
		cfg,
	)

	googleSyncService := syncing.NewGoogleSyncService(
		googleClient,
		googleRepo,
		cacheManager,
		cfg,
	)

	// Cada agendador disputa seu próprio lock no banco
	facebookScheduler := scheduler.NewFacebookSyncScheduler(
		facebookSyncService,
		repository.NewSchedulerLock(pgConn),
		cfg,
	)

	googleScheduler := scheduler.NewGoogleSyncScheduler(
		googleSyncService,
		repository.NewSchedulerLock(pgConn),
		cfg,
	)

	if err := facebookScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Facebook")
	} else {
		logrus.Info("Agendador de sincronização do Facebook iniciado com sucesso")
	}

	if err := googleScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Google Ads")
	} else {
		logrus.Info("Agendador de sincronização do Google Ads iniciado com sucesso")
	}

	server, err := api.New(
		store,
		pgConn,
		facebookSyncService,
		googleSyncService,
		facebookRepo,
		googleRepo,
		cacheManager,
		facebookScheduler,
		googleScheduler,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
