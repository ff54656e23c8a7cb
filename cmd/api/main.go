package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli"
	"github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/meli-sales-api/infrastructure/migration"
	"github.com/vfg2006/meli-sales-api/infrastructure/repository"
	"github.com/vfg2006/meli-sales-api/internal/api"
	"github.com/vfg2006/meli-sales-api/internal/config"
	"github.com/vfg2006/meli-sales-api/internal/scheduler"
	"github.com/vfg2006/meli-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/meli-sales-api/internal/usecases/customer"
	"github.com/vfg2006/meli-sales-api/internal/usecases/integrating"
	"github.com/vfg2006/meli-sales-api/internal/usecases/sale"
	"github.com/vfg2006/meli-sales-api/internal/usecases/syncing"
	"github.com/vfg2006/meli-sales-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := migration.Up(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	tokenRepo := repository.NewMeliTokenRepository(pgConn)

	meliClient := meliclient.NewClient(cfg)
	tokenManager := meliclient.NewTokenManager(cfg, meliClient, tokenRepo)
	meliIntegrator := meli.New(meliClient, tokenManager, tokenRepo)

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_ADMIN_PASSWORD_HASH vazio: API aberta sem autenticação")
	}

	customerService := customer.NewService(customerRepo, saleRepo)
	saleService := sale.NewService(saleRepo)
	syncService := syncing.NewService(customerRepo, saleRepo, meliIntegrator, cfg)
	integrationService := integrating.NewService(meliIntegrator, cfg)

	if cfg.Meli.SellerIDValue() == 0 {
		logrus.Warn("MELI_SELLER_ID não configurado: sincronização e status indisponíveis")
	}

	orderSyncService := scheduler.NewOrderSyncService(syncService, cfg)
	if err := orderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de ordens")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:      authenticator,
		CustomerService:    customerService,
		SaleService:        saleService,
		IntegrationService: integrationService,
		SyncService:        syncService,
		OrderSync:          orderSyncService,
		Database:           pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn obtém o pool compartilhado do PostgreSQL
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.Shared(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
