package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets/gsheetsclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/settingsfile"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/settings"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsIntegrator := gsheets.New(cfg, gsheetsclient.NewClient(cfg))

	var (
		salesSource reporting.SalesSource
		refresher   scheduler.DatasetRefresher
	)

	switch cfg.App.DatasetSource {
	case config.DatasetSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		salesRepo := repository.NewSalesRepository(pgConn)
		if err := salesRepo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar as tabelas de vendas")
		}

		salesSource = salesRepo
		// A cron copia a planilha para o banco quando há uma planilha configurada
		if cfg.GSheets.URL != "" {
			refresher = scheduler.NewDatabaseImporter(sheetsIntegrator, salesRepo)
		}
	default:
		if cfg.GSheets.URL == "" {
			logrus.Fatal("GSHEETS_URL não definido")
		}
		salesSource = sheetsIntegrator
		refresher = sheetsIntegrator
	}

	logrus.WithField("dataset_source", cfg.App.DatasetSource).Info("Fonte de dados de vendas configurada")

	settingsManager := settings.NewService(settingsfile.NewRepository(cfg.Settings.File))
	if _, err := settingsManager.Load(); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o arquivo de configuração")
	}

	reporter := reporting.NewService(salesSource, settingsManager, exporter.NewXLSXExporter())
	authenticator := authenticating.NewService(cfg)
	if cfg.SecretKey == "" || cfg.SecretKey == config.DefaultSecretKey {
		logrus.Warn("SECRET_KEY não definido: login e rotas administrativas ficam indisponíveis")
	}

	var datasetRefreshService *scheduler.DatasetRefreshService
	if refresher != nil {
		datasetRefreshService = scheduler.NewDatasetRefreshService(refresher, cfg)

		if err := datasetRefreshService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização da planilha")
		} else {
			logrus.Info("Agendador de atualização da planilha iniciado com sucesso")
		}
	}

	server, err := api.New(
		cfg,
		reporter,
		settingsManager,
		authenticator,
		datasetRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
