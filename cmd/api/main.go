package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/anthropic"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/storageclient"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/tableclient"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/api"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/invoicing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/tracking"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	authenticator := authenticating.NewService(userRepo, cfg)

	// Integrações com o bucket de dados brutos, a tabela de notas fiscais e
	// o modelo de linguagem
	objectStoreClient := storageclient.NewClient(cfg)
	objectStoreIntegrator := objectstore.New(cfg, objectStoreClient)

	tableStoreClient := tableclient.NewClient(cfg)
	tableStoreIntegrator := tablestore.New(cfg, tableStoreClient)

	anthropicClient := anthropicclient.NewClient(cfg)
	anthropicIntegrator := anthropic.New(cfg, anthropicClient)

	// Serviços de domínio
	ingestor := ingesting.NewService(cfg, objectStoreIntegrator)
	invoicer := invoicing.NewService(cfg, tableStoreIntegrator)
	aggregator := aggregating.NewService(ingestor, invoicer)
	analyzer := analyzing.NewService(cfg, anthropicIntegrator, aggregator, ingestor)
	tracker := tracking.NewService(cfg, tableStoreIntegrator)

	// Agendador de pré-aquecimento dos caches
	cacheWarmer := scheduler.NewCacheWarmerService(cfg, ingestor, invoicer)
	if err := cacheWarmer.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pré-aquecimento de caches")
	} else {
		logrus.Info("Agendador de pré-aquecimento de caches iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestor,
		invoicer,
		aggregator,
		analyzer,
		tracker,
		authenticator,
		cacheWarmer,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
