package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi/oauth"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm/anthropicclient"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm/openaiclient"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/api"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/scheduler"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/hierarchy"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/jobs"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/prompting"
	"github.com/vfg2006/ad-analysis-api/internal/usecases/recommending"
	"github.com/vfg2006/ad-analysis-api/pkg/crypto"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	jobRepo := repository.NewAnalysisJobRepository(pgConn)
	summaryRepo := repository.NewAnalysisSummaryRepository(pgConn)
	templateRepo := repository.NewPromptTemplateRepository(pgConn)
	connectionRepo := repository.NewConnectionRepository(pgConn)
	entityRepo := repository.NewEntityRepository(pgConn)
	metricRepo := repository.NewEntityMetricRepository(pgConn)
	logRepo := repository.NewAnalysisLogRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	fieldCipher := crypto.NewFieldCipher(cfg.Encryption.KeyHex)

	modelRouter := llm.NewRouter(
		anthropicclient.NewClient(cfg),
		openaiclient.NewClient(cfg),
	)

	liveExecutor := liveapi.NewExecutor(
		connectionRepo,
		fieldCipher,
		oauth.NewProviders(cfg.OAuthSecrets),
		cfg.LiveAPI,
		liveapi.NewMetaConnector(),
		liveapi.NewGoogleAdsConnector(),
		liveapi.NewStripeConnector(),
		liveapi.NewHubspotConnector(),
		liveapi.NewJobberConnector(),
	)

	promptManager := prompting.NewService(templateRepo)

	jobManager := jobs.NewService(jobRepo, jobs.NewWebhookNotifier(cfg.Webhook))

	agenticLoop := recommending.NewService(
		modelRouter,
		liveExecutor,
		promptManager,
		recommendationRepo,
		cfg.AgenticLoop,
	)

	analyzer := analyzing.NewService(
		hierarchy.NewTreeBuilder(entityRepo),
		hierarchy.NewMetricsSource(metricRepo),
		promptManager,
		modelRouter,
		agenticLoop,
		jobManager,
		summaryRepo,
		logRepo,
		cfg.Analyzer,
	)

	summaryCleanupService := scheduler.NewSummaryCleanupService(summaryRepo, cfg)
	jobTimeoutService := scheduler.NewJobTimeoutService(jobRepo, jobManager, cfg)

	if err := summaryCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de resumos")
	} else {
		logrus.Info("Agendador de limpeza de resumos iniciado com sucesso")
	}

	if err := jobTimeoutService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de timeout de jobs")
	} else {
		logrus.Info("Agendador de timeout de jobs iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		jobManager,
		analyzer,
		recommendationRepo,
		authenticator,
		summaryCleanupService,
		jobTimeoutService,
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
