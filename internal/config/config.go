package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Anthropic      Anthropic      `mapstructure:",squash"`
	OpenAI         OpenAI         `mapstructure:",squash"`
	Analyzer       Analyzer       `mapstructure:",squash"`
	AgenticLoop    AgenticLoop    `mapstructure:",squash"`
	LiveAPI        LiveAPI        `mapstructure:",squash"`
	Webhook        Webhook        `mapstructure:",squash"`
	Encryption     Encryption     `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	SummaryCleanup SummaryCleanup `mapstructure:",squash"`
	JobTimeout     JobTimeout     `mapstructure:",squash"`
	OAuthSecrets   OAuthSecrets   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Anthropic struct {
	APIKey     string `mapstructure:"anthropic_api_key"`
	MaxRetries int    `mapstructure:"anthropic_max_retries"`
}

type OpenAI struct {
	APIKey     string `mapstructure:"openai_api_key"`
	MaxRetries int    `mapstructure:"openai_max_retries"`
}

type Analyzer struct {
	MaxConcurrentGenerations int `mapstructure:"analyzer_max_concurrent_generations"`
	DefaultDays              int `mapstructure:"analyzer_default_days"`
}

type AgenticLoop struct {
	MaxIterations            int `mapstructure:"agentic_loop_max_iterations"`
	MaxRecommendations       int `mapstructure:"agentic_loop_max_recommendations"`
	MaxToolCallsPerIteration int `mapstructure:"agentic_loop_max_tool_calls_per_iteration"`
}

type LiveAPI struct {
	RequestTimeoutSeconds int `mapstructure:"live_api_request_timeout_seconds"`
}

type Webhook struct {
	TimeoutSeconds int `mapstructure:"webhook_timeout_seconds"`
}

type Encryption struct {
	KeyHex string `mapstructure:"encryption_key_hex"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type SummaryCleanup struct {
	CronSchedule string `mapstructure:"summary_cleanup_cron"`
	Enabled      bool   `mapstructure:"summary_cleanup_enabled"`
}

type JobTimeout struct {
	CronSchedule      string `mapstructure:"job_timeout_cron"`
	Enabled           bool   `mapstructure:"job_timeout_enabled"`
	MaxRunningMinutes int    `mapstructure:"job_timeout_max_running_minutes"`
}

// OAuthSecrets são as credenciais de app usadas apenas para renovar tokens
// de acesso já autorizados; o fluxo de autorização vive no painel
type OAuthSecrets struct {
	MetaAppID          string `mapstructure:"meta_app_id"`
	MetaAppSecret      string `mapstructure:"meta_app_secret"`
	GoogleClientID     string `mapstructure:"google_client_id"`
	GoogleClientSecret string `mapstructure:"google_client_secret"`
	HubspotClientID    string `mapstructure:"hubspot_client_id"`
	HubspotSecret      string `mapstructure:"hubspot_client_secret"`
	JobberClientID     string `mapstructure:"jobber_client_id"`
	JobberSecret       string `mapstructure:"jobber_client_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_analysis")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MAX_RETRIES", 5)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MAX_RETRIES", 5)

	// Limitador global de geração: protege os rate limits dos providers
	viper.SetDefault("ANALYZER_MAX_CONCURRENT_GENERATIONS", 2)
	viper.SetDefault("ANALYZER_DEFAULT_DAYS", 7)

	viper.SetDefault("AGENTIC_LOOP_MAX_ITERATIONS", 5)
	viper.SetDefault("AGENTIC_LOOP_MAX_RECOMMENDATIONS", 10)
	viper.SetDefault("AGENTIC_LOOP_MAX_TOOL_CALLS_PER_ITERATION", 3)

	viper.SetDefault("LIVE_API_REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 10)

	viper.SetDefault("ENCRYPTION_KEY_HEX", "")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("SUMMARY_CLEANUP_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("SUMMARY_CLEANUP_ENABLED", true)

	viper.SetDefault("JOB_TIMEOUT_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("JOB_TIMEOUT_ENABLED", true)
	viper.SetDefault("JOB_TIMEOUT_MAX_RUNNING_MINUTES", 60)

	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("HUBSPOT_CLIENT_ID", "")
	viper.SetDefault("HUBSPOT_CLIENT_SECRET", "")
	viper.SetDefault("JOBBER_CLIENT_ID", "")
	viper.SetDefault("JOBBER_CLIENT_SECRET", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
