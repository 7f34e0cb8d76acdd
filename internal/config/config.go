package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Facebook     Facebook     `mapstructure:",squash"`
	GoogleAds    GoogleAds    `mapstructure:",squash"`
	FacebookSync FacebookSync `mapstructure:",squash"`
	GoogleSync   GoogleSync   `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
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

type Redis struct {
	Host     string `mapstructure:"redis_host"`
	Port     string `mapstructure:"redis_port"`
	DB       int    `mapstructure:"redis_db"`
	Password string `mapstructure:"redis_password"`
	Enabled  bool   `mapstructure:"redis_enabled"`
}

type Facebook struct {
	BaseURL     string `mapstructure:"facebook_base_url"`
	Version     string `mapstructure:"facebook_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"facebook_access_token"`
	AdAccountID string `mapstructure:"facebook_ad_account_id"`
	AccountIDs  string `mapstructure:"facebook_sync_account_ids"`
	ProxyURL    string `mapstructure:"facebook_proxy_url"`
}

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	Version        string `mapstructure:"google_ads_version"`
	URL            string `mapstructure:"-"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	AccessToken    string `mapstructure:"google_ads_access_token"`
	CustomerID     string `mapstructure:"google_ads_customer_id"`
	ProxyURL       string `mapstructure:"google_ads_proxy_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// FacebookSync controla o agendador e o motor de sincronização do Facebook
type FacebookSync struct {
	CronSchedule     string `mapstructure:"facebook_sync_cron"`
	HourlyDays       int    `mapstructure:"facebook_sync_hourly_days"`
	BackfillDays     int    `mapstructure:"facebook_sync_backfill_days"`
	BackfillHour     int    `mapstructure:"facebook_sync_backfill_hour"`
	BackfillEnabled  bool   `mapstructure:"facebook_sync_backfill_enabled"`
	Enabled          bool   `mapstructure:"facebook_sync_enabled"`
	MaxDaysPerBatch  int    `mapstructure:"facebook_sync_max_days_per_batch"`
	MaxWorkers       int    `mapstructure:"facebook_sync_max_workers"`
	BatchSize        int    `mapstructure:"facebook_sync_batch_size"`
	DBChunkSize      int    `mapstructure:"facebook_sync_db_chunk_size"`
	UseBatchAPI      bool   `mapstructure:"facebook_sync_use_batch_api"`
	EnablePreview    bool   `mapstructure:"facebook_sync_enable_preview"`
	CreativeCacheTTL int    `mapstructure:"facebook_sync_creative_cache_ttl"`
}

// GoogleSync controla o agendador e o motor de sincronização do Google Ads
type GoogleSync struct {
	CronSchedule    string `mapstructure:"google_sync_cron"`
	HourlyDays      int    `mapstructure:"google_sync_hourly_days"`
	BackfillDays    int    `mapstructure:"google_sync_backfill_days"`
	BackfillHour    int    `mapstructure:"google_sync_backfill_hour"`
	BackfillEnabled bool   `mapstructure:"google_sync_backfill_enabled"`
	Enabled         bool   `mapstructure:"google_sync_enabled"`
	MaxDaysPerBatch int    `mapstructure:"google_sync_max_days_per_batch"`
	MaxWorkers      int    `mapstructure:"google_sync_max_workers"`
	DBChunkSize     int    `mapstructure:"google_sync_db_chunk_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bi_ads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_ENABLED", true)

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_VERSION", "v21.0")
	viper.SetDefault("FACEBOOK_ACCESS_TOKEN", "")
	viper.SetDefault("FACEBOOK_AD_ACCOUNT_ID", "")
	viper.SetDefault("FACEBOOK_SYNC_ACCOUNT_IDS", "") // lista separada por vírgula; vazio usa FACEBOOK_AD_ACCOUNT_ID
	viper.SetDefault("FACEBOOK_PROXY_URL", "")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_ACCESS_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_PROXY_URL", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults da sincronização do Facebook
	viper.SetDefault("FACEBOOK_SYNC_CRON", "0 * * * *") // a cada hora cheia
	viper.SetDefault("FACEBOOK_SYNC_HOURLY_DAYS", 14)   // janela incremental de hora em hora
	viper.SetDefault("FACEBOOK_SYNC_BACKFILL_DAYS", 30) // janela de reprocessamento diário
	viper.SetDefault("FACEBOOK_SYNC_BACKFILL_HOUR", 2)  // hora do dia do reprocessamento (0-23)
	viper.SetDefault("FACEBOOK_SYNC_BACKFILL_ENABLED", true)
	viper.SetDefault("FACEBOOK_SYNC_ENABLED", false)
	viper.SetDefault("FACEBOOK_SYNC_MAX_DAYS_PER_BATCH", 7)
	viper.SetDefault("FACEBOOK_SYNC_MAX_WORKERS", 8)
	viper.SetDefault("FACEBOOK_SYNC_BATCH_SIZE", 50)
	viper.SetDefault("FACEBOOK_SYNC_DB_CHUNK_SIZE", 1000)
	viper.SetDefault("FACEBOOK_SYNC_USE_BATCH_API", false)
	viper.SetDefault("FACEBOOK_SYNC_ENABLE_PREVIEW", true)
	viper.SetDefault("FACEBOOK_SYNC_CREATIVE_CACHE_TTL", 3600) // segundos

	// Defaults da sincronização do Google Ads
	viper.SetDefault("GOOGLE_SYNC_CRON", "0 * * * *")
	viper.SetDefault("GOOGLE_SYNC_HOURLY_DAYS", 14)
	viper.SetDefault("GOOGLE_SYNC_BACKFILL_DAYS", 30)
	viper.SetDefault("GOOGLE_SYNC_BACKFILL_HOUR", 2)
	viper.SetDefault("GOOGLE_SYNC_BACKFILL_ENABLED", true)
	viper.SetDefault("GOOGLE_SYNC_ENABLED", false)
	viper.SetDefault("GOOGLE_SYNC_MAX_DAYS_PER_BATCH", 7)
	viper.SetDefault("GOOGLE_SYNC_MAX_WORKERS", 8)
	viper.SetDefault("GOOGLE_SYNC_DB_CHUNK_SIZE", 1000)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Facebook.URL = fmt.Sprintf("%s/%s", config.Facebook.BaseURL, config.Facebook.Version)
	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// FacebookAccountIDs retorna a lista de contas a sincronizar, sem o prefixo act_
func (c *Config) FacebookAccountIDs() []string {
	raw := c.Facebook.AccountIDs
	if raw == "" {
		raw = c.Facebook.AdAccountID
	}

	accounts := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimPrefix(strings.TrimSpace(id), "act_")
		if id != "" {
			accounts = append(accounts, id)
		}
	}
	return accounts
}

// Store guarda um snapshot imutável da configuração. Consumidores leem sempre
// o snapshot corrente; Reload produz um novo snapshot sem mutar o anterior.
type Store struct {
	current atomic.Pointer[Config]
}

func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Current retorna o snapshot corrente da configuração
func (s *Store) Current() *Config {
	return s.current.Load()
}

// Reload recarrega a configuração do ambiente e troca o snapshot corrente
func (s *Store) Reload() (*Config, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}

	s.current.Store(cfg)
	logrus.Info("Configuração recarregada com sucesso")
	return cfg, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
