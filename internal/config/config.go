package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	ObjectStore  ObjectStore  `mapstructure:",squash"`
	TableStore   TableStore   `mapstructure:",squash"`
	Anthropic    Anthropic    `mapstructure:",squash"`
	DatasetCache DatasetCache `mapstructure:",squash"`
	InvoiceCache InvoiceCache `mapstructure:",squash"`
	Scan         Scan         `mapstructure:",squash"`
	CacheWarmer  CacheWarmer  `mapstructure:",squash"`
	Segments     Segments     `mapstructure:"-"`
	SecretKey    string       `mapstructure:"secret_key"`
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

// ObjectStore aponta para o gateway HTTP de arquivos (bucket de uploads)
type ObjectStore struct {
	URL         string `mapstructure:"object_store_url"`
	Bucket      string `mapstructure:"object_store_bucket"`
	AccessToken string `mapstructure:"object_store_access_token"`
	Prefix      string `mapstructure:"object_store_prefix"`
}

// TableStore aponta para o gateway HTTP da tabela de notas fiscais e QR codes
type TableStore struct {
	URL          string `mapstructure:"table_store_url"`
	AccessToken  string `mapstructure:"table_store_access_token"`
	InvoiceTable string `mapstructure:"table_store_invoice_table"`
	QRCodeTable  string `mapstructure:"table_store_qrcode_table"`
	QRClickTable string `mapstructure:"table_store_qrclick_table"`
}

type Anthropic struct {
	URL         string `mapstructure:"anthropic_url"`
	APIKey      string `mapstructure:"anthropic_api_key"`
	Model       string `mapstructure:"anthropic_model"`
	MaxTokens   int    `mapstructure:"anthropic_max_tokens"`
	CacheTTLMin int    `mapstructure:"anthropic_cache_ttl_minutes"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// DatasetCache controla o cache em memória do dataset de vendas
type DatasetCache struct {
	TTLMinutes int `mapstructure:"dataset_cache_ttl_minutes"`
}

// InvoiceCache controla o cache em memória das notas fiscais
type InvoiceCache struct {
	TTLMinutes int `mapstructure:"invoice_cache_ttl_minutes"`
}

// Scan controla a paginação e o backoff da varredura da tabela remota
type Scan struct {
	PageSize          int `mapstructure:"scan_page_size"`
	InterPageDelayMs  int `mapstructure:"scan_inter_page_delay_ms"`
	BaseBackoffMs     int `mapstructure:"scan_base_backoff_ms"`
	MaxRetries        int `mapstructure:"scan_max_retries"`
	MaxConcurrentJobs int `mapstructure:"scan_max_concurrent_jobs"`
}

// CacheWarmer controla os jobs agendados de pré-aquecimento dos caches
type CacheWarmer struct {
	DatasetCron string `mapstructure:"cache_warmer_dataset_cron"`
	InvoiceCron string `mapstructure:"cache_warmer_invoice_cron"`
	Enabled     bool   `mapstructure:"cache_warmer_enabled"`
}

// Segments carrega as tabelas de segmentação de clientes. As faixas são
// ordenadas e cobrem todo o domínio de entrada, da primeira à última.
type Segments struct {
	Spending []domain.SegmentRange
	Recency  []domain.SegmentRange
}

func (d DatasetCache) TTL() time.Duration {
	return time.Duration(d.TTLMinutes) * time.Minute
}

func (i InvoiceCache) TTL() time.Duration {
	return time.Duration(i.TTLMinutes) * time.Minute
}

func (s Scan) InterPageDelay() time.Duration {
	return time.Duration(s.InterPageDelayMs) * time.Millisecond
}

func (s Scan) BaseBackoff() time.Duration {
	return time.Duration(s.BaseBackoffMs) * time.Millisecond
}

func (a Anthropic) CacheTTL() time.Duration {
	return time.Duration(a.CacheTTLMin) * time.Minute
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OBJECT_STORE_URL", "http://localhost:9000")
	viper.SetDefault("OBJECT_STORE_BUCKET", "retail-analytics-uploads")
	viper.SetDefault("OBJECT_STORE_ACCESS_TOKEN", "")
	viper.SetDefault("OBJECT_STORE_PREFIX", "raw-uploads/")

	viper.SetDefault("TABLE_STORE_URL", "http://localhost:9100")
	viper.SetDefault("TABLE_STORE_ACCESS_TOKEN", "")
	viper.SetDefault("TABLE_STORE_INVOICE_TABLE", "invoice-line-items")
	viper.SetDefault("TABLE_STORE_QRCODE_TABLE", "qr-codes")
	viper.SetDefault("TABLE_STORE_QRCLICK_TABLE", "qr-clicks")

	viper.SetDefault("ANTHROPIC_URL", "https://api.anthropic.com/v1")
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")
	viper.SetDefault("ANTHROPIC_MAX_TOKENS", 2048)
	viper.SetDefault("ANTHROPIC_CACHE_TTL_MINUTES", 1440) // 24 horas

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults dos caches em memória
	viper.SetDefault("DATASET_CACHE_TTL_MINUTES", 5)
	viper.SetDefault("INVOICE_CACHE_TTL_MINUTES", 30)

	// Defaults da varredura paginada da tabela de notas fiscais
	viper.SetDefault("SCAN_PAGE_SIZE", 250)
	viper.SetDefault("SCAN_INTER_PAGE_DELAY_MS", 1000)
	viper.SetDefault("SCAN_BASE_BACKOFF_MS", 1000)
	viper.SetDefault("SCAN_MAX_RETRIES", 8)
	viper.SetDefault("SCAN_MAX_CONCURRENT_JOBS", 3)

	// Defaults dos jobs de pré-aquecimento
	viper.SetDefault("CACHE_WARMER_DATASET_CRON", "*/5 * * * *")
	viper.SetDefault("CACHE_WARMER_INVOICE_CRON", "*/30 * * * *")
	viper.SetDefault("CACHE_WARMER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Segments = DefaultSegments()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// DefaultSegments retorna as faixas de segmentação de clientes usadas pelo
// dashboard. Gasto total em dólares; recência em dias desde a última compra.
func DefaultSegments() Segments {
	return Segments{
		Spending: []domain.SegmentRange{
			{Label: domain.SegmentNewLow, Min: 0, Max: 500},
			{Label: domain.SegmentRegular, Min: 500, Max: 2000},
			{Label: domain.SegmentGood, Min: 2000, Max: 5000},
			{Label: domain.SegmentVIP, Min: 5000, Max: 10000},
			{Label: domain.SegmentWhale, Min: 10000, Max: 0},
		},
		Recency: []domain.SegmentRange{
			{Label: domain.RecencyActive, Min: 0, Max: 30},
			{Label: domain.RecencyWarm, Min: 30, Max: 90},
			{Label: domain.RecencyCool, Min: 90, Max: 180},
			{Label: domain.RecencyCold, Min: 180, Max: 365},
			{Label: domain.RecencyLost, Min: 365, Max: 0},
		},
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
