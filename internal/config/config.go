package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	Log       LogConfig
	CORS      CORSConfig
	Drive     DriveConfig
	Extractor ExtractorConfig
	Sync      SyncConfig
	Sku       SkuConfig
	S3        S3Config
	Email     EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds bearer token validation settings. Tokens are minted by the
// external auth service; this service only validates them.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DriveConfig holds remote folder settings: the OAuth client used to refresh
// the stored credential and the root folder id for each synced category.
type DriveConfig struct {
	APIBaseURL     string `mapstructure:"api_base_url"`
	TokenURL       string `mapstructure:"token_url"`
	ClientID       string `mapstructure:"client_id"`
	ClientSecret   string `mapstructure:"client_secret"`
	PORootFolder   string `mapstructure:"po_root_folder"`
	SlipRootFolder string `mapstructure:"slip_root_folder"`
}

// ExtractorProviderConfig holds settings for a single extraction provider.
type ExtractorProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds AI extraction settings with fallback support.
type ExtractorConfig struct {
	Primary   ExtractorProviderConfig `mapstructure:"primary"`
	Secondary ExtractorProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (e *ExtractorConfig) SecondaryConfig() *ExtractorProviderConfig {
	if e.Secondary.Provider != "" {
		return &e.Secondary
	}
	return nil
}

// SyncConfig holds background sync scheduler settings.
type SyncConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	IntervalMins int  `mapstructure:"interval_mins"`
}

// SkuConfig holds SKU resolution settings.
type SkuConfig struct {
	DefaultCategory string `mapstructure:"default_category"`
	CreateBatchSize int    `mapstructure:"create_batch_size"`
}

// S3Config holds the scan archive bucket settings. An empty bucket disables
// archiving.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds operator notification settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ToAddress   string `mapstructure:"to_address"`
}

// Load reads configuration from environment variables with the PROCURA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROCURA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "procura")
	v.SetDefault("db.password", "procura_secret")
	v.SetDefault("db.name", "procura_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "procura")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Drive defaults
	v.SetDefault("drive.api_base_url", "https://www.googleapis.com/drive/v3")
	v.SetDefault("drive.token_url", "https://oauth2.googleapis.com/token")
	v.SetDefault("drive.client_id", "")
	v.SetDefault("drive.client_secret", "")
	v.SetDefault("drive.po_root_folder", "")
	v.SetDefault("drive.slip_root_folder", "")

	// Extractor defaults
	v.SetDefault("extractor.primary.provider", "gemini")
	v.SetDefault("extractor.primary.api_key", "")
	v.SetDefault("extractor.primary.default_model", "gemini-2.0-flash")
	v.SetDefault("extractor.primary.timeout_secs", 120)
	v.SetDefault("extractor.secondary.provider", "")
	v.SetDefault("extractor.secondary.api_key", "")
	v.SetDefault("extractor.secondary.default_model", "")
	v.SetDefault("extractor.secondary.timeout_secs", 120)

	// Sync scheduler defaults
	v.SetDefault("sync.enabled", true)
	v.SetDefault("sync.interval_mins", 30)

	// SKU defaults
	v.SetDefault("sku.default_category", "NVL")
	v.SetDefault("sku.create_batch_size", 5)

	// S3 defaults
	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-southeast-1")
	v.SetDefault("email.from_address", "noreply@procura.local")
	v.SetDefault("email.from_name", "Procura")
	v.SetDefault("email.to_address", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "PROCURA_SERVER_PORT",
		"server.read_timeout":               "PROCURA_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "PROCURA_SERVER_WRITE_TIMEOUT",
		"server.environment":                "PROCURA_SERVER_ENVIRONMENT",
		"db.host":                           "PROCURA_DB_HOST",
		"db.port":                           "PROCURA_DB_PORT",
		"db.user":                           "PROCURA_DB_USER",
		"db.password":                       "PROCURA_DB_PASSWORD",
		"db.name":                           "PROCURA_DB_NAME",
		"db.sslmode":                        "PROCURA_DB_SSLMODE",
		"db.max_open":                       "PROCURA_DB_MAX_OPEN",
		"db.max_idle":                       "PROCURA_DB_MAX_IDLE",
		"jwt.secret":                        "PROCURA_JWT_SECRET",
		"jwt.issuer":                        "PROCURA_JWT_ISSUER",
		"log.level":                         "PROCURA_LOG_LEVEL",
		"log.format":                        "PROCURA_LOG_FORMAT",
		"cors.allowed_origins":              "PROCURA_CORS_ALLOWED_ORIGINS",
		"drive.api_base_url":                "PROCURA_DRIVE_API_BASE_URL",
		"drive.token_url":                   "PROCURA_DRIVE_TOKEN_URL",
		"drive.client_id":                   "PROCURA_DRIVE_CLIENT_ID",
		"drive.client_secret":               "PROCURA_DRIVE_CLIENT_SECRET",
		"drive.po_root_folder":              "PROCURA_DRIVE_PO_ROOT_FOLDER",
		"drive.slip_root_folder":            "PROCURA_DRIVE_SLIP_ROOT_FOLDER",
		"extractor.primary.provider":        "PROCURA_EXTRACTOR_PRIMARY_PROVIDER",
		"extractor.primary.api_key":         "PROCURA_EXTRACTOR_PRIMARY_API_KEY",
		"extractor.primary.default_model":   "PROCURA_EXTRACTOR_PRIMARY_DEFAULT_MODEL",
		"extractor.primary.timeout_secs":    "PROCURA_EXTRACTOR_PRIMARY_TIMEOUT_SECS",
		"extractor.secondary.provider":      "PROCURA_EXTRACTOR_SECONDARY_PROVIDER",
		"extractor.secondary.api_key":       "PROCURA_EXTRACTOR_SECONDARY_API_KEY",
		"extractor.secondary.default_model": "PROCURA_EXTRACTOR_SECONDARY_DEFAULT_MODEL",
		"extractor.secondary.timeout_secs":  "PROCURA_EXTRACTOR_SECONDARY_TIMEOUT_SECS",
		"sync.enabled":                      "PROCURA_SYNC_ENABLED",
		"sync.interval_mins":                "PROCURA_SYNC_INTERVAL_MINS",
		"sku.default_category":              "PROCURA_SKU_DEFAULT_CATEGORY",
		"sku.create_batch_size":             "PROCURA_SKU_CREATE_BATCH_SIZE",
		"s3.region":                         "PROCURA_S3_REGION",
		"s3.bucket":                         "PROCURA_S3_BUCKET",
		"s3.endpoint":                       "PROCURA_S3_ENDPOINT",
		"s3.access_key":                     "PROCURA_S3_ACCESS_KEY",
		"s3.secret_key":                     "PROCURA_S3_SECRET_KEY",
		"s3.presign_expiry":                 "PROCURA_S3_PRESIGN_EXPIRY",
		"email.provider":                    "PROCURA_EMAIL_PROVIDER",
		"email.region":                      "PROCURA_EMAIL_REGION",
		"email.from_address":                "PROCURA_EMAIL_FROM_ADDRESS",
		"email.from_name":                   "PROCURA_EMAIL_FROM_NAME",
		"email.to_address":                  "PROCURA_EMAIL_TO_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PROCURA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PROCURA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("cors.allowed_origins")),
	}
	cfg.Drive = DriveConfig{
		APIBaseURL:     v.GetString("drive.api_base_url"),
		TokenURL:       v.GetString("drive.token_url"),
		ClientID:       v.GetString("drive.client_id"),
		ClientSecret:   v.GetString("drive.client_secret"),
		PORootFolder:   v.GetString("drive.po_root_folder"),
		SlipRootFolder: v.GetString("drive.slip_root_folder"),
	}
	cfg.Extractor = ExtractorConfig{
		Primary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.primary.provider"),
			APIKey:       v.GetString("extractor.primary.api_key"),
			DefaultModel: v.GetString("extractor.primary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.primary.timeout_secs"),
		},
		Secondary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.secondary.provider"),
			APIKey:       v.GetString("extractor.secondary.api_key"),
			DefaultModel: v.GetString("extractor.secondary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.secondary.timeout_secs"),
		},
	}
	cfg.Sync = SyncConfig{
		Enabled:      v.GetBool("sync.enabled"),
		IntervalMins: v.GetInt("sync.interval_mins"),
	}
	cfg.Sku = SkuConfig{
		DefaultCategory: v.GetString("sku.default_category"),
		CreateBatchSize: v.GetInt("sku.create_batch_size"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		ToAddress:   v.GetString("email.to_address"),
	}

	return cfg, nil
}

// RootFolder returns the configured root folder id for a category, or an
// empty string if the category has not been configured.
func (d *DriveConfig) RootFolder(category string) string {
	switch category {
	case "po":
		return d.PORootFolder
	case "bank_slip":
		return d.SlipRootFolder
	}
	return ""
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
