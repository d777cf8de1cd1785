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
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	Email  EmailConfig
	Engine EngineConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// EngineConfig holds the tunables of the normalization engine.
type EngineConfig struct {
	DefaultDetentionRate    float64 `mapstructure:"default_detention_rate"`
	FreeTimeHours           float64 `mapstructure:"free_time_hours"`
	DefaultCurrency         string  `mapstructure:"default_currency"`
	FallbackFacilityName    string  `mapstructure:"fallback_facility_name"`
	FallbackFacilityAddress string  `mapstructure:"fallback_facility_address"`
	InvoicePrefix           string  `mapstructure:"invoice_prefix"`
	EvidenceURLExpirySecs   int64   `mapstructure:"evidence_url_expiry_secs"`
}

// DefaultEngineConfig returns the engine settings used when nothing is configured.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultDetentionRate:    75,
		FreeTimeHours:           2,
		DefaultCurrency:         "USD",
		FallbackFacilityName:    "Facility",
		FallbackFacilityAddress: "Address not available",
		InvoicePrefix:           "DET",
		EvidenceURLExpirySecs:   7 * 24 * 3600,
	}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`

	// AllowedOrigins are the browser origins accepted by CORS.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
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

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the FREIGHTDOC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FREIGHTDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "freightdoc")
	v.SetDefault("db.password", "freightdoc_secret")
	v.SetDefault("db.name", "freightdoc_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "freightdoc-evidence")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "billing@freightdoc.local")
	v.SetDefault("email.from_name", "Detention Billing")

	// Engine defaults
	def := DefaultEngineConfig()
	v.SetDefault("engine.default_detention_rate", def.DefaultDetentionRate)
	v.SetDefault("engine.free_time_hours", def.FreeTimeHours)
	v.SetDefault("engine.default_currency", def.DefaultCurrency)
	v.SetDefault("engine.fallback_facility_name", def.FallbackFacilityName)
	v.SetDefault("engine.fallback_facility_address", def.FallbackFacilityAddress)
	v.SetDefault("engine.invoice_prefix", def.InvoicePrefix)
	v.SetDefault("engine.evidence_url_expiry_secs", def.EvidenceURLExpirySecs)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                      "FREIGHTDOC_SERVER_PORT",
		"server.read_timeout":              "FREIGHTDOC_SERVER_READ_TIMEOUT",
		"server.write_timeout":             "FREIGHTDOC_SERVER_WRITE_TIMEOUT",
		"server.environment":               "FREIGHTDOC_SERVER_ENVIRONMENT",
		"server.allowed_origins":           "FREIGHTDOC_SERVER_ALLOWED_ORIGINS",
		"db.host":                          "FREIGHTDOC_DB_HOST",
		"db.port":                          "FREIGHTDOC_DB_PORT",
		"db.user":                          "FREIGHTDOC_DB_USER",
		"db.password":                      "FREIGHTDOC_DB_PASSWORD",
		"db.name":                          "FREIGHTDOC_DB_NAME",
		"db.sslmode":                       "FREIGHTDOC_DB_SSLMODE",
		"db.max_open":                      "FREIGHTDOC_DB_MAX_OPEN",
		"db.max_idle":                      "FREIGHTDOC_DB_MAX_IDLE",
		"s3.region":                        "FREIGHTDOC_S3_REGION",
		"s3.bucket":                        "FREIGHTDOC_S3_BUCKET",
		"s3.endpoint":                      "FREIGHTDOC_S3_ENDPOINT",
		"s3.access_key":                    "FREIGHTDOC_S3_ACCESS_KEY",
		"s3.secret_key":                    "FREIGHTDOC_S3_SECRET_KEY",
		"s3.presign_expiry":                "FREIGHTDOC_S3_PRESIGN_EXPIRY",
		"log.level":                        "FREIGHTDOC_LOG_LEVEL",
		"log.format":                       "FREIGHTDOC_LOG_FORMAT",
		"email.provider":                   "FREIGHTDOC_EMAIL_PROVIDER",
		"email.region":                     "FREIGHTDOC_EMAIL_REGION",
		"email.from_address":               "FREIGHTDOC_EMAIL_FROM_ADDRESS",
		"email.from_name":                  "FREIGHTDOC_EMAIL_FROM_NAME",
		"engine.default_detention_rate":    "FREIGHTDOC_ENGINE_DEFAULT_DETENTION_RATE",
		"engine.free_time_hours":           "FREIGHTDOC_ENGINE_FREE_TIME_HOURS",
		"engine.default_currency":          "FREIGHTDOC_ENGINE_DEFAULT_CURRENCY",
		"engine.fallback_facility_name":    "FREIGHTDOC_ENGINE_FALLBACK_FACILITY_NAME",
		"engine.fallback_facility_address": "FREIGHTDOC_ENGINE_FALLBACK_FACILITY_ADDRESS",
		"engine.invoice_prefix":            "FREIGHTDOC_ENGINE_INVOICE_PREFIX",
		"engine.evidence_url_expiry_secs":  "FREIGHTDOC_ENGINE_EVIDENCE_URL_EXPIRY_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FREIGHTDOC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FREIGHTDOC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:           serverPort,
		ReadTimeout:    v.GetDuration("server.read_timeout"),
		WriteTimeout:   v.GetDuration("server.write_timeout"),
		Environment:    v.GetString("server.environment"),
		AllowedOrigins: splitList(v.GetString("server.allowed_origins")),
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
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Engine = EngineConfig{
		DefaultDetentionRate:    v.GetFloat64("engine.default_detention_rate"),
		FreeTimeHours:           v.GetFloat64("engine.free_time_hours"),
		DefaultCurrency:         v.GetString("engine.default_currency"),
		FallbackFacilityName:    v.GetString("engine.fallback_facility_name"),
		FallbackFacilityAddress: v.GetString("engine.fallback_facility_address"),
		InvoicePrefix:           v.GetString("engine.invoice_prefix"),
		EvidenceURLExpirySecs:   v.GetInt64("engine.evidence_url_expiry_secs"),
	}

	if cfg.Engine.FreeTimeHours < 0 {
		return nil, fmt.Errorf("engine.free_time_hours must not be negative, got %v", cfg.Engine.FreeTimeHours)
	}
	if cfg.Engine.DefaultDetentionRate <= 0 {
		return nil, fmt.Errorf("engine.default_detention_rate must be positive, got %v", cfg.Engine.DefaultDetentionRate)
	}

	return cfg, nil
}

// splitList parses a comma-separated setting, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
