package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	StorageMongo  = "mongodb"
	StorageMemory = "memory"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Storage   StorageConfig
	MongoDB   MongoDBConfig
	Reporting ReportingConfig
	WhatsApp  WhatsAppConfig
	Sheets    SheetsConfig
	Cache     CacheConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// StorageConfig selects the document store backend.
type StorageConfig struct {
	Driver string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// ReportingConfig holds the weekly digest schedule.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
	// DigestRecipient receives the scheduled digest; empty disables the job.
	DigestRecipient string
}

// WhatsAppConfig contains credentials and options for the Meta WhatsApp Cloud API.
type WhatsAppConfig struct {
	AccessToken    string
	PhoneNumberID  string
	VerifyToken    string
	BaseURL        string
	APIVersion     string
	// AllowedSenders limits who may request reports over chat; empty allows everyone.
	AllowedSenders []string
}

// Enabled reports whether enough credentials are present to talk to the Cloud API.
func (w WhatsAppConfig) Enabled() bool {
	return w.AccessToken != "" && w.PhoneNumberID != ""
}

// SheetsConfig contains configuration required to export invoices to Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	InvoiceRange    string
}

// Enabled reports whether the invoice export is configured.
func (s SheetsConfig) Enabled() bool {
	return s.CredentialsPath != "" && s.SpreadsheetID != ""
}

// CacheConfig holds the Redis dashboard cache settings.
type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// Enabled reports whether a Redis address was configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine when everything comes from the environment.
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getenvWithDefault("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("parse CACHE_TTL: %w", err)
	}

	var redisDB int
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if redisDB, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("parse REDIS_DB: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getenvWithDefault("APP_PORT", "8080"),
			AllowedOrigins: splitList(getenvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level:  getenvWithDefault("LOG_LEVEL", "info"),
			Format: getenvWithDefault("LOG_FORMAT", "json"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getenvWithDefault("STORAGE_DRIVER", StorageMongo)),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "studio1005"),
		},
		Reporting: ReportingConfig{
			CronSchedule:    getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * 5"),
			Timezone:        getenvWithDefault("TIMEZONE", "Europe/Istanbul"),
			DigestRecipient: os.Getenv("REPORT_DIGEST_RECIPIENT"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:    os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID:  os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			VerifyToken:    os.Getenv("META_VERIFY_TOKEN"),
			BaseURL:        getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:     getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			AllowedSenders: splitList(os.Getenv("REPORT_ALLOWED_SENDERS")),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_INVOICE_ID"),
			InvoiceRange:    getenvWithDefault("GOOGLE_SHEET_INVOICE_RANGE", "Faturalar!A:F"),
		},
		Cache: CacheConfig{
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       redisDB,
			TTL:           ttl,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every missing or inconsistent setting at once, so a broken
// .env can be fixed in one pass.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	var problems []error
	require := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	require(c.Server.Port != "", "APP_PORT is required")

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageMongo:
		require(c.MongoDB.URI != "", "MONGODB_URI is required for the %s driver", StorageMongo)
		require(c.MongoDB.DBName != "", "MONGODB_DB_NAME is required for the %s driver", StorageMongo)
	default:
		require(false, "STORAGE_DRIVER %q is not supported", c.Storage.Driver)
	}

	require(c.Reporting.CronSchedule != "", "REPORT_CRON_SCHEDULE is required")
	if _, err := time.LoadLocation(c.Reporting.Timezone); c.Reporting.Timezone == "" || err != nil {
		require(false, "TIMEZONE %q is not a known location", c.Reporting.Timezone)
	}

	if c.WhatsApp.Enabled() {
		require(c.WhatsApp.VerifyToken != "", "META_VERIFY_TOKEN is required once WhatsApp credentials are set")
		require(c.WhatsApp.BaseURL != "", "WHATSAPP_BASE_URL is empty")
		require(c.WhatsApp.APIVersion != "", "WHATSAPP_API_VERSION is empty")
	}

	if c.Sheets.Enabled() {
		require(c.Sheets.InvoiceRange != "", "GOOGLE_SHEET_INVOICE_RANGE is empty")
	}
	if c.Cache.Enabled() {
		require(c.Cache.TTL > 0, "CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}

	return errors.Join(problems...)
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
