package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Price pivot row label sources.
const (
	RowLabelMetal   = "metal"
	RowLabelProduct = "product"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	RunMigrations  bool
	MigrationsPath string

	StoreTimeout time.Duration
	DBMaxConns   int32
	DBMinConns   int32

	HistoryDefaultDays int
	HistoryMaxRows     int
	ExportDefaultDays  int
	ExportMaxRows      int
	StrictFilters      bool
	ReportLocation     *time.Location

	PriceDecimalPlaces  int32
	RateDecimalPlaces   int32
	ExportDateLayout    string
	ExportPriceRowLabel string

	RateLimit          string
	CORSAllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RUN_MIGRATIONS", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("HISTORY_DEFAULT_DAYS", 7)
	v.SetDefault("HISTORY_MAX_ROWS", 500)
	v.SetDefault("EXPORT_DEFAULT_DAYS", 30)
	v.SetDefault("EXPORT_MAX_ROWS", 50000)
	v.SetDefault("STRICT_FILTERS", true)
	v.SetDefault("REPORT_TIMEZONE", "UTC")
	v.SetDefault("PRICE_DECIMAL_PLACES", 8)
	v.SetDefault("RATE_DECIMAL_PLACES", 4)
	v.SetDefault("EXPORT_DATE_LAYOUT", domain.DefaultExportDateLayout)
	v.SetDefault("EXPORT_PRICE_ROW_LABEL", RowLabelProduct)
	v.SetDefault("RATE_LIMIT", "30-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	// Environment variables override defaults and the values loaded from .env.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.RunMigrations = v.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	storeTimeoutStr := v.GetString("STORE_TIMEOUT")
	storeTimeout, err := time.ParseDuration(storeTimeoutStr)
	if err != nil || storeTimeout <= 0 {
		storeTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for STORE_TIMEOUT ('%s'). Defaulting to %s.\n", storeTimeoutStr, storeTimeout.String())
	}
	cfg.StoreTimeout = storeTimeout

	cfg.DBMaxConns = v.GetInt32("DB_MAX_CONNS")
	cfg.DBMinConns = v.GetInt32("DB_MIN_CONNS")
	if cfg.DBMinConns > cfg.DBMaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) cannot exceed DB_MAX_CONNS (%d)", cfg.DBMinConns, cfg.DBMaxConns)
	}

	cfg.HistoryDefaultDays = v.GetInt("HISTORY_DEFAULT_DAYS")
	cfg.HistoryMaxRows = v.GetInt("HISTORY_MAX_ROWS")
	cfg.ExportDefaultDays = v.GetInt("EXPORT_DEFAULT_DAYS")
	cfg.ExportMaxRows = v.GetInt("EXPORT_MAX_ROWS")
	if cfg.HistoryDefaultDays <= 0 || cfg.ExportDefaultDays <= 0 {
		return nil, fmt.Errorf("HISTORY_DEFAULT_DAYS and EXPORT_DEFAULT_DAYS must be positive")
	}
	if cfg.HistoryMaxRows <= 0 || cfg.ExportMaxRows <= 0 {
		return nil, fmt.Errorf("HISTORY_MAX_ROWS and EXPORT_MAX_ROWS must be positive")
	}
	cfg.StrictFilters = v.GetBool("STRICT_FILTERS")

	tz := v.GetString("REPORT_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", tz, err)
	}
	cfg.ReportLocation = loc

	cfg.PriceDecimalPlaces = v.GetInt32("PRICE_DECIMAL_PLACES")
	cfg.RateDecimalPlaces = v.GetInt32("RATE_DECIMAL_PLACES")
	if cfg.PriceDecimalPlaces < 0 || cfg.RateDecimalPlaces < 0 {
		return nil, fmt.Errorf("decimal places cannot be negative")
	}

	cfg.ExportDateLayout = v.GetString("EXPORT_DATE_LAYOUT")
	if cfg.ExportDateLayout == "" {
		cfg.ExportDateLayout = domain.DefaultExportDateLayout
	}

	cfg.ExportPriceRowLabel = strings.ToLower(v.GetString("EXPORT_PRICE_ROW_LABEL"))
	if cfg.ExportPriceRowLabel != RowLabelMetal && cfg.ExportPriceRowLabel != RowLabelProduct {
		return nil, fmt.Errorf("EXPORT_PRICE_ROW_LABEL must be %q or %q, got %q", RowLabelMetal, RowLabelProduct, cfg.ExportPriceRowLabel)
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
