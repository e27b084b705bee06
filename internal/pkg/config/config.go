// internal/pkg/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Point of sale
	POS POSConfig

	// Demo seed data
	Seed SeedConfig

	// Catalog export
	Export ExportConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// POSConfig holds checkout configuration
type POSConfig struct {
	TaxRate           decimal.Decimal
	CurrencyPrecision int32
	CurrencySymbol    string
}

// SeedConfig holds demo data configuration
type SeedConfig struct {
	CatalogCount int
	PosItemCount int
}

// ExportConfig holds catalog export configuration
type ExportConfig struct {
	SheetName string
	MaxRows   int
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	// Initialize viper
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	setDefaults()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "pos-core"),
			Environment: env,
			Version:     getEnv("APP_VERSION", "dev"),
			LogLevel:    getEnv("LOG_LEVEL", "debug"),
			LogFormat:   getEnv("LOG_FORMAT", "json"),
			Debug:       getBoolEnv("APP_DEBUG", env == "development"),
		},
		POS: POSConfig{
			TaxRate:           getDecimalEnv("POS_TAX_RATE", decimal.NewFromFloat(0.05)),
			CurrencyPrecision: int32(getIntEnv("POS_CURRENCY_PRECISION", 2)),
			CurrencySymbol:    getEnv("POS_CURRENCY_SYMBOL", "$"),
		},
		Seed: SeedConfig{
			CatalogCount: getIntEnv("SEED_CATALOG_COUNT", 12),
			PosItemCount: getIntEnv("SEED_POS_ITEM_COUNT", 20),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Catalog"),
			MaxRows:   getIntEnv("EXPORT_MAX_ROWS", 10000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.POS.TaxRate.IsNegative() || c.POS.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate must be in [0, 1)")
	}
	if c.POS.CurrencyPrecision < 0 || c.POS.CurrencyPrecision > 4 {
		return fmt.Errorf("currency precision must be between 0 and 4")
	}
	if c.Seed.CatalogCount < 0 || c.Seed.PosItemCount < 0 {
		return fmt.Errorf("seed counts must not be negative")
	}
	if c.Export.SheetName == "" {
		return fmt.Errorf("export sheet name is required")
	}
	if c.Export.MaxRows <= 0 {
		return fmt.Errorf("export max rows must be positive")
	}
	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults() {
	viper.SetDefault("app.name", "pos-core")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
