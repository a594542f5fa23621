// Package config reads the m4 settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	DataDir       string
	LoanAmount    decimal.Decimal // original mortgage principal
	Currency      string
	CSATicker     string
	QuoteProvider string // yahoo or eodhd
	EODHDAPIKey   string
	CacheDir      string
	Addr          string
	Debug         bool
	LogLevel      string
	Morning       int // first day hour
	Night         int // last day hour
}

// Load reads configuration from environment variables.
//
// A .env file in the working directory is read first, it does not override
// variables already set.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:       getEnv("M4_DATA_DIR", "./data"),
		Currency:      strings.ToUpper(getEnv("M4_CURRENCY", "CAD")),
		CSATicker:     getEnv("M4_CSA_TICKER", "CVE.TO"),
		QuoteProvider: strings.ToLower(getEnv("M4_QUOTE_PROVIDER", "yahoo")),
		EODHDAPIKey:   getEnv("EODHD_API_KEY", ""),
		CacheDir:      getEnv("M4_CACHE_DIR", ""),
		Addr:          getEnv("M4_ADDR", "127.0.0.1:8050"),
		Debug:         getEnvAsBool("M4_DEBUG", false),
		LogLevel:      getEnv("M4_LOG_LEVEL", "info"),
		Morning:       getEnvAsInt("M4_MORNING", 7),
		Night:         getEnvAsInt("M4_NIGHT", 19),
	}
	if v := os.Getenv("M4_LOAN_AMOUNT"); v != "" {
		amount, err := decimal.NewFromString(strings.ReplaceAll(v, ",", ""))
		if err != nil {
			return nil, fmt.Errorf("invalid M4_LOAN_AMOUNT %q: %w", v, err)
		}
		cfg.LoanAmount = amount
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("M4_DATA_DIR is required")
	}
	if c.Morning < 0 || c.Night > 23 || c.Morning > c.Night {
		return fmt.Errorf("invalid day hours M4_MORNING=%d M4_NIGHT=%d", c.Morning, c.Night)
	}
	if c.LoanAmount.IsNegative() {
		return fmt.Errorf("M4_LOAN_AMOUNT must not be negative")
	}
	return nil
}

// Environ returns the configuration as the environment variables Load reads.
func (c *Config) Environ() []string {
	env := []string{
		"M4_DATA_DIR=" + c.DataDir,
		"M4_CURRENCY=" + c.Currency,
		"M4_CSA_TICKER=" + c.CSATicker,
		"M4_QUOTE_PROVIDER=" + c.QuoteProvider,
		"M4_CACHE_DIR=" + c.CacheDir,
		"M4_ADDR=" + c.Addr,
		"M4_DEBUG=" + strconv.FormatBool(c.Debug),
		"M4_LOG_LEVEL=" + c.LogLevel,
		"M4_MORNING=" + strconv.Itoa(c.Morning),
		"M4_NIGHT=" + strconv.Itoa(c.Night),
	}
	if !c.LoanAmount.IsZero() {
		env = append(env, "M4_LOAN_AMOUNT="+c.LoanAmount.String())
	}
	if c.EODHDAPIKey != "" {
		env = append(env, "EODHD_API_KEY="+c.EODHDAPIKey)
	}
	return env
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
