package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	Inventory InventoryConfig
	CORS      CORSConfig

	// SeedDemoData loads the demo catalog and inventory on startup so the
	// API is usable without any persisted state.
	SeedDemoData bool
}

// InventoryConfig contains the thresholds used by the status classifier.
type InventoryConfig struct {
	LowStockThreshold int
	NearExpiryDays    int
}

// CORSConfig contains the hosts allowed to call the API from a browser.
type CORSConfig struct {
	AllowedHosts []string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Classifier thresholds
	cfg.Inventory = InventoryConfig{
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 5),
		NearExpiryDays:    getEnvInt("NEAR_EXPIRY_DAYS", 30),
	}
	if cfg.Inventory.LowStockThreshold < 0 {
		return nil, fmt.Errorf("invalid LOW_STOCK_THRESHOLD: must not be negative")
	}
	if cfg.Inventory.NearExpiryDays < 0 {
		return nil, fmt.Errorf("invalid NEAR_EXPIRY_DAYS: must not be negative")
	}

	// CORS
	cfg.CORS = CORSConfig{
		AllowedHosts: splitAndTrim(getEnv("CORS_ALLOWED_HOSTS", "localhost:3000,127.0.0.1:3000")),
	}

	cfg.SeedDemoData = getEnvBool("SEED_DEMO_DATA", true)

	return cfg, nil
}

// getEnv returns the value of key or def when unset/empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the integer value of key or def when unset or malformed.
func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvBool returns the boolean value of key or def when unset or malformed.
func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
