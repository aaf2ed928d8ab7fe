package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	DatabaseDSN    string
	Env            string
	CurrencySymbol string
	// DefaultGST is the percentage pre-filled on new quotes when the client
	// sends none. The pricing calculator itself treats a missing GST as 0.
	DefaultGST float64
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:catering.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.CurrencySymbol = getEnv("CURRENCY_SYMBOL", "₹")
	cfg.DefaultGST = parseFloat("DEFAULT_GST_PERCENT", 5)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("invalid number for %s: %s", key, v)
			return def
		}
		return f
	}
	return def
}
