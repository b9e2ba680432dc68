package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Statement cache
	StatementCacheSize int
	StatementCacheTTL  time.Duration

	// Rate limit applied to repair routes, in ulule/limiter notation (e.g. "10-M")
	RepairRateLimit string

	// Audit sink
	AuditAPIKey   string
	AuditEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STATEMENT_CACHE_SIZE", 512)
	viper.SetDefault("STATEMENT_CACHE_TTL", "5m")
	viper.SetDefault("REPAIR_RATE_LIMIT", "10-M")
	viper.SetDefault("AUDIT_API_KEY", "")
	viper.SetDefault("AUDIT_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StatementCacheSize = viper.GetInt("STATEMENT_CACHE_SIZE")
	ttlStr := viper.GetString("STATEMENT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid STATEMENT_CACHE_TTL %q, defaulting to 5m\n", ttlStr)
		ttl = 5 * time.Minute
	}
	cfg.StatementCacheTTL = ttl

	cfg.RepairRateLimit = viper.GetString("REPAIR_RATE_LIMIT")
	cfg.AuditAPIKey = viper.GetString("AUDIT_API_KEY")
	cfg.AuditEndpoint = viper.GetString("AUDIT_ENDPOINT")

	return cfg, nil
}
