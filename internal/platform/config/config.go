package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string

	// APIKeys are the static keys accepted by the x-api-key middleware.
	APIKeys []string

	// PipelineTimeout bounds one reconciliation run.
	PipelineTimeout time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-H".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("API_KEYS", "")
	viper.SetDefault("PIPELINE_TIMEOUT", "2m")
	viper.SetDefault("RATE_LIMIT", "100-H")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, key := range strings.Split(viper.GetString("API_KEYS"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.APIKeys = append(cfg.APIKeys, key)
		}
	}
	if len(cfg.APIKeys) == 0 {
		log.Println("Warning: API_KEYS not set. All authenticated routes will reject requests.")
	}

	pipelineTimeoutStr := viper.GetString("PIPELINE_TIMEOUT")
	pipelineTimeout, err := time.ParseDuration(pipelineTimeoutStr)
	if err != nil {
		pipelineTimeout = 2 * time.Minute
		if pipelineTimeoutStr != "" {
			log.Printf("Warning: Invalid value for PIPELINE_TIMEOUT ('%s'). Defaulting to %s.\n", pipelineTimeoutStr, pipelineTimeout.String())
		}
	}
	cfg.PipelineTimeout = pipelineTimeout

	return cfg, nil
}
