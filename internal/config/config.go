package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings, loaded from the environment with an
// optional .env file for development.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	OpenAIAPIKey  string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `mapstructure:"OPENAI_BASE_URL"`
	AIModel       string        `mapstructure:"AI_MODEL"`
	AITimeout     time.Duration `mapstructure:"AI_REQUEST_TIMEOUT"`

	DatastoreURL        string `mapstructure:"DATASTORE_URL"`
	DatastoreServiceKey string `mapstructure:"DATASTORE_SERVICE_KEY"`
	DatastoreJWTSecret  string `mapstructure:"DATASTORE_JWT_SECRET"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("AI_MODEL", "gpt-4")
	v.SetDefault("AI_REQUEST_TIMEOUT", "30s")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	for _, key := range []string{
		"PORT", "ENV",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "AI_MODEL", "AI_REQUEST_TIMEOUT",
		"DATASTORE_URL", "DATASTORE_SERVICE_KEY", "DATASTORE_JWT_SECRET",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ORIGINS",
	} {
		v.BindEnv(key)
	}

	// The .env file is a development convenience; missing is fine.
	_ = v.ReadInConfig()

	cfg := &Config{}
	// Unmarshal's default decode hooks already comma-split []string fields,
	// so CORS_ORIGINS needs no special handling.
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
