package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents runtime configuration for the service.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
}

type ServerConfig struct {
	Address string
}

// ProviderConfig selects the generation backend at startup. Name must be one
// of openai, gemini or claude.
type ProviderConfig struct {
	Name    string
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

var defaultModels = map[string]string{
	"openai": "gpt-4o-mini",
	"gemini": "gemini-1.5-pro",
	"claude": "claude-3-5-sonnet-20241022",
}

// Load reads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 120)

	cfg := &Config{
		Server: ServerConfig{
			Address: viper.GetString("SERVER_ADDRESS"),
		},
		Provider: ProviderConfig{
			Name:    strings.ToLower(strings.TrimSpace(viper.GetString("LLM_PROVIDER"))),
			Model:   viper.GetString("LLM_MODEL"),
			APIKey:  viper.GetString("LLM_API_KEY"),
			BaseURL: viper.GetString("LLM_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	fallback, ok := defaultModels[cfg.Provider.Name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider.Name)
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = fallback
	}
	if cfg.Provider.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY must be configured")
	}
	return cfg, nil
}
