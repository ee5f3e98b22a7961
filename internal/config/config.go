// Package config resolves application settings. Precedence, lowest to
// highest: built-in defaults, an optional YAML file (CONFIG_FILE), then
// environment variables. A .env file is loaded into the environment first
// when present.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string `yaml:"port"`
	DatabaseURL  string `yaml:"database_url"`
	SQLitePath   string `yaml:"sqlite_path"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
}

// Load resolves the configuration. Missing .env and config files are not
// errors; an unreadable or malformed config file is.
func Load() (Config, error) {
	// Hydrate the environment from .env if one exists.
	_ = godotenv.Load()

	cfg := Config{
		Port: "4000",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}

	return cfg, nil
}
