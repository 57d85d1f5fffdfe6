package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/weatherlookup/backend/internal/service"
)

// ErrMissingAPIKey is returned when OPENWEATHER_API_KEY is not set
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not configured")

type Config struct {
	OpenWeather      service.OpenWeatherConfig
	DatabaseURL      string
	Port             string
	Env              string
	CORSAllowOrigins string
}

// Load reads configuration from the environment with defaults.
// The .env file, if any, must already be loaded.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("OPENWEATHER_TIMEOUT", service.DefaultOpenWeatherTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid OPENWEATHER_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid OPENWEATHER_TIMEOUT: must be positive, got %s", timeout)
	}

	cfg := &Config{
		OpenWeather: service.OpenWeatherConfig{
			APIKey:  os.Getenv("OPENWEATHER_API_KEY"),
			BaseURL: getEnv("OPENWEATHER_BASE_URL", service.DefaultOpenWeatherBaseURL),
			Lang:    getEnv("OPENWEATHER_LANG", service.DefaultOpenWeatherLang),
			Timeout: timeout,
		},
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		Port:             getEnv("PORT", "3001"),
		Env:              getEnv("GO_ENV", "development"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	if cfg.OpenWeather.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
