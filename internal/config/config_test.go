package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherlookup/backend/internal/service"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "abc")
	t.Setenv("OPENWEATHER_TIMEOUT", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.OpenWeather.APIKey)
	assert.Equal(t, service.DefaultOpenWeatherBaseURL, cfg.OpenWeather.BaseURL)
	assert.Equal(t, "pt_br", cfg.OpenWeather.Lang)
	assert.Equal(t, 10*time.Second, cfg.OpenWeather.Timeout)
	assert.Equal(t, "3001", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "abc")
	t.Setenv("OPENWEATHER_TIMEOUT", "3s")
	t.Setenv("OPENWEATHER_LANG", "en")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.OpenWeather.Timeout)
	assert.Equal(t, "en", cfg.OpenWeather.Lang)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "abc")
	t.Setenv("OPENWEATHER_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("OPENWEATHER_TIMEOUT", "-1s")
	_, err = Load()
	assert.Error(t, err)
}
