package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherlookup/backend/internal/domain"
)

func sample(ts string, min, max, humidity, wind float64, category string) domain.RawForecastSample {
	s := domain.RawForecastSample{
		Timestamp: ts,
		TempMin:   min,
		TempMax:   max,
		Humidity:  humidity,
		WindSpeed: wind,
	}
	if category != "" {
		s.Conditions = []domain.ConditionTag{{Category: category, Description: "desc " + category}}
	}
	return s
}

func TestClassifySky(t *testing.T) {
	cases := map[string]domain.SkyCondition{
		"Thunderstorm":   domain.SkyRain,
		"Drizzle":        domain.SkyRain,
		"Rain":           domain.SkyRain,
		"Mist":           domain.SkyCloud,
		"Clouds":         domain.SkyCloud,
		"Fog":            domain.SkyCloud,
		"HAZE":           domain.SkyCloud,
		"Clear":          domain.SkySun,
		"Snow":           domain.SkySun,
		"":               domain.SkySun,
		"rain and cloud": domain.SkyRain,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClassifySky(in), "ClassifySky(%q)", in)
	}
}

func TestGroupByDate_PreservesFirstSeenOrder(t *testing.T) {
	samples := []domain.RawForecastSample{
		sample("2024-05-02 21:00:00", 1, 2, 50, 1, "Rain"),
		sample("2024-05-01 12:00:00", 1, 2, 50, 1, "Rain"),
		sample("2024-05-02 00:00:00", 1, 2, 50, 1, "Rain"),
		sample("", 1, 2, 50, 1, "Rain"),
		sample("garbage", 1, 2, 50, 1, "Rain"),
		sample("2024-05-03 03:00:00", 1, 2, 50, 1, "Rain"),
	}

	groups := GroupByDate(samples)
	require.Len(t, groups, 3)
	assert.Equal(t, "2024-05-02", groups[0].Date)
	assert.Len(t, groups[0].Samples, 2)
	assert.Equal(t, "2024-05-01", groups[1].Date)
	assert.Equal(t, "2024-05-03", groups[2].Date)
}

func TestReduceDay_SpecExample(t *testing.T) {
	got := ReduceDay("2024-05-01", []domain.RawForecastSample{
		sample("2024-05-01 09:00:00", 10, 15, 50, 2.0, "Rain"),
		sample("2024-05-01 12:00:00", 12, 18, 60, 3.0, "Rain"),
	})

	assert.Equal(t, domain.DailySummary{
		Date:        "2024-05-01",
		TempMin:     10,
		TempMax:     18,
		Humidity:    55,
		WindSpeed:   2.5,
		Condition:   domain.SkyRain,
		Description: "Rain",
	}, got)
}

func TestReduceDay_TieKeepsFirstSeen(t *testing.T) {
	got := ReduceDay("2024-05-01", []domain.RawForecastSample{
		sample("2024-05-01 00:00:00", 5, 6, 40, 1, "Clouds"),
		sample("2024-05-01 03:00:00", 5, 6, 40, 1, "Rain"),
		sample("2024-05-01 06:00:00", 5, 6, 40, 1, "Clouds"),
		sample("2024-05-01 09:00:00", 5, 6, 40, 1, "Rain"),
	})
	assert.Equal(t, "Clouds", got.Description)
	assert.Equal(t, domain.SkyCloud, got.Condition)

	got = ReduceDay("2024-05-01", []domain.RawForecastSample{
		sample("2024-05-01 00:00:00", 5, 6, 40, 1, "Clear"),
		sample("2024-05-01 03:00:00", 5, 6, 40, 1, "Rain"),
		sample("2024-05-01 06:00:00", 5, 6, 40, 1, "Rain"),
	})
	assert.Equal(t, "Rain", got.Description)
}

func TestReduceDay_CategoryIsCaseSensitive(t *testing.T) {
	got := ReduceDay("2024-05-01", []domain.RawForecastSample{
		sample("2024-05-01 00:00:00", 5, 6, 40, 1, "rain"),
		sample("2024-05-01 03:00:00", 5, 6, 40, 1, "Clouds"),
		sample("2024-05-01 06:00:00", 5, 6, 40, 1, "Rain"),
	})
	assert.Equal(t, "rain", got.Description)
}

func TestReduceDay_NoConditionsDefaultsToClear(t *testing.T) {
	got := ReduceDay("2024-05-01", []domain.RawForecastSample{
		sample("2024-05-01 00:00:00", -0.6, 0.4, 81, 0.44, ""),
		sample("2024-05-01 03:00:00", -1.2, 1.6, 90, 0.5, ""),
	})
	assert.Equal(t, "Clear", got.Description)
	assert.Equal(t, domain.SkySun, got.Condition)
	assert.Equal(t, -1, got.TempMin)
	assert.Equal(t, 2, got.TempMax)
	assert.Equal(t, 86, got.Humidity)
	assert.Equal(t, 0.5, got.WindSpeed)
	assert.LessOrEqual(t, got.TempMin, got.TempMax)
}

func TestSummarizeForecast_CapsAtSixDays(t *testing.T) {
	var samples []domain.RawForecastSample
	for day := 1; day <= 8; day++ {
		for hour := 0; hour < 24; hour += 3 {
			ts := fmt.Sprintf("2024-05-%02d %02d:00:00", day, hour)
			samples = append(samples, sample(ts, float64(day), float64(day+5), 50, 2, "Clear"))
		}
	}

	days := SummarizeForecast(samples)
	require.Len(t, days, MaxForecastDays)
	for i, d := range days {
		assert.Equal(t, fmt.Sprintf("2024-05-%02d", i+1), d.Date)
		assert.Equal(t, i+1, d.TempMin)
		assert.Equal(t, i+6, d.TempMax)
	}
}

func TestSummarizeForecast_FewerDays(t *testing.T) {
	days := SummarizeForecast([]domain.RawForecastSample{
		sample("2024-05-01 21:00:00", 1, 2, 50, 1, "Rain"),
		sample("2024-05-02 00:00:00", 1, 2, 50, 1, "Rain"),
	})
	assert.Len(t, days, 2)
	assert.Empty(t, SummarizeForecast(nil))
}

func TestNormalizeCurrent(t *testing.T) {
	got := NormalizeCurrent(domain.RawCurrentConditions{
		City:      "São Paulo",
		Country:   "BR",
		Temp:      22.6,
		TempMin:   20.4,
		TempMax:   24.5,
		Humidity:  73,
		WindSpeed: 3.64,
		Conditions: []domain.ConditionTag{
			{Category: "Mist", Description: "névoa"},
			{Category: "Rain", Description: "chuva"},
		},
	})

	assert.Equal(t, domain.CurrentSummary{
		Temp:        23,
		TempMin:     20,
		TempMax:     25,
		Humidity:    73,
		WindSpeed:   3.6,
		Condition:   domain.SkyCloud,
		Description: "névoa",
	}, got)
}

func TestNormalizeCurrent_NoConditions(t *testing.T) {
	got := NormalizeCurrent(domain.RawCurrentConditions{Temp: 1})
	assert.Equal(t, domain.SkySun, got.Condition)
	assert.Equal(t, defaultCurrentDesc, got.Description)
}
