package service

import (
	"math"
	"strings"
	"time"

	"github.com/weatherlookup/backend/internal/domain"
	"github.com/weatherlookup/backend/pkg/utils"
)

const (
	// MaxForecastDays caps the number of daily summaries returned
	MaxForecastDays = 6

	defaultDominantCategory = "Clear"
	defaultCurrentDesc      = "Céu limpo"

	dateLayout = "2006-01-02"
)

var (
	rainKeywords  = []string{"rain", "drizzle", "thunderstorm"}
	cloudKeywords = []string{"cloud", "mist", "fog", "haze"}
)

// ClassifySky maps a provider category name to a coarse sky condition.
// Rain keywords win over cloud keywords; anything else is sun.
func ClassifySky(category string) domain.SkyCondition {
	c := strings.ToLower(category)
	switch {
	case containsAny(c, rainKeywords...):
		return domain.SkyRain
	case containsAny(c, cloudKeywords...):
		return domain.SkyCloud
	default:
		return domain.SkySun
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// DayGroup holds the samples of one calendar date
type DayGroup struct {
	Date    string
	Samples []domain.RawForecastSample
}

// GroupByDate partitions samples by the date part of their timestamp,
// keeping the order in which dates first appear. Samples without a valid
// YYYY-MM-DD date prefix are skipped.
func GroupByDate(samples []domain.RawForecastSample) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)

	for _, s := range samples {
		date, _, _ := strings.Cut(s.Timestamp, " ")
		if _, err := time.Parse(dateLayout, date); err != nil {
			continue
		}
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, DayGroup{Date: date})
		}
		groups[i].Samples = append(groups[i].Samples, s)
	}

	return groups
}

// ReduceDay aggregates one non-empty date group into a DailySummary
func ReduceDay(date string, samples []domain.RawForecastSample) domain.DailySummary {
	tempMin := math.Inf(1)
	tempMax := math.Inf(-1)
	humidity := make([]float64, 0, len(samples))
	wind := make([]float64, 0, len(samples))

	// order holds categories as first seen; a tie keeps the earlier one.
	counts := make(map[string]int)
	var order []string

	for _, s := range samples {
		tempMin = math.Min(tempMin, s.TempMin)
		tempMax = math.Max(tempMax, s.TempMax)
		humidity = append(humidity, s.Humidity)
		wind = append(wind, s.WindSpeed)

		if len(s.Conditions) == 0 {
			continue
		}
		cat := s.Conditions[0].Category
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}

	dominant := defaultDominantCategory
	best := 0
	for _, cat := range order {
		if counts[cat] > best {
			best = counts[cat]
			dominant = cat
		}
	}

	return domain.DailySummary{
		Date:        date,
		TempMin:     utils.RoundInt(tempMin),
		TempMax:     utils.RoundInt(tempMax),
		Humidity:    utils.RoundInt(utils.Mean(humidity)),
		WindSpeed:   utils.RoundTo(utils.Mean(wind), 1),
		Condition:   ClassifySky(dominant),
		Description: dominant,
	}
}

// SummarizeForecast groups samples by date and reduces the first MaxForecastDays groups
func SummarizeForecast(samples []domain.RawForecastSample) []domain.DailySummary {
	groups := GroupByDate(samples)
	if len(groups) > MaxForecastDays {
		groups = groups[:MaxForecastDays]
	}

	days := make([]domain.DailySummary, 0, len(groups))
	for _, g := range groups {
		days = append(days, ReduceDay(g.Date, g.Samples))
	}
	return days
}

// NormalizeCurrent converts the provider's current conditions into a CurrentSummary
func NormalizeCurrent(raw domain.RawCurrentConditions) domain.CurrentSummary {
	summary := domain.CurrentSummary{
		Temp:        utils.RoundInt(raw.Temp),
		TempMin:     utils.RoundInt(raw.TempMin),
		TempMax:     utils.RoundInt(raw.TempMax),
		Humidity:    utils.RoundInt(raw.Humidity),
		WindSpeed:   utils.RoundTo(raw.WindSpeed, 1),
		Condition:   domain.SkySun,
		Description: defaultCurrentDesc,
	}

	if len(raw.Conditions) > 0 {
		tag := raw.Conditions[0]
		summary.Condition = ClassifySky(tag.Category)
		if tag.Description != "" {
			summary.Description = tag.Description
		}
	}

	return summary
}
