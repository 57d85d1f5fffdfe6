package domain

// SkyCondition is the coarse sky category rendered by the frontend
type SkyCondition string

const (
	SkySun   SkyCondition = "sun"
	SkyCloud SkyCondition = "cloud"
	SkyRain  SkyCondition = "rain"
)

// ConditionTag is one provider-reported weather condition
type ConditionTag struct {
	Category    string
	Description string
}

// RawForecastSample is one 3-hour reading of the provider's 5-day forecast.
// Timestamp has the form "YYYY-MM-DD HH:MM:SS"; only Conditions[0] is used.
type RawForecastSample struct {
	Timestamp  string
	TempMin    float64
	TempMax    float64
	Humidity   float64
	WindSpeed  float64
	Conditions []ConditionTag
}

// RawCurrentConditions is the provider's current-weather snapshot for a location
type RawCurrentConditions struct {
	City       string
	Country    string
	Temp       float64
	TempMin    float64
	TempMax    float64
	Humidity   float64
	WindSpeed  float64
	Conditions []ConditionTag
}

// DailySummary is the day-level aggregate of a forecast date
type DailySummary struct {
	Date        string       `json:"date"`
	TempMin     int          `json:"tempMin"`
	TempMax     int          `json:"tempMax"`
	Humidity    int          `json:"humidity"`
	WindSpeed   float64      `json:"windSpeed"`
	Condition   SkyCondition `json:"condition"`
	Description string       `json:"description"`
}

// CurrentSummary is the normalized current weather
type CurrentSummary struct {
	Temp        int          `json:"temp"`
	TempMin     int          `json:"tempMin"`
	TempMax     int          `json:"tempMax"`
	Humidity    int          `json:"humidity"`
	WindSpeed   float64      `json:"windSpeed"`
	Condition   SkyCondition `json:"condition"`
	Description string       `json:"description"`
}

// WeatherResponse is the payload of GET /api/weather
type WeatherResponse struct {
	City     string         `json:"city"`
	Country  string         `json:"country"`
	Current  CurrentSummary `json:"current"`
	Forecast []DailySummary `json:"forecast"`
}
