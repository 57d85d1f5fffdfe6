package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/weatherlookup/backend/internal/domain"
)

const (
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultOpenWeatherLang    = "pt_br"
	DefaultOpenWeatherTimeout = 10 * time.Second

	currentEndpoint  = "/weather"
	forecastEndpoint = "/forecast"
)

// OpenWeatherConfig configures the OpenWeatherMap client
type OpenWeatherConfig struct {
	APIKey  string
	BaseURL string
	Lang    string
	Timeout time.Duration
}

// OpenWeatherClient fetches current conditions and the 5-day/3-hour forecast
type OpenWeatherClient struct {
	apiKey   string
	lang     string
	client   *resty.Client
	validate *validator.Validate
	log      *zap.Logger
}

// NewOpenWeatherClient creates a new OpenWeatherMap client. Requests are never retried.
func NewOpenWeatherClient(cfg OpenWeatherConfig, log *zap.Logger) *OpenWeatherClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenWeatherBaseURL
	}
	if cfg.Lang == "" {
		cfg.Lang = DefaultOpenWeatherLang
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultOpenWeatherTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &OpenWeatherClient{
		apiKey:   cfg.APIKey,
		lang:     cfg.Lang,
		client:   client,
		validate: validator.New(),
		log:      log,
	}
}

type owCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type owMain struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity float64 `json:"humidity"`
}

type owWind struct {
	Speed float64 `json:"speed"`
}

// currentResponse is the subset of /weather the aggregation reads
type currentResponse struct {
	Name    string        `json:"name" validate:"required"`
	Main    *owMain       `json:"main" validate:"required"`
	Wind    *owWind       `json:"wind" validate:"required"`
	Weather []owCondition `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type forecastItem struct {
	DtTxt   string        `json:"dt_txt"`
	Main    *owMain       `json:"main" validate:"required"`
	Wind    *owWind       `json:"wind" validate:"required"`
	Weather []owCondition `json:"weather"`
}

// forecastResponse is the subset of /forecast the aggregation reads
type forecastResponse struct {
	List []forecastItem `json:"list" validate:"required,dive"`
}

// FetchCurrent fetches current conditions for city
func (c *OpenWeatherClient) FetchCurrent(ctx context.Context, city string) (domain.RawCurrentConditions, error) {
	var payload currentResponse
	if err := c.get(ctx, currentEndpoint, city, &payload); err != nil {
		return domain.RawCurrentConditions{}, err
	}

	return domain.RawCurrentConditions{
		City:       payload.Name,
		Country:    payload.Sys.Country,
		Temp:       payload.Main.Temp,
		TempMin:    payload.Main.TempMin,
		TempMax:    payload.Main.TempMax,
		Humidity:   payload.Main.Humidity,
		WindSpeed:  payload.Wind.Speed,
		Conditions: toTags(payload.Weather),
	}, nil
}

// FetchForecast fetches the 3-hour forecast series for city
func (c *OpenWeatherClient) FetchForecast(ctx context.Context, city string) ([]domain.RawForecastSample, error) {
	var payload forecastResponse
	if err := c.get(ctx, forecastEndpoint, city, &payload); err != nil {
		return nil, err
	}

	samples := make([]domain.RawForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		samples = append(samples, domain.RawForecastSample{
			Timestamp:  item.DtTxt,
			TempMin:    item.Main.TempMin,
			TempMax:    item.Main.TempMax,
			Humidity:   item.Main.Humidity,
			WindSpeed:  item.Wind.Speed,
			Conditions: toTags(item.Weather),
		})
	}
	return samples, nil
}

func toTags(items []owCondition) []domain.ConditionTag {
	tags := make([]domain.ConditionTag, 0, len(items))
	for _, w := range items {
		tags = append(tags, domain.ConditionTag{Category: w.Main, Description: w.Description})
	}
	return tags
}

// get issues one GET and decodes a validated payload into out.
// Every failure leaves as a *domain.Error.
func (c *OpenWeatherClient) get(ctx context.Context, endpoint, city string, out any) error {
	if c.apiKey == "" {
		return domain.NewInternalError(nil, "provider API key not configured")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": c.apiKey,
			"units": "metric",
			"lang":  c.lang,
		}).
		Get(endpoint)
	if err != nil {
		// url.Error carries the full URL, including appid
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		c.log.Warn("openweather request failed",
			zap.String("endpoint", endpoint),
			zap.String("city", city),
			zap.Error(err),
		)
		return domain.NewInternalError(err, "failed to communicate with the weather service")
	}

	c.log.Debug("openweather response",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("latency", resp.Time()),
	)

	switch status := resp.StatusCode(); {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError("city %q not found", city)
	case status == http.StatusUnauthorized:
		return domain.NewInternalError(nil, "authentication with the weather service failed")
	case status < 200 || status >= 300:
		return domain.NewInternalError(
			fmt.Errorf("openweather: unexpected status %d", status),
			"failed to communicate with the weather service",
		)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return domain.NewInternalError(fmt.Errorf("openweather: failed to decode %s: %w", endpoint, err), "invalid response from the weather service")
	}
	if err := c.validate.Struct(out); err != nil {
		return domain.NewInternalError(fmt.Errorf("openweather: malformed %s payload: %w", endpoint, err), "invalid response from the weather service")
	}

	return nil
}
