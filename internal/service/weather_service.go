package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/weatherlookup/backend/internal/domain"
)

// WeatherProvider is the outbound weather source used by WeatherService
type WeatherProvider interface {
	FetchCurrent(ctx context.Context, city string) (domain.RawCurrentConditions, error)
	FetchForecast(ctx context.Context, city string) ([]domain.RawForecastSample, error)
}

var _ WeatherProvider = (*OpenWeatherClient)(nil)

// WeatherService orchestrates provider fetches, aggregation and auditing
type WeatherService struct {
	provider WeatherProvider
	audit    *AuditLogger
	log      *zap.Logger
}

// NewWeatherService creates a new weather service
func NewWeatherService(provider WeatherProvider, audit *AuditLogger, log *zap.Logger) *WeatherService {
	return &WeatherService{
		provider: provider,
		audit:    audit,
		log:      log,
	}
}

// GetWeatherByCity fetches current conditions and forecast concurrently and
// aggregates them. Both fetches must succeed. Every attempt is audited.
func (s *WeatherService) GetWeatherByCity(ctx context.Context, city, ip string) (domain.WeatherResponse, error) {
	var (
		current  domain.RawCurrentConditions
		forecast []domain.RawForecastSample
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.provider.FetchCurrent(gctx, city)
		if err != nil {
			return err
		}
		current = c
		return nil
	})
	g.Go(func() error {
		f, err := s.provider.FetchForecast(gctx, city)
		if err != nil {
			return err
		}
		forecast = f
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Info("weather lookup failed",
			zap.String("city", city),
			zap.Stringer("kind", domain.KindOf(err)),
			zap.Error(err),
		)
		s.audit.LogFailure(ctx, city, ip, domain.MessageOf(err, err.Error()))
		return domain.WeatherResponse{}, err
	}

	resp := domain.WeatherResponse{
		City:     current.City,
		Country:  current.Country,
		Current:  NormalizeCurrent(current),
		Forecast: SummarizeForecast(forecast),
	}

	s.audit.LogSuccess(ctx, city, ip, current.City, current.Country)

	return resp, nil
}
