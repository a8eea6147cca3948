package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/skycast/weather-api/internal/api/metrics"
	"github.com/skycast/weather-api/internal/core/domain"
	"github.com/skycast/weather-api/internal/core/ports"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Cache abstracts the weather response cache (Redis).
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// WeatherService proxies the upstream provider, reducing its raw feeds into
// the API's view types. Responses are cached per city; cache failures are
// never fatal.
type WeatherService struct {
	provider ports.WeatherProvider
	cache    Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewWeatherService returns a WeatherService. cache may be nil to disable
// caching.
func NewWeatherService(provider ports.WeatherProvider, cache Cache, cacheTTL time.Duration, logger zerolog.Logger) *WeatherService {
	return &WeatherService{provider: provider, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Current returns current conditions for city, mapped 1:1 from the provider's
// single snapshot. Sunrise and sunset come from the snapshot's own fields,
// rendered as wall-clock times in the city's zone.
func (s *WeatherService) Current(ctx context.Context, city string) (*domain.CurrentWeather, error) {
	key := "weather:current:" + city

	var cached domain.CurrentWeather
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	start := time.Now()
	cond, err := s.provider.Current(ctx, city)
	metrics.UpstreamRequestDuration.WithLabelValues("current").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, s.upstreamError(err, "current", city)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("current", "ok").Inc()

	if cond.Code != http.StatusOK {
		return nil, domain.ErrWeatherUnavailable
	}

	loc := time.FixedZone("", cond.TimezoneOffset)
	current := &domain.CurrentWeather{
		City:        cond.City,
		Temperature: cond.Temperature,
		Description: cond.Description,
		Humidity:    cond.Humidity,
		Pressure:    cond.Pressure,
		WindSpeed:   cond.WindSpeed,
		Sunrise:     cond.Sunrise.In(loc).Format(timeLayout),
		Sunset:      cond.Sunset.In(loc).Format(timeLayout),
	}

	s.toCache(ctx, key, current)
	return current, nil
}

// Forecast reduces the provider's multi-day sample feed to one entry per
// calendar date. Dates are derived in the city's local zone; the first sample
// seen for a date wins and later samples for it are dropped, no averaging.
// Sunrise and sunset are the city-level values repeated on every entry.
func (s *WeatherService) Forecast(ctx context.Context, city string) (*domain.Forecast, error) {
	key := "weather:forecast:" + city

	var cached domain.Forecast
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	start := time.Now()
	feed, err := s.provider.Forecast(ctx, city)
	metrics.UpstreamRequestDuration.WithLabelValues("forecast").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, s.upstreamError(err, "forecast", city)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("forecast", "ok").Inc()

	if feed.Code != http.StatusOK || len(feed.Samples) == 0 {
		return nil, domain.ErrWeatherUnavailable
	}

	loc := time.FixedZone("", feed.TimezoneOffset)
	sunrise := feed.Sunrise.In(loc).Format(timeLayout)
	sunset := feed.Sunset.In(loc).Format(timeLayout)

	seen := make(map[string]struct{}, len(feed.Samples))
	days := make([]domain.ForecastDay, 0, len(feed.Samples))
	for _, sample := range feed.Samples {
		date := sample.Timestamp.In(loc).Format(dateLayout)
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}

		days = append(days, domain.ForecastDay{
			Date:        date,
			Temperature: sample.Temperature,
			Description: sample.Description,
			Humidity:    sample.Humidity,
			Pressure:    sample.Pressure,
			WindSpeed:   sample.WindSpeed,
			Sunrise:     sunrise,
			Sunset:      sunset,
		})
	}

	forecast := &domain.Forecast{City: feed.City, Days: days}
	s.toCache(ctx, key, forecast)
	return forecast, nil
}

// upstreamError folds any unrecognized provider failure into
// domain.ErrUpstreamFailure so internal details never reach the caller. The
// real cause is logged here.
func (s *WeatherService) upstreamError(err error, endpoint, city string) error {
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
	s.logger.Error().Err(err).Str("endpoint", endpoint).Str("city", city).Msg("weather provider call failed")
	return domain.ErrUpstreamFailure
}

func (s *WeatherService) fromCache(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}
	if !ok {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, refetching")
		return false
	}

	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return true
}

func (s *WeatherService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
