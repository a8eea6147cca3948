package ports

import (
	"context"

	"github.com/skycast/weather-api/internal/core/domain"
)

type WeatherService interface {
	Current(ctx context.Context, city string) (*domain.CurrentWeather, error)
	Forecast(ctx context.Context, city string) (*domain.Forecast, error)
}
