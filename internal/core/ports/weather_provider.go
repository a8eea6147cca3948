package ports

import (
	"context"
	"time"
)

// CurrentConditions is the normalized current-weather payload from the
// provider. Code carries the status embedded in the response body, which the
// provider reports separately from the transport status.
type CurrentConditions struct {
	Code           int
	City           string
	TimezoneOffset int // seconds east of UTC
	Timestamp      time.Time
	Temperature    float64
	Description    string
	Humidity       int
	Pressure       int
	WindSpeed      float64
	Sunrise        time.Time
	Sunset         time.Time
}

// ForecastSample is one raw time-series entry from the forecast feed,
// typically spaced three hours apart.
type ForecastSample struct {
	Timestamp   time.Time
	Temperature float64
	Description string
	Humidity    int
	Pressure    int
	WindSpeed   float64
}

// ForecastFeed is the normalized multi-day forecast payload. Sunrise and
// sunset are reported once per city, not per sample.
type ForecastFeed struct {
	Code           int
	City           string
	TimezoneOffset int // seconds east of UTC
	Sunrise        time.Time
	Sunset         time.Time
	Samples        []ForecastSample
}

// WeatherProvider abstracts the upstream weather API.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (*CurrentConditions, error)
	Forecast(ctx context.Context, city string) (*ForecastFeed, error)
}
