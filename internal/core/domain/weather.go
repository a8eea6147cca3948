package domain

import "errors"

var ErrWeatherUnavailable = errors.New("weather data not found")
var ErrUpstreamFailure = errors.New("weather provider failure")

// CurrentWeather is a single snapshot of current conditions for a city.
// Sunrise and sunset are wall-clock times in the city's local zone.
type CurrentWeather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

// ForecastDay is one representative sample for a calendar date. The value is
// the first raw sample observed for that date, not an aggregate.
type ForecastDay struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

// Forecast holds one ForecastDay per distinct calendar date, in the order the
// dates first appeared in the provider feed.
type Forecast struct {
	City string        `json:"city"`
	Days []ForecastDay `json:"days"`
}
