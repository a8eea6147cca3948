package handler

import "github.com/skycast/weather-api/internal/core/domain"

// Response-only types owned by the transport layer, kept separate from the
// domain types so the JSON contract is not coupled to internal changes.

type currentWeatherResponse struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

type forecastDayResponse struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

type forecastResponse struct {
	City string                `json:"city"`
	Days []forecastDayResponse `json:"days"`
}

func toCurrentResponse(w *domain.CurrentWeather) currentWeatherResponse {
	return currentWeatherResponse{
		City:        w.City,
		Temperature: w.Temperature,
		Description: w.Description,
		Humidity:    w.Humidity,
		Pressure:    w.Pressure,
		WindSpeed:   w.WindSpeed,
		Sunrise:     w.Sunrise,
		Sunset:      w.Sunset,
	}
}

func toForecastResponse(f *domain.Forecast) forecastResponse {
	days := make([]forecastDayResponse, len(f.Days))
	for i, d := range f.Days {
		days[i] = forecastDayResponse{
			Date:        d.Date,
			Temperature: d.Temperature,
			Description: d.Description,
			Humidity:    d.Humidity,
			Pressure:    d.Pressure,
			WindSpeed:   d.WindSpeed,
			Sunrise:     d.Sunrise,
			Sunset:      d.Sunset,
		}
	}
	return forecastResponse{City: f.City, Days: days}
}
