package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skycast/weather-api/internal/core/domain"
	"github.com/skycast/weather-api/internal/core/ports"
)

// WeatherHandler exposes the weather proxy endpoints.
type WeatherHandler struct {
	weather ports.WeatherService
}

func NewWeatherHandler(weather ports.WeatherService) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

// Current handles GET /weather/:city.
//
// @Summary      Current weather for a city
// @Tags         weather
// @Produce      json
// @Security     BearerAuth
// @Param        city  path      string  true  "City name (e.g. London)"
// @Success      200   {object}  currentWeatherResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /weather/{city} [get]
func (h *WeatherHandler) Current(c echo.Context) error {
	city := c.Param("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "city cannot be empty"})
	}

	current, err := h.weather.Current(c.Request().Context(), city)
	if err != nil {
		return weatherError(c, err)
	}

	return c.JSON(http.StatusOK, toCurrentResponse(current))
}

// Forecast handles GET /forecast/:city.
//
// @Summary      Five-day forecast for a city, one entry per day
// @Tags         weather
// @Produce      json
// @Security     BearerAuth
// @Param        city  path      string  true  "City name (e.g. London)"
// @Success      200   {object}  forecastResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /forecast/{city} [get]
func (h *WeatherHandler) Forecast(c echo.Context) error {
	city := c.Param("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "city cannot be empty"})
	}

	forecast, err := h.weather.Forecast(c.Request().Context(), city)
	if err != nil {
		return weatherError(c, err)
	}

	return c.JSON(http.StatusOK, toForecastResponse(forecast))
}

func weatherError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrWeatherUnavailable):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUpstreamFailure):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
	return err
}
