package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skycast/weather-api/internal/core/domain"
)

type stubWeatherService struct {
	current  *domain.CurrentWeather
	forecast *domain.Forecast
	err      error
}

func (s *stubWeatherService) Current(_ context.Context, _ string) (*domain.CurrentWeather, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.current, nil
}

func (s *stubWeatherService) Forecast(_ context.Context, _ string) (*domain.Forecast, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.forecast, nil
}

func newWeatherContext(t *testing.T, target, city string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("city")
	c.SetParamValues(city)
	return c, rec
}

func TestWeatherHandler_Current(t *testing.T) {
	h := NewWeatherHandler(&stubWeatherService{current: &domain.CurrentWeather{
		City:        "London",
		Temperature: 12.3,
		Description: "light rain",
		Humidity:    81,
		Pressure:    1008,
		WindSpeed:   4.6,
		Sunrise:     "06:48:12",
		Sunset:      "17:42:07",
	}})

	c, rec := newWeatherContext(t, "/weather/London", "London")
	if err := h.Current(c); err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp currentWeatherResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.City != "London" || resp.Temperature != 12.3 || resp.Sunrise != "06:48:12" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestWeatherHandler_Current_CityNotFound(t *testing.T) {
	h := NewWeatherHandler(&stubWeatherService{err: domain.ErrWeatherUnavailable})

	c, rec := newWeatherContext(t, "/weather/Nowhere", "Nowhere")
	if err := h.Current(c); err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWeatherHandler_Current_UpstreamFailure(t *testing.T) {
	h := NewWeatherHandler(&stubWeatherService{err: domain.ErrUpstreamFailure})

	c, rec := newWeatherContext(t, "/weather/London", "London")
	if err := h.Current(c); err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWeatherHandler_Forecast(t *testing.T) {
	h := NewWeatherHandler(&stubWeatherService{forecast: &domain.Forecast{
		City: "London",
		Days: []domain.ForecastDay{
			{Date: "2024-03-01", Temperature: 10, Description: "scattered clouds"},
			{Date: "2024-03-02", Temperature: 11, Description: "light rain"},
		},
	}})

	c, rec := newWeatherContext(t, "/forecast/London", "London")
	if err := h.Forecast(c); err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp forecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.City != "London" || len(resp.Days) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Days[0].Date != "2024-03-01" || resp.Days[1].Date != "2024-03-02" {
		t.Fatalf("unexpected day order: %+v", resp.Days)
	}
}

func TestWeatherHandler_Forecast_CityNotFound(t *testing.T) {
	h := NewWeatherHandler(&stubWeatherService{err: domain.ErrWeatherUnavailable})

	c, rec := newWeatherContext(t, "/forecast/Nowhere", "Nowhere")
	if err := h.Forecast(c); err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWeatherHandler_EmptyCity(t *testing.T) {
	h := NewWeatherHandler(&stubWeatherService{})

	c, rec := newWeatherContext(t, "/weather/", "")
	if err := h.Current(c); err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
