package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skycast/weather-api/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultUnits   = "metric"
	defaultTimeout = 10 * time.Second
)

// Config captures the settings for the OpenWeatherMap client.
type Config struct {
	APIKey  string
	BaseURL string
	Units   string
	Client  *http.Client
}

// Client implements ports.WeatherProvider against the OpenWeatherMap API.
// The provider reports errors both via the transport status and via a status
// code embedded in the payload; both are surfaced to the caller through the
// Code field of the normalized structs.
type Client struct {
	apiKey  string
	baseURL string
	units   string
	httpc   *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	units := cfg.Units
	if units == "" {
		units = defaultUnits
	}
	httpc := cfg.Client
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		units:   units,
		httpc:   httpc,
	}
}

// statusCode tolerates the provider's inconsistent encoding: /weather reports
// cod as a number, /forecast (and most error payloads) as a quoted string.
type statusCode int

func (s *statusCode) UnmarshalJSON(b []byte) error {
	v := strings.Trim(string(b), `"`)
	if v == "" || v == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse cod %q: %w", v, err)
	}
	*s = statusCode(n)
	return nil
}

type weatherItem struct {
	Description string `json:"description"`
}

type mainReading struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
	Pressure int     `json:"pressure"`
}

type windReading struct {
	Speed float64 `json:"speed"`
}

type currentPayload struct {
	Cod      statusCode    `json:"cod"`
	Name     string        `json:"name"`
	Dt       int64         `json:"dt"`
	Timezone int           `json:"timezone"`
	Main     mainReading   `json:"main"`
	Weather  []weatherItem `json:"weather"`
	Wind     windReading   `json:"wind"`
	Sys      struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

type forecastPayload struct {
	Cod  statusCode `json:"cod"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
	List []struct {
		Dt      int64         `json:"dt"`
		Main    mainReading   `json:"main"`
		Weather []weatherItem `json:"weather"`
		Wind    windReading   `json:"wind"`
	} `json:"list"`
}

// Current fetches current conditions for the given free-text city name.
func (c *Client) Current(ctx context.Context, city string) (*ports.CurrentConditions, error) {
	var payload currentPayload
	if err := c.get(ctx, "/weather", city, &payload); err != nil {
		return nil, err
	}

	return &ports.CurrentConditions{
		Code:           int(payload.Cod),
		City:           payload.Name,
		TimezoneOffset: payload.Timezone,
		Timestamp:      time.Unix(payload.Dt, 0).UTC(),
		Temperature:    payload.Main.Temp,
		Description:    description(payload.Weather),
		Humidity:       payload.Main.Humidity,
		Pressure:       payload.Main.Pressure,
		WindSpeed:      payload.Wind.Speed,
		Sunrise:        time.Unix(payload.Sys.Sunrise, 0).UTC(),
		Sunset:         time.Unix(payload.Sys.Sunset, 0).UTC(),
	}, nil
}

// Forecast fetches the 5-day / 3-hour forecast feed for the given city.
func (c *Client) Forecast(ctx context.Context, city string) (*ports.ForecastFeed, error) {
	var payload forecastPayload
	if err := c.get(ctx, "/forecast", city, &payload); err != nil {
		return nil, err
	}

	feed := &ports.ForecastFeed{
		Code:           int(payload.Cod),
		City:           payload.City.Name,
		TimezoneOffset: payload.City.Timezone,
		Sunrise:        time.Unix(payload.City.Sunrise, 0).UTC(),
		Sunset:         time.Unix(payload.City.Sunset, 0).UTC(),
		Samples:        make([]ports.ForecastSample, 0, len(payload.List)),
	}

	for _, item := range payload.List {
		feed.Samples = append(feed.Samples, ports.ForecastSample{
			Timestamp:   time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			Description: description(item.Weather),
			Humidity:    item.Main.Humidity,
			Pressure:    item.Main.Pressure,
			WindSpeed:   item.Wind.Speed,
		})
	}

	return feed, nil
}

// get performs a single request with no retries; a failed call surfaces
// immediately. Error payloads (unknown city, bad key) still decode into out
// because the provider embeds its status in the body.
func (c *Client) get(ctx context.Context, path, city string, out any) error {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.apiKey)
	values.Set("units", c.units)

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("openweather: build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("openweather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("openweather: server error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openweather: decode response: %w", err)
	}
	return nil
}

func description(items []weatherItem) string {
	if len(items) == 0 {
		return ""
	}
	return items[0].Description
}
