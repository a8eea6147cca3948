package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=72h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo       MongoConfig
	Redis       RedisConfig
	OpenWeather OpenWeatherConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://127.0.0.1:27017"`
	Database string `env:"MONGO_DB,  default=weather_api"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type OpenWeatherConfig struct {
	APIKey   string        `env:"OPENWEATHER_API_KEY"`
	BaseURL  string        `env:"OPENWEATHER_BASE_URL, default=https://api.openweathermap.org/data/2.5"`
	Units    string        `env:"OPENWEATHER_UNITS,    default=metric"`
	CacheTTL time.Duration `env:"WEATHER_CACHE_TTL,    default=10m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
