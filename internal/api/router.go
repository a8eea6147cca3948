package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skycast/weather-api/internal/api/handler"
	"github.com/skycast/weather-api/internal/api/middleware"
	"github.com/skycast/weather-api/internal/core/service"
	"github.com/skycast/weather-api/internal/infrastructure/config"
	mongodb "github.com/skycast/weather-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skycast/weather-api/internal/infrastructure/db/redis"
	"github.com/skycast/weather-api/internal/infrastructure/openweather"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("weather"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, issuer, log)

	provider := openweather.NewClient(openweather.Config{
		APIKey:  cfg.OpenWeather.APIKey,
		BaseURL: cfg.OpenWeather.BaseURL,
		Units:   cfg.OpenWeather.Units,
	})
	var cache service.Cache
	if rdb != nil {
		cache = redisdb.NewWeatherCache(rdb)
	}
	weatherService := service.NewWeatherService(provider, cache, cfg.OpenWeather.CacheTTL, log)

	userHandler := handler.NewUserHandler(userService)
	weatherHandler := handler.NewWeatherHandler(weatherService)
	auth := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Public user routes ---
	e.POST("/user/register", userHandler.Register)
	e.POST("/user/login", userHandler.Login)

	// --- Protected routes (bearer token) ---
	user := e.Group("/user", auth)
	user.GET("", userHandler.Current)
	user.GET("/favorites", userHandler.Favorites)
	user.POST("/add-favorite", userHandler.AddFavorite)
	user.DELETE("/remove-favorite", userHandler.RemoveFavorite)

	e.GET("/weather/:city", weatherHandler.Current, auth)
	e.GET("/forecast/:city", weatherHandler.Forecast, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
