package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skycast/weather-api/internal/core/domain"
)

// currentUser extracts the user record resolved by the Auth middleware.
// Handlers receive the identity as an explicit value; its presence proves
// the middleware ran.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
