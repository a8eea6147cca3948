package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/skycast/weather-api/internal/core/ports"
)

// Auth validates the bearer JWT, resolves its email claim to a stored user,
// and injects the record into the request context under "user". Every failure
// mode (missing header, malformed header, bad signature, unknown email) is
// rejected with the same 401 message so callers cannot tell which check
// failed.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	unauthorized := echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return unauthorized
			}

			email, _ := claims["email"].(string)
			if email == "" {
				return unauthorized
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				return unauthorized
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
