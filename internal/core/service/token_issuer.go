package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skycast/weather-api/internal/core/domain"
)

// TokenIssuer mints signed session tokens. The signing secret is injected
// configuration, never process-wide state. Tokens are stateless: there is no
// revocation, they stay valid until the secret changes or the exp claim
// (when set) passes.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer. A ttl <= 0 omits the exp claim
// entirely, keeping tokens valid indefinitely.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue signs an HS256 token carrying the user's email as the identity claim.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
	}
	if t.ttl > 0 {
		claims["exp"] = time.Now().Add(t.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.secret))
}
