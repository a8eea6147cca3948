package ports

import (
	"context"

	"github.com/skycast/weather-api/internal/core/domain"
)

// SessionView is the response shape returned after every authenticated
// user operation. A fresh token is minted each time it is built.
type SessionView struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Token     string   `json:"token"`
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	BuildSession(user *domain.User) (*SessionView, error)

	ListFavorites(user *domain.User) []string
	AddFavorite(ctx context.Context, user *domain.User, location string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, user *domain.User, location string) (*domain.User, error)
}
