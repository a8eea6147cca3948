package ports

import (
	"context"

	"github.com/skycast/weather-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateFavorites replaces the stored favorites list for the user keyed
	// by email in a single atomic write.
	UpdateFavorites(ctx context.Context, email string, favorites []string) error
}
