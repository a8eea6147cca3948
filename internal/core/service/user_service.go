package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skycast/weather-api/internal/api/metrics"
	"github.com/skycast/weather-api/internal/core/domain"
	"github.com/skycast/weather-api/internal/core/ports"
)

// UserService implements registration, login, session building, and the
// favorites list.
type UserService struct {
	repo   ports.UserRepository
	issuer *TokenIssuer
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, issuer *TokenIssuer, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, issuer: issuer, logger: logger}
}

// Register hashes the password and persists a new user with an empty
// favorites list. A user with the same email already existing surfaces as
// domain.ErrEmailTaken from the repository.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the credential against the stored bcrypt hash and returns
// the full record without mutating state.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return user, nil
}

// BuildSession produces the response view for any authenticated user
// operation. A fresh token is minted on every call, including for requests
// that already carried a valid one.
func (s *UserService) BuildSession(user *domain.User) (*ports.SessionView, error) {
	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	favorites := user.Favorites
	if favorites == nil {
		favorites = []string{}
	}

	return &ports.SessionView{
		Username:  user.Username,
		Email:     user.Email,
		Favorites: favorites,
		Token:     token,
	}, nil
}

// ListFavorites returns the user's current favorites without mutation.
func (s *UserService) ListFavorites(user *domain.User) []string {
	if user.Favorites == nil {
		return []string{}
	}
	return user.Favorites
}

// AddFavorite appends location to the user's favorites. Adding a location
// that is already present fails with domain.ErrFavoriteExists rather than
// succeeding silently. The full updated list is persisted in one write, then
// re-read so the caller always sees the store's current view rather than the
// in-memory copy. The duplicate check is check-then-act: two concurrent adds
// of the same location can both pass it. That matches the store's lack of
// cross-request locking.
func (s *UserService) AddFavorite(ctx context.Context, user *domain.User, location string) (*domain.User, error) {
	if user.HasFavorite(location) {
		metrics.FavoriteMutationsTotal.WithLabelValues("add", "error").Inc()
		return nil, domain.ErrFavoriteExists
	}

	favorites := make([]string, 0, len(user.Favorites)+1)
	favorites = append(favorites, user.Favorites...)
	favorites = append(favorites, location)

	if err := s.repo.UpdateFavorites(ctx, user.Email, favorites); err != nil {
		metrics.FavoriteMutationsTotal.WithLabelValues("add", "error").Inc()
		return nil, err
	}

	updated, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	metrics.FavoriteMutationsTotal.WithLabelValues("add", "ok").Inc()
	s.logger.Info().Str("email", user.Email).Str("location", location).Msg("favorite added")
	return updated, nil
}

// RemoveFavorite drops every entry equal to location (at most one given the
// no-duplicates invariant), persists the filtered list, and re-reads the
// record. Removing an absent location fails with domain.ErrFavoriteNotFound.
func (s *UserService) RemoveFavorite(ctx context.Context, user *domain.User, location string) (*domain.User, error) {
	if !user.HasFavorite(location) {
		metrics.FavoriteMutationsTotal.WithLabelValues("remove", "error").Inc()
		return nil, domain.ErrFavoriteNotFound
	}

	favorites := make([]string, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		if fav != location {
			favorites = append(favorites, fav)
		}
	}

	if err := s.repo.UpdateFavorites(ctx, user.Email, favorites); err != nil {
		metrics.FavoriteMutationsTotal.WithLabelValues("remove", "error").Inc()
		return nil, err
	}

	updated, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	metrics.FavoriteMutationsTotal.WithLabelValues("remove", "ok").Inc()
	s.logger.Info().Str("email", user.Email).Str("location", location).Msg("favorite removed")
	return updated, nil
}
