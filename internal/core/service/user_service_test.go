package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skycast/weather-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Favorites = append([]string{}, u.Favorites...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateFavorites(_ context.Context, email string, favorites []string) error {
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favorites = append([]string{}, favorites...)
	return nil
}

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewTokenIssuer("secret", time.Hour), zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@x.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Favorites == nil || len(user.Favorites) != 0 {
		t.Fatalf("expected empty favorites, got %v", user.Favorites)
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), "", "a@x.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "b@x.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, _ = svc.Register(context.Background(), "bob", "bob@x.com", "pass")
	if _, err := svc.Register(context.Background(), "bobby", "bob@x.com", "pass2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Register(context.Background(), "alice", "alice@x.com", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Login(context.Background(), "alice@x.com", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(user.Favorites) != 0 {
		t.Fatalf("expected empty favorites, got %v", user.Favorites)
	}
}

func TestUserService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, _ = svc.Register(context.Background(), "dave", "dave@x.com", "goodpass")
	if _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Login(context.Background(), "ghost@x.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_BuildSession(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), "carol", "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	view, err := svc.BuildSession(user)
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	if view.Username != "carol" || view.Email != "carol@x.com" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Favorites == nil {
		t.Fatalf("favorites must be non-nil")
	}
	if view.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(view.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@x.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
}

func TestTokenIssuer_NoTTLOmitsExpiry(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)

	token, err := issuer.Issue(&domain.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if _, ok := claims["exp"]; ok {
		t.Fatalf("expected no exp claim, got %v", claims["exp"])
	}
}

func TestUserService_AddFavorite(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, _ := svc.Register(context.Background(), "alice", "alice@x.com", "pw1")

	updated, err := svc.AddFavorite(context.Background(), user, "London")
	if err != nil {
		t.Fatalf("AddFavorite returned error: %v", err)
	}
	if !reflect.DeepEqual(updated.Favorites, []string{"London"}) {
		t.Fatalf("unexpected favorites: %v", updated.Favorites)
	}

	// Second add of the same location is a business error, not a no-op.
	if _, err := svc.AddFavorite(context.Background(), updated, "London"); err != domain.ErrFavoriteExists {
		t.Fatalf("expected ErrFavoriteExists, got %v", err)
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !reflect.DeepEqual(stored.Favorites, []string{"London"}) {
		t.Fatalf("favorites changed by failed add: %v", stored.Favorites)
	}
}

func TestUserService_AddFavorite_CaseSensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, _ := svc.Register(context.Background(), "alice", "alice@x.com", "pw1")
	user, _ = svc.AddFavorite(context.Background(), user, "London")

	// No normalization: "london" is a distinct entry.
	updated, err := svc.AddFavorite(context.Background(), user, "london")
	if err != nil {
		t.Fatalf("AddFavorite returned error: %v", err)
	}
	if !reflect.DeepEqual(updated.Favorites, []string{"London", "london"}) {
		t.Fatalf("unexpected favorites: %v", updated.Favorites)
	}
}

func TestUserService_AddFavorite_PreservesInsertionOrder(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, _ := svc.Register(context.Background(), "alice", "alice@x.com", "pw1")
	for _, city := range []string{"London", "Warsaw", "Tokyo"} {
		var err error
		user, err = svc.AddFavorite(context.Background(), user, city)
		if err != nil {
			t.Fatalf("AddFavorite(%s) returned error: %v", city, err)
		}
	}
	if !reflect.DeepEqual(user.Favorites, []string{"London", "Warsaw", "Tokyo"}) {
		t.Fatalf("unexpected order: %v", user.Favorites)
	}
}

func TestUserService_RemoveFavorite(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, _ := svc.Register(context.Background(), "alice", "alice@x.com", "pw1")
	user, _ = svc.AddFavorite(context.Background(), user, "London")
	user, _ = svc.AddFavorite(context.Background(), user, "Warsaw")

	updated, err := svc.RemoveFavorite(context.Background(), user, "London")
	if err != nil {
		t.Fatalf("RemoveFavorite returned error: %v", err)
	}
	if !reflect.DeepEqual(updated.Favorites, []string{"Warsaw"}) {
		t.Fatalf("unexpected favorites: %v", updated.Favorites)
	}
	if !reflect.DeepEqual(svc.ListFavorites(updated), []string{"Warsaw"}) {
		t.Fatalf("ListFavorites disagrees: %v", svc.ListFavorites(updated))
	}
}

func TestUserService_RemoveFavorite_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, _ := svc.Register(context.Background(), "alice", "alice@x.com", "pw1")
	if _, err := svc.RemoveFavorite(context.Background(), user, "Atlantis"); err != domain.ErrFavoriteNotFound {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestUserService_AddThenRemoveRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, _ := svc.Register(context.Background(), "alice", "alice@x.com", "pw1")
	user, _ = svc.AddFavorite(context.Background(), user, "London")
	before := append([]string{}, user.Favorites...)

	user, _ = svc.AddFavorite(context.Background(), user, "Paris")
	user, err := svc.RemoveFavorite(context.Background(), user, "Paris")
	if err != nil {
		t.Fatalf("RemoveFavorite returned error: %v", err)
	}
	if !reflect.DeepEqual(user.Favorites, before) {
		t.Fatalf("expected %v after round trip, got %v", before, user.Favorites)
	}
}

func TestUserService_ListFavorites_NilSafe(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	got := svc.ListFavorites(&domain.User{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
