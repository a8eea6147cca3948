package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email is already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrFavoriteExists = errors.New("location already in favorites")
var ErrFavoriteNotFound = errors.New("location not found in favorites")

// User models a registered account. Email is the unique lookup key and is
// immutable after registration. Favorites is ordered by insertion and never
// contains duplicate entries (byte-for-byte comparison, no normalization).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Favorites    []string  `json:"favorites"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasFavorite reports whether location is already tracked by the user.
// Matching is exact: "London" and "london" are distinct entries.
func (u *User) HasFavorite(location string) bool {
	for _, fav := range u.Favorites {
		if fav == location {
			return true
		}
	}
	return false
}
