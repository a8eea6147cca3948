package handler

import "github.com/skycast/weather-api/internal/core/ports"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type favoriteRequest struct {
	Location string `json:"location" validate:"required"`
}

// sessionResponse is returned by every user endpoint; the token is freshly
// minted on each response.
type sessionResponse struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Token     string   `json:"token"`
}

func toSessionResponse(v *ports.SessionView) sessionResponse {
	return sessionResponse{
		Username:  v.Username,
		Email:     v.Email,
		Favorites: v.Favorites,
		Token:     v.Token,
	}
}
