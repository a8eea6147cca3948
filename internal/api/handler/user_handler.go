package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skycast/weather-api/internal/core/domain"
	"github.com/skycast/weather-api/internal/core/ports"
)

// UserHandler handles registration, login, the current-user lookup, and the
// favorites list.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register creates a new account and returns a session view.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /user/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	user, err := h.users.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return h.session(c, http.StatusCreated, user)
}

// Login verifies credentials and returns a session view.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		return err
	}

	return h.session(c, http.StatusOK, user)
}

// Current returns a session view for the authenticated user, re-issuing the
// token.
//
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /user [get]
func (h *UserHandler) Current(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return h.session(c, http.StatusOK, user)
}

// Favorites lists the user's favorite locations.
//
// @Summary      List favorite locations
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   string
// @Failure      401  {object}  errorResponse
// @Router       /user/favorites [get]
func (h *UserHandler) Favorites(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.users.ListFavorites(user))
}

// AddFavorite appends a location to the user's favorites.
//
// @Summary      Add a favorite location
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      favoriteRequest  true  "Location to add"
// @Success      201   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user/add-favorite [post]
func (h *UserHandler) AddFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	updated, err := h.users.AddFavorite(c.Request().Context(), user, req.Location)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		return err
	}

	return h.session(c, http.StatusCreated, updated)
}

// RemoveFavorite deletes a location from the user's favorites.
//
// @Summary      Remove a favorite location
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      favoriteRequest  true  "Location to remove"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/remove-favorite [delete]
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	updated, err := h.users.RemoveFavorite(c.Request().Context(), user, req.Location)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}

	return h.session(c, http.StatusOK, updated)
}

func (h *UserHandler) session(c echo.Context, status int, user *domain.User) error {
	view, err := h.users.BuildSession(user)
	if err != nil {
		return err
	}
	return c.JSON(status, toSessionResponse(view))
}
