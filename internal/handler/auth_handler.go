package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notebook/internal/errors"
	"notebook/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// SigninRequest represents a user signin request.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Status godoc
// @Summary Check whether multi-user authentication is enabled
// @Tags auth
// @Produce json
// @Success 200 {object} service.StatusResult
// @Router /auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.authService.Status())
}

// Signup godoc
// @Summary Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 200 {object} service.TokenResult
// @Failure 400 {object} errors.Detail
// @Failure 409 {object} errors.Detail
// @Failure 500 {object} errors.Detail
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: err.Error()})
	}

	result, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if err == service.ErrEmailExists {
			return c.JSON(http.StatusConflict, errors.Detail{Detail: err.Error()})
		}
		c.Logger().Errorf("signup failed for %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, errors.Detail{Detail: "Signup failed"})
	}

	return c.JSON(http.StatusOK, result)
}

// Signin godoc
// @Summary Authenticate an existing user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Signin credentials"
// @Success 200 {object} service.TokenResult
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 500 {object} errors.Detail
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: err.Error()})
	}

	result, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			// Same payload for unknown email and wrong password; no
			// credential content is logged.
			c.Logger().Warnf("signin rejected for %s %s", c.Request().Method, c.Request().URL.Path)
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, errors.Detail{Detail: err.Error()})
		}
		c.Logger().Errorf("signin failed for %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, errors.Detail{Detail: "Signin failed"})
	}

	return c.JSON(http.StatusOK, result)
}
