package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/service"
)

// AuthHandler exposes the login and refresh-token endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	raw, err := parseBody(c)
	if err != nil {
		return err
	}

	req := dto.NewLoginRequest(raw)
	if errs := req.Validate(); len(errs) > 0 {
		return validationFailed(errs)
	}
	if !req.Username.Set() || !req.Password.Set() {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	access, refresh, err := h.auth.Login(c.UserContext(), req.Username.Value, req.Password.Value)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh},
	})
}

// RefreshToken handles POST /auth/refreshToken.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	raw, err := parseBody(c)
	if err != nil {
		return err
	}

	req := dto.NewRefreshTokenRequest(raw)
	if errs := req.Validate(); len(errs) > 0 {
		return validationFailed(errs)
	}
	if !req.RefreshToken.Set() {
		return fiber.NewError(http.StatusBadRequest, "refreshToken required")
	}

	access, err := h.auth.Refresh(c.UserContext(), req.RefreshToken.Value)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.AccessTokenResponse{AccessToken: access},
	})
}
