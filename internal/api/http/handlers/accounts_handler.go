package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AccountsHandler exposes account CRUD endpoints.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// Create handles POST /users/create.
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	raw, err := parseBody(c)
	if err != nil {
		return err
	}

	req := dto.NewCreateAccountRequest(raw)
	if errs := req.Validate(); len(errs) > 0 {
		return validationFailed(errs)
	}
	if !req.DisplayName.Set() || !req.Username.Set() || !req.Password.Set() {
		return fiber.NewError(http.StatusBadRequest, "displayName, username and password required")
	}

	account, err := h.accounts.Create(c.UserContext(), req.DisplayName.Value, req.Username.Value, req.Password.Value)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// GetMe handles GET /users/get/me.
func (h *AccountsHandler) GetMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	account, err := h.accounts.GetSelf(c.UserContext(), principal.AccountID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// UpdateMe handles PATCH /users/update/me.
func (h *AccountsHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	raw, err := parseBody(c)
	if err != nil {
		return err
	}

	req := dto.NewUpdateAccountRequest(raw)
	if errs := req.Validate(); len(errs) > 0 {
		return validationFailed(errs)
	}

	account, err := h.accounts.UpdateSelf(c.UserContext(), principal.AccountID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// DeleteMe handles DELETE /users/delete/me.
func (h *AccountsHandler) DeleteMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	account, err := h.accounts.DeleteSelf(c.UserContext(), principal.AccountID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"deleted": true,
			"account": accountResponse(account),
		},
	})
}

func accountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		Username:    account.Username,
		CreatedAt:   account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   account.UpdatedAt.Format(time.RFC3339),
	}
}

// parseBody decodes the JSON body as a raw object so DTOs can distinguish
// absent fields from present-but-mistyped ones. An empty body is an empty
// object.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	if len(c.Body()) == 0 {
		return map[string]any{}, nil
	}
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	return raw, nil
}

func validationFailed(errs []dto.FieldError) error {
	return apperrors.NewValidationError("validation failed", map[string]any{"errors": errs})
}
