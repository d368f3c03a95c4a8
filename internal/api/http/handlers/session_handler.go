package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/solutions-kit/os-tracker/internal/api/dto"
	"github.com/solutions-kit/os-tracker/internal/auth"
	"github.com/solutions-kit/os-tracker/internal/domain"
	apperrors "github.com/solutions-kit/os-tracker/pkg/util"
)

// SessionHandler implements the role selector. There is no identity or
// password behind it: the caller picks administrator or viewer and receives
// a short-lived token carrying that role.
type SessionHandler struct {
	tokens *auth.TokenManager
}

// NewSessionHandler constructs handler.
func NewSessionHandler(tokens *auth.TokenManager) *SessionHandler {
	return &SessionHandler{tokens: tokens}
}

// SelectRole POST /auth/role.
func (h *SessionHandler) SelectRole(c *fiber.Ctx) error {
	var req dto.SelectRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return apperrors.NewValidationError("role must be admin or viewer", map[string]any{
			"role": req.Role,
		})
	}

	token, expiresAt, err := h.tokens.GenerateToken(role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SelectRoleResponse{
		Role:      role,
		Token:     token,
		ExpiresAt: expiresAt,
	}})
}
