package middleware

import (
	"github.com/campusconnect/appointment-backend/internal/authn"
	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired rejects any principal whose role is not admin. Runs after
// Principal, so the role comes from the database record rather than a stale
// claim.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authn.Principal(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
