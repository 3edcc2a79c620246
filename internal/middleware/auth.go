package middleware

import (
	"github.com/campusconnect/appointment-backend/internal/authn"
	"github.com/campusconnect/appointment-backend/internal/config"
	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWT.Secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// Principal resolves the JWT subject into the current User record and stores
// it in context. A token whose user record has since been deleted (rejected
// student, removed teacher) stops here, as does a student whose approval was
// never granted.
func Principal(records store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authn.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := records.GetUser(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: account no longer exists",
			})
		}

		if user.Role == models.RoleStudent && !user.IsApproved {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Your registration is pending approval. Please contact the administrator.",
			})
		}

		authn.SetPrincipal(c, user)
		return c.Next()
	}
}
