// Package authn extracts the authenticated principal from request context.
// The live session is never ambient state: middleware resolves the JWT into
// a typed User once per request and every service call receives it
// explicitly.
package authn

import (
	"errors"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const principalKey = "principal"

// UserID extracts the user UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// SetPrincipal stores the resolved User for the rest of the request.
func SetPrincipal(c *fiber.Ctx, user *models.User) {
	c.Locals(principalKey, user)
}

// Principal returns the User resolved by the principal middleware.
func Principal(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(principalKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no principal in context")
	}
	return user, nil
}
