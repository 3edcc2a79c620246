package handlers

import (
	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// writeServiceError maps a service failure kind to an HTTP status. Unknown
// errors stay opaque to the client.
func writeServiceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch services.KindOf(err) {
	case services.KindValidation:
		status, message = fiber.StatusBadRequest, err.Error()
	case services.KindAuthentication:
		status, message = fiber.StatusUnauthorized, err.Error()
	case services.KindAuthorization:
		status, message = fiber.StatusForbidden, err.Error()
	case services.KindPendingApproval:
		status, message = fiber.StatusForbidden, err.Error()
	case services.KindNotFound:
		status, message = fiber.StatusNotFound, err.Error()
	case services.KindPartialFailure:
		// Surfaced distinctly so the caller knows state needs reconciling.
		status, message = fiber.StatusInternalServerError, err.Error()
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
}
