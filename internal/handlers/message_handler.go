package handlers

import (
	"github.com/campusconnect/appointment-backend/internal/authn"
	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	student, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	msg, err := h.messageService.Send(c.Context(), student, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	user, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	msgs, err := h.messageService.ListFor(c.Context(), user)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"messages": msgs})
}
