package handlers

import (
	"github.com/campusconnect/appointment-backend/internal/authn"
	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	student, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	appt, err := h.appointmentService.Book(c.Context(), student, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

func (h *AppointmentHandler) SetStatus(c *fiber.Ctx) error {
	actor, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req dto.SetAppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	appt, err := h.appointmentService.SetStatus(c.Context(), actor, appointmentID, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(appt)
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	user, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	appts, err := h.appointmentService.ListFor(c.Context(), user)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"appointments": appts})
}
