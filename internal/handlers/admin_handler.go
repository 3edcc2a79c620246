package handlers

import (
	"github.com/campusconnect/appointment-backend/internal/authn"
	"github.com/campusconnect/appointment-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListPendingStudents(c *fiber.Ctx) error {
	actor, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	students, err := h.adminService.ListPendingStudents(c.Context(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"students": students})
}

func (h *AdminHandler) ApproveStudent(c *fiber.Ctx) error {
	actor, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid student id")
	}

	if err := h.adminService.ApproveStudent(c.Context(), actor, studentID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student approved"})
}

func (h *AdminHandler) RejectStudent(c *fiber.Ctx) error {
	actor, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid student id")
	}

	if err := h.adminService.RejectStudent(c.Context(), actor, studentID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student rejected"})
}

func (h *AdminHandler) RemoveTeacher(c *fiber.Ctx) error {
	actor, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid teacher id")
	}

	if err := h.adminService.RemoveTeacher(c.Context(), actor, teacherID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teacher removed"})
}
