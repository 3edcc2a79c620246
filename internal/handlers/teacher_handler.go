package handlers

import (
	"github.com/campusconnect/appointment-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TeacherHandler struct {
	teacherService *services.TeacherService
}

func NewTeacherHandler(teacherService *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// Search handles GET /api/teachers?q=<query>. An empty query lists every
// teacher.
func (h *TeacherHandler) Search(c *fiber.Ctx) error {
	profiles, err := h.teacherService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"teachers": profiles})
}
