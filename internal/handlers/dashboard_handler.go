package handlers

import (
	"github.com/campusconnect/appointment-backend/internal/authn"
	"github.com/campusconnect/appointment-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the role-scoped dashboard view for the authenticated user.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	user, err := authn.Principal(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.dashboardService.ListForRole(c.Context(), user)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(resp)
}
