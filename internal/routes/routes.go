package routes

import (
	"time"

	"github.com/campusconnect/appointment-backend/internal/config"
	"github.com/campusconnect/appointment-backend/internal/handlers"
	"github.com/campusconnect/appointment-backend/internal/middleware"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	records store.RecordStore,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	teacherHandler *handlers.TeacherHandler,
	appointmentHandler *handlers.AppointmentHandler,
	messageHandler *handlers.MessageHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth routes are public but carry a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Everything below resolves the JWT into the current user record.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.Principal(records))

	protected.Get("/teachers", teacherHandler.Search)
	protected.Get("/dashboard", dashboardHandler.Get)

	protected.Post("/appointments", appointmentHandler.Book)
	protected.Get("/appointments", appointmentHandler.List)
	protected.Put("/appointments/:id/status", appointmentHandler.SetStatus)

	protected.Post("/messages", messageHandler.Send)
	protected.Get("/messages", messageHandler.List)

	admin := protected.Group("/admin", middleware.AdminRequired())
	admin.Get("/students/pending", adminHandler.ListPendingStudents)
	admin.Put("/students/:id/approve", adminHandler.ApproveStudent)
	admin.Delete("/students/:id", adminHandler.RejectStudent)
	admin.Delete("/teachers/:id", adminHandler.RemoveTeacher)
}
