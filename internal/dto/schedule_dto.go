package dto

import (
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	TeacherID uuid.UUID `json:"teacher_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Purpose   string    `json:"purpose"`
}

type SetAppointmentStatusRequest struct {
	Status string `json:"status"`
}

type SendMessageRequest struct {
	TeacherID uuid.UUID `json:"teacher_id"`
	Content   string    `json:"content"`
}

// DashboardResponse is the role-scoped aggregate view. Slices irrelevant to
// the caller's role stay empty.
type DashboardResponse struct {
	Appointments    []models.Appointment    `json:"appointments,omitempty"`
	Messages        []models.Message        `json:"messages,omitempty"`
	Teachers        []models.TeacherProfile `json:"teachers,omitempty"`
	PendingStudents []models.User           `json:"pending_students,omitempty"`
}
