package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/google/uuid"
)

// AppointmentService owns the booking lifecycle: a student creates a pending
// appointment, the owning teacher decides it. There is no double-booking
// check and no guard against re-deciding an already decided appointment;
// both gaps are carried over from the original system on purpose.
type AppointmentService struct {
	records store.RecordStore
}

func NewAppointmentService(records store.RecordStore) *AppointmentService {
	return &AppointmentService{records: records}
}

// Book creates a pending appointment for the authenticated student. The
// student id comes from the session, never from the request body, and the
// student and teacher names are frozen into the record at creation time.
func (s *AppointmentService) Book(ctx context.Context, student *models.User, req *dto.BookAppointmentRequest) (*models.Appointment, error) {
	if student.Role != models.RoleStudent {
		return nil, authorizationErr("only students can book appointments")
	}
	if req.Date == "" || req.Time == "" || req.Purpose == "" {
		return nil, validationErr("date, time and purpose are required")
	}

	teacher, err := s.records.GetTeacherProfile(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundErr("teacher not found")
		}
		return nil, fmt.Errorf("failed to load teacher profile: %w", err)
	}

	appt := models.Appointment{
		ID:          uuid.New(),
		StudentID:   student.ID,
		TeacherID:   teacher.ID,
		StudentName: student.Name,
		TeacherName: teacher.Name,
		Date:        req.Date,
		Time:        req.Time,
		Purpose:     req.Purpose,
		Status:      models.AppointmentPending,
		CreatedAt:   time.Now(),
	}
	if err := s.records.CreateAppointment(ctx, &appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	slog.Info("appointment booked",
		"action", "book_appointment",
		"appointment_id", appt.ID.String(),
		"user_id", student.ID.String(),
		"teacher_id", teacher.ID.String())
	return &appt, nil
}

// SetStatus records the owning teacher's decision. Only approved and
// cancelled are accepted, and only the teacher the appointment references may
// decide. A repeated call overwrites the previous decision.
func (s *AppointmentService) SetStatus(ctx context.Context, actor *models.User, appointmentID uuid.UUID, status string) (*models.Appointment, error) {
	if status != models.AppointmentApproved && status != models.AppointmentCancelled {
		return nil, validationErr("status must be approved or cancelled")
	}

	appt, err := s.records.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundErr("appointment not found")
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}

	if actor == nil || actor.ID != appt.TeacherID {
		return nil, authorizationErr("only the appointment's teacher can change its status")
	}

	if err := s.records.SetAppointmentStatus(ctx, appointmentID, status); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = status

	slog.Info("appointment status updated",
		"action", "set_appointment_status",
		"appointment_id", appointmentID.String(),
		"user_id", actor.ID.String(),
		"status", status)
	return appt, nil
}

// ListFor returns the caller's own appointments. The filter is derived from
// the authenticated user, so a caller cannot request another principal's
// records by supplying an arbitrary id.
func (s *AppointmentService) ListFor(ctx context.Context, user *models.User) ([]models.Appointment, error) {
	switch user.Role {
	case models.RoleStudent:
		return s.records.FindAppointments(ctx, store.AppointmentFilter{StudentID: user.ID})
	case models.RoleTeacher:
		return s.records.FindAppointments(ctx, store.AppointmentFilter{TeacherID: user.ID})
	}
	return nil, authorizationErr("no appointment view for this role")
}
