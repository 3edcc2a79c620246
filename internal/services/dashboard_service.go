package services

import (
	"context"

	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
)

// DashboardService aggregates the role-scoped view each dashboard renders.
// Every filter is derived from the authenticated user; this is the
// authorization boundary, not a display convenience.
type DashboardService struct {
	records store.RecordStore
}

func NewDashboardService(records store.RecordStore) *DashboardService {
	return &DashboardService{records: records}
}

func (s *DashboardService) ListForRole(ctx context.Context, user *models.User) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	switch user.Role {
	case models.RoleAdmin:
		approved := false
		students, err := s.records.FindUsers(ctx, store.UserFilter{Role: models.RoleStudent, IsApproved: &approved})
		if err != nil {
			return nil, err
		}
		teachers, err := s.records.ListTeacherProfiles(ctx)
		if err != nil {
			return nil, err
		}
		resp.PendingStudents = students
		resp.Teachers = teachers

	case models.RoleTeacher:
		appts, err := s.records.FindAppointments(ctx, store.AppointmentFilter{TeacherID: user.ID})
		if err != nil {
			return nil, err
		}
		msgs, err := s.records.FindMessages(ctx, store.MessageFilter{TeacherID: user.ID})
		if err != nil {
			return nil, err
		}
		resp.Appointments = appts
		resp.Messages = msgs

	case models.RoleStudent:
		teachers, err := s.records.ListTeacherProfiles(ctx)
		if err != nil {
			return nil, err
		}
		appts, err := s.records.FindAppointments(ctx, store.AppointmentFilter{StudentID: user.ID})
		if err != nil {
			return nil, err
		}
		resp.Teachers = teachers
		resp.Appointments = appts

	default:
		return nil, authorizationErr("unknown role")
	}

	return resp, nil
}
