package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/google/uuid"
)

// AdminService carries the admin-only mutations: the student approval
// workflow and teacher removal. Authorization is checked here, not left to
// the HTTP layer alone.
type AdminService struct {
	records store.RecordStore
}

func NewAdminService(records store.RecordStore) *AdminService {
	return &AdminService{records: records}
}

func requireAdmin(actor *models.User) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return authorizationErr("admin access required")
	}
	return nil
}

// ListPendingStudents returns every student awaiting approval.
func (s *AdminService) ListPendingStudents(ctx context.Context, actor *models.User) ([]models.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	approved := false
	return s.records.FindUsers(ctx, store.UserFilter{Role: models.RoleStudent, IsApproved: &approved})
}

// ApproveStudent flips the approval flag. Idempotent: approving an already
// approved student succeeds and leaves the flag true.
func (s *AdminService) ApproveStudent(ctx context.Context, actor *models.User, studentID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.records.SetUserApproval(ctx, studentID, true); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundErr("student not found")
		}
		return fmt.Errorf("failed to approve student: %w", err)
	}
	slog.Info("student approved", "action", "approve_student", "user_id", studentID.String(), "admin_id", actor.ID.String())
	return nil
}

// RejectStudent deletes the student's user record. Irreversible, and a no-op
// when the record is already gone. The credential row is left behind on
// purpose; a later login fails at the profile-load step.
func (s *AdminService) RejectStudent(ctx context.Context, actor *models.User, studentID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.records.DeleteUser(ctx, studentID); err != nil {
		return fmt.Errorf("failed to reject student: %w", err)
	}
	slog.Info("student rejected", "action", "reject_student", "user_id", studentID.String(), "admin_id", actor.ID.String())
	return nil
}

// RemoveTeacher deletes the teacher profile and the user record. The two
// deletes are not transactional; both are attempted even if the first fails,
// and any failed leg surfaces as a partial failure naming what succeeded.
// Existing appointments and messages referencing the teacher are left in
// place as dangling references.
func (s *AdminService) RemoveTeacher(ctx context.Context, actor *models.User, teacherID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	profileErr := s.records.DeleteTeacherProfile(ctx, teacherID)
	userErr := s.records.DeleteUser(ctx, teacherID)

	switch {
	case profileErr != nil && userErr != nil:
		slog.Error("teacher removal failed",
			"action", "remove_teacher",
			"user_id", teacherID.String(),
			"failed", "delete_teacher_profile,delete_user",
			"error", errors.Join(profileErr, userErr).Error())
		return fmt.Errorf("failed to remove teacher: %w", errors.Join(profileErr, userErr))
	case profileErr != nil:
		slog.Error("teacher removal partial failure",
			"action", "remove_teacher",
			"user_id", teacherID.String(),
			"succeeded", "delete_user",
			"failed", "delete_teacher_profile",
			"error", profileErr.Error())
		return partialFailureErr("teacher account removed but profile delete failed", profileErr)
	case userErr != nil:
		slog.Error("teacher removal partial failure",
			"action", "remove_teacher",
			"user_id", teacherID.String(),
			"succeeded", "delete_teacher_profile",
			"failed", "delete_user",
			"error", userErr.Error())
		return partialFailureErr("teacher profile removed but account delete failed", userErr)
	}

	slog.Info("teacher removed", "action", "remove_teacher", "user_id", teacherID.String(), "admin_id", actor.ID.String())
	return nil
}
