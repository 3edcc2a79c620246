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

// MessageService sends one-way student-to-teacher notes. Messages are
// immutable and never link back to an appointment, even though the schema
// carries the column.
type MessageService struct {
	records store.RecordStore
}

func NewMessageService(records store.RecordStore) *MessageService {
	return &MessageService{records: records}
}

func (s *MessageService) Send(ctx context.Context, student *models.User, req *dto.SendMessageRequest) (*models.Message, error) {
	if student.Role != models.RoleStudent {
		return nil, authorizationErr("only students can send messages")
	}
	if req.Content == "" {
		return nil, validationErr("message content is required")
	}

	teacher, err := s.records.GetTeacherProfile(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundErr("teacher not found")
		}
		return nil, fmt.Errorf("failed to load teacher profile: %w", err)
	}

	msg := models.Message{
		ID:          uuid.New(),
		StudentID:   student.ID,
		TeacherID:   teacher.ID,
		StudentName: student.Name,
		TeacherName: teacher.Name,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}
	if err := s.records.CreateMessage(ctx, &msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	slog.Info("message sent",
		"action", "send_message",
		"message_id", msg.ID.String(),
		"user_id", student.ID.String(),
		"teacher_id", teacher.ID.String())
	return &msg, nil
}

// ListFor returns the messages visible to the caller: a teacher's inbox, or
// a student's own sent messages.
func (s *MessageService) ListFor(ctx context.Context, user *models.User) ([]models.Message, error) {
	switch user.Role {
	case models.RoleTeacher:
		return s.records.FindMessages(ctx, store.MessageFilter{TeacherID: user.ID})
	case models.RoleStudent:
		return s.records.FindMessages(ctx, store.MessageFilter{StudentID: user.ID})
	}
	return nil, authorizationErr("no message view for this role")
}
