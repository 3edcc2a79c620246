// Package testutils seeds the in-memory stores for service tests.
package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/campusconnect/appointment-backend/internal/config"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Config returns a service config suitable for tests.
func Config() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 168 * time.Hour,
		},
	}
}

// UserOption configures a seeded user.
type UserOption func(*models.User)

func WithRole(role string) UserOption {
	return func(u *models.User) { u.Role = role }
}

func WithName(name string) UserOption {
	return func(u *models.User) { u.Name = name }
}

func Unapproved() UserOption {
	return func(u *models.User) { u.IsApproved = false }
}

// CreateUser seeds an approved student by default.
func CreateUser(t *testing.T, records store.RecordStore, opts ...UserOption) *models.User {
	t.Helper()

	id := uuid.New()
	user := &models.User{
		ID:         id,
		Email:      fmt.Sprintf("user_%s@example.com", id),
		Name:       "Test User",
		Role:       models.RoleStudent,
		IsApproved: true,
		CreatedAt:  time.Now(),
	}
	for _, opt := range opts {
		opt(user)
	}

	if err := records.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// CreateTeacher seeds a teacher user together with its profile, the way
// registration does.
func CreateTeacher(t *testing.T, records store.RecordStore, name, department, subject string) (*models.User, *models.TeacherProfile) {
	t.Helper()

	user := CreateUser(t, records, WithRole(models.RoleTeacher), WithName(name))
	user.Department = &department
	user.Subject = &subject

	profile := &models.TeacherProfile{
		ID:             user.ID,
		Name:           name,
		Email:          user.Email,
		Department:     department,
		Subject:        subject,
		AvailableSlots: datatypes.NewJSONSlice(models.DefaultSlots),
		CreatedAt:      time.Now(),
	}
	if err := records.CreateTeacherProfile(context.Background(), profile); err != nil {
		t.Fatalf("failed to seed teacher profile: %v", err)
	}
	return user, profile
}
