// Package store renders the two external capabilities the domain layer
// depends on: record persistence with equality-filter queries, and the
// principal (credential) store. Services depend on the interfaces; the GORM
// implementations are the production wiring and the memory implementations
// back the test suite.
package store

import (
	"context"
	"errors"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned by CreatePrincipal for a duplicate email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadCredentials is returned by Authenticate on any credential mismatch.
	ErrBadCredentials = errors.New("invalid email or password")
)

// UserFilter selects users by equality predicates. Zero values mean "any".
type UserFilter struct {
	Role       string
	IsApproved *bool
}

// AppointmentFilter selects appointments by equality predicates.
// uuid.Nil means "any".
type AppointmentFilter struct {
	StudentID uuid.UUID
	TeacherID uuid.UUID
}

// MessageFilter selects messages by equality predicates. uuid.Nil means "any".
type MessageFilter struct {
	StudentID uuid.UUID
	TeacherID uuid.UUID
}

// RecordStore is the document-persistence capability. Query results come back
// in store-defined order; callers must not depend on ordering. Deletes are
// idempotent: deleting an absent record is a no-op.
type RecordStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindUsers(ctx context.Context, f UserFilter) ([]models.User, error)
	SetUserApproval(ctx context.Context, id uuid.UUID, approved bool) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateTeacherProfile(ctx context.Context, profile *models.TeacherProfile) error
	GetTeacherProfile(ctx context.Context, id uuid.UUID) (*models.TeacherProfile, error)
	ListTeacherProfiles(ctx context.Context) ([]models.TeacherProfile, error)
	DeleteTeacherProfile(ctx context.Context, id uuid.UUID) error

	CreateAppointment(ctx context.Context, appt *models.Appointment) error
	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	FindAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)
	SetAppointmentStatus(ctx context.Context, id uuid.UUID, status string) error

	CreateMessage(ctx context.Context, msg *models.Message) error
	FindMessages(ctx context.Context, f MessageFilter) ([]models.Message, error)

	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetActiveRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}

// PrincipalStore is the authentication capability. The returned principal id
// doubles as the User id. It holds credentials only; profile data lives in
// the record store.
type PrincipalStore interface {
	CreatePrincipal(ctx context.Context, email, password string) (uuid.UUID, error)
	Authenticate(ctx context.Context, email, password string) (uuid.UUID, error)
}
