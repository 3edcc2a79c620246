package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values for User.Role.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User is the profile record behind every authenticated principal. Students
// start unapproved and are hard-deleted on rejection, so no soft delete here.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Role       string    `gorm:"size:20;not null;index" json:"role"`
	Department *string   `gorm:"size:100" json:"department,omitempty"`
	Subject    *string   `gorm:"size:100" json:"subject,omitempty"`
	IsApproved bool      `gorm:"not null;default:false;index" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}
