package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DefaultSlots is the fixed slot set assigned to every new teacher profile.
// Slots are labels only; no conflict checking happens against them.
var DefaultSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// TeacherProfile is the scheduling-facing shadow of a User with role teacher.
// It shares the User's id and is created and deleted together with it.
type TeacherProfile struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string                      `gorm:"not null;size:255" json:"name"`
	Email          string                      `gorm:"not null;size:255" json:"email"`
	Department     string                      `gorm:"not null;size:100;index" json:"department"`
	Subject        string                      `gorm:"not null;size:100;index" json:"subject"`
	AvailableSlots datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"available_slots"`
	CreatedAt      time.Time                   `json:"created_at"`
}
