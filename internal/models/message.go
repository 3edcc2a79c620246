package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a one-way note from a student to a teacher. Immutable once
// created. AppointmentID exists in the schema but no operation writes it.
type Message struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	TeacherID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	StudentName   string     `gorm:"not null;size:255" json:"student_name"`
	TeacherName   string     `gorm:"not null;size:255" json:"teacher_name"`
	Content       string     `gorm:"not null;type:text" json:"content"`
	AppointmentID *uuid.UUID `gorm:"type:uuid" json:"appointment_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
