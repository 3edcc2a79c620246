package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment status values. Status starts pending and is decided once by the
// owning teacher; a repeated decision overwrites the previous one (no guard).
const (
	AppointmentPending   = "pending"
	AppointmentApproved  = "approved"
	AppointmentCancelled = "cancelled"
)

// Appointment is a student's booking request against a teacher's slot label.
// StudentName and TeacherName are frozen at creation time; later renames do
// not propagate. Date and Time are stored as the plain form strings the
// student submitted.
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	StudentName string    `gorm:"not null;size:255" json:"student_name"`
	TeacherName string    `gorm:"not null;size:255" json:"teacher_name"`
	Date        string    `gorm:"not null;size:20" json:"date"`
	Time        string    `gorm:"not null;size:20" json:"time"`
	Purpose     string    `gorm:"not null;size:1000" json:"purpose"`
	Status      string    `gorm:"not null;default:'pending';size:20;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
