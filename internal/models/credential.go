package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the principal-store record: one bcrypt hash per principal.
// The principal id doubles as the User id. Rejecting a student deletes the
// User but not the credential; the stale credential then fails login at the
// profile-load step, matching the original system's behavior.
type Credential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
