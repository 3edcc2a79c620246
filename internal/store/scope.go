package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStudent returns a GORM scope that filters by student_id.
func ByStudent(id uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("student_id = ?", id)
	}
}

// ByTeacher returns a GORM scope that filters by teacher_id.
func ByTeacher(id uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("teacher_id = ?", id)
	}
}
