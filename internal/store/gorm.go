package store

import (
	"context"
	"errors"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gorm implements RecordStore over PostgreSQL.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Gorm) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Gorm) FindUsers(ctx context.Context, f UserFilter) ([]models.User, error) {
	q := s.db.WithContext(ctx).Model(&models.User{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.IsApproved != nil {
		q = q.Where("is_approved = ?", *f.IsApproved)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Gorm) SetUserApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

func (s *Gorm) CreateTeacherProfile(ctx context.Context, profile *models.TeacherProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

func (s *Gorm) GetTeacherProfile(ctx context.Context, id uuid.UUID) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *Gorm) ListTeacherProfiles(ctx context.Context) ([]models.TeacherProfile, error) {
	var profiles []models.TeacherProfile
	if err := s.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *Gorm) DeleteTeacherProfile(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.TeacherProfile{}, "id = ?", id).Error
}

func (s *Gorm) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Create(appt).Error
}

func (s *Gorm) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (s *Gorm) FindAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error) {
	q := s.db.WithContext(ctx).Model(&models.Appointment{})
	if f.StudentID != uuid.Nil {
		q = q.Scopes(ByStudent(f.StudentID))
	}
	if f.TeacherID != uuid.Nil {
		q = q.Scopes(ByTeacher(f.TeacherID))
	}
	var appts []models.Appointment
	if err := q.Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (s *Gorm) SetAppointmentStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) CreateMessage(ctx context.Context, msg *models.Message) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

func (s *Gorm) FindMessages(ctx context.Context, f MessageFilter) ([]models.Message, error) {
	q := s.db.WithContext(ctx).Model(&models.Message{})
	if f.StudentID != uuid.Nil {
		q = q.Scopes(ByStudent(f.StudentID))
	}
	if f.TeacherID != uuid.Nil {
		q = q.Scopes(ByTeacher(f.TeacherID))
	}
	var msgs []models.Message
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Gorm) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return s.db.WithContext(ctx).Create(token).Error
}

func (s *Gorm) GetActiveRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := s.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = false", tokenHash).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (s *Gorm) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}
