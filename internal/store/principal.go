package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GormPrincipals implements PrincipalStore over the credentials table.
type GormPrincipals struct {
	db *gorm.DB
}

func NewGormPrincipals(db *gorm.DB) *GormPrincipals {
	return &GormPrincipals{db: db}
}

func (s *GormPrincipals) CreatePrincipal(ctx context.Context, email, password string) (uuid.UUID, error) {
	var existing models.Credential
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return uuid.Nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cred := models.Credential{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&cred).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create credential: %w", err)
	}
	return cred.ID, nil
}

func (s *GormPrincipals) Authenticate(ctx context.Context, email, password string) (uuid.UUID, error) {
	var cred models.Credential
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrBadCredentials
		}
		return uuid.Nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, ErrBadCredentials
	}
	return cred.ID, nil
}
