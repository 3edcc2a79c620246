package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusconnect/appointment-backend/internal/config"
	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/datatypes"
)

// AuthService owns registration and the session lifecycle. Registration is a
// non-transactional sequence (principal, user record, teacher profile); a
// failure after the first write surfaces as a partial failure rather than
// being rolled back, because the two stores share no transaction.
type AuthService struct {
	records    store.RecordStore
	principals store.PrincipalStore
	cfg        *config.Config
}

func NewAuthService(records store.RecordStore, principals store.PrincipalStore, cfg *config.Config) *AuthService {
	return &AuthService{records: records, principals: principals, cfg: cfg}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Email == "" || req.Name == "" {
		return nil, validationErr("email and name are required")
	}
	if len(req.Password) < 6 {
		return nil, validationErr("password must be at least 6 characters")
	}
	if !models.ValidRole(req.Role) {
		return nil, validationErr("role must be student, teacher or admin")
	}
	if req.Role == models.RoleTeacher && (req.Department == "" || req.Subject == "") {
		return nil, validationErr("department and subject are required for teachers")
	}

	slog.Info("registration attempt", "action", "register", "email", req.Email, "role", req.Role)

	principalID, err := s.principals.CreatePrincipal(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, &Error{Kind: KindValidation, Message: err.Error(), Err: err}
		}
		return nil, fmt.Errorf("failed to create principal: %w", err)
	}

	user := models.User{
		ID:         principalID,
		Email:      req.Email,
		Name:       req.Name,
		Role:       req.Role,
		IsApproved: req.Role != models.RoleStudent,
		CreatedAt:  time.Now(),
	}
	if req.Role == models.RoleTeacher {
		user.Department = &req.Department
		user.Subject = &req.Subject
	}

	if err := s.records.CreateUser(ctx, &user); err != nil {
		slog.Error("registration partial failure",
			"action", "register",
			"user_id", principalID.String(),
			"succeeded", "create_principal",
			"failed", "create_user",
			"error", err.Error())
		return nil, partialFailureErr("account created but profile write failed, contact the administrator", err)
	}

	if req.Role == models.RoleTeacher {
		profile := models.TeacherProfile{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Department:     req.Department,
			Subject:        req.Subject,
			AvailableSlots: datatypes.NewJSONSlice(models.DefaultSlots),
			CreatedAt:      time.Now(),
		}
		if err := s.records.CreateTeacherProfile(ctx, &profile); err != nil {
			slog.Error("registration partial failure",
				"action", "register",
				"user_id", user.ID.String(),
				"succeeded", "create_user",
				"failed", "create_teacher_profile",
				"error", err.Error())
			return nil, partialFailureErr("account created but teacher profile write failed, contact the administrator", err)
		}
	}

	slog.Info("registration successful", "action", "register", "user_id", user.ID.String(), "role", user.Role)

	resp := &dto.RegisterResponse{User: toUserResponse(&user)}
	if user.Role == models.RoleStudent {
		resp.PendingApproval = true
		resp.Message = "Registration successful. Your account is pending approval by the administrator."
		return resp, nil
	}

	tokens, err := s.issueTokenPair(ctx, &user)
	if err != nil {
		return nil, err
	}
	resp.AccessToken = tokens.AccessToken
	resp.RefreshToken = tokens.RefreshToken
	resp.Message = "Registration successful."
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	slog.Info("login attempt", "action", "login", "email", req.Email)

	principalID, err := s.principals.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrBadCredentials) {
			return nil, authenticationErr(err.Error(), err)
		}
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	user, err := s.records.GetUser(ctx, principalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Valid principal without a profile: the user record was deleted
			// (e.g. a rejected student) while the credential survived.
			return nil, notFoundErr("user profile not found")
		}
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	if user.Role == models.RoleStudent && !user.IsApproved {
		return nil, pendingApprovalErr()
	}

	tokens, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	slog.Info("login successful", "action", "login", "user_id", user.ID.String(), "role", user.Role)
	return &dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         toUserResponse(user),
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	stored, err := s.records.GetActiveRefreshToken(ctx, tokenHash)
	if err != nil {
		return nil, authenticationErr("invalid or expired refresh token", err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.records.RevokeRefreshToken(ctx, tokenHash)
		return nil, authenticationErr("invalid or expired refresh token", nil)
	}

	// Single use: rotate on every refresh.
	if err := s.records.RevokeRefreshToken(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	user, err := s.records.GetUser(ctx, stored.UserID)
	if err != nil {
		return nil, notFoundErr("user profile not found")
	}

	// A session must not outlive an approval revocation window.
	if user.Role == models.RoleStudent && !user.IsApproved {
		return nil, pendingApprovalErr()
	}

	tokens, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         toUserResponse(user),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	return s.records.RevokeRefreshToken(ctx, hashToken(req.RefreshToken))
}

type tokenPair struct {
	AccessToken  string
	RefreshToken string
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *models.User) (*tokenPair, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &tokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWT.AccessExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}

func (s *AuthService) generateRefreshToken(ctx context.Context, user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWT.RefreshExpiry),
	}
	if err := s.records.CreateRefreshToken(ctx, &record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

func toUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		IsApproved: user.IsApproved,
		CreatedAt:  user.CreatedAt,
	}
	if user.Department != nil {
		resp.Department = *user.Department
	}
	if user.Subject != nil {
		resp.Subject = *user.Subject
	}
	return resp
}
