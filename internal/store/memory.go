package store

import (
	"context"
	"sync"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Memory implements RecordStore in process memory. It backs the test suite
// and has no durability guarantees. The Err fields, when set, make the
// corresponding write fail so partial-failure paths can be exercised.
type Memory struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]models.User
	profiles      map[uuid.UUID]models.TeacherProfile
	appointments  map[uuid.UUID]models.Appointment
	messages      map[uuid.UUID]models.Message
	refreshTokens map[string]models.RefreshToken

	CreateTeacherProfileErr error
	DeleteUserErr           error
	DeleteTeacherProfileErr error
}

func NewMemory() *Memory {
	return &Memory{
		users:         make(map[uuid.UUID]models.User),
		profiles:      make(map[uuid.UUID]models.TeacherProfile),
		appointments:  make(map[uuid.UUID]models.Appointment),
		messages:      make(map[uuid.UUID]models.Message),
		refreshTokens: make(map[string]models.RefreshToken),
	}
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *Memory) FindUsers(_ context.Context, f UserFilter) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.User
	for _, u := range m.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.IsApproved != nil && u.IsApproved != *f.IsApproved {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *Memory) SetUserApproval(_ context.Context, id uuid.UUID, approved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	user.IsApproved = approved
	m.users[id] = user
	return nil
}

func (m *Memory) DeleteUser(_ context.Context, id uuid.UUID) error {
	if m.DeleteUserErr != nil {
		return m.DeleteUserErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *Memory) CreateTeacherProfile(_ context.Context, profile *models.TeacherProfile) error {
	if m.CreateTeacherProfileErr != nil {
		return m.CreateTeacherProfileErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.ID] = *profile
	return nil
}

func (m *Memory) GetTeacherProfile(_ context.Context, id uuid.UUID) (*models.TeacherProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, ok := m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (m *Memory) ListTeacherProfiles(_ context.Context) ([]models.TeacherProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.TeacherProfile
	for _, p := range m.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) DeleteTeacherProfile(_ context.Context, id uuid.UUID) error {
	if m.DeleteTeacherProfileErr != nil {
		return m.DeleteTeacherProfileErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, id)
	return nil
}

func (m *Memory) CreateAppointment(_ context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	m.appointments[appt.ID] = *appt
	return nil
}

func (m *Memory) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	appt, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appt, nil
}

func (m *Memory) FindAppointments(_ context.Context, f AppointmentFilter) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Appointment
	for _, a := range m.appointments {
		if f.StudentID != uuid.Nil && a.StudentID != f.StudentID {
			continue
		}
		if f.TeacherID != uuid.Nil && a.TeacherID != f.TeacherID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *Memory) SetAppointmentStatus(_ context.Context, id uuid.UUID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appointments[id]
	if !ok {
		return ErrNotFound
	}
	appt.Status = status
	m.appointments[id] = appt
	return nil
}

func (m *Memory) CreateMessage(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	m.messages[msg.ID] = *msg
	return nil
}

func (m *Memory) FindMessages(_ context.Context, f MessageFilter) ([]models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Message
	for _, msg := range m.messages {
		if f.StudentID != uuid.Nil && msg.StudentID != f.StudentID {
			continue
		}
		if f.TeacherID != uuid.Nil && msg.TeacherID != f.TeacherID {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func (m *Memory) CreateRefreshToken(_ context.Context, token *models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	m.refreshTokens[token.TokenHash] = *token
	return nil
}

func (m *Memory) GetActiveRefreshToken(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.refreshTokens[tokenHash]
	if !ok || token.Revoked {
		return nil, ErrNotFound
	}
	return &token, nil
}

func (m *Memory) RevokeRefreshToken(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.refreshTokens[tokenHash]
	if !ok {
		return nil
	}
	token.Revoked = true
	m.refreshTokens[tokenHash] = token
	return nil
}

// MemoryPrincipals implements PrincipalStore in process memory.
type MemoryPrincipals struct {
	mu    sync.RWMutex
	creds map[string]models.Credential // keyed by email
}

func NewMemoryPrincipals() *MemoryPrincipals {
	return &MemoryPrincipals{creds: make(map[string]models.Credential)}
}

func (m *MemoryPrincipals) CreatePrincipal(_ context.Context, email, password string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.creds[email]; ok {
		return uuid.Nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return uuid.Nil, err
	}
	cred := models.Credential{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	m.creds[email] = cred
	return cred.ID, nil
}

func (m *MemoryPrincipals) Authenticate(_ context.Context, email, password string) (uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cred, ok := m.creds[email]
	if !ok {
		return uuid.Nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, ErrBadCredentials
	}
	return cred.ID, nil
}
