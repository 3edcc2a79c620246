package services

import (
	"context"
	"strings"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
)

// TeacherService exposes the teacher directory.
type TeacherService struct {
	records store.RecordStore
}

func NewTeacherService(records store.RecordStore) *TeacherService {
	return &TeacherService{records: records}
}

// Search matches the query as a case-insensitive substring of the name,
// department or subject. An empty query matches every profile. Results come
// back in store-defined order.
func (s *TeacherService) Search(ctx context.Context, query string) ([]models.TeacherProfile, error) {
	profiles, err := s.records.ListTeacherProfiles(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return profiles, nil
	}

	needle := strings.ToLower(query)
	matched := make([]models.TeacherProfile, 0, len(profiles))
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Department), needle) ||
			strings.Contains(strings.ToLower(p.Subject), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
