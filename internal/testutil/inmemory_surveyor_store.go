package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
)

// InMemorySurveyorStore implements surveyor.Repository
type InMemorySurveyorStore struct {
	mu        sync.RWMutex
	surveyors map[string]*surveyor.Surveyor
	order     []string
}

// NewInMemorySurveyorStore creates a new in-memory surveyor store
func NewInMemorySurveyorStore() *InMemorySurveyorStore {
	return &InMemorySurveyorStore{
		surveyors: make(map[string]*surveyor.Surveyor),
	}
}

func (s *InMemorySurveyorStore) Create(ctx context.Context, sv *surveyor.Surveyor) error {
	if err := sv.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.surveyors {
		if strings.EqualFold(existing.Prefix, sv.Prefix) {
			return ierr.NewError("surveyor prefix already registered").
				WithHintf("A surveyor with prefix %q already exists", sv.Prefix).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	stored := *sv
	s.surveyors[sv.ID] = &stored
	s.order = append(s.order, sv.ID)
	return nil
}

func (s *InMemorySurveyorStore) GetByPrefix(ctx context.Context, prefix string) (*surveyor.Surveyor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sv := range s.surveyors {
		if strings.EqualFold(sv.Prefix, prefix) {
			match := *sv
			return &match, nil
		}
	}
	return nil, ierr.NewError("surveyor not found").
		WithHintf("No surveyor registered with prefix %q", prefix).
		Mark(ierr.ErrNotFound)
}

func (s *InMemorySurveyorStore) FindByName(ctx context.Context, name string) (*surveyor.Surveyor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(name)
	for _, id := range s.order {
		sv := s.surveyors[id]
		if strings.Contains(strings.ToLower(sv.Name), needle) {
			match := *sv
			return &match, nil
		}
	}
	return nil, ierr.NewError("surveyor not found").
		WithHintf("No surveyor name matches %q", name).
		Mark(ierr.ErrNotFound)
}

func (s *InMemorySurveyorStore) List(ctx context.Context) ([]*surveyor.Surveyor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	surveyors := make([]*surveyor.Surveyor, 0, len(s.order))
	// newest first
	for i := len(s.order) - 1; i >= 0; i-- {
		sv := *s.surveyors[s.order[i]]
		surveyors = append(surveyors, &sv)
	}
	return surveyors, nil
}

func (s *InMemorySurveyorStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surveyors = make(map[string]*surveyor.Surveyor)
	s.order = nil
}
