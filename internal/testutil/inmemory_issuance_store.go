package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
)

// InMemoryIssuanceStore implements issuance.Repository
type InMemoryIssuanceStore struct {
	mu        sync.RWMutex
	records   []*issuance.Record
	appendErr error
}

// NewInMemoryIssuanceStore creates a new in-memory issuance store
func NewInMemoryIssuanceStore() *InMemoryIssuanceStore {
	return &InMemoryIssuanceStore{}
}

func (s *InMemoryIssuanceStore) Append(ctx context.Context, record *issuance.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.appendErr != nil {
		err := s.appendErr
		s.appendErr = nil
		return err
	}

	stored := *record
	stored.Codes = append([]string(nil), record.Codes...)
	s.records = append(s.records, &stored)
	return nil
}

func (s *InMemoryIssuanceStore) ListBySurveyor(ctx context.Context, surveyorPrefix string) ([]*issuance.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*issuance.Record
	for _, record := range s.records {
		if record.SurveyorPrefix == surveyorPrefix {
			matches = append(matches, record)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].IssuedAt.After(matches[j].IssuedAt)
	})
	return matches, nil
}

// FailNextAppend makes the next Append call fail with the given error,
// for exercising the partial-failure path of the allocation coordinator.
func (s *InMemoryIssuanceStore) FailNextAppend(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendErr = err
}

func (s *InMemoryIssuanceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.appendErr = nil
}
