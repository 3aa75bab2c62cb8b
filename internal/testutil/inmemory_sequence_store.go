package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/Caesar-design242/beacongen/internal/domain/sequence"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
)

// InMemorySequenceStore implements sequence.Repository
type InMemorySequenceStore struct {
	mu     sync.Mutex
	cursor *sequence.Cursor
}

// NewInMemorySequenceStore creates a new in-memory sequence store
func NewInMemorySequenceStore() *InMemorySequenceStore {
	return &InMemorySequenceStore{
		cursor: sequence.NewCursor(),
	}
}

func (s *InMemorySequenceStore) Get(ctx context.Context) (*sequence.Cursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor := *s.cursor
	return &cursor, nil
}

func (s *InMemorySequenceStore) CompareAndSwap(ctx context.Context, old, next *sequence.Cursor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor.Alpha != old.Alpha || s.cursor.Number != old.Number {
		return ierr.NewError("sequence cursor changed concurrently").
			WithHint("Another allocation advanced the cursor first").
			Mark(ierr.ErrVersionConflict)
	}

	s.cursor = &sequence.Cursor{
		Alpha:     next.Alpha,
		Number:    next.Number,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

// SetCursor overrides the stored cursor, for tests that need a specific
// starting position.
func (s *InMemorySequenceStore) SetCursor(cursor *sequence.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *cursor
	s.cursor = &c
}

func (s *InMemorySequenceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = sequence.NewCursor()
}
