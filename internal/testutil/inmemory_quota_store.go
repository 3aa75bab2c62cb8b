package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Caesar-design242/beacongen/internal/domain/quota"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/types"
)

// InMemoryQuotaStore implements quota.Repository
type InMemoryQuotaStore struct {
	mu      sync.Mutex
	entries map[string]*quota.Entry
}

// NewInMemoryQuotaStore creates a new in-memory quota store
func NewInMemoryQuotaStore() *InMemoryQuotaStore {
	return &InMemoryQuotaStore{
		entries: make(map[string]*quota.Entry),
	}
}

func quotaKey(surveyorPrefix string, quarter types.Quarter) string {
	return fmt.Sprintf("%s/%s", surveyorPrefix, quarter)
}

func (s *InMemoryQuotaStore) Get(ctx context.Context, surveyorPrefix string, quarter types.Quarter) (*quota.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[quotaKey(surveyorPrefix, quarter)]; ok {
		copied := *entry
		return &copied, nil
	}
	return &quota.Entry{SurveyorPrefix: surveyorPrefix, Quarter: quarter}, nil
}

func (s *InMemoryQuotaStore) Reserve(ctx context.Context, surveyorPrefix string, quarter types.Quarter, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, ierr.NewError("quantity must be positive").
			WithHintf("Requested quantity %d is not a positive integer", quantity).
			Mark(ierr.ErrInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := quotaKey(surveyorPrefix, quarter)
	entry, ok := s.entries[key]
	if !ok {
		entry = &quota.Entry{
			ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTA_ENTRY),
			SurveyorPrefix: surveyorPrefix,
			Quarter:        quarter,
			CreatedAt:      time.Now().UTC(),
		}
	}
	if entry.UsageCount+quantity > types.QuarterlyCodeLimit {
		return 0, ierr.NewError("quarterly quota exceeded").
			WithHintf("Requested %d codes but only %d remain this quarter", quantity, types.RemainingQuota(entry.UsageCount)).
			WithReportableDetails(map[string]any{
				"surveyor_prefix": surveyorPrefix,
				"quarter":         quarter,
				"usage":           entry.UsageCount,
				"remaining":       types.RemainingQuota(entry.UsageCount),
				"requested":       quantity,
			}).
			Mark(ierr.ErrQuotaExceeded)
	}

	entry.UsageCount += quantity
	entry.UpdatedAt = time.Now().UTC()
	s.entries[key] = entry
	return entry.UsageCount, nil
}

func (s *InMemoryQuotaStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*quota.Entry)
}
