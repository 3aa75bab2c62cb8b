package quota

import (
	"context"

	"github.com/Caesar-design242/beacongen/internal/types"
)

// Repository defines the interface for quarterly usage persistence.
type Repository interface {
	// Get returns the entry for the given key, or a zero-usage entry when
	// none exists yet.
	Get(ctx context.Context, surveyorPrefix string, quarter types.Quarter) (*Entry, error)

	// Reserve atomically checks and increments usage by quantity. It fails
	// with ErrQuotaExceeded when usage + quantity would pass
	// types.QuarterlyCodeLimit, leaving the entry untouched. The check and
	// the increment are one indivisible step; no other reservation can
	// interleave between them. Returns the usage count after the increment.
	Reserve(ctx context.Context, surveyorPrefix string, quarter types.Quarter, quantity int) (int, error)
}
