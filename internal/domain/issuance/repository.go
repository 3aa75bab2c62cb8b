package issuance

import (
	"context"
)

// Repository defines the interface for the append-only issuance log.
// There is deliberately no update or delete operation.
type Repository interface {
	// Append durably persists the record before the allocation reports
	// success to its caller.
	Append(ctx context.Context, record *Record) error

	// ListBySurveyor returns the surveyor's records ordered by IssuedAt
	// descending.
	ListBySurveyor(ctx context.Context, surveyorPrefix string) ([]*Record, error)
}
