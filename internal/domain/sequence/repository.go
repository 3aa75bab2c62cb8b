package sequence

import (
	"context"
)

// Repository defines the interface for cursor persistence operations.
// The cursor is a singleton row; Update is a compare-and-swap so that two
// concurrent allocations can never both advance from the same snapshot.
type Repository interface {
	// Get returns the current cursor, seeding the initial ("AA", 0) value
	// on first use.
	Get(ctx context.Context) (*Cursor, error)

	// CompareAndSwap persists next only if the stored cursor still equals
	// old, and fails with ErrVersionConflict otherwise.
	CompareAndSwap(ctx context.Context, old, next *Cursor) error
}
