package surveyor

import (
	"context"
)

// Repository defines the interface for surveyor roster persistence.
type Repository interface {
	Create(ctx context.Context, s *Surveyor) error

	// GetByPrefix matches the unique prefix case-insensitively.
	GetByPrefix(ctx context.Context, prefix string) (*Surveyor, error)

	// FindByName matches case-insensitively on a name substring and returns
	// the first match.
	FindByName(ctx context.Context, name string) (*Surveyor, error)

	List(ctx context.Context) ([]*Surveyor, error)
}
