package group

import "context"

// Repository defines the persistence operations for recipient groups.
//
// It is implemented by infrastructure layers (e.g. GORM) while the service
// layer depends only on this interface.
type Repository interface {
	// Save persists a new group. Returns ErrAlreadyExists if the name is taken.
	Save(ctx context.Context, g *Group) error

	// GetByName returns the group with the given name or ErrNotFound.
	GetByName(ctx context.Context, name string) (*Group, error)

	// List returns all groups ordered by name.
	List(ctx context.Context) ([]*Group, error)

	// Delete removes the group with the given name or returns ErrNotFound.
	Delete(ctx context.Context, name string) error
}
