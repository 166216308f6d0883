package ports

import (
	"context"

	"github.com/jphuse/nuskell/pkg/domain"
)

// SystemStore defines the interface for persisting compiled DSD systems,
// e.g. to hand a compilation result to a later sequence-design run.
type SystemStore interface {
	// Save persists the system under the given ID.
	Save(ctx context.Context, id string, system *domain.System) error

	// Load retrieves a system by ID.
	// Returns domain.ErrSystemNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.System, error)

	// Delete removes the system for the given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored systems.
	List(ctx context.Context) ([]string, error)
}
