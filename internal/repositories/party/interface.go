package party

//go:generate mockgen -destination=mock/mock.go -package=mockparty -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/megastones/internal/domain/creature"
)

// Repository persists party members. ListByOwner keeps party order.
type Repository interface {
	// Create stores a new creature, assigning an ID when it has none
	Create(ctx context.Context, c *creature.Creature) error

	// Get retrieves a creature by ID
	Get(ctx context.Context, id string) (*creature.Creature, error)

	// ListByOwner returns an owner's party in the order it was created
	ListByOwner(ctx context.Context, ownerID string) ([]*creature.Creature, error)

	// Update replaces an existing creature
	Update(ctx context.Context, c *creature.Creature) error
}
