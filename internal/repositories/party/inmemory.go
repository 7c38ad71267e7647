package party

import (
	"context"
	"sync"

	"github.com/KirkDiggler/megastones/internal/domain/creature"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
	"github.com/KirkDiggler/megastones/internal/uuid"
)

// InMemoryRepository is an in-memory party repository.
// Useful for tests and for the harness when no Redis is configured.
type InMemoryRepository struct {
	mu            sync.RWMutex
	uuidGenerator uuid.Generator
	creatures     map[string]*creature.Creature
	byOwner       map[string][]string
}

// NewInMemoryRepository creates an empty repository; a nil generator uses random UUIDs
func NewInMemoryRepository(gen uuid.Generator) *InMemoryRepository {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	return &InMemoryRepository{
		uuidGenerator: gen,
		creatures:     make(map[string]*creature.Creature),
		byOwner:       make(map[string][]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, c *creature.Creature) error {
	if err := validateCreate(c); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}
	if _, exists := r.creatures[c.ID]; exists {
		return megaerr.AlreadyExistsf("creature with ID '%s' already exists", c.ID).
			WithMeta("creature_id", c.ID)
	}

	r.creatures[c.ID] = c.Clone()
	r.byOwner[c.OwnerID] = append(r.byOwner[c.OwnerID], c.ID)
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*creature.Creature, error) {
	if id == "" {
		return nil, megaerr.InvalidArgument("creature ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.creatures[id]
	if !exists {
		return nil, megaerr.NotFoundf("creature with ID '%s' not found", id).
			WithMeta("creature_id", id)
	}
	return c.Clone(), nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*creature.Creature, error) {
	if ownerID == "" {
		return nil, megaerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[ownerID]
	out := make([]*creature.Creature, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.creatures[id].Clone())
	}
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, c *creature.Creature) error {
	if c == nil {
		return megaerr.InvalidArgument("creature cannot be nil")
	}
	if c.ID == "" {
		return megaerr.InvalidArgument("creature ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.creatures[c.ID]
	if !exists {
		return megaerr.NotFoundf("creature with ID '%s' not found", c.ID).
			WithMeta("creature_id", c.ID)
	}
	if existing.OwnerID != c.OwnerID {
		return megaerr.InvalidArgumentf("creature '%s' cannot change owner", c.ID)
	}

	r.creatures[c.ID] = c.Clone()
	return nil
}

func validateCreate(c *creature.Creature) error {
	if c == nil {
		return megaerr.InvalidArgument("creature cannot be nil")
	}
	if c.OwnerID == "" {
		return megaerr.InvalidArgument("creature owner ID is required")
	}
	if c.Species == "" {
		return megaerr.InvalidArgument("creature species is required")
	}
	return nil
}
