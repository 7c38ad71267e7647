package items

import (
	"context"
	"sort"
	"sync"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// InMemoryStore is an in-memory implementation of the item store.
// Useful for tests and for hosts that keep item data in process.
type InMemoryStore struct {
	mu      sync.RWMutex
	byToken map[string]*Definition
	byID    map[int]string
}

// NewInMemoryStore creates a store pre-populated with defs
func NewInMemoryStore(defs ...*Definition) *InMemoryStore {
	s := &InMemoryStore{
		byToken: make(map[string]*Definition),
		byID:    make(map[int]string),
	}
	for _, def := range defs {
		defCopy := *def
		s.byToken[def.Token] = &defCopy
		s.byID[def.IDNumber] = def.Token
	}
	return s
}

// Exists reports whether token is registered
func (s *InMemoryStore) Exists(ctx context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byToken[token]
	return ok, nil
}

// Get retrieves a definition by token
func (s *InMemoryStore) Get(ctx context.Context, token string) (*Definition, error) {
	if token == "" {
		return nil, megaerr.InvalidArgument("item token is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.byToken[token]
	if !ok {
		return nil, megaerr.NotFoundf("item '%s' not found", token).
			WithMeta("token", token)
	}

	defCopy := *def
	return &defCopy, nil
}

// Register stores a new definition; token and id number must both be free
func (s *InMemoryStore) Register(ctx context.Context, def *Definition) error {
	if def == nil {
		return megaerr.InvalidArgument("item definition cannot be nil")
	}
	if def.Token == "" {
		return megaerr.InvalidArgument("item token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byToken[def.Token]; exists {
		return megaerr.AlreadyExistsf("item '%s' already exists", def.Token).
			WithMeta("token", def.Token)
	}
	if owner, taken := s.byID[def.IDNumber]; taken {
		return megaerr.AlreadyExistsf("item id %d already used by '%s'", def.IDNumber, owner).
			WithMeta("id_number", def.IDNumber)
	}

	defCopy := *def
	s.byToken[def.Token] = &defCopy
	s.byID[def.IDNumber] = def.Token
	return nil
}

// All returns every definition ordered by id number
func (s *InMemoryStore) All(ctx context.Context) ([]*Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Definition, 0, len(s.byToken))
	for _, def := range s.byToken {
		defCopy := *def
		result = append(result, &defCopy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IDNumber < result[j].IDNumber })
	return result, nil
}
