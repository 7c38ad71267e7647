package bag

import (
	"context"
	"sort"
	"sync"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// InMemoryBag counts items per token
type InMemoryBag struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewInMemoryBag creates an empty bag
func NewInMemoryBag() *InMemoryBag {
	return &InMemoryBag{counts: make(map[string]int)}
}

// StoreItem adds qty units; a deposit that would overflow the slot is rejected whole
func (b *InMemoryBag) StoreItem(ctx context.Context, token string, qty int) error {
	if err := validateDeposit(token, qty); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.counts[token]+qty > MaxPerSlot {
		return megaerr.Newf(megaerr.CodeInvalidArgument, "bag slot for %s is full", token).
			WithMeta("token", token).
			WithMeta("held", b.counts[token])
	}
	b.counts[token] += qty
	return nil
}

// Quantity returns how many of token the bag holds
func (b *InMemoryBag) Quantity(ctx context.Context, token string) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.counts[token], nil
}

// Tokens lists the held tokens, sorted
func (b *InMemoryBag) Tokens() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, 0, len(b.counts))
	for token := range b.counts {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

func validateDeposit(token string, qty int) error {
	if token == "" {
		return megaerr.InvalidArgument("item token is required")
	}
	if qty <= 0 {
		return megaerr.InvalidArgumentf("quantity must be positive, got %d", qty)
	}
	return nil
}
