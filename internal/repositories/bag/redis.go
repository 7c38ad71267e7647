package bag

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// RedisBag keeps one hash per owner, bag:<owner>, field = token
type RedisBag struct {
	client  redis.UniversalClient
	ownerID string
}

// NewRedisBag creates a bag for ownerID
func NewRedisBag(client redis.UniversalClient, ownerID string) *RedisBag {
	if client == nil {
		panic("redis client cannot be nil")
	}
	if ownerID == "" {
		panic("owner ID is required")
	}
	return &RedisBag{client: client, ownerID: ownerID}
}

func (b *RedisBag) key() string {
	return fmt.Sprintf("bag:%s", b.ownerID)
}

// StoreItem increments the token's count. An increment that overflows the slot is undone.
func (b *RedisBag) StoreItem(ctx context.Context, token string, qty int) error {
	if err := validateDeposit(token, qty); err != nil {
		return err
	}

	held, err := b.client.HIncrBy(ctx, b.key(), token, int64(qty)).Result()
	if err != nil {
		return fmt.Errorf("failed to store %s in bag: %w", token, err)
	}
	if held > MaxPerSlot {
		if err := b.client.HIncrBy(ctx, b.key(), token, -int64(qty)).Err(); err != nil {
			return fmt.Errorf("failed to roll back %s overflow: %w", token, err)
		}
		return megaerr.Newf(megaerr.CodeInvalidArgument, "bag slot for %s is full", token).
			WithMeta("token", token)
	}
	return nil
}

// Quantity returns how many of token the bag holds
func (b *RedisBag) Quantity(ctx context.Context, token string) (int, error) {
	n, err := b.client.HGet(ctx, b.key(), token).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s from bag: %w", token, err)
	}
	return n, nil
}
