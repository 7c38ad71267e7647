package messages

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

type redisCatalog struct {
	client redis.UniversalClient
}

// NewRedisCatalog stores each table as a hash, messages:<table>, field = id
func NewRedisCatalog(client redis.UniversalClient) Catalog {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisCatalog{client: client}
}

func (r *redisCatalog) key(table Table) string {
	return fmt.Sprintf("messages:%s", table)
}

func (r *redisCatalog) Set(ctx context.Context, table Table, id int, text string) error {
	if table == "" {
		return megaerr.InvalidArgument("message table is required")
	}
	if err := r.client.HSet(ctx, r.key(table), strconv.Itoa(id), text).Err(); err != nil {
		return fmt.Errorf("failed to set %s message in Redis: %w", table, err)
	}
	return nil
}

func (r *redisCatalog) Get(ctx context.Context, table Table, id int) (string, error) {
	text, err := r.client.HGet(ctx, r.key(table), strconv.Itoa(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", megaerr.NotFoundf("no %s entry for id %d", table, id)
		}
		return "", fmt.Errorf("failed to get %s message from Redis: %w", table, err)
	}
	return text, nil
}
