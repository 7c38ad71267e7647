package items

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

const (
	tokensKey = "items"
	idsKey    = "items:by_id"
)

type redisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed item store. Definitions are stored as JSON under
// item:<token>; a set tracks every token and a hash maps id numbers back to tokens.
func NewRedisStore(client redis.UniversalClient) Store {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisStore{client: client}
}

func (r *redisStore) key(token string) string {
	return fmt.Sprintf("item:%s", token)
}

func (r *redisStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check item existence: %w", err)
	}
	return n > 0, nil
}

func (r *redisStore) Get(ctx context.Context, token string) (*Definition, error) {
	if token == "" {
		return nil, megaerr.InvalidArgument("item token is required")
	}

	data, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, megaerr.NotFoundf("item '%s' not found", token).
				WithMeta("token", token)
		}
		return nil, fmt.Errorf("failed to get item from Redis: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item data: %w", err)
	}
	return &def, nil
}

func (r *redisStore) Register(ctx context.Context, def *Definition) error {
	if def == nil {
		return megaerr.InvalidArgument("item definition cannot be nil")
	}
	if def.Token == "" {
		return megaerr.InvalidArgument("item token is required")
	}

	exists, err := r.Exists(ctx, def.Token)
	if err != nil {
		return err
	}
	if exists {
		return megaerr.AlreadyExistsf("item '%s' already exists", def.Token).
			WithMeta("token", def.Token)
	}

	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal item data: %w", err)
	}

	claimed, err := r.client.HSetNX(ctx, idsKey, strconv.Itoa(def.IDNumber), def.Token).Result()
	if err != nil {
		return fmt.Errorf("failed to claim item id: %w", err)
	}
	if !claimed {
		return megaerr.AlreadyExistsf("item id %d already used", def.IDNumber).
			WithMeta("id_number", def.IDNumber)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(def.Token), string(data), 0)
	pipe.SAdd(ctx, tokensKey, def.Token)
	if _, err := pipe.Exec(ctx); err != nil {
		r.releaseClaim(ctx, def)
		return fmt.Errorf("failed to register item in Redis: %w", err)
	}

	return nil
}

// releaseClaim undoes a half-written registration so the id can be handed out again.
// If this fails too, All still reports the claimed id as used.
func (r *redisStore) releaseClaim(ctx context.Context, def *Definition) {
	if err := r.client.HDel(ctx, idsKey, strconv.Itoa(def.IDNumber)).Err(); err != nil {
		log.Printf("Failed to release item id %d for %s: %v", def.IDNumber, def.Token, err)
	}
	if err := r.client.Del(ctx, r.key(def.Token)).Err(); err != nil {
		log.Printf("Failed to remove partial item %s: %v", def.Token, err)
	}
}

// All returns every stored definition ordered by id. Ids claimed in the id hash without a
// stored definition come back as bare token/id records so they are never handed out twice.
func (r *redisStore) All(ctx context.Context) ([]*Definition, error) {
	tokens, err := r.client.SMembers(ctx, tokensKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list items from Redis: %w", err)
	}

	defs := make([]*Definition, len(tokens))

	g, ctx := errgroup.WithContext(ctx)
	for i, token := range tokens {
		i, token := i, token
		g.Go(func() error {
			def, err := r.Get(ctx, token)
			if err != nil {
				return fmt.Errorf("failed to get item %s: %w", token, err)
			}
			defs[i] = def
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	orphans, err := r.orphanClaims(ctx, defs)
	if err != nil {
		return nil, err
	}
	defs = append(defs, orphans...)

	sort.Slice(defs, func(i, j int) bool { return defs[i].IDNumber < defs[j].IDNumber })
	return defs, nil
}

func (r *redisStore) orphanClaims(ctx context.Context, defs []*Definition) ([]*Definition, error) {
	claims, err := r.client.HGetAll(ctx, idsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list item ids from Redis: %w", err)
	}

	stored := make(map[int]bool, len(defs))
	for _, def := range defs {
		stored[def.IDNumber] = true
	}

	var orphans []*Definition
	for field, token := range claims {
		id, err := strconv.Atoi(field)
		if err != nil || stored[id] {
			continue
		}
		orphans = append(orphans, &Definition{Token: token, IDNumber: id})
	}
	return orphans, nil
}
