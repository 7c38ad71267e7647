package party

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/megastones/internal/domain/creature"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
	"github.com/KirkDiggler/megastones/internal/uuid"
)

// CreatureData is the stored form of a party member
type CreatureData struct {
	*creature.Creature

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a Redis-backed party repository.
// Creatures live at creature:<id>; owner:<id>:party is a list holding party order.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: gen,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("creature:%s", id)
}

func (r *redisRepo) ownerPartyKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:party", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, c *creature.Creature) error {
	if err := validateCreate(c); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(c.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check creature existence: %w", err)
	}
	if exists > 0 {
		return megaerr.AlreadyExistsf("creature with ID '%s' already exists", c.ID).
			WithMeta("creature_id", c.ID)
	}

	now := r.now()
	jsonData, err := json.Marshal(CreatureData{Creature: c, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return fmt.Errorf("failed to marshal creature: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(c.ID), string(jsonData), 0)
	pipe.RPush(ctx, r.ownerPartyKey(c.OwnerID), c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create creature: %w", err)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*creature.Creature, error) {
	if id == "" {
		return nil, megaerr.InvalidArgument("creature ID is required")
	}
	data, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return data.Creature, nil
}

func (r *redisRepo) load(ctx context.Context, id string) (*CreatureData, error) {
	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, megaerr.NotFoundf("creature with ID '%s' not found", id).
			WithMeta("creature_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get creature: %w", err)
	}

	data := &CreatureData{Creature: &creature.Creature{}}
	if err := json.Unmarshal([]byte(jsonData), data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal creature: %w", err)
	}
	return data, nil
}

// ListByOwner loads every party member concurrently. Members that vanished are skipped.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*creature.Creature, error) {
	if ownerID == "" {
		return nil, megaerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.LRange(ctx, r.ownerPartyKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list party: %w", err)
	}

	loaded := make([]*creature.Creature, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			c, err := r.Get(gctx, id)
			if megaerr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			loaded[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*creature.Creature, 0, len(loaded))
	for _, c := range loaded {
		if c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *redisRepo) Update(ctx context.Context, c *creature.Creature) error {
	if c == nil {
		return megaerr.InvalidArgument("creature cannot be nil")
	}
	if c.ID == "" {
		return megaerr.InvalidArgument("creature ID is required")
	}

	existing, err := r.load(ctx, c.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != c.OwnerID {
		return megaerr.InvalidArgumentf("creature '%s' cannot change owner", c.ID)
	}

	jsonData, err := json.Marshal(CreatureData{Creature: c, CreatedAt: existing.CreatedAt, UpdatedAt: r.now()})
	if err != nil {
		return fmt.Errorf("failed to marshal creature: %w", err)
	}
	if err := r.client.Set(ctx, r.key(c.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update creature: %w", err)
	}
	return nil
}
