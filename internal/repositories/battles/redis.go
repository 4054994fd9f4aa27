package battles

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	redisclient "github.com/KirkDiggler/gym-battle/internal/redis"
)

const (
	// Key pattern: battle:{battle_id}
	battleKeyPrefix = "battle:"
	defaultTTL      = 2 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// TTL bounds how long an untouched battle survives; each save refreshes it
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for battles
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save serializes the snapshot as JSON and refreshes the TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Battle)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle")
	}

	if err := r.client.Set(ctx, buildKey(input.Battle.ID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store battle in Redis")
	}

	return &SaveOutput{}, nil
}

// Get retrieves a battle snapshot by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.BattleID); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, buildKey(input.BattleID)).Bytes()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("battle %s not found", input.BattleID)
		}
		return nil, errors.Wrapf(err, "failed to get battle from Redis")
	}

	var battle entities.BattleState
	if err := json.Unmarshal(data, &battle); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle")
	}

	return &GetOutput{Battle: &battle}, nil
}

// Delete removes a battle snapshot
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.BattleID); err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, buildKey(input.BattleID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete battle from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}

	return &DeleteOutput{}, nil
}

func buildKey(battleID string) string {
	return battleKeyPrefix + battleID
}
