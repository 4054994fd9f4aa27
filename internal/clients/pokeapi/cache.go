package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/gym-battle/internal/errors"
	redisclient "github.com/KirkDiggler/gym-battle/internal/redis"
)

//go:generate mockgen -destination=mock/mock_cache.go -package=pokeapimock github.com/KirkDiggler/gym-battle/internal/clients/pokeapi RecordCache

const (
	recordKeyPrefix  = "pokeapi:"
	defaultRecordTTL = 24 * time.Hour
)

// RecordCache persists normalized provider records across restarts
type RecordCache interface {
	// Get decodes the record into dest, reporting false on a miss
	Get(ctx context.Context, kind, key string, dest any) (bool, error)
	// Set stores the record
	Set(ctx context.Context, kind, key string, value any) error
}

// RedisRecordCacheConfig configures the Redis record cache
type RedisRecordCacheConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisRecordCacheConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

type redisRecordCache struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRecordCache stores records as JSON under pokeapi:{kind}:{key}
func NewRedisRecordCache(cfg *RedisRecordCacheConfig) (RecordCache, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultRecordTTL
	}

	return &redisRecordCache{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

func (c *redisRecordCache) Get(ctx context.Context, kind, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, recordKey(kind, key)).Bytes()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to read cached %s", kind)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cached %s", kind)
	}
	return true, nil
}

func (c *redisRecordCache) Set(ctx context.Context, kind, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", kind)
	}

	if err := c.client.Set(ctx, recordKey(kind, key), raw, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to cache %s", kind)
	}
	return nil
}

func recordKey(kind, key string) string {
	return fmt.Sprintf("%s%s:%s", recordKeyPrefix, kind, key)
}
