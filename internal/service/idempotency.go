package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisIdempotencyStore keeps idempotency keys in Redis with a TTL.
type RedisIdempotencyStore struct {
	redis     *redis.Client
	ttl       time.Duration
	keyPrefix string
}

func NewRedisIdempotencyStore(redisClient *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	if ttl <= 0 {
		ttl = IdempotencyWindow
	}
	return &RedisIdempotencyStore{
		redis:     redisClient,
		ttl:       ttl,
		keyPrefix: "idempotency:plan_generation",
	}
}

func (s *RedisIdempotencyStore) key(profileID, key string) string {
	return fmt.Sprintf("%s:%s:%s", s.keyPrefix, profileID, key)
}

// Lookup returns the plan ID stored for key, if any.
func (s *RedisIdempotencyStore) Lookup(ctx context.Context, profileID, key string) (uuid.UUID, bool, error) {
	val, err := s.redis.Get(ctx, s.key(profileID, key)).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt idempotency entry: %w", err)
	}
	return id, true, nil
}

// Remember stores planID under key for the configured TTL.
func (s *RedisIdempotencyStore) Remember(ctx context.Context, profileID, key string, planID uuid.UUID) error {
	return s.redis.Set(ctx, s.key(profileID, key), planID.String(), s.ttl).Err()
}
