package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL, so they survive process
// restarts and expire on their own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Get resolves a token to a user id
func (s *RedisStore) Get(ctx context.Context, token string) (uint, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNoSession
	}
	return uint(id), nil
}

// Set binds a token to a user id for the configured TTL
func (s *RedisStore) Set(ctx context.Context, token string, userID uint) error {
	return s.rdb.Set(ctx, keyPrefix+token, strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
}

// Clear removes the binding for a token
func (s *RedisStore) Clear(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
