package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func key(id string) string { return "session:" + id }

func (s *RedisStore) Save(ctx context.Context, id string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(id), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisStore) Lookup(ctx context.Context, id string) (uint, error) {
	v, err := s.rdb.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("session lookup: %w", err)
	}
	userID, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session entry %q: %w", id, err)
	}
	return uint(userID), nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}
