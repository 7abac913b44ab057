package cart

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session's cart in a Redis hash keyed by session
// id, field = item id, value = quantity. The TTL is refreshed on every
// write so an abandoned cart expires with its session.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string { return "cart:" + sessionID }

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Cart, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	c := make(Cart, len(fields))
	for field, val := range fields {
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(val)
		if err != nil || qty <= 0 {
			continue
		}
		c[uint(id)] = qty
	}
	return c, nil
}

func (s *RedisStore) Add(ctx context.Context, sessionID string, itemID uint, quantity int) (Cart, error) {
	if err := validate(itemID, quantity); err != nil {
		return nil, err
	}
	key := s.key(sessionID)
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, strconv.FormatUint(uint64(itemID), 10), int64(quantity))
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

func (s *RedisStore) Remove(ctx context.Context, sessionID string, itemID uint) (Cart, error) {
	if err := s.rdb.HDel(ctx, s.key(sessionID), strconv.FormatUint(uint64(itemID), 10)).Err(); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, s.key(sessionID)).Err()
}

var _ Store = (*RedisStore)(nil)
