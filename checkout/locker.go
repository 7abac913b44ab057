package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker serializes checkout per session. Two concurrent checkouts on one
// session would otherwise both read the same cart and both create an
// order.
type Locker interface {
	// TryLock reports whether the caller acquired the session's lock.
	TryLock(ctx context.Context, sessionID string) (bool, error)
	Unlock(ctx context.Context, sessionID string) error
}

// RedisLocker takes the lock with SET NX and a TTL so a crashed holder
// cannot wedge the session forever.
type RedisLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl}
}

func (l *RedisLocker) TryLock(ctx context.Context, sessionID string) (bool, error) {
	return l.rdb.SetNX(ctx, "checkout:lock:"+sessionID, "1", l.ttl).Result()
}

func (l *RedisLocker) Unlock(ctx context.Context, sessionID string) error {
	return l.rdb.Del(ctx, "checkout:lock:"+sessionID).Err()
}

// MemoryLocker is the in-process equivalent for tests and Redis-less runs.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[string]struct{})}
}

func (l *MemoryLocker) TryLock(_ context.Context, sessionID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.held[sessionID]; taken {
		return false, nil
	}
	l.held[sessionID] = struct{}{}
	return true, nil
}

func (l *MemoryLocker) Unlock(_ context.Context, sessionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, sessionID)
	return nil
}

var (
	_ Locker = (*RedisLocker)(nil)
	_ Locker = (*MemoryLocker)(nil)
)
