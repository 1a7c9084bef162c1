package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InventoryInitLock is a short-lived advisory lock keyed by raffle id. It
// keeps concurrent first-reads of a raffle from all seeding the 100-ticket
// inventory at once; the unique index on (raffle_id, number) is the
// correctness backstop, the lock only avoids duplicate work.
type InventoryInitLock interface {
	// Acquire returns true when the caller holds the lock, with a token to
	// release it.
	Acquire(ctx context.Context, raffleID string) (bool, string, error)
	Release(ctx context.Context, raffleID string, token string) error
}

type InventoryInitLockImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewInventoryInitLock(client *redis.Client) InventoryInitLock {
	return &InventoryInitLockImpl{
		client: client,
		ttl:    10 * time.Second,
	}
}

func (l *InventoryInitLockImpl) key(raffleID string) string {
	return fmt.Sprintf("raffle:%s:init", raffleID)
}

func (l *InventoryInitLockImpl) Acquire(ctx context.Context, raffleID string) (bool, string, error) {
	token := fmt.Sprintf("%d", time.Now().UnixNano())
	ok, err := l.client.SetNX(ctx, l.key(raffleID), token, l.ttl).Result()
	if err != nil {
		return false, "", err
	}
	return ok, token, nil
}

// Release deletes the lock only if it still holds our token, so a lock that
// expired and was re-acquired by someone else is left alone.
func (l *InventoryInitLockImpl) Release(ctx context.Context, raffleID string, token string) error {
	key := l.key(raffleID)
	val, err := l.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil // already expired
	}
	if err != nil {
		return err
	}
	if val == token {
		return l.client.Del(ctx, key).Err()
	}
	return nil
}
