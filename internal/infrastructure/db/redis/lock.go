package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 30 * time.Second

// GenerationLock guards assignment generation per group with a SETNX key.
// It is advisory: the store's read-if-exists-else-create contract makes a
// lost race harmless, so callers fail open when Redis is unreachable.
// Key format: genlock:<group_id>
type GenerationLock struct {
	client *redis.Client
}

// NewGenerationLock creates a GenerationLock wrapping the given Redis client.
func NewGenerationLock(client *redis.Client) *GenerationLock {
	return &GenerationLock{client: client}
}

// Acquire reports whether this process now holds the group's generation
// lock. The key expires after lockTTL in case Release is never reached.
func (l *GenerationLock) Acquire(ctx context.Context, groupID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(groupID), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire generation lock: %w", err)
	}
	return ok, nil
}

// Release drops the group's generation lock. Errors are ignored; the TTL
// bounds how long a stale key can linger.
func (l *GenerationLock) Release(ctx context.Context, groupID string) {
	_ = l.client.Del(ctx, l.key(groupID)).Err()
}

func (l *GenerationLock) key(groupID string) string {
	return fmt.Sprintf("genlock:%s", groupID)
}
