package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 30 * time.Second

// releaseScript deletes the marker only if it still carries the caller's
// token, so a holder whose TTL ran out cannot remove a newer holder's marker.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// DeletionLock marks a freelancer as being deleted so two cascade deletions
// of the same record cannot run at once. The TTL bounds how long a crashed
// holder can block others.
// Key format: lock:freelancer-delete:<freelancer_id>
type DeletionLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeletionLock wraps client. A non-positive ttl uses defaultLockTTL.
func NewDeletionLock(client *redis.Client, ttl time.Duration) *DeletionLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &DeletionLock{client: client, ttl: ttl}
}

// Acquire reports false when another deletion already holds the marker.
func (l *DeletionLock) Acquire(ctx context.Context, freelancerID string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key(freelancerID), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire deletion lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *DeletionLock) Release(ctx context.Context, freelancerID, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key(freelancerID)}, token).Err(); err != nil {
		return fmt.Errorf("release deletion lock: %w", err)
	}
	return nil
}

func (l *DeletionLock) key(freelancerID string) string {
	return fmt.Sprintf("lock:freelancer-delete:%s", freelancerID)
}
