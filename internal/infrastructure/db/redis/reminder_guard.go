package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 36 * time.Hour

// ReminderGuard provides per-user per-day send deduplication backed by Redis.
// Key format: reminder:<user_id>:<yyyy-mm-dd>
type ReminderGuard struct {
	client *redis.Client
}

// NewReminderGuard creates a ReminderGuard wrapping the given Redis client.
func NewReminderGuard(client *redis.Client) *ReminderGuard {
	return &ReminderGuard{client: client}
}

// AlreadySent reports whether this user's reminder went out on the given day.
func (g *ReminderGuard) AlreadySent(ctx context.Context, userID string, day time.Time) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(userID, day)).Result()
	if err != nil {
		return false, fmt.Errorf("reminder guard check: %w", err)
	}
	return n > 0, nil
}

// MarkSent records today's send (expires after guardTTL, comfortably past
// the next scheduled run).
func (g *ReminderGuard) MarkSent(ctx context.Context, userID string, day time.Time) error {
	return g.client.Set(ctx, g.key(userID, day), "1", guardTTL).Err()
}

func (g *ReminderGuard) key(userID string, day time.Time) string {
	return fmt.Sprintf("reminder:%s:%s", userID, day.Format("2006-01-02"))
}
