package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 48 * time.Hour

// ReminderDedup prevents the reminder worker from notifying about the same
// document twice on the same day. Key format: reminder:<document_id>:<date>
type ReminderDedup struct {
	client *redis.Client
}

// NewReminderDedup creates a ReminderDedup wrapping the given Redis client.
func NewReminderDedup(client *redis.Client) *ReminderDedup {
	return &ReminderDedup{client: client}
}

// Seen reports whether a reminder for this document was already sent today.
func (d *ReminderDedup) Seen(ctx context.Context, documentID string, day time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(documentID, day)).Result()
	if err != nil {
		return false, fmt.Errorf("reminder dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a reminder was sent (expires after dedupTTL).
func (d *ReminderDedup) Mark(ctx context.Context, documentID string, day time.Time) error {
	return d.client.Set(ctx, d.key(documentID, day), "1", dedupTTL).Err()
}

func (d *ReminderDedup) key(documentID string, day time.Time) string {
	return fmt.Sprintf("reminder:%s:%s", documentID, day.UTC().Format("2006-01-02"))
}
