// Package presence mirrors user presence for other services of the marketplace.
package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "presence:"

// PresenceStore keeps one expiring key per online user.
// A crashed process leaves no stale online user once the TTL elapses.
type PresenceStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewPresenceStore(client redis.Cmdable, ttl time.Duration) *PresenceStore {
	return &PresenceStore{client: client, ttl: ttl}
}

func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func Key(userID string) string {
	return keyPrefix + userID
}

func (s *PresenceStore) SetOnline(ctx context.Context, userID string) error {
	return s.client.Set(ctx, Key(userID), time.Now().UTC().Format(time.RFC3339), s.ttl).Err()
}

func (s *PresenceStore) SetOffline(ctx context.Context, userID string) error {
	return s.client.Del(ctx, Key(userID)).Err()
}

// IsOnline is what other services call; an absent key means offline.
func (s *PresenceStore) IsOnline(ctx context.Context, userID string) (bool, error) {
	n, err := s.client.Exists(ctx, Key(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
