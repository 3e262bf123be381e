package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pulseward/icu-backend-go/internal/domain/dashboard"
	"github.com/redis/go-redis/v9"
)

const snapshotKey = "dashboard:snapshot"

// ErrSnapshotMiss is returned when no cached snapshot exists yet.
var ErrSnapshotMiss = errors.New("dashboard snapshot not cached")

// SnapshotCache stores the dashboard stats snapshot computed by the cron
// job so read requests never hit the aggregate queries directly.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

func (c *SnapshotCache) Get(ctx context.Context) (dashboard.Stats, error) {
	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dashboard.Stats{}, ErrSnapshotMiss
		}
		return dashboard.Stats{}, fmt.Errorf("failed to read dashboard snapshot: %w", err)
	}

	var stats dashboard.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to decode dashboard snapshot: %w", err)
	}

	return stats, nil
}

func (c *SnapshotCache) Set(ctx context.Context, stats dashboard.Stats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write dashboard snapshot: %w", err)
	}

	return nil
}
