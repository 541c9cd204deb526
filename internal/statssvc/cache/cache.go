package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wordrush/boggle-services/internal/comm"
)

// TopTTL bounds how stale a cached leaderboard page may get.
const TopTTL = 30 * time.Second

// Cache keeps leaderboard pages in Redis so reads do not hit Postgres on
// every request.
type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func topKey(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}

// GetTop returns the cached page for the limit, and whether it was present.
func (c *Cache) GetTop(ctx context.Context, limit int) ([]*comm.LeaderboardEntry, bool) {
	data, err := c.client.Get(ctx, topKey(limit)).Bytes()
	if err != nil {
		// redis.Nil and transport errors are both cache misses here
		return nil, false
	}

	entries := []*comm.LeaderboardEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// SetTop stores the page for the limit with the cache TTL.
func (c *Cache) SetTop(ctx context.Context, limit int, entries []*comm.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling leaderboard page: %w", err)
	}
	return c.client.Set(ctx, topKey(limit), data, TopTTL).Err()
}
