package cache

import (
	"context"
	"encoding/json"
	"time"

	"mela-ticketing/internal/model"

	"github.com/redis/go-redis/v9"
)

const dashboardKey = "admin:dashboard:summary"

type DashboardCache interface {
	// Get 回傳快取的彙總；cache miss 時回傳 (nil, nil)
	Get(ctx context.Context) (*model.DashboardSummary, error)
	Set(ctx context.Context, summary *model.DashboardSummary, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type RedisDashboardCache struct {
	client *redis.Client
}

func NewRedisDashboardCache(client *redis.Client) DashboardCache {
	return &RedisDashboardCache{
		client: client,
	}
}

func (c *RedisDashboardCache) Get(ctx context.Context) (*model.DashboardSummary, error) {
	raw, err := c.client.Get(ctx, dashboardKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary model.DashboardSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, summary *model.DashboardSummary, ttl time.Duration) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dashboardKey, raw, ttl).Err()
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, dashboardKey).Err()
}
