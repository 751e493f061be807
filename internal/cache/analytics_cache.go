package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"reasonbridge/internal/model"
)

// AnalyticsCache handles Redis operations for the feedback rollup
type AnalyticsCache interface {
	GetRollup(ctx context.Context) (*model.FeedbackRollup, error)
	SetRollup(ctx context.Context, rollup *model.FeedbackRollup) error
}

type analyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates an analytics cache
func NewAnalyticsCache(client *redis.Client) AnalyticsCache {
	return &analyticsCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

const rollupKey = "analytics:feedback:rollup"

func (c *analyticsCache) GetRollup(ctx context.Context) (*model.FeedbackRollup, error) {
	data, err := c.client.Get(ctx, rollupKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rollup model.FeedbackRollup
	if err := json.Unmarshal([]byte(data), &rollup); err != nil {
		return nil, err
	}
	return &rollup, nil
}

func (c *analyticsCache) SetRollup(ctx context.Context, rollup *model.FeedbackRollup) error {
	data, err := json.Marshal(rollup)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, rollupKey, data, c.ttl).Err()
}
