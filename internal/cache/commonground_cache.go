package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reasonbridge/internal/model"
)

// CommonGroundCache handles Redis operations for per-topic common-ground
// summaries
type CommonGroundCache interface {
	Get(ctx context.Context, topicID string) (*model.CommonGroundSummary, error)
	Set(ctx context.Context, summary *model.CommonGroundSummary) error
}

type commonGroundCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCommonGroundCache creates a common-ground cache
func NewCommonGroundCache(client *redis.Client) CommonGroundCache {
	return &commonGroundCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *commonGroundCache) key(topicID string) string {
	return fmt.Sprintf("topic:%s:commonground", topicID)
}

func (c *commonGroundCache) Get(ctx context.Context, topicID string) (*model.CommonGroundSummary, error) {
	data, err := c.client.Get(ctx, c.key(topicID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.CommonGroundSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *commonGroundCache) Set(ctx context.Context, summary *model.CommonGroundSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(summary.TopicID), data, c.ttl).Err()
}
