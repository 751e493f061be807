package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reasonbridge/internal/model"
)

// PreviewCache memoizes live-preview results keyed by content hash and
// sensitivity. Entries are short-lived; the preview path works without Redis
// and simply recomputes on a miss.
type PreviewCache interface {
	Get(ctx context.Context, contentHash string, sensitivity model.Sensitivity) (*model.PreviewResult, error)
	Set(ctx context.Context, contentHash string, sensitivity model.Sensitivity, result *model.PreviewResult) error
}

type previewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache
func NewPreviewCache(client *redis.Client) PreviewCache {
	return &previewCache{
		client: client,
		ttl:    30 * time.Second,
	}
}

func (c *previewCache) key(contentHash string, sensitivity model.Sensitivity) string {
	return fmt.Sprintf("preview:%s:%s", sensitivity, contentHash)
}

func (c *previewCache) Get(ctx context.Context, contentHash string, sensitivity model.Sensitivity) (*model.PreviewResult, error) {
	data, err := c.client.Get(ctx, c.key(contentHash, sensitivity)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.PreviewResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *previewCache) Set(ctx context.Context, contentHash string, sensitivity model.Sensitivity, result *model.PreviewResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(contentHash, sensitivity), data, c.ttl).Err()
}
