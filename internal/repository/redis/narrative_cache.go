package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shoeScout/domain"
)

const narrativeKeyPrefix = "narrative:"

// NarrativeCache stores generated explanations with a TTL so repeat requests
// with the same profile skip the model call.
type NarrativeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNarrativeCache(client *redis.Client, ttl time.Duration) *NarrativeCache {
	return &NarrativeCache{
		client: client,
		ttl:    ttl,
	}
}

// GetExplanation returns (nil, nil) on a miss.
func (c *NarrativeCache) GetExplanation(ctx context.Context, key string) (*domain.Explanation, error) {
	raw, err := c.client.Get(ctx, narrativeKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached explanation: %w", err)
	}

	var expl domain.Explanation
	if err := json.Unmarshal([]byte(raw), &expl); err != nil {
		return nil, fmt.Errorf("failed to decode cached explanation: %w", err)
	}

	return &expl, nil
}

func (c *NarrativeCache) StoreExplanation(ctx context.Context, key string, expl domain.Explanation) error {
	raw, err := json.Marshal(expl)
	if err != nil {
		return fmt.Errorf("failed to encode explanation: %w", err)
	}

	if err := c.client.Set(ctx, narrativeKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache explanation: %w", err)
	}

	return nil
}
