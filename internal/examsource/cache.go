package examsource

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"nuhub-backend/internal/models"
)

const cacheKey = "nu:exam_cache"

// Cached keeps the provider's exam list in redis for a bounded TTL so
// page loads don't hammer the upstream API. Cache errors fall through
// to the wrapped source.
type Cached struct {
	src    Source
	client *redis.Client
	ttl    time.Duration
}

func NewCached(src Source, client *redis.Client, ttl time.Duration) *Cached {
	return &Cached{src: src, client: client, ttl: ttl}
}

func (c *Cached) All(ctx context.Context) ([]models.Exam, error) {
	if raw, err := c.client.Get(ctx, cacheKey).Bytes(); err == nil {
		var exams []models.Exam
		if json.Unmarshal(raw, &exams) == nil {
			return exams, nil
		}
	}

	exams, err := c.src.All(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(exams); err == nil {
		c.client.Set(ctx, cacheKey, raw, c.ttl)
	}
	return exams, nil
}
