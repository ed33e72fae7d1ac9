package repository

import (
	"context"
	"time"

	"storefront_settlement/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	processedKeyPrefix        = "processed:"
	DefaultProcessedMarkerTTL = 7 * 24 * time.Hour
)

// ProcessedMarkerRedisRepository remembers which events a consumer already
// applied. Markers expire after ttl; redeliveries older than that fall back
// on the stores' own conditional writes.
type ProcessedMarkerRedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.IProcessedMarkerStore = (*ProcessedMarkerRedisRepository)(nil)

func NewProcessedMarkerRedisRepository(rdb redis.Cmdable, ttl time.Duration) *ProcessedMarkerRedisRepository {
	if ttl <= 0 {
		ttl = DefaultProcessedMarkerTTL
	}
	return &ProcessedMarkerRedisRepository{rdb: rdb, ttl: ttl}
}

func (r *ProcessedMarkerRedisRepository) IsProcessed(ctx context.Context, consumer, key string) (bool, error) {
	n, err := r.rdb.Exists(ctx, processedKey(consumer, key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProcessedMarkerRedisRepository) MarkProcessed(ctx context.Context, consumer, key string) error {
	return r.rdb.SetNX(ctx, processedKey(consumer, key), time.Now().UTC().Format(time.RFC3339), r.ttl).Err()
}

func processedKey(consumer, key string) string {
	return processedKeyPrefix + consumer + ":" + key
}
