package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tripweaver/pkg/logger"
)

// PlaceCache remembers destination -> place id resolutions so repeated
// generations for the same city skip the lookup round trip.
type PlaceCache interface {
	Get(ctx context.Context, destination string) (string, bool)
	Set(ctx context.Context, destination, placeID string)
}

const placeCacheTTL = 24 * time.Hour

type redisPlaceCache struct {
	client *redis.Client
}

// NewPlaceCache degrades to a no-op when redis is unavailable, so the
// cache never blocks itinerary generation.
func NewPlaceCache(client *redis.Client) PlaceCache {
	if client == nil {
		return noopPlaceCache{}
	}
	return &redisPlaceCache{client: client}
}

func (c *redisPlaceCache) Get(ctx context.Context, destination string) (string, bool) {
	val, err := c.client.Get(ctx, "place:"+destination).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Get().Warn("place cache read failed", zap.Error(err))
		}
		return "", false
	}
	return val, val != ""
}

func (c *redisPlaceCache) Set(ctx context.Context, destination, placeID string) {
	if err := c.client.Set(ctx, "place:"+destination, placeID, placeCacheTTL).Err(); err != nil {
		logger.Get().Warn("place cache write failed", zap.Error(err))
	}
}

type noopPlaceCache struct{}

func (noopPlaceCache) Get(context.Context, string) (string, bool) { return "", false }
func (noopPlaceCache) Set(context.Context, string, string)       {}
