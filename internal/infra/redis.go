package infra

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"tripweaver/internal/config"
	"tripweaver/pkg/logger"
)

func InitRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Caching is best effort; the place lookup works without it.
		logger.Get().Warn("redis unreachable, place cache disabled: " + err.Error())
	}

	return client
}
