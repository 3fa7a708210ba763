package core_fx

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/config"
	"tripweaver/internal/infra"
	"tripweaver/pkg/utils"
)

// The *config.Config itself is supplied by main after logging is set up.
var Module = fx.Provide(
	provideDB, provideRedis, provideTokenMaker)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

func provideRedis(cfg *config.Config) *redis.Client {
	return infra.InitRedis(cfg)
}

func provideTokenMaker(cfg *config.Config) *utils.TokenMaker {
	return utils.NewTokenMaker(cfg.JWTSecret, 0)
}
