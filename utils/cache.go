package utils

import (
	"context"
	"time"

	"intothestar/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client (exchange-rate cache). It may be
// nil when Redis is unreachable; callers must treat the cache as optional.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client. Unlike the store,
// Redis is not required for correctness, so a failed ping only logs.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis cache unavailable, continuing without it", zap.Error(err))
		return
	}
	CacheClient = client
}

// GetCacheClient returns the generic cache client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
