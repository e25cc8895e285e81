package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gogevgelija/gogevgelija-backend/config"
)

var (
	redisClient *redis.Client
	redisCtx    = context.Background()
)

// InitRedis connects the shared client used for refresh-token bookkeeping.
func InitRedis(cfg *config.Config) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return redisClient.Ping(redisCtx).Err()
}

func SetToken(key, value string, ttl time.Duration) error {
	return redisClient.Set(redisCtx, key, value, ttl).Err()
}

func GetToken(key string) (string, error) {
	return redisClient.Get(redisCtx, key).Result()
}

func DeleteToken(key string) error {
	return redisClient.Del(redisCtx, key).Err()
}
