package config

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// ErrRedisUnavailable Redis 未初始化或启动时连接失败（进程以降级模式运行）
var ErrRedisUnavailable = errors.New("redis 客户端未初始化")

func InitRedis() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	_, err := RedisClient.Ping(ctx).Result()
	return err
}

// AddToBlacklist 注销的令牌进黑名单，保留到其自然过期为止
func AddToBlacklist(token string, ttl time.Duration) error {
	if RedisClient == nil {
		return ErrRedisUnavailable
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	ctx := context.Background()
	return RedisClient.Set(ctx, "blacklist:"+token, "blacklisted", ttl).Err()
}

// IsBlacklisted 检查令牌是否已被注销
func IsBlacklisted(token string) (bool, error) {
	if RedisClient == nil {
		return false, ErrRedisUnavailable
	}
	ctx := context.Background()
	n, err := RedisClient.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
