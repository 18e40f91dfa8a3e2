package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Redis 连不上时进程以降级模式运行，黑名单操作必须报错而不是崩溃
func TestBlacklistWithoutRedis(t *testing.T) {
	saved := RedisClient
	RedisClient = nil
	t.Cleanup(func() { RedisClient = saved })

	err := AddToBlacklist("some-token", time.Minute)
	assert.ErrorIs(t, err, ErrRedisUnavailable)

	blacklisted, err := IsBlacklisted("some-token")
	assert.ErrorIs(t, err, ErrRedisUnavailable)
	assert.False(t, blacklisted)
}
