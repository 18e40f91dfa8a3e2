package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter    *rate.Limiter
	lastActive time.Time
}

// 全局 IP 限流器表
var ipLimiters = struct {
	sync.RWMutex
	m map[string]*ipLimiter
}{
	m: make(map[string]*ipLimiter),
}

// CleanupIdleLimiters 清理长时间不用的 limiter，由主程序的计划任务周期调用
func CleanupIdleLimiters() {
	ipLimiters.Lock()
	defer ipLimiters.Unlock()
	now := time.Now()
	for ip, l := range ipLimiters.m {
		if now.Sub(l.lastActive) > 2*time.Hour {
			delete(ipLimiters.m, ip)
		}
	}
}

// Gin 中间件：限流
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		ipLimiters.Lock()
		l, exists := ipLimiters.m[ip]
		if !exists {
			l = &ipLimiter{
				limiter: rate.NewLimiter(rate.Limit(100), 200), // 每秒 100 请求，突发 200
			}
			ipLimiters.m[ip] = l
		}
		l.lastActive = time.Now()
		ipLimiters.Unlock()

		if !l.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "请求过于频繁，请稍后再试",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
