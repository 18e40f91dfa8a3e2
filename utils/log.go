package utils

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

// NewLogger 为某个服务创建带前缀的日志器；
// 各服务通过构造函数注入，不依赖进程级单例
func NewLogger(prefix string) *log.Logger {
	return log.New(os.Stdout, "["+prefix+"] ", log.LstdFlags)
}

// Fail 把错误挂到上下文，交给边界中间件统一翻译成HTTP响应
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// 错误日志记录函数
func LogError(logger *log.Logger, context string, err error) {
	if err != nil {
		logger.Printf("[ERROR] %s: %v", context, err)
	} else {
		logger.Printf("[ERROR] %s", context)
	}
}
