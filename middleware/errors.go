package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// ErrorHandler 唯一的错误出口：服务层抛出的类型化错误在这里翻译成HTTP状态码，
// 控制器自身不捕获错误。响应体固定为 statusCode/message/exception/timestamp 四个字段。
func ErrorHandler(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		exception := "InternalServerError"

		var appErr *model.AppError
		if errors.As(err, &appErr) {
			exception = string(appErr.Kind)
			switch appErr.Kind {
			case model.KindBadRequest:
				status = http.StatusBadRequest
			case model.KindUnauthorized:
				status = http.StatusUnauthorized
			case model.KindNotFound:
				status = http.StatusNotFound
			case model.KindConflict:
				status = http.StatusConflict
			}
		} else {
			utils.LogError(logger, fmt.Sprintf("未处理的错误: %s %s", c.Request.Method, c.Request.URL.Path), err)
		}

		c.JSON(status, gin.H{
			"statusCode": status,
			"message":    err.Error(),
			"exception":  exception,
			"timestamp":  time.Now().UTC(),
		})
	}
}
