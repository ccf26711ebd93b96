package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/internal/logger"
)

// RequestLoggingMiddleware 는 요청 처리 시간과 로그인 사용자를 로깅한다.
// RequestTrace 와 달리 Authenticate 뒤에 붙어야 username 이 채워진다.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		durationMillis := time.Since(start).Milliseconds()

		username := "-"
		if p, ok := auth.CurrentPrincipal(c); ok {
			username = p.Username
		}

		logger.Log.Infof(
			"api_request method=%s path=%s status=%d duration_ms=%d user=%s",
			method,
			path,
			status,
			durationMillis,
			username,
		)
	}
}
