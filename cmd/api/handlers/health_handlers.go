package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/dto"
)

// Pinger 는 헬스 체크 대상 저장소다. *pgxpool.Pool 이 그대로 만족한다.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc 는 함수를 Pinger 로 쓰기 위한 어댑터다.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

func ping(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return err.Error()
	}
	return "ok"
}

// HealthHandler godoc
// @Summary      헬스 체크
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Failure      503  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(postgres, mongo Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		res := dto.HealthResponseDTO{
			Status:   "ok",
			Postgres: ping(ctx, postgres),
			Mongo:    ping(ctx, mongo),
		}
		status := http.StatusOK
		if res.Postgres != "ok" || (res.Mongo != "ok" && res.Mongo != "disabled") {
			res.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, res)
	}
}
