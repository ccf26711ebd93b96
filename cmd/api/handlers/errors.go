package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"flight-booking/cmd/api/dto"
	"flight-booking/cmd/api/services"
	"flight-booking/cmd/internal/logger"
	"flight-booking/listquery"
)

// statusFor 는 에러를 HTTP 상태 코드와 사용자 메시지로 바꾼다.
// 알 수 없는 에러는 내부 정보를 노출하지 않고 500 으로 응답한다.
func statusFor(err error) (int, string) {
	if se, ok := services.AsError(err); ok {
		switch se.Kind {
		case services.KindInvalid:
			return http.StatusBadRequest, se.Message
		case services.KindUnauthorized:
			return http.StatusUnauthorized, se.Message
		case services.KindForbidden:
			return http.StatusForbidden, se.Message
		case services.KindNotFound:
			return http.StatusNotFound, se.Message
		case services.KindConflict:
			return http.StatusConflict, se.Message
		}
	}

	var invalidPage *listquery.InvalidPageError
	if errors.As(err, &invalidPage) {
		return http.StatusBadRequest, invalidPage.Error()
	}
	var invalidFilter *listquery.InvalidFilterError
	if errors.As(err, &invalidFilter) {
		return http.StatusBadRequest, invalidFilter.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, services.ErrInvalidInput.Message
	}
	return http.StatusInternalServerError, "internal_server_error"
}

// writeError 는 JSON API 의 공통 에러 응답이다.
func writeError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	logError(c, status, err)
	c.AbortWithStatusJSON(status, dto.ErrorResponseDTO{Error: msg})
}

// bindError 는 요청 바인딩 실패를 400 으로 응답한다.
func bindError(c *gin.Context, err error) {
	logger.DebugWithFields("request binding failed", logger.Fields{
		"path":       c.FullPath(),
		"error":      err.Error(),
		"request_id": c.Request.Header.Get("X-Request-Id"),
	})
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: services.ErrInvalidInput.Message})
}

func logError(c *gin.Context, status int, err error) {
	fields := logger.Fields{
		"path":       c.FullPath(),
		"status":     status,
		"error":      err.Error(),
		"request_id": c.Request.Header.Get("X-Request-Id"),
		"span_id":    c.Request.Header.Get("X-Span-Id"),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", fields)
		return
	}
	logger.DebugWithFields("request rejected", fields)
}
