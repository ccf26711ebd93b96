package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Realm 은 401 응답의 WWW-Authenticate 헤더에 실리는 보호 영역 이름이다.
const Realm = "flight-booking"

// Authorization 헤더 해석 실패. 응답 본문의 error 필드로 그대로 나간다.
var (
	ErrNoAuthorization = errors.New("Authorization header is missing")
	ErrNotBearer       = errors.New("Authorization header must be 'Bearer <access_token>'")
	ErrBlankToken      = errors.New("Access token is blank")
)

// HasAuthorization 은 요청이 헤더 인증을 시도했는지 알려준다.
// 헤더가 없으면 세션 쿠키로 넘어간다.
func HasAuthorization(c *gin.Context) bool {
	return strings.TrimSpace(c.GetHeader("Authorization")) != ""
}

// BearerToken 은 /api/v1/login 이 발급한 access token 을 Authorization 헤더에서 꺼낸다.
func BearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if strings.TrimSpace(header) == "" {
		return "", ErrNoAuthorization
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNotBearer
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrBlankToken
	}
	return token, nil
}

// AbortUnauthorized 는 401 과 함께 {"error": "..."} 본문을 보낸다.
// services.Error 는 Message 만 노출되도록 Error() 를 구현하고 있다.
func AbortUnauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", fmt.Sprintf("Bearer realm=%q", Realm))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
