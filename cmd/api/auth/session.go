package auth

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewSessionToken 은 세션 쿠키 값으로 쓸 256bit 난수 토큰을 만든다.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// CookieOptions 는 세션 쿠키 속성이다.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func SetSessionCookie(c *gin.Context, opts CookieOptions, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.Name, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
}

func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.Name, "", -1, "/", "", opts.Secure, true)
}

// SessionTokenFromCookie 는 세션 쿠키 값을 읽는다. 없으면 빈 문자열.
func SessionTokenFromCookie(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}
