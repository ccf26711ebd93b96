package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/api/services"
	"flight-booking/cmd/internal/logger"
)

// PrincipalResolver 는 토큰/세션으로 로그인 사용자를 찾는다.
// *services.AccountService 가 구현한다.
type PrincipalResolver interface {
	PrincipalFromToken(ctx context.Context, token string) (*auth.Principal, error)
	PrincipalFromSession(ctx context.Context, token string) (*auth.Principal, error)
}

// Authenticate 는 Authorization: Bearer 헤더를 먼저 보고, 없으면 세션 쿠키를 본다.
// 로그인하지 않은 요청도 통과시키며, 로그인 여부는 RequireLogin/AdminAuth 가 판단한다.
// Bearer 헤더가 있는데 유효하지 않으면 바로 401 이다.
func Authenticate(resolver PrincipalResolver, cookie auth.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.HasAuthorization(c) {
			token, err := auth.BearerToken(c)
			if err != nil {
				logAuthFailure(c, "bearer", err)
				auth.AbortUnauthorized(c, err)
				return
			}
			p, err := resolver.PrincipalFromToken(c.Request.Context(), token)
			if err != nil {
				logAuthFailure(c, "bearer", err)
				auth.AbortUnauthorized(c, services.ErrLoginRequired)
				return
			}
			auth.SetPrincipal(c, p)
			c.Next()
			return
		}

		if token := auth.SessionTokenFromCookie(c, cookie.Name); token != "" {
			p, err := resolver.PrincipalFromSession(c.Request.Context(), token)
			switch {
			case err == nil:
				auth.SetPrincipal(c, p)
			case errors.Is(err, services.ErrLoginRequired):
				// 만료되었거나 비활성화된 세션은 쿠키를 지우고 익명으로 처리한다.
				auth.ClearSessionCookie(c, cookie)
			default:
				logAuthFailure(c, "session", err)
			}
		}
		c.Next()
	}
}

func logAuthFailure(c *gin.Context, method string, err error) {
	logger.DebugWithFields("authentication failed", logger.Fields{
		"method":     method,
		"path":       c.Request.URL.Path,
		"error":      err.Error(),
		"request_id": c.Request.Header.Get(headerRequestID),
	})
}

// RequireLogin 은 로그인하지 않은 JSON API 요청을 401 로 막는다.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.CurrentPrincipal(c); !ok {
			auth.AbortUnauthorized(c, services.ErrLoginRequired)
			return
		}
		c.Next()
	}
}

// AdminAuthMiddleware 는 슈퍼유저가 아닌 요청을 막는다. 익명은 401, 일반 사용자는 403.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.CurrentPrincipal(c)
		if !ok {
			auth.AbortUnauthorized(c, services.ErrLoginRequired)
			return
		}
		if !p.IsAdmin() {
			logger.InfoWithFields("access denied", logger.Fields{
				"username":   p.Username,
				"role":       p.Role(),
				"path":       c.Request.URL.Path,
				"request_id": c.Request.Header.Get(headerRequestID),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": services.ErrAdminRequired.Message})
			return
		}
		c.Next()
	}
}

// RedirectAnonymous 는 HTML 화면에서 로그인하지 않은 사용자를 target 으로 보낸다.
func RedirectAnonymous(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminPage 는 HTML 관리자 화면 가드다. 일반 사용자에게는 index 화면에 에러를 보여준다.
func AdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		if !p.IsAdmin() {
			c.HTML(http.StatusForbidden, "index.html", gin.H{
				"user":    p,
				"admin":   false,
				"message": services.ErrAdminRequired.Message,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
