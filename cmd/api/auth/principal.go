package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type ctxKey struct{}

// GinPrincipalKey 는 gin 컨텍스트에 Principal 을 저장할 때 쓰는 키다.
const GinPrincipalKey = "principal"

// Principal 은 현재 요청을 보낸 로그인 사용자다.
// SessionToken 은 쿠키 세션으로 인증된 경우에만 채워진다.
type Principal struct {
	UserID       int64
	Username     string
	IsSuperuser  bool
	SessionToken string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.IsSuperuser
}

func (p *Principal) Role() string {
	if p.IsAdmin() {
		return RoleAdmin
	}
	return RoleUser
}

// WithPrincipal 은 p 를 담은 새 컨텍스트를 반환한다.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFromContext 는 로그인 사용자를 꺼낸다. 익명 요청이면 (nil, false).
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Principal)
	return p, ok && p != nil
}

// SetPrincipal 은 gin 컨텍스트와 요청 컨텍스트 양쪽에 p 를 저장한다.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(GinPrincipalKey, p)
	c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), p))
}

// CurrentPrincipal 은 gin 핸들러에서 로그인 사용자를 꺼낸다.
func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	if v, ok := c.Get(GinPrincipalKey); ok {
		if p, ok := v.(*Principal); ok && p != nil {
			return p, true
		}
	}
	return PrincipalFromContext(c.Request.Context())
}
