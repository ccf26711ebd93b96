package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/api/services"
)

type fakeResolver struct {
	tokens   map[string]*auth.Principal
	sessions map[string]*auth.Principal
}

func (f fakeResolver) PrincipalFromToken(_ context.Context, token string) (*auth.Principal, error) {
	if p, ok := f.tokens[token]; ok {
		return p, nil
	}
	return nil, services.ErrLoginRequired
}

func (f fakeResolver) PrincipalFromSession(_ context.Context, token string) (*auth.Principal, error) {
	if p, ok := f.sessions[token]; ok {
		return p, nil
	}
	return nil, services.ErrLoginRequired
}

var (
	testCookie = auth.CookieOptions{Name: "flight_session"}
	alice      = &auth.Principal{UserID: 2, Username: "alice"}
	root       = &auth.Principal{UserID: 1, Username: "root", IsSuperuser: true}
)

func newEngine(guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	resolver := fakeResolver{
		tokens:   map[string]*auth.Principal{"alice-jwt": alice, "root-jwt": root},
		sessions: map[string]*auth.Principal{"alice-session": alice},
	}
	r.Use(Authenticate(resolver, testCookie))
	handlers := append(guards, func(c *gin.Context) {
		name := "anonymous"
		if p, ok := auth.CurrentPrincipal(c); ok {
			name = p.Username
		}
		c.String(http.StatusOK, name)
	})
	r.GET("/", handlers...)
	return r
}

func serve(r *gin.Engine, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func session(token string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: testCookie.Name, Value: token}) }
}

func TestAuthenticateAnonymousPassesThrough(t *testing.T) {
	w := serve(newEngine(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestAuthenticateBearer(t *testing.T) {
	w := serve(newEngine(), bearer("alice-jwt"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestAuthenticateRejectsInvalidBearer(t *testing.T) {
	w := serve(newEngine(), bearer("forged"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Login required"}`, w.Body.String())
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), auth.Realm)

	w = serve(newEngine(), func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authorization header must be 'Bearer <access_token>'"}`, w.Body.String())
}

func TestAuthenticateSessionCookie(t *testing.T) {
	w := serve(newEngine(), session("alice-session"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestAuthenticateClearsUnknownSessionCookie(t *testing.T) {
	w := serve(newEngine(), session("expired"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	res := w.Result()
	defer res.Body.Close()
	require.NotEmpty(t, res.Cookies())
	assert.Equal(t, testCookie.Name, res.Cookies()[0].Name)
	assert.Less(t, res.Cookies()[0].MaxAge, 0)
}

func TestRequireLogin(t *testing.T) {
	r := newEngine(RequireLogin())
	assert.Equal(t, http.StatusUnauthorized, serve(r, nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, session("alice-session")).Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := newEngine(AdminAuthMiddleware())

	tests := []struct {
		name   string
		mutate func(*http.Request)
		want   int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"regular user", bearer("alice-jwt"), http.StatusForbidden},
		{"superuser", bearer("root-jwt"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(r, tt.mutate).Code)
		})
	}
}

func TestRedirectAnonymous(t *testing.T) {
	r := newEngine(RedirectAnonymous("/"))
	w := serve(r, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRedactBody(t *testing.T) {
	assert.Equal(t,
		`{"username":"alice","password":"***","password_repeat":"***"}`,
		redactBody(`{"username":"alice","password":"s3cr\"et","password_repeat":"x"}`))
	assert.Equal(t,
		"username=alice&password=***",
		redactBody("username=alice&password=hunter2"))
}

func TestRequestTraceSetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTrace())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetHeader(headerRequestID)) })

	w := serve(r, func(req *http.Request) { req.Header.Set(headerRequestID, "req-1") })
	assert.Equal(t, "req-1", w.Header().Get(headerRequestID))
	assert.Equal(t, "0", w.Header().Get(headerSpanID))
	assert.Equal(t, "req-1", w.Body.String())

	w = serve(r, nil)
	assert.NotEmpty(t, w.Header().Get(headerRequestID))
}
