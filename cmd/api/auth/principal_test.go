package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestPrincipalContextRoundTrip(t *testing.T) {
	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Fatalf("expected no principal in empty context")
	}

	p := &Principal{UserID: 3, Username: "alice"}
	ctx := WithPrincipal(context.Background(), p)
	got, ok := PrincipalFromContext(ctx)
	if !ok || got != p {
		t.Fatalf("expected principal %v, got %v (ok=%t)", p, got, ok)
	}
	if got.Role() != RoleUser {
		t.Fatalf("expected role %q, got %q", RoleUser, got.Role())
	}
}

func TestPrincipalFromContextIgnoresNilPointer(t *testing.T) {
	ctx := WithPrincipal(context.Background(), nil)
	if _, ok := PrincipalFromContext(ctx); ok {
		t.Fatalf("expected nil principal to be treated as anonymous")
	}
}

func TestSetPrincipalVisibleFromGinAndRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ginCtx, _ := contextWithAuthorization("")

	admin := &Principal{UserID: 1, Username: "root", IsSuperuser: true}
	SetPrincipal(ginCtx, admin)

	got, ok := CurrentPrincipal(ginCtx)
	if !ok || got.Username != "root" || !got.IsAdmin() {
		t.Fatalf("unexpected principal from gin context: %+v", got)
	}
	fromReq, ok := PrincipalFromContext(ginCtx.Request.Context())
	if !ok || fromReq != admin {
		t.Fatalf("expected principal in request context")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal plain text")
	}

	ok, err := CheckPassword(hash, "s3cret")
	if err != nil || !ok {
		t.Fatalf("expected password to match, ok=%t err=%v", ok, err)
	}
	ok, err = CheckPassword(hash, "wrong")
	if err != nil || ok {
		t.Fatalf("expected mismatch without error, ok=%t err=%v", ok, err)
	}
}

func TestSessionCookieHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	opts := CookieOptions{Name: "fb_session", TTL: time.Hour}

	recorder := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(recorder)
	ginCtx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	SetSessionCookie(ginCtx, opts, "tok")

	setCookie := recorder.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "fb_session=tok") || !strings.Contains(setCookie, "HttpOnly") {
		t.Fatalf("unexpected Set-Cookie header %q", setCookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "fb_session", Value: "tok"})
	ginCtx2, _ := gin.CreateTestContext(httptest.NewRecorder())
	ginCtx2.Request = req
	if got := SessionTokenFromCookie(ginCtx2, "fb_session"); got != "tok" {
		t.Fatalf("expected cookie value tok, got %q", got)
	}
	if got := SessionTokenFromCookie(ginCtx2, "other"); got != "" {
		t.Fatalf("expected empty value for missing cookie, got %q", got)
	}

	token, err := NewSessionToken()
	if err != nil || len(token) < 40 {
		t.Fatalf("unexpected session token %q err=%v", token, err)
	}
}
