package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edudash/internal/models"
	"edudash/internal/token"
)

func authTestRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Authenticate(tokens, zap.NewNop()), func(c *gin.Context) {
		userID, _ := UserIDFromContext(c)
		role, _ := RoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": role})
	})
	return router
}

func TestTokenFromRequestPrefersHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer header-token")
	c.Request.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "cookie-token"})

	if got := TokenFromRequest(c); got != "header-token" {
		t.Fatalf("expected header token, got %q", got)
	}
}

func TestTokenFromRequestFallsBackToCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "cookie-token"})

	if got := TokenFromRequest(c); got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", got)
	}
}

func TestTokenFromRequestRejectsMalformedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Basic abc123")

	if got := TokenFromRequest(c); got != "" {
		t.Fatalf("expected empty token for non-bearer header, got %q", got)
	}
}

func TestAuthenticateSetsPrincipal(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	router := authTestRouter(tokens)

	signed, _, err := tokens.Issue(&models.User{ID: "user-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthenticateDistinguishesExpiredFromInvalid(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	router := authTestRouter(tokens)

	expiredIssuer := token.NewService("test-secret", -time.Hour)
	expired, _, err := expiredIssuer.Issue(&models.User{ID: "user-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "Token expired") {
		t.Fatalf("expected expired message, got %s", body)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "Invalid token") {
		t.Fatalf("expected invalid message, got %s", body)
	}
}
