package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

var gateSecret = []byte("gate-test-secret")

func gatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", SessionGate(gateSecret), RequireAdmin(), func(c *gin.Context) {
		sess, _ := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "role": sess.Role})
	})
	return r
}

func mintToken(t *testing.T, role string) string {
	t.Helper()
	svc := services.AuthService{Secret: gateSecret}
	token, err := svc.MintToken(models.User{ID: 7, Role: role})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	return token
}

func TestSessionGate_BrowserWithoutSessionRedirectsToLogin(t *testing.T) {
	r := gatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/auth/login" {
		t.Fatalf("expected redirect to /auth/login, got %q", loc)
	}
}

func TestSessionGate_APIClientWithoutSessionGets401(t *testing.T) {
	r := gatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSessionGate_GarbageTokenRejected(t *testing.T) {
	r := gatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAdmin_NonAdminBrowserRedirectsToForbidden(t *testing.T) {
	r := gatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: mintToken(t, domain.RoleUser)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/403" {
		t.Fatalf("expected redirect to /403, got %q", loc)
	}
}

func TestRequireAdmin_NonAdminAPIClientGets403(t *testing.T) {
	r := gatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, domain.RoleUser))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	r := gatedRouter(t)

	for _, carry := range []string{"bearer", "cookie"} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if carry == "bearer" {
			req.Header.Set("Authorization", "Bearer "+mintToken(t, domain.RoleAdmin))
		} else {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: mintToken(t, domain.RoleAdmin)})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", carry, w.Code)
		}
	}
}
