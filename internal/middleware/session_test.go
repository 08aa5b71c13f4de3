package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AlfonsoMarC/RogalikLessons/internal/config"
	"github.com/AlfonsoMarC/RogalikLessons/internal/service"
)

func setupGate(t *testing.T) (*service.AuthService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService, err := service.NewAuthService(&config.Config{
		AuthSecret: "gate-test-secret",
		SessionTTL: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	r := gin.New()
	r.Use(SessionGate(authService, zerolog.Nop()))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/api/v1/auth/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })
	r.GET("/api/v1/students", func(c *gin.Context) { c.String(http.StatusOK, GetSubject(c)) })

	return authService, r
}

func TestGateAllowsPublicPaths(t *testing.T) {
	_, r := setupGate(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/api/v1/auth/login"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s: status %d, want 200", tc.method, tc.path, w.Code)
		}
	}
}

func TestGateRedirectsWithoutSession(t *testing.T) {
	_, r := setupGate(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/students", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q, want /login", loc)
	}

	// The gate also instructs the client to drop any stored cookie.
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, SessionCookie+"=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Fatalf("expected session cookie deletion, got %q", setCookie)
	}
}

func TestGateAllowsValidSession(t *testing.T) {
	authService, r := setupGate(t)

	token, err := authService.IssueSession("admin")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "admin" {
		t.Fatalf("subject = %q, want admin", body)
	}
}

func TestGateRejectsBadSessions(t *testing.T) {
	authService, r := setupGate(t)

	token, err := authService.IssueSession("admin")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	// The payload segment always starts with base64 of '{', so swapping
	// the first character is a guaranteed mutation.
	cases := map[string]string{
		"Tampered":    "A" + token[1:],
		"Garbage":     "definitely-not-a-token",
		"EmptyCookie": "",
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: value})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status %d, want %d", w.Code, http.StatusSeeOther)
			}
			if loc := w.Header().Get("Location"); loc != "/login" {
				t.Fatalf("Location = %q, want /login", loc)
			}
		})
	}
}

func TestIsPublicClassification(t *testing.T) {
	public := []string{"/login", "/health", "/favicon.ico", "/robots.txt", "/api/v1/auth/login", "/static/app.css"}
	protected := []string{"/", "/api/v1/students", "/api/v1/lessons", "/api/v1/summary", "/loginx"}

	for _, p := range public {
		if !isPublic(p) {
			t.Errorf("isPublic(%q) = false, want true", p)
		}
	}
	for _, p := range protected {
		if isPublic(p) {
			t.Errorf("isPublic(%q) = true, want false", p)
		}
	}
}
