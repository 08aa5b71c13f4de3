package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AlfonsoMarC/RogalikLessons/internal/config"
	"github.com/AlfonsoMarC/RogalikLessons/internal/middleware"
	"github.com/AlfonsoMarC/RogalikLessons/internal/service"
	"github.com/AlfonsoMarC/RogalikLessons/internal/validator"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Setup()

	cfg := &config.Config{
		AuthSecret:    "handler-test-secret",
		SessionTTL:    30 * 24 * time.Hour,
		AdminUsername: "admin",
		AdminPassword: "hunter22",
	}

	authService, err := service.NewAuthService(cfg)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	h := NewAuthHandler(authService, cfg, zerolog.Nop())

	r := gin.New()
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/logout", h.Logout)
	r.GET("/api/v1/auth/me", h.Me)

	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/login", `{"username":"admin","password":"hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", w.Code, w.Body.String())
	}

	setCookie := w.Header().Get("Set-Cookie")
	for _, attr := range []string{"session=", "Path=/", "Max-Age=2592000", "HttpOnly", "Secure", "SameSite=Lax"} {
		if !strings.Contains(setCookie, attr) {
			t.Errorf("Set-Cookie missing %q: %s", attr, setCookie)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupAuthRouter(t)

	cases := map[string]string{
		"WrongPassword": `{"username":"admin","password":"wrong"}`,
		"WrongUsername": `{"username":"intruder","password":"hunter22"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := postJSON(r, "/api/v1/auth/login", body)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status %d, want 401", w.Code)
			}
			if strings.Contains(w.Header().Get("Set-Cookie"), "session=") {
				t.Fatal("failed login must not set a session cookie")
			}
		})
	}
}

func TestLoginValidatesPayload(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/login", `{"username":"admin"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestMeReportsSessionSubject(t *testing.T) {
	r := setupAuthRouter(t)

	login := postJSON(r, "/api/v1/auth/login", `{"username":"admin","password":"hunter22"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login failed: %d", login.Code)
	}
	cookies := login.Result().Cookies()

	t.Run("WithSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"username":"admin"`) {
			t.Fatalf("body missing subject: %s", w.Body.String())
		}
	})

	t.Run("WithoutSession", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status %d, want 401", w.Code)
		}
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "session=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Fatalf("expected cookie deletion, got %q", setCookie)
	}
}

func TestLoginFailsWithoutConfiguredAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	cfg := &config.Config{AuthSecret: "s", SessionTTL: time.Hour}
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	h := NewAuthHandler(authService, cfg, zerolog.Nop())

	r := gin.New()
	r.POST("/api/v1/auth/login", h.Login)

	w := postJSON(r, "/api/v1/auth/login", `{"username":"admin","password":"x"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
}

// Guards against the middleware cookie name drifting from the handlers.
func TestSessionCookieName(t *testing.T) {
	if middleware.SessionCookie != "session" {
		t.Fatalf("session cookie name = %q, want %q", middleware.SessionCookie, "session")
	}
}
