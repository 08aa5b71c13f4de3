package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AlfonsoMarC/RogalikLessons/internal/service"
)

const (
	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "session"

	// ContextKeySubject is the Gin context key for the verified session subject.
	ContextKeySubject = "session_subject"
)

// publicExact and publicPrefixes classify request paths that are served
// without a session: the login entry points, the auth API itself, the
// health check, and static assets.
var publicExact = map[string]struct{}{
	"/login":       {},
	"/health":      {},
	"/favicon.ico": {},
	"/robots.txt":  {},
}

var publicPrefixes = []string{
	"/api/v1/auth/",
	"/public/",
	"/static/",
}

func isPublic(path string) bool {
	if _, ok := publicExact[path]; ok {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionGate intercepts every request. Public paths pass through; every
// other path requires a valid session cookie. Absent, expired, and tampered
// tokens are handled identically: the (possibly bad) cookie is cleared and
// the client is redirected to the login entry point. The gate never fails a
// request with an error — it only ever lets it through or redirects.
func SessionGate(authService *service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublic(path) {
			c.Next()
			return
		}

		token, _ := c.Cookie(SessionCookie)
		username, ok := authService.VerifySession(token)
		if !ok {
			log.Debug().Str("path", path).Msg("Rejected request without valid session")
			ClearSessionCookie(c)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(ContextKeySubject, username)
		c.Next()
	}
}

// GetSubject retrieves the verified session subject from the Gin context.
// Returns "" when the gate did not run or rejected the request.
func GetSubject(c *gin.Context) string {
	val, exists := c.Get(ContextKeySubject)
	if !exists {
		return ""
	}
	subject, _ := val.(string)
	return subject
}

// SetSessionCookie attaches the session token to the response:
// http-only, secure, same-site-lax, path /.
func SetSessionCookie(c *gin.Context, token string, maxAgeSeconds int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAgeSeconds, "/", "", true, true)
}

// ClearSessionCookie deletes the session cookie on the client.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", true, true)
}
