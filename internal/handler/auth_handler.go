package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AlfonsoMarC/RogalikLessons/internal/config"
	"github.com/AlfonsoMarC/RogalikLessons/internal/middleware"
	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
	"github.com/AlfonsoMarC/RogalikLessons/internal/response"
	"github.com/AlfonsoMarC/RogalikLessons/internal/service"
	"github.com/AlfonsoMarC/RogalikLessons/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg, log: log}
}

// Login godoc
// POST /api/v1/auth/login
// Validates the admin credential pair and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.authService.CheckCredentials(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrAdminNotConfigured) {
			h.log.Error().Msg("ADMIN_USERNAME/ADMIN_PASSWORD are not configured")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.IssueSession(req.Username)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to issue session token")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	middleware.SetSessionCookie(c, token, int(h.cfg.SessionTTL.Seconds()))
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

// Logout godoc
// POST /api/v1/auth/logout
// Clears the session cookie. The token itself stays valid until expiry;
// there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

// Me godoc
// GET /api/v1/auth/me
// Reports the current session subject. The auth API is public for the gate,
// so this endpoint verifies the cookie itself.
func (h *AuthHandler) Me(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	username, ok := h.authService.VerifySession(token)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"username": username})
}
