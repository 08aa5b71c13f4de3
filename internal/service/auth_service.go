package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlfonsoMarC/RogalikLessons/internal/config"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSecretMissing      = errors.New("AUTH_SECRET is not set")
	ErrAdminNotConfigured = errors.New("admin credentials are not configured")
)

// sessionPayload is the signed content of a session token. Exp is seconds
// since epoch; after it passes the token is dead — there is no revocation
// list and no server-side session store.
type sessionPayload struct {
	Username string `json:"username"`
	Exp      int64  `json:"exp"`
}

// AuthService issues and verifies the stateless session credential and
// checks the single admin login against the configured credentials.
// All methods are pure computations over the immutable secret and are safe
// for concurrent use.
type AuthService struct {
	cfg    *config.Config
	secret []byte

	// now is swapped out in tests.
	now func() time.Time
}

// NewAuthService creates an AuthService. A missing signing secret is a
// fatal configuration error: nothing that issues or verifies tokens can
// proceed without it.
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	if cfg.AuthSecret == "" {
		return nil, ErrSecretMissing
	}
	return &AuthService{
		cfg:    cfg,
		secret: []byte(cfg.AuthSecret),
		now:    time.Now,
	}, nil
}

// IssueSession creates a signed session token for an already-authenticated
// subject. The token is base64url(payload) + "." + base64url(signature),
// where the signature is an HMAC-SHA256 over the encoded payload string.
func (s *AuthService) IssueSession(username string) (string, error) {
	payload := sessionPayload{
		Username: username,
		Exp:      s.now().Add(s.cfg.SessionTTL).Unix(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	base := base64.RawURLEncoding.EncodeToString(raw)
	return base + "." + base64.RawURLEncoding.EncodeToString(s.sign(base)), nil
}

// VerifySession checks a presented token and returns its subject. Absent,
// malformed, tampered, and expired tokens all come back as ok=false; none
// of them is an error condition and the method never panics on bad input.
func (s *AuthService) VerifySession(token string) (username string, ok bool) {
	if token == "" {
		return "", false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}

	providedSig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}

	// hmac.Equal is constant time regardless of where the signatures differ.
	if !hmac.Equal(providedSig, s.sign(parts[0])) {
		return "", false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", false
	}

	var payload sessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", false
	}

	if payload.Exp <= s.now().Unix() {
		return "", false
	}

	return payload.Username, true
}

// CheckCredentials compares a login attempt against the configured admin
// identity. When ADMIN_PASSWORD_HASH is set the password is checked with
// bcrypt; otherwise the plaintext ADMIN_PASSWORD is compared in constant
// time. Returns ErrAdminNotConfigured when the environment lacks either.
func (s *AuthService) CheckCredentials(username, password string) error {
	if s.cfg.AdminUsername == "" || (s.cfg.AdminPassword == "" && s.cfg.AdminPasswordHash == "") {
		return ErrAdminNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1

	var passOK bool
	if s.cfg.AdminPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) sign(base string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(base))
	return mac.Sum(nil)
}
