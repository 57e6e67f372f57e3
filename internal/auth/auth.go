// Package auth issues and verifies dashboard sessions. Passwords are stored
// as bcrypt hashes; a session is an HS256 JWT carried in a cookie or a
// bearer header.
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/errcodes"
)

const DefaultSessionTTL = 24 * time.Hour

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Sessions signs and parses session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(cfg config.AuthConfig) *Sessions {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{secret: []byte(cfg.JWTSecret), ttl: ttl, now: time.Now}
}

// Issue creates a session for user and returns its signed token.
func (s *Sessions) Issue(user domain.User) (string, domain.AuthSession, error) {
	now := s.now().UTC().Truncate(time.Second)
	session := domain.AuthSession{
		UserID:    user.ID,
		Email:     user.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.AuthSession{}, errors.Wrap(err, "sign session token")
	}
	return signed, session, nil
}

// Parse verifies token and returns its session. Expired tokens yield
// ErrSessionExpired; anything else unusable yields ErrUnauthorized.
func (s *Sessions) Parse(token string) (domain.AuthSession, error) {
	if token == "" {
		return domain.AuthSession{}, errcodes.ErrUnauthorized
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.AuthSession{}, errcodes.ErrSessionExpired
		}
		return domain.AuthSession{}, errors.Wrap(errcodes.ErrUnauthorized, err.Error())
	}
	if c.Subject == "" || c.ExpiresAt == nil {
		return domain.AuthSession{}, errcodes.ErrUnauthorized
	}

	session := domain.AuthSession{UserID: c.Subject, Email: c.Email, ExpiresAt: c.ExpiresAt.Time}
	if c.IssuedAt != nil {
		session.IssuedAt = c.IssuedAt.Time
	}
	return session, nil
}

type ctxKey struct{}

// WithSession attaches the authenticated session to ctx.
func WithSession(ctx context.Context, s domain.AuthSession) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// SessionFrom returns the session attached by WithSession.
func SessionFrom(ctx context.Context) (domain.AuthSession, bool) {
	s, ok := ctx.Value(ctxKey{}).(domain.AuthSession)
	return s, ok
}

// SessionCookie builds the cookie that carries token until expires.
func SessionCookie(cfg config.AuthConfig, token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedCookie deletes the session cookie.
func ClearedCookie(cfg config.AuthConfig) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
