package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/just-nibble/folio-service/internal/auth"
	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/response"
)

// LoginPath is where unauthenticated dashboard requests are sent.
const LoginPath = "/dashboard/login"

// Authenticator resolves a session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.AuthSession, error)
}

// TokenFromRequest reads the session token from the cookie, falling back to
// an Authorization bearer header.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// RequireSession rejects requests without a valid session with 401 and a
// redirect to the login page. Accepted requests carry the session in their
// context.
func RequireSession(a Authenticator, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := a.Authenticate(r.Context(), TokenFromRequest(r, cookieName))
			if err != nil {
				response.RedirectResponse(w, http.StatusUnauthorized, "Please sign in to continue", LoginPath)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}
