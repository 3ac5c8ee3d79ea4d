// internal/app/system/auth/auth.go

// Package auth provides the bearer-token authentication middleware and the
// request-context plumbing for the signed-in account.
//
// Every protected route goes through Authenticator: extract the bearer token,
// verify it with the identity provider, reconcile the verified identity onto a
// local account, and stash the account in the request context. Handlers then
// read it back with CurrentUser.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/identity"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "auth.user"

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when the header is absent or malformed.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// Authenticator returns middleware that authenticates every request with a
// bearer token. Requests without a valid token get a 401; requests whose
// identity cannot be reconciled to an account get a 401 or 500 depending on
// the failure.
func Authenticator(verifier identity.TokenVerifier, reconciler *identity.Reconciler, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				httpjson.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			defer cancel()

			ident, err := verifier.Verify(ctx, token)
			if err != nil {
				if errors.Is(err, identity.ErrInvalidToken) {
					httpjson.Error(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				logger.Error("token verification failed", zap.Error(err))
				httpjson.ErrorDetail(w, http.StatusInternalServerError, "authentication unavailable", err)
				return
			}

			user, err := reconciler.Reconcile(ctx, ident)
			if err != nil {
				if errors.Is(err, identity.ErrNoEmail) {
					httpjson.Error(w, http.StatusUnauthorized, "token has no email claim")
					return
				}
				logger.Error("identity reconciliation failed", zap.Error(err))
				httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not resolve account", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying the signed-in account. Exposed for
// tests and for the middleware itself.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// CurrentUser returns the signed-in account from the request context, or nil
// when the request did not pass through the Authenticator.
func CurrentUser(r *http.Request) *models.User {
	u, _ := r.Context().Value(userKey).(*models.User)
	return u
}

// RequireRole returns middleware that allows only accounts whose role is in
// the given set. Must be mounted after Authenticator.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := CurrentUser(r)
			if u == nil {
				httpjson.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !allowed[u.Role] {
				httpjson.Error(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
