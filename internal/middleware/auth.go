// Package middleware contains the session guard that gates protected routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/GargManasvini/mini-healthcare-platform/internal/auth"
	"github.com/GargManasvini/mini-healthcare-platform/internal/models"
	"github.com/GargManasvini/mini-healthcare-platform/internal/store"
	"github.com/GargManasvini/mini-healthcare-platform/internal/utils"
)

type contextKey string

const userContextKey contextKey = "user"

// TokenCookieName is the cookie the login handler sets and the guard reads.
const TokenCookieName = "token"

// UserFromContext returns the authenticated user attached by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// AuthMiddleware validates the session token and resolves it to a user
// before invoking next. The token is read from the `token` cookie first,
// then from a bearer Authorization header. On any failure the request is
// rejected with 401 and next never runs.
func AuthMiddleware(next http.HandlerFunc, issuer *auth.TokenIssuer, users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := ""
		if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
			tokenString = cookie.Value
		} else if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "No authorization token found")
			return
		}

		userID, err := issuer.Validate(tokenString)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		// A token can outlive its user. Treat that the same as a bad
		// token rather than continuing with no identity.
		user, err := users.FindByID(r.Context(), userID)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
