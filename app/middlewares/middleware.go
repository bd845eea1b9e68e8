package middlewares

import (
	"context"
	"net/http"

	"github.com/fariowear/go-storefront/app/utils/sessions"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	FavoritesCountKey contextKey = "favorites_count"
)

// FavoritesCountMiddleware puts the size of the visitor's favorites set on
// the request context so every page can show it in the header.
func FavoritesCountMiddleware(store sessions.FavoriteStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := len(store.Favorites(r))
			ctx := context.WithValue(r.Context(), FavoritesCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BasicAuthMiddleware guards the admin surface. The password is compared
// against a bcrypt hash from the environment, never stored in clear.
func BasicAuthMiddleware(username, passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if username == "" || passwordHash == "" {
				http.Error(w, "admin access not configured", http.StatusForbidden)
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok || user != username ||
				bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pass)) != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="fario admin"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
