package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/witchhunt-game/backend/internal/storage"
)

type ctxKey struct{}

// Middleware blocks requests without a valid Bearer token and stores the
// authenticated user on the request context.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "authentication token required", http.StatusUnauthorized)
			return
		}

		user, err := s.User(r.Context(), token)
		if err != nil {
			http.Error(w, "invalid authentication token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, user)))
	})
}

// UserFrom returns the authenticated user placed by Middleware, or nil.
func UserFrom(ctx context.Context) *storage.User {
	u, _ := ctx.Value(ctxKey{}).(*storage.User)
	return u
}
