package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/GlebRadaev/bikeathon/pkg/utils"
	"go.uber.org/zap"
)

// AdminMiddleware guards administrative mutations with a shared secret
// compared in constant time. Both "Bearer <secret>" and a bare secret are
// accepted in the Authorization header.
func AdminMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				zap.L().Error("admin password is not configured")
				utils.RespondWithError(w, http.StatusInternalServerError, "Server configuration error")
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			provided := strings.TrimPrefix(authHeader, "Bearer ")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				zap.L().Warn("invalid admin credential", zap.String("path", r.URL.Path))
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid admin password")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
