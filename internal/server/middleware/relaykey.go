package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// RelayKeyMiddleware требует "Authorization: Bearer <key>".
// Пустой key отключает проверку.
func RelayKeyMiddleware(logger *slog.Logger, key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: missing relay key", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <key>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format", "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: invalid key format", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(key)) != 1 {
				logger.Warn("Invalid relay key", "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: invalid relay key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
