package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/salesdesk/salesdesk/internal/domain"
)

// TokenVerifier turns a bearer token into the caller's identity
type TokenVerifier interface {
	VerifyToken(token string) (*domain.Principal, error)
}

type AuthConfig struct {
	Verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthConfig {
	return &AuthConfig{
		Verifier: verifier,
	}
}

// RequireAuth verifies the bearer token and stores the principal in the request context
func (ac *AuthConfig) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "Authorization header is required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				writeUnauthorized(w, "Invalid authorization header format")
				return
			}

			principal, err := ac.Verifier.VerifyToken(strings.TrimSpace(parts[1]))
			if err != nil {
				writeUnauthorized(w, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithPrincipal(r.Context(), principal)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="salesdesk"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
