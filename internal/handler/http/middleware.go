package handler

import (
	"context"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/service"
	"net/http"
)

type contextKey string

const (
	authPayloadKey contextKey = "auth_payload"
)

// requestToken returns the auth token carried by the request. API clients
// send it in the Authorization header; browser sessions fall back to the
// auth_token cookie set at login.
func requestToken(r *http.Request) string {
	if token := r.Header.Get("Authorization"); token != "" {
		return token
	}

	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AuthMiddleware verifies the request token and puts its payload into the context
func AuthMiddleware(ts service.TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := requestToken(r)
			if token == "" {
				http.Error(w, "missing auth token", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), authPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getAuthPayload extracts authorization token payload from context
func getAuthPayload(ctx context.Context, key contextKey) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(key).(*models.TokenPayload)
	return payload, ok
}
