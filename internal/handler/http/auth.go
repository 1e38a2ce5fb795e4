package handler

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/rookgm/shopmart/internal/models"
	"net/http"
)

type AuthService interface {
	// Authenticate checks user credentials and returns signed auth token
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// AuthHandler represents HTTP handler for authentication requests
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse carries the signed token for clients that authorize
// requests with the Authorization header instead of the cookie.
type tokenResponse struct {
	Token string `json:"token"`
}

// LoginUser authenticates user
// 200 — пользователь успешно аутентифицирован;
// 400 — неверный формат запроса;
// 401 — неверная пара логин/пароль;
// 500 — внутренняя ошибка сервера.
func (ah *AuthHandler) LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var loginReq loginRequest

		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, err := ah.svc.Authenticate(r.Context(), loginReq.Email, loginReq.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "auth_token",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(tokenResponse{Token: token}); err != nil {
			return
		}
	}
}
