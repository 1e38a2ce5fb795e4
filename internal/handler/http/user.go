package handler

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/service"
	"net/http"
)

type UserService interface {
	// Register validates credentials and stores new user
	Register(ctx context.Context, email, password, fullName, phone string) (*models.User, error)
}

// UserHandler represents HTTP handler for user-related requests
type UserHandler struct {
	us UserService
	ts service.TokenService
}

// NewUserHandler creates new UserHandler instance
func NewUserHandler(us UserService, ts service.TokenService) *UserHandler {
	return &UserHandler{
		us: us,
		ts: ts,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// RegisterUser registers new user and authenticates it
// 200 — пользователь успешно зарегистрирован и аутентифицирован;
// 400 — неверный формат запроса;
// 409 — адрес уже занят;
// 500 — внутренняя ошибка сервера.
func (uh *UserHandler) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var regReq registerRequest

		if err := json.NewDecoder(r.Body).Decode(&regReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		user, err := uh.us.Register(r.Context(), regReq.Email, regReq.Password, regReq.FullName, regReq.Phone)
		if err != nil {
			var validationErr models.ValidationError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrConflictData):
				http.Error(w, "email is already taken", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		token, err := uh.ts.CreateToken(user)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
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
