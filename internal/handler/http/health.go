package handler

import (
	"context"
	"net/http"
)

type Pinger interface {
	// Ping checks database connection
	Ping(ctx context.Context) error
}

// HealthHandler represents HTTP handler for health checks
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates new HealthHandler instance
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ping checks database connection
// 200 — соединение с базой данных установлено;
// 500 — соединение с базой данных отсутствует.
func (hh *HealthHandler) Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := hh.db.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
