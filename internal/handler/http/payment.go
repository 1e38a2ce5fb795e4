package handler

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/rookgm/shopmart/internal/models"
	"net/http"
	"time"
)

type PaymentService interface {
	// SimulatePayment pays for pending order and settles simulated outcome
	SimulatePayment(ctx context.Context, userID, orderID uint64, method models.PaymentMethod, details models.PaymentDetails) (*models.Payment, error)
	// GetOrderPayment returns payment of user order
	GetOrderPayment(ctx context.Context, userID, orderID uint64) (*models.Payment, error)
}

// PaymentHandler represents HTTP handler for payment-related requests
type PaymentHandler struct {
	svc PaymentService
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type createPaymentRequest struct {
	Method     string `json:"payment_method"`
	CardNumber string `json:"card_number,omitempty"`
	UPIID      string `json:"upi_id,omitempty"`
	Outcome    string `json:"outcome,omitempty"`
}

type paymentResponse struct {
	PaymentID     uint64  `json:"payment_id"`
	OrderID       uint64  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	Method        string  `json:"payment_method"`
	Amount        string  `json:"amount"`
	Status        string  `json:"payment_status"`
	CardLastFour  *string `json:"card_last_four,omitempty"`
	UPIID         *string `json:"upi_id,omitempty"`
	PaymentDate   string  `json:"payment_date"`
}

// newPaymentResponse maps payment to response body
func newPaymentResponse(payment *models.Payment) paymentResponse {
	return paymentResponse{
		PaymentID:     payment.ID,
		OrderID:       payment.OrderID,
		TransactionID: payment.TransactionID,
		Method:        string(payment.Method),
		Amount:        payment.Amount.StringFixed(2),
		Status:        string(payment.Status),
		CardLastFour:  payment.CardLastFour,
		UPIID:         payment.UPIID,
		PaymentDate:   payment.PaymentDate.Format(time.RFC3339),
	}
}

// CreatePayment pays for pending order with simulated outcome
// 200 — платёж успешно проведён;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 402 — платёж отклонён;
// 404 — заказ не найден;
// 409 — заказ уже оплачен или недоступен для оплаты;
// 500 — внутренняя ошибка сервера.
func (ph *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var payReq createPaymentRequest

		if err := json.NewDecoder(r.Body).Decode(&payReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		details := models.PaymentDetails{
			CardNumber: payReq.CardNumber,
			UPIID:      payReq.UPIID,
			Outcome:    models.PaymentOutcome(payReq.Outcome),
		}

		payment, err := ph.svc.SimulatePayment(r.Context(), payload.UserID, orderID, models.PaymentMethod(payReq.Method), details)
		if err != nil {
			var validationErr models.ValidationError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrPaymentExists):
				http.Error(w, "order is already paid", http.StatusConflict)
			case errors.Is(err, models.ErrInvalidTransition):
				http.Error(w, "order is not payable", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		// declined payment keeps order pending so it can be retried
		if payment.Status == models.PaymentStatusFailed {
			w.WriteHeader(http.StatusPaymentRequired)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		if err := json.NewEncoder(w).Encode(newPaymentResponse(payment)); err != nil {
			return
		}
	}
}

// GetPayment returns payment of user order
// 200 — успешная обработка запроса;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — заказ или платёж не найден;
// 500 — внутренняя ошибка сервера.
func (ph *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		payment, err := ph.svc.GetOrderPayment(r.Context(), payload.UserID, orderID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "payment not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newPaymentResponse(payment)); err != nil {
			return
		}
	}
}
