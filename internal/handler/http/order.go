package handler

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/shopmart/internal/models"
	"net/http"
	"strconv"
	"time"
)

type OrderService interface {
	// PlaceOrder converts user cart into new order
	PlaceOrder(ctx context.Context, userID uint64, shipping models.ShippingInfo) (*models.Order, error)
	// ListUserOrders returns user orders, newest first
	ListUserOrders(ctx context.Context, userID uint64) ([]models.Order, error)
	// GetUserOrder returns user order with line items
	GetUserOrder(ctx context.Context, userID, orderID uint64) (*models.Order, error)
	// CancelOrder cancels user order
	CancelOrder(ctx context.Context, userID, orderID uint64, reason string) (*models.Order, error)
	// ReturnOrder returns delivered user order
	ReturnOrder(ctx context.Context, userID, orderID uint64, reason string) (*models.Order, error)
	// AdvanceOrderStatus moves order to the next fulfillment status
	AdvanceOrderStatus(ctx context.Context, orderID uint64, next models.OrderStatus) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// orderIDParam extracts order id from URL
func orderIDParam(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "orderID"), 10, 64)
}

type placeOrderRequest struct {
	Address string `json:"shipping_address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"contact_phone"`
}

type placeOrderResponse struct {
	OrderID     uint64 `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
}

type stockErrorResponse struct {
	Error     string `json:"error"`
	ProductID uint64 `json:"product_id"`
	Product   string `json:"product"`
	Requested int32  `json:"requested"`
	Available int32  `json:"available"`
}

// writeStockError reports the offending cart position
func writeStockError(w http.ResponseWriter, stockErr models.InsufficientStockError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)

	resp := stockErrorResponse{
		Error:     "insufficient stock",
		ProductID: stockErr.ProductID,
		Product:   stockErr.ProductName,
		Requested: stockErr.Requested,
		Available: stockErr.Available,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return
	}
}

// PlaceOrder places order from user cart
// 201 — заказ успешно оформлен;
// 400 — неверный формат запроса или пустая корзина;
// 401 — пользователь не авторизован;
// 409 — недостаточно товара на складе;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var placeReq placeOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&placeReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		shipping := models.ShippingInfo{
			Address: placeReq.Address,
			City:    placeReq.City,
			State:   placeReq.State,
			Pincode: placeReq.Pincode,
			Phone:   placeReq.Phone,
		}

		order, err := oh.svc.PlaceOrder(r.Context(), payload.UserID, shipping)
		if err != nil {
			var validationErr models.ValidationError
			var stockErr models.InsufficientStockError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrEmptyCart):
				http.Error(w, "cart is empty", http.StatusBadRequest)
			case errors.As(err, &stockErr):
				writeStockError(w, stockErr)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		resp := placeOrderResponse{
			OrderID:     order.ID,
			OrderNumber: order.Number,
			Status:      string(order.Status),
			TotalAmount: order.TotalAmount.StringFixed(2),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type listOrdersResponse struct {
	OrderID     uint64 `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
	OrderedAt   string `json:"ordered_at"`
}

// ListUserOrders returns user orders
// 200 — успешная обработка запроса;
// 204 — нет ни одного заказа;
// 401 — пользователь не авторизован;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ListUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orders, err := oh.svc.ListUserOrders(r.Context(), payload.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var resp []listOrdersResponse

		for _, order := range orders {
			resp = append(resp, listOrdersResponse{
				OrderID:     order.ID,
				OrderNumber: order.Number,
				Status:      string(order.Status),
				TotalAmount: order.TotalAmount.StringFixed(2),
				OrderedAt:   order.OrderedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type orderItemResponse struct {
	ProductID    uint64 `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Quantity     int32  `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

type orderResponse struct {
	OrderID     uint64              `json:"order_id"`
	OrderNumber string              `json:"order_number"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	Address     string              `json:"shipping_address"`
	City        string              `json:"city"`
	State       string              `json:"state"`
	Pincode     string              `json:"pincode"`
	Phone       string              `json:"contact_phone"`
	OrderedAt   string              `json:"ordered_at"`
	Items       []orderItemResponse `json:"items,omitempty"`
}

// newOrderResponse maps order to response body
func newOrderResponse(order *models.Order) orderResponse {
	resp := orderResponse{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Address:     order.Shipping.Address,
		City:        order.Shipping.City,
		State:       order.Shipping.State,
		Pincode:     order.Shipping.Pincode,
		Phone:       order.Shipping.Phone,
		OrderedAt:   order.OrderedAt.Format(time.RFC3339),
	}

	for _, item := range order.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice.StringFixed(2),
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal.StringFixed(2),
		})
	}

	return resp
}

// GetOrder returns user order with line items
// 200 — успешная обработка запроса;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
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

		order, err := oh.svc.GetUserOrder(r.Context(), payload.UserID, orderID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder cancels user order
// 200 — заказ отменён;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — заказ не найден;
// 409 — заказ нельзя отменить из текущего статуса;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) CancelOrder() http.HandlerFunc {
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

		var cancelReq reasonRequest

		if err := json.NewDecoder(r.Body).Decode(&cancelReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.CancelOrder(r.Context(), payload.UserID, orderID, cancelReq.Reason)
		if err != nil {
			var validationErr models.ValidationError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidTransition):
				http.Error(w, "order cannot be cancelled", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}

// ReturnOrder returns delivered user order
// 200 — возврат оформлен;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — заказ не найден;
// 409 — заказ нельзя вернуть или окно возврата закрыто;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ReturnOrder() http.HandlerFunc {
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

		var returnReq reasonRequest

		if err := json.NewDecoder(r.Body).Decode(&returnReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.ReturnOrder(r.Context(), payload.UserID, orderID, returnReq.Reason)
		if err != nil {
			var validationErr models.ValidationError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidTransition):
				http.Error(w, "order cannot be returned", http.StatusConflict)
			case errors.Is(err, models.ErrReturnWindowClosed):
				http.Error(w, "return window closed", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves order to the next fulfillment status
// 200 — статус обновлён;
// 400 — неверный формат запроса;
// 404 — заказ не найден;
// 409 — недопустимый переход статуса;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var statusReq updateStatusRequest

		if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.AdvanceOrderStatus(r.Context(), orderID, models.OrderStatus(statusReq.Status))
		if err != nil {
			var validationErr models.ValidationError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidTransition):
				http.Error(w, "invalid status transition", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(newOrderResponse(order)); err != nil {
			return
		}
	}
}
