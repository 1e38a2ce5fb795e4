package handler

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/shopspring/decimal"
	"net/http"
	"strconv"
)

type CartService interface {
	// AddItem puts quantity units of product into user cart
	AddItem(ctx context.Context, userID, productID uint64, quantity int32) error
	// ListItems returns user cart items and their total
	ListItems(ctx context.Context, userID uint64) ([]models.CartItem, decimal.Decimal, error)
	// UpdateQuantity replaces quantity of cart item
	UpdateQuantity(ctx context.Context, userID, itemID uint64, quantity int32) error
	// RemoveItem deletes cart item
	RemoveItem(ctx context.Context, userID, itemID uint64) error
	// Clear empties user cart
	Clear(ctx context.Context, userID uint64) error
}

// CartHandler represents HTTP handler for cart-related requests
type CartHandler struct {
	svc CartService
}

// NewCartHandler creates new CartHandler instance
func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// cartItemIDParam extracts cart item id from URL
func cartItemIDParam(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "itemID"), 10, 64)
}

type addCartItemRequest struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// AddCartItem puts product into user cart
// 200 — товар добавлен в корзину;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — товар не найден;
// 409 — недостаточно товара на складе;
// 500 — внутренняя ошибка сервера.
func (ch *CartHandler) AddCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var addReq addCartItemRequest

		if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.svc.AddItem(r.Context(), payload.UserID, addReq.ProductID, addReq.Quantity); err != nil {
			var validationErr models.ValidationError
			var stockErr models.InsufficientStockError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "product not found", http.StatusNotFound)
			case errors.As(err, &stockErr):
				writeStockError(w, stockErr)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

type cartItemResponse struct {
	ItemID      uint64 `json:"item_id"`
	ProductID   uint64 `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int32  `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total string             `json:"total"`
}

// ListCartItems returns user cart content
// 200 — успешная обработка запроса;
// 204 — корзина пуста;
// 401 — пользователь не авторизован;
// 500 — внутренняя ошибка сервера.
func (ch *CartHandler) ListCartItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, total, err := ch.svc.ListItems(r.Context(), payload.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(items) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		resp := cartResponse{Total: total.StringFixed(2)}

		for _, item := range items {
			resp.Items = append(resp.Items, cartItemResponse{
				ItemID:      item.ID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				UnitPrice:   item.UnitPrice.StringFixed(2),
				Quantity:    item.Quantity,
				Subtotal:    item.Subtotal().StringFixed(2),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type updateCartItemRequest struct {
	Quantity int32 `json:"quantity"`
}

// UpdateCartItem replaces quantity of cart item
// 200 — количество обновлено;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — позиция корзины не найдена;
// 409 — недостаточно товара на складе;
// 500 — внутренняя ошибка сервера.
func (ch *CartHandler) UpdateCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		itemID, err := cartItemIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var updateReq updateCartItemRequest

		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.svc.UpdateQuantity(r.Context(), payload.UserID, itemID, updateReq.Quantity); err != nil {
			var validationErr models.ValidationError
			var stockErr models.InsufficientStockError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "cart item not found", http.StatusNotFound)
			case errors.As(err, &stockErr):
				writeStockError(w, stockErr)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// RemoveCartItem deletes cart item
// 200 — позиция удалена;
// 400 — неверный формат запроса;
// 401 — пользователь не авторизован;
// 404 — позиция корзины не найдена;
// 500 — внутренняя ошибка сервера.
func (ch *CartHandler) RemoveCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		itemID, err := cartItemIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if err := ch.svc.RemoveItem(r.Context(), payload.UserID, itemID); err != nil {
			switch {
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "cart item not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// ClearCart empties user cart
// 200 — корзина очищена;
// 401 — пользователь не авторизован;
// 500 — внутренняя ошибка сервера.
func (ch *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// extract auth payload
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok || payload == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := ch.svc.Clear(r.Context(), payload.UserID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
