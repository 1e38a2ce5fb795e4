package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/rookgm/shopmart/internal/logger"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"time"
)

// order number collision retry bound
const maxOrderNumberAttempts = 3

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// NextOrderSeq atomically increments and returns the same-day order counter
	NextOrderSeq(ctx context.Context, day time.Time) (int64, error)
	// PlaceOrder runs the whole placement inside one transaction
	PlaceOrder(ctx context.Context, order *models.Order) error
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, orderID uint64) (*models.Order, error)
	// GetOrderItems returns line items of an order
	GetOrderItems(ctx context.Context, orderID uint64) ([]models.OrderItem, error)
	// GetOrdersByUserID gets user orders
	GetOrdersByUserID(ctx context.Context, userID uint64) ([]models.Order, error)
	// CancelOrder cancels order, restores stock and refunds payment in one transaction
	CancelOrder(ctx context.Context, orderID uint64, from models.OrderStatus, reason string) (*models.Order, error)
	// ReturnOrder returns a delivered order within the window
	ReturnOrder(ctx context.Context, orderID uint64, from models.OrderStatus, reason string, windowDays int32) (*models.Order, error)
	// UpdateOrderStatus moves the order from the observed status to the next one
	UpdateOrderStatus(ctx context.Context, orderID uint64, from, to models.OrderStatus) (*models.Order, error)
}

// CartReader reads the validated cart snapshot for placement
type CartReader interface {
	// GetCartSnapshot returns the user's cart joined with live product state
	GetCartSnapshot(ctx context.Context, userID uint64) ([]models.CartItem, error)
}

// OrderNumberFunc composes an order number from the order day and the same-day sequence
type OrderNumberFunc func(day time.Time, seq int64) string

// DefaultOrderNumber composes ORD + YYYYMMDD + zero-padded same-day sequence
func DefaultOrderNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("ORD%s%04d", day.Format("20060102"), seq)
}

// OrderService implements OrderService interface
type OrderService struct {
	repo       OrderRepository
	carts      CartReader
	numberFn   OrderNumberFunc
	windowDays int32
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, carts CartReader, numberFn OrderNumberFunc, windowDays int32) *OrderService {
	if numberFn == nil {
		numberFn = DefaultOrderNumber
	}
	return &OrderService{
		repo:       repo,
		carts:      carts,
		numberFn:   numberFn,
		windowDays: windowDays,
	}
}

// newOrderNumber allocates the next same-day sequence and composes the order number
func (s *OrderService) newOrderNumber(ctx context.Context, day time.Time) (string, error) {
	seq, err := s.repo.NextOrderSeq(ctx, day)
	if err != nil {
		return "", err
	}
	return s.numberFn(day, seq), nil
}

// PlaceOrder folds the user's cart into a Pending order: it validates the
// snapshot, freezes product names and prices, and hands the whole write to
// the repository as one transaction. A duplicate order number is retried with
// a fresh number up to maxOrderNumberAttempts before the placement fails.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint64, shipping models.ShippingInfo) (*models.Order, error) {
	if err := shipping.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := s.carts.GetCartSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, models.ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(snapshot))
	total := decimal.Zero
	for _, ci := range snapshot {
		if !ci.Active {
			return nil, models.NewInsufficientStockError(ci.ProductID, ci.ProductName, ci.Quantity, 0)
		}
		if ci.Quantity > ci.Stock {
			return nil, models.NewInsufficientStockError(ci.ProductID, ci.ProductName, ci.Quantity, ci.Stock)
		}

		subtotal := ci.Subtotal()
		items = append(items, models.OrderItem{
			ProductID:    ci.ProductID,
			ProductName:  ci.ProductName,
			ProductPrice: ci.UnitPrice,
			Quantity:     ci.Quantity,
			Subtotal:     subtotal,
		})
		total = total.Add(subtotal)
	}

	order := &models.Order{
		UserID:      userID,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
		Shipping:    shipping,
		Items:       items,
	}

	var stockErr models.InsufficientStockError
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		number, err := s.newOrderNumber(ctx, time.Now().UTC())
		if err != nil {
			logger.Log.Error("allocate order number", zap.Error(err))
			return nil, models.ErrPlacementFailed
		}
		order.Number = number

		err = s.repo.PlaceOrder(ctx, order)
		switch {
		case err == nil:
			logger.Log.Debug("order placed", zap.String("number", order.Number))
			return order, nil
		case errors.Is(err, models.ErrConflictData):
			logger.Log.Debug("order number collision", zap.String("number", number))
			continue
		case errors.As(err, &stockErr):
			return nil, err
		default:
			logger.Log.Error("place order", zap.Error(err))
			return nil, models.ErrPlacementFailed
		}
	}

	return nil, models.ErrPlacementFailed
}

// ListUserOrders returns list of user orders
func (s *OrderService) ListUserOrders(ctx context.Context, userID uint64) ([]models.Order, error) {
	return s.repo.GetOrdersByUserID(ctx, userID)
}

// GetUserOrder returns one order with its line items.
// Orders of other users are reported as not found.
func (s *OrderService) GetUserOrder(ctx context.Context, userID, orderID uint64) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrDataNotFound
	}

	items, err := s.repo.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// CancelOrder cancels the user's order. Stock decremented at placement is
// restored and a successful payment is refunded.
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uint64, reason string) (*models.Order, error) {
	if reason == "" {
		return nil, models.NewValidationError("reason", "is required")
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrDataNotFound
	}
	if !order.Status.Cancellable() {
		return nil, models.ErrInvalidTransition
	}

	return s.repo.CancelOrder(ctx, orderID, order.Status, reason)
}

// ReturnOrder returns the user's delivered order while the return window is
// open. Stock is restored and a successful payment is refunded.
func (s *OrderService) ReturnOrder(ctx context.Context, userID, orderID uint64, reason string) (*models.Order, error) {
	if reason == "" {
		return nil, models.NewValidationError("reason", "is required")
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrDataNotFound
	}
	if !order.Status.Returnable() {
		return nil, models.ErrInvalidTransition
	}

	window := time.Duration(s.windowDays) * 24 * time.Hour
	if time.Since(order.UpdatedAt) > window {
		return nil, models.ErrReturnWindowClosed
	}

	return s.repo.ReturnOrder(ctx, orderID, order.Status, reason, s.windowDays)
}

// AdvanceOrderStatus moves an order one step forward along the lifecycle.
// Cancel and return have dedicated flows carrying reason metadata, so they
// are rejected here.
func (s *OrderService) AdvanceOrderStatus(ctx context.Context, orderID uint64, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, models.NewValidationError("status", "is unknown")
	}
	if next == models.OrderStatusCancelled || next == models.OrderStatusReturned {
		return nil, models.ErrInvalidTransition
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, models.ErrInvalidTransition
	}

	return s.repo.UpdateOrderStatus(ctx, orderID, order.Status, next)
}
