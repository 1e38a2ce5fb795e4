package service

import (
	"context"
	"errors"
	"github.com/golang/mock/gomock"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testShipping() models.ShippingInfo {
	return models.ShippingInfo{
		Address: "42 Gopher Street",
		City:    "Pune",
		State:   "MH",
		Pincode: "411001",
		Phone:   "9876543210",
	}
}

func testCartSnapshot() []models.CartItem {
	return []models.CartItem{
		{ID: 1, UserID: 1, ProductID: 11, ProductName: "Gopher Mug", UnitPrice: decimal.RequireFromString("250.00"), Quantity: 2, Stock: 5, Active: true},
		{ID: 2, UserID: 1, ProductID: 12, ProductName: "Gopher Tee", UnitPrice: decimal.RequireFromString("499.99"), Quantity: 1, Stock: 3, Active: true},
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name      string
		shipping  models.ShippingInfo
		setup     func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader)
		wantErr   error
		wantStock *models.InsufficientStockError
	}{
		{
			name:     "empty_cart_is_rejected",
			shipping: testShipping(),
			setup: func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader) {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Times(0)

				cartMock := mocks.NewMockCartReader(ctrl)
				cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(nil, nil)
				return repoMock, cartMock
			},
			wantErr: models.ErrEmptyCart,
		},
		{
			name: "missing_shipping_field_is_rejected",
			shipping: models.ShippingInfo{
				Address: "42 Gopher Street",
				City:    "Pune",
				State:   "MH",
				Pincode: "411001",
			},
			setup: func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader) {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Times(0)

				cartMock := mocks.NewMockCartReader(ctrl)
				cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Times(0)
				return repoMock, cartMock
			},
			wantErr: models.ValidationError{Field: "phone", Reason: "is required"},
		},
		{
			name:     "quantity_over_stock_is_rejected",
			shipping: testShipping(),
			setup: func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader) {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Times(0)

				snapshot := testCartSnapshot()
				snapshot[0].Quantity = 6

				cartMock := mocks.NewMockCartReader(ctrl)
				cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(snapshot, nil)
				return repoMock, cartMock
			},
			wantStock: &models.InsufficientStockError{ProductID: 11, ProductName: "Gopher Mug", Requested: 6, Available: 5},
		},
		{
			name:     "inactive_product_is_rejected",
			shipping: testShipping(),
			setup: func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader) {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Times(0)

				snapshot := testCartSnapshot()
				snapshot[1].Active = false

				cartMock := mocks.NewMockCartReader(ctrl)
				cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(snapshot, nil)
				return repoMock, cartMock
			},
			wantStock: &models.InsufficientStockError{ProductID: 12, ProductName: "Gopher Tee", Requested: 1, Available: 0},
		},
		{
			name:     "stock_race_inside_transaction_is_surfaced",
			shipping: testShipping(),
			setup: func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader) {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
					Return(models.NewInsufficientStockError(11, "Gopher Mug", 2, 1))

				cartMock := mocks.NewMockCartReader(ctrl)
				cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(testCartSnapshot(), nil)
				return repoMock, cartMock
			},
			wantStock: &models.InsufficientStockError{ProductID: 11, ProductName: "Gopher Mug", Requested: 2, Available: 1},
		},
		{
			name:     "snapshot_error_is_propagated",
			shipping: testShipping(),
			setup: func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader) {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Times(0)

				cartMock := mocks.NewMockCartReader(ctrl)
				cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(nil, models.ErrInternalError)
				return repoMock, cartMock
			},
			wantErr: models.ErrInternalError,
		},
		{
			name:     "repository_failure_is_masked",
			shipping: testShipping(),
			setup: func(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCartReader) {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

				cartMock := mocks.NewMockCartReader(ctrl)
				cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(testCartSnapshot(), nil)
				return repoMock, cartMock
			},
			wantErr: models.ErrPlacementFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock, cartMock := tt.setup(t)
			svc := NewOrderService(repoMock, cartMock, nil, 7)

			order, err := svc.PlaceOrder(context.Background(), 1, tt.shipping)
			assert.Nil(t, order)

			if tt.wantStock != nil {
				var stockErr models.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, *tt.wantStock, stockErr)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repoMock := mocks.NewMockOrderRepository(ctrl)
	repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).Return(int64(42), nil)
	repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(nil)

	cartMock := mocks.NewMockCartReader(ctrl)
	cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(testCartSnapshot(), nil)

	svc := NewOrderService(repoMock, cartMock, nil, 7)

	order, err := svc.PlaceOrder(context.Background(), 1, testShipping())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, DefaultOrderNumber(time.Now().UTC(), 42), order.Number)
	assert.Equal(t, "999.99", order.TotalAmount.StringFixed(2))

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Gopher Mug", order.Items[0].ProductName)
	assert.Equal(t, "500.00", order.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "Gopher Tee", order.Items[1].ProductName)
	assert.Equal(t, "499.99", order.Items[1].Subtotal.StringFixed(2))
}

func TestOrderService_PlaceOrder_NumberCollisionRetry(t *testing.T) {
	ctrl := gomock.NewController(t)

	var seq int64
	repoMock := mocks.NewMockOrderRepository(ctrl)
	repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, day time.Time) (int64, error) {
			seq++
			return seq, nil
		}).Times(3)

	var attempts int
	repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, order *models.Order) error {
			attempts++
			if attempts < 3 {
				return models.ErrConflictData
			}
			return nil
		}).Times(3)

	cartMock := mocks.NewMockCartReader(ctrl)
	cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(testCartSnapshot(), nil)

	svc := NewOrderService(repoMock, cartMock, nil, 7)

	order, err := svc.PlaceOrder(context.Background(), 1, testShipping())
	require.NoError(t, err)

	// each retry must carry a freshly allocated number
	assert.Equal(t, DefaultOrderNumber(time.Now().UTC(), 3), order.Number)
}

func TestOrderService_PlaceOrder_RetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)

	repoMock := mocks.NewMockOrderRepository(ctrl)
	repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(3)
	repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(models.ErrConflictData).Times(3)

	cartMock := mocks.NewMockCartReader(ctrl)
	cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(testCartSnapshot(), nil)

	svc := NewOrderService(repoMock, cartMock, nil, 7)

	order, err := svc.PlaceOrder(context.Background(), 1, testShipping())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, models.ErrPlacementFailed)
}

func TestOrderService_PlaceOrder_SecondBuyerLosesStock(t *testing.T) {
	ctrl := gomock.NewController(t)

	snapshot := []models.CartItem{
		{ID: 1, UserID: 1, ProductID: 11, ProductName: "Gopher Mug", UnitPrice: decimal.RequireFromString("250.00"), Quantity: 3, Stock: 5, Active: true},
	}

	var seq int64
	repoMock := mocks.NewMockOrderRepository(ctrl)
	repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, day time.Time) (int64, error) {
			seq++
			return seq, nil
		}).Times(2)

	// five units on hand, the first buyer takes three, the second wants three more
	first := repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(nil)
	repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
		Return(models.NewInsufficientStockError(11, "Gopher Mug", 3, 2)).After(first)

	cartMock := mocks.NewMockCartReader(ctrl)
	cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(snapshot, nil).Times(2)

	svc := NewOrderService(repoMock, cartMock, nil, 7)

	_, err := svc.PlaceOrder(context.Background(), 1, testShipping())
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), 2, testShipping())

	var stockErr models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int32(2), stockErr.Available)
}

func TestOrderService_PlaceOrder_LastUnitGoesToOneBuyer(t *testing.T) {
	ctrl := gomock.NewController(t)

	snapshot := []models.CartItem{
		{ID: 1, UserID: 1, ProductID: 11, ProductName: "Gopher Mug", UnitPrice: decimal.RequireFromString("250.00"), Quantity: 1, Stock: 1, Active: true},
	}

	var seq int64
	repoMock := mocks.NewMockOrderRepository(ctrl)
	repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, day time.Time) (int64, error) {
			return atomic.AddInt64(&seq, 1), nil
		}).Times(2)

	// conditional decrement hands the last unit to exactly one transaction
	var mu sync.Mutex
	stock := int32(1)
	repoMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, order *models.Order) error {
			mu.Lock()
			defer mu.Unlock()
			if stock < 1 {
				return models.NewInsufficientStockError(11, "Gopher Mug", 1, stock)
			}
			stock--
			return nil
		}).Times(2)

	cartMock := mocks.NewMockCartReader(ctrl)
	cartMock.EXPECT().GetCartSnapshot(gomock.Any(), gomock.Any()).Return(snapshot, nil).Times(2)

	svc := NewOrderService(repoMock, cartMock, nil, 7)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(context.Background(), uint64(i+1), testShipping())
		}(i)
	}
	wg.Wait()

	var placed, denied int
	for _, err := range errs {
		var stockErr models.InsufficientStockError
		switch {
		case err == nil:
			placed++
		case errors.As(err, &stockErr):
			denied++
		}
	}
	assert.Equal(t, 1, placed)
	assert.Equal(t, 1, denied)
}

func TestDefaultOrderNumber(t *testing.T) {
	day := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	assert.Equal(t, "ORD202503140001", DefaultOrderNumber(day, 1))
	assert.Equal(t, "ORD202503140042", DefaultOrderNumber(day, 42))
	assert.Equal(t, "ORD202503149999", DefaultOrderNumber(day, 9999))
}

func TestOrderService_OrderNumberUniqueness(t *testing.T) {
	const buyers = 100

	ctrl := gomock.NewController(t)

	var seq int64
	repoMock := mocks.NewMockOrderRepository(ctrl)
	repoMock.EXPECT().NextOrderSeq(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, day time.Time) (int64, error) {
			return atomic.AddInt64(&seq, 1), nil
		}).Times(buyers)

	svc := NewOrderService(repoMock, nil, nil, 7)
	day := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	var mu sync.Mutex
	numbers := make(map[string]struct{}, buyers)

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			number, err := svc.newOrderNumber(context.Background(), day)
			assert.NoError(t, err)

			mu.Lock()
			numbers[number] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, buyers)
}

func TestOrderService_GetUserOrder(t *testing.T) {
	tests := []struct {
		name    string
		userID  uint64
		setup   func(t *testing.T) *mocks.MockOrderRepository
		wantErr error
	}{
		{
			name:   "order_with_items",
			userID: 1,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusPending}, nil)
				repoMock.EXPECT().GetOrderItems(gomock.Any(), uint64(7)).
					Return([]models.OrderItem{{OrderID: 7, ProductID: 11, Quantity: 2}}, nil)
				return repoMock
			},
		},
		{
			name:   "foreign_order_is_not_found",
			userID: 2,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusPending}, nil)
				repoMock.EXPECT().GetOrderItems(gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrDataNotFound,
		},
		{
			name:   "missing_order",
			userID: 1,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(nil, models.ErrDataNotFound)
				return repoMock
			},
			wantErr: models.ErrDataNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(tt.setup(t), nil, nil, 7)

			order, err := svc.GetUserOrder(context.Background(), tt.userID, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, order.Items, 1)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	tests := []struct {
		name    string
		reason  string
		setup   func(t *testing.T) *mocks.MockOrderRepository
		wantErr error
	}{
		{
			name:   "pending_order_is_cancelled",
			reason: "changed my mind",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusPending}, nil)
				repoMock.EXPECT().CancelOrder(gomock.Any(), uint64(7), models.OrderStatusPending, "changed my mind").
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusCancelled}, nil)
				return repoMock
			},
		},
		{
			name:   "confirmed_order_is_cancelled",
			reason: "found cheaper",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusConfirmed}, nil)
				repoMock.EXPECT().CancelOrder(gomock.Any(), uint64(7), models.OrderStatusConfirmed, "found cheaper").
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusCancelled}, nil)
				return repoMock
			},
		},
		{
			name:   "processing_order_is_cancelled",
			reason: "ordered twice",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusProcessing}, nil)
				repoMock.EXPECT().CancelOrder(gomock.Any(), uint64(7), models.OrderStatusProcessing, "ordered twice").
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusCancelled}, nil)
				return repoMock
			},
		},
		{
			name:   "shipped_order_is_denied",
			reason: "late",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusShipped}, nil)
				repoMock.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name:   "delivered_order_is_denied",
			reason: "late",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusDelivered}, nil)
				repoMock.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name:   "foreign_order_is_not_found",
			reason: "not mine",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 2, Status: models.OrderStatusPending}, nil)
				repoMock.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrDataNotFound,
		},
		{
			name:   "empty_reason_is_rejected",
			reason: "",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ValidationError{Field: "reason", Reason: "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(tt.setup(t), nil, nil, 7)

			order, err := svc.CancelOrder(context.Background(), 1, 7, tt.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.OrderStatusCancelled, order.Status)
		})
	}
}

func TestOrderService_ReturnOrder(t *testing.T) {
	tests := []struct {
		name    string
		reason  string
		setup   func(t *testing.T) *mocks.MockOrderRepository
		wantErr error
	}{
		{
			name:   "delivered_within_window_is_returned",
			reason: "does not fit",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusDelivered, UpdatedAt: time.Now().Add(-48 * time.Hour)}, nil)
				repoMock.EXPECT().ReturnOrder(gomock.Any(), uint64(7), models.OrderStatusDelivered, "does not fit", int32(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusReturned}, nil)
				return repoMock
			},
		},
		{
			name:   "window_closed_is_rejected",
			reason: "does not fit",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusDelivered, UpdatedAt: time.Now().Add(-8 * 24 * time.Hour)}, nil)
				repoMock.EXPECT().ReturnOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrReturnWindowClosed,
		},
		{
			name:   "pending_order_is_denied",
			reason: "does not fit",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusPending}, nil)
				repoMock.EXPECT().ReturnOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name:   "shipped_order_is_denied",
			reason: "does not fit",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 1, Status: models.OrderStatusShipped}, nil)
				repoMock.EXPECT().ReturnOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name:   "foreign_order_is_not_found",
			reason: "not mine",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, UserID: 2, Status: models.OrderStatusDelivered, UpdatedAt: time.Now()}, nil)
				repoMock.EXPECT().ReturnOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrDataNotFound,
		},
		{
			name:   "empty_reason_is_rejected",
			reason: "",
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ValidationError{Field: "reason", Reason: "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(tt.setup(t), nil, nil, 7)

			order, err := svc.ReturnOrder(context.Background(), 1, 7, tt.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.OrderStatusReturned, order.Status)
		})
	}
}

func TestOrderService_AdvanceOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		next    models.OrderStatus
		setup   func(t *testing.T) *mocks.MockOrderRepository
		want    models.OrderStatus
		wantErr error
	}{
		{
			name: "pending_to_confirmed",
			next: models.OrderStatusConfirmed,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, Status: models.OrderStatusPending}, nil)
				repoMock.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(7), models.OrderStatusPending, models.OrderStatusConfirmed).
					Return(&models.Order{ID: 7, Status: models.OrderStatusConfirmed}, nil)
				return repoMock
			},
			want: models.OrderStatusConfirmed,
		},
		{
			name: "processing_to_shipped",
			next: models.OrderStatusShipped,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, Status: models.OrderStatusProcessing}, nil)
				repoMock.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(7), models.OrderStatusProcessing, models.OrderStatusShipped).
					Return(&models.Order{ID: 7, Status: models.OrderStatusShipped}, nil)
				return repoMock
			},
			want: models.OrderStatusShipped,
		},
		{
			name: "shipped_to_delivered",
			next: models.OrderStatusDelivered,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, Status: models.OrderStatusShipped}, nil)
				repoMock.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(7), models.OrderStatusShipped, models.OrderStatusDelivered).
					Return(&models.Order{ID: 7, Status: models.OrderStatusDelivered}, nil)
				return repoMock
			},
			want: models.OrderStatusDelivered,
		},
		{
			name: "unknown_status_is_rejected",
			next: models.OrderStatus("Archived"),
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ValidationError{Field: "status", Reason: "is unknown"},
		},
		{
			name: "cancel_via_advance_is_denied",
			next: models.OrderStatusCancelled,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name: "return_via_advance_is_denied",
			next: models.OrderStatusReturned,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name: "skipping_status_is_denied",
			next: models.OrderStatusShipped,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).
					Return(&models.Order{ID: 7, Status: models.OrderStatusPending}, nil)
				repoMock.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repoMock
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name: "missing_order",
			next: models.OrderStatusConfirmed,
			setup: func(t *testing.T) *mocks.MockOrderRepository {
				ctrl := gomock.NewController(t)

				repoMock := mocks.NewMockOrderRepository(ctrl)
				repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(nil, models.ErrDataNotFound)
				return repoMock
			},
			wantErr: models.ErrDataNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(tt.setup(t), nil, nil, 7)

			order, err := svc.AdvanceOrderStatus(context.Background(), 7, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, order.Status)
		})
	}
}
