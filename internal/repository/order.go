package repository

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/repository/postgres"
	"time"
)

// unique_violation SQLSTATE
const pgErrUniqueViolationCode = "23505"

const (
	nextOrderSeqQuery = `
						INSERT INTO order_counters (day, counter)
						VALUES ($1, 1)
						ON CONFLICT (day) DO UPDATE SET counter = order_counters.counter + 1
						RETURNING counter
`
	insertOrderQuery = `
						INSERT INTO orders (user_id, order_number, total_amount, status,
											shipping_address, shipping_city, shipping_state,
											shipping_pincode, contact_phone)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
						RETURNING id, ordered_at, updated_at
`
	insertOrderItemQuery = `
						INSERT INTO order_items (order_id, product_id, product_name, product_price, quantity, subtotal)
						VALUES ($1, $2, $3, $4, $5, $6)
`
	decrementStockQuery = `
						UPDATE products
						SET stock = stock - $2, updated_at = now()
						WHERE id = $1 AND stock >= $2
`
	selectProductStockQuery = `
						SELECT name, stock FROM products
						WHERE id = $1
`
	clearUserCartQuery = `
						DELETE FROM cart
						WHERE user_id = $1
`
	selectOrderColumns = `id, user_id, order_number, total_amount, status,
						  shipping_address, shipping_city, shipping_state,
						  shipping_pincode, contact_phone,
						  cancel_reason, cancelled_at, return_reason, returned_at,
						  ordered_at, updated_at`

	selectOrderByIDQuery = `
						SELECT ` + selectOrderColumns + ` FROM orders
						WHERE id = $1
`
	selectOrdersByUserIDQuery = `
						SELECT ` + selectOrderColumns + ` FROM orders
						WHERE user_id = $1
						ORDER BY ordered_at DESC
`
	selectOrderItemsQuery = `
						SELECT id, order_id, product_id, product_name, product_price, quantity, subtotal
						FROM order_items
						WHERE order_id = $1
						ORDER BY id
`
	cancelOrderQuery = `
						UPDATE orders
						SET status = $3, cancel_reason = $4, cancelled_at = now(), updated_at = now()
						WHERE id = $1 AND status = $2
						RETURNING ` + selectOrderColumns + `
`
	returnOrderQuery = `
						UPDATE orders
						SET status = $3, return_reason = $4, returned_at = now(), updated_at = now()
						WHERE id = $1 AND status = $2
						  AND updated_at >= now() - make_interval(days => $5)
						RETURNING ` + selectOrderColumns + `
`
	updateOrderStatusQuery = `
						UPDATE orders
						SET status = $3, updated_at = now()
						WHERE id = $1 AND status = $2
						RETURNING ` + selectOrderColumns + `
`
	restoreStockQuery = `
						UPDATE products p
						SET stock = p.stock + oi.quantity, updated_at = now()
						FROM order_items oi
						WHERE oi.order_id = $1 AND oi.product_id = p.id
`
	refundPaymentQuery = `
						UPDATE payments
						SET payment_status = $2, updated_at = now()
						WHERE order_id = $1 AND payment_status = $3
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// scanOrder reads one order row in selectOrderColumns order
func scanOrder(row pgx.Row, order *models.Order) error {
	return row.Scan(&order.ID, &order.UserID, &order.Number, &order.TotalAmount, &order.Status,
		&order.Shipping.Address, &order.Shipping.City, &order.Shipping.State,
		&order.Shipping.Pincode, &order.Shipping.Phone,
		&order.CancelReason, &order.CancelledAt, &order.ReturnReason, &order.ReturnedAt,
		&order.OrderedAt, &order.UpdatedAt)
}

// NextOrderSeq atomically increments and returns the same-day order counter.
// Two concurrent placements serialize on the counter row and never read the same value.
func (or *OrderRepository) NextOrderSeq(ctx context.Context, day time.Time) (int64, error) {
	var seq int64
	if err := or.db.QueryRow(ctx, nextOrderSeqQuery, day).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

// PlaceOrder inserts the order header, copies line items in one batch,
// conditionally decrements stock and clears the user's cart, all inside one transaction.
// A duplicate order number maps to models.ErrConflictData, a failed stock
// decrement to models.InsufficientStockError; both roll the transaction back.
func (or *OrderRepository) PlaceOrder(ctx context.Context, order *models.Order) error {
	return or.db.WithinTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrderQuery,
			order.UserID, order.Number, order.TotalAmount, order.Status,
			order.Shipping.Address, order.Shipping.City, order.Shipping.State,
			order.Shipping.Pincode, order.Shipping.Phone,
		).Scan(&order.ID, &order.OrderedAt, &order.UpdatedAt)
		if err != nil {
			if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
				return models.ErrConflictData
			}
			return err
		}

		batch := &pgx.Batch{}
		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			batch.Queue(insertOrderItemQuery,
				item.OrderID, item.ProductID, item.ProductName,
				item.ProductPrice, item.Quantity, item.Subtotal)
		}

		br := tx.SendBatch(ctx, batch)
		for range order.Items {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return err
			}
		}
		if err := br.Close(); err != nil {
			return err
		}

		for _, item := range order.Items {
			cmd, err := tx.Exec(ctx, decrementStockQuery, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if cmd.RowsAffected() == 0 {
				name := item.ProductName
				var stock int32
				if err := tx.QueryRow(ctx, selectProductStockQuery, item.ProductID).Scan(&name, &stock); err != nil && !errors.Is(err, pgx.ErrNoRows) {
					return err
				}
				return models.NewInsufficientStockError(item.ProductID, name, item.Quantity, stock)
			}
		}

		_, err = tx.Exec(ctx, clearUserCartQuery, order.UserID)
		return err
	})
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, orderID uint64) (*models.Order, error) {
	order := models.Order{}
	if err := scanOrder(or.db.QueryRow(ctx, selectOrderByIDQuery, orderID), &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// GetOrderItems returns line items of an order
func (or *OrderRepository) GetOrderItems(ctx context.Context, orderID uint64) ([]models.OrderItem, error) {
	rows, err := or.db.Query(ctx, selectOrderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		item := models.OrderItem{}
		err = rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.ProductPrice, &item.Quantity, &item.Subtotal)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetOrdersByUserID gets user orders, newest first
func (or *OrderRepository) GetOrdersByUserID(ctx context.Context, userID uint64) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersByUserIDQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		if err := scanOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// CancelOrder flips the order from the observed status to Cancelled, restores
// line-item stock and refunds a successful payment, all inside one transaction.
// Zero rows on the guarded update means the status changed underneath and maps
// to models.ErrInvalidTransition.
func (or *OrderRepository) CancelOrder(ctx context.Context, orderID uint64, from models.OrderStatus, reason string) (*models.Order, error) {
	order := models.Order{}
	err := or.db.WithinTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, cancelOrderQuery, orderID, from, models.OrderStatusCancelled, reason)
		if err := scanOrder(row, &order); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrInvalidTransition
			}
			return err
		}

		if _, err := tx.Exec(ctx, restoreStockQuery, orderID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, refundPaymentQuery, orderID, models.PaymentStatusRefunded, models.PaymentStatusSuccess)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ReturnOrder flips a delivered order to Returned when the return window is
// still open, restores stock and refunds a successful payment in one transaction.
// The window is checked in SQL with a typed interval parameter.
func (or *OrderRepository) ReturnOrder(ctx context.Context, orderID uint64, from models.OrderStatus, reason string, windowDays int32) (*models.Order, error) {
	order := models.Order{}
	err := or.db.WithinTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, returnOrderQuery, orderID, from, models.OrderStatusReturned, reason, windowDays)
		if err := scanOrder(row, &order); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrInvalidTransition
			}
			return err
		}

		if _, err := tx.Exec(ctx, restoreStockQuery, orderID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, refundPaymentQuery, orderID, models.PaymentStatusRefunded, models.PaymentStatusSuccess)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrderStatus moves the order from the observed status to the next one
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID uint64, from, to models.OrderStatus) (*models.Order, error) {
	order := models.Order{}
	row := or.db.QueryRow(ctx, updateOrderStatusQuery, orderID, from, to)
	if err := scanOrder(row, &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrInvalidTransition
		}
		return nil, err
	}

	return &order, nil
}
