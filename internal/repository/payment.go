package repository

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/rookgm/shopmart/internal/repository/postgres"
)

const (
	insertPaymentQuery = `
						INSERT INTO payments (order_id, transaction_id, payment_method, amount,
											  payment_status, card_last_four, upi_id)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						ON CONFLICT (order_id) DO UPDATE
						SET transaction_id = EXCLUDED.transaction_id,
							payment_method = EXCLUDED.payment_method,
							amount         = EXCLUDED.amount,
							payment_status = EXCLUDED.payment_status,
							card_last_four = EXCLUDED.card_last_four,
							upi_id         = EXCLUDED.upi_id,
							updated_at     = now()
						WHERE payments.payment_status = 'Failed'
						RETURNING id, payment_date, updated_at
`
	selectPaymentByOrderIDQuery = `
						SELECT id, order_id, transaction_id, payment_method, amount,
							   payment_status, card_last_four, upi_id, payment_date, updated_at
						FROM payments
						WHERE order_id = $1
`
	settlePaymentQuery = `
						UPDATE payments
						SET payment_status = $2, updated_at = now()
						WHERE order_id = $1 AND payment_status = $3
`
	confirmOrderQuery = `
						UPDATE orders
						SET status = $2, updated_at = now()
						WHERE id = $1 AND status = $3
`
)

// PaymentRepository implements PaymentRepository interface
type PaymentRepository struct {
	db *postgres.DB
}

// NewPaymentRepository creates new PaymentRepository instance
func NewPaymentRepository(db *postgres.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment inserts new pending payment. The order keeps a single
// payment row: a failed attempt is replaced by the upsert, any other
// existing payment maps to models.ErrPaymentExists. A duplicate
// transaction id maps to models.ErrConflictData so the caller can retry it.
func (pr *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	err := pr.db.QueryRow(ctx, insertPaymentQuery,
		payment.OrderID, payment.TransactionID, payment.Method, payment.Amount,
		payment.Status, payment.CardLastFour, payment.UPIID,
	).Scan(&payment.ID, &payment.PaymentDate, &payment.UpdatedAt)
	if err != nil {
		// the conflict action skips rows that are not Failed
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPaymentExists
		}
		if errCode := pr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return payment, nil
}

// GetPaymentByOrderID returns payment of an order
func (pr *PaymentRepository) GetPaymentByOrderID(ctx context.Context, orderID uint64) (*models.Payment, error) {
	payment := models.Payment{}
	err := pr.db.QueryRow(ctx, selectPaymentByOrderIDQuery, orderID).Scan(
		&payment.ID, &payment.OrderID, &payment.TransactionID, &payment.Method, &payment.Amount,
		&payment.Status, &payment.CardLastFour, &payment.UPIID, &payment.PaymentDate, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// SettlePayment writes the simulated outcome in one transaction: the pending
// payment moves to payStatus and, when orderStatus is non-empty, the order is
// advanced from Pending in the same commit.
func (pr *PaymentRepository) SettlePayment(ctx context.Context, orderID uint64, payStatus models.PaymentStatus, orderStatus models.OrderStatus) error {
	return pr.db.WithinTx(ctx, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, settlePaymentQuery, orderID, payStatus, models.PaymentStatusPending)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return models.ErrDataNotFound
		}

		if orderStatus == "" {
			return nil
		}

		cmd, err = tx.Exec(ctx, confirmOrderQuery, orderID, orderStatus, models.OrderStatusPending)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return models.ErrInvalidTransition
		}

		return nil
	})
}
