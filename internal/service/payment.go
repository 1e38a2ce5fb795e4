package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/phedde/luhn-algorithm"
	"github.com/rookgm/shopmart/internal/logger"
	"github.com/rookgm/shopmart/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// transaction id collision retry bound
const maxTxnIDAttempts = 3

// PaymentRepository is interface for interacting with payment-related data
type PaymentRepository interface {
	// CreatePayment inserts new pending payment
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	// GetPaymentByOrderID returns payment of an order
	GetPaymentByOrderID(ctx context.Context, orderID uint64) (*models.Payment, error)
	// SettlePayment writes the simulated outcome in one transaction
	SettlePayment(ctx context.Context, orderID uint64, payStatus models.PaymentStatus, orderStatus models.OrderStatus) error
}

// OrderGetter reads orders for ownership and status checks
type OrderGetter interface {
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, orderID uint64) (*models.Order, error)
}

// OutcomePolicy decides the simulated result of a payment attempt
// when the caller supplies no explicit hint
type OutcomePolicy interface {
	Approve(method models.PaymentMethod, amount decimal.Decimal) bool
}

// AlwaysApprove approves every payment
type AlwaysApprove struct{}

// Approve always reports success
func (AlwaysApprove) Approve(models.PaymentMethod, decimal.Decimal) bool { return true }

// ApproveRate approves payments with the configured probability
type ApproveRate struct {
	rate float64
}

// NewApproveRate creates new ApproveRate policy, rate is clamped to [0, 1]
func NewApproveRate(rate float64) ApproveRate {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return ApproveRate{rate: rate}
}

// Approve reports success with probability rate
func (p ApproveRate) Approve(models.PaymentMethod, decimal.Decimal) bool {
	return rand.Float64() < p.rate
}

// TxnIDFunc composes a unique payment transaction id
type TxnIDFunc func(now time.Time) string

// DefaultTxnID composes TXN + UTC timestamp to the millisecond + 8 hex chars of entropy
func DefaultTxnID(now time.Time) string {
	now = now.UTC()
	entropy := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("TXN%s%03d%s", now.Format("20060102150405"), now.Nanosecond()/1e6, strings.ToUpper(entropy))
}

// PaymentService implements PaymentService interface
type PaymentService struct {
	repo   PaymentRepository
	orders OrderGetter
	policy OutcomePolicy
	txnID  TxnIDFunc
}

// NewPaymentService creates new PaymentService instance
func NewPaymentService(repo PaymentRepository, orders OrderGetter, policy OutcomePolicy, txnID TxnIDFunc) *PaymentService {
	if policy == nil {
		policy = AlwaysApprove{}
	}
	if txnID == nil {
		txnID = DefaultTxnID
	}
	return &PaymentService{
		repo:   repo,
		orders: orders,
		policy: policy,
		txnID:  txnID,
	}
}

// cardLastFour validates the card number and returns its last four digits
func cardLastFour(number string) (string, error) {
	digits := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	if len(digits) < 13 || len(digits) > 19 {
		return "", models.NewValidationError("card_number", "must be 13 to 19 digits")
	}

	num, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", models.NewValidationError("card_number", "must contain only digits")
	}
	// check card number using Luhn algorithm
	if ok := luhn.IsValid(num); !ok {
		return "", models.NewValidationError("card_number", "failed checksum")
	}

	return digits[len(digits)-4:], nil
}

// validateUPI checks the payment handle shape
func validateUPI(id string) error {
	at := strings.IndexByte(id, '@')
	if at < 1 || at == len(id)-1 {
		return models.NewValidationError("upi_id", "must look like name@provider")
	}
	return nil
}

// SimulatePayment creates the single payment row for the order in Pending
// status and settles it with the simulated outcome. An explicit hint in
// details forces the outcome, otherwise the configured policy decides.
// Success confirms the order in the same transaction; Failure leaves it
// Pending so payment can be retried.
func (s *PaymentService) SimulatePayment(ctx context.Context, userID, orderID uint64, method models.PaymentMethod, details models.PaymentDetails) (*models.Payment, error) {
	if !method.Valid() {
		return nil, models.NewValidationError("payment_method", "is unknown")
	}
	if !details.Outcome.Valid() {
		return nil, models.NewValidationError("outcome", "is unknown")
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrDataNotFound
	}
	if order.Status != models.OrderStatusPending {
		if order.Status == models.OrderStatusConfirmed {
			return nil, models.ErrPaymentExists
		}
		return nil, models.ErrInvalidTransition
	}

	payment := &models.Payment{
		OrderID: orderID,
		Method:  method,
		Amount:  order.TotalAmount,
		Status:  models.PaymentStatusPending,
	}

	switch method {
	case models.PaymentMethodCard:
		lastFour, err := cardLastFour(details.CardNumber)
		if err != nil {
			return nil, err
		}
		payment.CardLastFour = &lastFour
	case models.PaymentMethodUPI:
		if err := validateUPI(details.UPIID); err != nil {
			return nil, err
		}
		upi := details.UPIID
		payment.UPIID = &upi
	}

	var created *models.Payment
	for attempt := 1; attempt <= maxTxnIDAttempts; attempt++ {
		payment.TransactionID = s.txnID(time.Now())

		created, err = s.repo.CreatePayment(ctx, payment)
		if err == nil {
			break
		}
		if errors.Is(err, models.ErrConflictData) {
			logger.Log.Debug("transaction id collision", zap.String("transaction_id", payment.TransactionID))
			continue
		}
		if errors.Is(err, models.ErrPaymentExists) {
			return nil, err
		}
		logger.Log.Error("create payment", zap.Error(err))
		return nil, models.ErrPlacementFailed
	}
	if created == nil {
		return nil, models.ErrPlacementFailed
	}

	approved := false
	switch details.Outcome {
	case models.OutcomeSuccess:
		approved = true
	case models.OutcomeFailure:
		approved = false
	default:
		approved = s.policy.Approve(method, payment.Amount)
	}

	if approved {
		if err := s.repo.SettlePayment(ctx, orderID, models.PaymentStatusSuccess, models.OrderStatusConfirmed); err != nil {
			logger.Log.Error("settle payment", zap.Error(err))
			return nil, models.ErrPlacementFailed
		}
		created.Status = models.PaymentStatusSuccess
	} else {
		if err := s.repo.SettlePayment(ctx, orderID, models.PaymentStatusFailed, ""); err != nil {
			logger.Log.Error("settle payment", zap.Error(err))
			return nil, models.ErrPlacementFailed
		}
		created.Status = models.PaymentStatusFailed
	}

	logger.Log.Debug("payment settled",
		zap.String("transaction_id", created.TransactionID),
		zap.String("status", string(created.Status)))

	return created, nil
}

// GetOrderPayment returns the payment of the user's order
func (s *PaymentService) GetOrderPayment(ctx context.Context, userID, orderID uint64) (*models.Payment, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrDataNotFound
	}

	return s.repo.GetPaymentByOrderID(ctx, orderID)
}
