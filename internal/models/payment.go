package models

import (
	"github.com/shopspring/decimal"
	"time"
)

//Pending — платёж создан, исход ещё не определён;
//Success — платёж прошёл, заказ подтверждается;
//Failed — платёж отклонён, заказ остаётся неоплаченным;
//Refunded — успешный платёж возвращён после отмены или возврата заказа.

// PaymentStatus is payment lifecycle status
type PaymentStatus string

// payment status
const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusSuccess  PaymentStatus = "Success"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// PaymentMethod is payment method chosen at checkout
type PaymentMethod string

// payment method
const (
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodCard PaymentMethod = "Card"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI:
		return true
	}
	return false
}

// PaymentOutcome is caller-supplied hint forcing the simulated outcome
type PaymentOutcome string

// payment outcome hint
const (
	OutcomeAuto    PaymentOutcome = ""
	OutcomeSuccess PaymentOutcome = "success"
	OutcomeFailure PaymentOutcome = "failure"
)

// Valid reports whether o is a known outcome hint
func (o PaymentOutcome) Valid() bool {
	switch o {
	case OutcomeAuto, OutcomeSuccess, OutcomeFailure:
		return true
	}
	return false
}

// Payment is payment entity, at most one per order
type Payment struct {
	ID            uint64
	OrderID       uint64
	TransactionID string
	Method        PaymentMethod
	Amount        decimal.Decimal
	Status        PaymentStatus
	CardLastFour  *string
	UPIID         *string
	PaymentDate   time.Time
	UpdatedAt     time.Time
}

// PaymentDetails is method-specific input for payment simulation
type PaymentDetails struct {
	CardNumber string
	UPIID      string
	Outcome    PaymentOutcome
}
