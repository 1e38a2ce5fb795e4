package models

import (
	"errors"
	"fmt"
)

var (
	ErrConflictData       = errors.New("data conflicts with existing data")
	ErrDataNotFound       = errors.New("data not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrReturnWindowClosed = errors.New("return window has closed")
	ErrPaymentExists      = errors.New("payment already exists for order")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrPlacementFailed    = errors.New("order placement failed")
	ErrInternalError      = errors.New("internal error")
)

// ValidationError is returned when input is rejected before any write
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates new ValidationError instance
func NewValidationError(field, reason string) ValidationError {
	return ValidationError{Field: field, Reason: reason}
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// InsufficientStockError is returned when requested quantity exceeds available stock
type InsufficientStockError struct {
	ProductID   uint64
	ProductName string
	Requested   int32
	Available   int32
}

// NewInsufficientStockError creates new InsufficientStockError instance
func NewInsufficientStockError(productID uint64, name string, requested, available int32) InsufficientStockError {
	return InsufficientStockError{
		ProductID:   productID,
		ProductName: name,
		Requested:   requested,
		Available:   available,
	}
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d", e.ProductName, e.Requested, e.Available)
}
