package models

import (
	"github.com/shopspring/decimal"
	"time"
)

// CartItem is cart entry joined with live product state
type CartItem struct {
	ID          uint64
	UserID      uint64
	ProductID   uint64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int32
	Stock       int32
	Active      bool
	AddedAt     time.Time
}

// Subtotal returns quantity times unit price
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt32(ci.Quantity))
}
