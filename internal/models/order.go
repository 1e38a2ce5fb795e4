package models

import (
	"github.com/shopspring/decimal"
	"time"
)

//Pending — заказ создан, оплата ещё не подтверждена;
//Confirmed — оплата прошла, заказ подтверждён;
//Processing — заказ собирается;
//Shipped — заказ передан в доставку;
//Delivered — заказ доставлен покупателю;
//Cancelled — заказ отменён до отгрузки;
//Returned — доставленный заказ возвращён.

// OrderStatus is order lifecycle status
type OrderStatus string

// order status
const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusReturned   OrderStatus = "Returned"
)

// orderTransitions holds allowed moves for every status
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusReturned},
	OrderStatusCancelled:  {},
	OrderStatusReturned:   {},
}

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Cancellable reports whether an order in status s may be cancelled
func (s OrderStatus) Cancellable() bool {
	return s.CanTransitionTo(OrderStatusCancelled)
}

// Returnable reports whether an order in status s may be returned
func (s OrderStatus) Returnable() bool {
	return s.CanTransitionTo(OrderStatusReturned)
}

// ShippingInfo is shipping and contact details captured at checkout
type ShippingInfo struct {
	Address string
	City    string
	State   string
	Pincode string
	Phone   string
}

// Validate checks that all shipping fields are filled
func (si ShippingInfo) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"address", si.Address},
		{"city", si.City},
		{"state", si.State},
		{"pincode", si.Pincode},
		{"phone", si.Phone},
	}
	for _, f := range fields {
		if f.value == "" {
			return NewValidationError(f.name, "is required")
		}
	}
	return nil
}

// Order is order entity
type Order struct {
	ID           uint64
	UserID       uint64
	Number       string
	Status       OrderStatus
	TotalAmount  decimal.Decimal
	Shipping     ShippingInfo
	CancelReason *string
	CancelledAt  *time.Time
	ReturnReason *string
	ReturnedAt   *time.Time
	OrderedAt    time.Time
	UpdatedAt    time.Time
	Items        []OrderItem
}

// OrderItem is order line item with product name and price frozen at order time
type OrderItem struct {
	ID           uint64
	OrderID      uint64
	ProductID    uint64
	ProductName  string
	ProductPrice decimal.Decimal
	Quantity     int32
	Subtotal     decimal.Decimal
}
