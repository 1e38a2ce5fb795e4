package models

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestOrderStatus_Valid(t *testing.T) {
	tests := []struct {
		name   string
		status OrderStatus
		want   bool
	}{
		{"pending", OrderStatusPending, true},
		{"confirmed", OrderStatusConfirmed, true},
		{"processing", OrderStatusProcessing, true},
		{"shipped", OrderStatusShipped, true},
		{"delivered", OrderStatusDelivered, true},
		{"cancelled", OrderStatusCancelled, true},
		{"returned", OrderStatusReturned, true},
		{"unknown", OrderStatus("Archived"), false},
		{"empty", OrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending_to_confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"pending_to_cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending_to_shipped", OrderStatusPending, OrderStatusShipped, false},
		{"confirmed_to_processing", OrderStatusConfirmed, OrderStatusProcessing, true},
		{"confirmed_to_cancelled", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"confirmed_to_delivered", OrderStatusConfirmed, OrderStatusDelivered, false},
		{"processing_to_shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"processing_to_cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"shipped_to_delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"shipped_to_cancelled", OrderStatusShipped, OrderStatusCancelled, false},
		{"delivered_to_returned", OrderStatusDelivered, OrderStatusReturned, true},
		{"delivered_to_cancelled", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled_is_terminal", OrderStatusCancelled, OrderStatusPending, false},
		{"returned_is_terminal", OrderStatusReturned, OrderStatusDelivered, false},
		{"skipping_status_is_denied", OrderStatusPending, OrderStatusDelivered, false},
		{"backward_move_is_denied", OrderStatusShipped, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_Cancellable(t *testing.T) {
	cancellable := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing}
	for _, status := range cancellable {
		assert.True(t, status.Cancellable(), "status %s must be cancellable", status)
	}

	rest := []OrderStatus{OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned}
	for _, status := range rest {
		assert.False(t, status.Cancellable(), "status %s must not be cancellable", status)
	}
}

func TestOrderStatus_Returnable(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Returnable())

	rest := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped, OrderStatusCancelled, OrderStatusReturned}
	for _, status := range rest {
		assert.False(t, status.Returnable(), "status %s must not be returnable", status)
	}
}

func TestShippingInfo_Validate(t *testing.T) {
	valid := ShippingInfo{
		Address: "42 Gopher Street",
		City:    "Pune",
		State:   "MH",
		Pincode: "411001",
		Phone:   "9876543210",
	}

	tests := []struct {
		name      string
		mutate    func(si *ShippingInfo)
		wantField string
	}{
		{"all_fields_filled", func(si *ShippingInfo) {}, ""},
		{"missing_address", func(si *ShippingInfo) { si.Address = "" }, "address"},
		{"missing_city", func(si *ShippingInfo) { si.City = "" }, "city"},
		{"missing_state", func(si *ShippingInfo) { si.State = "" }, "state"},
		{"missing_pincode", func(si *ShippingInfo) { si.Pincode = "" }, "pincode"},
		{"missing_phone", func(si *ShippingInfo) { si.Phone = "" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			si := valid
			tt.mutate(&si)

			err := si.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
