package models

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPaymentMethod_Valid(t *testing.T) {
	for _, method := range []PaymentMethod{PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI} {
		assert.True(t, method.Valid(), "method %s must be valid", method)
	}

	assert.False(t, PaymentMethod("Cheque").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestPaymentOutcome_Valid(t *testing.T) {
	for _, outcome := range []PaymentOutcome{OutcomeAuto, OutcomeSuccess, OutcomeFailure} {
		assert.True(t, outcome.Valid(), "outcome %q must be valid", outcome)
	}

	assert.False(t, PaymentOutcome("maybe").Valid())
}
