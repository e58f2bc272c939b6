package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	state := func(s OrderStatus, p PaymentStatus) OrderState { return OrderState{Status: s, PaymentStatus: p} }

	testCases := []struct {
		name    string
		from    OrderState
		to      OrderState
		wantErr bool
	}{
		{"payment confirmed", state("pending", "pending"), state("confirmed", "paid"), false},
		{"payment failed", state("pending", "pending"), state("cancelled", "failed"), false},
		{"abandoned", state("pending", "pending"), state("cancelled", "pending"), false},
		{"fulfilment step", state("confirmed", "paid"), state("processing", "paid"), false},
		{"shipped", state("processing", "paid"), state("shipped", "paid"), false},
		{"delivered", state("shipped", "paid"), state("delivered", "paid"), false},
		{"refund only", state("delivered", "paid"), state("delivered", "refunded"), false},
		{"cancel while shipped", state("shipped", "paid"), state("cancelled", "paid"), false},
		{"no change", state("pending", "pending"), state("pending", "pending"), true},
		{"skip a step", state("confirmed", "paid"), state("shipped", "paid"), true},
		{"leave delivered", state("delivered", "paid"), state("shipped", "paid"), true},
		{"leave cancelled", state("cancelled", "failed"), state("pending", "failed"), true},
		{"unpay", state("confirmed", "paid"), state("confirmed", "pending"), true},
		{"failed to paid", state("cancelled", "failed"), state("cancelled", "paid"), true},
		{"refund unpaid", state("pending", "pending"), state("pending", "refunded"), true},
		{"backwards", state("processing", "paid"), state("confirmed", "paid"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPaymentStatus_Terminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.Terminal())
	assert.True(t, PaymentStatusPaid.Terminal())
	assert.True(t, PaymentStatusFailed.Terminal())
	assert.True(t, PaymentStatusRefunded.Terminal())
}

func TestFlashSaleAllocation(t *testing.T) {
	start := time.Date(2026, 11, 11, 0, 0, 0, 0, time.UTC)
	a := FlashSaleAllocation{
		MaxQuantity:  10,
		SoldQuantity: 7,
		StartsAt:     start,
		EndsAt:       start.Add(time.Hour),
		IsActive:     true,
	}

	t.Run("available", func(t *testing.T) {
		assert.Equal(t, 3, a.Available(100))
		assert.Equal(t, 2, a.Available(2))
		assert.Equal(t, 0, a.Available(-1))

		oversold := a
		oversold.SoldQuantity = 12
		assert.Equal(t, 0, oversold.Available(5))
	})

	t.Run("running", func(t *testing.T) {
		assert.False(t, a.Running(start.Add(-time.Second)))
		assert.True(t, a.Running(start))
		assert.True(t, a.Running(start.Add(59*time.Minute)))
		assert.False(t, a.Running(start.Add(time.Hour)))

		inactive := a
		inactive.IsActive = false
		assert.False(t, inactive.Running(start))
	})
}
