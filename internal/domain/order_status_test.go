package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{OrderStatusPending, OrderStatusAccepted, true},
		{OrderStatusPending, OrderStatusRejected, true},
		{OrderStatusAccepted, OrderStatusInProgress, true},
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusPending, OrderStatusInProgress, false},
		{OrderStatusAccepted, OrderStatusRejected, false},
		{OrderStatusAccepted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusInProgress, false},
		{OrderStatusCompleted, OrderStatusCompleted, false},
		{OrderStatusRejected, OrderStatusAccepted, false},
		{OrderStatusCancelled, OrderStatusAccepted, false},
		{OrderStatusPending, OrderStatusCancelled, false},
		{OrderStatusPending, "shipped", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCheckCancel(t *testing.T) {
	tests := []struct {
		status  string
		wantErr error
	}{
		{OrderStatusPending, nil},
		{OrderStatusAccepted, nil},
		{OrderStatusInProgress, nil},
		{OrderStatusCancelled, ErrConflict},
		{OrderStatusCompleted, ErrConflict},
		{OrderStatusRejected, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			err := CheckCancel(tt.status)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestTransitionError(t *testing.T) {
	err := error(&TransitionError{From: OrderStatusPending, To: OrderStatusCompleted})

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "completed")
}

func TestIsDeletable(t *testing.T) {
	tests := []struct {
		name     string
		order    Order
		expected bool
	}{
		{"Pending unpaid", Order{Status: OrderStatusPending, PaymentStatus: PaymentStatusPending}, true},
		{"Pending paid", Order{Status: OrderStatusPending, PaymentStatus: PaymentStatusPaid}, false},
		{"Cancelled unpaid", Order{Status: OrderStatusCancelled, PaymentStatus: PaymentStatusPending}, true},
		{"Rejected refunded", Order{Status: OrderStatusRejected, PaymentStatus: PaymentStatusRefunded}, true},
		{"Accepted", Order{Status: OrderStatusAccepted, PaymentStatus: PaymentStatusPending}, false},
		{"In progress", Order{Status: OrderStatusInProgress, PaymentStatus: PaymentStatusPending}, false},
		{"Completed paid", Order{Status: OrderStatusCompleted, PaymentStatus: PaymentStatusPaid}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDeletable(&tt.order))
		})
	}
}
