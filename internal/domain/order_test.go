package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsTotal(t *testing.T) {
	o := &Order{Items: []OrderItem{
		{Price: 5.50, Quantity: 2},
		{Price: 1.25, Quantity: 4},
	}}
	assert.InDelta(t, 16.0, o.ItemsTotal(), 1e-9)
}

func TestCheckTotal(t *testing.T) {
	o := &Order{
		Items:      []OrderItem{{Price: 5.50, Quantity: 2}},
		TotalPrice: 11.00,
	}
	assert.NoError(t, o.CheckTotal())

	o.TotalPrice = 10.99
	assert.Error(t, o.CheckTotal())
}

func TestCheckTotalEmptyItems(t *testing.T) {
	o := &Order{TotalPrice: 0}
	assert.NoError(t, o.CheckTotal())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusConfirmed))
	assert.True(t, StatusPending.CanTransition(StatusCancelled))
	assert.True(t, StatusPreparing.CanTransition(StatusOutForDelivery))
	assert.False(t, StatusPending.CanTransition(StatusDelivered))
	assert.False(t, StatusDelivered.CanTransition(StatusPending))
	assert.False(t, StatusCancelled.CanTransition(StatusConfirmed))
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PayCash.Valid())
	assert.True(t, PayCard.Valid())
	assert.True(t, PayOnline.Valid())
	assert.False(t, PaymentMethod("bitcoin").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
