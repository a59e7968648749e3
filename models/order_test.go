package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{OrderStatusNew, OrderStatusPaid, true},
		{OrderStatusNew, OrderStatusShipped, true},
		{OrderStatusPaid, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusCompleted, true},
		{OrderStatusNew, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusNew, false},
		{OrderStatusCompleted, OrderStatusPaid, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
		{OrderStatusPaid, OrderStatusPaid, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidStatusTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderItemTotalUsesFrozenPrice(t *testing.T) {
	item := OrderItem{
		Quantity: 3,
		Price:    decimal.RequireFromString("12.50"),
		Product:  Product{Price: decimal.RequireFromString("99.00")}, // later price change
	}
	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("37.50")))
}
