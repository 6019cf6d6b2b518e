package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	americano := Product{ProductNumber: "001", Type: ProductTypeHandmade, Name: "americano", Price: 4000}
	latte := Product{ProductNumber: "002", Type: ProductTypeHandmade, Name: "latte", Price: 4500}
	registeredAt := time.Date(2023, 5, 17, 10, 0, 0, 0, time.UTC)

	order := NewOrder([]Product{americano, americano, latte}, registeredAt)

	assert.Equal(t, 12500, order.TotalPrice)
	assert.Equal(t, OrderStatusInit, order.Status)
	assert.Equal(t, registeredAt, order.RegisteredAt)

	require.Len(t, order.Products, 3)
	assert.Equal(t, "001", order.Products[0].ProductNumber)
	assert.Equal(t, "001", order.Products[1].ProductNumber)
	assert.Equal(t, "002", order.Products[2].ProductNumber)
	for _, line := range order.Products {
		assert.Equal(t, order.OrderID, line.OrderID)
	}
}

func TestNewOrderEmpty(t *testing.T) {
	order := NewOrder(nil, time.Now().UTC())

	assert.Zero(t, order.TotalPrice)
	assert.Empty(t, order.Products)
}
