package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockDeductQuantity(t *testing.T) {
	stock := Stock{ProductNumber: "001", Quantity: 2}

	err := stock.DeductQuantity(2)
	assert.NoError(t, err)
	assert.Equal(t, 0, stock.Quantity)
}

func TestStockDeductQuantityBeyondAvailable(t *testing.T) {
	stock := Stock{ProductNumber: "001", Quantity: 1}

	err := stock.DeductQuantity(2)
	assert.Error(t, err)
	assert.Equal(t, 1, stock.Quantity)
}

func TestProductTypeStockTracked(t *testing.T) {
	assert.False(t, ProductTypeHandmade.StockTracked())
	assert.True(t, ProductTypeBottle.StockTracked())
	assert.True(t, ProductTypeBakery.StockTracked())
}
