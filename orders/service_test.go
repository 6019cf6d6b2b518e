package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk/entities"
)

var registeredAt = time.Date(2023, 5, 17, 10, 0, 0, 0, time.UTC)

func TestCreateOrderPreservesDuplicates(t *testing.T) {
	store := newMemoryStore([]entities.Product{
		{ProductNumber: "001", Type: entities.ProductTypeHandmade, Name: "americano", Price: 4000},
		{ProductNumber: "002", Type: entities.ProductTypeHandmade, Name: "latte", Price: 4500},
	}, nil)
	service := NewOrderService(store)

	order, err := service.CreateOrder(context.Background(), []string{"001", "001", "002"}, registeredAt)
	require.NoError(t, err)

	assert.Equal(t, 12500, order.TotalPrice)
	assert.Equal(t, registeredAt, order.RegisteredAt)

	require.Len(t, order.Products, 3)
	assert.Equal(t, "001", order.Products[0].ProductNumber)
	assert.Equal(t, "001", order.Products[1].ProductNumber)
	assert.Equal(t, "002", order.Products[2].ProductNumber)

	assert.Equal(t, 1, store.orderCount())
}

func TestCreateOrderDeductsStock(t *testing.T) {
	store := newMemoryStore([]entities.Product{
		{ProductNumber: "001", Type: entities.ProductTypeBottle, Name: "water", Price: 1000},
		{ProductNumber: "002", Type: entities.ProductTypeBakery, Name: "croissant", Price: 3000},
	}, []entities.Stock{
		{ProductNumber: "001", Quantity: 2},
		{ProductNumber: "002", Quantity: 2},
	})
	service := NewOrderService(store)

	_, err := service.CreateOrder(context.Background(), []string{"001", "001", "002"}, registeredAt)
	require.NoError(t, err)

	assert.Equal(t, 0, store.stockQuantity("001"))
	assert.Equal(t, 1, store.stockQuantity("002"))
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	store := newMemoryStore([]entities.Product{
		{ProductNumber: "001", Type: entities.ProductTypeBottle, Name: "water", Price: 1000},
	}, []entities.Stock{
		{ProductNumber: "001", Quantity: 1},
	})
	service := NewOrderService(store)

	_, err := service.CreateOrder(context.Background(), []string{"001", "001"}, registeredAt)

	var insufficient InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "001", insufficient.ProductNumber)

	assert.Equal(t, 1, store.stockQuantity("001"))
	assert.Zero(t, store.orderCount())
}

func TestCreateOrderRejectionIsAtomic(t *testing.T) {
	// "001" alone has plenty of stock; the failing "002" check must
	// leave it untouched.
	store := newMemoryStore([]entities.Product{
		{ProductNumber: "001", Type: entities.ProductTypeBottle, Name: "water", Price: 1000},
		{ProductNumber: "002", Type: entities.ProductTypeBakery, Name: "croissant", Price: 3000},
	}, []entities.Stock{
		{ProductNumber: "001", Quantity: 10},
	})
	service := NewOrderService(store)

	_, err := service.CreateOrder(context.Background(), []string{"001", "002"}, registeredAt)

	var insufficient InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "002", insufficient.ProductNumber)

	assert.Equal(t, 10, store.stockQuantity("001"))
	assert.Zero(t, store.orderCount())
}

func TestCreateOrderUnknownProductNumber(t *testing.T) {
	store := newMemoryStore([]entities.Product{
		{ProductNumber: "001", Type: entities.ProductTypeHandmade, Name: "americano", Price: 4000},
	}, nil)
	service := NewOrderService(store)

	_, err := service.CreateOrder(context.Background(), []string{"001", "999", "999"}, registeredAt)

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"999"}, notFound.ProductNumbers)
	assert.Zero(t, store.orderCount())
}

func TestCreateOrderRejectionIsDeterministic(t *testing.T) {
	store := newMemoryStore([]entities.Product{
		{ProductNumber: "001", Type: entities.ProductTypeBottle, Name: "water", Price: 1000},
	}, []entities.Stock{
		{ProductNumber: "001", Quantity: 1},
	})
	service := NewOrderService(store)

	_, err1 := service.CreateOrder(context.Background(), []string{"001", "001"}, registeredAt)
	_, err2 := service.CreateOrder(context.Background(), []string{"001", "001"}, registeredAt)

	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())
	assert.Equal(t, 1, store.stockQuantity("001"))
}

func TestCreateOrderNonStockTrackedBypassesLedger(t *testing.T) {
	// Handmade products never touch the stock ledger, even without a
	// stock row.
	store := newMemoryStore([]entities.Product{
		{ProductNumber: "001", Type: entities.ProductTypeHandmade, Name: "americano", Price: 4000},
	}, nil)
	service := NewOrderService(store)

	order, err := service.CreateOrder(context.Background(), []string{"001"}, registeredAt)
	require.NoError(t, err)
	assert.Equal(t, 4000, order.TotalPrice)
}

func TestCreateOrderNoOversell(t *testing.T) {
	// Stock of 2: a two-unit and a one-unit order race for it. At most
	// one of them may win; deducted units never exceed the stock.
	for i := 0; i < 50; i++ {
		store := newMemoryStore([]entities.Product{
			{ProductNumber: "001", Type: entities.ProductTypeBottle, Name: "water", Price: 1000},
		}, []entities.Stock{
			{ProductNumber: "001", Quantity: 2},
		})
		service := NewOrderService(store)

		var wg sync.WaitGroup
		results := make([]error, 2)
		requests := [][]string{{"001", "001"}, {"001"}}
		for i, productNumbers := range requests {
			wg.Add(1)
			go func(i int, productNumbers []string) {
				defer wg.Done()
				_, results[i] = service.CreateOrder(context.Background(), productNumbers, registeredAt)
			}(i, productNumbers)
		}
		wg.Wait()

		deducted := 0
		if results[0] == nil {
			deducted += 2
		}
		if results[1] == nil {
			deducted++
		}

		assert.False(t, results[0] == nil && results[1] == nil, "both racing orders succeeded")
		assert.LessOrEqual(t, deducted, 2)
		assert.Equal(t, 2-deducted, store.stockQuantity("001"))
	}
}
