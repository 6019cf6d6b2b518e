package orders

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"kiosk/entities"
	"kiosk/message/event"
)

// memoryStore is an in-memory unit of work backing the service tests.
// One mutex serializes transactions, mirroring the serializable
// isolation of the Postgres implementation; staged stock and order
// writes are dropped when the transaction function fails.
type memoryStore struct {
	mu       sync.Mutex
	products map[string]entities.Product
	stocks   map[string]entities.Stock
	orders   []entities.Order
}

func newMemoryStore(products []entities.Product, stocks []entities.Stock) *memoryStore {
	s := &memoryStore{
		products: make(map[string]entities.Product),
		stocks:   make(map[string]entities.Stock),
	}
	for _, product := range products {
		s.products[product.ProductNumber] = product
	}
	for _, stock := range stocks {
		s.stocks[stock.ProductNumber] = stock
	}
	return s
}

func (s *memoryStore) Do(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{stocks: make(map[string]entities.Stock, len(s.stocks))}
	for productNumber, stock := range s.stocks {
		tx.stocks[productNumber] = stock
	}

	bus := event.NewBus(gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}))

	err := fn(ctx, Repositories{
		Catalog: memoryCatalog{store: s},
		Stock:   memoryStocks{tx: tx},
		Orders:  memoryOrders{tx: tx},
		Bus:     bus,
	})
	if err != nil {
		return err
	}

	s.stocks = tx.stocks
	s.orders = append(s.orders, tx.orders...)
	return nil
}

func (s *memoryStore) stockQuantity(productNumber string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stocks[productNumber].Quantity
}

func (s *memoryStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type memoryTx struct {
	stocks map[string]entities.Stock
	orders []entities.Order
}

type memoryCatalog struct {
	store *memoryStore
}

func (c memoryCatalog) FindAllByProductNumberIn(ctx context.Context, productNumbers []string) ([]entities.Product, error) {
	var products []entities.Product
	for _, productNumber := range productNumbers {
		if product, ok := c.store.products[productNumber]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

type memoryStocks struct {
	tx *memoryTx
}

func (s memoryStocks) FindAllByProductNumberIn(ctx context.Context, productNumbers []string) ([]entities.Stock, error) {
	var stocks []entities.Stock
	for _, productNumber := range productNumbers {
		if stock, ok := s.tx.stocks[productNumber]; ok {
			stocks = append(stocks, stock)
		}
	}
	return stocks, nil
}

func (s memoryStocks) Update(ctx context.Context, stock entities.Stock) error {
	s.tx.stocks[stock.ProductNumber] = stock
	return nil
}

type memoryOrders struct {
	tx *memoryTx
}

func (o memoryOrders) Create(ctx context.Context, order entities.Order) error {
	o.tx.orders = append(o.tx.orders, order)
	return nil
}
