package orders

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"kiosk/entities"
)

type CatalogRepository interface {
	FindAllByProductNumberIn(ctx context.Context, productNumbers []string) ([]entities.Product, error)
}

type StockRepository interface {
	// FindAllByProductNumberIn returns the stock rows for the given
	// product numbers, locked until the unit of work ends.
	FindAllByProductNumberIn(ctx context.Context, productNumbers []string) ([]entities.Stock, error)
	Update(ctx context.Context, stock entities.Stock) error
}

type OrderRepository interface {
	Create(ctx context.Context, order entities.Order) error
}

// Repositories groups the collaborators bound to one unit of work.
// Events published on Bus commit or roll back together with the data
// changes (transactional outbox).
type Repositories struct {
	Catalog CatalogRepository
	Stock   StockRepository
	Orders  OrderRepository
	Bus     *cqrs.EventBus
}

// UnitOfWork runs fn atomically: when fn returns an error nothing it
// did through the Repositories has any lasting effect.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
}
