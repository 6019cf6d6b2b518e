package http

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"kiosk/entities"
	"kiosk/products"
)

type Handler struct {
	cmdBus         *cqrs.CommandBus
	orderService   OrderService
	productService ProductService
	stockRepo      StockRepository
	opsOrderRepo   OpsOrderRepository
}

type OrderService interface {
	CreateOrder(ctx context.Context, productNumbers []string, registeredAt time.Time) (entities.Order, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, request products.CreateProductRequest) (entities.Product, error)
	GetSellingProducts(ctx context.Context) ([]entities.Product, error)
}

type StockRepository interface {
	Upsert(ctx context.Context, stock entities.Stock) error
}

type OpsOrderRepository interface {
	GetAll(ctx context.Context) ([]entities.OpsOrder, error)
	GetByID(ctx context.Context, orderID string) (entities.OpsOrder, error)
}
