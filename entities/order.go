package entities

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusInit             OrderStatus = "INIT"
	OrderStatusCanceled         OrderStatus = "CANCELED"
	OrderStatusPaymentCompleted OrderStatus = "PAYMENT_COMPLETED"
	OrderStatusPaymentFailed    OrderStatus = "PAYMENT_FAILED"
	OrderStatusReceived         OrderStatus = "RECEIVED"
	OrderStatusCompleted        OrderStatus = "COMPLETED"
)

type OrderProduct struct {
	OrderID       uuid.UUID `json:"order_id" db:"order_id"`
	ProductNumber string    `json:"product_number" db:"product_number"`
	Name          string    `json:"name" db:"name"`
	Price         int       `json:"price" db:"price"`
}

type Order struct {
	OrderID      uuid.UUID      `json:"order_id" db:"order_id"`
	Status       OrderStatus    `json:"status" db:"status"`
	TotalPrice   int            `json:"total_price" db:"total_price"`
	RegisteredAt time.Time      `json:"registered_at" db:"registered_at"`
	Products     []OrderProduct `json:"products"`
}

// NewOrder assembles the order aggregate: one line per product in
// request order (duplicates stay separate lines), total price as the
// sum of the line price snapshots. Pure construction, no I/O.
func NewOrder(products []Product, registeredAt time.Time) Order {
	orderID := uuid.New()

	lines := make([]OrderProduct, 0, len(products))
	totalPrice := 0
	for _, product := range products {
		lines = append(lines, OrderProduct{
			OrderID:       orderID,
			ProductNumber: product.ProductNumber,
			Name:          product.Name,
			Price:         product.Price,
		})
		totalPrice += product.Price
	}

	return Order{
		OrderID:      orderID,
		Status:       OrderStatusInit,
		TotalPrice:   totalPrice,
		RegisteredAt: registeredAt,
		Products:     lines,
	}
}
