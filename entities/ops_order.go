package entities

import (
	"time"

	"github.com/google/uuid"
)

// OpsOrder is the ops-facing read model of a placed order, rebuilt
// from the order events.
type OpsOrder struct {
	OrderID        uuid.UUID   `json:"order_id"`
	Status         OrderStatus `json:"status"`
	TotalPrice     int         `json:"total_price"`
	ProductNumbers []string    `json:"product_numbers"`
	RegisteredAt   time.Time   `json:"registered_at"`

	LastUpdate time.Time `json:"last_update"`
}
