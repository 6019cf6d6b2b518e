package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: uuid.NewString(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type IEvent interface {
	IsInternal() bool
}

type OrderPlaced_v1 struct {
	Header EventHeader `json:"header"`

	OrderID        uuid.UUID `json:"order_id"`
	ProductNumbers []string  `json:"product_numbers"`
	TotalPrice     int       `json:"total_price"`
	RegisteredAt   time.Time `json:"registered_at"`
}

func (OrderPlaced_v1) IsInternal() bool { return false }

type StockDepleted_v1 struct {
	Header EventHeader `json:"header"`

	ProductNumber string `json:"product_number"`
}

func (StockDepleted_v1) IsInternal() bool { return false }

type InternalOpsOrderReadModelUpdated struct {
	Header EventHeader `json:"header"`

	OrderID uuid.UUID `json:"order_id"`
}

func (InternalOpsOrderReadModelUpdated) IsInternal() bool { return true }

// Event is the archived form of a published event, as stored in the
// events table.
type Event struct {
	EventID     string          `db:"event_id"`
	PublishedAt time.Time       `db:"published_at"`
	EventName   string          `db:"event_name"`
	Payload     json.RawMessage `db:"event_payload"`
}
