package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"kiosk/entities"
)

// ErrOpsOrderNotFound is returned when no read model exists for an
// order ID.
var ErrOpsOrderNotFound = errors.New("ops order not found")

// OpsOrderReadModel keeps an ops-facing JSONB projection of every
// placed order, rebuilt from order events.
type OpsOrderReadModel struct {
	conn     *DB
	eventBus *cqrs.EventBus
}

func NewOpsOrderReadModel(db *DB, eventBus *cqrs.EventBus) OpsOrderReadModel {
	if db == nil {
		panic("db is nil")
	}
	if eventBus == nil {
		panic("eventBus is nil")
	}
	return OpsOrderReadModel{
		conn:     db,
		eventBus: eventBus,
	}
}

func (r OpsOrderReadModel) OnOrderPlaced(ctx context.Context, event *entities.OrderPlaced_v1) error {
	log.FromContext(ctx).
		WithField("order_id", event.OrderID).
		Debug("Updating ops order read model")

	payload, err := json.Marshal(entities.OpsOrder{
		OrderID:        event.OrderID,
		Status:         entities.OrderStatusInit,
		TotalPrice:     event.TotalPrice,
		ProductNumbers: event.ProductNumbers,
		RegisteredAt:   event.RegisteredAt,
		LastUpdate:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("could not marshal ops order: %w", err)
	}

	_, err = r.conn.Conn.ExecContext(ctx, `
		INSERT INTO
		    read_model_ops_orders (order_id, payload)
		VALUES
		    ($1, $2)
		ON CONFLICT (order_id) DO UPDATE SET payload = EXCLUDED.payload
	`, event.OrderID, payload)
	if err != nil {
		return fmt.Errorf("could not store ops order read model: %w", err)
	}

	err = r.eventBus.Publish(ctx, entities.InternalOpsOrderReadModelUpdated{
		Header:  entities.NewEventHeaderWithIdempotencyKey(event.Header.IdempotencyKey),
		OrderID: event.OrderID,
	})
	if err != nil {
		return fmt.Errorf("could not publish read model update: %w", err)
	}

	return nil
}

func (r OpsOrderReadModel) GetAll(ctx context.Context) ([]entities.OpsOrder, error) {
	var payloads [][]byte
	err := r.conn.Conn.SelectContext(ctx, &payloads, `
		SELECT
		    payload
		FROM
		    read_model_ops_orders
	`)
	if err != nil {
		return nil, fmt.Errorf("could not get ops orders: %w", err)
	}

	orders := make([]entities.OpsOrder, 0, len(payloads))
	for _, payload := range payloads {
		var order entities.OpsOrder
		if err := json.Unmarshal(payload, &order); err != nil {
			return nil, fmt.Errorf("could not unmarshal ops order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r OpsOrderReadModel) GetByID(ctx context.Context, orderID string) (entities.OpsOrder, error) {
	var payload []byte
	err := r.conn.Conn.GetContext(ctx, &payload, `
		SELECT
		    payload
		FROM
		    read_model_ops_orders
		WHERE
		    order_id = $1
	`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OpsOrder{}, ErrOpsOrderNotFound
	}
	if err != nil {
		return entities.OpsOrder{}, fmt.Errorf("could not get ops order: %w", err)
	}

	var order entities.OpsOrder
	if err := json.Unmarshal(payload, &order); err != nil {
		return entities.OpsOrder{}, fmt.Errorf("could not unmarshal ops order: %w", err)
	}

	return order, nil
}
