package db

import (
	"context"
	"fmt"

	"kiosk/entities"
)

// EventsRepository archives every published order event, keyed by the
// event header ID so redelivered messages stay single rows.
type EventsRepository struct {
	db *DB
}

func NewEventsRepository(db *DB) EventsRepository {
	if db == nil {
		panic("db is nil")
	}
	return EventsRepository{
		db: db,
	}
}

func (r EventsRepository) Create(ctx context.Context, event entities.Event) error {
	_, err := r.db.Conn.ExecContext(ctx, `
		INSERT INTO
		    events (event_id, published_at, event_name, event_payload)
		VALUES
		    ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING
	`, event.EventID, event.PublishedAt, event.EventName, event.Payload)
	if err != nil {
		return fmt.Errorf("could not archive event: %w", err)
	}

	return nil
}
